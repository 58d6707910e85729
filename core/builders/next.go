package builders

import "errors"

// NextRows creates next and hasNext functions over a slice of rows.
func NextRows(rows [][]string) (func() ([]string, error), func() bool) {
	index := 0

	hasNext := func() bool {
		return index < len(rows)
	}

	next := func() ([]string, error) {
		if !hasNext() {
			return nil, errors.New("no next row")
		}

		row := rows[index]
		index++
		return row, nil
	}

	return next, hasNext
}
