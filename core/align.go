package core

import "strings"

// Alignment tells a renderer which way a column's values should lean.
type Alignment int

const (
	AlignGeneric Alignment = iota
	AlignNumeric
)

func (a Alignment) String() string {
	switch a {
	case AlignNumeric:
		return "numeric"
	default:
		return "generic"
	}
}

// AlignmentForType maps a driver type tag to an alignment class.
// Unknown tags are not an error, they simply align as generic text.
func AlignmentForType(typeTag string) Alignment {
	switch strings.ToUpper(typeTag) {
	case "INT", "INT2", "INT4", "INT8", "INTEGER",
		"SMALLINT", "MEDIUMINT", "BIGINT", "TINYINT",
		"FLOAT", "FLOAT4", "FLOAT8", "REAL", "DOUBLE",
		"NUMERIC", "DECIMAL", "MONEY", "CASH",
		"OID", "XID", "CID",
		"SERIAL", "BIGSERIAL", "HUGEINT", "UNSIGNED BIGINT":
		return AlignNumeric
	default:
		return AlignGeneric
	}
}
