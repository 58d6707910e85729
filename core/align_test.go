package core_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/dbpager/dbpager/core"
)

func TestAlignmentForType(t *testing.T) {
	r := require.New(t)

	testCases := []struct {
		typeTag  string
		expected core.Alignment
	}{
		{"INT2", core.AlignNumeric},
		{"INT4", core.AlignNumeric},
		{"INT8", core.AlignNumeric},
		{"FLOAT8", core.AlignNumeric},
		{"NUMERIC", core.AlignNumeric},
		{"DECIMAL", core.AlignNumeric},
		{"MONEY", core.AlignNumeric},
		{"OID", core.AlignNumeric},
		{"XID", core.AlignNumeric},
		{"CID", core.AlignNumeric},
		{"numeric", core.AlignNumeric},
		{"TEXT", core.AlignGeneric},
		{"VARCHAR", core.AlignGeneric},
		{"TIMESTAMP", core.AlignGeneric},
		{"BOOL", core.AlignGeneric},
		{"", core.AlignGeneric},
		{"SOMETHING_NOBODY_EVER_SAW", core.AlignGeneric},
	}

	for _, tc := range testCases {
		r.Equal(tc.expected, core.AlignmentForType(tc.typeTag), "type tag: %q", tc.typeTag)
	}
}

func TestAlignmentString(t *testing.T) {
	r := require.New(t)

	r.Equal("numeric", core.AlignNumeric.String())
	r.Equal("generic", core.AlignGeneric.String())
}
