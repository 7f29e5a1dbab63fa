package notation

import (
	"strings"
	"testing"

	"github.com/fatih/color"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestDefaultTable tests the embedded operator table.
func TestDefaultTable(t *testing.T) {
	table := DefaultTable()
	require.NoError(t, table.Validate())

	wedge, ok := table.Lookup("wedge")
	require.True(t, ok)
	assert.Equal(t, 3, wedge.Precedence)
	assert.Equal(t, AssocLeft, wedge.Associativity)
	assert.Equal(t, FixityInfix, wedge.Fixity)
	assert.Equal(t, "∧", wedge.Display("wedge", FormatUnicode))
	assert.Equal(t, "∧", wedge.Display("wedge", FormatPolish))
	assert.Equal(t, `\wedge`, wedge.Display("wedge", FormatMathJax))

	iff, _ := table.Lookup("iff")
	assert.Equal(t, AssocRight, iff.Associativity)

	// Callers get their own copy.
	delete(table, "wedge")
	_, ok = DefaultTable().Lookup("wedge")
	assert.True(t, ok)
}

// TestTable_lookupMissingIsFunctional tests the fallback for names without an entry.
func TestTable_lookupMissingIsFunctional(t *testing.T) {
	op, ok := DefaultTable().Lookup("P")
	assert.False(t, ok)
	assert.Equal(t, FixityFunctional, op.Fixity)
	assert.Equal(t, 0, op.Precedence)
	assert.Equal(t, "P", op.Display("P", FormatMathJax))
}

// TestOperator_displayFallback tests display form selection and its fallbacks.
func TestOperator_displayFallback(t *testing.T) {
	uni := "⊕"
	op := Operator{Unicode: &uni}
	assert.Equal(t, "xor", op.Display("xor", FormatIdentifier))
	assert.Equal(t, "⊕", op.Display("xor", FormatPolish))

	polish := "X"
	op.Polish = &polish
	assert.Equal(t, "X", op.Display("xor", FormatPolish))
	assert.Equal(t, "⊕", op.Display("xor", FormatUnicode))
}

// TestLoadTable tests decoding a user table and merging it.
func TestLoadTable(t *testing.T) {
	const doc = `
wedge:
  precedence: 3
  associativity: left
  fixity: infix
  identifier: "&"
subset:
  precedence: 2
  fixity: infix
  unicode: "⊂"
`
	user, err := LoadTable(strings.NewReader(doc))
	require.NoError(t, err)
	assert.Equal(t, AssocNone, user["subset"].Associativity)

	merged := DefaultTable().Merge(user)
	wedge, _ := merged.Lookup("wedge")
	assert.Equal(t, "&", wedge.Display("wedge", FormatIdentifier))
	assert.Equal(t, "wedge", wedge.Display("wedge", FormatUnicode))
	_, ok := merged.Lookup("subset")
	assert.True(t, ok)

	// Merge leaves its inputs alone.
	_, ok = user.Lookup("vee")
	assert.False(t, ok)
}

func TestLoadTable_empty(t *testing.T) {
	table, err := LoadTable(strings.NewReader(""))
	require.NoError(t, err)
	assert.Empty(t, table)
}

// TestLoadTable_invalid tests rejection of malformed tables.
func TestLoadTable_invalid(t *testing.T) {
	tests := []struct {
		name    string
		doc     string
		invalid bool
	}{
		{"associativity", "wedge:\n  associativity: sideways\n", true},
		{"fixity", "wedge:\n  fixity: postfix\n", true},
		{"precedence", "wedge:\n  precedence: -1\n", true},
		{"unknown field", "wedge:\n  colour: red\n", false},
		{"not a mapping", "- wedge\n", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := LoadTable(strings.NewReader(tt.doc))
			require.Error(t, err)
			if tt.invalid {
				assert.ErrorIs(t, err, ErrInvalidTable)
			}
		})
	}
}

// TestColors tests color lookup by role.
func TestColors(t *testing.T) {
	saved := color.NoColor
	color.NoColor = true
	defer func() { color.NoColor = saved }()

	colors := NewColors()
	assert.Equal(t, "50%", colors.Color(RoleVariable, "50%"))
	assert.Equal(t, "x", colors.Color(Role(42), "x"))

	var empty Colors
	assert.Equal(t, "x", empty.Color(RoleBracket, "x"))
}
