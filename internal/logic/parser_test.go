package logic

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInsertAnd(t *testing.T) {
	cases := []struct{ in, want string }{
		{"AB'+A'B", "A*B'+A'*B"},
		{"(AB'+A'B)'^C", "(A*B'+A'*B)'^C"},
		{"A(B+C)", "A*(B+C)"},
		{"A'B", "A'*B"},
		{"10", "1*0"},
		{"A+B", "A+B"},
		{"A^B", "A^B"},
		{"(A)(B)", "(A)*(B)"},
		{"A", "A"},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, insertAnd(tc.in), "input %q", tc.in)
	}
}

func TestToPostfix(t *testing.T) {
	cases := []struct{ in, want string }{
		{"A*B", "AB*"},
		{"A+B*C", "ABC*+"},
		{"A*B'", "AB'*"},
		{"A'*B", "A'B*"},
		{"(A+B)*C", "AB+C*"},
		{"A+B+C", "ABC++"},
		{"A^B+C", "AB^C+"},
		{"(A*B'+A'*B)'^C", "AB'*A'B*+'C^"},
	}
	for _, tc := range cases {
		got, err := toPostfix(tc.in)
		require.NoError(t, err, "input %q", tc.in)
		assert.Equal(t, tc.want, got, "input %q", tc.in)
	}
}

func TestToPostfixUnmatchedParen(t *testing.T) {
	_, err := toPostfix("A+B)")
	assert.ErrorIs(t, err, ErrMalformedExpression)
}

func TestCollapseNot(t *testing.T) {
	cases := []struct{ in, want string }{
		{"A''", "A"},
		{"A'''", "A'"},
		{"AB''''*", "AB*"},
		{"A''B'*", "AB'*"},
		{"AB*''", "AB*"},
		{"AB*'''", "AB*'"},
		{"AB'*", "AB'*"},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, collapseNot(tc.in), "input %q", tc.in)
	}
}

func TestParseVariableSet(t *testing.T) {
	f, err := Parse("ZC'+AC")
	require.NoError(t, err)
	assert.Equal(t, []byte("ACZ"), f.Vars)
}

func TestParseErrors(t *testing.T) {
	cases := []struct {
		name  string
		input string
		kind  error
	}{
		{"empty", "", ErrMalformedExpression},
		{"lowercase", "aB", ErrInvalidCharacter},
		{"whitespace", "A B", ErrInvalidCharacter},
		{"star not in grammar", "A*B", ErrInvalidCharacter},
		{"unmatched close", "A+B)", ErrMalformedExpression},
		{"dangling or", "A+", ErrInvalidOr},
		{"dangling xor", "A^", ErrInvalidXor},
		{"bare not", "'", ErrInvalidNot},
		{"empty parens", "()", ErrExcessOperands},
		{"unmatched open", "(A+B", ErrUnknownToken},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			f, err := Parse(tc.input)
			assert.Nil(t, f)
			assert.ErrorIs(t, err, tc.kind)
			assert.True(t, IsParseError(err))
		})
	}
}

func TestEvalTree(t *testing.T) {
	f, err := Parse("(AB'+A'B)'^C")
	require.NoError(t, err)
	require.Equal(t, []byte("ABC"), f.Vars)

	// Y = (A xnor B) xor C
	for row := 0; row < 8; row++ {
		a := row>>2&1 == 1
		b := row>>1&1 == 1
		c := row&1 == 1
		want := (a == b) != c
		assert.Equal(t, want, f.Eval(row), "row %d", row)
	}
}

func TestAssignmentBitOrder(t *testing.T) {
	// First variable is the most significant bit.
	a := NewAssignment([]byte("ABC"), 0b100)
	assert.True(t, a.Bit('A'))
	assert.False(t, a.Bit('B'))
	assert.False(t, a.Bit('C'))

	a = NewAssignment([]byte("ABC"), 0b001)
	assert.False(t, a.Bit('A'))
	assert.True(t, a.Bit('C'))
}
