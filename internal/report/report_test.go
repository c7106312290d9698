package report

import (
	"testing"

	"github.com/fatih/color"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/SamuNatsu/Quine-McCluskey-Algorithm/internal/logic"
)

func render(t *testing.T, expr string, opt Options) string {
	t.Helper()
	color.NoColor = true
	f, res, err := logic.Simplify(expr, nil)
	require.NoError(t, err)
	return Render(f, res, opt)
}

func TestRenderWithTable(t *testing.T) {
	got := render(t, "AB'+A'B", Options{Table: true})
	want := "A B | Y\n" +
		"0 0 | 0\n" +
		"0 1 | 1\n" +
		"1 0 | 1\n" +
		"1 1 | 0\n" +
		"\n" +
		"Y = m( 1, 2)\n" +
		"\n" +
		"Y = A'B+AB'\n"
	assert.Equal(t, want, got)
}

func TestRenderQuiet(t *testing.T) {
	got := render(t, "AB'+A'B", Options{})
	want := "Y = m( 1, 2)\n" +
		"\n" +
		"Y = A'B+AB'\n"
	assert.Equal(t, want, got)
}

func TestRenderConstant(t *testing.T) {
	got := render(t, "1^0", Options{Table: true})
	assert.Equal(t, "Constant expression:\nY = 1\n", got)

	got = render(t, "0", Options{Table: true})
	assert.Equal(t, "Constant expression:\nY = 0\n", got)
}

func TestRenderEmptyMintermSet(t *testing.T) {
	got := render(t, "AA'", Options{})
	want := "Y = m()\n" +
		"\n" +
		"Y = 0\n"
	assert.Equal(t, want, got)
}
