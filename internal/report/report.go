package report

import (
	"fmt"
	"strings"

	"github.com/fatih/color"

	"github.com/SamuNatsu/Quine-McCluskey-Algorithm/internal/logic"
)

var (
	headerStyle = color.New(color.FgCyan, color.Bold)
	trueStyle   = color.New(color.FgGreen)
	resultStyle = color.New(color.FgHiWhite, color.Bold)
)

// Options control which report sections render.
type Options struct {
	// Table includes the full 2^n-row truth table.
	Table bool
}

// Render produces the textual report for one simplified expression: the
// truth table, the canonical minterm list and the minimized sum-of-products
// form. Variable-free expressions get the short constant report.
func Render(f *logic.Function, res *logic.Result, opt Options) string {
	var buf strings.Builder
	if res.Constant {
		buf.WriteString("Constant expression:\n")
		fmt.Fprintf(&buf, "Y = %s\n", resultStyle.Sprint(bit(res.Value)))
		return buf.String()
	}
	if opt.Table {
		writeTable(&buf, f)
		buf.WriteByte('\n')
	}
	buf.WriteString(mintermLine(res.Minterms))
	buf.WriteString("\n\n")
	fmt.Fprintf(&buf, "Y = %s\n", resultStyle.Sprint(res.Minimized))
	return buf.String()
}

// writeTable emits one row per assignment, true rows highlighted.
func writeTable(buf *strings.Builder, f *logic.Function) {
	var head strings.Builder
	for _, v := range f.Vars {
		head.WriteByte(v)
		head.WriteByte(' ')
	}
	head.WriteString("| Y")
	buf.WriteString(headerStyle.Sprint(head.String()))
	buf.WriteByte('\n')

	n := len(f.Vars)
	for row := 0; row < 1<<n; row++ {
		var line strings.Builder
		for j := n - 1; j >= 0; j-- {
			line.WriteByte('0' + byte(row>>j&1))
			line.WriteByte(' ')
		}
		y := f.Eval(row)
		line.WriteString("| ")
		line.WriteString(bit(y))
		if y {
			buf.WriteString(trueStyle.Sprint(line.String()))
		} else {
			buf.WriteString(line.String())
		}
		buf.WriteByte('\n')
	}
}

// mintermLine renders the canonical sum notation, e.g. "Y = m( 1, 2)".
func mintermLine(minterms []int) string {
	var b strings.Builder
	b.WriteString("Y = m(")
	for i, m := range minterms {
		if i > 0 {
			b.WriteByte(',')
		}
		fmt.Fprintf(&b, " %d", m)
	}
	b.WriteByte(')')
	return b.String()
}

func bit(b bool) string {
	if b {
		return "1"
	}
	return "0"
}
