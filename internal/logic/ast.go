package logic

// Expr AST

type Expr interface{ isExpr() }

type ExprConst struct{ Value bool }

func (ExprConst) isExpr() {}

type ExprVar struct{ Name byte }

func (ExprVar) isExpr() {}

type ExprNot struct{ X Expr }

func (ExprNot) isExpr() {}

type ExprAnd struct{ A, B Expr }

func (ExprAnd) isExpr() {}

type ExprOr struct{ A, B Expr }

func (ExprOr) isExpr() {}

type ExprXor struct{ A, B Expr }

func (ExprXor) isExpr() {}

// Assignment binds every variable of one truth-table row. Variables are kept
// in ascending letter order and the first variable is the most significant
// bit, so bit j (LSB) holds the variable at position n-1-j.
type Assignment struct {
	vars []byte
	row  int
}

func NewAssignment(vars []byte, row int) Assignment {
	return Assignment{vars: vars, row: row}
}

// Bit returns the value bound to the named variable. Variables outside the
// set read as false; Parse guarantees the tree only references set members.
func (a Assignment) Bit(name byte) bool {
	for i, v := range a.vars {
		if v == name {
			return a.row>>(len(a.vars)-1-i)&1 == 1
		}
	}
	return false
}

// Eval computes the truth value of e under the given assignment.
func Eval(e Expr, a Assignment) bool {
	switch n := e.(type) {
	case ExprConst:
		return n.Value
	case ExprVar:
		return a.Bit(n.Name)
	case ExprNot:
		return !Eval(n.X, a)
	case ExprAnd:
		return Eval(n.A, a) && Eval(n.B, a)
	case ExprOr:
		return Eval(n.A, a) || Eval(n.B, a)
	case ExprXor:
		return Eval(n.A, a) != Eval(n.B, a)
	}
	return false
}
