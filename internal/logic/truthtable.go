package logic

// ProgressFunc reports enumeration progress as completed rows out of total.
type ProgressFunc func(done, total int)

// IsConstant reports whether the expression references no variables.
func (f *Function) IsConstant() bool { return len(f.Vars) == 0 }

// Constant evaluates a variable-free expression once.
func (f *Function) Constant() bool { return Eval(f.Root, Assignment{}) }

// Eval evaluates the expression for one truth-table row in [0, 2^n).
func (f *Function) Eval(row int) bool {
	return Eval(f.Root, NewAssignment(f.Vars, row))
}

// Minterms enumerates every assignment in [0, 2^n) in ascending order and
// returns the rows where the expression is true. Callers must take the
// constant path instead when the variable set is empty. progress may be nil.
func (f *Function) Minterms(progress ProgressFunc) []int {
	total := 1 << len(f.Vars)
	var minterms []int
	for row := 0; row < total; row++ {
		if f.Eval(row) {
			minterms = append(minterms, row)
		}
		if progress != nil {
			progress(row+1, total)
		}
	}
	return minterms
}
