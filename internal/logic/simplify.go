package logic

import (
	"sort"
	"strings"
)

// PrimeInfo is the reportable view of a prime implicant: its pattern and the
// sorted minterm rows it covers.
type PrimeInfo struct {
	Pattern string `json:"pattern"`
	Covers  []int  `json:"covers"`
}

// Result is the full pipeline output for one expression.
type Result struct {
	Input     string      `json:"input"`
	Vars      string      `json:"vars"`
	Constant  bool        `json:"constant"`
	Value     bool        `json:"value"`
	Minterms  []int       `json:"minterms,omitempty"`
	Primes    []PrimeInfo `json:"primes,omitempty"`
	Cover     []string    `json:"cover,omitempty"`
	Minimized string      `json:"minimized"`
}

// Simplify parses input and runs the whole pipeline: minterm enumeration,
// prime implicant generation, greedy cover selection and sum-of-products
// rendering. A variable-free expression takes the constant path and skips
// every later stage, as do the empty and full minterm sets. progress may be
// nil; it only fires during enumeration.
func Simplify(input string, progress ProgressFunc) (*Function, *Result, error) {
	f, err := Parse(input)
	if err != nil {
		return nil, nil, err
	}
	res := &Result{Input: input, Vars: string(f.Vars)}

	if f.IsConstant() {
		res.Constant = true
		res.Value = f.Constant()
		res.Minimized = bitString(res.Value)
		return f, res, nil
	}

	res.Minterms = f.Minterms(progress)
	switch len(res.Minterms) {
	case 0:
		res.Minimized = "0"
		return f, res, nil
	case 1 << len(f.Vars):
		res.Minimized = "1"
		return f, res, nil
	}

	primes := primeImplicants(res.Minterms, len(f.Vars))
	for _, p := range primes {
		covers := p.Covers.ToSlice()
		sort.Ints(covers)
		res.Primes = append(res.Primes, PrimeInfo{Pattern: p.Pattern, Covers: covers})
	}
	for _, c := range selectCover(primes, res.Minterms) {
		res.Cover = append(res.Cover, c.Pattern)
	}
	res.Minimized = SumOfProducts(res.Cover, f.Vars)
	return f, res, nil
}

// SumOfProducts renders cover patterns as literal product terms: '1' keeps
// the variable, '0' emits it primed, '-' drops it. Terms are sorted
// lexicographically and joined with OR. No patterns means the constant 0; an
// all-dash pattern means the constant 1.
func SumOfProducts(patterns []string, vars []byte) string {
	if len(patterns) == 0 {
		return "0"
	}
	terms := make([]string, 0, len(patterns))
	for _, p := range patterns {
		var b strings.Builder
		for i := 0; i < len(p) && i < len(vars); i++ {
			switch p[i] {
			case '1':
				b.WriteByte(vars[i])
			case '0':
				b.WriteByte(vars[i])
				b.WriteByte('\'')
			}
		}
		if b.Len() == 0 {
			return "1"
		}
		terms = append(terms, b.String())
	}
	sort.Strings(terms)
	return strings.Join(terms, "+")
}

func bitString(b bool) string {
	if b {
		return "1"
	}
	return "0"
}
