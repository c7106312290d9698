package logic

import "fmt"

// Function is a parsed boolean expression together with its variable set in
// ascending letter order. Both are immutable once built.
type Function struct {
	Root Expr
	Vars []byte
}

// Parse validates the raw expression line, collects its variable set and
// builds the expression tree. The grammar alphabet is A-Z, '(', ')', '+',
// '\'' (postfix NOT), '^', '0' and '1'; AND is implicit by adjacency and
// made explicit before conversion to postfix form.
func Parse(input string) (*Function, error) {
	if input == "" {
		return nil, fmt.Errorf("%w: empty input", ErrMalformedExpression)
	}
	var seen [26]bool
	for i := 0; i < len(input); i++ {
		c := input[i]
		switch {
		case c >= 'A' && c <= 'Z':
			seen[c-'A'] = true
		case c == '(' || c == ')' || c == '+' || c == '\'' || c == '^' || c == '0' || c == '1':
		default:
			return nil, fmt.Errorf("%w %q", ErrInvalidCharacter, string(c))
		}
	}
	var vars []byte
	for i, ok := range seen {
		if ok {
			vars = append(vars, byte('A'+i))
		}
	}

	postfix, err := toPostfix(insertAnd(input))
	if err != nil {
		return nil, err
	}
	root, err := buildTree(collapseNot(postfix))
	if err != nil {
		return nil, err
	}
	return &Function{Root: root, Vars: vars}, nil
}

func isOperand(c byte) bool {
	return c >= 'A' && c <= 'Z' || c == '0' || c == '1'
}

// insertAnd makes the implicit AND of adjacency explicit: a '*' goes between
// any pair where the left side can end an operand and the right side can
// start one. No other characters are altered or reordered.
func insertAnd(expr string) string {
	out := make([]byte, 0, len(expr)*2)
	out = append(out, expr[0])
	for i := 1; i < len(expr); i++ {
		prev, cur := expr[i-1], expr[i]
		if (isOperand(cur) || cur == '(') && prev != '(' && prev != '+' && prev != '^' {
			out = append(out, '*')
		}
		out = append(out, cur)
	}
	return string(out)
}

// precedence gives the binding strength of an operator byte, loosest first:
// '(' < OR < XOR < AND < NOT. '(' binds weakest so no operator pops it.
func precedence(c byte) int {
	switch c {
	case '(':
		return 1
	case '+':
		return 2
	case '^':
		return 3
	case '*':
		return 4
	case '\'':
		return 5
	}
	return 0
}

// toPostfix converts the normalized expression to reverse Polish notation
// with a shunting-yard operator stack. Only operators of strictly higher
// precedence are popped before a push, so same-precedence chains stay on the
// stack; the flipped association is harmless for boolean connectives.
func toPostfix(expr string) (string, error) {
	out := make([]byte, 0, len(expr))
	var stack []byte
	for i := 0; i < len(expr); i++ {
		c := expr[i]
		switch {
		case isOperand(c):
			out = append(out, c)
		case len(stack) == 0 || c == '(':
			stack = append(stack, c)
		case c == ')':
			for len(stack) > 0 && stack[len(stack)-1] != '(' {
				out = append(out, stack[len(stack)-1])
				stack = stack[:len(stack)-1]
			}
			if len(stack) == 0 {
				return "", fmt.Errorf("%w: unmatched %q", ErrMalformedExpression, ")")
			}
			stack = stack[:len(stack)-1]
		case precedence(stack[len(stack)-1]) < precedence(c):
			stack = append(stack, c)
		default:
			for len(stack) > 0 && precedence(stack[len(stack)-1]) > precedence(c) {
				out = append(out, stack[len(stack)-1])
				stack = stack[:len(stack)-1]
			}
			stack = append(stack, c)
		}
	}
	for len(stack) > 0 {
		out = append(out, stack[len(stack)-1])
		stack = stack[:len(stack)-1]
	}
	return string(out), nil
}

// collapseNot cancels runs of postfix NOT markers by parity in a single
// left-to-right pass: an even run disappears, an odd run keeps one marker.
func collapseNot(postfix string) string {
	out := make([]byte, 0, len(postfix))
	run := 0
	for i := 0; i < len(postfix); i++ {
		if postfix[i] == '\'' {
			run++
			continue
		}
		if run%2 == 1 {
			out = append(out, '\'')
		}
		run = 0
		out = append(out, postfix[i])
	}
	if run%2 == 1 {
		out = append(out, '\'')
	}
	return string(out)
}

// buildTree folds the postfix stream over an operand stack into a single
// expression tree. The first pop becomes the left child of a binary node.
func buildTree(postfix string) (Expr, error) {
	var stack []Expr
	pop := func() Expr {
		e := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		return e
	}
	for i := 0; i < len(postfix); i++ {
		c := postfix[i]
		switch {
		case c >= 'A' && c <= 'Z':
			stack = append(stack, ExprVar{Name: c})
		case c == '0' || c == '1':
			stack = append(stack, ExprConst{Value: c == '1'})
		case c == '\'':
			if len(stack) < 1 {
				return nil, ErrInvalidNot
			}
			stack = append(stack, ExprNot{X: pop()})
		case c == '*':
			if len(stack) < 2 {
				return nil, ErrInvalidAnd
			}
			l, r := pop(), pop()
			stack = append(stack, ExprAnd{A: l, B: r})
		case c == '^':
			if len(stack) < 2 {
				return nil, ErrInvalidXor
			}
			l, r := pop(), pop()
			stack = append(stack, ExprXor{A: l, B: r})
		case c == '+':
			if len(stack) < 2 {
				return nil, ErrInvalidOr
			}
			l, r := pop(), pop()
			stack = append(stack, ExprOr{A: l, B: r})
		default:
			return nil, fmt.Errorf("%w %q", ErrUnknownToken, string(c))
		}
	}
	if len(stack) != 1 {
		return nil, ErrExcessOperands
	}
	return stack[0], nil
}
