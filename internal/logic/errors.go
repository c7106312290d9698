package logic

import "errors"

// Classified failure kinds. Callers distinguish them with errors.Is; the
// wrapped messages carry the offending token where there is one.
var (
	ErrInvalidCharacter    = errors.New("invalid character")
	ErrMalformedExpression = errors.New("invalid expression")
	ErrInvalidNot          = errors.New("invalid NOT logic")
	ErrInvalidAnd          = errors.New("invalid AND logic")
	ErrInvalidXor          = errors.New("invalid XOR logic")
	ErrInvalidOr           = errors.New("invalid OR logic")
	ErrExcessOperands      = errors.New("invalid logic")
	ErrUnknownToken        = errors.New("unknown token")
)

// IsParseError reports whether err is one of the classified parse or
// tree-building failures, as opposed to an unexpected internal error.
func IsParseError(err error) bool {
	for _, kind := range []error{
		ErrInvalidCharacter,
		ErrMalformedExpression,
		ErrInvalidNot,
		ErrInvalidAnd,
		ErrInvalidXor,
		ErrInvalidOr,
		ErrExcessOperands,
		ErrUnknownToken,
	} {
		if errors.Is(err, kind) {
			return true
		}
	}
	return false
}
