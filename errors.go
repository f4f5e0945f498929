package shunt

import "strconv"

// InvalidTokenError is an error indicating a token that is not a number, an
// operator, or a parenthesis. It implements InputError.
type InvalidTokenError struct {
	// Col is the 1-based index of the token.
	Col int
	// Token is the token that was not understood.
	Token string
}

func (err *InvalidTokenError) Error() string {
	return errpos(err.Col, "invalid token "+strconv.Quote(err.Token))
}

func (err *InvalidTokenError) Pos() int {
	return err.Col
}

// Problem classifies the structural fault behind a MalformedExpressionError.
type Problem int8

const (
	// UnbalancedClose is a ) with no matching (.
	UnbalancedClose Problem = iota + 1
	// UnbalancedOpen is a ( with no matching ).
	UnbalancedOpen
	// MissingOperand is an operator without two operands to apply to.
	MissingOperand
	// ExtraOperand is an operand with no operator to combine it.
	ExtraOperand
	// EmptyExpression is an expression or parenthesized group with no
	// operands at all.
	EmptyExpression
)

func (p Problem) String() string {
	switch p {
	case UnbalancedClose:
		return "close parenthesis with no open parenthesis"
	case UnbalancedOpen:
		return "open parenthesis with no close parenthesis"
	case MissingOperand:
		return "missing operand"
	case ExtraOperand:
		return "operand with no operator"
	case EmptyExpression:
		return "no expression"
	default:
		return "Problem(" + strconv.Itoa(int(p)) + ")"
	}
}

// MalformedExpressionError is an error indicating that the tokens do not form
// a well-formed infix expression. It implements InputError.
type MalformedExpressionError struct {
	// Col is the 1-based index of the token being processed when the problem
	// was found. Problems found after the last token have Col one past it.
	Col int
	// Token is the token at Col, or the empty string at the end of input.
	Token string
	// Problem is the kind of fault.
	Problem Problem
}

func (err *MalformedExpressionError) Error() string {
	if err.Token == "" {
		return errpos(err.Col, err.Problem.String()+" at end")
	}
	return errpos(err.Col, err.Problem.String()+" at "+strconv.Quote(err.Token))
}

func (err *MalformedExpressionError) Pos() int {
	return err.Col
}

// errpos is a shortcut to create an error message with a position.
func errpos(pos int, msg string) string {
	return "token " + strconv.Itoa(pos) + ": " + msg
}

// InputError is an error with position information. Every error resulting from
// invalid input implements InputError.
type InputError interface {
	error
	// Pos returns the 1-based index of the token that caused the error.
	Pos() int
}

var (
	_ InputError = (*InvalidTokenError)(nil)
	_ InputError = (*MalformedExpressionError)(nil)
)
