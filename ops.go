package shunt

import (
	"math"
	"strconv"
)

// Operator is a binary arithmetic operator. The zero Operator is not a valid
// operator.
type Operator int8

const (
	opNone Operator = iota

	Add // x + y
	Sub // x - y
	Mul // x * y
	Div // x / y
	Pow // x ^ y
)

// Operators contains the symbols which are recognized as operators.
const Operators = "+-*/^"

// LookupOperator returns the operator named by sym. The set of operators is
// fixed.
func LookupOperator(sym string) (Operator, bool) {
	switch sym {
	case "+":
		return Add, true
	case "-":
		return Sub, true
	case "*":
		return Mul, true
	case "/":
		return Div, true
	case "^":
		return Pow, true
	}
	return opNone, false
}

// Precedence returns the binding strength of op. Higher binds tighter.
// Operators of equal precedence group from the left, including ^.
func (op Operator) Precedence() int {
	switch op {
	case Add, Sub:
		return 1
	case Mul, Div:
		return 2
	case Pow:
		return 3
	default:
		panic("shunt: precedence of invalid operator " + op.String())
	}
}

// Apply computes x op y. Division and exponentiation follow IEEE 754, so
// dividing by zero gives an infinity or NaN rather than an error.
func (op Operator) Apply(x, y float64) float64 {
	switch op {
	case Add:
		return x + y
	case Sub:
		return x - y
	case Mul:
		return x * y
	case Div:
		return x / y
	case Pow:
		return math.Pow(x, y)
	default:
		panic("shunt: apply invalid operator " + op.String())
	}
}

func (op Operator) String() string {
	if Add <= op && op <= Pow {
		return Operators[op-1 : op]
	}
	return "Operator(" + strconv.Itoa(int(op)) + ")"
}
