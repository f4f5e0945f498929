package shunt_test

import (
	"errors"
	"fmt"

	"github.com/zephyrtronium/shunt"
)

func ExampleEvaluate() {
	r, err := shunt.Evaluate([]string{"(", "1", "+", "2", ")", "*", "3"})
	fmt.Println(r, err)

	// Output:
	// 9 <nil>
}

func ExampleEvalString() {
	for _, src := range []string{"2 + 3 * 4", "2 ^ 3 ^ 2", "1 / 0", "( 1 + 2", "1 + x"} {
		r, err := shunt.EvalString(src)
		var m *shunt.MalformedExpressionError
		switch {
		case errors.As(err, &m):
			fmt.Println(src, "=>", m.Problem)
		case err != nil:
			fmt.Println(src, "=>", err)
		default:
			fmt.Println(src, "=", r)
		}
	}

	// Output:
	// 2 + 3 * 4 = 14
	// 2 ^ 3 ^ 2 = 64
	// 1 / 0 = +Inf
	// ( 1 + 2 => open parenthesis with no close parenthesis
	// 1 + x => token 3: invalid token "x"
}
