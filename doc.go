// Package shunt evaluates infix arithmetic with an operator-precedence stack
// reduction, in the manner of Dijkstra's shunting-yard algorithm, without
// building a parse tree.
//
// Expressions are whitespace-separated tokens: "( 1 + 2 ) * 3", not
// "(1+2)*3". Numbers are decimal literals with an optional sign and point, so
// "-5.5" is a number while "-" is the subtraction operator. The operators are
// + - * / ^ with the usual precedence, but all of them group from the left:
// "2 ^ 3 ^ 2" is (2^3)^2 = 64. Arithmetic is float64 with IEEE 754 semantics,
// so "1 / 0" is +Inf rather than an error.
//
package shunt
