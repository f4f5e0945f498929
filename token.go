package shunt

import (
	"errors"
	"strconv"
	"strings"
)

type tokenKind int8

const (
	tokenNone tokenKind = iota
	// tokenNum is a decimal literal, optionally signed.
	tokenNum
	// tokenOp is one of Operators.
	tokenOp
	// tokenOpen is (.
	tokenOpen
	// tokenClose is ).
	tokenClose
)

// Fields splits src around runs of whitespace. It is the tokenization
// EvalString uses; tokens must be separated by whitespace, so "1+2" is a
// single (invalid) token.
func Fields(src string) []string {
	return strings.Fields(src)
}

// classify determines the kind of a single token.
func classify(tok string) tokenKind {
	switch {
	case tok == "(":
		return tokenOpen
	case tok == ")":
		return tokenClose
	case isNum(tok):
		return tokenNum
	}
	if _, ok := LookupOperator(tok); ok {
		return tokenOp
	}
	return tokenNone
}

// isNum reports whether the whole of s is an optionally signed decimal
// literal: digits with at most one point, ending in a digit.
func isNum(s string) bool {
	if s != "" && (s[0] == '+' || s[0] == '-') {
		s = s[1:]
	}
	var dot, last bool
	for i := 0; i < len(s); i++ {
		switch c := s[i]; {
		case '0' <= c && c <= '9':
			last = true
		case c == '.':
			if dot {
				return false
			}
			dot = true
			last = false
		default:
			return false
		}
	}
	return last
}

// num parses a token for which isNum is true. Literals too large for a
// float64 become infinities.
func num(s string) float64 {
	r, err := strconv.ParseFloat(s, 64)
	switch {
	case err == nil: // do nothing
	case errors.Is(err, strconv.ErrRange):
		// ParseFloat already gives ±Inf or 0 as appropriate.
	default:
		panic("shunt: invalid number: " + s + " (" + err.Error() + ")")
	}
	return r
}
