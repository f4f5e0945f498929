//go:build go1.18
// +build go1.18

package shunt_test

import (
	"errors"
	"testing"

	"github.com/zephyrtronium/shunt"
)

func FuzzEvalString(f *testing.F) {
	f.Add("( 1 + 2 ) * 3")
	f.Add("2 ^ 3 ^ 2")
	f.Add("( ( 1")
	f.Add("1 + x")
	f.Fuzz(func(t *testing.T, s string) {
		r, err := shunt.EvalString(s)
		if err == nil {
			return
		}
		if r != 0 {
			t.Errorf("%q: non-zero result %g with error %v", s, r, err)
		}
		var ie shunt.InputError
		if !errors.As(err, &ie) {
			t.Fatalf("%q: error %#v is not an InputError", s, err)
		}
		if p := ie.Pos(); p < 1 || p > len(shunt.Fields(s))+1 {
			t.Errorf("%q: position %d out of range", s, p)
		}
	})
}
