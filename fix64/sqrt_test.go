// Copyright 2020 Aleksandr Demakin. All rights reserved.

package fix64

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSqrt(t *testing.T) {
	a := assert.New(t)
	tests := []struct {
		v      string
		result string
		// raw units of acceptable deviation
		tolerance uint64
	}{
		{"1", "1", 0},
		{"4", "2", 0},
		{"9", "3", 0},
		{"2", "1.414213", 100},
		{"0.25", "0.5", 2},
		{"100", "10", 2},
		{"12345.6789", "111.111106", 100},
	}
	for i, test := range tests {
		t.Run(fmt.Sprintf("%d", i), func(t *testing.T) {
			root, ok := MustFromString(test.v).Sqrt()
			if !a.True(ok) {
				return
			}
			want := MustFromString(test.result)
			var diff Value
			if root.Gt(want) {
				diff, _ = root.Sub(want)
			} else {
				diff, _ = want.Sub(root)
			}
			a.LessOrEqual(diff.Raw(), test.tolerance, "got %s, want %s", root, want)
		})
	}
}

func TestSqrtZero(t *testing.T) {
	a := assert.New(t)
	root, ok := Value(0).Sqrt()
	a.False(ok)
	a.True(root.IsZero())
}

func TestSqrtSquares(t *testing.T) {
	a := assert.New(t)
	// perfect squares come back exactly
	for n := uint64(1); n <= 50; n++ {
		t.Run(fmt.Sprintf("%d", n), func(t *testing.T) {
			sq, err := FromUint64(n * n)
			if !a.NoError(err) {
				return
			}
			root, ok := sq.Sqrt()
			if a.True(ok) {
				want, _ := FromUint64(n)
				a.Equal(want, root)
			}
		})
	}
}

func BenchmarkSqrt(b *testing.B) {
	v := MustFromString("12345.6789")
	for i := 0; i < b.N; i++ {
		v.Sqrt()
	}
}
