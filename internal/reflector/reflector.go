// Package reflector provides the reflector component implementation for the
// Enigma machine. A reflector ensures reciprocal character mapping - if A
// maps to B, then B maps to A.
//
// Copyright (c) 2025 David Duarte
// Licensed under the MIT License
package reflector

import (
	"fmt"

	"github.com/iKevinY/ultra/internal/alphabet"
)

// Reflector represents the reflector component of an Enigma machine.
type Reflector struct {
	id      string
	mapping [alphabet.Size]int
}

// New creates a reflector from a 26-letter wiring string. The wiring must
// be an involution with no letter mapping to itself.
func New(id, wiring string) (*Reflector, error) {
	if len(wiring) != alphabet.Size {
		return nil, fmt.Errorf("reflector %s: wiring length (%d) must be %d", id, len(wiring), alphabet.Size)
	}

	r := &Reflector{id: id}
	used := [alphabet.Size]bool{}

	for i := 0; i < alphabet.Size; i++ {
		c := wiring[i]
		if c < 'A' || c > 'Z' {
			return nil, fmt.Errorf("reflector %s: invalid character %q in wiring at position %d", id, c, i)
		}
		out := alphabet.Index(c)
		if out == i {
			return nil, fmt.Errorf("reflector %s: character %c cannot map to itself", id, c)
		}
		if used[out] {
			return nil, fmt.Errorf("reflector %s: character %c is used multiple times", id, c)
		}
		used[out] = true
		r.mapping[i] = out
	}

	// If A->B then B->A must hold for the signal to return.
	for i := 0; i < alphabet.Size; i++ {
		out := r.mapping[i]
		if r.mapping[out] != i {
			return nil, fmt.Errorf("reflector %s: non-reciprocal mapping: %c->%c but %c->%c",
				id, alphabet.Letter(i), alphabet.Letter(out),
				alphabet.Letter(out), alphabet.Letter(r.mapping[out]))
		}
	}

	return r, nil
}

// Reflect performs the reflection operation on a letter index.
func (r *Reflector) Reflect(idx int) int {
	return r.mapping[idx]
}

// ID returns the identifier of the reflector.
func (r *Reflector) ID() string {
	return r.id
}
