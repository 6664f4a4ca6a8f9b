// Package plugboard provides the plugboard (Steckerbrett) component
// implementation for the Enigma machine. It handles reciprocal character
// swapping.
//
// Copyright (c) 2025 David Duarte
// Licensed under the MIT License
package plugboard

import (
	"fmt"
	"strings"

	"github.com/iKevinY/ultra/internal/alphabet"
)

// Plugboard represents the plugboard component of an Enigma machine.
// Unwired letters map to themselves.
type Plugboard struct {
	mapping [alphabet.Size]int
}

// New creates a plugboard from a whitespace-delimited list of letter
// pairs, e.g. "AB CD". Each token must be exactly two letters. When a
// letter appears in more than one pair the later pair wins and the
// orphaned partner reverts to identity, keeping the mapping an
// involution.
func New(pairs string) (*Plugboard, error) {
	p := &Plugboard{}
	for i := range p.mapping {
		p.mapping[i] = i
	}

	for _, pair := range strings.Fields(pairs) {
		if len(pair) != 2 || !alphabet.IsLetter(pair[0]) || !alphabet.IsLetter(pair[1]) {
			return nil, fmt.Errorf("plugboard pair %q must be exactly two letters", pair)
		}
		a := alphabet.Index(alphabet.Upper(pair[0]))
		b := alphabet.Index(alphabet.Upper(pair[1]))
		if a == b {
			return nil, fmt.Errorf("plugboard pair %q connects a letter to itself", pair)
		}

		p.unplug(a)
		p.unplug(b)
		p.mapping[a] = b
		p.mapping[b] = a
	}

	return p, nil
}

// unplug disconnects idx and its partner, if any.
func (p *Plugboard) unplug(idx int) {
	partner := p.mapping[idx]
	p.mapping[partner] = partner
	p.mapping[idx] = idx
}

// Map applies the plugboard swap to a letter index. Unwired letters are
// returned unchanged.
func (p *Plugboard) Map(idx int) int {
	return p.mapping[idx]
}

// PairCount returns the number of wired pairs.
func (p *Plugboard) PairCount() int {
	n := 0
	for i, out := range p.mapping {
		if out > i {
			n++
		}
	}
	return n
}

// String renders the wired pairs in alphabetical order, the smaller
// letter of each pair first, or "<none>" when no pairs are wired.
func (p *Plugboard) String() string {
	var b strings.Builder
	for i, out := range p.mapping {
		if out > i {
			if b.Len() > 0 {
				b.WriteByte(' ')
			}
			b.WriteByte(alphabet.Letter(i))
			b.WriteByte(alphabet.Letter(out))
		}
	}
	if b.Len() == 0 {
		return "<none>"
	}
	return b.String()
}
