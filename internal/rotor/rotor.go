// Package rotor provides the rotor component implementation for the Enigma
// machine. A rotor performs substitution permutations and steps during
// encryption.
//
// Copyright (c) 2025 David Duarte
// Licensed under the MIT License
package rotor

import (
	"fmt"

	"github.com/iKevinY/ultra/internal/alphabet"
)

// Rotor represents a single rotor with its internal wiring and notch
// positions. The offset is the only mutable field; everything else is
// fixed at construction.
type Rotor struct {
	id          string
	forwardMap  [alphabet.Size]int
	backwardMap [alphabet.Size]int
	notches     []int
	offset      int
	keySetting  int
	ringSetting int
}

// New creates a rotor from its wiring table. The wiring must be a
// permutation of the 26 uppercase letters; notches is a string of letter
// positions at which the rotor engages the next rotor's stepping pawl.
// key and ring are uppercase letters naming the initial offset and the
// ring setting.
func New(id, wiring, notches string, key, ring byte) (*Rotor, error) {
	if len(wiring) != alphabet.Size {
		return nil, fmt.Errorf("rotor %s: wiring length (%d) must be %d", id, len(wiring), alphabet.Size)
	}

	r := &Rotor{id: id}
	used := [alphabet.Size]bool{}

	for i := 0; i < alphabet.Size; i++ {
		c := wiring[i]
		if c < 'A' || c > 'Z' {
			return nil, fmt.Errorf("rotor %s: invalid character %q in wiring at position %d", id, c, i)
		}
		out := alphabet.Index(c)
		if used[out] {
			return nil, fmt.Errorf("rotor %s: duplicate output character %c in wiring", id, c)
		}
		used[out] = true
		r.forwardMap[i] = out
		r.backwardMap[out] = i
	}

	for i := 0; i < len(notches); i++ {
		c := notches[i]
		if c < 'A' || c > 'Z' {
			return nil, fmt.Errorf("rotor %s: invalid notch character %q", id, c)
		}
		r.notches = append(r.notches, alphabet.Index(c))
	}

	if key < 'A' || key > 'Z' {
		return nil, fmt.Errorf("rotor %s: key setting must be an uppercase letter, got %q", id, key)
	}
	if ring < 'A' || ring > 'Z' {
		return nil, fmt.Errorf("rotor %s: ring setting must be an uppercase letter, got %q", id, ring)
	}

	r.keySetting = alphabet.Index(key)
	r.ringSetting = alphabet.Index(ring)
	r.offset = r.keySetting

	return r, nil
}

// substitute runs a letter index through a wiring table at the rotor's current
// rotational shift. The ring setting rotates the wiring relative to the
// labelled rim, so it subtracts from the window offset.
func (r *Rotor) substitute(idx int, table *[alphabet.Size]int) int {
	shift := (r.offset - r.ringSetting + alphabet.Size) % alphabet.Size
	return (table[(idx+shift)%alphabet.Size] - shift + alphabet.Size) % alphabet.Size
}

// Forward performs the substitution on the signal path from the keyboard
// toward the reflector.
func (r *Rotor) Forward(idx int) int {
	return r.substitute(idx, &r.forwardMap)
}

// Backward performs the substitution on the return path from the
// reflector.
func (r *Rotor) Backward(idx int) int {
	return r.substitute(idx, &r.backwardMap)
}

// Step advances the rotor one position.
func (r *Rotor) Step() {
	r.offset = (r.offset + 1) % alphabet.Size
}

// AtNotch reports whether the rotor currently sits at a notch position.
// The notch is tested against the bare offset; the ring setting shifts
// the wiring only.
func (r *Rotor) AtNotch() bool {
	for _, n := range r.notches {
		if r.offset == n {
			return true
		}
	}
	return false
}

// Reset returns the rotor to its key setting.
func (r *Rotor) Reset() {
	r.offset = r.keySetting
}

// ID returns the identifier of the rotor.
func (r *Rotor) ID() string {
	return r.id
}

// Position returns the current rotor offset.
func (r *Rotor) Position() int {
	return r.offset
}

// KeySetting returns the offset the rotor resets to.
func (r *Rotor) KeySetting() int {
	return r.keySetting
}

// RingSetting returns the rotor's ring setting.
func (r *Rotor) RingSetting() int {
	return r.ringSetting
}
