// Package cryptanalysis recovers Enigma settings and plaintext from a
// ciphertext of English prose, using statistical fitness functions to
// grade candidate decryptions.
//
// Copyright (c) 2025 David Duarte
// Licensed under the MIT License
package cryptanalysis

import (
	"fmt"
	"strings"

	"github.com/iKevinY/ultra/internal/alphabet"
	"github.com/iKevinY/ultra/internal/fitness"
	"github.com/iKevinY/ultra/pkg/enigma"
)

// Decrypt searches for the most probable Enigma settings for the given
// ciphertext and returns the corresponding plaintext along with the
// winning machine, reset to its key settings.
//
// The attack works in three phases:
//
//  1. Guess the rotor order and the slow rotor's key setting by index
//     of coincidence.
//  2. Guess the remaining key and ring settings by bigram score.
//  3. Incrementally add the best plugboard pair by quadgram score until
//     no pair improves the decryption.
//
// The result is a statistical best effort; ciphertexts under roughly
// 150 letters carry too little signal for the attack to be reliable.
// An error is returned only when the ciphertext has fewer than four
// alphabetic characters.
func Decrypt(msg string) (string, *enigma.Enigma, error) {
	if len(alphabet.Indices(msg)) < 4 {
		return "", nil, fmt.Errorf("ciphertext must contain at least 4 alphabetic characters")
	}

	e := guessRotorAndFirstKey(msg)
	e = guessKeyAndRing(msg, e)
	e = guessPlugboard(msg, e)

	plaintext := e.Encrypt(msg)
	e.Reset()
	return plaintext, e, nil
}

// newMachine builds an Enigma with reflector B from parameters already
// known to be valid.
func newMachine(rotors, key, ring, plugs string) *enigma.Enigma {
	e, err := enigma.New(rotors, key, ring, 'B', plugs)
	if err != nil {
		panic(err)
	}
	return e
}

// guessRotorAndFirstKey tries all valid rotor orders and key settings
// with ring "AAA" and no plugboard, scoring each decryption by index of
// coincidence. The slow rotor barely moves during a message, so its key
// setting is strongly detectable here; the mid and fast key letters of
// the winner are noise and are discarded by the next phase.
//
// This phase checks 60 * 26^3 == 1,054,560 settings in parallel.
func guessRotorAndFirstKey(msg string) *enigma.Enigma {
	rotors := rotorOrders()
	keys := alphas()

	best := argmax(len(rotors)*len(keys), func(i int) float64 {
		e := newMachine(rotors[i/len(keys)], keys[i%len(keys)], "AAA", "")
		score, _ := fitness.IoC(e.Encrypt(msg))
		return score
	})

	return newMachine(rotors[best/len(keys)], keys[best%len(keys)], "AAA", "")
}

// guessKeyAndRing fixes the rotor order and slow key setting from the
// previous phase and tries all key and ring settings for the mid and
// fast rotors, scoring by bigram probability. The slow rotor's ring
// setting does not affect the decryption and stays at 'A'.
//
// This phase checks 26^4 == 456,976 settings in parallel.
func guessKeyAndRing(msg string, e *enigma.Enigma) *enigma.Enigma {
	rotors := e.RotorList()
	firstKey := e.KeySettings()[0]

	// The 676-element slice of the key vocabulary starting at the slow
	// key letter holds exactly the keys <first><mid><fast>.
	offset := alphabet.Index(firstKey) * 676
	keys := alphas()[offset : offset+676]
	rings := alphas()[:676]

	best := argmax(len(keys)*len(rings), func(i int) float64 {
		e := newMachine(rotors, keys[i/len(rings)], rings[i%len(rings)], "")
		score, _ := fitness.Bigram(e.Encrypt(msg))
		return score
	})

	return newMachine(rotors, keys[best/len(rings)], rings[best%len(rings)], "")
}

// guessPlugboard starts from the machine produced by the previous phase
// with an empty plugboard and greedily adds the plug that most improves
// the quadgram score of the decryption, stopping when no plug improves
// it or MaxPlugs pairs are wired.
//
// At most, this is MaxPlugs * C(26, 2) == 3,250 tests.
func guessPlugboard(msg string, e *enigma.Enigma) *enigma.Enigma {
	rotors := e.RotorList()
	key := e.KeySettings()
	ring := e.RingSettings()

	score := func(plugs []string) float64 {
		m := newMachine(rotors, key, ring, strings.Join(plugs, " "))
		s, _ := fitness.Quadgram(m.Encrypt(msg))
		return s
	}

	var plugs []string
	pool := []byte(alphabet.Letters)
	baseline := score(nil)

	for len(plugs) < enigma.MaxPlugs {
		var pairs []string
		for i := 0; i < len(pool); i++ {
			for j := i + 1; j < len(pool); j++ {
				pairs = append(pairs, string([]byte{pool[i], pool[j]}))
			}
		}

		best := argmax(len(pairs), func(i int) float64 {
			return score(append(plugs[:len(plugs):len(plugs)], pairs[i]))
		})
		bestScore := score(append(plugs[:len(plugs):len(plugs)], pairs[best]))

		if bestScore <= baseline {
			break
		}

		baseline = bestScore
		plugs = append(plugs, pairs[best])
		pair := pairs[best]
		kept := pool[:0]
		for _, c := range pool {
			if c != pair[0] && c != pair[1] {
				kept = append(kept, c)
			}
		}
		pool = kept
	}

	return newMachine(rotors, key, ring, strings.Join(plugs, " "))
}
