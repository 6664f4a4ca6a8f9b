// Package enigma provides randomized machine generation.
//
// Copyright (c) 2025 David Duarte
// Licensed under the MIT License
package enigma

import (
	"math/rand"
	"strings"
	"time"
)

// Random creates an Enigma with random settings: three distinct rotors
// drawn from I through V, random key and ring settings, and up to
// MaxPlugs plugboard pairs.
func Random() *Enigma {
	return randomFromRNG(rand.New(rand.NewSource(time.Now().UnixNano())))
}

// RandomFromSeed creates a random Enigma from a seed. Two machines built
// from the same seed are identical.
func RandomFromSeed(seed uint64) *Enigma {
	return randomFromRNG(rand.New(rand.NewSource(int64(seed))))
}

func randomFromRNG(rng *rand.Rand) *Enigma {
	pool := []byte("12345")
	rng.Shuffle(len(pool), func(i, j int) {
		pool[i], pool[j] = pool[j], pool[i]
	})
	rotors := string(pool[:3])

	shuffled := func() []byte {
		alpha := []byte("ABCDEFGHIJKLMNOPQRSTUVWXYZ")
		rng.Shuffle(len(alpha), func(i, j int) {
			alpha[i], alpha[j] = alpha[j], alpha[i]
		})
		return alpha
	}

	key := string(shuffled()[:3])
	ring := string(shuffled()[:3])

	// Take disjoint pairs off the front of a shuffled alphabet.
	alpha := shuffled()
	var plugs []string
	for i := 0; i < rng.Intn(MaxPlugs+1); i++ {
		plugs = append(plugs, string(alpha[2*i:2*i+2]))
	}

	e, err := New(rotors, key, ring, 'B', strings.Join(plugs, " "))
	if err != nil {
		// All inputs are drawn from valid ranges.
		panic(err)
	}
	return e
}
