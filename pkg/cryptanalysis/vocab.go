// Package cryptanalysis provides the precomputed search vocabularies.
//
// Copyright (c) 2025 David Duarte
// Licensed under the MIT License
package cryptanalysis

import "sync"

// alphas returns the 26^3 three-letter strings "AAA" through "ZZZ" in
// lexicographic order. Built once and shared read-only.
var alphas = sync.OnceValue(func() []string {
	out := make([]string, 0, 26*26*26)
	for a := byte('A'); a <= 'Z'; a++ {
		for b := byte('A'); b <= 'Z'; b++ {
			for c := byte('A'); c <= 'Z'; c++ {
				out = append(out, string([]byte{a, b, c}))
			}
		}
	}
	return out
})

// rotorOrders returns the 60 ordered arrangements of three distinct
// rotors drawn from I through V.
var rotorOrders = sync.OnceValue(func() []string {
	out := make([]string, 0, 60)
	for a := byte('1'); a <= '5'; a++ {
		for b := byte('1'); b <= '5'; b++ {
			for c := byte('1'); c <= '5'; c++ {
				if a != b && b != c && a != c {
					out = append(out, string([]byte{a, b, c}))
				}
			}
		}
	}
	return out
})
