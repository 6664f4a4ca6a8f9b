// Package cli provides shared helpers for the ultra CLI.
//
// Copyright (c) 2025 David Duarte
// Licensed under the MIT License
package cli

// withCaseOf lowercases each character of s wherever the corresponding
// character of ref is lowercase, so machine output mirrors the case
// shape of the operator's input. The machine preserves message length,
// but s is returned untouched if the lengths ever disagree.
func withCaseOf(s, ref string) string {
	if len(s) != len(ref) {
		return s
	}

	out := []byte(s)
	for i := 0; i < len(out); i++ {
		if ref[i] >= 'a' && ref[i] <= 'z' && out[i] >= 'A' && out[i] <= 'Z' {
			out[i] += 'a' - 'A'
		}
	}
	return string(out)
}
