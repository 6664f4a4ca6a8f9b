// Package enigma provides historical Enigma machine wirings.
//
// Copyright (c) 2025 David Duarte
// Licensed under the MIT License
package enigma

// Historical rotor wirings from actual Enigma machines.
const (
	RotorI    = "EKMFLGDQVZNTOWYHXUSPAIBRCJ"
	RotorII   = "AJDKSIRUXBLHWTMCQGZNPYFVOE"
	RotorIII  = "BDFHJLCPRTXVZNYEIWGAKMUSQO"
	RotorIV   = "ESOVPZJAYQUIRHXLNFTGKDCMWB"
	RotorV    = "VZBRGITYUPSDNHLXAWMJQOFECK"
	RotorVI   = "JPGVOUMFYQBENHZRDKASXLICTW"
	RotorVII  = "NZJHGRCXMYSWBOUFAIVLPEKQDT"
	RotorVIII = "FKQHTLXOCBJSPDZRAMEWNIUYGV"
)

// Historical reflector wirings.
const (
	ReflectorA = "EJMZALYXVBWFCRQUONTSPIKHGD"
	ReflectorB = "YRUHQSLDPXNGOKMIEBFZCWVJAT"
	ReflectorC = "FVPJIAOYEDRZXWGCTKUQSBNMHL"
)

// MaxPlugs is the number of plugboard cables issued with the machine.
const MaxPlugs = 10

// RotorWirings lists the wirings of rotors I through VIII in order.
var RotorWirings = [8]string{
	RotorI, RotorII, RotorIII, RotorIV, RotorV, RotorVI, RotorVII, RotorVIII,
}

// RotorNotches lists the notch positions of rotors I through VIII in
// order. Rotors VI through VIII carry two notches.
var RotorNotches = [8]string{
	"Q", "E", "V", "J", "Z", "ZM", "ZM", "ZM",
}

// ReflectorWirings lists the wirings of reflectors A, B, and C in order.
var ReflectorWirings = [3]string{
	ReflectorA, ReflectorB, ReflectorC,
}
