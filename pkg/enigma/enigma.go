// Package enigma provides the Enigma M3 machine implementation.
//
// Copyright (c) 2025 David Duarte
// Licensed under the MIT License
package enigma

import (
	"fmt"
	"strings"

	"github.com/iKevinY/ultra/internal/alphabet"
	"github.com/iKevinY/ultra/internal/plugboard"
	"github.com/iKevinY/ultra/internal/reflector"
	"github.com/iKevinY/ultra/internal/rotor"
)

// Enigma represents an Enigma M3 machine with rotor, key, and ring
// settings. The rotors are named in signal-travel order from the
// keyboard: the fast rotor steps on every keypress, the slow rotor
// barely moves during a message.
type Enigma struct {
	slow      *rotor.Rotor
	mid       *rotor.Rotor
	fast      *rotor.Rotor
	reflector *reflector.Reflector
	plugboard *plugboard.Plugboard
	rotorList string
}

// New creates an Enigma machine. rotors is a string of three digits from
// '1' to '8' (rotors I through VIII), key and ring are three-letter key
// and ring settings, refl is one of 'A', 'B', or 'C', and plugs is a
// whitespace-delimited list of plugboard pairs.
func New(rotors, key, ring string, refl byte, plugs string) (*Enigma, error) {
	if len(rotors) != 3 {
		return nil, fmt.Errorf("exactly 3 rotors must be given, got %q", rotors)
	}
	for i := 0; i < 3; i++ {
		if rotors[i] < '1' || rotors[i] > '8' {
			return nil, fmt.Errorf("rotor %q is not a digit from 1 to 8", rotors[i])
		}
	}
	if len(key) != 3 {
		return nil, fmt.Errorf("key setting %q must be exactly three letters", key)
	}
	if len(ring) != 3 {
		return nil, fmt.Errorf("ring setting %q must be exactly three letters", ring)
	}

	rs := make([]*rotor.Rotor, 3)
	for i := 0; i < 3; i++ {
		num := int(rotors[i] - '0')
		r, err := rotor.New(rotors[i:i+1], RotorWirings[num-1], RotorNotches[num-1], key[i], ring[i])
		if err != nil {
			return nil, err
		}
		rs[i] = r
	}

	if refl < 'A' || refl > 'C' {
		return nil, fmt.Errorf("reflector %q must be one of 'A', 'B', or 'C'", refl)
	}
	rf, err := reflector.New(string(refl), ReflectorWirings[refl-'A'])
	if err != nil {
		return nil, err
	}

	pb, err := plugboard.New(plugs)
	if err != nil {
		return nil, err
	}

	return &Enigma{
		slow:      rs[0],
		mid:       rs[1],
		fast:      rs[2],
		reflector: rf,
		plugboard: pb,
		rotorList: rotors,
	}, nil
}

// Encrypt encrypts an entire message, stepping the rotors of the
// machine before each alphabetic character. Non-ASCII and non-alphabetic
// bytes pass through unchanged and do not step the rotors. Decryption is
// the same operation on a machine in the same starting state.
func (e *Enigma) Encrypt(msg string) string {
	var b strings.Builder
	b.Grow(len(msg))
	for i := 0; i < len(msg); i++ {
		b.WriteByte(e.encryptChar(msg[i]))
	}
	return b.String()
}

// encryptChar advances the rotors and substitutes a single character, if
// the input character is alphabetic.
func (e *Enigma) encryptChar(c byte) byte {
	if !alphabet.IsLetter(c) {
		return c
	}

	e.step()
	return alphabet.Letter(e.substitute(alphabet.Index(alphabet.Upper(c))))
}

// substitute passes a letter index through the plugboard, the rotors
// from fast to slow, the reflector, the rotors inverted from slow to
// fast, and the plugboard again.
func (e *Enigma) substitute(idx int) int {
	cur := e.plugboard.Map(idx)
	cur = e.slow.Forward(e.mid.Forward(e.fast.Forward(cur)))
	cur = e.reflector.Reflect(cur)
	cur = e.fast.Backward(e.mid.Backward(e.slow.Backward(cur)))
	return e.plugboard.Map(cur)
}

// step advances the fast rotor, and also the mid and slow rotors when a
// notch is engaged. The mid rotor steps both when the fast rotor sits at
// a notch and on the keypress after its own notch engagement (the
// double-stepping anomaly), giving the machine a period of 26*25*26.
func (e *Enigma) step() {
	if e.mid.AtNotch() {
		e.mid.Step()
		e.slow.Step()
	} else if e.fast.AtNotch() {
		e.mid.Step()
	}
	e.fast.Step()
}

// Reset returns every rotor to its key setting.
func (e *Enigma) Reset() {
	e.slow.Reset()
	e.mid.Reset()
	e.fast.Reset()
}

// RotorList returns the machine's rotor order, e.g. "123".
func (e *Enigma) RotorList() string {
	return e.rotorList
}

// KeySettings returns the machine's key settings, e.g. "ABC".
func (e *Enigma) KeySettings() string {
	return string([]byte{
		alphabet.Letter(e.slow.KeySetting()),
		alphabet.Letter(e.mid.KeySetting()),
		alphabet.Letter(e.fast.KeySetting()),
	})
}

// RingSettings returns the machine's ring settings, e.g. "DEF".
func (e *Enigma) RingSettings() string {
	return string([]byte{
		alphabet.Letter(e.slow.RingSetting()),
		alphabet.Letter(e.mid.RingSetting()),
		alphabet.Letter(e.fast.RingSetting()),
	})
}

// ReflectorID returns the machine's reflector letter, e.g. "B".
func (e *Enigma) ReflectorID() string {
	return e.reflector.ID()
}

// Plugboard returns the display form of the machine's plugboard.
func (e *Enigma) Plugboard() string {
	return e.plugboard.String()
}

// Positions returns the current offsets of the slow, mid, and fast
// rotors.
func (e *Enigma) Positions() [3]int {
	return [3]int{e.slow.Position(), e.mid.Position(), e.fast.Position()}
}

// String renders the machine's settings summary.
func (e *Enigma) String() string {
	dash := func(s string) string {
		return strings.Join(strings.Split(s, ""), "-")
	}
	return fmt.Sprintf("Rotors: %s / Key: %s / Ring: %s / Plugs: %s",
		dash(e.RotorList()), dash(e.KeySettings()), dash(e.RingSettings()), e.plugboard)
}
