package enigma

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustNew(t *testing.T, rotors, key, ring string, refl byte, plugs string) *Enigma {
	t.Helper()
	e, err := New(rotors, key, ring, refl, plugs)
	require.NoError(t, err)
	return e
}

func TestKnownCiphertexts(t *testing.T) {
	tests := []struct {
		name   string
		rotors string
		key    string
		ring   string
		plugs  string
		msg    string
		want   string
	}{
		{"identity settings", "123", "AAA", "AAA", "", "AAAAAAAA", "BDZGOWCX"},
		{"key and ring", "123", "BAT", "HTU", "", "THEQUICKBROWNFOX", "USSXBXPNRLBSTKQR"},
		{"ring only", "123", "AAA", "ADU", "", "THEQUICKBROWNFOX", "ACGXKHKYCBVQZMJM"},
		{"key setting", "123", "CAT", "AAA", "", "AAAAA", "XLEPK"},
		{"ring setting", "123", "AAA", "DOG", "", "AAAAA", "XKJZE"},
		{"with plugboard", "123", "ABC", "DEF", "PY", "ENIGMA", "HKAJWW"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := mustNew(t, tt.rotors, tt.key, tt.ring, 'B', tt.plugs)
			assert.Equal(t, tt.want, e.Encrypt(tt.msg))
		})
	}
}

func TestSymmetricalBehaviour(t *testing.T) {
	msg := strings.Repeat("THE QUICK BROWN FOX JUMPS OVER THE LAZY DOG ", 10)

	for seed := uint64(0); seed < 10; seed++ {
		e := RandomFromSeed(seed)
		ciphertext := e.Encrypt(msg)

		e.Reset()
		plaintext := e.Encrypt(ciphertext)

		require.Equal(t, msg, plaintext, "seed %d: %s", seed, e)
	}
}

func TestNoFixedPoints(t *testing.T) {
	// The reflector's involution makes it impossible for any letter to
	// encrypt to itself, at any rotor position.
	for _, letter := range []string{"A", "M", "Z"} {
		e := mustNew(t, "123", "AAA", "AAA", 'B', "AZ BY")
		out := e.Encrypt(strings.Repeat(letter, 1000))
		assert.NotContains(t, out, letter)
	}
}

func TestCaseInsensitive(t *testing.T) {
	e := mustNew(t, "123", "AAA", "AAA", 'B', "")
	first := e.Encrypt("Test Message")

	e.Reset()
	second := e.Encrypt("TEST MESSAGE")

	assert.Equal(t, first, second)
}

func TestPassthrough(t *testing.T) {
	e := mustNew(t, "123", "AAA", "AAA", 'B', "")
	msg := "ATTACK AT DAWN, 05:00! (señal) #1"
	out := e.Encrypt(msg)

	require.Equal(t, len(msg), len(out))
	for i := 0; i < len(msg); i++ {
		c := msg[i]
		isLetter := (c >= 'A' && c <= 'Z') || (c >= 'a' && c <= 'z')
		if !isLetter {
			assert.Equal(t, c, out[i], "position %d", i)
		}
	}
}

func TestPassthroughDoesNotStep(t *testing.T) {
	e := mustNew(t, "123", "AAA", "AAA", 'B', "")
	first := e.Encrypt("AB")

	e.Reset()
	second := e.Encrypt("A ,.!?\t B")

	assert.Equal(t, first[0], second[0])
	assert.Equal(t, first[1], second[len(second)-1])
}

func TestRepetitionPeriod(t *testing.T) {
	// Due to the double-stepping of the middle rotor, the machine has a
	// period of 26 * 25 * 26 rather than the expected 26^3.
	e := mustNew(t, "123", "AAA", "AAA", 'B', "")
	e.Encrypt(strings.Repeat("A", 26*25*26))
	assert.Equal(t, [3]int{0, 0, 0}, e.Positions())
}

func TestIdenticalFromSameSeed(t *testing.T) {
	e1 := RandomFromSeed(42)
	e2 := RandomFromSeed(42)
	assert.Equal(t, e1.Encrypt("ENIGMA"), e2.Encrypt("ENIGMA"))
	assert.Equal(t, e1.String(), e2.String())
}

func TestRandomSettingsInRange(t *testing.T) {
	for seed := uint64(0); seed < 50; seed++ {
		e := RandomFromSeed(seed)

		rotors := e.RotorList()
		require.Len(t, rotors, 3)
		seen := map[byte]bool{}
		for i := 0; i < 3; i++ {
			require.GreaterOrEqual(t, rotors[i], byte('1'))
			require.LessOrEqual(t, rotors[i], byte('5'))
			require.False(t, seen[rotors[i]], "duplicate rotor in %q", rotors)
			seen[rotors[i]] = true
		}

		pairs := e.Plugboard()
		if pairs != "<none>" {
			require.LessOrEqual(t, len(strings.Fields(pairs)), MaxPlugs)
		}
	}
}

func TestAccessors(t *testing.T) {
	e := mustNew(t, "123", "ABC", "DEF", 'B', "PY")

	assert.Equal(t, "123", e.RotorList())
	assert.Equal(t, "ABC", e.KeySettings())
	assert.Equal(t, "DEF", e.RingSettings())
	assert.Equal(t, "B", e.ReflectorID())
	assert.Equal(t, "PY", e.Plugboard())
	assert.Equal(t, "Rotors: 1-2-3 / Key: A-B-C / Ring: D-E-F / Plugs: PY", e.String())
}

func TestDisplayWithoutPlugs(t *testing.T) {
	e := mustNew(t, "514", "QWE", "RTY", 'C', "")
	assert.Equal(t, "Rotors: 5-1-4 / Key: Q-W-E / Ring: R-T-Y / Plugs: <none>", e.String())
}

func TestNewErrors(t *testing.T) {
	tests := []struct {
		name   string
		rotors string
		key    string
		ring   string
		refl   byte
		plugs  string
	}{
		{"two rotors", "12", "AAA", "AAA", 'B', ""},
		{"four rotors", "1234", "AAAA", "AAAA", 'B', ""},
		{"rotor out of range", "129", "AAA", "AAA", 'B', ""},
		{"rotor not a digit", "12x", "AAA", "AAA", 'B', ""},
		{"short key", "123", "AA", "AAA", 'B', ""},
		{"lowercase key", "123", "aaa", "AAA", 'B', ""},
		{"short ring", "123", "AAA", "AA", 'B', ""},
		{"bad reflector", "123", "AAA", "AAA", 'D', ""},
		{"bad plug token", "123", "AAA", "AAA", 'B', "ABC"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := New(tt.rotors, tt.key, tt.ring, tt.refl, tt.plugs)
			assert.Error(t, err)
		})
	}
}
