// Package enigma provides settings management for the Enigma machine.
//
// Copyright (c) 2025 David Duarte
// Licensed under the MIT License
package enigma

import (
	"encoding/json"
	"fmt"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v5"
)

// Settings represents the serializable configuration of an Enigma
// machine.
type Settings struct {
	Rotors    string `json:"rotors"`
	Key       string `json:"key"`
	Ring      string `json:"ring"`
	Reflector string `json:"reflector"`
	Plugboard string `json:"plugboard"`
}

// settingsSchema validates a settings document before it reaches the
// machine constructor, so malformed rotors, key, ring or reflector fields
// fail with a schema error rather than a construction error. The
// plugboard field is only checked to be a string; its pairs are
// validated by the constructor.
const settingsSchema = `{
	"$schema": "https://json-schema.org/draft/2020-12/schema",
	"type": "object",
	"required": ["rotors", "key", "ring"],
	"properties": {
		"rotors":    {"type": "string", "pattern": "^[1-8]{3}$"},
		"key":       {"type": "string", "pattern": "^[A-Z]{3}$"},
		"ring":      {"type": "string", "pattern": "^[A-Z]{3}$"},
		"reflector": {"type": "string", "pattern": "^[ABC]$"},
		"plugboard": {"type": "string"}
	},
	"additionalProperties": false
}`

var compileSchema = sync.OnceValue(func() *jsonschema.Schema {
	return jsonschema.MustCompileString("settings.json", settingsSchema)
})

// Settings returns the machine's configuration. The plugboard field is
// empty when no pairs are wired.
func (e *Enigma) Settings() Settings {
	plugs := e.Plugboard()
	if plugs == "<none>" {
		plugs = ""
	}
	return Settings{
		Rotors:    e.RotorList(),
		Key:       e.KeySettings(),
		Ring:      e.RingSettings(),
		Reflector: e.ReflectorID(),
		Plugboard: plugs,
	}
}

// MarshalSettings renders the machine's configuration as JSON.
func (e *Enigma) MarshalSettings() ([]byte, error) {
	return json.MarshalIndent(e.Settings(), "", "  ")
}

// NewFromSettings creates an Enigma machine from a Settings value.
// Reflector defaults to 'B' when unset.
func NewFromSettings(s Settings) (*Enigma, error) {
	refl := byte('B')
	if s.Reflector != "" {
		refl = s.Reflector[0]
	}
	return New(s.Rotors, s.Key, s.Ring, refl, s.Plugboard)
}

// NewFromJSON creates an Enigma machine from a JSON settings document,
// validating it against the settings schema first.
func NewFromJSON(data []byte) (*Enigma, error) {
	var doc any
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("invalid settings JSON: %v", err)
	}
	if err := compileSchema().Validate(doc); err != nil {
		return nil, fmt.Errorf("invalid settings: %v", err)
	}

	var s Settings
	if err := json.Unmarshal(data, &s); err != nil {
		return nil, fmt.Errorf("invalid settings JSON: %v", err)
	}
	return NewFromSettings(s)
}
