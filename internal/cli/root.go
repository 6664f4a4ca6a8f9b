// Package cli provides the command-line interface for ultra.
//
// Copyright (c) 2025 David Duarte
// Licensed under the MIT License
package cli

import (
	"fmt"
	"os"

	"github.com/iKevinY/ultra"
	"github.com/iKevinY/ultra/pkg/cryptanalysis"
	"github.com/iKevinY/ultra/pkg/enigma"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "ultra [flags] <message>",
	Short: "Cryptanalysis of the Enigma machine",
	Long: `ultra simulates the 3-rotor army Enigma machine and performs
ciphertext-only attacks against messages of English prose.

Examples:
  ultra "The quick brown fox jumps over the lazy dog"
  ultra --key CAT --ring DOG "Attack at dawn"
  ultra --randomize "Attack at dawn"
  ultra --decrypt "NTZ NTQLZ JMWLL ART BBNOW WZQK KEQ IEVK LZO"`,
	Version:       ultra.GetVersion(),
	Args:          cobra.ExactArgs(1),
	SilenceUsage: true,
	RunE:         run,
}

// Execute runs the root command and handles errors.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.Flags().BoolP("decrypt", "d", false, "Decrypt the message with a ciphertext-only attack")
	rootCmd.Flags().BoolP("randomize", "R", false, "Encrypt with randomly generated Enigma settings")
	rootCmd.Flags().StringP("rotor", "w", "123", "Rotor order (three digits from 1 to 8)")
	rootCmd.Flags().StringP("key", "k", "AAA", "Key settings (three letters)")
	rootCmd.Flags().StringP("ring", "r", "AAA", "Ring settings (three letters)")
	rootCmd.Flags().StringP("plugboard", "p", "", "Plugboard pairs (e.g. \"AB CD\")")
	rootCmd.Flags().StringP("config", "c", "", "Machine settings JSON file")
}

func run(cmd *cobra.Command, args []string) error {
	msg := args[0]

	if decrypt, _ := cmd.Flags().GetBool("decrypt"); decrypt {
		plaintext, machine, err := cryptanalysis.Decrypt(msg)
		if err != nil {
			return err
		}
		fmt.Println(withCaseOf(plaintext, msg))
		fmt.Fprintln(os.Stderr, machine)
		return nil
	}

	if randomize, _ := cmd.Flags().GetBool("randomize"); randomize {
		machine := enigma.Random()
		fmt.Println(withCaseOf(machine.Encrypt(msg), msg))
		fmt.Fprintln(os.Stderr, machine)
		return nil
	}

	machine, err := machineFromFlags(cmd)
	if err != nil {
		return err
	}
	fmt.Println(withCaseOf(machine.Encrypt(msg), msg))
	return nil
}

// machineFromFlags builds the Enigma from a settings file when --config
// is given, and from the individual flags otherwise. The reflector is
// always B.
func machineFromFlags(cmd *cobra.Command) (*enigma.Enigma, error) {
	if configFile, _ := cmd.Flags().GetString("config"); configFile != "" {
		data, err := os.ReadFile(configFile)
		if err != nil {
			return nil, fmt.Errorf("failed to read config file: %v", err)
		}
		return enigma.NewFromJSON(data)
	}

	rotors, _ := cmd.Flags().GetString("rotor")
	key, _ := cmd.Flags().GetString("key")
	ring, _ := cmd.Flags().GetString("ring")
	plugs, _ := cmd.Flags().GetString("plugboard")

	return enigma.New(rotors, key, ring, 'B', plugs)
}
