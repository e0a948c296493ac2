package main

import (
	"os"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/Evan-Clegern/liberc-crypto/ercrypto"
)

// newRoundtripCmd reproduces the original test.cpp demo scenario: hash a
// file for a VIPER-1 key and IV, encrypt it, then decrypt and confirm the
// result matches.
func newRoundtripCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "roundtrip [file]",
		Short: "hash input for a VIPER-1 key/IV, encrypt, decrypt, and verify it matches",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			data, err := readInput(args)
			if err != nil {
				return err
			}
			ciphertext, recovered, err := ercrypto.RoundTrip(data)
			if err != nil {
				return errors.Wrap(err, "ercrypt roundtrip")
			}
			hexDump("ciphertext:", ciphertext)
			ok := string(recovered) == string(data)
			log.Infow("roundtrip complete", "input_bytes", len(data), "matches", ok)
			if !ok {
				os.Stderr.WriteString("roundtrip mismatch\n")
				os.Exit(1)
			}
			return nil
		},
	}
	return cmd
}
