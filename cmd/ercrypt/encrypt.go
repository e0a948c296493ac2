package main

import (
	"fmt"
	"os"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/Evan-Clegern/liberc-crypto/nacha"
	"github.com/Evan-Clegern/liberc-crypto/viper1"
)

// readPassphrase prompts on stderr and reads a line from the controlling
// terminal without echoing it, the way the teacher's xs.MakeRaw puts the
// terminal in raw mode for password entry.
func readPassphrase(prompt string) ([]byte, error) {
	fmt.Fprint(os.Stderr, prompt)
	defer fmt.Fprintln(os.Stderr)
	if !term.IsTerminal(int(os.Stdin.Fd())) {
		return readLineFallback(os.Stdin)
	}
	pass, err := term.ReadPassword(int(os.Stdin.Fd()))
	if err != nil {
		return nil, errors.Wrap(err, "ercrypt: reading passphrase")
	}
	return pass, nil
}

// readLineFallback reads one newline-terminated line for non-interactive
// callers (pipes, CI) where term.ReadPassword would fail.
func readLineFallback(f *os.File) ([]byte, error) {
	buf := make([]byte, 0, 64)
	b := make([]byte, 1)
	for {
		n, err := f.Read(b)
		if n == 1 {
			if b[0] == '\n' {
				break
			}
			buf = append(buf, b[0])
		}
		if err != nil {
			break
		}
	}
	return buf, nil
}

// viperKeyIV derives a VIPER-1 key and IV from a passphrase using the same
// NACHA-based recipe test.cpp used for plaintext: a 512E digest trimmed to
// 60 bytes for the key, a 128 digest trimmed to 12 bytes for the IV.
func viperKeyIV(passphrase []byte) (key, iv []byte, err error) {
	k, err := nacha.HashData512E(passphrase)
	if err != nil {
		return nil, nil, errors.Wrap(err, "ercrypt: deriving key")
	}
	i, err := nacha.HashData128(passphrase)
	if err != nil {
		return nil, nil, errors.Wrap(err, "ercrypt: deriving iv")
	}
	return k[:viper1.KeySize], i[:viper1.IVSize], nil
}

func newEncryptCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "encrypt [file]",
		Short: "encrypt a file (or stdin) with VIPER-1, deriving key/IV from a passphrase",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			data, err := readInput(args)
			if err != nil {
				return err
			}
			passphrase, err := readPassphrase("passphrase: ")
			if err != nil {
				return err
			}
			key, iv, err := viperKeyIV(passphrase)
			if err != nil {
				return err
			}
			ciphertext, err := viper1.EncryptData(data, key, iv)
			if err != nil {
				return errors.Wrap(err, "ercrypt encrypt")
			}
			log.Infow("encrypted input", "plaintext_bytes", len(data), "ciphertext_bytes", len(ciphertext))
			hexDump("ciphertext:", ciphertext)
			return nil
		},
	}
	return cmd
}

func newDecryptCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "decrypt [file]",
		Short: "decrypt VIPER-1 ciphertext with the same passphrase it was encrypted under",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			data, err := readInput(args)
			if err != nil {
				return err
			}
			passphrase, err := readPassphrase("passphrase: ")
			if err != nil {
				return err
			}
			key, iv, err := viperKeyIV(passphrase)
			if err != nil {
				return err
			}
			plaintext, err := viper1.DecryptData(data, key, iv)
			if err != nil {
				return errors.Wrap(err, "ercrypt decrypt")
			}
			log.Infow("decrypted input", "ciphertext_bytes", len(data), "plaintext_bytes", len(plaintext))
			hexDump("plaintext:", plaintext)
			return nil
		},
	}
	return cmd
}
