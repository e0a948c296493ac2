package main

import (
	"os"
	"strconv"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/Evan-Clegern/liberc-crypto/kobra"
)

func newConcealCmd() *cobra.Command {
	var (
		hiddenPath string
		ivFlag     string
	)
	cmd := &cobra.Command{
		Use:   "conceal <cover-file>",
		Short: "mask a hidden message against a cover file with KOBRA",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cover, err := os.ReadFile(args[0])
			if err != nil {
				return errors.Wrapf(err, "ercrypt conceal: reading cover %s", args[0])
			}
			if hiddenPath == "" {
				return errors.New("ercrypt conceal: --hidden is required")
			}
			hidden, err := os.ReadFile(hiddenPath)
			if err != nil {
				return errors.Wrapf(err, "ercrypt conceal: reading hidden message %s", hiddenPath)
			}
			passphrase, err := readPassphrase("key (>=12 bytes): ")
			if err != nil {
				return err
			}
			iv, err := ivFromFlag(ivFlag, cfg.DefaultIV)
			if err != nil {
				return err
			}

			artifact, err := kobra.Conceal(cover, passphrase, hidden, iv)
			if err != nil {
				return errors.Wrap(err, "ercrypt conceal")
			}
			log.Infow("concealed message", "cover_bytes", len(cover), "hidden_bytes", len(hidden))
			hexDump("extract key (same length as hidden message):", artifact.ExtractKey)
			return nil
		},
	}
	cmd.Flags().StringVar(&hiddenPath, "hidden", "", "path to the message to conceal")
	cmd.Flags().StringVar(&ivFlag, "iv", "", "single-byte IV in hex, e.g. 42; defaults to config")
	return cmd
}

func newRevealCmd() *cobra.Command {
	var (
		extractKeyPath string
		ivFlag         string
	)
	cmd := &cobra.Command{
		Use:   "reveal <cover-file>",
		Short: "recover a message KOBRA previously concealed against a cover file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cover, err := os.ReadFile(args[0])
			if err != nil {
				return errors.Wrapf(err, "ercrypt reveal: reading cover %s", args[0])
			}
			if extractKeyPath == "" {
				return errors.New("ercrypt reveal: --extract-key is required")
			}
			extractKey, err := os.ReadFile(extractKeyPath)
			if err != nil {
				return errors.Wrapf(err, "ercrypt reveal: reading extract key %s", extractKeyPath)
			}
			passphrase, err := readPassphrase("key (>=12 bytes): ")
			if err != nil {
				return err
			}
			iv, err := ivFromFlag(ivFlag, cfg.DefaultIV)
			if err != nil {
				return err
			}

			artifact := kobra.KeyPair{EncryptKey: passphrase, ExtractKey: extractKey, IV: iv}
			hidden, err := kobra.Reveal(cover, artifact)
			if err != nil {
				return errors.Wrap(err, "ercrypt reveal")
			}
			log.Infow("revealed message", "cover_bytes", len(cover), "hidden_bytes", len(hidden))
			hexDump("hidden message:", hidden)
			return nil
		},
	}
	cmd.Flags().StringVar(&extractKeyPath, "extract-key", "", "path to the extract key Conceal produced")
	cmd.Flags().StringVar(&ivFlag, "iv", "", "single-byte IV in hex, e.g. 42; defaults to config")
	return cmd
}

func ivFromFlag(flag string, fallback byte) (byte, error) {
	if flag == "" {
		return fallback, nil
	}
	n, err := strconv.ParseUint(flag, 16, 8)
	if err != nil {
		return 0, errors.Wrapf(err, "ercrypt: --iv %q is not a hex byte", flag)
	}
	return byte(n), nil
}
