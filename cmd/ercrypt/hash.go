package main

import (
	"io"
	"os"
	"strconv"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/Evan-Clegern/liberc-crypto/ercrypto"
	"github.com/Evan-Clegern/liberc-crypto/internal/config"
)

func newHashCmd() *cobra.Command {
	var (
		widthFlag string
		extended  bool
	)
	cmd := &cobra.Command{
		Use:   "hash [file]",
		Short: "digest a file (or stdin) with a fixed-width NACHA adapter",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			data, err := readInput(args)
			if err != nil {
				return err
			}

			width := widthFromConfig(cfg)
			if widthFlag != "" {
				n, err := strconv.Atoi(widthFlag)
				if err != nil {
					return errors.Wrapf(err, "ercrypt: --width %q is not a number", widthFlag)
				}
				width = ercrypto.Width(n)
			}
			ext := cfg.Extended || extended

			digest, err := ercrypto.Hash(data, width, ext)
			if err != nil {
				return errors.Wrap(err, "ercrypt hash")
			}
			log.Infow("hashed input", "bytes", len(data), "width", int(width), "extended", ext)
			hexDump("digest:", digest)
			return nil
		},
	}
	cmd.Flags().StringVar(&widthFlag, "width", "", "output width in bytes (16/32/48/64/96); defaults to config")
	cmd.Flags().BoolVarP(&extended, "extended", "e", false, "use the E (stepped-denominator) variant")
	return cmd
}

func widthFromConfig(c config.Config) ercrypto.Width {
	switch c.DefaultAdapter {
	case config.Nacha128:
		return ercrypto.Width128
	case config.Nacha384:
		return ercrypto.Width384
	case config.Nacha512:
		return ercrypto.Width512
	case config.Nacha768:
		return ercrypto.Width768
	default:
		return ercrypto.Width256
	}
}

func readInput(args []string) ([]byte, error) {
	if len(args) == 0 {
		data, err := io.ReadAll(os.Stdin)
		if err != nil {
			return nil, errors.Wrap(err, "ercrypt: reading stdin")
		}
		return data, nil
	}
	data, err := os.ReadFile(args[0])
	if err != nil {
		return nil, errors.Wrapf(err, "ercrypt: reading %s", args[0])
	}
	return data, nil
}
