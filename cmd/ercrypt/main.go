// Command ercrypt is the thin demo driver for liberc-crypto: it exposes
// VIPER-1, NACHA, and KOBRA over a small tree of subcommands. It is not
// part of the cryptographic core described in spec.md; it only wires the
// core packages to flags, files, and a terminal.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/Evan-Clegern/liberc-crypto/internal/config"
	"github.com/Evan-Clegern/liberc-crypto/internal/logging"
)

var (
	cfgPath string
	debug   bool
	cfg     config.Config
	log     *logging.Logger
)

func main() {
	root := &cobra.Command{
		Use:   "ercrypt",
		Short: "VIPER-1 / NACHA / KOBRA demo driver",
		Long: `ercrypt drives the liberc-crypto primitives from the command line:

  hash     - digest input with a fixed-width NACHA adapter
  encrypt  - encrypt input with VIPER-1, deriving key/IV from a passphrase
  decrypt  - decrypt VIPER-1 ciphertext with the same passphrase
  conceal  - mask a hidden message against a cover file with KOBRA
  reveal   - recover a message KOBRA previously concealed
  roundtrip - hash input for a VIPER-1 key/IV, encrypt, decrypt, and verify

None of these subcommands are part of the cryptographic core; they are a
convenience layer over it.`,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			var err error
			cfg, err = config.Load(cfgPath)
			if err != nil {
				return err
			}
			log, err = logging.New(debug)
			return err
		},
		PersistentPostRunE: func(cmd *cobra.Command, args []string) error {
			if log != nil {
				return log.Sync()
			}
			return nil
		},
	}
	root.PersistentFlags().StringVar(&cfgPath, "config", "", "path to an optional TOML config file")
	root.PersistentFlags().BoolVarP(&debug, "debug", "d", false, "enable debug logging")

	root.AddCommand(newHashCmd())
	root.AddCommand(newEncryptCmd())
	root.AddCommand(newDecryptCmd())
	root.AddCommand(newConcealCmd())
	root.AddCommand(newRevealCmd())
	root.AddCommand(newRoundtripCmd())

	if err := root.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
