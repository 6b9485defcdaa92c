package commands

import (
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"enigma/internal/app"
)

var (
	home       string
	passphrase string
	kdf        string
	verbose    bool
	appCtx     *app.Wire
)

// Execute runs the CLI with os.Args.
func Execute() error {
	return newRootCmd().Execute()
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:          "enigma",
		Short:        "Enigma I / M3 rotor cipher machine",
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if home == "" {
				dir, err := os.UserHomeDir()
				if err != nil {
					return err
				}
				home = filepath.Join(dir, ".enigma")
			}
			w, err := app.NewWire(app.Config{
				Home:    home,
				KDF:     kdf,
				Verbose: verbose,
				LogOut:  cmd.ErrOrStderr(),
			})
			if err != nil {
				return err
			}
			appCtx = w
			return nil
		},
	}

	root.PersistentFlags().StringVar(&home, "home", "", "config dir (default ~/.enigma)")
	root.PersistentFlags().StringVarP(&passphrase, "passphrase", "p", "", "passphrase protecting stored key sheets")
	root.PersistentFlags().StringVar(&kdf, "kdf", "argon2id", "key derivation for new key sheet files (argon2id, scrypt)")
	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "log setting fingerprints and rotor positions to stderr")

	root.AddCommand(encodeCmd(), profilesCmd(), sheetCmd())
	return root
}
