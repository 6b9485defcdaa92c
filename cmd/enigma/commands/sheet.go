package commands

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"enigma/internal/config"
	"enigma/internal/domain"
	ciphersvc "enigma/internal/services/cipher"
)

func sheetCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "sheet",
		Short: "Manage stored key sheets",
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if err := cmd.Root().PersistentPreRunE(cmd, args); err != nil {
				return err
			}
			if passphrase == "" {
				return fmt.Errorf("passphrase required (-p)")
			}
			return nil
		},
	}
	cmd.AddCommand(sheetSaveCmd(), sheetListCmd(), sheetShowCmd(), sheetDeleteCmd())
	return cmd
}

func sheetSaveCmd() *cobra.Command {
	var sf settingsFlags
	cmd := &cobra.Command{
		Use:   "save <name>",
		Short: "Validate and store machine settings under a name",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			settings, err := sf.resolve(cmd)
			if err != nil {
				return err
			}
			ks, err := appCtx.KeySheets.SaveKeySheet(passphrase, domain.SheetName(args[0]), settings)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Saved %s.\nFingerprint: %s\n", ks.Name, ciphersvc.Fingerprint(ks.Settings))
			return nil
		},
	}
	sf.bind(cmd)
	return cmd
}

func sheetListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List stored key sheets",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			sheets, err := appCtx.KeySheets.ListKeySheets(passphrase)
			if err != nil {
				return err
			}
			for _, ks := range sheets {
				fmt.Fprintf(cmd.OutOrStdout(), "%s\t%s\n", ks.Name, config.Canonical(ks.Settings))
			}
			return nil
		},
	}
}

func sheetShowCmd() *cobra.Command {
	var asYAML bool
	cmd := &cobra.Command{
		Use:   "show <name>",
		Short: "Print a stored key sheet",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ks, err := appCtx.KeySheets.LoadKeySheet(passphrase, domain.SheetName(args[0]))
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			if asYAML {
				b, err := config.ToYAML(ks.Settings)
				if err != nil {
					return err
				}
				_, err = out.Write(b)
				return err
			}
			s := ks.Settings
			plug := config.NoPlugboard
			if len(s.Plugboard) > 0 {
				plug = strings.Join(s.Plugboard, " ")
			}
			fmt.Fprintf(out, "Name:        %s\n", ks.Name)
			fmt.Fprintf(out, "ID:          %s\n", ks.ID)
			fmt.Fprintf(out, "Created:     %s\n", time.Unix(ks.CreatedUTC, 0).UTC().Format(time.RFC3339))
			fmt.Fprintf(out, "Profile:     %s\n", s.Profile)
			fmt.Fprintf(out, "Reflector:   %s\n", s.Reflector)
			fmt.Fprintf(out, "Rotors:      %s\n", strings.Join(s.Rotors, " "))
			fmt.Fprintf(out, "Rings:       %s\n", s.Rings)
			fmt.Fprintf(out, "Positions:   %s\n", s.Positions)
			fmt.Fprintf(out, "Plugboard:   %s\n", plug)
			fmt.Fprintf(out, "Fingerprint: %s\n", ciphersvc.Fingerprint(s))
			return nil
		},
	}
	cmd.Flags().BoolVar(&asYAML, "yaml", false, "print as a YAML settings file usable with --config")
	return cmd
}

func sheetDeleteCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "delete <name>",
		Short: "Remove a stored key sheet",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := appCtx.KeySheets.DeleteKeySheet(passphrase, domain.SheetName(args[0])); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Deleted %s\n", args[0])
			return nil
		},
	}
}
