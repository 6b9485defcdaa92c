package commands

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"enigma/internal/domain"
	"enigma/internal/format"
)

// encode [text]: encipher text; with the same settings it also deciphers.
func encodeCmd() *cobra.Command {
	var (
		sf         settingsFlags
		sheet      string
		inFile     string
		outFile    string
		raw        bool
		groupSize  int
		lineGroups int
	)
	cmd := &cobra.Command{
		Use:     "encode [text]",
		Aliases: []string{"decode"},
		Short:   "Encipher or decipher text",
		Long: `Encipher text with an Enigma machine. Deciphering is the same operation:
run the ciphertext through a machine set up identically.

Input comes from the argument, --file or stdin. Non-letters are dropped and
lowercase letters are folded to uppercase. Output is printed in five-letter
groups unless --raw is given.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			settings, err := encodeSettings(cmd, &sf, sheet)
			if err != nil {
				return err
			}

			emit := func(out io.Writer) error {
				if raw && len(args) == 0 {
					in, closeIn, err := openInput(cmd, inFile)
					if err != nil {
						return err
					}
					defer closeIn()
					if _, err := appCtx.Cipher.EncodeStream(settings, in, out); err != nil {
						return err
					}
					_, err = fmt.Fprintln(out)
					return err
				}

				text, err := readText(cmd, args, inFile)
				if err != nil {
					return err
				}
				res, err := appCtx.Cipher.Encode(settings, text)
				if err != nil {
					return err
				}
				if raw {
					_, err = fmt.Fprintln(out, res.Text)
					return err
				}
				layout := format.Layout{GroupSize: groupSize, GroupsPerLine: lineGroups}
				_, err = fmt.Fprintln(out, layout.Format(res.Text))
				return err
			}

			if outFile == "" {
				return emit(cmd.OutOrStdout())
			}
			f, err := createOutput(outFile)
			if err != nil {
				return err
			}
			if err := emit(f); err != nil {
				_ = f.Close()
				return err
			}
			if err := f.Close(); err != nil {
				return fmt.Errorf("failed to write %s: %w", outFile, err)
			}
			return nil
		},
	}
	sf.bind(cmd)
	cmd.Flags().StringVar(&sheet, "sheet", "", "use a stored key sheet (requires -p)")
	cmd.Flags().StringVarP(&inFile, "file", "f", "", "read input from file")
	cmd.Flags().StringVarP(&outFile, "output", "o", "", "write output to file (default stdout)")
	cmd.Flags().BoolVar(&raw, "raw", false, "print an unbroken letter stream")
	cmd.Flags().IntVar(&groupSize, "group", format.DefaultGroupSize, "letters per group")
	cmd.Flags().IntVar(&lineGroups, "line", format.DefaultGroupsPerLine, "groups per line")
	return cmd
}

// createOutput opens the --output destination.
var createOutput = func(path string) (io.WriteCloser, error) {
	return os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0o600)
}

// encodeSettings picks the base settings (key sheet or --config/defaults) and
// applies flag overrides, e.g. a per-message --positions on top of a sheet.
func encodeSettings(cmd *cobra.Command, sf *settingsFlags, sheet string) (domain.Settings, error) {
	if sheet == "" {
		return sf.resolve(cmd)
	}
	if passphrase == "" {
		return domain.Settings{}, fmt.Errorf("passphrase required (-p) to use --sheet")
	}
	ks, err := appCtx.KeySheets.LoadKeySheet(passphrase, domain.SheetName(sheet))
	if err != nil {
		return domain.Settings{}, err
	}
	appCtx.Log.Printf("using key sheet %s (%s)", ks.Name, ks.ID)
	return sf.apply(cmd, ks.Settings), nil
}

func readText(cmd *cobra.Command, args []string, inFile string) (string, error) {
	if len(args) == 1 {
		return args[0], nil
	}
	in, closeIn, err := openInput(cmd, inFile)
	if err != nil {
		return "", err
	}
	defer closeIn()
	var b strings.Builder
	if _, err := io.Copy(&b, bufio.NewReader(in)); err != nil {
		return "", err
	}
	return b.String(), nil
}

func openInput(cmd *cobra.Command, inFile string) (io.Reader, func(), error) {
	if inFile == "" {
		return cmd.InOrStdin(), func() {}, nil
	}
	f, err := os.Open(inFile)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to read file %s: %w", inFile, err)
	}
	return f, func() { _ = f.Close() }, nil
}
