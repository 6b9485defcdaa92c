package commands

import (
	"fmt"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"enigma/internal/alphabet"
	"enigma/internal/machine"
)

func profilesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "profiles",
		Short: "List machine families with their rotors and reflectors",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			for _, p := range machine.Profiles() {
				fmt.Fprintf(w, "%s\tstepping: %s\treflectors: %s\n",
					p.Name(), p.Rule(), strings.Join(p.ReflectorLabels(), " "))
				for _, label := range p.RotorLabels() {
					spec, err := p.Rotor(label)
					if err != nil {
						return err
					}
					fmt.Fprintf(w, "  %s\t%s\tnotch %s\n",
						label, alphabet.String(spec.Wiring[:]), alphabet.String(spec.Notches))
				}
			}
			return w.Flush()
		},
	}
}
