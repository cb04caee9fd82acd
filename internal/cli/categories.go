package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

func categoriesCmd(g *globalFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "categories",
		Short: "List the legal categories in effect",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			s, err := loadSettings(*g)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if s.configPath != "" {
				fmt.Fprintf(out, "Config: %s\n\n", s.configPath)
			} else {
				fmt.Fprintf(out, "Config: (defaults)\n\n")
			}
			for _, name := range s.cfg.LegalSet().Names() {
				fmt.Fprintf(out, "- %s\n", name)
			}
			return nil
		},
	}
}
