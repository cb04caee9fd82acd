package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/aalvaropc/catcount/internal/infra/scaffold"
	"github.com/aalvaropc/catcount/internal/usecase"
)

func initCmd() *cobra.Command {
	var dir string
	var force bool

	c := &cobra.Command{
		Use:   "init",
		Short: "Write a starter catcount.yaml",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			root := dir
			if root == "" {
				wd, err := os.Getwd()
				if err != nil {
					return fmt.Errorf("get working directory: %w", err)
				}
				root = wd
			}

			path, err := usecase.NewInitConfig(scaffold.NewInitializer()).Execute(root, force)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Config: %s\n", path)
			return nil
		},
	}

	c.Flags().StringVarP(&dir, "dir", "d", "", "Target directory (default: current directory)")
	c.Flags().BoolVar(&force, "force", false, "Overwrite an existing catcount.yaml")
	return c
}
