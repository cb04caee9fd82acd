package cli

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/aalvaropc/catcount/internal/buildinfo"
	"github.com/aalvaropc/catcount/internal/infra/filesource"
	"github.com/aalvaropc/catcount/internal/infra/logger"
	"github.com/aalvaropc/catcount/internal/ui/report"
	"github.com/aalvaropc/catcount/internal/usecase"
)

func Execute() {
	cmd := newRootCmd()
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}

type globalFlags struct {
	configPath string
	categories []string
	debug      bool
}

func newRootCmd() *cobra.Command {
	var g globalFlags
	var format string

	cmd := &cobra.Command{
		Use:          "catcount FILE",
		Short:        "Count distinct CATEGORY lines in a text file",
		Long:         "catcount reads \"CATEGORY SUBCATEGORY...\" lines, counts each distinct line under its legal\ncategory and prints the categories by count followed by the unique lines in first-seen order.",
		Version:      buildinfo.Version,
		SilenceUsage: true,
		Args:         fileArg,
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := loadSettings(g)
			if err != nil {
				return err
			}

			if cmd.Flags().Changed("format") {
				s.cfg.Report.Format = format
			}
			if err := s.validateFormat(); err != nil {
				return err
			}

			if g.debug || s.cfg.Log.Enabled {
				cleanup, lerr := logger.Setup(logger.Config{
					Root:    s.root,
					Debug:   g.debug,
					Version: buildinfo.Version,
				})
				if lerr != nil {
					fmt.Fprintf(cmd.ErrOrStderr(), "warning: logging disabled: %v\n", lerr)
				}
				if cleanup != nil {
					defer func() { _ = cleanup() }()
					if g.debug {
						fmt.Fprintf(cmd.ErrOrStderr(), "debug log: %s\n", logger.Path())
					}
				}
			}

			uc := usecase.NewCountCategories(
				filesource.New(),
				s.cfg.LegalSet(),
				usecase.WithLogger(logger.L()),
			)

			run, err := uc.Execute(cmd.Context(), args[0])
			if err != nil {
				return err
			}

			return report.Write(cmd.OutOrStdout(), report.Report{
				RunID:  run.ID,
				Source: run.Source,
				Result: run.Result,
			}, s.cfg.Report.Format)
		},
	}

	cmd.SetVersionTemplate(buildinfo.String() + "\n")

	pf := cmd.PersistentFlags()
	pf.StringVar(&g.configPath, "config", "", "Path to catcount.yaml (optional; autodetected if omitted)")
	pf.StringSliceVarP(&g.categories, "category", "C", nil, "Legal category (repeatable; overrides config)")
	pf.BoolVar(&g.debug, "debug", false, "enable verbose logging to .catcount/logs/catcount.log")

	cmd.Flags().StringVar(&format, "format", "", "Output format: text|json|pretty (default from config, else text)")

	cmd.AddCommand(categoriesCmd(&g))
	cmd.AddCommand(initCmd())
	cmd.AddCommand(versionCmd())
	return cmd
}

// fileArg requires exactly one input path.
func fileArg(_ *cobra.Command, args []string) error {
	switch {
	case len(args) == 0:
		return errors.New("no input file given: please provide the file path")
	case len(args) > 1:
		return fmt.Errorf("too many arguments (%d): please provide only the file path", len(args))
	}
	return nil
}
