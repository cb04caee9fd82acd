package cli

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/aalvaropc/catcount/internal/domain"
	"github.com/aalvaropc/catcount/internal/infra/configfinder"
	"github.com/aalvaropc/catcount/internal/ports"
)

type settings struct {
	// root is the directory holding the config file, or the working directory.
	root string
	// configPath is empty when running on defaults.
	configPath string
	cfg        domain.Config
}

func loadSettings(g globalFlags) (*settings, error) {
	s, err := resolveConfig(g.configPath)
	if err != nil {
		return nil, err
	}

	cfg, err := configfinder.ApplyCategories(s.cfg, g.categories)
	if err != nil {
		return nil, err
	}
	s.cfg = cfg
	return s, nil
}

func resolveConfig(configFlag string) (*settings, error) {
	return resolveConfigWith(configfinder.NewFinder(), configFlag)
}

func resolveConfigWith(locator ports.ConfigLocator, configFlag string) (*settings, error) {
	p := strings.TrimSpace(configFlag)
	if p != "" {
		abs, err := filepath.Abs(p)
		if err != nil {
			return nil, fmt.Errorf("invalid config path: %w", err)
		}
		cfg, err := configfinder.LoadConfigFile(abs)
		if err != nil {
			return nil, err
		}
		return &settings{root: filepath.Dir(abs), configPath: abs, cfg: cfg}, nil
	}

	wd, err := os.Getwd()
	if err != nil {
		wd = "."
	}
	wd, _ = filepath.Abs(wd)

	root, err := locator.FindRoot(wd)
	if err != nil {
		if domain.IsKind(err, domain.KindConfigNotFound) {
			return &settings{root: wd, cfg: domain.DefaultConfig()}, nil
		}
		return nil, err
	}

	cfg, err := configfinder.LoadConfig(root)
	if err != nil {
		return nil, err
	}
	return &settings{
		root:       root,
		configPath: filepath.Join(root, configfinder.ConfigFileName),
		cfg:        cfg,
	}, nil
}

func (s *settings) validateFormat() error {
	f, err := configfinder.ParseFormat(s.cfg.Report.Format)
	if err != nil {
		return &domain.OpError{
			Op:   "cli.format",
			Kind: domain.KindInvalidConfig,
			Err:  fmt.Errorf("%s: %w", err.Error(), domain.ErrInvalidConfig),
		}
	}
	s.cfg.Report.Format = f
	return nil
}
