package configfinder

import (
	"errors"
	"os"
	"path/filepath"

	"github.com/aalvaropc/catcount/internal/domain"
	"github.com/aalvaropc/catcount/internal/ports"
)

// ConfigFileName is the configuration file catcount looks for.
const ConfigFileName = "catcount.yaml"

// Finder locates the directory holding catcount.yaml by searching upward.
type Finder struct {
	ConfigFile string // defaults to "catcount.yaml"
}

func NewFinder() *Finder {
	return &Finder{ConfigFile: ConfigFileName}
}

var _ ports.ConfigLocator = (*Finder)(nil)

func (f *Finder) FindRoot(startDir string) (string, error) {
	if startDir == "" {
		return "", &domain.OpError{
			Op:   "configfinder.findroot",
			Kind: domain.KindInvalidConfig,
			Err:  errors.New("startDir is empty"),
		}
	}

	abs, err := filepath.Abs(startDir)
	if err != nil {
		return "", &domain.OpError{
			Op:   "configfinder.findroot",
			Kind: domain.KindInvalidConfig,
			Err:  err,
		}
	}

	// If user passes a file path, use its directory.
	info, statErr := os.Stat(abs)
	if statErr == nil && !info.IsDir() {
		abs = filepath.Dir(abs)
	}

	cur := filepath.Clean(abs)
	for {
		cfgPath := filepath.Join(cur, f.ConfigFile)
		if _, err := os.Stat(cfgPath); err == nil {
			return cur, nil
		}

		parent := filepath.Dir(cur)
		if parent == cur {
			// Reached filesystem root.
			return "", &domain.OpError{
				Op:   "configfinder.findroot",
				Kind: domain.KindConfigNotFound,
				Err:  domain.ErrConfigNotFound,
			}
		}
		cur = parent
	}
}
