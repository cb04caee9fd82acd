package scaffold

import (
	"embed"
	"os"
	"path/filepath"
	"strings"

	"github.com/aalvaropc/catcount/internal/domain"
	"github.com/aalvaropc/catcount/internal/ports"
)

//go:embed templates/catcount.yaml
var templatesFS embed.FS

type Initializer struct{}

func NewInitializer() *Initializer {
	return &Initializer{}
}

var _ ports.ConfigInitializer = (*Initializer)(nil)

// Init writes a starter catcount.yaml into root and makes sure the log
// directory is git-ignored. An existing config is kept unless force is set.
func (i *Initializer) Init(root string, force bool) (string, error) {
	root = filepath.Clean(root)
	if err := os.MkdirAll(root, 0o755); err != nil {
		return "", initErr(root, err)
	}

	if err := ensureGitignore(root); err != nil {
		return "", initErr(root, err)
	}

	dst := filepath.Join(root, "catcount.yaml")
	if !force {
		if _, statErr := os.Stat(dst); statErr == nil {
			return dst, nil
		}
	}

	b, err := templatesFS.ReadFile("templates/catcount.yaml")
	if err != nil {
		return "", initErr(dst, err)
	}
	if err := os.WriteFile(dst, b, 0o644); err != nil {
		return "", initErr(dst, err)
	}
	return dst, nil
}

func initErr(path string, err error) error {
	return &domain.OpError{
		Op:   "scaffold.init",
		Kind: domain.KindInvalidConfig,
		Path: path,
		Err:  err,
	}
}

func ensureGitignore(root string) error {
	const header = "# catcount"
	entries := []string{
		".catcount/",
	}

	path := filepath.Join(root, ".gitignore")
	b, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			lines := append([]string{header}, entries...)
			lines = append(lines, "")
			return os.WriteFile(path, []byte(strings.Join(lines, "\n")), 0o644)
		}
		return err
	}

	existing := string(b)
	present := map[string]bool{}
	for _, line := range strings.Split(existing, "\n") {
		trimmed := strings.TrimSpace(line)
		if trimmed == "" {
			continue
		}
		present[trimmed] = true
	}

	var missing []string
	for _, e := range entries {
		if !present[e] {
			missing = append(missing, e)
		}
	}
	if len(missing) == 0 {
		return nil
	}

	var out strings.Builder
	out.WriteString(existing)
	if existing != "" && !strings.HasSuffix(existing, "\n") {
		out.WriteByte('\n')
	}
	if !present[header] {
		out.WriteString(header)
		out.WriteByte('\n')
	}
	for _, e := range missing {
		out.WriteString(e)
		out.WriteByte('\n')
	}

	return os.WriteFile(path, []byte(out.String()), 0o644)
}
