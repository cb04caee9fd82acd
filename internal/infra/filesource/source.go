package filesource

import (
	"errors"
	"io"
	"io/fs"
	"os"

	"github.com/aalvaropc/catcount/internal/domain"
	"github.com/aalvaropc/catcount/internal/ports"
)

// Source opens plain files from the local filesystem.
type Source struct{}

func New() *Source {
	return &Source{}
}

var _ ports.LineSource = (*Source)(nil)

func (s *Source) Open(path string) (io.ReadCloser, error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, &domain.OpError{
			Op:   "filesource.open",
			Kind: domain.KindSourceNotFound,
			Path: path,
			Err:  err,
		}
	}
	if info.IsDir() {
		return nil, &domain.OpError{
			Op:   "filesource.open",
			Kind: domain.KindSourceNotFound,
			Path: path,
			Err:  errors.New("path is a directory"),
		}
	}

	f, err := os.Open(path)
	if err != nil {
		kind := domain.KindSourceRead
		if errors.Is(err, fs.ErrNotExist) {
			kind = domain.KindSourceNotFound
		}
		return nil, &domain.OpError{
			Op:   "filesource.open",
			Kind: kind,
			Path: path,
			Err:  err,
		}
	}
	return f, nil
}
