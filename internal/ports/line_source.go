package ports

import "io"

// LineSource opens a text source for sequential line-by-line reading
// (e.g., a file on disk).
type LineSource interface {
	Open(path string) (io.ReadCloser, error)
}
