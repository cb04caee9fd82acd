package usecase

import (
	"bufio"
	"bytes"
	"context"
	"io"
	"log/slog"
	"math"

	"github.com/google/uuid"

	"github.com/aalvaropc/catcount/internal/domain"
	"github.com/aalvaropc/catcount/internal/ports"
)

type CountCategories struct {
	source ports.LineSource
	legal  domain.LegalSet
	logger *slog.Logger
	newID  func() string
}

type CountOption func(*CountCategories)

func WithLogger(l *slog.Logger) CountOption {
	return func(uc *CountCategories) {
		if l != nil {
			uc.logger = l
		}
	}
}

// WithRunID overrides run id generation (useful for tests).
func WithRunID(gen func() string) CountOption {
	return func(uc *CountCategories) {
		if gen != nil {
			uc.newID = gen
		}
	}
}

func NewCountCategories(src ports.LineSource, legal domain.LegalSet, opts ...CountOption) *CountCategories {
	uc := &CountCategories{
		source: src,
		legal:  legal,
		logger: slog.New(slog.NewJSONHandler(io.Discard, nil)),
		newID:  uuid.NewString,
	}
	for _, opt := range opts {
		opt(uc)
	}
	return uc
}

// Run is a completed count: the result plus the id it was logged under.
type Run struct {
	ID     string
	Source string
	Result domain.ParseResult
}

// Execute reads the source at path to exhaustion and returns the ranked
// result. Open failures are KindSourceNotFound, scan failures KindSourceRead;
// neither returns a partial result.
func (uc *CountCategories) Execute(ctx context.Context, path string) (Run, error) {
	id := uc.newID()
	log := uc.logger.With("run_id", id, "input", path)
	log.Debug("count.start", "categories", uc.legal.Names())

	rc, err := uc.source.Open(path)
	if err != nil {
		log.Error("count.open_failed", "err", err)
		if domain.IsKind(err, domain.KindSourceNotFound) {
			return Run{}, err
		}
		return Run{}, &domain.OpError{
			Op:   "usecase.count.open",
			Kind: domain.KindSourceNotFound,
			Path: path,
			Err:  err,
		}
	}
	defer rc.Close()

	tally := domain.NewTally(uc.legal)
	lines := 0

	sc := bufio.NewScanner(rc)
	sc.Buffer(make([]byte, 0, 64*1024), math.MaxInt)
	sc.Split(scanLines)
	for sc.Scan() {
		if err := ctx.Err(); err != nil {
			return Run{}, err
		}
		tally.Add(sc.Text())
		lines++
	}
	if err := sc.Err(); err != nil {
		log.Error("count.read_failed", "err", err, "lines_read", lines)
		return Run{}, &domain.OpError{
			Op:   "usecase.count.read",
			Kind: domain.KindSourceRead,
			Path: path,
			Err:  err,
		}
	}

	res := tally.Result()
	log.Info("count.done", "lines_read", lines, "accepted", len(res.Lines))

	return Run{ID: id, Source: path, Result: res}, nil
}

// scanLines splits on "\n", "\r\n" or a lone "\r". The terminator is not part
// of the line and a final unterminated line is still returned.
func scanLines(data []byte, atEOF bool) (int, []byte, error) {
	if atEOF && len(data) == 0 {
		return 0, nil, nil
	}
	if i := bytes.IndexAny(data, "\r\n"); i >= 0 {
		if data[i] == '\n' {
			return i + 1, data[:i], nil
		}
		if i+1 < len(data) {
			if data[i+1] == '\n' {
				return i + 2, data[:i], nil
			}
			return i + 1, data[:i], nil
		}
		if !atEOF {
			// "\r" at the end of the buffer; wait to see whether "\n" follows.
			return 0, nil, nil
		}
		return i + 1, data[:i], nil
	}
	if atEOF {
		return len(data), data, nil
	}
	return 0, nil, nil
}
