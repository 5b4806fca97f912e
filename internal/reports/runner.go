package reports

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/okian/warboard/internal/domain/model"
	"github.com/okian/warboard/pkg/logger"
	"github.com/okian/warboard/pkg/metrics"
)

const directoryPermission = 0o750

// Runner writes reports into a directory.
type Runner struct {
	dir     string
	formats []Format
	logger  logger.Logger
	now     func() time.Time
}

// Summary describes one run.
type Summary struct {
	Reports int
	Files   []string
	Skipped []string
	Took    time.Duration
}

// NewRunner creates a runner writing text reports into dir.
func NewRunner(dir string, opts ...Option) *Runner {
	r := &Runner{
		dir:     dir,
		formats: []Format{FormatText},
		now:     time.Now,
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

func (r *Runner) log() logger.Logger {
	if r.logger == nil {
		r.logger = logger.Named("reports")
	}
	return r.logger
}

// Run builds every report from src and writes one file per format.
// A report whose career or roster is missing from src is skipped; any
// other failure stops the run.
func (r *Runner) Run(ctx context.Context, src Reader, reports []Report) (Summary, error) {
	var sum Summary
	if len(r.formats) == 0 {
		return sum, ErrNoFormats
	}
	if err := os.MkdirAll(r.dir, directoryPermission); err != nil {
		return sum, fmt.Errorf("create report dir: %w", err)
	}

	r.log().Info(ctx, "running reports",
		logger.Int("reports", len(reports)),
		logger.String("dir", r.dir),
		logger.Any("formats", r.formats))

	start := r.now()
	for i, rep := range reports {
		if err := ctx.Err(); err != nil {
			return sum, err
		}

		t, err := rep.Build(src)
		switch {
		case errors.Is(err, model.ErrNotFound):
			r.log().Warn(ctx, "report skipped", logger.String("report", rep.Filename), logger.Error(err))
			sum.Skipped = append(sum.Skipped, rep.Filename)
		case err != nil:
			metrics.RecordErrorByComponent("reports", "build")
			return sum, err
		default:
			for _, f := range r.formats {
				path, err := r.write(t, f)
				if err != nil {
					metrics.RecordErrorByComponent("reports", "write")
					return sum, err
				}
				metrics.RecordReportWritten(string(f))
				sum.Files = append(sum.Files, path)
			}
			sum.Reports++
		}

		done := i + 1
		elapsed := r.now().Sub(start)
		eta := elapsed / time.Duration(done) * time.Duration(len(reports)-done)
		r.log().Info(ctx, "report done",
			logger.Int("index", done),
			logger.Int("total", len(reports)),
			logger.String("report", rep.Filename),
			logger.Duration("eta", eta))
	}

	sum.Took = r.now().Sub(start)
	r.log().Info(ctx, "reports written",
		logger.Int("reports", sum.Reports),
		logger.Int("files", len(sum.Files)),
		logger.Int("skipped", len(sum.Skipped)),
		logger.Duration("took", sum.Took))
	return sum, nil
}

func (r *Runner) write(t Table, f Format) (path string, err error) {
	path = filepath.Join(r.dir, t.Filename+"."+string(f))
	file, err := os.Create(path)
	if err != nil {
		return "", fmt.Errorf("create %s: %w", path, err)
	}
	defer func() {
		if cerr := file.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("close %s: %w", path, cerr)
		}
	}()

	if err := Render(file, t, f); err != nil {
		return "", fmt.Errorf("render %s: %w", path, err)
	}
	return path, nil
}
