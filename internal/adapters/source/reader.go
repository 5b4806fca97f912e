package source

import (
	"bytes"
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"

	"github.com/okian/warboard/internal/domain/ingest"
	"github.com/okian/warboard/internal/domain/model"
)

// Split parses comma-delimited raw bytes into a header and data rows. Rows
// may have fewer or more cells than the header.
func Split(raw []byte) ([]string, [][]string, error) {
	r := csv.NewReader(bytes.NewReader(raw))
	r.FieldsPerRecord = -1
	r.LazyQuotes = true
	r.ReuseRecord = false

	header, err := r.Read()
	if errors.Is(err, io.EOF) {
		return nil, nil, ErrEmptySource
	}
	if err != nil {
		return nil, nil, fmt.Errorf("read header: %w", err)
	}

	var rows [][]string
	for {
		rec, err := r.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, nil, fmt.Errorf("read row: %w", err)
		}
		rows = append(rows, rec)
	}
	return header, rows, nil
}

// Loader is anything that returns raw bytes for a key, such as a Cache.
type Loader interface {
	Load(ctx context.Context, key string) ([]byte, error)
}

// Read loads key through l and returns it as an ingest source tagged with d.
func Read(ctx context.Context, l Loader, key string, d model.Discipline) (ingest.Source, error) {
	raw, err := l.Load(ctx, key)
	if err != nil {
		return ingest.Source{}, err
	}
	header, rows, err := Split(raw)
	if err != nil {
		return ingest.Source{}, fmt.Errorf("%s: %w", key, err)
	}
	return ingest.Source{Name: key, Discipline: d, Header: header, Rows: rows}, nil
}
