package enrich

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
)

// ManualRef links a profile id to its manual.
type ManualRef struct {
	ID  string
	URL string
}

// ReadManualMap reads a CSV with "id" and "manual_url" columns. Rows
// without a URL are skipped.
func ReadManualMap(path string) ([]ManualRef, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return parseManualMap(f)
}

func parseManualMap(r io.Reader) ([]ManualRef, error) {
	rd := csv.NewReader(r)
	rd.FieldsPerRecord = -1

	header, err := rd.Read()
	if err != nil {
		return nil, fmt.Errorf("manual map header: %w", err)
	}
	idCol, urlCol := -1, -1
	for i, name := range header {
		switch strings.TrimSpace(strings.TrimPrefix(name, "\ufeff")) {
		case "id":
			idCol = i
		case "manual_url":
			urlCol = i
		}
	}
	if idCol < 0 || urlCol < 0 {
		return nil, errors.New("manual map: need id and manual_url columns")
	}

	var refs []ManualRef
	for {
		rec, err := rd.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, err
		}
		if urlCol >= len(rec) || idCol >= len(rec) {
			continue
		}
		url := strings.TrimSpace(rec[urlCol])
		if url == "" {
			continue
		}
		refs = append(refs, ManualRef{ID: strings.TrimSpace(rec[idCol]), URL: url})
	}
	return refs, nil
}
