package io

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/sstucker/particles/pkg/errors"
	"github.com/sstucker/particles/pkg/ramp"
)

// ReadRampCSV decodes a ramp written by [WriteRampCSV].
//
// Every row must have exactly four numeric fields. Blank lines are skipped.
// An empty input yields an empty table. Components are stored as parsed,
// without clamping.
//
// ReadRampCSV returns an INVALID_FORMAT error naming the line of the first
// bad row.
// It does not close r.
func ReadRampCSV(r io.Reader) (ramp.Table, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1
	cr.ReuseRecord = true

	var table ramp.Table
	for {
		rec, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, errors.Wrap(errors.ErrCodeInvalidFormat, err, "read ramp")
		}
		line, _ := cr.FieldPos(0)
		if len(rec) != 4 {
			return nil, errors.New(errors.ErrCodeInvalidFormat, "line %d: want 4 fields (r,g,b,a), got %d", line, len(rec))
		}

		var c [4]float64
		for i, field := range rec {
			v, err := strconv.ParseFloat(field, 64)
			if err != nil {
				return nil, errors.Wrap(errors.ErrCodeInvalidFormat, err, "line %d field %d", line, i+1)
			}
			c[i] = v
		}
		table = append(table, ramp.Sample{R: c[0], G: c[1], B: c[2], A: c[3]})
	}
	return table, nil
}

// ImportRampCSV reads a ramp CSV file at path.
func ImportRampCSV(path string) (ramp.Table, error) {
	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errors.Wrap(errors.ErrCodeFileNotFound, err, "open %s", path)
		}
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()

	table, err := ReadRampCSV(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return table, nil
}
