package io

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/sstucker/particles/pkg/force"
	"github.com/sstucker/particles/pkg/ramp"
)

var sweepHeader = []string{"distance", "force"}

type sweepPoint struct {
	Distance float64 `json:"distance"`
	Force    float64 `json:"force"`
	Zone     string  `json:"zone"`
}

// WriteRampCSV writes one r,g,b,a row per sample with no header.
func WriteRampCSV(w io.Writer, table ramp.Table) error {
	cw := csv.NewWriter(w)
	row := make([]string, 4)
	for _, s := range table {
		row[0] = formatFloat(s.R)
		row[1] = formatFloat(s.G)
		row[2] = formatFloat(s.B)
		row[3] = formatFloat(s.A)
		if err := cw.Write(row); err != nil {
			return fmt.Errorf("write: %w", err)
		}
	}
	cw.Flush()
	if err := cw.Error(); err != nil {
		return fmt.Errorf("write: %w", err)
	}
	return nil
}

// ExportRampCSV writes a ramp to a CSV file at path.
func ExportRampCSV(table ramp.Table, path string) error {
	return exportFile(path, func(w io.Writer) error { return WriteRampCSV(w, table) })
}

// WriteSweepCSV writes a "distance,force" header followed by one row per point.
func WriteSweepCSV(w io.Writer, pts []force.Point) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(sweepHeader); err != nil {
		return fmt.Errorf("write: %w", err)
	}
	for _, pt := range pts {
		if err := cw.Write([]string{formatFloat(pt.Distance), formatFloat(pt.Force)}); err != nil {
			return fmt.Errorf("write: %w", err)
		}
	}
	cw.Flush()
	if err := cw.Error(); err != nil {
		return fmt.Errorf("write: %w", err)
	}
	return nil
}

// WriteSweepJSON writes the points as an indented JSON array, each entry
// carrying its zone name.
func WriteSweepJSON(w io.Writer, pts []force.Point) error {
	out := make([]sweepPoint, len(pts))
	for i, pt := range pts {
		out[i] = sweepPoint{Distance: pt.Distance, Force: pt.Force, Zone: pt.Zone.String()}
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(out); err != nil {
		return fmt.Errorf("encode: %w", err)
	}
	return nil
}

// ExportSweep writes a sweep to path as JSON when the extension is ".json"
// and as CSV otherwise.
func ExportSweep(pts []force.Point, path string) error {
	write := WriteSweepCSV
	if strings.EqualFold(filepath.Ext(path), ".json") {
		write = WriteSweepJSON
	}
	return exportFile(path, func(w io.Writer) error { return write(w, pts) })
}

func exportFile(path string, write func(io.Writer) error) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	if err := write(f); err != nil {
		f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("close %s: %w", path, err)
	}
	return nil
}

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}
