// Package io reads and writes color ramps and force sweeps as flat files.
//
// # Ramp CSV
//
// A sampled ramp is stored one sample per row, four columns in r, g, b, a
// order, with no header. Components are written in the shortest form that
// parses back to the same float64:
//
//	0.9686274509803922,0.9568627450980393,0.9764705882352941,1
//	0.9647058823529412,0.9508650519031141,0.9730872741253364,1
//
// Use [WriteRampCSV] and [ReadRampCSV] with any stream, or [ExportRampCSV]
// and [ImportRampCSV] with file paths. Reading rejects rows that do not
// have exactly four numeric fields.
//
// # Sweep Output
//
// A force sweep is written as CSV with a "distance,force" header by
// [WriteSweepCSV], or as an indented JSON array by [WriteSweepJSON]:
//
//	[
//	  {"distance": 0, "force": 40, "zone": "repulsion"},
//	  ...
//	]
//
// [ExportSweep] picks the encoding from the file extension.
package io
