// SPDX-License-Identifier: MIT

package main

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"strconv"

	"github.com/katalvlaran/photon/geodesic"
	"github.com/katalvlaran/photon/raytrace"
)

const (
	formatCSV  = "csv"
	formatJSON = "json"
)

func checkFormat(format string) error {
	switch format {
	case formatCSV, formatJSON:
		return nil
	default:
		return usageErrorf("unknown format %q (want csv or json)", format)
	}
}

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(v); err != nil {
		return fmt.Errorf("encode json: %w", err)
	}

	return nil
}

func ftoa(v float64) string { return strconv.FormatFloat(v, 'g', -1, 64) }

// pathRows renders p as i, r, theta, x, y rows.
func pathRows(p geodesic.Path) [][]string {
	xy := p.Cartesian()
	rows := make([][]string, len(p))
	for i, pt := range p {
		rows[i] = []string{strconv.Itoa(i), ftoa(pt.R), ftoa(pt.Theta), ftoa(xy[i].X), ftoa(xy[i].Y)}
	}

	return rows
}

func writeTrajectoryCSV(w io.Writer, tr geodesic.Trajectory) error {
	cw := csv.NewWriter(w)
	_ = cw.Write([]string{"i", "r", "theta", "x", "y"})
	_ = cw.WriteAll(pathRows(tr.Path))

	return cw.Error()
}

// writeResultsCSV writes one block of rows per traced ray, prefixed by its
// ID and regime. Failed rays have no rows.
func writeResultsCSV(w io.Writer, results []raytrace.Result) error {
	cw := csv.NewWriter(w)
	_ = cw.Write([]string{"id", "regime", "i", "r", "theta", "x", "y"})
	for _, res := range results {
		if res.Err != nil {
			continue
		}
		prefix := []string{res.ID.String(), res.Trajectory.Regime.String()}
		for _, row := range pathRows(res.Trajectory.Path) {
			if err := cw.Write(append(prefix[:2:2], row...)); err != nil {
				return err
			}
		}
	}
	cw.Flush()

	return cw.Error()
}
