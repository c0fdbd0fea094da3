package seriesio

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"strconv"
	"text/tabwriter"

	"github.com/cwbudde/algo-peaks/dsp/peaks"
)

// Row is the flat, serialisable form of one detected peak.
type Row struct {
	Position       int      `json:"position"`
	Left           int      `json:"left"`
	Right          int      `json:"right"`
	X              float64  `json:"x"`
	Height         *float64 `json:"height,omitempty"`
	PlateauSize    *int     `json:"plateau_size,omitempty"`
	LeftThreshold  *float64 `json:"left_threshold,omitempty"`
	RightThreshold *float64 `json:"right_threshold,omitempty"`
	Prominence     *float64 `json:"prominence,omitempty"`
	LeftBase       *int     `json:"left_base,omitempty"`
	RightBase      *int     `json:"right_base,omitempty"`
}

// Rows converts peaks to rows, looking up each middle position in x.
func Rows(ps []peaks.Peak[float64], x []float64) []Row {
	rows := make([]Row, len(ps))
	for i, p := range ps {
		mid := p.MiddlePosition()
		rows[i] = Row{
			Position:       mid,
			Left:           p.LeftPosition,
			Right:          p.RightPosition,
			X:              x[mid],
			Height:         p.Height,
			PlateauSize:    p.PlateauSize,
			LeftThreshold:  p.LeftThreshold,
			RightThreshold: p.RightThreshold,
			Prominence:     p.Prominence,
			LeftBase:       p.LeftBase,
			RightBase:      p.RightBase,
		}
	}
	return rows
}

var header = []string{
	"position", "left", "right", "x", "height", "plateau_size",
	"left_threshold", "right_threshold", "prominence", "left_base", "right_base",
}

func (r Row) fields() []string {
	return []string{
		strconv.Itoa(r.Position),
		strconv.Itoa(r.Left),
		strconv.Itoa(r.Right),
		formatFloat(&r.X),
		formatFloat(r.Height),
		formatInt(r.PlateauSize),
		formatFloat(r.LeftThreshold),
		formatFloat(r.RightThreshold),
		formatFloat(r.Prominence),
		formatInt(r.LeftBase),
		formatInt(r.RightBase),
	}
}

func formatFloat(v *float64) string {
	if v == nil {
		return "-"
	}
	return strconv.FormatFloat(*v, 'g', -1, 64)
}

func formatInt(v *int) string {
	if v == nil {
		return "-"
	}
	return strconv.Itoa(*v)
}

// Format names an output encoding.
type Format string

// Supported output formats.
const (
	FormatText Format = "text"
	FormatCSV  Format = "csv"
	FormatJSON Format = "json"
)

// Write encodes rows to w in the given format.
func Write(w io.Writer, rows []Row, format Format) error {
	switch format {
	case FormatText:
		return writeText(w, rows)
	case FormatCSV:
		return writeCSV(w, rows)
	case FormatJSON:
		if rows == nil {
			rows = []Row{}
		}
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(rows)
	default:
		return fmt.Errorf("unknown output format %q", format)
	}
}

func writeText(w io.Writer, rows []Row) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	writeRow := func(fields []string) {
		for i, f := range fields {
			if i > 0 {
				fmt.Fprint(tw, "\t")
			}
			fmt.Fprint(tw, f)
		}
		fmt.Fprintln(tw)
	}
	writeRow(header)
	for _, r := range rows {
		writeRow(r.fields())
	}
	return tw.Flush()
}

func writeCSV(w io.Writer, rows []Row) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(header); err != nil {
		return err
	}
	for _, r := range rows {
		if err := cw.Write(r.fields()); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}
