package export

import (
	"encoding/csv"
	"encoding/json"
	"io"
	"math"
	"strconv"

	"github.com/san-kum/trigcalc/internal/lut"
)

// Row is the JSON form of a table entry. Infinite tangents are encoded as a
// null Tan with TanInf set to "+" or "-".
type Row struct {
	Degree int      `json:"degree"`
	Sin    float64  `json:"sin"`
	Cos    float64  `json:"cos"`
	Tan    *float64 `json:"tan"`
	TanInf string   `json:"tan_inf,omitempty"`
}

type Document struct {
	Size    int   `json:"size"`
	Entries []Row `json:"entries"`
}

func formatFloat(v float64) string {
	switch {
	case math.IsInf(v, 1):
		return "+Inf"
	case math.IsInf(v, -1):
		return "-Inf"
	}
	return strconv.FormatFloat(v, 'f', 6, 64)
}

// CSV writes entries with a degree,sin,cos,tan header.
func CSV(w io.Writer, entries []lut.Entry) error {
	cw := csv.NewWriter(w)
	if err := cw.Write([]string{"degree", "sin", "cos", "tan"}); err != nil {
		return err
	}
	for _, e := range entries {
		row := []string{
			strconv.Itoa(e.Degree),
			formatFloat(e.Sin),
			formatFloat(e.Cos),
			formatFloat(e.Tan),
		}
		if err := cw.Write(row); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

func NewDocument(entries []lut.Entry) Document {
	doc := Document{Size: lut.Size, Entries: make([]Row, len(entries))}
	for i, e := range entries {
		row := Row{Degree: e.Degree, Sin: e.Sin, Cos: e.Cos}
		switch {
		case math.IsInf(e.Tan, 1):
			row.TanInf = "+"
		case math.IsInf(e.Tan, -1):
			row.TanInf = "-"
		default:
			tan := e.Tan
			row.Tan = &tan
		}
		doc.Entries[i] = row
	}
	return doc
}

// JSON writes entries as an indented Document.
func JSON(w io.Writer, entries []lut.Entry) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(NewDocument(entries))
}

// Full lists every table entry, for exports that ignore the display cap.
func Full(t *lut.Table) []lut.Entry {
	out := make([]lut.Entry, 0, lut.Size)
	for start := 0; start < lut.Size; start += lut.MaxSpan + 1 {
		out = append(out, t.Entries(lut.Range{Start: start, End: start + lut.MaxSpan})...)
	}
	return out
}
