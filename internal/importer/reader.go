package importer

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strings"
)

// RawRow is one data row of the spreadsheet export, untrimmed of meaning
// but trimmed of whitespace. Unknown columns are dropped.
type RawRow struct {
	Date      string
	Start     string
	End       string
	Span      string
	Activity  string
	Value     string
	Category  string
	RelatedTo string
	Role      string
	Emotion   string
	Goal      string
	Note      string
}

// Blank reports whether every known field of the row is empty. Blank rows
// are skipped without being counted.
func (r RawRow) Blank() bool {
	return r.Date == "" && r.Start == "" && r.End == "" && r.Span == "" &&
		r.Activity == "" && r.Value == "" && r.Category == "" && r.RelatedTo == "" &&
		r.Role == "" && r.Emotion == "" && r.Goal == "" && r.Note == ""
}

// columnFields maps the export's header names to RawRow field setters.
var columnFields = map[string]func(*RawRow, string){
	"Dátum":          func(r *RawRow, v string) { r.Date = v },
	"Kezd":           func(r *RawRow, v string) { r.Start = v },
	"Vég":            func(r *RawRow, v string) { r.End = v },
	"Idő":            func(r *RawRow, v string) { r.Span = v },
	"Tevékenység":    func(r *RawRow, v string) { r.Activity = v },
	"Érték":          func(r *RawRow, v string) { r.Value = v },
	"Kategória":      func(r *RawRow, v string) { r.Category = v },
	"Kapcsolódó":     func(r *RawRow, v string) { r.RelatedTo = v },
	"szerep":         func(r *RawRow, v string) { r.Role = v },
	"Érzelem":        func(r *RawRow, v string) { r.Emotion = v },
	"Kapcsolódó cél": func(r *RawRow, v string) { r.Goal = v },
	"Megjegyzés":     func(r *RawRow, v string) { r.Note = v },
}

// ReadFile reads a semicolon-delimited spreadsheet export. The first row
// must be the header; a UTF-8 BOM is tolerated. Rows shorter than the
// header are padded with empty cells.
func ReadFile(path string) ([]RawRow, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening export file: %w", err)
	}
	defer f.Close()
	return Read(f)
}

// Read parses the export from any reader; see ReadFile.
func Read(r io.Reader) ([]RawRow, error) {
	cr := csv.NewReader(r)
	cr.Comma = ';'
	cr.FieldsPerRecord = -1

	header, err := cr.Read()
	if err != nil {
		return nil, fmt.Errorf("reading header row: %w", err)
	}
	setters := make([]func(*RawRow, string), len(header))
	for i, name := range header {
		if i == 0 {
			name = strings.TrimPrefix(name, "\uFEFF")
		}
		setters[i] = columnFields[strings.TrimSpace(name)]
	}

	var rows []RawRow
	for {
		record, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("reading export row: %w", err)
		}
		var row RawRow
		for i, cell := range record {
			if i < len(setters) && setters[i] != nil {
				setters[i](&row, strings.TrimSpace(cell))
			}
		}
		rows = append(rows, row)
	}
	return rows, nil
}
