// Command seedstates converts the GST state-code Excel file into a SQL seed
// file for the state_codes lookup table.
// Usage: go run ./cmd/seedstates
// Output: db/seeds/state_codes.sql
package main

import (
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/xuri/excelize/v2"
)

type stateEntry struct {
	code string
	name string
}

func main() {
	if err := run(); err != nil {
		log.Fatal(err)
	}
}

func run() error {
	xlsxPath := "GST_State_Code_List.xlsx"
	outPath := "db/seeds/state_codes.sql"

	f, err := excelize.OpenFile(xlsxPath)
	if err != nil {
		return fmt.Errorf("open Excel file: %w", err)
	}
	defer func() { _ = f.Close() }()

	entries, err := parseStateSheet(f)
	if err != nil {
		return fmt.Errorf("parse state sheet: %w", err)
	}
	log.Printf("state sheet: %d entries", len(entries))

	out, err := os.Create(outPath)
	if err != nil {
		return fmt.Errorf("create output file: %w", err)
	}
	defer func() { _ = out.Close() }()

	var b strings.Builder
	b.WriteString("-- GST state code seed data generated from Excel.\n")
	fmt.Fprintf(&b, "-- %d entries.\n", len(entries))
	b.WriteString("BEGIN;\n\n")
	b.WriteString("INSERT INTO state_codes (code, name) VALUES\n")

	for i, e := range entries {
		if i > 0 {
			b.WriteString(",\n")
		}
		fmt.Fprintf(&b, "  ('%s', '%s')", escapeSQL(e.code), escapeSQL(e.name))
	}

	b.WriteString("\nON CONFLICT (code) DO UPDATE SET name = EXCLUDED.name;\n\nCOMMIT;\n")

	if _, err := out.WriteString(b.String()); err != nil {
		return fmt.Errorf("write output: %w", err)
	}

	log.Printf("generated %d state codes in %s", len(entries), outPath)
	return nil
}

// parseStateSheet reads the first sheet. Columns: A(0)=2-digit GST state
// code, B(1)=state or union territory name. Data starts at row index 1
// (row 0 is the header).
func parseStateSheet(f *excelize.File) ([]stateEntry, error) {
	sheetName := f.GetSheetName(0)
	rows, err := f.GetRows(sheetName)
	if err != nil {
		return nil, err
	}

	seen := make(map[string]bool)
	var entries []stateEntry
	for i := 1; i < len(rows); i++ {
		row := rows[i]
		if len(row) < 2 {
			continue
		}

		code := strings.TrimSpace(cellVal(row, 0))
		name := strings.TrimSpace(cellVal(row, 1))
		if len(code) != 2 || !isNumeric(code) || name == "" || seen[code] {
			continue
		}
		seen[code] = true
		entries = append(entries, stateEntry{code: code, name: name})
	}
	return entries, nil
}

func cellVal(row []string, idx int) string {
	if idx < len(row) {
		return row[idx]
	}
	return ""
}

func isNumeric(s string) bool {
	for _, c := range s {
		if c < '0' || c > '9' {
			return false
		}
	}
	return s != ""
}

func escapeSQL(s string) string {
	return strings.ReplaceAll(s, "'", "''")
}
