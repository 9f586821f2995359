// Package csvimport parses uploaded expense CSVs into staged rows ready for
// review and commit. Decoding is byte-level tolerant, parsing is row-level
// tolerant: a bad row is counted and skipped, and the parse only fails when
// no rows survive at all.
package csvimport

import (
	"encoding/csv"
	"errors"
	"io"
	"math"
	"strconv"
	"strings"
	"time"
)

// MaxRows caps how many data rows a single upload may stage.
const MaxRows = 2000

// PreviewRows is how many staged rows are shown back to the user for review.
const PreviewRows = 50

// DefaultCategory is applied when the category column is absent or blank.
const DefaultCategory = "Uncategorized"

var (
	// ErrEmptyInput means the file had no header row.
	ErrEmptyInput = errors.New("csvimport: no header row")
	// ErrMissingColumns means a required column could not be resolved.
	ErrMissingColumns = errors.New("csvimport: missing required columns")
	// ErrNoValidRows means every data row was rejected.
	ErrNoValidRows = errors.New("csvimport: no valid rows")
)

var dateLayouts = []string{"2006-01-02", "01/02/2006"}

// Row is one accepted expense row, parsed but not yet committed.
type Row struct {
	SpentDate   time.Time `json:"spent_date"`
	Description string    `json:"description"`
	Amount      float64   `json:"amount"`
	Category    string    `json:"category"`
}

// Staged holds the outcome of parsing one upload.
type Staged struct {
	Rows       []Row `json:"rows"`
	ErrorCount int   `json:"error_count"`
}

// Preview returns up to n staged rows.
func (s *Staged) Preview(n int) []Row {
	if len(s.Rows) <= n {
		return s.Rows
	}
	return s.Rows[:n]
}

// Parse reads decoded CSV text with a header row and stages its expense rows.
// Required columns are date, description, and amount; category is optional.
// Header matching is case-insensitive, trimmed, and order-independent.
func Parse(text string) (*Staged, error) {
	reader := csv.NewReader(strings.NewReader(text))
	reader.TrimLeadingSpace = true
	reader.FieldsPerRecord = -1

	header, err := reader.Read()
	if err != nil {
		return nil, ErrEmptyInput
	}

	cols, err := resolveColumns(header)
	if err != nil {
		return nil, err
	}

	staged := &Staged{}
	for processed := 0; processed < MaxRows; processed++ {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			staged.ErrorCount++
			continue
		}

		row, ok := parseRow(record, cols)
		if !ok {
			staged.ErrorCount++
			continue
		}
		staged.Rows = append(staged.Rows, row)
	}

	if len(staged.Rows) == 0 {
		return nil, ErrNoValidRows
	}
	return staged, nil
}

// columns holds resolved header indexes; category is -1 when absent.
type columns struct {
	date, description, amount, category int
}

func resolveColumns(header []string) (columns, error) {
	cols := columns{date: -1, description: -1, amount: -1, category: -1}
	for i, name := range header {
		switch strings.ToLower(strings.TrimSpace(name)) {
		case "date":
			cols.date = i
		case "description":
			cols.description = i
		case "amount":
			cols.amount = i
		case "category":
			cols.category = i
		}
	}
	if cols.date < 0 || cols.description < 0 || cols.amount < 0 {
		return cols, ErrMissingColumns
	}
	return cols, nil
}

func parseRow(record []string, cols columns) (Row, bool) {
	dateStr := field(record, cols.date)
	description := field(record, cols.description)
	amountStr := field(record, cols.amount)
	if dateStr == "" || description == "" || amountStr == "" {
		return Row{}, false
	}

	spentDate, ok := parseDate(dateStr)
	if !ok {
		return Row{}, false
	}

	amount, ok := parseAmount(amountStr)
	if !ok {
		return Row{}, false
	}

	category := field(record, cols.category)
	if category == "" {
		category = DefaultCategory
	}

	return Row{
		SpentDate:   spentDate,
		Description: description,
		Amount:      amount,
		Category:    category,
	}, true
}

func field(record []string, idx int) string {
	if idx < 0 || idx >= len(record) {
		return ""
	}
	return strings.TrimSpace(record[idx])
}

func parseDate(s string) (time.Time, bool) {
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

// parseAmount accepts values like "$1,234.56" and rounds to cents.
func parseAmount(s string) (float64, bool) {
	cleaned := strings.NewReplacer("$", "", ",", "").Replace(s)
	v, err := strconv.ParseFloat(cleaned, 64)
	if err != nil {
		return 0, false
	}
	return RoundToCents(v), true
}

// RoundToCents rounds to 2 decimal places. Amounts are rounded before
// fingerprinting, so sub-cent differences collide on purpose.
func RoundToCents(v float64) float64 {
	return math.Round(v*100) / 100
}
