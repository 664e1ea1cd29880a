// Package importer reads and writes expenses in bulk as CSV files.
package importer

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/budgetwise/budgetwise/internal/ledger"
	"github.com/budgetwise/budgetwise/internal/model"
)

// Header is the expected first row. The date column is optional.
const Header = "category,amount,description,date"

const (
	minFields = 3
	maxFields = 4
	colCat    = 0
	colAmount = 1
	colDesc   = 2
	colDate   = 3
)

// Row is one parsed CSV line. Date is zero when the column is absent or empty.
type Row struct {
	Category    model.Category
	Amount      decimal.Decimal
	Description string
	Date        time.Time
}

// ReadExpenses parses every row after the header. Parsing stops at the first
// bad row, so a file is either imported whole or not at all.
func ReadExpenses(r io.Reader) ([]Row, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1
	cr.TrimLeadingSpace = true

	records, err := cr.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("reading expenses CSV: %w", err)
	}

	if len(records) <= 1 {
		return nil, nil
	}

	var rows []Row
	for i, rec := range records[1:] {
		row, err := UnmarshalRow(rec)
		if err != nil {
			return nil, fmt.Errorf("row %d: %w", i+2, err)
		}
		rows = append(rows, row)
	}
	return rows, nil
}

// UnmarshalRow converts a CSV record to a Row.
func UnmarshalRow(record []string) (Row, error) {
	if len(record) < minFields || len(record) > maxFields {
		return Row{}, fmt.Errorf("expected %d or %d fields, got %d", minFields, maxFields, len(record))
	}

	cat, err := model.ParseCategory(strings.TrimSpace(record[colCat]))
	if err != nil {
		return Row{}, err
	}

	amount, err := decimal.NewFromString(strings.TrimSpace(record[colAmount]))
	if err != nil {
		return Row{}, fmt.Errorf("parsing amount %q: %w", record[colAmount], err)
	}

	row := Row{Category: cat, Amount: amount, Description: record[colDesc]}
	if len(record) == maxFields && strings.TrimSpace(record[colDate]) != "" {
		row.Date, err = time.Parse(model.DateFormat, strings.TrimSpace(record[colDate]))
		if err != nil {
			return Row{}, fmt.Errorf("parsing date %q: %w", record[colDate], err)
		}
	}
	return row, nil
}

// MarshalRow converts an expense to a CSV record.
func MarshalRow(e model.Expense) []string {
	return []string{e.Category.Label(), e.Amount.String(), e.Description, e.Date.Format(model.DateFormat)}
}

// WriteExpenses writes expenses with a header row.
func WriteExpenses(w io.Writer, expenses []model.Expense) error {
	cw := csv.NewWriter(w)

	if err := cw.Write(strings.Split(Header, ",")); err != nil {
		return fmt.Errorf("writing header: %w", err)
	}
	for i, e := range expenses {
		if err := cw.Write(MarshalRow(e)); err != nil {
			return fmt.Errorf("writing row %d: %w", i+2, err)
		}
	}
	cw.Flush()
	return cw.Error()
}

// Apply adds rows to the ledger. Rows without a date are dated today.
func Apply(l *ledger.Ledger, rows []Row) []model.Expense {
	added := make([]model.Expense, 0, len(rows))
	for _, row := range rows {
		if row.Date.IsZero() {
			added = append(added, l.AddExpense(row.Category, row.Amount, row.Description))
			continue
		}
		added = append(added, l.AddExpenseOn(row.Category, row.Amount, row.Description, row.Date))
	}
	return added
}

// ImportFile reads a CSV file and adds its rows to the ledger.
func ImportFile(l *ledger.Ledger, path string) ([]model.Expense, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening %s: %w", path, err)
	}
	defer f.Close()

	rows, err := ReadExpenses(f)
	if err != nil {
		return nil, fmt.Errorf("importing %s: %w", path, err)
	}
	return Apply(l, rows), nil
}

// ExportFile writes expenses to a CSV file that ImportFile can read back.
func ExportFile(path string, expenses []model.Expense) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating %s: %w", path, err)
	}

	if err := WriteExpenses(f, expenses); err != nil {
		f.Close()
		return fmt.Errorf("exporting %s: %w", path, err)
	}
	return f.Close()
}
