// Package runlog appends one usage row per verification run to a CSV file.
// It is a fire-and-forget sink: callers log append failures and move on, and
// nothing in the verification engine ever reads it back.
package runlog

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/tickmark-dev/tickmark/internal/model"
)

// Entry is one row in the run log.
type Entry struct {
	Timestamp   time.Time
	Company     string
	TotalChecks int
	Passed      int
	Failed      int
	Exceptions  int
	High        int
	Medium      int
	Low         int
}

// Header is the CSV header for the run log.
const Header = "timestamp,company,total_checks,passed,failed,exceptions,high,medium,low"

const (
	numFields     = 9
	colTimestamp  = 0
	colCompany    = 1
	colTotal      = 2
	colPassed     = 3
	colFailed     = 4
	colExceptions = 5
	colHigh       = 6
	colMedium     = 7
	colLow        = 8
)

// FromResult builds an Entry for a completed run.
func FromResult(now time.Time, res model.VerificationResult) Entry {
	return Entry{
		Timestamp:   now,
		Company:     res.CompanyName,
		TotalChecks: res.KPI.TotalChecks,
		Passed:      res.KPI.Passed,
		Failed:      res.KPI.Failed,
		Exceptions:  res.KPI.ExceptionsFound,
		High:        res.KPI.HighSeverity,
		Medium:      res.KPI.MediumSeverity,
		Low:         res.KPI.LowSeverity,
	}
}

// MarshalEntry converts an Entry to a CSV row.
func MarshalEntry(e Entry) []string {
	row := make([]string, numFields)
	row[colTimestamp] = e.Timestamp.Format(time.RFC3339)
	row[colCompany] = e.Company
	row[colTotal] = strconv.Itoa(e.TotalChecks)
	row[colPassed] = strconv.Itoa(e.Passed)
	row[colFailed] = strconv.Itoa(e.Failed)
	row[colExceptions] = strconv.Itoa(e.Exceptions)
	row[colHigh] = strconv.Itoa(e.High)
	row[colMedium] = strconv.Itoa(e.Medium)
	row[colLow] = strconv.Itoa(e.Low)
	return row
}

// UnmarshalEntry converts a CSV row to an Entry.
func UnmarshalEntry(record []string) (Entry, error) {
	if len(record) != numFields {
		return Entry{}, fmt.Errorf("expected %d fields, got %d", numFields, len(record))
	}

	ts, err := time.Parse(time.RFC3339, record[colTimestamp])
	if err != nil {
		return Entry{}, fmt.Errorf("parsing timestamp %q: %w", record[colTimestamp], err)
	}

	ints := make([]int, numFields)
	for _, col := range []int{colTotal, colPassed, colFailed, colExceptions, colHigh, colMedium, colLow} {
		ints[col], err = strconv.Atoi(record[col])
		if err != nil {
			return Entry{}, fmt.Errorf("parsing column %d %q: %w", col, record[col], err)
		}
	}

	return Entry{
		Timestamp:   ts,
		Company:     record[colCompany],
		TotalChecks: ints[colTotal],
		Passed:      ints[colPassed],
		Failed:      ints[colFailed],
		Exceptions:  ints[colExceptions],
		High:        ints[colHigh],
		Medium:      ints[colMedium],
		Low:         ints[colLow],
	}, nil
}

// Append writes an entry to the log file, creating the directory, file, and
// header if needed.
func Append(path string, e Entry) error {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("creating run log dir: %w", err)
		}
	}

	needsHeader := false
	if _, err := os.Stat(path); os.IsNotExist(err) {
		needsHeader = true
	}

	f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_APPEND, 0o644)
	if err != nil {
		return fmt.Errorf("opening run log: %w", err)
	}
	defer f.Close()

	if needsHeader {
		if _, err := fmt.Fprintln(f, Header); err != nil {
			return fmt.Errorf("writing header: %w", err)
		}
	}

	cw := csv.NewWriter(f)
	if err := cw.Write(MarshalEntry(e)); err != nil {
		return fmt.Errorf("writing run log row: %w", err)
	}
	cw.Flush()
	return cw.Error()
}

// Read returns all entries from a run log reader.
func Read(r io.Reader) ([]Entry, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = numFields

	records, err := cr.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("reading run log CSV: %w", err)
	}
	if len(records) == 0 {
		return nil, nil
	}

	var entries []Entry
	for i, rec := range records[1:] {
		e, err := UnmarshalEntry(rec)
		if err != nil {
			return nil, fmt.Errorf("row %d: %w", i+2, err)
		}
		entries = append(entries, e)
	}
	return entries, nil
}
