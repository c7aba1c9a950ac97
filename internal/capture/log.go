package capture

import (
	"fmt"
	"os"
	"sync"

	"github.com/xuri/excelize/v2"
)

const sheet = "Sheet1"

// TimeFormat is the wall-clock format stored in the Date column.
const TimeFormat = "2006-01-02 15:04:05"

var header = []string{"User", "Text", "VoiceText", "Location", "Photo", "Date"}

// Record is one captured event. Exactly one of Text, VoiceText, Location
// and Photo is set; the rest stay empty.
type Record struct {
	User      string
	Text      string
	VoiceText string
	Location  string
	Photo     string
	Date      string
}

// Log is the capture spreadsheet. Every append re-reads and rewrites the
// whole file, so a single mutex owns write access.
type Log struct {
	mu   sync.Mutex
	path string
}

// Open attaches to the spreadsheet at path, creating it with a header row
// if it does not exist yet. Opening an existing log leaves its rows alone.
func Open(path string) (*Log, error) {
	if _, err := os.Stat(path); err != nil {
		if !os.IsNotExist(err) {
			return nil, err
		}
		f := excelize.NewFile()
		defer f.Close()
		if err := f.SetSheetRow(sheet, "A1", &header); err != nil {
			return nil, fmt.Errorf("write header: %w", err)
		}
		if err := f.SaveAs(path); err != nil {
			return nil, fmt.Errorf("create log: %w", err)
		}
	}
	return &Log{path: path}, nil
}

// Path returns the location of the spreadsheet on disk.
func (l *Log) Path() string { return l.path }

// Append adds one record after the last existing row.
func (l *Log) Append(rec Record) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	f, err := excelize.OpenFile(l.path)
	if err != nil {
		return fmt.Errorf("open log: %w", err)
	}
	defer f.Close()

	rows, err := f.GetRows(sheet)
	if err != nil {
		return fmt.Errorf("read log: %w", err)
	}

	cell, err := excelize.CoordinatesToCellName(1, len(rows)+1)
	if err != nil {
		return err
	}
	row := []interface{}{rec.User, rec.Text, rec.VoiceText, rec.Location, rec.Photo, rec.Date}
	if err := f.SetSheetRow(sheet, cell, &row); err != nil {
		return fmt.Errorf("append row: %w", err)
	}
	if err := f.Save(); err != nil {
		return fmt.Errorf("save log: %w", err)
	}
	return nil
}

// Records returns all captured rows in insertion order.
func (l *Log) Records() ([]Record, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	f, err := excelize.OpenFile(l.path)
	if err != nil {
		return nil, fmt.Errorf("open log: %w", err)
	}
	defer f.Close()

	rows, err := f.GetRows(sheet)
	if err != nil {
		return nil, fmt.Errorf("read log: %w", err)
	}
	if len(rows) == 0 {
		return nil, nil
	}

	recs := make([]Record, 0, len(rows)-1)
	for _, row := range rows[1:] {
		// GetRows trims trailing empty cells.
		cells := make([]string, len(header))
		copy(cells, row)
		recs = append(recs, Record{
			User:      cells[0],
			Text:      cells[1],
			VoiceText: cells[2],
			Location:  cells[3],
			Photo:     cells[4],
			Date:      cells[5],
		})
	}
	return recs, nil
}
