package report

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"time"

	"github.com/katalvlaran/romandom/graph"
)

// Header is the CSV column order.
var Header = []string{"graph_name", "order", "size", "density", "fitness", "elapsed_seconds"}

// ErrMalformedLog indicates a CSV log whose header or rows cannot be read back.
var ErrMalformedLog = errors.New("report: malformed result log")

// Record is one run outcome.
type Record struct {
	GraphName      string
	Order          int
	Size           int
	Density        float64
	Fitness        int
	ElapsedSeconds float64
}

// NewRecord fills the graph columns from g.
func NewRecord(name string, g *graph.Graph, fitness int, elapsed time.Duration) Record {
	return Record{
		GraphName:      name,
		Order:          g.Order(),
		Size:           g.Size(),
		Density:        g.Density(),
		Fitness:        fitness,
		ElapsedSeconds: elapsed.Seconds(),
	}
}

func (r Record) row() []string {
	return []string{
		r.GraphName,
		strconv.Itoa(r.Order),
		strconv.Itoa(r.Size),
		strconv.FormatFloat(r.Density, 'f', 6, 64),
		strconv.Itoa(r.Fitness),
		strconv.FormatFloat(r.ElapsedSeconds, 'f', 3, 64),
	}
}

// AppendCSV appends recs to the log at path, creating it with Header when it
// is absent or empty.
func AppendCSV(path string, recs ...Record) error {
	f, err := os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
	if err != nil {
		return fmt.Errorf("report: %w", err)
	}
	defer f.Close()

	st, err := f.Stat()
	if err != nil {
		return fmt.Errorf("report: %w", err)
	}
	w := csv.NewWriter(f)
	if st.Size() == 0 {
		if err = w.Write(Header); err != nil {
			return fmt.Errorf("report: %w", err)
		}
	}
	for _, r := range recs {
		if err = w.Write(r.row()); err != nil {
			return fmt.Errorf("report: %w", err)
		}
	}
	w.Flush()
	if err = w.Error(); err != nil {
		return fmt.Errorf("report: %w", err)
	}

	return f.Close()
}

// ReadCSV reads a log written by AppendCSV.
func ReadCSV(path string) ([]Record, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("report: %w", err)
	}
	defer f.Close()

	return readRecords(f)
}

func readRecords(r io.Reader) ([]Record, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = len(Header)

	head, err := cr.Read()
	if errors.Is(err, io.EOF) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("header: %v: %w", err, ErrMalformedLog)
	}
	for i := range Header {
		if head[i] != Header[i] {
			return nil, fmt.Errorf("header column %d is %q, want %q: %w", i+1, head[i], Header[i], ErrMalformedLog)
		}
	}

	var out []Record
	for line := 2; ; line++ {
		row, err := cr.Read()
		if errors.Is(err, io.EOF) {
			return out, nil
		}
		if err != nil {
			return nil, fmt.Errorf("line %d: %v: %w", line, err, ErrMalformedLog)
		}
		rec, err := parseRow(row)
		if err != nil {
			return nil, fmt.Errorf("line %d: %v: %w", line, err, ErrMalformedLog)
		}
		out = append(out, rec)
	}
}

func parseRow(row []string) (Record, error) {
	var (
		rec Record
		err error
	)
	rec.GraphName = row[0]
	if rec.Order, err = strconv.Atoi(row[1]); err != nil {
		return rec, err
	}
	if rec.Size, err = strconv.Atoi(row[2]); err != nil {
		return rec, err
	}
	if rec.Density, err = strconv.ParseFloat(row[3], 64); err != nil {
		return rec, err
	}
	if rec.Fitness, err = strconv.Atoi(row[4]); err != nil {
		return rec, err
	}
	if rec.ElapsedSeconds, err = strconv.ParseFloat(row[5], 64); err != nil {
		return rec, err
	}

	return rec, nil
}
