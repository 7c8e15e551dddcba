package report

import (
	"fmt"
	"sort"

	"github.com/xuri/excelize/v2"
)

// Sheet names used by WriteXLSX.
const (
	ResultsSheet = "results"
	SummarySheet = "summary"
)

// SummaryHeader is the column order of the summary sheet.
var SummaryHeader = []string{"graph_name", "trials", "best_fitness", "mean_fitness", "mean_elapsed_seconds"}

// Summary aggregates the records of one graph.
type Summary struct {
	GraphName          string
	Trials             int
	BestFitness        int
	MeanFitness        float64
	MeanElapsedSeconds float64
}

// Summarize groups recs by graph name, sorted by name.
func Summarize(recs []Record) []Summary {
	by := map[string]*Summary{}
	var names []string
	for _, r := range recs {
		s, ok := by[r.GraphName]
		if !ok {
			s = &Summary{GraphName: r.GraphName, BestFitness: r.Fitness}
			by[r.GraphName] = s
			names = append(names, r.GraphName)
		}
		s.Trials++
		if r.Fitness < s.BestFitness {
			s.BestFitness = r.Fitness
		}
		s.MeanFitness += float64(r.Fitness)
		s.MeanElapsedSeconds += r.ElapsedSeconds
	}
	sort.Strings(names)

	out := make([]Summary, 0, len(names))
	for _, name := range names {
		s := by[name]
		s.MeanFitness /= float64(s.Trials)
		s.MeanElapsedSeconds /= float64(s.Trials)
		out = append(out, *s)
	}

	return out
}

// WriteXLSX writes recs and their Summarize output to a new workbook at path.
func WriteXLSX(path string, recs []Record) error {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", ResultsSheet); err != nil {
		return fmt.Errorf("report: %w", err)
	}
	if err := writeRow(f, ResultsSheet, 1, toAny(Header)); err != nil {
		return err
	}
	for i, r := range recs {
		row := []any{r.GraphName, r.Order, r.Size, r.Density, r.Fitness, r.ElapsedSeconds}
		if err := writeRow(f, ResultsSheet, i+2, row); err != nil {
			return err
		}
	}

	if _, err := f.NewSheet(SummarySheet); err != nil {
		return fmt.Errorf("report: %w", err)
	}
	if err := writeRow(f, SummarySheet, 1, toAny(SummaryHeader)); err != nil {
		return err
	}
	for i, s := range Summarize(recs) {
		row := []any{s.GraphName, s.Trials, s.BestFitness, s.MeanFitness, s.MeanElapsedSeconds}
		if err := writeRow(f, SummarySheet, i+2, row); err != nil {
			return err
		}
	}

	if err := f.SaveAs(path); err != nil {
		return fmt.Errorf("report: %w", err)
	}

	return nil
}

func writeRow(f *excelize.File, sheet string, rowNum int, row []any) error {
	cell, err := excelize.CoordinatesToCellName(1, rowNum)
	if err != nil {
		return fmt.Errorf("report: %w", err)
	}
	if err = f.SetSheetRow(sheet, cell, &row); err != nil {
		return fmt.Errorf("report: %s!%s: %w", sheet, cell, err)
	}

	return nil
}

func toAny(xs []string) []any {
	out := make([]any, len(xs))
	for i, x := range xs {
		out[i] = x
	}

	return out
}
