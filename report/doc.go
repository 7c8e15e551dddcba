// Package report persists per-run results.
//
// The CSV log is append-only with the header
//
//	graph_name,order,size,density,fitness,elapsed_seconds
//
// written exactly once, when the file is absent or empty. WriteXLSX exports
// a set of records as a workbook with a "results" sheet (one row per record)
// and a "summary" sheet (one row per graph: trials, best, mean fitness and
// mean elapsed seconds).
package report
