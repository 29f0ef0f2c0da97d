// Package batch runs the per-file plot pipeline over a set of
// discovered sample files, collecting an explicit result per file
// instead of suppressing errors in the processing loop.
package batch

import (
	"fmt"
	"io"

	"eem-plotter/internal/contour"
	"eem-plotter/internal/eem"
)

// Result records the outcome of processing one sample file. Err is
// nil on success.
type Result struct {
	Name string
	Err  error
}

// Summary aggregates the results of one run, in processing order.
type Summary struct {
	Results   []Result
	Succeeded int
}

// Total returns the number of files processed.
func (s *Summary) Total() int { return len(s.Results) }

// WriteDiscovery writes the pre-processing summary of discovered
// sample files.
func WriteDiscovery(w io.Writer, names []string) {
	fmt.Fprintf(w, "There are %d files to parse.\n", len(names))
	fmt.Fprintf(w, "File list = %v\n", names)
}

// WriteReport writes one line per failed file followed by the
// completion summary.
func (s *Summary) WriteReport(w io.Writer) {
	for _, r := range s.Results {
		if r.Err != nil {
			fmt.Fprintf(w, "Failed to plot %s: %v\n", r.Name, r.Err)
		}
	}
	fmt.Fprintf(w, "Successfully plotted %d/%d files.\n", s.Succeeded, s.Total())
}

// Process loads one sample file and renders its contour plot.
func Process(dir, name, format string, opts contour.Options) error {
	X, Y, Z, err := eem.LoadMatrix(dir, name)
	if err != nil {
		return err
	}
	return contour.Render(X, Y, Z, dir, name, format, opts)
}

// Run processes the named sample files in order. A failing file is
// recorded and skipped; it never aborts the rest of the batch.
func Run(dir string, names []string, format string, opts contour.Options) *Summary {
	s := &Summary{Results: make([]Result, 0, len(names))}
	for _, name := range names {
		err := Process(dir, name, format, opts)
		if err == nil {
			s.Succeeded++
		}
		s.Results = append(s.Results, Result{Name: name, Err: err})
	}
	return s
}
