// Command eem-plotter batch-converts a folder of fluorescence
// excitation-emission matrix (EEM) sample files into contour-plot
// images, one image per sample, written next to the inputs.
package main

import (
	"flag"
	"fmt"
	"os"

	"eem-plotter/internal/batch"
	"eem-plotter/internal/contour"
	"eem-plotter/internal/eem"
	"eem-plotter/internal/version"
)

func main() {
	flag.Usage = usage
	flag.Parse()

	args := flag.Args()
	if len(args) < 1 || len(args) > 2 {
		usage()
		os.Exit(1)
	}
	dir := args[0]
	format := "png"
	if len(args) == 2 {
		format = args[1]
	}

	names, err := eem.ListSamples(dir)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to list sample files: %v\n", err)
		os.Exit(1)
	}

	batch.WriteDiscovery(os.Stdout, names)

	summary := batch.Run(dir, names, format, contour.DefaultOptions())
	summary.WriteReport(os.Stdout)
}

func usage() {
	fmt.Fprintf(os.Stderr, "eem-plotter v%s\n\n", version.String())
	fmt.Fprintf(os.Stderr, "Usage: eem-plotter <file_path> [save_as]\n\n")
	fmt.Fprintf(os.Stderr, "  file_path  folder containing .csv or .xlsx EEM sample files\n")
	fmt.Fprintf(os.Stderr, "  save_as    output image format: png, svg, or pdf (default png)\n")
}
