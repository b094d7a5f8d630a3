package cmd

import (
	"fmt"
	"io"

	"github.com/philipparndt/segplot/pkg/analysis"
	"github.com/philipparndt/segplot/pkg/plot"
	"github.com/philipparndt/segplot/pkg/segments"
	"github.com/spf13/cobra"
)

type infoOptions struct {
	count    int
	longest  bool
	shortest bool
}

func newInfoCmd() *cobra.Command {
	opts := &infoOptions{}

	infoCmd := &cobra.Command{
		Use:   "info <file>",
		Short: "Print statistics about a segment file",
		Long:  "Show segment count, bounding box, dimensions and segment lengths without opening a window.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			fig := plot.NewFigure()
			if err := segments.Load(args[0], fig); err != nil {
				return fmt.Errorf("failed to load %s: %w", args[0], err)
			}
			printInfo(cmd.OutOrStdout(), args[0], analysis.AnalyzeFigure(fig), opts)
			return nil
		},
	}

	infoCmd.Flags().IntVarP(&opts.count, "count", "n", 10, "Number of segments to list")
	infoCmd.Flags().BoolVarP(&opts.longest, "longest", "l", false, "List the longest segments")
	infoCmd.Flags().BoolVarP(&opts.shortest, "shortest", "s", false, "List the shortest segments")
	infoCmd.MarkFlagsMutuallyExclusive("longest", "shortest")

	return infoCmd
}

func printInfo(w io.Writer, filename string, result *analysis.Result, opts *infoOptions) {
	fmt.Fprintln(w, "Segment File Information")
	fmt.Fprintln(w, "========================")
	fmt.Fprintf(w, "File: %s\n\n", filename)

	fmt.Fprintln(w, "Statistics:")
	fmt.Fprintf(w, "  Segments: %d\n", result.SegmentCount)
	fmt.Fprintf(w, "  Markers: %d\n", result.MarkerCount)
	fmt.Fprintf(w, "  Total Length: %.6f units\n\n", result.TotalLength)

	if result.SegmentCount == 0 {
		fmt.Fprintln(w, "Bounding Box: empty")
		return
	}

	fmt.Fprintln(w, "Bounding Box:")
	fmt.Fprintf(w, "  Min: %s\n", analysis.FormatVector(result.BoundingBox.Min))
	fmt.Fprintf(w, "  Max: %s\n", analysis.FormatVector(result.BoundingBox.Max))
	fmt.Fprintf(w, "  Center: %s\n\n", analysis.FormatVector(result.BoundingBox.Center()))

	fmt.Fprintln(w, "Dimensions:")
	fmt.Fprintf(w, "  Width (X): %.6f units\n", result.Dimensions.X)
	fmt.Fprintf(w, "  Depth (Y): %.6f units\n", result.Dimensions.Y)
	fmt.Fprintf(w, "  Height (Z): %.6f units\n", result.Dimensions.Z)
	fmt.Fprintf(w, "  Diagonal: %.6f units\n\n", result.BoundingBox.Diagonal())

	fmt.Fprintln(w, "Segment Lengths:")
	fmt.Fprintf(w, "  Minimum: %.6f units\n", result.MinLength)
	fmt.Fprintf(w, "  Maximum: %.6f units\n", result.MaxLength)
	fmt.Fprintf(w, "  Average: %.6f units\n", result.AvgLength)

	var listed []analysis.SegmentInfo
	var title string
	switch {
	case opts.longest:
		listed = analysis.FindLongestSegments(result, opts.count)
		title = fmt.Sprintf("Top %d Longest Segments", len(listed))
	case opts.shortest:
		listed = analysis.FindShortestSegments(result, opts.count)
		title = fmt.Sprintf("Top %d Shortest Segments", len(listed))
	default:
		return
	}

	fmt.Fprintf(w, "\n%s\n", title)
	fmt.Fprintf(w, "%-6s %-35s %-35s %-15s\n", "#", "Start", "End", "Length")
	for _, s := range listed {
		fmt.Fprintf(w, "%-6d %-35s %-35s %-15.6f\n",
			s.Index+1,
			analysis.FormatVector(s.Start),
			analysis.FormatVector(s.End),
			s.Length)
	}
}
