package analysis

import (
	"fmt"
	"sort"

	"github.com/philipparndt/segplot/pkg/geometry"
	"github.com/philipparndt/segplot/pkg/plot"
)

// SegmentInfo describes one plotted segment
type SegmentInfo struct {
	Index  int
	Start  geometry.Vector3
	End    geometry.Vector3
	Length float64
}

// Result summarises a figure
type Result struct {
	BoundingBox  geometry.BoundingBox
	Dimensions   geometry.Vector3
	SegmentCount int
	MarkerCount  int
	TotalLength  float64
	MinLength    float64
	MaxLength    float64
	AvgLength    float64
	Segments     []SegmentInfo
}

// AnalyzeFigure measures every line drawn on fig
func AnalyzeFigure(fig *plot.Figure) *Result {
	lines := fig.Lines()
	result := &Result{
		BoundingBox:  fig.Bounds(),
		SegmentCount: len(lines),
		MarkerCount:  len(fig.Markers()),
		Segments:     make([]SegmentInfo, 0, len(lines)),
	}
	result.Dimensions = result.BoundingBox.Size()

	for i, line := range lines {
		length := line.Segment.Length()
		result.Segments = append(result.Segments, SegmentInfo{
			Index:  i,
			Start:  line.Segment.P0,
			End:    line.Segment.P1,
			Length: length,
		})

		result.TotalLength += length
		if i == 0 || length < result.MinLength {
			result.MinLength = length
		}
		if length > result.MaxLength {
			result.MaxLength = length
		}
	}

	if result.SegmentCount > 0 {
		result.AvgLength = result.TotalLength / float64(result.SegmentCount)
	}

	return result
}

// FindLongestSegments returns the count longest segments, longest first
func FindLongestSegments(result *Result, count int) []SegmentInfo {
	return sortedSegments(result, count, func(a, b SegmentInfo) bool {
		return a.Length > b.Length
	})
}

// FindShortestSegments returns the count shortest segments, shortest first
func FindShortestSegments(result *Result, count int) []SegmentInfo {
	return sortedSegments(result, count, func(a, b SegmentInfo) bool {
		return a.Length < b.Length
	})
}

func sortedSegments(result *Result, count int, less func(a, b SegmentInfo) bool) []SegmentInfo {
	segments := make([]SegmentInfo, len(result.Segments))
	copy(segments, result.Segments)

	sort.SliceStable(segments, func(i, j int) bool {
		return less(segments[i], segments[j])
	})

	if count > len(segments) {
		count = len(segments)
	}
	if count < 0 {
		count = 0
	}

	return segments[:count]
}

// FormatVector formats a 3D vector
func FormatVector(v geometry.Vector3) string {
	return fmt.Sprintf("(%.6f, %.6f, %.6f)", v.X, v.Y, v.Z)
}
