package geometry

import (
	"math"
	"testing"
)

func TestSegmentLength(t *testing.T) {
	s := NewSegment(NewVector3(0, 0, 0), NewVector3(3, 4, 0))

	expected := 5.0
	if math.Abs(s.Length()-expected) > 1e-10 {
		t.Errorf("Length failed: expected %v, got %v", expected, s.Length())
	}
}
