package geometry

// Segment is one straight line between a start and an end point
type Segment struct {
	P0 Vector3
	P1 Vector3
}

// NewSegment creates a segment from p0 to p1
func NewSegment(p0, p1 Vector3) Segment {
	return Segment{P0: p0, P1: p1}
}

// Length returns the distance between both endpoints
func (s Segment) Length() float64 {
	return s.P0.Distance(s.P1)
}
