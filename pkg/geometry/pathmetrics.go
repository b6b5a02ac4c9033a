package geometry

import "math"

// curveSegments is the number of chords each bezier curve is flattened into
// when computing metrics. Flight trajectories are short and smooth, so a
// fixed subdivision is accurate well past pixel precision.
const curveSegments = 24

// PathMetrics measures a path's arc length and evaluates positions along it.
//
// The flight overlay uses metrics to advance an element along a custom
// trajectory: distance = Length() * progress, then PositionAt(distance).
type PathMetrics struct {
	points  []Offset
	lengths []float64 // cumulative length up to points[i]
	total   float64
}

// NewPathMetrics flattens the path into line segments and precomputes
// cumulative arc lengths. An empty or degenerate path yields metrics with
// zero length; PositionAt then always returns the path start.
func NewPathMetrics(p *Path) *PathMetrics {
	m := &PathMetrics{}
	if p.IsEmpty() {
		return m
	}

	var current, subpathStart Offset
	hasCurrent := false

	push := func(pt Offset) {
		if !hasCurrent {
			return
		}
		if len(m.points) == 0 {
			m.points = append(m.points, current)
			m.lengths = append(m.lengths, 0)
		}
		m.total += current.Distance(pt)
		m.points = append(m.points, pt)
		m.lengths = append(m.lengths, m.total)
		current = pt
	}

	for _, cmd := range p.Commands {
		switch cmd.Op {
		case PathOpMoveTo:
			if len(cmd.Args) < 2 {
				continue
			}
			current = Offset{X: cmd.Args[0], Y: cmd.Args[1]}
			subpathStart = current
			hasCurrent = true
		case PathOpLineTo:
			if len(cmd.Args) < 2 {
				continue
			}
			push(Offset{X: cmd.Args[0], Y: cmd.Args[1]})
		case PathOpQuadTo:
			if len(cmd.Args) < 4 {
				continue
			}
			c := Offset{X: cmd.Args[0], Y: cmd.Args[1]}
			end := Offset{X: cmd.Args[2], Y: cmd.Args[3]}
			start := current
			for i := 1; i <= curveSegments; i++ {
				t := float64(i) / curveSegments
				push(quadPoint(start, c, end, t))
			}
		case PathOpCubicTo:
			if len(cmd.Args) < 6 {
				continue
			}
			c1 := Offset{X: cmd.Args[0], Y: cmd.Args[1]}
			c2 := Offset{X: cmd.Args[2], Y: cmd.Args[3]}
			end := Offset{X: cmd.Args[4], Y: cmd.Args[5]}
			start := current
			for i := 1; i <= curveSegments; i++ {
				t := float64(i) / curveSegments
				push(cubicPoint(start, c1, c2, end, t))
			}
		case PathOpClose:
			push(subpathStart)
		}
	}

	return m
}

// Length returns the total arc length of the path.
func (m *PathMetrics) Length() float64 {
	return m.total
}

// IsDegenerate returns true if the path had no measurable segments.
func (m *PathMetrics) IsDegenerate() bool {
	return m.total <= 0 || len(m.points) < 2
}

// PositionAt returns the point at the given arc-length distance from the
// path start, and the unit tangent at that point. Distances are clamped to
// [0, Length()]. A degenerate path returns its start (or the zero offset)
// with a zero tangent.
func (m *PathMetrics) PositionAt(distance float64) (Offset, Offset) {
	if m.IsDegenerate() {
		if len(m.points) > 0 {
			return m.points[0], Offset{}
		}
		return Offset{}, Offset{}
	}
	if distance <= 0 {
		return m.points[0], m.tangent(0)
	}
	if distance >= m.total {
		last := len(m.points) - 1
		return m.points[last], m.tangent(last - 1)
	}

	// Binary search the cumulative lengths for the containing segment.
	lo, hi := 0, len(m.lengths)-1
	for lo < hi {
		mid := (lo + hi) / 2
		if m.lengths[mid] < distance {
			lo = mid + 1
		} else {
			hi = mid
		}
	}
	seg := lo - 1
	segLen := m.lengths[lo] - m.lengths[seg]
	t := 0.0
	if segLen > 0 {
		t = (distance - m.lengths[seg]) / segLen
	}
	return LerpOffset(m.points[seg], m.points[lo], t), m.tangent(seg)
}

// tangent returns the unit direction of the segment starting at index i.
func (m *PathMetrics) tangent(i int) Offset {
	if i < 0 || i+1 >= len(m.points) {
		return Offset{}
	}
	d := m.points[i+1].Sub(m.points[i])
	length := math.Hypot(d.X, d.Y)
	if length == 0 {
		return Offset{}
	}
	return Offset{X: d.X / length, Y: d.Y / length}
}

func quadPoint(p0, c, p1 Offset, t float64) Offset {
	inv := 1 - t
	return Offset{
		X: inv*inv*p0.X + 2*inv*t*c.X + t*t*p1.X,
		Y: inv*inv*p0.Y + 2*inv*t*c.Y + t*t*p1.Y,
	}
}

func cubicPoint(p0, c1, c2, p1 Offset, t float64) Offset {
	inv := 1 - t
	return Offset{
		X: inv*inv*inv*p0.X + 3*inv*inv*t*c1.X + 3*inv*t*t*c2.X + t*t*t*p1.X,
		Y: inv*inv*inv*p0.Y + 3*inv*inv*t*c1.Y + 3*inv*t*t*c2.Y + t*t*t*p1.Y,
	}
}
