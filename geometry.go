package quadtree

// rect is an axis-aligned, half-open rectangle: it covers
// x in [left, left+width) and y in [bottom, bottom+height).
// The half-open convention is what lets every point inside a node's box
// belong to exactly one of its four quadrants.
type rect struct {
	left, bottom int32
	width, height int32
}

// contains reports whether (x,y) lies within r's half-open area.
func (r rect) contains(x, y int32) bool {
	return x >= r.left && x < r.left+r.width &&
		y >= r.bottom && y < r.bottom+r.height
}

// Quadrant numbering, fixed and load-bearing for the split math:
//
//	0 = upper-right (x >= midX, y >= midY)
//	1 = upper-left  (x <  midX, y >= midY)
//	2 = lower-left  (x <  midX, y <  midY)
//	3 = lower-right (x >= midX, y <  midY)
const (
	quadrantUpperRight = 0
	quadrantUpperLeft  = 1
	quadrantLowerLeft  = 2
	quadrantLowerRight = 3
)

// quadrant returns which of r's four quadrants (x,y) belongs to. The
// caller must ensure (x,y) lies within r.
func (r rect) quadrant(x, y int32) int {
	midX := r.left + r.width/2
	midY := r.bottom + r.height/2
	if x >= midX {
		if y >= midY {
			return quadrantUpperRight
		}
		return quadrantLowerRight
	}
	if y >= midY {
		return quadrantUpperLeft
	}
	return quadrantLowerLeft
}

// quarters splits r into its four child rectangles, numbered per the
// quadrant constants above. Uses mid = size/2 for the lower half and
// size-mid for the upper half so odd dimensions are covered exactly.
func (r rect) quarters() [4]rect {
	halfW := r.width / 2
	halfH := r.height / 2
	upperW := r.width - halfW
	upperH := r.height - halfH
	var q [4]rect
	q[quadrantUpperRight] = rect{r.left + halfW, r.bottom + halfH, upperW, upperH}
	q[quadrantUpperLeft] = rect{r.left, r.bottom + halfH, halfW, upperH}
	q[quadrantLowerLeft] = rect{r.left, r.bottom, halfW, halfH}
	q[quadrantLowerRight] = rect{r.left + halfW, r.bottom, upperW, halfH}
	return q
}

// Pure integer geometric predicates used by the tree to decide how a
// polygon's footprint interacts with a node's bounding rectangle.
//
// Coordinates are int32. Cross and dot products are computed in int64 so
// that the products of two int32 values never overflow.

// cross64 returns the z component of the cross product of (ax,ay) and (bx,by).
func cross64(ax, ay, bx, by int32) int64 {
	return int64(ax)*int64(by) - int64(ay)*int64(bx)
}

// dot64 returns the dot product of (ax,ay) and (bx,by).
func dot64(ax, ay, bx, by int32) int64 {
	return int64(ax)*int64(bx) + int64(ay)*int64(by)
}

// pointInPolygon reports whether (px,py) lies inside the polygon described
// by xs/ys (vertices implicitly close: an edge runs from the last vertex
// back to the first).
//
// Boundary convention: points exactly on the left or bottom edges of the
// polygon are inside; points on the right or top edges are outside. This
// asymmetry lets a point on an edge shared by two adjacent polygons be
// claimed by exactly one of them.
func pointInPolygon(px, py int32, xs, ys []int32) bool {
	n := len(xs)
	inside := false
	j := n - 1
	for i := 0; i < n; i++ {
		if (ys[i] > py) != (ys[j] > py) {
			// Cross-multiply instead of dividing so the comparison stays
			// exact in integer arithmetic: px < xs[j] + (xs[i]-xs[j])*(py-ys[j])/(ys[i]-ys[j])
			num := int64(xs[i]-xs[j]) * int64(py-ys[j])
			den := int64(ys[i] - ys[j])
			threshold := int64(xs[j])
			var crosses bool
			if den > 0 {
				crosses = int64(px)*den < num+threshold*den
			} else {
				crosses = int64(px)*den > num+threshold*den
			}
			if crosses {
				inside = !inside
			}
		}
		j = i
	}
	return inside
}

// segment is a directed line segment from (startX,startY) to (endX,endY).
type segment struct {
	startX, startY int32
	endX, endY     int32
}

// linesIntersect reports whether s1 and s2 intersect, treating each
// segment's parameter as the half-open interval [0,1): touching at a
// segment's start counts as an intersection, touching at its end does not.
func linesIntersect(s1, s2 segment) bool {
	ux, uy := s1.endX-s1.startX, s1.endY-s1.startY
	vx, vy := s2.endX-s2.startX, s2.endY-s2.startY
	dx, dy := s2.startX-s1.startX, s2.startY-s1.startY

	c1 := cross64(ux, uy, vx, vy)
	c2 := cross64(dx, dy, ux, uy)

	if c1 == 0 {
		if c2 != 0 {
			// Parallel, not collinear.
			return false
		}
		// Parallel and collinear: project onto the u axis and check the
		// two parameter intervals [0,1] and [lambda1,lambda2] overlap.
		uu := dot64(ux, uy, ux, uy)
		if uu == 0 {
			return true
		}
		du := dot64(dx, dy, ux, uy)
		uv := dot64(ux, uy, vx, vy)
		// lambda1 = du/uu, lambda2 = lambda1 + uv/uu
		lambda1Num := du
		lambda2Num := du + uv
		// Normalize so the denominator is positive for ordering.
		if uu < 0 {
			uu = -uu
			lambda1Num = -lambda1Num
			lambda2Num = -lambda2Num
		}
		lo, hi := lambda1Num, lambda2Num
		if lo > hi {
			lo, hi = hi, lo
		}
		// Intervals [lo,hi] and [0,uu] (both over denominator uu) overlap iff
		// lo <= uu && hi >= 0.
		return lo <= uu && hi >= 0
	}

	// lambda1 = cross(d, v)/c1, lambda2 = cross(d, u)/c1
	num1 := cross64(dx, dy, vx, vy)
	num2 := cross64(dx, dy, ux, uy)
	l1ok := inHalfOpenUnit(num1, c1)
	l2ok := inHalfOpenUnit(num2, c1)
	return l1ok && l2ok
}

// inHalfOpenUnit reports whether num/den lies in [0,1), without division.
func inHalfOpenUnit(num, den int64) bool {
	if den > 0 {
		return num >= 0 && num < den
	}
	return num <= 0 && num > den
}

// collidePolygonRectangle reports whether the polygon described by xs/ys
// touches the rectangle r: any polygon edge crosses any rectangle edge, or
// the polygon's first vertex lies inside the rectangle, or the rectangle's
// lower-left corner lies inside the polygon. The last two tests catch the
// cases where one shape strictly contains the other with no edge crossing.
func collidePolygonRectangle(xs, ys []int32, r rect) bool {
	n := len(xs)
	rectEdges := [4]segment{
		{r.left, r.bottom, r.left + r.width, r.bottom},
		{r.left + r.width, r.bottom, r.left + r.width, r.bottom + r.height},
		{r.left + r.width, r.bottom + r.height, r.left, r.bottom + r.height},
		{r.left, r.bottom + r.height, r.left, r.bottom},
	}
	j := n - 1
	for i := 0; i < n; i++ {
		edge := segment{xs[j], ys[j], xs[i], ys[i]}
		for _, re := range rectEdges {
			if linesIntersect(edge, re) {
				return true
			}
		}
		j = i
	}
	if pointInRectangle(xs[0], ys[0], r) {
		return true
	}
	if pointInPolygon(r.left, r.bottom, xs, ys) {
		return true
	}
	return false
}

// pointInRectangle reports whether (px,py) lies within r's half-open area.
func pointInRectangle(px, py int32, r rect) bool {
	return r.contains(px, py)
}

// rectangleInsidePolygon reports whether every corner of r's covered area
// lies inside the polygon described by xs/ys. Because r is half-open, the
// covered corners are (left,bottom), (left+w-1,bottom), (left,bottom+h-1)
// and (left+w-1,bottom+h-1).
func rectangleInsidePolygon(r rect, xs, ys []int32) bool {
	x0, y0 := r.left, r.bottom
	x1, y1 := r.left+r.width-1, r.bottom+r.height-1
	return pointInPolygon(x0, y0, xs, ys) &&
		pointInPolygon(x1, y0, xs, ys) &&
		pointInPolygon(x0, y1, xs, ys) &&
		pointInPolygon(x1, y1, xs, ys)
}

// nextPowerOf2 returns the smallest power of two >= max(1, n).
func nextPowerOf2(n int32) int32 {
	if n <= 1 {
		return 1
	}
	n--
	shifts := 0
	for n > 0 {
		n >>= 1
		shifts++
	}
	return 1 << uint(shifts)
}
