// Package quadtree implements a region quadtree that indexes polygons
// over a fixed, integer-coordinate bounding region and answers
// point-in-polygon "stabbing" queries: given a point, which registered
// polygons contain it?
//
// Polygons are registered with Insert under a caller-supplied id and can
// later be removed in bulk by that id with Remove. A Quadtree recursively
// subdivides its bounding region into four equal quadrants, storing at
// each node only the polygons relevant to that node's area, so a Query
// descends to a single leaf and tests only the polygons resident there.
//
// Quadtree is not thread-safe.
package quadtree

// Quadtree is a region quadtree indexing polygons within a fixed
// bounding rectangle, queryable by point.
type Quadtree struct {
	// bounds is the caller's original region, exactly as passed to New.
	// It governs every out-of-bounds check.
	bounds rect
	root   *node
}

// New creates a Quadtree covering the rectangle (left, bottom,
// left+width, bottom+height). width and height must be positive.
//
// Out-of-bounds checks on Insert and Query are against this exact
// rectangle. Internally the root node's rectangle is rounded up to the
// next power of two in each dimension, so that quadrant midpoints stay
// integer-exact at every depth; that rounding is purely a subdivision
// detail and never widens what counts as in-bounds.
func New(left, bottom, width, height int32) (*Quadtree, error) {
	if width <= 0 || height <= 0 {
		return nil, ErrInvalidBounds
	}
	bounds := rect{left: left, bottom: bottom, width: width, height: height}
	rootBounds := rect{
		left:   left,
		bottom: bottom,
		width:  nextPowerOf2(width),
		height: nextPowerOf2(height),
	}
	return &Quadtree{bounds: bounds, root: newNode(rootBounds, 0)}, nil
}

// Insert registers a polygon under id, described by its vertices xs/ys
// (the polygon's last vertex implicitly closes back to the first). xs and
// ys must have equal length, or Insert returns ErrMismatchedVertices. It
// returns ErrOutOfBounds, without modifying the tree, if any vertex lies
// outside the tree's original bounding rectangle.
//
// Insert does not require ids to be unique: the same id may be used for
// multiple polygons, all of which Query and Remove treat as belonging to
// that id.
func (q *Quadtree) Insert(id int64, xs, ys []int32) error {
	if len(xs) != len(ys) {
		return ErrMismatchedVertices
	}
	for i := range xs {
		if !q.bounds.contains(xs[i], ys[i]) {
			return ErrOutOfBounds
		}
	}
	p := newPolygon(id, xs, ys)
	q.root.put(p)
	return nil
}

// Remove unlinks every polygon registered under id from the tree. It is
// always successful, including when id has no matching polygon. Tree
// structure (nodes created by earlier splits) is not compacted.
func (q *Quadtree) Remove(id int64) {
	q.root.remove(id)
}

// Query finds every polygon containing (x, y) and appends their ids, in
// encounter order, to result. result is reset first, so it can be reused
// across repeated calls. It returns ErrOutOfBounds if (x, y) lies outside
// the tree's original bounding rectangle; an empty result is not an error.
func (q *Quadtree) Query(x, y int32, result *QueryResult) error {
	result.reset()
	if !q.bounds.contains(x, y) {
		return ErrOutOfBounds
	}
	leaf := q.root.findLeaf(x, y)
	result.IDs = queryLeaf(leaf, x, y, result.IDs)
	return nil
}
