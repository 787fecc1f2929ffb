package quadtree

// polygon is an immutable polygon payload: an id the caller uses to
// identify it, and the closed sequence of vertices (xs[i],ys[i]); the
// edge from the last vertex back to the first is implicit.
//
// A polygon is created once per Insert call and shared by every tree
// node whose region it occupies; Go's garbage collector retires it once
// the last node referencing it is gone, so no refcount is kept here (see
// DESIGN.md for why a hand-rolled one, as the C original carries, is not
// needed in a GC'd language).
type polygon struct {
	id     int64
	xs, ys []int32
}

// newPolygon deep-copies xs/ys so the caller remains free to reuse or
// mutate its own backing arrays after Insert returns.
func newPolygon(id int64, xs, ys []int32) *polygon {
	ownXs := make([]int32, len(xs))
	ownYs := make([]int32, len(ys))
	copy(ownXs, xs)
	copy(ownYs, ys)
	return &polygon{id: id, xs: ownXs, ys: ownYs}
}
