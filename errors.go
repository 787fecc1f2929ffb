package quadtree

import "errors"

// ErrInvalidBounds is returned by New when width or height is not positive.
var ErrInvalidBounds = errors.New("quadtree: width and height must be positive")

// ErrOutOfBounds is returned by Insert or Query when a point lies outside
// the tree's bounding rectangle. The rectangle is half-open, so a point on
// the rectangle's right or top edge is out of bounds.
var ErrOutOfBounds = errors.New("quadtree: point outside of bounds")

// ErrMismatchedVertices is returned by Insert when xs and ys have
// different lengths, so a vertex's x and y cannot be paired up.
var ErrMismatchedVertices = errors.New("quadtree: xs and ys must have the same length")
