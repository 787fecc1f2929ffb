package quadtree

// QueryResult holds the outcome of a Query call: the ids of every
// polygon containing the queried point, in encounter order. A QueryResult
// is reused across calls to Query — each call resets and refills it,
// rather than the tree allocating a fresh result every time.
type QueryResult struct {
	IDs []int64
}

// NewQueryResult returns a QueryResult ready to be passed to Query.
func NewQueryResult() *QueryResult {
	return &QueryResult{}
}

func (r *QueryResult) reset() {
	r.IDs = r.IDs[:0]
}
