package domain

// Cell is one entry of a DistanceMatrix. Known is false when either endpoint
// failed to resolve; the diagonal is always zero and known.
type Cell struct {
	Km    float64
	Known bool
}

// DistanceMatrix is a square table of pairwise distances. Places holds the
// normalized input names in original order (duplicates preserved) and labels
// both axes; Cells[i][j] is the distance from Places[i] to Places[j].
type DistanceMatrix struct {
	Places []string
	Cells  [][]Cell
}

// Size returns the number of rows (and columns).
func (m DistanceMatrix) Size() int { return len(m.Places) }
