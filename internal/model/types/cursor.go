package types

// Cursor describes one page of an id-ordered listing. Exactly one of PrevID
// and NextID may be set; when both are, PrevID wins.
type Cursor struct {
	PrevID int
	NextID int
	Limit  int
}

// Backward reports whether the page walks towards smaller ids.
func (c Cursor) Backward() bool {
	return c.PrevID > 0
}

// Start returns the exclusive id the page starts after (or before, when
// walking backward). Zero means the listing starts from the edge.
func (c Cursor) Start() int {
	if c.Backward() {
		return c.PrevID
	}
	return c.NextID
}
