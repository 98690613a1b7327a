package domain

// Coord addresses a single cell in a honeycomb grid.
// Column counts from the leftmost column; Offset counts from the bottom
// of that column.
type Coord struct {
	Column int `json:"column"`
	Offset int `json:"offset"`
}
