package world

const (
	Rows = 10
	Cols = 10

	// WallThreshold is the tallest stack the player can stand on. Anything
	// taller is a wall.
	WallThreshold = 9

	// CellSize is the edge length of one maze cell (and one cube) in world units.
	CellSize float32 = 0.4

	// OriginX is the world x of column 0's center. Rows extend towards -z.
	OriginX float32 = -3.0
)

// Cell addresses one entry of the height map.
type Cell struct {
	Row, Col int
}

// Goal is the cell that wins the game.
var Goal = Cell{Row: 9, Col: 9}

// HeightMap is the fixed table of stack heights. Row 0 is nearest the start.
type HeightMap [Rows][Cols]int

var defaultHeights = HeightMap{
	{9, 9, 9, 7, 9, 7, 9, 9, 9, 9},
	{9, 9, 5, 9, 9, 9, 1, 9, 9, 9},
	{9, 9, 9, 5, 9, 9, 9, 9, 9, 9},
	{5, 9, 9, 12, 9, 7, 9, 7, 9, 1},
	{5, 9, 9, 9, 1, 9, 9, 9, 5, 9},
	{5, 9, 9, 12, 9, 9, 9, 9, 9, 9},
	{5, 5, 9, 9, 9, 9, 1, 12, 9, 9},
	{9, 9, 1, 9, 9, 2, 9, 9, 9, 1},
	{9, 9, 9, 9, 1, 9, 5, 9, 9, 9},
	{9, 9, 1, 9, 3, 9, 9, 9, 9, 9},
}

// DefaultHeights returns a copy of the built-in maze.
func DefaultHeights() HeightMap {
	return defaultHeights
}

// InBounds reports whether the cell lies inside the map.
func (h *HeightMap) InBounds(row, col int) bool {
	return row >= 0 && row < Rows && col >= 0 && col < Cols
}

// Height returns the stack height at (row, col). Cells outside the maze are
// void: height 0 and ok == false.
func (h *HeightMap) Height(row, col int) (int, bool) {
	if !h.InBounds(row, col) {
		return 0, false
	}
	return h[row][col], true
}

// IsWall reports whether the cell is taller than WallThreshold.
func (h *HeightMap) IsWall(row, col int) bool {
	height, _ := h.Height(row, col)
	return height > WallThreshold
}

// CellCenter returns the world x and z of the middle of the cell's footprint.
func CellCenter(row, col int) (x, z float32) {
	return OriginX + float32(col)*CellSize, -float32(row)*CellSize + CellSize/2
}
