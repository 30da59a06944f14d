package world

// World is the static maze plus the moving board.
type World struct {
	Heights HeightMap
	Board   *Board
}

// New creates the default level.
func New() *World {
	return &World{
		Heights: DefaultHeights(),
		Board:   NewBoard(),
	}
}

// Tick advances the parts of the level that move on their own.
func (w *World) Tick() {
	w.Board.Tick()
}

// Stacks calls fn for every cube in the maze, row by row. solid is false for
// the cubes drawn as wireframe.
func (w *World) Stacks(fn func(row, col, level int, solid bool)) {
	for row := 0; row < Rows; row++ {
		for col := 0; col < Cols; col++ {
			for k := 0; k < w.Heights[row][col]; k++ {
				fn(row, col, k, k%2 == 0 && k <= WallThreshold)
			}
		}
	}
}

// CubeOrigin is the draw origin of cube level k in the given cell.
func CubeOrigin(row, col, level int) (x, y, z float32) {
	return OriginX + float32(col)*CellSize, 1.4 + float32(level)*CellSize, -float32(row) * CellSize
}
