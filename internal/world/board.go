package world

// Board positions are tracked in hundredths so the bounce pattern stays
// exact across millions of ticks.
const (
	boardStart    = 280
	boardLow      = 230
	boardHigh     = 350
	boardCruise   = 2
	boardRebound  = 5
	boardDrawY    = 4.75
	boardZOffset  = 4.7
	boardHalfSpan = CellSize / 2
)

// Board is the platform that slides back and forth over the column-0 pit.
type Board struct {
	pos int
	dir int
}

// NewBoard returns a board at its starting position moving south.
func NewBoard() *Board {
	return &Board{pos: boardStart, dir: 1}
}

// Tick advances the board one simulation step.
func (b *Board) Tick() {
	switch {
	case b.pos > boardLow && b.pos < boardHigh:
		b.pos += boardCruise * b.dir
	default:
		b.dir = -b.dir
		b.pos += boardRebound * b.dir
	}
}

// Position returns the oscillator value, which stays roughly between 2.3 and 3.5.
func (b *Board) Position() float32 {
	return float32(b.pos) / 100
}

// Direction is +1 while moving towards the start row and -1 otherwise.
func (b *Board) Direction() int {
	return b.dir
}

// Origin is where the board mesh is drawn. The mesh spans z from Origin.z to
// Origin.z+CellSize.
func (b *Board) Origin() (x, y, z float32) {
	return OriginX, boardDrawY, b.Position() - boardZOffset
}

// CenterZ is the world z of the middle of the board.
func (b *Board) CenterZ() float32 {
	_, _, z := b.Origin()
	return z + boardHalfSpan
}

// Covers reports whether a point at world z lies over the board.
func (b *Board) Covers(z float32) bool {
	d := z - b.CenterZ()
	if d < 0 {
		d = -d
	}
	return d < CellSize
}
