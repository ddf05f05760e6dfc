package blockfall

// Kind identifies one of the seven standard tetromino shapes.
// The zero value marks an empty board cell.
type Kind byte

const (
	KindNone Kind = 0
	KindI    Kind = 'I'
	KindJ    Kind = 'J'
	KindL    Kind = 'L'
	KindO    Kind = 'O'
	KindS    Kind = 'S'
	KindT    Kind = 'T'
	KindZ    Kind = 'Z'
)

// Kinds lists the seven piece kinds in generation order.
var Kinds = [7]Kind{KindI, KindJ, KindL, KindO, KindS, KindT, KindZ}

// baseShapes holds the canonical rotation-0 shape for each kind.
var baseShapes = map[Kind][][]bool{
	KindI: {
		{true, true, true, true},
	},
	KindJ: {
		{true, false, false},
		{true, true, true},
	},
	KindL: {
		{false, false, true},
		{true, true, true},
	},
	KindO: {
		{true, true},
		{true, true},
	},
	KindS: {
		{false, true, true},
		{true, true, false},
	},
	KindT: {
		{false, true, false},
		{true, true, true},
	},
	KindZ: {
		{true, true, false},
		{false, true, true},
	},
}

// Shape returns a fresh copy of the kind's rotation-0 shape matrix.
func (k Kind) Shape() [][]bool {
	base := baseShapes[k]
	shape := make([][]bool, len(base))
	for y, row := range base {
		shape[y] = make([]bool, len(row))
		copy(shape[y], row)
	}
	return shape
}

// String returns the single-letter name of the kind.
func (k Kind) String() string {
	if k == KindNone {
		return "none"
	}
	return string(rune(k))
}

// Piece is an active tetromino: its current (possibly rotated) shape matrix
// and the board-relative position of its bounding box's top-left corner.
// Y may be negative while the piece is still above the visible board.
type Piece struct {
	Kind  Kind
	Shape [][]bool
	X, Y  int
}

// Width returns the width of the piece's bounding box.
func (p *Piece) Width() int {
	return len(p.Shape[0])
}

// Height returns the height of the piece's bounding box.
func (p *Piece) Height() int {
	return len(p.Shape)
}

// RotateCW returns a copy of the shape rotated 90 degrees clockwise.
func RotateCW(shape [][]bool) [][]bool {
	h := len(shape)
	w := len(shape[0])
	out := make([][]bool, w)
	for y := range out {
		out[y] = make([]bool, h)
		for x := range out[y] {
			out[y][x] = shape[h-1-x][y]
		}
	}
	return out
}

// RotateCCW returns a copy of the shape rotated 90 degrees counter-clockwise.
func RotateCCW(shape [][]bool) [][]bool {
	h := len(shape)
	w := len(shape[0])
	out := make([][]bool, w)
	for y := range out {
		out[y] = make([]bool, h)
		for x := range out[y] {
			out[y][x] = shape[x][w-1-y]
		}
	}
	return out
}
