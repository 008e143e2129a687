package model

import (
	"fmt"
	"sort"
)

// MinBoardSize is the smallest board the map editor accepts
const MinBoardSize = 8

// Board is the static description of a map: its size and the square at each
// 1-based position. It is the on-disk map file format.
type Board struct {
	Size    int             `json:"map_size"`
	Squares map[int]*Square `json:"squares"`
}

// NewBoard creates an empty board of the given size
func NewBoard(size int) *Board {
	return &Board{
		Size:    size,
		Squares: make(map[int]*Square, size),
	}
}

// Get returns the square at the given position, or nil if undefined
func (b *Board) Get(pos int) *Square {
	return b.Squares[pos]
}

// Set places a square at the given position
func (b *Board) Set(pos int, sq *Square) {
	b.Squares[pos] = sq
}

// IsValidPosition returns true if the position is within 1..Size
func (b *Board) IsValidPosition(pos int) bool {
	return pos >= 1 && pos <= b.Size
}

// Positions returns the defined positions in ascending order
func (b *Board) Positions() []int {
	positions := make([]int, 0, len(b.Squares))
	for pos := range b.Squares {
		positions = append(positions, pos)
	}
	sort.Ints(positions)
	return positions
}

// CountKind returns the number of squares of the given kind
func (b *Board) CountKind(kind SquareKind) int {
	count := 0
	for _, sq := range b.Squares {
		if sq != nil && sq.Kind == kind {
			count++
		}
	}
	return count
}

// Validate returns every structural problem with the board as a distinct
// human-readable message. An empty result means the board is playable.
func (b *Board) Validate() []string {
	var errs []string

	if b.Size < MinBoardSize {
		errs = append(errs, fmt.Sprintf("Map size must be at least %d, but is %d.", MinBoardSize, b.Size))
	}

	goCount := b.CountKind(SquareGo)
	inJailCount := b.CountKind(SquareInJail)
	goToJailExists := b.CountKind(SquareGoToJail) > 0

	if goCount != 1 {
		errs = append(errs, fmt.Sprintf("Map must have exactly one 'Go' square, but has %d.", goCount))
	}
	if inJailCount > 1 {
		errs = append(errs, fmt.Sprintf("Map can only have one 'In Jail/Just Visiting' square, but has %d.", inJailCount))
	}
	if goToJailExists && inJailCount == 0 {
		errs = append(errs, "Map has a 'Go to Jail' square but no 'In Jail/Just Visiting' square.")
	}

	var missing []int
	for pos := 1; pos <= b.Size; pos++ {
		if b.Squares[pos] == nil {
			missing = append(missing, pos)
		}
	}
	if len(missing) > 0 {
		errs = append(errs, fmt.Sprintf("Squares are undefined at positions %v.", missing))
	}

	for _, pos := range b.Positions() {
		if !b.IsValidPosition(pos) {
			errs = append(errs, fmt.Sprintf("Square at position %d is outside the map (1-%d).", pos, b.Size))
		}
	}

	seen := make(map[string]bool)
	duplicate := false
	for _, pos := range b.Positions() {
		sq := b.Squares[pos]
		if sq == nil || !sq.IsProperty() {
			continue
		}
		if sq.Name == "" {
			errs = append(errs, fmt.Sprintf("Property at position %d has no name.", pos))
		}
		if sq.Price < 0 || sq.Rent < 0 {
			errs = append(errs, fmt.Sprintf("Property %q cannot have a negative price or rent.", sq.Name))
		}
		if seen[sq.Name] {
			duplicate = true
		}
		seen[sq.Name] = true
	}
	if duplicate {
		errs = append(errs, "Duplicate property names found. Each property must have a unique name.")
	}

	return errs
}

// Clone returns a deep copy of the board
func (b *Board) Clone() *Board {
	c := NewBoard(b.Size)
	for pos, sq := range b.Squares {
		if sq == nil {
			continue
		}
		c.Squares[pos] = sq.Clone()
	}
	return c
}
