package dice

import (
	"github.com/mcoot/monopoly-go/internal/dependencies/random"
)

// DefaultFaces is the number of faces on each die in the standard game
const DefaultFaces = 4

// Roller throws a pair of independent dice
type Roller struct {
	random random.Random
	faces  int
}

// New creates a Roller. A non-positive face count falls back to DefaultFaces.
func New(random random.Random, faces int) *Roller {
	if faces <= 0 {
		faces = DefaultFaces
	}
	return &Roller{
		random: random,
		faces:  faces,
	}
}

// Faces returns the number of faces on each die
func (r *Roller) Faces() int {
	return r.faces
}

// Roll returns two independent values in [1, Faces]
func (r *Roller) Roll() (int, int) {
	return r.roll(), r.roll()
}

func (r *Roller) roll() int {
	return random.Between(r.random, 1, r.faces)
}
