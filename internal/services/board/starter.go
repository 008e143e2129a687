package board

import (
	"fmt"

	"github.com/mcoot/monopoly-go/internal/model"
)

// Properties of the starter map, cycled when the map is larger than the list
var starterProperties = []struct {
	name        string
	price, rent int
}{
	{"Central", 200, 50},
	{"Wan Chai", 300, 80},
	{"Stanley", 150, 20},
	{"Shek O", 400, 100},
	{"Mong Kok", 250, 60},
	{"Tsim Sha Tsui", 350, 90},
	{"Sha Tin", 180, 30},
	{"Tai Po", 120, 15},
}

// fixed squares of the starter map, by position
var starterFixed = map[int]model.SquareKind{
	1: model.SquareGo,
	3: model.SquareChance,
	4: model.SquareIncomeTax,
	6: model.SquareInJail,
	8: model.SquareGoToJail,
	9: model.SquareFreeParking,
}

// StarterMap builds a playable map of the given size. Positions past the
// fixed layout alternate properties and chance squares.
func StarterMap(size int) (*model.Board, error) {
	if size < model.MinBoardSize {
		return nil, fmt.Errorf("%w: map size must be at least %d", model.ErrInvalidMap, model.MinBoardSize)
	}

	b := model.NewBoard(size)
	next := 0
	for pos := 1; pos <= size; pos++ {
		if kind, ok := starterFixed[pos]; ok {
			b.Set(pos, model.NewSquare(kind))
			continue
		}
		if pos > 10 && pos%4 == 0 {
			b.Set(pos, model.NewSquare(model.SquareChance))
			continue
		}
		p := starterProperties[next%len(starterProperties)]
		name := p.name
		if round := next / len(starterProperties); round > 0 {
			name = fmt.Sprintf("%s %d", p.name, round+1)
		}
		b.Set(pos, model.NewProperty(name, p.price, p.rent))
		next++
	}
	return b, nil
}
