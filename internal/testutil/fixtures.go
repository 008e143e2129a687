package testutil

import "github.com/mcoot/monopoly-go/internal/model"

// StandardBoard returns a valid 10-square board:
//
//	1 Go, 2 Central (200/50), 3 Chance, 4 Income Tax, 5 Wan Chai (300/80),
//	6 In Jail/Just Visiting, 7 Stanley (150/20), 8 Go to Jail,
//	9 Free Parking, 10 Shek O (400/100)
func StandardBoard() *model.Board {
	b := model.NewBoard(10)
	b.Set(1, model.NewSquare(model.SquareGo))
	b.Set(2, model.NewProperty("Central", 200, 50))
	b.Set(3, model.NewSquare(model.SquareChance))
	b.Set(4, model.NewSquare(model.SquareIncomeTax))
	b.Set(5, model.NewProperty("Wan Chai", 300, 80))
	b.Set(6, model.NewSquare(model.SquareInJail))
	b.Set(7, model.NewProperty("Stanley", 150, 20))
	b.Set(8, model.NewSquare(model.SquareGoToJail))
	b.Set(9, model.NewSquare(model.SquareFreeParking))
	b.Set(10, model.NewProperty("Shek O", 400, 100))
	return b
}

// NewState returns a fresh game on StandardBoard with the given player names
func NewState(names ...string) *model.GameState {
	return model.NewGameState(StandardBoard(), names)
}
