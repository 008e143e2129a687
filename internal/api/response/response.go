package response

import (
	"encoding/json"
	"net/http"

	"github.com/mcoot/monopoly-go/internal/model"
)

// JSON writes a JSON response
func JSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if data != nil {
		_ = json.NewEncoder(w).Encode(data)
	}
}

// Health is the response for the health endpoint
type Health struct {
	Status     string `json:"status"`
	Spectators int    `json:"spectators"`
}

// SaveList is the response for listing saves
type SaveList struct {
	Saves []string `json:"saves"`
}

// Player represents a player in API responses
type Player struct {
	ID         int      `json:"id"`
	Name       string   `json:"name"`
	Cash       int      `json:"cash"`
	Position   int      `json:"position"`
	InJail     bool     `json:"in_jail"`
	JailTurns  int      `json:"jail_turns"`
	Bankrupt   bool     `json:"bankrupt"`
	Properties []string `json:"properties"`
}

// PlayerFromModel converts a model.Player to a response Player
func PlayerFromModel(p *model.Player) Player {
	props := p.Properties
	if props == nil {
		props = []string{}
	}
	return Player{
		ID:         int(p.ID),
		Name:       p.Name,
		Cash:       p.Cash,
		Position:   p.Position,
		InJail:     p.InJail,
		JailTurns:  p.JailTurns,
		Bankrupt:   p.Bankrupt,
		Properties: props,
	}
}

// Save is the response for a single saved game
type Save struct {
	Name     string                `json:"name"`
	RoundNum int                   `json:"round_num"`
	MapSize  int                   `json:"map_size"`
	Players  []Player              `json:"players"`
	Squares  map[int]*model.Square `json:"squares"`
}

// SaveFromModel converts a saved game state
func SaveFromModel(name string, state *model.GameState) Save {
	players := make([]Player, 0, state.PlayersNum)
	for _, p := range state.OrderedPlayers() {
		players = append(players, PlayerFromModel(p))
	}
	return Save{
		Name:     name,
		RoundNum: state.RoundNum,
		MapSize:  state.MapSize,
		Players:  players,
		Squares:  state.Squares,
	}
}

// Standings is the cash ranking of a saved game
type Standings struct {
	Name      string           `json:"name"`
	RoundNum  int              `json:"round_num"`
	Standings []model.Standing `json:"standings"`
}

// MapValidation is the result of validating a map document
type MapValidation struct {
	Valid    bool     `json:"valid"`
	Problems []string `json:"problems"`
	Summary  []string `json:"summary,omitempty"`
}
