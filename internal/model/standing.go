package model

// Standing is one player's place in the cash ranking
type Standing struct {
	Rank       int      `json:"rank"`
	PlayerID   PlayerID `json:"player_id"`
	Name       string   `json:"name"`
	Cash       int      `json:"cash"`
	Properties []string `json:"properties"`
	Bankrupt   bool     `json:"bankrupt"`
	Winner     bool     `json:"winner"`
}
