package scoring

import (
	"sort"

	"github.com/mcoot/monopoly-go/internal/model"
)

// Service decides when a game is over and who won it
type Service struct {
	maxRounds int
}

// New creates a new ScoringService. A non-positive round cap falls back to
// model.DefaultMaxRounds.
func New(maxRounds int) *Service {
	if maxRounds <= 0 {
		maxRounds = model.DefaultMaxRounds
	}
	return &Service{
		maxRounds: maxRounds,
	}
}

// MaxRounds returns the last round that is played before the game ends
func (s *Service) MaxRounds() int {
	return s.maxRounds
}

// RoundLimitReached returns true once the round counter has passed the cap
func (s *Service) RoundLimitReached(state *model.GameState) bool {
	return state.RoundNum > s.maxRounds
}

// IsGameOver returns true when at most one player is solvent or the round
// cap has been passed
func (s *Service) IsGameOver(state *model.GameState) bool {
	return len(state.ActivePlayers()) <= 1 || s.RoundLimitReached(state)
}

// Winners returns every player whose cash equals the highest cash in the
// game, in turn order. Bankrupt players take part in the comparison.
func (s *Service) Winners(state *model.GameState) []*model.Player {
	players := state.OrderedPlayers()
	if len(players) == 0 {
		return nil
	}

	maxCash := players[0].Cash
	for _, p := range players[1:] {
		if p.Cash > maxCash {
			maxCash = p.Cash
		}
	}

	var winners []*model.Player
	for _, p := range players {
		if p.Cash == maxCash {
			winners = append(winners, p)
		}
	}
	return winners
}

// WinnerNames returns the names of Winners
func (s *Service) WinnerNames(state *model.GameState) []string {
	winners := s.Winners(state)
	names := make([]string, len(winners))
	for i, w := range winners {
		names[i] = w.Name
	}
	return names
}

// Standings ranks all players by cash, highest first. Tied players share a
// rank and keep turn order between them.
func (s *Service) Standings(state *model.GameState) []model.Standing {
	players := state.OrderedPlayers()
	sort.SliceStable(players, func(i, j int) bool {
		return players[i].Cash > players[j].Cash
	})

	winners := make(map[model.PlayerID]bool)
	for _, w := range s.Winners(state) {
		winners[w.ID] = true
	}

	standings := make([]model.Standing, len(players))
	for i, p := range players {
		rank := i + 1
		if i > 0 && players[i-1].Cash == p.Cash {
			rank = standings[i-1].Rank
		}
		standings[i] = model.Standing{
			Rank:       rank,
			PlayerID:   p.ID,
			Name:       p.Name,
			Cash:       p.Cash,
			Properties: append([]string{}, p.Properties...),
			Bankrupt:   p.Bankrupt,
			Winner:     winners[p.ID],
		}
	}
	return standings
}
