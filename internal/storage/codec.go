package storage

import (
	"encoding/json"
	"fmt"
	"path/filepath"
	"regexp"
	"sort"
	"strconv"

	"github.com/mcoot/monopoly-go/internal/model"
)

// SaveExt is the file extension of saved games
const SaveExt = ".save"

var saveNamePattern = regexp.MustCompile(`^save_round_(\d+)\.save$`)

// SaveName returns the conventional name of a game saved in the given round
func SaveName(round int) string {
	return fmt.Sprintf("save_round_%d%s", round, SaveExt)
}

// NormalizeName strips any directory from a save name
func NormalizeName(name string) string {
	return filepath.Base(filepath.Clean(name))
}

// saveRound extracts the round from a conventional save name, or -1
func saveRound(name string) int {
	m := saveNamePattern.FindStringSubmatch(name)
	if m == nil {
		return -1
	}
	round, err := strconv.Atoi(m[1])
	if err != nil {
		return -1
	}
	return round
}

// SortSaveNames orders saves by round, with unconventional names last
func SortSaveNames(names []string) {
	sort.SliceStable(names, func(i, j int) bool {
		ri, rj := saveRound(names[i]), saveRound(names[j])
		if (ri < 0) != (rj < 0) {
			return ri >= 0
		}
		if ri != rj {
			return ri < rj
		}
		return names[i] < names[j]
	})
}

// Encode serializes a game state in the save file format
func Encode(state *model.GameState) ([]byte, error) {
	data, err := json.Marshal(state)
	if err != nil {
		return nil, fmt.Errorf("failed to encode save: %w", err)
	}
	return data, nil
}

// Decode parses a save file, rejecting data that cannot be played
func Decode(data []byte) (*model.GameState, error) {
	var state model.GameState
	if err := json.Unmarshal(data, &state); err != nil {
		return nil, fmt.Errorf("%w: %v", model.ErrInvalidSave, err)
	}
	if state.MapSize <= 0 {
		return nil, fmt.Errorf("%w: map_size must be positive", model.ErrInvalidSave)
	}
	if len(state.Players) == 0 {
		return nil, fmt.Errorf("%w: no players", model.ErrInvalidSave)
	}
	for _, id := range state.PlayerIDs() {
		if id < 1 || int(id) > state.PlayersNum {
			return nil, fmt.Errorf("%w: player ids must be 1..%d, found %d", model.ErrInvalidSave, state.PlayersNum, id)
		}
		if pos := state.Players[id].Position; pos < 1 || pos > state.MapSize {
			return nil, fmt.Errorf("%w: player %d is at position %d, outside 1..%d", model.ErrInvalidSave, id, pos, state.MapSize)
		}
	}
	return &state, nil
}
