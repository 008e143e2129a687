package session

import (
	"slices"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/mcoot/monopoly-go/internal/model"
)

// ValidatePlayerName checks a name entered for the player at the given
// 1-based index against the rules and the names already taken. An empty
// entry is replaced with the default name. The accepted name is returned.
func ValidatePlayerName(raw string, index int, taken []string) (string, error) {
	name := strings.TrimSpace(raw)
	if name == "" {
		name = model.DefaultPlayerName(model.PlayerID(index))
	}

	if strings.IndexFunc(name, unicode.IsSpace) >= 0 {
		return "", model.ErrNameHasWhitespace
	}
	if utf8.RuneCountInString(name) > model.MaxNameLength {
		return "", model.ErrNameTooLong
	}
	for _, r := range name {
		if r > unicode.MaxASCII {
			return "", model.ErrNameNotASCII
		}
	}
	if slices.Contains(taken, name) {
		return "", model.ErrNameTaken
	}
	return name, nil
}

// ValidatePlayerCount checks the number of players in a new game
func ValidatePlayerCount(n int) error {
	if n < model.MinPlayers || n > model.MaxPlayers {
		return model.ErrInvalidPlayerCount
	}
	return nil
}
