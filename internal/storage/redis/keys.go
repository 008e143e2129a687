package redis

import "fmt"

// Key prefix for all saved game data
const keyPrefix = "monopoly"

// saveKey returns the Redis key holding an encoded save
func saveKey(name string) string {
	return fmt.Sprintf("%s:save:%s", keyPrefix, name)
}

// savesIndexKey returns the Redis key for the SET of save names
func savesIndexKey() string {
	return fmt.Sprintf("%s:idx:saves", keyPrefix)
}
