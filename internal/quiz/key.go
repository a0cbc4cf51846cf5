package quiz

import (
	"fmt"
	"strings"
)

// ProfileKey is the hyphen-joined Level sequence in TraitOrder,
// e.g. "High-Low-Low-High".
type ProfileKey string

// DefaultProfileKey selects the fallback profile.
const DefaultProfileKey ProfileKey = "default"

// keySeparator joins levels inside a ProfileKey.
const keySeparator = "-"

// KeyFromLevels builds the ProfileKey for a full set of levels.
// A trait missing from levels is an error rather than a silent Low.
func KeyFromLevels(levels TraitLevels) (ProfileKey, error) {
	parts := make([]string, 0, len(TraitOrder))
	for _, t := range TraitOrder {
		lvl, ok := levels[t]
		if !ok {
			return "", fmt.Errorf("no level for trait %s", t)
		}
		parts = append(parts, string(lvl))
	}
	return ProfileKey(strings.Join(parts, keySeparator)), nil
}

// ParseProfileKey splits a key into per-trait levels. It accepts exactly
// four High/Low segments; the comparison is case-insensitive so that
// "high-low-low-high" from a chat client still resolves.
func ParseProfileKey(s string) (TraitLevels, error) {
	parts := strings.Split(strings.TrimSpace(s), keySeparator)
	if len(parts) != len(TraitOrder) {
		return nil, fmt.Errorf("profile key %q: want %d segments, got %d", s, len(TraitOrder), len(parts))
	}

	levels := make(TraitLevels, len(TraitOrder))
	for i, p := range parts {
		switch {
		case strings.EqualFold(p, string(LevelHigh)):
			levels[TraitOrder[i]] = LevelHigh
		case strings.EqualFold(p, string(LevelLow)):
			levels[TraitOrder[i]] = LevelLow
		default:
			return nil, fmt.Errorf("profile key %q: segment %d (%s) must be High or Low", s, i+1, p)
		}
	}
	return levels, nil
}

// AllProfileKeys returns the 16 possible keys, from all-High to all-Low,
// with Agility as the most significant position.
func AllProfileKeys() []ProfileKey {
	n := len(TraitOrder)
	keys := make([]ProfileKey, 0, 1<<n)
	for mask := 0; mask < 1<<n; mask++ {
		parts := make([]string, n)
		for i := range n {
			if mask&(1<<(n-1-i)) == 0 {
				parts[i] = string(LevelHigh)
			} else {
				parts[i] = string(LevelLow)
			}
		}
		keys = append(keys, ProfileKey(strings.Join(parts, keySeparator)))
	}
	return keys
}
