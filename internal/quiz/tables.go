package quiz

import (
	"slices"
	"strings"
)

// --- Question catalog ---

// Catalog is the read-only question set. Build it once with NewCatalog
// and inject it wherever questions are needed.
type Catalog struct {
	questions []Question // sorted by ID
	byID      map[int]Question
}

// NewCatalog validates the questions and returns an immutable catalog.
// Every trait must carry exactly QuestionsPerTrait questions and ids
// must be unique and positive.
func NewCatalog(questions []Question) (*Catalog, error) {
	if len(questions) != len(TraitOrder)*QuestionsPerTrait {
		return nil, configErrorf("catalog has %d questions, want %d",
			len(questions), len(TraitOrder)*QuestionsPerTrait)
	}

	byID := make(map[int]Question, len(questions))
	perTrait := make(map[Trait]int, len(TraitOrder))
	for _, q := range questions {
		if q.ID <= 0 {
			return nil, configErrorf("question id %d must be positive", q.ID)
		}
		if _, dup := byID[q.ID]; dup {
			return nil, configErrorf("duplicate question id %d", q.ID)
		}
		if err := ValidateTrait(q.Trait); err != nil {
			return nil, configErrorf("question %d: %v", q.ID, err)
		}
		if strings.TrimSpace(q.Text) == "" {
			return nil, configErrorf("question %d has no text", q.ID)
		}
		byID[q.ID] = q
		perTrait[q.Trait]++
	}

	for _, t := range TraitOrder {
		if perTrait[t] != QuestionsPerTrait {
			return nil, configErrorf("trait %s has %d questions, want %d", t, perTrait[t], QuestionsPerTrait)
		}
	}

	sorted := slices.Clone(questions)
	slices.SortFunc(sorted, func(a, b Question) int { return a.ID - b.ID })

	return &Catalog{questions: sorted, byID: byID}, nil
}

// Questions returns all questions ordered by id.
func (c *Catalog) Questions() []Question {
	return slices.Clone(c.questions)
}

// Question returns the question with the given id.
func (c *Catalog) Question(id int) (Question, bool) {
	q, ok := c.byID[id]
	return q, ok
}

// ByTrait returns the questions of one trait, ordered by id.
func (c *Catalog) ByTrait(t Trait) []Question {
	var out []Question
	for _, q := range c.questions {
		if q.Trait == t {
			out = append(out, q)
		}
	}
	return out
}

// Len returns the number of questions.
func (c *Catalog) Len() int { return len(c.questions) }

// --- Profile table ---

// ProfileTable maps ProfileKeys to profiles with an explicit default.
type ProfileTable struct {
	entries map[ProfileKey]Profile
}

// NewProfileTable validates the entries and returns an immutable table.
//
// The table must be complete by construction: each of the 16 possible
// keys needs an explicit entry, and a DefaultProfileKey entry must exist
// as the catch-all for malformed keys. Unknown keys are rejected so a
// typo in authored content cannot hide a missing combination.
func NewProfileTable(entries map[ProfileKey]Profile) (*ProfileTable, error) {
	for key, p := range entries {
		if key != DefaultProfileKey {
			if _, err := ParseProfileKey(string(key)); err != nil {
				return nil, configErrorf("%v", err)
			}
			if _, canonical := canonicalKeys[key]; !canonical {
				return nil, configErrorf("profile key %q is not in canonical High/Low form", key)
			}
		}
		if strings.TrimSpace(p.Title) == "" {
			return nil, configErrorf("profile %q has no title", key)
		}
		for trait := range p.DevelopmentAreas {
			if err := ValidateTrait(trait); err != nil {
				return nil, configErrorf("profile %q: %v", key, err)
			}
		}
	}

	var missing []string
	for _, key := range AllProfileKeys() {
		if _, ok := entries[key]; !ok {
			missing = append(missing, string(key))
		}
	}
	if len(missing) > 0 {
		return nil, configErrorf("profile table has no entry for %s", strings.Join(missing, ", "))
	}
	if _, ok := entries[DefaultProfileKey]; !ok {
		return nil, configErrorf("profile table has no %q entry", DefaultProfileKey)
	}

	owned := make(map[ProfileKey]Profile, len(entries))
	for key, p := range entries {
		owned[key] = p.Clone()
	}
	return &ProfileTable{entries: owned}, nil
}

// canonicalKeys is the set of the 16 well-formed keys.
var canonicalKeys = func() map[ProfileKey]struct{} {
	m := make(map[ProfileKey]struct{}, 16)
	for _, k := range AllProfileKeys() {
		m[k] = struct{}{}
	}
	return m
}()

// Profile returns a copy of the entry stored under key, without fallback.
func (t *ProfileTable) Profile(key ProfileKey) (Profile, bool) {
	p, ok := t.entries[key]
	return p.Clone(), ok
}

// Lookup resolves key in two explicit steps: exact match, else the
// default entry. fallback reports whether the default was used. The
// returned profile is a copy and may be modified freely.
func (t *ProfileTable) Lookup(key ProfileKey) (p Profile, fallback bool) {
	if p, ok := t.entries[key]; ok && key != DefaultProfileKey {
		return p.Clone(), false
	}
	return t.entries[DefaultProfileKey].Clone(), true
}

// Keys returns every stored key: the 16 combinations in AllProfileKeys
// order, then the default.
func (t *ProfileTable) Keys() []ProfileKey {
	keys := make([]ProfileKey, 0, len(t.entries))
	for _, k := range AllProfileKeys() {
		if _, ok := t.entries[k]; ok {
			keys = append(keys, k)
		}
	}
	return append(keys, DefaultProfileKey)
}
