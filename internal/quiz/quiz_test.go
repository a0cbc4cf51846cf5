package quiz

import (
	"encoding/json"
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ─── Test helpers ────────────────────────────────────────────────────────────

// testQuestions returns 16 questions, ids 1-16, four per trait in order.
func testQuestions() []Question {
	qs := make([]Question, 0, 16)
	for i, trait := range TraitOrder {
		for j := range QuestionsPerTrait {
			id := i*QuestionsPerTrait + j + 1
			qs = append(qs, Question{ID: id, Trait: trait, Text: fmt.Sprintf("statement %d", id)})
		}
	}
	return qs
}

// testProfiles returns a complete profile map titled after each key.
func testProfiles() map[ProfileKey]Profile {
	m := make(map[ProfileKey]Profile, 17)
	for _, k := range AllProfileKeys() {
		m[k] = Profile{Title: "Profile " + string(k), Description: "desc"}
	}
	m[DefaultProfileKey] = Profile{Title: "Default", Description: "fallback"}
	return m
}

// ─── Traits and keys ─────────────────────────────────────────────────────────

func TestValidateTrait(t *testing.T) {
	for _, tr := range TraitOrder {
		assert.NoError(t, ValidateTrait(tr))
	}
	assert.Error(t, ValidateTrait("agility"))
	assert.Error(t, ValidateTrait(""))
}

func TestKeyFromLevels(t *testing.T) {
	key, err := KeyFromLevels(TraitLevels{
		TraitAgility:      LevelHigh,
		TraitAgency:       LevelLow,
		TraitAlignment:    LevelLow,
		TraitAdaptability: LevelHigh,
	})
	require.NoError(t, err)
	assert.Equal(t, ProfileKey("High-Low-Low-High"), key)

	_, err = KeyFromLevels(TraitLevels{TraitAgility: LevelHigh})
	assert.Error(t, err, "a missing trait must not default to Low")
}

func TestParseProfileKey(t *testing.T) {
	levels, err := ParseProfileKey("high-LOW-Low-High")
	require.NoError(t, err)
	key, err := KeyFromLevels(levels)
	require.NoError(t, err)
	assert.Equal(t, ProfileKey("High-Low-Low-High"), key)

	for _, bad := range []string{"", "High", "High-Low-Low", "High-Low-Low-High-Low", "High-Mid-Low-High", "default"} {
		_, err := ParseProfileKey(bad)
		assert.Error(t, err, "key %q", bad)
	}
}

func TestAllProfileKeys(t *testing.T) {
	keys := AllProfileKeys()
	require.Len(t, keys, 16)
	assert.Equal(t, ProfileKey("High-High-High-High"), keys[0])
	assert.Equal(t, ProfileKey("High-High-High-Low"), keys[1])
	assert.Equal(t, ProfileKey("Low-High-High-High"), keys[8])
	assert.Equal(t, ProfileKey("Low-Low-Low-Low"), keys[15])

	seen := make(map[ProfileKey]bool)
	for _, k := range keys {
		assert.False(t, seen[k], "duplicate key %s", k)
		seen[k] = true
		_, err := ParseProfileKey(string(k))
		assert.NoError(t, err)
	}
}

// ─── Catalog ─────────────────────────────────────────────────────────────────

func TestNewCatalog(t *testing.T) {
	qs := testQuestions()
	// Shuffle the input; the catalog must sort by id.
	qs[0], qs[15] = qs[15], qs[0]

	c, err := NewCatalog(qs)
	require.NoError(t, err)
	assert.Equal(t, 16, c.Len())

	all := c.Questions()
	for i, q := range all {
		assert.Equal(t, i+1, q.ID)
	}

	q7, ok := c.Question(7)
	require.True(t, ok)
	assert.Equal(t, TraitAgency, q7.Trait)

	_, ok = c.Question(17)
	assert.False(t, ok)

	agility := c.ByTrait(TraitAgility)
	require.Len(t, agility, 4)
	assert.Equal(t, 1, agility[0].ID)
	assert.Equal(t, 4, agility[3].ID)
}

func TestCatalog_QuestionsReturnsCopy(t *testing.T) {
	c, err := NewCatalog(testQuestions())
	require.NoError(t, err)

	qs := c.Questions()
	qs[0].Text = "mutated"

	q, _ := c.Question(1)
	assert.Equal(t, "statement 1", q.Text)
	assert.Equal(t, "statement 1", c.Questions()[0].Text)
}

func TestNewCatalog_Rejects(t *testing.T) {
	tests := []struct {
		name   string
		mutate func([]Question) []Question
	}{
		{"too few", func(qs []Question) []Question { return qs[:15] }},
		{"duplicate id", func(qs []Question) []Question { qs[1].ID = 1; return qs }},
		{"zero id", func(qs []Question) []Question { qs[0].ID = 0; return qs }},
		{"unknown trait", func(qs []Question) []Question { qs[0].Trait = "Stamina"; return qs }},
		{"empty text", func(qs []Question) []Question { qs[3].Text = "  "; return qs }},
		{"unbalanced traits", func(qs []Question) []Question { qs[4].Trait = TraitAgility; return qs }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewCatalog(tt.mutate(testQuestions()))
			require.Error(t, err)
			assert.ErrorIs(t, err, ErrInvalidConfig)
		})
	}
}

// ─── Profile table ───────────────────────────────────────────────────────────

func TestNewProfileTable(t *testing.T) {
	table, err := NewProfileTable(testProfiles())
	require.NoError(t, err)

	keys := table.Keys()
	require.Len(t, keys, 17)
	assert.Equal(t, AllProfileKeys(), keys[:16])
	assert.Equal(t, DefaultProfileKey, keys[16])
}

func TestNewProfileTable_RequiresEveryKey(t *testing.T) {
	entries := testProfiles()
	delete(entries, "Low-High-Low-High")
	delete(entries, "High-High-Low-Low")

	_, err := NewProfileTable(entries)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInvalidConfig)
	assert.Contains(t, err.Error(), "Low-High-Low-High")
	assert.Contains(t, err.Error(), "High-High-Low-Low")
}

func TestNewProfileTable_RequiresDefault(t *testing.T) {
	entries := testProfiles()
	delete(entries, DefaultProfileKey)

	_, err := NewProfileTable(entries)
	assert.ErrorIs(t, err, ErrInvalidConfig)
}

func TestNewProfileTable_RejectsBadEntries(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(map[ProfileKey]Profile)
	}{
		{"non-canonical case", func(m map[ProfileKey]Profile) { m["high-low-low-low"] = Profile{Title: "x"} }},
		{"malformed key", func(m map[ProfileKey]Profile) { m["High-Low"] = Profile{Title: "x"} }},
		{"empty title", func(m map[ProfileKey]Profile) { m["Low-Low-Low-Low"] = Profile{Title: ""} }},
		{"unknown dev area trait", func(m map[ProfileKey]Profile) {
			m["Low-Low-Low-Low"] = Profile{
				Title:            "x",
				DevelopmentAreas: map[Trait]DevelopmentArea{"Stamina": {Description: "d", Tip: "t"}},
			}
		}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			entries := testProfiles()
			tt.mutate(entries)
			_, err := NewProfileTable(entries)
			assert.ErrorIs(t, err, ErrInvalidConfig)
		})
	}
}

func TestProfileTable_Lookup(t *testing.T) {
	table, err := NewProfileTable(testProfiles())
	require.NoError(t, err)

	for _, k := range AllProfileKeys() {
		p, fallback := table.Lookup(k)
		assert.False(t, fallback, "key %s", k)
		assert.Equal(t, "Profile "+string(k), p.Title)
	}

	for _, k := range []ProfileKey{"", "High-Low", "high-low-low-low", DefaultProfileKey} {
		p, fallback := table.Lookup(k)
		assert.True(t, fallback, "key %q", k)
		assert.Equal(t, "Default", p.Title)
	}

	_, ok := table.Profile("High-Low")
	assert.False(t, ok)
	p, ok := table.Profile(DefaultProfileKey)
	assert.True(t, ok)
	assert.Equal(t, "Default", p.Title)
}

func TestNewProfileTable_CopiesInput(t *testing.T) {
	entries := testProfiles()
	table, err := NewProfileTable(entries)
	require.NoError(t, err)

	entries["Low-Low-Low-Low"] = Profile{Title: "changed"}
	p, _ := table.Lookup("Low-Low-Low-Low")
	assert.Equal(t, "Profile Low-Low-Low-Low", p.Title)
}

func TestProfileTable_DevelopmentAreasAreOwned(t *testing.T) {
	const key ProfileKey = "High-Low-Low-High"
	entries := testProfiles()
	p := entries[key]
	p.DevelopmentAreas = map[Trait]DevelopmentArea{
		TraitAgency: {Description: "own your path", Tip: "keep a journal"},
	}
	entries[key] = p

	table, err := NewProfileTable(entries)
	require.NoError(t, err)

	// Through the input map.
	entries[key].DevelopmentAreas[TraitAgency] = DevelopmentArea{Description: "input edit"}

	// Through a looked-up copy.
	got, _ := table.Lookup(key)
	got.DevelopmentAreas[TraitAgency] = DevelopmentArea{Description: "lookup edit"}
	got.DevelopmentAreas[TraitAgility] = DevelopmentArea{Description: "added"}

	// Through Profile.
	stored, ok := table.Profile(key)
	require.True(t, ok)
	delete(stored.DevelopmentAreas, TraitAgency)

	again, _ := table.Lookup(key)
	assert.Equal(t, map[Trait]DevelopmentArea{
		TraitAgency: {Description: "own your path", Tip: "keep a journal"},
	}, again.DevelopmentAreas)
}

func TestProfile_Clone(t *testing.T) {
	assert.Nil(t, Profile{Title: "x"}.Clone().DevelopmentAreas)

	p := Profile{DevelopmentAreas: map[Trait]DevelopmentArea{TraitAlignment: {Tip: "a"}}}
	c := p.Clone()
	c.DevelopmentAreas[TraitAlignment] = DevelopmentArea{Tip: "b"}
	assert.Equal(t, "a", p.DevelopmentAreas[TraitAlignment].Tip)
}

// ─── Answer forms ────────────────────────────────────────────────────────────

func TestParseAnswerForm(t *testing.T) {
	answers, err := ParseAnswerForm(map[string]any{
		"1":   4,
		"q2":  float64(5),
		"Q3":  json.Number("3"),
		" 4 ": "2",
		"5":   int64(1),
	})
	require.NoError(t, err)
	assert.Equal(t, Answers{1: 4, 2: 5, 3: 3, 4: 2, 5: 1}, answers)
}

func TestParseAnswerForm_IntegralNumbers(t *testing.T) {
	answers, err := ParseAnswerForm(map[string]any{
		"1": float64(4),
		"2": json.Number("4.0"),
		"3": json.Number("5e0"),
	})
	require.NoError(t, err)
	assert.Equal(t, Answers{1: 4, 2: 4, 3: 5}, answers)

	for _, v := range []any{json.Number("4.5"), json.Number("abc"), float64(2.5)} {
		_, err := ParseAnswerForm(map[string]any{"1": v})
		var inputErr *InvalidInputError
		require.True(t, errors.As(err, &inputErr), "value %v", v)
		assert.Equal(t, ReasonNotInteger, inputErr.Reason)
	}
}

func TestParseAnswerForm_PassesRangeThrough(t *testing.T) {
	// Range checks belong to the scoring engine.
	answers, err := ParseAnswerForm(map[string]any{"1": 0, "2": 6})
	require.NoError(t, err)
	assert.Equal(t, Answers{1: 0, 2: 6}, answers)
}

func TestParseAnswerForm_Rejects(t *testing.T) {
	tests := []struct {
		name   string
		form   map[string]any
		reason InputReason
	}{
		{"bad key", map[string]any{"first": 3}, ""},
		{"zero key", map[string]any{"q0": 3}, ""},
		{"duplicate id", map[string]any{"7": 3, "q7": 4}, ""},
		{"fractional value", map[string]any{"7": 3.5}, ReasonNotInteger},
		{"word value", map[string]any{"7": "agree"}, ReasonNotInteger},
		{"null value", map[string]any{"7": nil}, ReasonNotInteger},
		{"bool value", map[string]any{"7": true}, ReasonNotInteger},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseAnswerForm(tt.form)
			require.Error(t, err)
			assert.ErrorIs(t, err, ErrInvalidInput)

			if tt.reason != "" {
				var inputErr *InvalidInputError
				require.True(t, errors.As(err, &inputErr))
				assert.Equal(t, tt.reason, inputErr.Reason)
				assert.Equal(t, 7, inputErr.QuestionID)
			}
		})
	}
}

func TestInvalidInputError_Message(t *testing.T) {
	err := &InvalidInputError{QuestionID: 7, Value: 6, Reason: ReasonOutOfRange}
	assert.Contains(t, err.Error(), "question 7")
	assert.Contains(t, err.Error(), "[1,5]")
	assert.ErrorIs(t, err, ErrInvalidInput)

	missing := &InvalidInputError{QuestionID: 3, Reason: ReasonMissing}
	assert.Equal(t, "invalid input: missing answer for question 3", missing.Error())
}
