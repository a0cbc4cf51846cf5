package resources

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/HendryAvila/careerfit/internal/content"
	"github.com/HendryAvila/careerfit/internal/quiz"
	"github.com/HendryAvila/careerfit/internal/scoring"
	"github.com/mark3labs/mcp-go/mcp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newHandler(t *testing.T, norm scoring.Normalization) *Handler {
	t.Helper()
	pack, err := content.Default()
	require.NoError(t, err)
	return NewHandler(pack, norm)
}

func readReq(uri string) mcp.ReadResourceRequest {
	req := mcp.ReadResourceRequest{}
	req.Params.URI = uri
	return req
}

// decode unmarshals the single text resource into v.
func decode(t *testing.T, contents []mcp.ResourceContents, v any) {
	t.Helper()
	require.Len(t, contents, 1)
	tc, ok := contents[0].(mcp.TextResourceContents)
	require.True(t, ok)
	assert.Equal(t, "application/json", tc.MIMEType)
	require.NoError(t, json.Unmarshal([]byte(tc.Text), v))
}

func TestResourceDefinitions(t *testing.T) {
	h := newHandler(t, scoring.NormalizationLinear)
	assert.Equal(t, QuestionsURI, h.QuestionsResource().URI)
	assert.Equal(t, ProfilesURI, h.ProfilesResource().URI)
	assert.Equal(t, ConfigURI, h.ConfigResource().URI)
}

func TestHandleQuestions(t *testing.T) {
	h := newHandler(t, scoring.NormalizationLinear)
	contents, err := h.HandleQuestions(context.Background(), readReq(QuestionsURI))
	require.NoError(t, err)

	var got struct {
		Version   string          `json:"version"`
		Questions []quiz.Question `json:"questions"`
		Scale     []any           `json:"scale"`
		Traits    []any           `json:"traits"`
	}
	decode(t, contents, &got)
	assert.Equal(t, "1.0.0", got.Version)
	assert.Len(t, got.Questions, 16)
	assert.Len(t, got.Scale, 5)
	assert.Len(t, got.Traits, 4)
}

func TestHandleProfiles(t *testing.T) {
	h := newHandler(t, scoring.NormalizationLinear)
	contents, err := h.HandleProfiles(context.Background(), readReq(ProfilesURI))
	require.NoError(t, err)

	var got map[quiz.ProfileKey]quiz.Profile
	decode(t, contents, &got)
	assert.Len(t, got, 17)
	assert.Equal(t, "The Olympian", got["High-High-High-High"].Title)
	assert.Equal(t, "The Versatile All-Rounder", got[quiz.DefaultProfileKey].Title)
}

func TestHandleConfig(t *testing.T) {
	tests := []struct {
		norm scoring.Normalization
		lo   int
	}{
		{scoring.NormalizationLinear, 0},
		{scoring.NormalizationFraction, 20},
	}
	for _, tt := range tests {
		t.Run(string(tt.norm), func(t *testing.T) {
			h := newHandler(t, tt.norm)
			contents, err := h.HandleConfig(context.Background(), readReq(ConfigURI))
			require.NoError(t, err)

			var got scoringConfig
			decode(t, contents, &got)
			assert.Equal(t, tt.norm, got.Normalization)
			assert.Equal(t, [2]int{tt.lo, 100}, got.PercentRange)
			assert.Equal(t, 13, got.HighThreshold)
			require.Len(t, got.Bands, 3)
			assert.Equal(t, scoring.BandExcellent, got.Bands[2].Name)
			assert.Equal(t, 75, got.Bands[2].From)
		})
	}
}
