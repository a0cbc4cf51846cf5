// Package resources implements MCP resource handlers for the quiz.
//
// Resources expose read-only quiz data that the host can pull into
// context. They use URI-based addressing (quiz://...) following MCP
// conventions and always return JSON.
package resources

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/HendryAvila/careerfit/internal/content"
	"github.com/HendryAvila/careerfit/internal/scoring"
	"github.com/mark3labs/mcp-go/mcp"
)

const (
	QuestionsURI = "quiz://questions"
	ProfilesURI  = "quiz://profiles"
	ConfigURI    = "quiz://config"
)

// Handler serves the quiz resources.
type Handler struct {
	pack *content.Pack
	norm scoring.Normalization
}

// NewHandler creates a resource Handler with its dependencies.
func NewHandler(pack *content.Pack, norm scoring.Normalization) *Handler {
	return &Handler{pack: pack, norm: norm}
}

// QuestionsResource returns the MCP resource definition for the catalog.
func (h *Handler) QuestionsResource() mcp.Resource {
	return mcp.NewResource(
		QuestionsURI,
		"Career Fitness Questions",
		mcp.WithResourceDescription("The 16 quiz statements with their traits, trait definitions and the answer scale"),
		mcp.WithMIMEType("application/json"),
	)
}

// ProfilesResource returns the MCP resource definition for the profile table.
func (h *Handler) ProfilesResource() mcp.Resource {
	return mcp.NewResource(
		ProfilesURI,
		"Career Fitness Profiles",
		mcp.WithResourceDescription("All career profiles keyed by Agility-Agency-Alignment-Adaptability levels, plus the default"),
		mcp.WithMIMEType("application/json"),
	)
}

// ConfigResource returns the MCP resource definition for scoring settings.
func (h *Handler) ConfigResource() mcp.Resource {
	return mcp.NewResource(
		ConfigURI,
		"Scoring Configuration",
		mcp.WithResourceDescription("Active chart normalization, High threshold, interpretation bands and content version"),
		mcp.WithMIMEType("application/json"),
	)
}

// HandleQuestions returns the catalog as JSON.
func (h *Handler) HandleQuestions(ctx context.Context, req mcp.ReadResourceRequest) ([]mcp.ResourceContents, error) {
	return jsonContents(req.Params.URI, map[string]any{
		"version":   h.pack.Version,
		"scale":     h.pack.Scale,
		"traits":    h.pack.Traits,
		"questions": h.pack.Questions,
	})
}

// HandleProfiles returns the profile table as JSON.
func (h *Handler) HandleProfiles(ctx context.Context, req mcp.ReadResourceRequest) ([]mcp.ResourceContents, error) {
	return jsonContents(req.Params.URI, h.pack.Profiles)
}

// scoringConfig is the JSON shape of quiz://config.
type scoringConfig struct {
	ContentVersion string                `json:"content_version"`
	Normalization  scoring.Normalization `json:"normalization"`
	PercentRange   [2]int                `json:"percent_range"`
	HighThreshold  int                   `json:"high_threshold"`
	Bands          []band                `json:"bands"`
}

type band struct {
	Name scoring.Band `json:"name"`
	From int          `json:"from_percent"`
}

// HandleConfig returns the active scoring settings as JSON.
func (h *Handler) HandleConfig(ctx context.Context, req mcp.ReadResourceRequest) ([]mcp.ResourceContents, error) {
	lo, hi := h.norm.Range()
	return jsonContents(req.Params.URI, scoringConfig{
		ContentVersion: h.pack.Version,
		Normalization:  h.norm,
		PercentRange:   [2]int{lo, hi},
		HighThreshold:  scoring.HighThreshold,
		Bands: []band{
			{Name: scoring.BandRequiresWork, From: 0},
			{Name: scoring.BandGettingThere, From: scoring.GettingThereFrom},
			{Name: scoring.BandExcellent, From: scoring.ExcellentFrom},
		},
	})
}

func jsonContents(uri string, v any) ([]mcp.ResourceContents, error) {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshaling %s: %w", uri, err)
	}
	return []mcp.ResourceContents{
		mcp.TextResourceContents{
			URI:      uri,
			MIMEType: "application/json",
			Text:     string(data),
		},
	}, nil
}
