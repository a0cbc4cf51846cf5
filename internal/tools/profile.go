package tools

import (
	"context"
	"fmt"

	"github.com/HendryAvila/careerfit/internal/content"
	"github.com/HendryAvila/careerfit/internal/quiz"
	"github.com/HendryAvila/careerfit/internal/report"
	"github.com/mark3labs/mcp-go/mcp"
)

// ProfileTool handles the quiz_profile MCP tool.
// It looks up a career profile directly by its High/Low key.
type ProfileTool struct {
	scorer Scorer
	pack   *content.Pack
}

// NewProfileTool creates a ProfileTool.
func NewProfileTool(scorer Scorer, pack *content.Pack) *ProfileTool {
	return &ProfileTool{scorer: scorer, pack: pack}
}

// Definition returns the MCP tool definition for registration.
func (t *ProfileTool) Definition() mcp.Tool {
	return mcp.NewTool("quiz_profile",
		mcp.WithDescription(
			"Look up a career fitness profile by key without scoring answers. "+
				"The key lists High/Low for Agility, Agency, Alignment and Adaptability "+
				"in that order, e.g. 'High-Low-Low-High'.",
		),
		mcp.WithString("key",
			mcp.Required(),
			mcp.Description("Profile key: four High/Low values joined by '-' in trait order"),
		),
		withFormat(),
	)
}

// profilePayload is the JSON shape of a profile lookup.
type profilePayload struct {
	Key          quiz.ProfileKey `json:"key"`
	FallbackUsed bool            `json:"fallback_used"`
	Profile      quiz.Profile    `json:"profile"`
}

// Handle processes the quiz_profile tool call.
func (t *ProfileTool) Handle(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	format, err := parseFormat(req)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	raw := req.GetString("key", "")
	if raw == "" {
		return mcp.NewToolResultError("'key' is required"), nil
	}

	levels, err := quiz.ParseProfileKey(raw)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("%v. Example key: High-Low-Low-High", err)), nil
	}
	key, err := quiz.KeyFromLevels(levels)
	if err != nil {
		return nil, fmt.Errorf("building key: %w", err)
	}

	profile, fallback := t.scorer.Lookup(key)
	if format == formatJSON {
		return jsonResult(profilePayload{Key: key, FallbackUsed: fallback, Profile: profile})
	}
	return mcp.NewToolResultText(report.Profile(key, profile, fallback, t.pack)), nil
}
