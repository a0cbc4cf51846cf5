package tools

import (
	"context"

	"github.com/HendryAvila/careerfit/internal/content"
	"github.com/HendryAvila/careerfit/internal/quiz"
	"github.com/HendryAvila/careerfit/internal/report"
	"github.com/mark3labs/mcp-go/mcp"
)

// QuestionsTool handles the quiz_questions MCP tool.
// It lists the statements the respondent must rate.
type QuestionsTool struct {
	scorer Scorer
	pack   *content.Pack
}

// NewQuestionsTool creates a QuestionsTool.
func NewQuestionsTool(scorer Scorer, pack *content.Pack) *QuestionsTool {
	return &QuestionsTool{scorer: scorer, pack: pack}
}

// Definition returns the MCP tool definition for registration.
func (t *QuestionsTool) Definition() mcp.Tool {
	return mcp.NewTool("quiz_questions",
		mcp.WithDescription(
			"List the 16 career fitness statements, grouped by trait "+
				"(Agility, Agency, Alignment, Adaptability), with the 1-5 agreement scale. "+
				"Present every statement to the user and collect one rating each "+
				"before calling quiz_score.",
		),
		withFormat(),
	)
}

// questionsPayload is the JSON shape of the catalog listing.
type questionsPayload struct {
	Scale     []content.ScalePoint `json:"scale"`
	Traits    []content.TraitInfo  `json:"traits"`
	Questions []quiz.Question      `json:"questions"`
}

// Handle processes the quiz_questions tool call.
func (t *QuestionsTool) Handle(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	format, err := parseFormat(req)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	catalog := t.scorer.Catalog()
	if format == formatJSON {
		return jsonResult(questionsPayload{
			Scale:     t.pack.Scale,
			Traits:    t.pack.Traits,
			Questions: catalog.Questions(),
		})
	}
	return mcp.NewToolResultText(report.Questions(catalog, t.pack)), nil
}
