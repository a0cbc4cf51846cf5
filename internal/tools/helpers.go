// Package tools implements the MCP tool handlers of the career fitness quiz.
//
// Each tool is a struct holding its dependencies and exposing
// Definition() for registration and Handle() as the mcp-go handler.
// Caller mistakes (bad answers, malformed keys) come back as tool error
// results; Go errors are reserved for internal failures.
package tools

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/HendryAvila/careerfit/internal/quiz"
	"github.com/HendryAvila/careerfit/internal/scoring"
	"github.com/mark3labs/mcp-go/mcp"
)

// Scorer is the slice of the scoring engine the tools depend on.
type Scorer interface {
	Score(answers quiz.Answers) (*scoring.Results, error)
	Lookup(key quiz.ProfileKey) (quiz.Profile, bool)
	Catalog() *quiz.Catalog
	Normalization() scoring.Normalization
}

// Output formats accepted by the `format` argument.
const (
	formatMarkdown = "markdown"
	formatJSON     = "json"
)

// withFormat adds the shared `format` argument to a tool definition.
func withFormat() mcp.ToolOption {
	return mcp.WithString("format",
		mcp.Description("Response format: 'markdown' (readable report) or 'json' (structured data). Defaults to 'markdown'."),
		mcp.DefaultString(formatMarkdown),
		mcp.Enum(formatMarkdown, formatJSON),
	)
}

// parseFormat validates the `format` argument.
func parseFormat(req mcp.CallToolRequest) (string, error) {
	format := req.GetString("format", formatMarkdown)
	if format != formatMarkdown && format != formatJSON {
		return "", fmt.Errorf("'format' must be 'markdown' or 'json'")
	}
	return format, nil
}

// jsonResult marshals v as indented JSON text.
func jsonResult(v any) (*mcp.CallToolResult, error) {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshaling result: %w", err)
	}
	return mcp.NewToolResultText(string(data)), nil
}

// answersArg extracts the `answers` argument. Clients send either a JSON
// object or, when they cannot build nested arguments, the same object
// encoded as a string.
func answersArg(req mcp.CallToolRequest) (quiz.Answers, error) {
	raw, ok := req.GetArguments()["answers"]
	if !ok || raw == nil {
		return nil, errors.New("'answers' is required")
	}

	var form map[string]any
	switch v := raw.(type) {
	case map[string]any:
		form = v
	case string:
		dec := json.NewDecoder(bytes.NewReader([]byte(v)))
		dec.UseNumber()
		if err := dec.Decode(&form); err != nil {
			return nil, fmt.Errorf("'answers' must be an object of question id to value: %v", err)
		}
	default:
		return nil, errors.New("'answers' must be an object of question id to value")
	}

	return quiz.ParseAnswerForm(form)
}
