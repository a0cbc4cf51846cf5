// Package prompts implements the MCP prompts of the career fitness quiz.
//
// Prompts are user-triggered workflows (like slash commands) that tell
// the assistant which tools to call and in what order. Unlike tools,
// they are started by the user.
package prompts

import (
	"context"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"
)

// QuizPrompt handles the career-fitness-quiz MCP prompt.
// It walks the assistant through administering the quiz.
type QuizPrompt struct{}

// NewQuizPrompt creates a QuizPrompt.
func NewQuizPrompt() *QuizPrompt {
	return &QuizPrompt{}
}

// Definition returns the MCP prompt definition for registration.
func (p *QuizPrompt) Definition() mcp.Prompt {
	return mcp.NewPrompt("career-fitness-quiz",
		mcp.WithPromptDescription(
			"Take the Career Fitness Profiling Quiz. "+
				"Rate 16 statements about how you learn, plan, align and adapt, "+
				"then receive your career fitness profile with development tips.",
		),
		mcp.WithArgument("pace",
			mcp.ArgumentDescription(
				"How to present statements: 'trait' (one trait's four statements at a time) or 'single' (one statement at a time). Default: trait",
			),
		),
	)
}

// Handle processes the career-fitness-quiz prompt request.
func (p *QuizPrompt) Handle(ctx context.Context, req mcp.GetPromptRequest) (*mcp.GetPromptResult, error) {
	pace := "trait"
	if args := req.Params.Arguments; args != nil {
		if v, ok := args["pace"]; ok && v == "single" {
			pace = v
		}
	}

	paceInstruction := "Present the statements one trait at a time (four statements per message)."
	if pace == "single" {
		paceInstruction = "Present the statements one at a time and wait for each rating."
	}

	return &mcp.GetPromptResult{
		Description: "Career Fitness Profiling Quiz",
		Messages: []mcp.PromptMessage{
			{
				Role: mcp.RoleUser,
				Content: mcp.NewTextContent(fmt.Sprintf(
					"I want to take the Career Fitness Profiling Quiz.\n\n"+
						"Please:\n"+
						"1. Run `quiz_questions` to get the statements and the 1-5 agreement scale\n"+
						"2. Explain that there are no right or wrong answers and that I should answer honestly\n"+
						"3. %s\n"+
						"4. Every statement needs a rating from 1 (Strongly Disagree) to 5 (Strongly Agree); "+
						"if I skip one, ask again before moving on\n"+
						"5. Once all 16 are rated, run `quiz_score` with my answers keyed by question id\n"+
						"6. Present my profile title, primary strengths, the per-trait chart and the development tips",
					paceInstruction,
				)),
			},
		},
	}, nil
}
