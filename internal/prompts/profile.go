package prompts

import (
	"context"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"
)

// ProfilePrompt handles the career-profile MCP prompt.
// It asks the assistant to explain a profile the user already has.
type ProfilePrompt struct{}

// NewProfilePrompt creates a ProfilePrompt.
func NewProfilePrompt() *ProfilePrompt {
	return &ProfilePrompt{}
}

// Definition returns the MCP prompt definition for registration.
func (p *ProfilePrompt) Definition() mcp.Prompt {
	return mcp.NewPrompt("career-profile",
		mcp.WithPromptDescription(
			"Explain a career fitness profile from its key "+
				"(High/Low for Agility, Agency, Alignment, Adaptability), "+
				"and suggest next steps for each development area.",
		),
		mcp.WithArgument("key",
			mcp.ArgumentDescription("Profile key such as High-Low-Low-High"),
			mcp.RequiredArgument(),
		),
	)
}

// Handle processes the career-profile prompt request.
func (p *ProfilePrompt) Handle(ctx context.Context, req mcp.GetPromptRequest) (*mcp.GetPromptResult, error) {
	key := ""
	if args := req.Params.Arguments; args != nil {
		key = args["key"]
	}
	if key == "" {
		return nil, fmt.Errorf("argument 'key' is required")
	}

	return &mcp.GetPromptResult{
		Description: fmt.Sprintf("Career profile: %s", key),
		Messages: []mcp.PromptMessage{
			{
				Role: mcp.RoleUser,
				Content: mcp.NewTextContent(fmt.Sprintf(
					"My career fitness profile key is %s.\n\n"+
						"Please:\n"+
						"1. Run `quiz_profile` with key='%s'\n"+
						"2. Explain what the profile says about my strengths in plain language\n"+
						"3. For each development area, turn the tip into one concrete action I can take this month\n"+
						"4. Remind me that all four areas can be strengthened through consistent practice",
					key, key,
				)),
			},
		},
	}, nil
}
