// Package server wires all components and creates the MCP server instance.
//
// This is the composition root: it resolves the content pack, builds the
// read-only tables and the scoring engine, and injects them into the
// tools, prompts and resources. No scoring logic lives here, only wiring.
package server

import (
	"fmt"

	"github.com/HendryAvila/careerfit/internal/config"
	"github.com/HendryAvila/careerfit/internal/content"
	"github.com/HendryAvila/careerfit/internal/prompts"
	"github.com/HendryAvila/careerfit/internal/resources"
	"github.com/HendryAvila/careerfit/internal/scoring"
	"github.com/HendryAvila/careerfit/internal/tools"
	"github.com/mark3labs/mcp-go/server"
	"go.uber.org/zap"
)

// Version is set at build time via ldflags.
var Version = "dev"

// Deps holds the resolved, immutable dependencies shared by the MCP
// server and the CLI commands.
type Deps struct {
	Pack   *content.Pack
	Source content.Source
	Engine *scoring.Engine
}

// Setup resolves content from cfg and builds the scoring engine. It is
// the startup check: an incomplete catalog or profile table fails here,
// before any answers are scored.
func Setup(cfg *config.Config, logger *zap.Logger) (*Deps, error) {
	pack, source, err := content.Resolve(cfg.ContentFile, cfg.ContentDB)
	if err != nil {
		return nil, fmt.Errorf("loading content: %w", err)
	}

	catalog, profiles, err := pack.Tables()
	if err != nil {
		return nil, fmt.Errorf("building tables from %s: %w", source, err)
	}

	engine, err := scoring.New(catalog, profiles,
		scoring.WithNormalization(cfg.NormalizationValue()),
	)
	if err != nil {
		return nil, fmt.Errorf("creating scoring engine: %w", err)
	}

	logger.Info("content loaded",
		zap.Stringer("source", source),
		zap.String("version", pack.Version),
		zap.Int("questions", catalog.Len()),
		zap.Int("profiles", len(profiles.Keys())),
		zap.String("normalization", string(engine.Normalization())),
	)

	return &Deps{Pack: pack, Source: source, Engine: engine}, nil
}

// New creates and configures the MCP server with all tools, prompts
// and resources registered.
func New(deps *Deps, logger *zap.Logger) *server.MCPServer {
	s := server.NewMCPServer(
		"careerfit",
		Version,
		server.WithToolCapabilities(true),
		server.WithResourceCapabilities(false, true),
		server.WithPromptCapabilities(true),
		server.WithRecovery(),
		server.WithInstructions(serverInstructions()),
	)

	// --- Tools ---

	questionsTool := tools.NewQuestionsTool(deps.Engine, deps.Pack)
	s.AddTool(questionsTool.Definition(), questionsTool.Handle)

	scoreTool := tools.NewScoreTool(deps.Engine, deps.Pack, logger.Named("quiz_score"))
	s.AddTool(scoreTool.Definition(), scoreTool.Handle)

	profileTool := tools.NewProfileTool(deps.Engine, deps.Pack)
	s.AddTool(profileTool.Definition(), profileTool.Handle)

	// --- Prompts ---

	quizPrompt := prompts.NewQuizPrompt()
	s.AddPrompt(quizPrompt.Definition(), quizPrompt.Handle)

	profilePrompt := prompts.NewProfilePrompt()
	s.AddPrompt(profilePrompt.Definition(), profilePrompt.Handle)

	// --- Resources ---

	rh := resources.NewHandler(deps.Pack, deps.Engine.Normalization())
	s.AddResource(rh.QuestionsResource(), rh.HandleQuestions)
	s.AddResource(rh.ProfilesResource(), rh.HandleProfiles)
	s.AddResource(rh.ConfigResource(), rh.HandleConfig)

	return s
}

// serverInstructions tells the assistant how to run the quiz.
func serverInstructions() string {
	return `You have access to careerfit, the Career Fitness Profiling Quiz.

## WHEN TO USE careerfit

Offer the quiz when the user asks about career development, career
planning, their strengths at work, or "what kind of professional am I".

## HOW TO RUN THE QUIZ

1. Call quiz_questions to get the 16 statements and the 1-5 scale.
2. Present the statements grouped by trait. Do not rate on the user's
   behalf and do not infer ratings from conversation.
3. Every statement needs exactly one rating from 1 (Strongly Disagree)
   to 5 (Strongly Agree). If one is missing, ask for it.
4. Call quiz_score with all 16 ratings keyed by question id.
5. Present the profile title, primary strengths, the per-trait chart and
   the development tips.

## RULES

- quiz_score rejects incomplete or out-of-range answers and names the
  question. Ask the user for that rating; never guess it.
- A trait is High when its four ratings sum to 13 or more.
- Results are not stored. If the user wants to keep them, suggest they
  save the report themselves.
- Use quiz_profile to explain a profile key the user already has.`
}
