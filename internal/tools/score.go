package tools

import (
	"context"
	"errors"
	"fmt"

	"github.com/HendryAvila/careerfit/internal/content"
	"github.com/HendryAvila/careerfit/internal/quiz"
	"github.com/HendryAvila/careerfit/internal/report"
	"github.com/google/uuid"
	"github.com/mark3labs/mcp-go/mcp"
	"go.uber.org/zap"
)

// ScoreTool handles the quiz_score MCP tool.
// It scores a complete answer set and returns the career profile.
type ScoreTool struct {
	scorer Scorer
	pack   *content.Pack
	logger *zap.Logger
}

// NewScoreTool creates a ScoreTool. A nil logger disables logging.
func NewScoreTool(scorer Scorer, pack *content.Pack, logger *zap.Logger) *ScoreTool {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &ScoreTool{scorer: scorer, pack: pack, logger: logger}
}

// Definition returns the MCP tool definition for registration.
func (t *ScoreTool) Definition() mcp.Tool {
	return mcp.NewTool("quiz_score",
		mcp.WithDescription(
			"Score a completed career fitness quiz. Requires one rating (1-5) for every one "+
				"of the 16 statements from quiz_questions. Returns per-trait scores, "+
				"High/Low levels, the matching career profile and development tips.",
		),
		mcp.WithObject("answers",
			mcp.Required(),
			mcp.Description(
				"Ratings keyed by question id, e.g. {\"1\": 4, \"2\": 5, ..., \"16\": 3}. "+
					"Keys may also use the form style \"q1\"..\"q16\". Values are integers 1-5 "+
					"(1 = Strongly Disagree, 5 = Strongly Agree).",
			),
		),
		withFormat(),
	)
}

// Handle processes the quiz_score tool call.
func (t *ScoreTool) Handle(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	format, err := parseFormat(req)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	logger := t.logger.With(zap.String("call_id", uuid.NewString()))

	answers, err := answersArg(req)
	if err != nil {
		return rejectAnswers(logger, err), nil
	}

	results, err := t.scorer.Score(answers)
	if err != nil {
		if errors.Is(err, quiz.ErrInvalidInput) {
			return rejectAnswers(logger, err), nil
		}
		return nil, fmt.Errorf("scoring answers: %w", err)
	}

	logger.Debug("scored answers",
		zap.String("key", string(results.Key)),
		zap.Bool("fallback", results.FallbackUsed),
	)

	if format == formatJSON {
		return jsonResult(results)
	}
	return mcp.NewToolResultText(report.Markdown(results, t.pack)), nil
}

// rejectAnswers logs a caller mistake and turns it into a tool error.
// Only reasons the user can fix by re-rating get the follow-up hint.
func rejectAnswers(logger *zap.Logger, err error) *mcp.CallToolResult {
	var inputErr *quiz.InvalidInputError
	if !errors.As(err, &inputErr) {
		logger.Warn("rejected answers", zap.Error(err))
		return mcp.NewToolResultError(err.Error())
	}

	logger.Warn("rejected answers",
		zap.Int("question_id", inputErr.QuestionID),
		zap.String("reason", string(inputErr.Reason)),
	)
	switch inputErr.Reason {
	case quiz.ReasonMissing, quiz.ReasonOutOfRange, quiz.ReasonNotInteger:
		return mcp.NewToolResultError(fmt.Sprintf(
			"%v. Ask the user to rate question %d before scoring again.",
			err, inputErr.QuestionID,
		))
	case quiz.ReasonUnknownQuestion:
		return mcp.NewToolResultError(fmt.Sprintf(
			"%v. Drop it and send only the questions from quiz_questions.", err,
		))
	default:
		return mcp.NewToolResultError(err.Error())
	}
}
