// careerfit: Career Fitness Profiling Quiz
//
// Scores the 16-statement career fitness quiz and serves it to AI
// assistants over MCP.
//
// Usage:
//
//	careerfit serve                       # Start MCP server (stdio transport)
//	careerfit questions                   # Print the quiz statements
//	careerfit score --answers 1=4,2=5,... # Score a completed quiz
//	careerfit profile High-Low-Low-High   # Show a profile
package main

import (
	"fmt"
	"os"

	"github.com/HendryAvila/careerfit/internal/config"
	"github.com/HendryAvila/careerfit/internal/logging"
	quizserver "github.com/HendryAvila/careerfit/internal/server"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

// app carries the state shared by all subcommands: flag values, the
// layered configuration and the logger built in PersistentPreRunE.
type app struct {
	configPath    string
	contentFile   string
	contentDB     string
	normalization string
	logLevel      string

	cfg    *config.Config
	logger *zap.Logger
}

func newRootCmd() *cobra.Command {
	a := &app{}

	root := &cobra.Command{
		Use:   "careerfit",
		Short: "Career Fitness Profiling Quiz",
		Long: `careerfit scores the Career Fitness Profiling Quiz.

Sixteen statements measure four traits (Agility, Agency, Alignment,
Adaptability). Each trait is classified High or Low and the combination
selects one of sixteen career profiles with development tips.

Run "careerfit serve" to expose the quiz to an AI assistant over MCP:

  {
    "mcpServers": {
      "careerfit": {
        "command": "careerfit",
        "args": ["serve"]
      }
    }
  }`,
		SilenceUsage:      true,
		PersistentPreRunE: a.setup,
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if a.logger != nil {
				_ = a.logger.Sync()
			}
		},
	}

	pf := root.PersistentFlags()
	pf.StringVar(&a.configPath, "config", config.DefaultPath(), "path to the JSON config file")
	pf.StringVar(&a.contentFile, "content", "", "YAML content pack (overrides the embedded content)")
	pf.StringVar(&a.contentDB, "content-db", "", "SQLite content database (overrides the embedded content)")
	pf.StringVar(&a.normalization, "normalization", "", "chart formula: linear or fraction")
	pf.StringVar(&a.logLevel, "log-level", "", "log level: debug, info, warn, error")

	root.AddCommand(
		a.newServeCmd(),
		a.newQuestionsCmd(),
		a.newScoreCmd(),
		a.newProfileCmd(),
		a.newContentCmd(),
		a.newConfigCmd(),
		newVersionCmd(),
	)
	return root
}

// setup loads configuration, applies flag overrides and builds the logger.
func (a *app) setup(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(a.configPath)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	flags := cmd.Flags()
	if flags.Changed("content") {
		cfg.ContentFile = a.contentFile
		cfg.ContentDB = ""
	}
	if flags.Changed("content-db") {
		cfg.ContentDB = a.contentDB
		if !flags.Changed("content") {
			cfg.ContentFile = ""
		}
	}
	if flags.Changed("normalization") {
		cfg.Normalization = a.normalization
	}
	if flags.Changed("log-level") {
		cfg.LogLevel = a.logLevel
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	logger, err := logging.New(cfg.LogLevel)
	if err != nil {
		return err
	}

	a.cfg = cfg
	a.logger = logger
	return nil
}

// deps resolves content and builds the engine.
func (a *app) deps() (*quizserver.Deps, error) {
	return quizserver.Setup(a.cfg, a.logger)
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the version",
		Args:  cobra.NoArgs,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return nil
		},
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "careerfit v%s\n", quizserver.Version)
		},
	}
}
