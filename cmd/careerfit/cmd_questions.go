package main

import (
	"encoding/json"

	"github.com/HendryAvila/careerfit/internal/quiz"
	"github.com/HendryAvila/careerfit/internal/report"
	"github.com/spf13/cobra"
)

func (a *app) newQuestionsCmd() *cobra.Command {
	var format string

	cmd := &cobra.Command{
		Use:   "questions",
		Short: "Print the quiz statements grouped by trait",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := validateOutput(format, outMarkdown, outPretty); err != nil {
				return err
			}
			deps, err := a.deps()
			if err != nil {
				return err
			}
			return writeMarkdown(cmd.OutOrStdout(), report.Questions(deps.Engine.Catalog(), deps.Pack), format)
		},
	}

	cmd.Flags().StringVarP(&format, "format", "f", outMarkdown, "output format: markdown or pretty")
	return cmd
}

func (a *app) newProfileCmd() *cobra.Command {
	var format string

	cmd := &cobra.Command{
		Use:   "profile KEY",
		Short: "Show the profile for a High/Low key",
		Long: `Show the profile for a key listing High or Low for Agility, Agency,
Alignment and Adaptability, in that order. Example:

  careerfit profile High-Low-Low-High`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := validateOutput(format, outMarkdown, outPretty, outJSON); err != nil {
				return err
			}

			levels, err := quiz.ParseProfileKey(args[0])
			if err != nil {
				return err
			}
			key, err := quiz.KeyFromLevels(levels)
			if err != nil {
				return err
			}

			deps, err := a.deps()
			if err != nil {
				return err
			}
			profile, fallback := deps.Engine.Lookup(key)

			out := cmd.OutOrStdout()
			if format == outJSON {
				enc := json.NewEncoder(out)
				enc.SetIndent("", "  ")
				return enc.Encode(map[string]any{
					"key":           key,
					"fallback_used": fallback,
					"profile":       profile,
				})
			}
			return writeMarkdown(out, report.Profile(key, profile, fallback, deps.Pack), format)
		},
	}

	cmd.Flags().StringVarP(&format, "format", "f", outMarkdown, "output format: markdown, pretty or json")
	return cmd
}
