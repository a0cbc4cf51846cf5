package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/HendryAvila/careerfit/internal/quiz"
	"github.com/HendryAvila/careerfit/internal/report"
	"github.com/spf13/cobra"
)

// Output formats for the score and profile commands.
const (
	outText     = "text"
	outMarkdown = "markdown"
	outPretty   = "pretty"
	outJSON     = "json"
)

func validateOutput(format string, allowed ...string) error {
	for _, f := range allowed {
		if format == f {
			return nil
		}
	}
	return fmt.Errorf("invalid format %q: must be one of: %s", format, strings.Join(allowed, ", "))
}

// writeMarkdown prints md as-is or, for the pretty format, rendered for
// the terminal.
func writeMarkdown(out io.Writer, md, format string) error {
	if format == outPretty {
		rendered, err := report.Pretty(md, report.DefaultWrap)
		if err != nil {
			return err
		}
		md = rendered
	}
	_, err := io.WriteString(out, md)
	return err
}

func (a *app) newScoreCmd() *cobra.Command {
	var (
		pairs  map[string]int
		file   string
		all    int
		format string
	)

	cmd := &cobra.Command{
		Use:   "score",
		Short: "Score a completed quiz",
		Long: `Score a completed quiz. Provide exactly one answer source:

  --answers 1=4,2=5,...,16=3   ratings keyed by question id
  --file answers.json          a JSON object of question id to rating ("-" reads stdin)
  --all 3                      the same rating for every statement

Every one of the 16 statements needs a rating from 1 to 5.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := validateOutput(format, outText, outMarkdown, outPretty, outJSON); err != nil {
				return err
			}

			deps, err := a.deps()
			if err != nil {
				return err
			}

			sources := 0
			for _, set := range []bool{cmd.Flags().Changed("answers"), file != "", cmd.Flags().Changed("all")} {
				if set {
					sources++
				}
			}
			if sources != 1 {
				return errors.New("provide exactly one of --answers, --file or --all")
			}

			var form map[string]any
			switch {
			case file != "":
				form, err = readAnswerFile(file, cmd.InOrStdin())
				if err != nil {
					return err
				}
			case cmd.Flags().Changed("all"):
				form = make(map[string]any)
				for _, q := range deps.Engine.Catalog().Questions() {
					form[fmt.Sprint(q.ID)] = all
				}
			default:
				form = make(map[string]any, len(pairs))
				for k, v := range pairs {
					form[k] = v
				}
			}

			answers, err := quiz.ParseAnswerForm(form)
			if err != nil {
				return err
			}
			results, err := deps.Engine.Score(answers)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			switch format {
			case outJSON:
				enc := json.NewEncoder(out)
				enc.SetIndent("", "  ")
				return enc.Encode(results)
			case outMarkdown, outPretty:
				err = writeMarkdown(out, report.Markdown(results, deps.Pack), format)
			default:
				_, err = io.WriteString(out, report.Terminal(results, deps.Pack))
			}
			return err
		},
	}

	cmd.Flags().StringToIntVar(&pairs, "answers", nil, "ratings as id=value pairs, e.g. 1=4,2=5")
	cmd.Flags().StringVar(&file, "file", "", "JSON answers file, or - for stdin")
	cmd.Flags().IntVar(&all, "all", 0, "rate every statement with the same value")
	cmd.Flags().StringVarP(&format, "format", "f", outText, "output format: text, markdown, pretty or json")
	return cmd
}

// readAnswerFile decodes a JSON object of question id to rating.
func readAnswerFile(path string, stdin io.Reader) (map[string]any, error) {
	var r io.Reader = stdin
	if path != "-" {
		f, err := os.Open(path)
		if err != nil {
			return nil, fmt.Errorf("opening answers file: %w", err)
		}
		defer f.Close()
		r = f
	}

	dec := json.NewDecoder(r)
	dec.UseNumber()
	var form map[string]any
	if err := dec.Decode(&form); err != nil {
		return nil, fmt.Errorf("decoding answers: %w", err)
	}
	return form, nil
}
