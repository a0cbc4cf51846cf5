package report

import (
	"fmt"
	"strings"

	"github.com/HendryAvila/careerfit/internal/content"
	"github.com/HendryAvila/careerfit/internal/quiz"
	"github.com/HendryAvila/careerfit/internal/scoring"
	"github.com/charmbracelet/lipgloss"
)

// traitColors matches the trait palette of the quiz's web front end.
var traitColors = map[quiz.Trait]lipgloss.Color{
	quiz.TraitAgility:      lipgloss.Color("#F59E0B"),
	quiz.TraitAgency:       lipgloss.Color("#3B82F6"),
	quiz.TraitAlignment:    lipgloss.Color("#10B981"),
	quiz.TraitAdaptability: lipgloss.Color("#8B5CF6"),
}

var (
	headerStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#FFFFFF")).
			Background(lipgloss.Color("#1E3A8A")).
			Padding(0, 2)
	titleStyle = lipgloss.NewStyle().Bold(true).MarginTop(1)
	mutedStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#6B7280"))
	tipStyle   = lipgloss.NewStyle().
			Border(lipgloss.NormalBorder(), false, false, false, true).
			BorderForeground(lipgloss.Color("#9CA3AF")).
			PaddingLeft(1)
	bodyStyle = lipgloss.NewStyle().Width(76)
)

// Terminal renders a results report styled for an interactive terminal.
func Terminal(r *scoring.Results, pack *content.Pack) string {
	var b strings.Builder

	b.WriteString(headerStyle.Render("CAREER PROFILE RESULTS"))
	b.WriteString("\n")
	b.WriteString(titleStyle.Render(strings.ToUpper(r.Profile.Title)))
	b.WriteString("\n")

	if strengths := r.HighTraits(); len(strengths) > 0 {
		badges := make([]string, len(strengths))
		for i, t := range strengths {
			badges[i] = traitStyle(t).Render(string(t))
		}
		b.WriteString(mutedStyle.Render("PRIMARY STRENGTHS: "))
		b.WriteString(strings.Join(badges, " "))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(bodyStyle.Render(r.Profile.Description))
	b.WriteString("\n\n")

	for _, d := range r.ChartData {
		fmt.Fprintf(&b, "%-12s %s %3d%%  %s\n",
			d.Trait,
			traitStyle(d.Trait).Render(bar(d.Percent)),
			d.Percent,
			mutedStyle.Render(string(d.Band)),
		)
	}

	for _, t := range quiz.TraitOrder {
		area, ok := r.Profile.DevelopmentAreas[t]
		if !ok {
			continue
		}
		b.WriteString("\n")
		b.WriteString(traitStyle(t).Render(string(t)))
		if def := pack.Definition(t); def != "" {
			b.WriteString(" " + mutedStyle.Render(def))
		}
		b.WriteString("\n")
		b.WriteString(bodyStyle.Render(area.Description))
		b.WriteString("\n")
		b.WriteString(tipStyle.Render(bodyStyle.Render("Tip: " + area.Tip)))
		b.WriteString("\n")
	}

	return b.String()
}

func traitStyle(t quiz.Trait) lipgloss.Style {
	return lipgloss.NewStyle().Bold(true).Foreground(traitColors[t])
}
