// Package content loads the authored quiz content: question wording,
// trait definitions, the answer scale and the profile table.
//
// Content is versioned independently of scoring. A Pack comes from the
// embedded default, a YAML file or a SQLite content database, is
// validated once at load, and is then turned into the read-only tables
// the scoring engine consumes.
package content

import (
	"bytes"
	_ "embed"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/HendryAvila/careerfit/internal/quiz"
	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"
)

//go:embed default.yaml
var defaultPack []byte

// TraitInfo is the human-readable definition of one trait.
type TraitInfo struct {
	Trait      quiz.Trait `json:"trait" yaml:"trait" validate:"required,oneof=Agility Agency Alignment Adaptability"`
	Definition string     `json:"definition" yaml:"definition" validate:"required"`
}

// ScalePoint is one option of the Likert scale.
type ScalePoint struct {
	Value int    `json:"value" yaml:"value" validate:"min=1,max=5"`
	Label string `json:"label" yaml:"label" validate:"required"`
}

// Pack is a complete, self-consistent set of quiz content.
type Pack struct {
	Version   string                           `json:"version" yaml:"version" validate:"required"`
	Traits    []TraitInfo                      `json:"traits" yaml:"traits" validate:"len=4,dive"`
	Scale     []ScalePoint                     `json:"scale" yaml:"scale" validate:"len=5,dive"`
	Questions []quiz.Question                  `json:"questions" yaml:"questions" validate:"required,dive"`
	Profiles  map[quiz.ProfileKey]quiz.Profile `json:"profiles" yaml:"profiles" validate:"required,dive"`
}

// Default returns the embedded content pack.
func Default() (*Pack, error) {
	p, err := Decode(bytes.NewReader(defaultPack))
	if err != nil {
		return nil, fmt.Errorf("embedded content: %w", err)
	}
	return p, nil
}

// LoadFile reads and validates a YAML content pack from disk.
func LoadFile(path string) (*Pack, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening content file: %w", err)
	}
	defer f.Close()

	p, err := Decode(f)
	if err != nil {
		return nil, fmt.Errorf("content file %s: %w", path, err)
	}
	return p, nil
}

// Decode parses a YAML content pack and validates it.
// Unknown fields are rejected so misspelled keys surface immediately.
func Decode(r io.Reader) (*Pack, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)

	var p Pack
	if err := dec.Decode(&p); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("%w: empty content pack", quiz.ErrInvalidConfig)
		}
		return nil, fmt.Errorf("%w: parsing content pack: %v", quiz.ErrInvalidConfig, err)
	}
	if err := p.Validate(); err != nil {
		return nil, err
	}
	return &p, nil
}

// Validate runs the structural checks (required fields, enums, scale
// bounds) followed by the table checks: a balanced catalog and a profile
// table that resolves all 16 keys without relying on the default.
func (p *Pack) Validate() error {
	if err := validate.Struct(p); err != nil {
		return fmt.Errorf("%w: %s", quiz.ErrInvalidConfig, describe(err))
	}

	seen := make(map[quiz.Trait]bool, len(p.Traits))
	for _, ti := range p.Traits {
		if seen[ti.Trait] {
			return fmt.Errorf("%w: trait %s defined twice", quiz.ErrInvalidConfig, ti.Trait)
		}
		seen[ti.Trait] = true
	}
	for i, sp := range p.Scale {
		if sp.Value != i+quiz.MinAnswer {
			return fmt.Errorf("%w: scale point %d has value %d, want %d",
				quiz.ErrInvalidConfig, i+1, sp.Value, i+quiz.MinAnswer)
		}
	}

	if _, _, err := p.Tables(); err != nil {
		return err
	}
	return nil
}

// Tables builds the read-only catalog and profile table for the engine.
func (p *Pack) Tables() (*quiz.Catalog, *quiz.ProfileTable, error) {
	catalog, err := quiz.NewCatalog(p.Questions)
	if err != nil {
		return nil, nil, err
	}
	profiles, err := quiz.NewProfileTable(p.Profiles)
	if err != nil {
		return nil, nil, err
	}
	return catalog, profiles, nil
}

// Definition returns the authored definition of a trait.
func (p *Pack) Definition(t quiz.Trait) string {
	for _, ti := range p.Traits {
		if ti.Trait == t {
			return ti.Definition
		}
	}
	return ""
}

// ScaleLabel returns the label for an answer value, or "" if unknown.
func (p *Pack) ScaleLabel(v int) string {
	for _, sp := range p.Scale {
		if sp.Value == v {
			return sp.Label
		}
	}
	return ""
}

// --- Validation ---

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterStructValidation(validateQuestion, quiz.Question{})
	v.RegisterStructValidation(validateProfile, quiz.Profile{})
	return v
}

// validateQuestion checks quiz.Question, which carries no validate tags
// of its own.
func validateQuestion(sl validator.StructLevel) {
	q := sl.Current().Interface().(quiz.Question)
	if q.ID <= 0 {
		sl.ReportError(q.ID, "ID", "id", "gt", "0")
	}
	if strings.TrimSpace(q.Text) == "" {
		sl.ReportError(q.Text, "Text", "text", "required", "")
	}
	if quiz.ValidateTrait(q.Trait) != nil {
		sl.ReportError(q.Trait, "Trait", "trait", "oneof", "Agility Agency Alignment Adaptability")
	}
}

func validateProfile(sl validator.StructLevel) {
	p := sl.Current().Interface().(quiz.Profile)
	if strings.TrimSpace(p.Title) == "" {
		sl.ReportError(p.Title, "Title", "title", "required", "")
	}
	if strings.TrimSpace(p.Description) == "" {
		sl.ReportError(p.Description, "Description", "description", "required", "")
	}
	if len(p.DevelopmentAreas) == 0 {
		return
	}
	for _, t := range quiz.TraitOrder {
		area, ok := p.DevelopmentAreas[t]
		field := "DevelopmentAreas[" + string(t) + "]"
		switch {
		case !ok:
			sl.ReportError(p.DevelopmentAreas, field, string(t), "required", "")
		case strings.TrimSpace(area.Description) == "" || strings.TrimSpace(area.Tip) == "":
			sl.ReportError(area, field, string(t), "required", "")
		}
	}
}

// describe flattens validator errors into one readable line.
func describe(err error) string {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return err.Error()
	}
	msgs := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		msg := fmt.Sprintf("%s failed %q", fe.Namespace(), fe.Tag())
		if fe.Param() != "" {
			msg += fmt.Sprintf(" (%s)", fe.Param())
		}
		msgs = append(msgs, msg)
	}
	return strings.Join(msgs, "; ")
}
