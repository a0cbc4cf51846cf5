package quiz

import (
	"encoding/json"
	"fmt"
	"math"
	"slices"
	"strconv"
	"strings"
)

// ParseAnswerForm converts loosely typed form values into Answers.
//
// Keys are question ids, either bare ("7") or in form-field style ("q7").
// Values may be JSON numbers, Go integers, json.Number or numeric strings,
// matching what MCP clients and HTML forms send. Range and completeness
// are not checked here; the scoring engine owns those rules.
func ParseAnswerForm(raw map[string]any) (Answers, error) {
	keys := make([]string, 0, len(raw))
	for k := range raw {
		keys = append(keys, k)
	}
	slices.Sort(keys)

	answers := make(Answers, len(raw))
	for _, k := range keys {
		id, err := parseQuestionID(k)
		if err != nil {
			return nil, err
		}
		if _, dup := answers[id]; dup {
			return nil, fmt.Errorf("%w: question %d answered twice", ErrInvalidInput, id)
		}
		v, ok := toInt(raw[k])
		if !ok {
			return nil, &InvalidInputError{QuestionID: id, Reason: ReasonNotInteger}
		}
		answers[id] = v
	}
	return answers, nil
}

func parseQuestionID(key string) (int, error) {
	s := strings.TrimSpace(key)
	s = strings.TrimPrefix(strings.TrimPrefix(s, "q"), "Q")
	id, err := strconv.Atoi(s)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("%w: answer key %q is not a question id", ErrInvalidInput, key)
	}
	return id, nil
}

func toInt(v any) (int, bool) {
	switch n := v.(type) {
	case int:
		return n, true
	case int64:
		return int(n), true
	case float64:
		return integral(n)
	case json.Number:
		if i, err := n.Int64(); err == nil {
			return int(i), true
		}
		f, err := n.Float64()
		if err != nil {
			return 0, false
		}
		return integral(f)
	case string:
		i, err := strconv.Atoi(strings.TrimSpace(n))
		if err != nil {
			return 0, false
		}
		return i, true
	default:
		return 0, false
	}
}

// integral accepts floats with no fractional part, such as 4.0 or 4e0.
func integral(f float64) (int, bool) {
	if f != math.Trunc(f) || math.IsInf(f, 0) || math.IsNaN(f) {
		return 0, false
	}
	return int(f), true
}
