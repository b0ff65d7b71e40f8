package quizgen

import (
	"encoding/json"
	"strings"
)

// RawRecord is one provider record as parsed from the response text,
// before any validation. Answer stays raw because the provider returns
// either a scalar or a list depending on the question type.
type RawRecord struct {
	Question string          `json:"question"`
	Options  []string        `json:"options"`
	Answer   json.RawMessage `json:"answer"`
	Type     string          `json:"type"`
}

// ValidateRecords filters raw provider records down to usable Questions.
// A record is accepted iff all four keys are present and non-empty, it has
// at least 2 options, and its answer is a string or a list of strings.
// Rejected records are dropped silently; accepted records keep their
// relative input order. Pure function of its input.
func ValidateRecords(raw []RawRecord) []Question {
	out := make([]Question, 0, len(raw))
	for _, r := range raw {
		if q, ok := buildQuestion(r); ok {
			out = append(out, q)
		}
	}
	return out
}

func buildQuestion(r RawRecord) (Question, bool) {
	if strings.TrimSpace(r.Question) == "" || strings.TrimSpace(r.Type) == "" {
		return Question{}, false
	}
	if len(r.Options) < 2 {
		return Question{}, false
	}
	if len(r.Answer) == 0 {
		return Question{}, false
	}

	kind := resolveKind(r.Type)

	single, values, ok := decodeAnswer(r.Answer)
	if !ok {
		return Question{}, false
	}

	q := Question{
		Text:    r.Question,
		Options: append([]string(nil), r.Options...),
		Kind:    kind,
	}

	switch {
	case kind.IsScalar():
		// Accept a single-element list as a scalar answer; some models
		// wrap every answer in an array regardless of type.
		if values != nil {
			if len(values) != 1 {
				return Question{}, false
			}
			single = values[0]
		}
		q.Key = AnswerKey{Single: single}
	case kind == KindMultipleChoice:
		if values == nil {
			values = []string{single}
		}
		q.Key = AnswerKey{Set: values}
	default: // sequence, matching
		if values == nil {
			return Question{}, false
		}
		q.Key = AnswerKey{Sequence: values}
	}

	return q, true
}

// decodeAnswer parses a raw answer value as either a string or a list of
// strings. Any other JSON shape (object, number, mixed list) is rejected.
func decodeAnswer(raw json.RawMessage) (single string, values []string, ok bool) {
	var s string
	if err := json.Unmarshal(raw, &s); err == nil {
		return s, nil, true
	}
	var list []string
	if err := json.Unmarshal(raw, &list); err == nil {
		if len(list) == 0 {
			return "", nil, false
		}
		return "", list, true
	}
	return "", nil, false
}

// resolveKind maps the provider's free-form type label onto a Kind.
// Labels follow the generation prompt's vocabulary ("MCQ (Single Correct)",
// "Multiple Response", "Sequence Ordering", ...) but matching is fuzzy so
// minor wording drift from the model does not drop otherwise valid records.
func resolveKind(label string) Kind {
	l := strings.ToLower(label)
	switch {
	case strings.Contains(l, "true") && strings.Contains(l, "false"):
		return KindTrueFalse
	case strings.Contains(l, "sequence") || strings.Contains(l, "order"):
		return KindSequence
	case strings.Contains(l, "match"):
		return KindMatching
	case strings.Contains(l, "multiple correct"),
		strings.Contains(l, "multiple response"),
		strings.Contains(l, "multi-select"),
		strings.Contains(l, "multiple answer"):
		return KindMultipleChoice
	default:
		return KindSingleChoice
	}
}
