package quizgen

import "strings"

// CheckAnswer compares a submission against the question's answer key.
//
// Comparison rules by kind:
//   - SingleChoice / TrueFalse: exact value equality (whitespace-trimmed).
//   - MultipleChoice: set equality; submission order and duplicates are ignored.
//   - Sequence / Matching: exact ordered equality.
//
// A submission whose shape does not match the kind (values where a scalar is
// expected, or vice versa) is simply incorrect, never an error.
func CheckAnswer(q *Question, sub Submission) bool {
	switch {
	case q.Kind.IsScalar():
		if sub.Values != nil {
			return false
		}
		return canon(sub.Value) == canon(q.Key.Single)

	case q.Kind == KindMultipleChoice:
		if sub.Values == nil {
			return false
		}
		return setEqual(sub.Values, q.Key.Set)

	default: // sequence, matching
		if sub.Values == nil {
			return false
		}
		return sequenceEqual(sub.Values, q.Key.Sequence)
	}
}

// setEqual compares two option lists as sets, deduplicating the submission.
func setEqual(submitted, expected []string) bool {
	want := make(map[string]bool, len(expected))
	for _, v := range expected {
		want[canon(v)] = true
	}
	got := make(map[string]bool, len(submitted))
	for _, v := range submitted {
		got[canon(v)] = true
	}
	if len(got) != len(want) {
		return false
	}
	for v := range got {
		if !want[v] {
			return false
		}
	}
	return true
}

func sequenceEqual(submitted, expected []string) bool {
	if len(submitted) != len(expected) {
		return false
	}
	for i := range submitted {
		if canon(submitted[i]) != canon(expected[i]) {
			return false
		}
	}
	return true
}

func canon(s string) string {
	return strings.TrimSpace(s)
}
