package quizgen

// Question represents a single generated quiz question ready for display.
// Immutable once built by the validator.
type Question struct {
	// Text is the question prompt displayed to the learner.
	Text string

	// Options is the ordered list of choices shown to the learner.
	// Always at least 2 entries.
	Options []string

	// Kind describes how the question is answered and which field of
	// Key carries the correct answer.
	Kind Kind

	// Key is the canonical correct answer, shaped by Kind.
	Key AnswerKey
}

// Kind describes the answer shape of a question.
type Kind string

const (
	// KindSingleChoice expects exactly one option.
	KindSingleChoice Kind = "single_choice"

	// KindTrueFalse expects one of two options.
	KindTrueFalse Kind = "true_false"

	// KindMultipleChoice expects an unordered set of options.
	KindMultipleChoice Kind = "multiple_choice"

	// KindSequence expects options in a specific order.
	KindSequence Kind = "sequence"

	// KindMatching expects pairings given as an ordered list.
	KindMatching Kind = "matching"
)

// AnswerKey is the correct answer as a tagged union. Exactly one field is
// populated, resolved once at construction time from the record's kind so
// no shape inspection happens during evaluation.
type AnswerKey struct {
	// Single holds the answer for KindSingleChoice and KindTrueFalse.
	Single string

	// Set holds the answer for KindMultipleChoice. Order is irrelevant.
	Set []string

	// Sequence holds the answer for KindSequence and KindMatching.
	// Order is significant.
	Sequence []string
}

// Submission is the learner's answer in the same union shape as AnswerKey.
// Single-answer kinds read Value; set and sequence kinds read Values.
type Submission struct {
	Value  string
	Values []string
}

// SingleSubmission builds a Submission for single-answer kinds.
func SingleSubmission(value string) Submission {
	return Submission{Value: value}
}

// MultiSubmission builds a Submission for set and sequence kinds.
func MultiSubmission(values []string) Submission {
	return Submission{Values: values}
}

// IsOrdered reports whether the kind compares answers order-sensitively.
func (k Kind) IsOrdered() bool {
	return k == KindSequence || k == KindMatching
}

// IsScalar reports whether the kind expects a single answer value.
func (k Kind) IsScalar() bool {
	return k == KindSingleChoice || k == KindTrueFalse
}
