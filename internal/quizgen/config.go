package quizgen

// LevelSpec describes the generation contract for one difficulty level.
type LevelSpec struct {
	// MinQuestions is the minimum set size requested from the provider.
	// Not enforced after validation; a shorter set still plays.
	MinQuestions int

	// TypeMix is the question-type vocabulary offered to the provider
	// for this level, in prompt wording.
	TypeMix []string
}

// Config controls the behavior of the LLM set generator.
type Config struct {
	// Levels maps each difficulty level to its generation contract.
	Levels map[int]LevelSpec

	// MaxTokens is the token budget for the LLM response.
	MaxTokens int

	// Temperature controls LLM output randomness (0.0-1.0).
	Temperature float64
}

// DefaultConfig returns the standard per-level generation policy.
func DefaultConfig() Config {
	return Config{
		Levels: map[int]LevelSpec{
			1: {
				MinQuestions: 8,
				TypeMix:      []string{"MCQ (Single Correct)", "True/False"},
			},
			2: {
				MinQuestions: 8,
				TypeMix:      []string{"MCQ (Single Correct)", "MCQ (Multiple Correct)", "Matching"},
			},
			3: {
				MinQuestions: 6,
				TypeMix:      []string{"Passage-Based", "Multiple Response", "Matching (Complex)", "Sequence Ordering"},
			},
		},
		MaxTokens:   4096,
		Temperature: 0.7,
	}
}

// Spec returns the level's generation contract, clamping unknown levels
// to the nearest configured one.
func (c Config) Spec(level int) LevelSpec {
	if s, ok := c.Levels[level]; ok {
		return s
	}
	if level < 1 {
		return c.Levels[1]
	}
	max := 0
	for l := range c.Levels {
		if l > max {
			max = l
		}
	}
	return c.Levels[max]
}
