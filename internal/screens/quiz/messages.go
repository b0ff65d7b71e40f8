package quiz

import (
	"github.com/abhisek/quizup/internal/quizgen"
)

// setReadyMsg is sent when a question set has been generated.
type setReadyMsg struct {
	Questions []quizgen.Question
	Err       error
}
