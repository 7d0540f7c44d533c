package service

import (
	"fmt"
	"regexp"
	"strings"
	"unicode"
)

// whitespaceRun matches runs of whitespace for grammar normalization
var whitespaceRun = regexp.MustCompile(`\s+`)

// TutorService is the placeholder AI tutor. Replies are canned; a real model
// integration would slot in behind the same methods.
type TutorService struct{}

// NewTutorService creates a new TutorService
func NewTutorService() *TutorService {
	return &TutorService{}
}

// GrammarSuggestion pairs an original text with its correction
type GrammarSuggestion struct {
	Original  string `json:"original"`
	Corrected string `json:"corrected"`
}

// Chat returns the placeholder tutor reply for a message
func (s *TutorService) Chat(message string) string {
	return fmt.Sprintf("AI Tutor: I hear you say %q. Great attempt! Try to expand: %q",
		message, message+" ... and then I...")
}

// CorrectGrammar applies the naive placeholder correction: collapse
// whitespace runs, trim, and capitalize the first letter.
func (s *TutorService) CorrectGrammar(text string) (string, []GrammarSuggestion) {
	corrected := strings.TrimSpace(whitespaceRun.ReplaceAllString(text, " "))
	if corrected != "" {
		runes := []rune(corrected)
		runes[0] = unicode.ToUpper(runes[0])
		corrected = string(runes)
	}

	return corrected, []GrammarSuggestion{{Original: text, Corrected: corrected}}
}
