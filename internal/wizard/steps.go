package wizard

import (
	"fmt"
	"regexp"
	"strings"
	"unicode/utf8"
)

// Greeting seeds every new conversation transcript.
const Greeting = "Hi there! I'm ChatBot. What's your username?"

// Field names a step writes its accepted answer under.
const (
	FieldUsername = "username"
	FieldFullName = "fullName"
	FieldEmail    = "email"
)

var emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// Step is one unit of the fixed question sequence: the question asked,
// the field the answer fills, a validity predicate over the answer, and
// the bot reply generated from an accepted answer.
type Step struct {
	Question string
	Field    string
	Validate func(answer string) bool
	Respond  func(answer string) string
}

// Steps returns the signup question sequence in its fixed order:
// username, full name, email.
func Steps() []Step {
	return []Step{
		{
			Question: "What's your username?",
			Field:    FieldUsername,
			Validate: func(answer string) bool {
				return utf8.RuneCountInString(answer) >= 3
			},
			Respond: func(answer string) string {
				return fmt.Sprintf("Nice to meet you, %s! What's your full name?", answer)
			},
		},
		{
			Question: "What's your full name?",
			Field:    FieldFullName,
			Validate: func(answer string) bool {
				return len(strings.Fields(answer)) >= 2
			},
			Respond: func(answer string) string {
				return fmt.Sprintf("Great, %s! Lastly, what's your email address?", strings.Fields(answer)[0])
			},
		},
		{
			Question: "What's your email address?",
			Field:    FieldEmail,
			Validate: emailPattern.MatchString,
			Respond: func(answer string) string {
				return fmt.Sprintf("Thanks for providing your email: %s. Saving your information...", answer)
			},
		},
	}
}
