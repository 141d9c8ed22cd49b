package ui

import (
	"os"

	survey "github.com/AlecAivazis/survey/v2"
	"github.com/moby/term"
)

// Confirm asks the operator a yes/no question, defaulting to no. When stdin
// is not a terminal (CI, pipes) nobody can answer, so the prompt is skipped
// and the answer is no; non-interactive callers pass an explicit flag instead.
func (l *Logger) Confirm(text string) (bool, error) {
	if !term.IsTerminal(os.Stdin.Fd()) {
		l.Warn("stdin is not a terminal, assuming no: %s", text)
		return false, nil
	}

	answer := false
	prompt := &survey.Confirm{
		Message: text,
		Default: false,
	}

	err := survey.AskOne(
		prompt,
		&answer,
		survey.WithStdio(os.Stdin, os.Stdout, os.Stderr),
	)
	if err != nil {
		return false, err
	}

	l.Debug("PROMPT: %s ANSWER: %v", text, answer)
	return answer, nil
}
