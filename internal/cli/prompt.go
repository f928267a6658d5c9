package cli

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/AlecAivazis/survey/v2"
	"github.com/AlecAivazis/survey/v2/terminal"
)

// isInteractive checks if we're in an interactive terminal
func isInteractive() bool {
	fileInfo, err := os.Stdin.Stat()
	if err != nil {
		return false
	}
	return (fileInfo.Mode() & os.ModeCharDevice) != 0
}

// SurveyConfirmer asks yes/no questions on the terminal. When stdin is not
// a terminal it falls back to reading a line, so piped input still works.
type SurveyConfirmer struct{}

// NewSurveyConfirmer creates a SurveyConfirmer
func NewSurveyConfirmer() *SurveyConfirmer {
	return &SurveyConfirmer{}
}

// Confirm prompts with message and reports the user's answer. Interrupting
// the prompt counts as a decline, not an error.
func (c *SurveyConfirmer) Confirm(message string) (bool, error) {
	if !isInteractive() {
		return confirmFromReader(message, os.Stdin, os.Stdout)
	}

	var confirmed bool
	prompt := &survey.Confirm{
		Message: message,
		Default: false,
	}
	if err := survey.AskOne(prompt, &confirmed); err != nil {
		if errors.Is(err, terminal.InterruptErr) {
			return false, nil
		}
		return false, err
	}
	return confirmed, nil
}

// confirmFromReader reads a y/yes answer from r, anything else declines
func confirmFromReader(message string, r io.Reader, w io.Writer) (bool, error) {
	if _, err := fmt.Fprintf(w, "%s (y/N): ", message); err != nil {
		return false, err
	}

	line, err := bufio.NewReader(r).ReadString('\n')
	if err != nil && !errors.Is(err, io.EOF) {
		return false, err
	}

	answer := strings.ToLower(strings.TrimSpace(line))
	return answer == "y" || answer == "yes", nil
}
