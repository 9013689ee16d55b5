package cli

import (
	"bufio"
	"fmt"
	"io"
	"strings"
)

// Confirm prompts for a yes/no answer and returns true only on an
// explicit yes. Destructive commands call this before proceeding.
func Confirm(in io.Reader, out io.Writer, prompt string) bool {
	fmt.Fprintf(out, "%s [y/N]: ", prompt)

	reader := bufio.NewReader(in)
	line, err := reader.ReadString('\n')
	if err != nil {
		return false
	}
	answer := strings.ToLower(strings.TrimSpace(line))
	return answer == "y" || answer == "yes"
}

// ConfirmPhrase requires the user to type an exact phrase, used for the
// wipe-all-data command.
func ConfirmPhrase(in io.Reader, out io.Writer, prompt, phrase string) bool {
	fmt.Fprintf(out, "%s\nType %q to continue: ", prompt, phrase)

	reader := bufio.NewReader(in)
	line, err := reader.ReadString('\n')
	if err != nil {
		return false
	}
	return strings.TrimSpace(line) == phrase
}
