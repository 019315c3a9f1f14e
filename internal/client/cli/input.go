package cli

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"golang.org/x/term"
)

// readPassword is a test seam for term.ReadPassword.
// In tests you can replace it with a stub to avoid touching the terminal.
var readPassword = term.ReadPassword

// GetSimpleText prints a prompt to w and reads a single line of input from
// reader. The trailing newline is trimmed. If EOF occurs after some input
// was read, the partial line is returned.
func GetSimpleText(reader *bufio.Reader, prompt string, w io.Writer) (string, error) {
	if _, err := fmt.Fprint(w, prompt+"\n> "); err != nil {
		return "", err
	}
	line, err := reader.ReadString('\n')
	if err != nil {
		if errors.Is(err, io.EOF) && len(line) > 0 {
			return strings.TrimSpace(line), nil
		}
		return "", err
	}
	return strings.TrimSpace(line), nil
}

// GetPassword prints a password prompt to w and reads a password from the
// user's terminal without echo. A newline is printed after the read to keep
// the UI tidy.
//
// The returned byte slice should be wiped by the caller when no longer needed.
func GetPassword(w io.Writer) ([]byte, error) {
	if _, err := fmt.Fprint(w, "Enter password: "); err != nil {
		return nil, err
	}
	pw, err := readPassword(int(os.Stdin.Fd()))
	fmt.Fprintln(w)
	if err != nil {
		return nil, err
	}
	return pw, nil
}

// GetInt prompts for a whole number. An empty line returns def.
func GetInt(reader *bufio.Reader, prompt string, def int, w io.Writer) (int, error) {
	text, err := GetSimpleText(reader, fmt.Sprintf("%s [%d]", prompt, def), w)
	if err != nil {
		return 0, err
	}
	if text == "" {
		return def, nil
	}
	return strconv.Atoi(text)
}

// GetFloat prompts for a decimal number. An empty line returns def.
func GetFloat(reader *bufio.Reader, prompt string, def float64, w io.Writer) (float64, error) {
	text, err := GetSimpleText(reader, fmt.Sprintf("%s [%g]", prompt, def), w)
	if err != nil {
		return 0, err
	}
	if text == "" {
		return def, nil
	}
	return strconv.ParseFloat(text, 64)
}
