package cli

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"golang.org/x/term"
)

var (
	ErrPasswordMismatch = errors.New("passwords do not match")
	ErrEmptyPassword    = errors.New("password must not be empty")
)

// readPassword is a test seam for term.ReadPassword.
var readPassword = term.ReadPassword

// GetPassword prints prompt to w and reads a password from the terminal
// without echo. A newline is printed after the read to keep the UI tidy.
func GetPassword(w io.Writer, prompt string) ([]byte, error) {
	if _, err := fmt.Fprint(w, prompt); err != nil {
		return nil, err
	}
	pw, err := readPassword(int(os.Stdin.Fd()))
	fmt.Fprintln(w)
	if err != nil {
		return nil, err
	}
	return pw, nil
}

// GetNewPassword asks for a password twice and fails when the two entries
// differ or are empty.
func GetNewPassword(w io.Writer) (string, error) {
	first, err := GetPassword(w, "Password: ")
	if err != nil {
		return "", err
	}
	second, err := GetPassword(w, "Repeat password: ")
	if err != nil {
		return "", err
	}

	if string(first) != string(second) {
		return "", ErrPasswordMismatch
	}
	if len(first) == 0 {
		return "", ErrEmptyPassword
	}
	return string(first), nil
}

// ReadPasswordLine reads a single line from r for scripted use. The
// trailing newline is trimmed; a final line without one is accepted.
func ReadPasswordLine(r io.Reader) (string, error) {
	line, err := bufio.NewReader(r).ReadString('\n')
	if err != nil && !(errors.Is(err, io.EOF) && len(line) > 0) {
		if errors.Is(err, io.EOF) {
			return "", ErrEmptyPassword
		}
		return "", err
	}

	pw := strings.TrimRight(line, "\r\n")
	if pw == "" {
		return "", ErrEmptyPassword
	}
	return pw, nil
}
