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
var readPassword = term.ReadPassword

// GetSimpleText prints a prompt to w and reads a single line of input from
// reader, trimming the trailing newline. A partial line at EOF is returned.
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

// GetMultiline reads lines until an empty one and joins them with '\n'.
func GetMultiline(reader *bufio.Reader, prompt string, w io.Writer) (string, error) {
	if _, err := fmt.Fprint(w, prompt+"\n(press Enter on an empty line to finish)\n"); err != nil {
		return "", err
	}

	var lines []string
	for {
		line, _ := reader.ReadString('\n')
		line = strings.TrimRight(line, "\r\n")
		if line == "" {
			break
		}
		lines = append(lines, line)
	}
	return strings.TrimSpace(strings.Join(lines, "\n")), nil
}

// GetPassphrase reads the encryption passphrase from the terminal without
// echo. The caller should wipe the returned slice when done.
func GetPassphrase(w io.Writer) ([]byte, error) {
	if _, err := fmt.Fprint(w, "Enter passphrase: "); err != nil {
		return nil, err
	}
	pw, err := readPassword(int(os.Stdin.Fd()))
	fmt.Fprintln(w)
	if err != nil {
		return nil, err
	}
	return pw, nil
}

// GetRating prompts for an integer rating until it parses and falls inside
// [1, 10], mirroring the bounds the entry form's sliders enforce.
func GetRating(reader *bufio.Reader, label string, w io.Writer) (int, error) {
	for {
		raw, err := GetSimpleText(reader, fmt.Sprintf("%s (1-10):", label), w)
		if err != nil {
			return 0, err
		}
		v, err := strconv.Atoi(raw)
		if err == nil && v >= 1 && v <= 10 {
			return v, nil
		}
		fmt.Fprintln(w, "Please enter a whole number from 1 to 10.")
	}
}

// GetOptionalFloat reads an optional numeric value; a blank line means the
// value was not supplied.
func GetOptionalFloat(reader *bufio.Reader, prompt string, w io.Writer) (*float64, error) {
	raw, err := GetSimpleText(reader, prompt, w)
	if err != nil {
		return nil, err
	}
	if raw == "" {
		return nil, nil
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return nil, fmt.Errorf("not a number: %q", raw)
	}
	return &v, nil
}
