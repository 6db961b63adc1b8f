package cli

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"golang.org/x/term"
)

// readPassword is a test seam for term.ReadPassword.
var readPassword = term.ReadPassword

// GetSimpleText prints a prompt and reads one trimmed line.
func GetSimpleText(reader *bufio.Reader, prompt string) (string, error) {
	fmt.Println(prompt)
	text, err := reader.ReadString('\n')
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(text), nil
}

// GetPassword reads a password without echoing it to the terminal.
func GetPassword() ([]byte, error) {
	fmt.Print("-Enter password: ")
	password, err := readPassword(int(os.Stdin.Fd()))
	fmt.Println()
	return password, err
}
