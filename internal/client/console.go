package client

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"golang.org/x/term"
)

// ErrEmptyInput is returned when the input stream ends before a line is read.
var ErrEmptyInput = errors.New("no input")

type terminalConsole struct {
	io.Writer
	in  *bufio.Reader
	fd  int
	tty bool
}

// NewTerminalConsole creates a [Console] reading from in and writing to out.
// Secrets are read without echo when in is a terminal.
func NewTerminalConsole(in io.Reader, out io.Writer) Console {
	c := &terminalConsole{Writer: out, in: bufio.NewReader(in)}
	if f, ok := in.(*os.File); ok && term.IsTerminal(int(f.Fd())) {
		c.fd, c.tty = int(f.Fd()), true
	}
	return c
}

func (c *terminalConsole) ReadLine(prompt string) (string, error) {
	fmt.Fprint(c, prompt)

	line, err := c.in.ReadString('\n')
	if err != nil && !(errors.Is(err, io.EOF) && line != "") {
		if errors.Is(err, io.EOF) {
			return "", ErrEmptyInput
		}
		return "", fmt.Errorf("read input: %w", err)
	}
	return strings.TrimRight(line, "\r\n"), nil
}

func (c *terminalConsole) ReadSecret(prompt string) (string, error) {
	if !c.tty {
		return c.ReadLine(prompt)
	}

	fmt.Fprint(c, prompt)
	secret, err := term.ReadPassword(c.fd)
	fmt.Fprintln(c)
	if err != nil {
		return "", fmt.Errorf("read secret: %w", err)
	}
	return string(secret), nil
}
