package main

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"
)

///////////////////////////////////////////////////////////////////////////////
// PRIVATE METHODS

// readPrompt writes a prompt marker to w and reads one line from r, without
// the line ending. An empty line is an empty prompt.
func readPrompt(r io.Reader, w io.Writer) (string, error) {
	if _, err := fmt.Fprint(w, "Prompt: "); err != nil {
		return "", err
	}
	line, err := bufio.NewReader(r).ReadString('\n')
	if err != nil && !errors.Is(err, io.EOF) {
		return "", err
	}
	return strings.TrimRight(line, "\r\n"), nil
}
