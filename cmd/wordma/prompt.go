package main

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"
)

// confirm asks a y/N question on stdout and reads the answer from stdin.
// Anything but "y" or "yes" is a no. When yes is set the question is skipped.
func confirm(deps *Dependencies, question string, yes bool) (bool, error) {
	if yes {
		return true, nil
	}
	if deps.Stdin == nil {
		return false, nil
	}

	fmt.Fprintf(deps.Stdout, "%s (y/N): ", question)
	answer, err := bufio.NewReader(deps.Stdin).ReadString('\n')
	if err != nil && !errors.Is(err, io.EOF) {
		return false, fmt.Errorf("failed to read answer: %w", err)
	}

	switch strings.ToLower(strings.TrimSpace(answer)) {
	case "y", "yes":
		return true, nil
	}
	return false, nil
}
