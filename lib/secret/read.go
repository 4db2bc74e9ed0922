// Copyright 2026 The Roomctl Authors
// SPDX-License-Identifier: Apache-2.0

package secret

import (
	"bufio"
	"bytes"
	"fmt"
	"io"
	"os"

	"golang.org/x/term"
)

// ReadFromPath reads a token from a file path, or from stdin if path is
// "-". The returned buffer is mmap-backed and must be closed by the
// caller. Leading/trailing whitespace is trimmed before storing.
// Returns an error if the source is empty after trimming.
func ReadFromPath(path string) (*Buffer, error) {
	var data []byte

	if path == "-" {
		scanner := bufio.NewScanner(os.Stdin)
		if !scanner.Scan() {
			if err := scanner.Err(); err != nil {
				return nil, fmt.Errorf("reading stdin: %w", err)
			}
			return nil, fmt.Errorf("stdin is empty")
		}
		data = scanner.Bytes()
	} else {
		var err error
		data, err = os.ReadFile(path)
		if err != nil {
			return nil, err
		}
	}

	return fromTrimmed(data)
}

// Prompt writes label to output and reads a token from input without
// echo when input is a terminal. When input is not a terminal (piped
// stdin, tests), it falls back to a plain line read and prints nothing.
// The returned buffer is mmap-backed and must be closed by the caller.
func Prompt(label string, input *os.File, output io.Writer) (*Buffer, error) {
	if term.IsTerminal(int(input.Fd())) {
		fmt.Fprintf(output, "%s: ", label)
		line, err := term.ReadPassword(int(input.Fd()))
		fmt.Fprintln(output)
		if err != nil {
			return nil, fmt.Errorf("reading token from terminal: %w", err)
		}
		return fromTrimmed(line)
	}

	scanner := bufio.NewScanner(input)
	if !scanner.Scan() {
		if err := scanner.Err(); err != nil {
			return nil, fmt.Errorf("reading token: %w", err)
		}
		return nil, fmt.Errorf("no token provided")
	}
	return fromTrimmed(scanner.Bytes())
}

// fromTrimmed moves data into protected memory after trimming
// surrounding whitespace, then zeros every byte of the original.
func fromTrimmed(data []byte) (*Buffer, error) {
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) == 0 {
		Zero(data)
		return nil, fmt.Errorf("token is empty")
	}

	// NewFromBytes zeros trimmed; the surrounding whitespace bytes are
	// zeroed separately.
	buffer, err := NewFromBytes(trimmed)
	Zero(data)
	if err != nil {
		return nil, err
	}
	return buffer, nil
}
