// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The passvault Authors

package client

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"golang.org/x/term"

	"github.com/mirovsky/passvault/internal/crypto"
)

// readLine prompts and reads one line of input, trimmed of the trailing
// newline.
func (a *App) readLine(prompt string) (string, error) {
	fmt.Fprint(a.out, prompt)

	line, err := a.in.ReadString('\n')
	if err != nil && !errors.Is(err, io.EOF) {
		return "", fmt.Errorf("read input: %w", err)
	}
	return strings.TrimRight(line, "\r\n"), nil
}

// readSecret prompts and reads one line without echoing it when standard
// input is a terminal. Non-terminal input (pipes, tests) falls back to a
// plain line read.
func (a *App) readSecret(prompt string) (string, error) {
	fd := int(os.Stdin.Fd())
	if !term.IsTerminal(fd) {
		return a.readLine(prompt)
	}

	fmt.Fprint(a.out, prompt)
	raw, err := term.ReadPassword(fd)
	fmt.Fprintln(a.out)
	if err != nil {
		return "", fmt.Errorf("read secret: %w", err)
	}

	secret := string(raw)
	crypto.Zero(raw)
	return secret, nil
}
