// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The passvault Authors

package client

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/mirovsky/passvault/internal/config"
	"github.com/mirovsky/passvault/internal/logger"
	"github.com/mirovsky/passvault/internal/service"
	"github.com/mirovsky/passvault/internal/session"
)

// App is the interactive shell of the passvault client. It stays resident
// between commands so the keyring keeps its cached keys until the session
// ends.
type App struct {
	services *service.ClientServices
	sessions *session.Manager
	cfg      config.ClientApp
	logger   *logger.Logger

	in  *bufio.Reader
	out io.Writer
}

func NewApp(services *service.ClientServices, sessions *session.Manager, cfg config.ClientApp, log *logger.Logger) (*App, error) {
	if services == nil {
		return nil, errors.New("client app: services are required")
	}
	if sessions == nil {
		return nil, errors.New("client app: session manager is required")
	}
	if log == nil {
		return nil, errors.New("client app: logger is required")
	}

	return &App{
		services: services,
		sessions: sessions,
		cfg:      cfg,
		logger:   log,
		in:       bufio.NewReader(os.Stdin),
		out:      os.Stdout,
	}, nil
}

// Run reads commands from standard input until EOF or an explicit quit.
// Every accepted command counts as user activity and slides the session
// idle deadline.
func (a *App) Run() error {
	ctx := context.Background()

	fmt.Fprintln(a.out, `passvault interactive shell. Type "help" for commands.`)

	for {
		fmt.Fprint(a.out, "passvault> ")

		line, err := a.in.ReadString('\n')
		if err != nil && len(strings.TrimSpace(line)) == 0 {
			if errors.Is(err, io.EOF) {
				fmt.Fprintln(a.out)
				return nil
			}
			return fmt.Errorf("read command: %w", err)
		}

		args := strings.Fields(line)
		if len(args) == 0 {
			continue
		}

		a.sessions.Touch()

		quit, cmdErr := a.dispatch(ctx, args[0], args[1:])
		if cmdErr != nil {
			a.logger.Err(cmdErr).
				Str("func", "App.Run").
				Str("command", args[0]).
				Msg("command failed")
			fmt.Fprintln(a.out, "error:", errorMessage(cmdErr))
		}
		if quit {
			return nil
		}
	}
}

func (a *App) dispatch(ctx context.Context, cmd string, args []string) (quit bool, err error) {
	switch cmd {
	case "help":
		a.printHelp()
	case "setup":
		err = a.cmdSetup(ctx, args)
	case "unlock":
		err = a.cmdUnlock(ctx, args)
	case "lock":
		a.services.SetupService.Lock()
		fmt.Fprintln(a.out, "locked")
	case "status":
		a.cmdStatus()
	case "create-vault":
		err = a.cmdCreateVault(ctx, args)
	case "add":
		err = a.cmdAdd(ctx, args)
	case "list":
		err = a.cmdList(ctx, args)
	case "show":
		err = a.cmdShow(ctx, args)
	case "copy":
		err = a.cmdCopy(ctx, args)
	case "rotate":
		err = a.cmdRotate(ctx, args)
	case "share":
		err = a.cmdShare(ctx, args)
	case "revoke":
		err = a.cmdRevoke(ctx, args)
	case "quit", "exit":
		a.services.SetupService.Lock()
		return true, nil
	default:
		fmt.Fprintf(a.out, "unknown command %q, type \"help\"\n", cmd)
	}
	return false, err
}

func (a *App) printHelp() {
	fmt.Fprint(a.out, `commands:
  setup <login>                   create an account and the personal vault
  unlock <login>                  unlock with the recovery phrase
  lock                            discard cached keys and end the session
  status                          show session state
  create-vault <name> [org-id]    create a vault (organization vault with org-id)
  add <vault-id> <name> <types>   add an item; types: login,note,totp
  list <vault-id>                 list items of a vault
  show <item-id>                  decrypt and print an item
  copy <item-id> <field>          copy a decrypted field to the clipboard
  rotate <item-id>                re-encrypt an item under a fresh item key
  share <vault-id> <member-id>    grant a member access to a vault
  revoke <vault-id> <member-id>   remove a member's access
  quit                            lock and exit
`)
}

func (a *App) cmdStatus() {
	if !a.sessions.Active() {
		fmt.Fprintln(a.out, "session: locked")
		return
	}
	fmt.Fprintf(a.out, "session: unlocked, locks in %s without activity\n",
		a.sessions.Remaining().Round(time.Second))
}
