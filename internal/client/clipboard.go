// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The passvault Authors

package client

import (
	"fmt"
	"time"

	"github.com/atotto/clipboard"
)

// copyToClipboard places value on the system clipboard and schedules an
// overwrite after the configured delay. The clear only fires if the
// clipboard still holds the copied value, so a later copy from another
// application is left alone.
func (a *App) copyToClipboard(value string) error {
	if err := clipboard.WriteAll(value); err != nil {
		return fmt.Errorf("copy to clipboard: %w", err)
	}

	if a.cfg.ClipboardClear <= 0 {
		fmt.Fprintln(a.out, "copied")
		return nil
	}

	go func(copied string, after time.Duration) {
		time.Sleep(after)

		current, err := clipboard.ReadAll()
		if err != nil || current != copied {
			return
		}
		if err := clipboard.WriteAll(""); err != nil {
			a.logger.Err(err).
				Str("func", "App.copyToClipboard").
				Msg("clipboard clear failed")
		}
	}(value, a.cfg.ClipboardClear)

	fmt.Fprintf(a.out, "copied, clipboard clears in %s\n", a.cfg.ClipboardClear)
	return nil
}
