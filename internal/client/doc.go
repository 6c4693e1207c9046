// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The passvault Authors

// Package client implements the interactive client application runtime.
//
// It wires the client services, the keyring session, and the background
// workers into a single long-running shell process. The process must stay
// resident between commands: cached keys live only in its memory, and the
// session watchdog discards them once the idle deadline passes.
package client
