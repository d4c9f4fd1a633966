// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package client

import (
	"context"
	"io"
)

// Client defines the minimal lifecycle contract for runnable client
// applications.
type Client interface {
	// Run starts the client application and blocks until ctx is done.
	Run(ctx context.Context) error
}

// Console is the user-facing side of the client. Output is written through
// the embedded io.Writer.
type Console interface {
	io.Writer

	// ReadLine prints prompt and returns the next input line without its
	// line terminator.
	ReadLine(prompt string) (string, error)

	// ReadSecret is ReadLine without echoing the input where the terminal
	// allows it.
	ReadSecret(prompt string) (string, error)
}
