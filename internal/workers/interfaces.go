// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package workers runs the client's background jobs on cron schedules.
// Every job calls the same public service operations an interactive caller
// would; the package owns no vault state of its own.
package workers

import "context"

// Worker is a background job. Run performs a single pass and must return
// once ctx is cancelled.
//
// Example implementation:
//
//	type MyWorker struct{}
//
//	func (w *MyWorker) Name() string { return "my-worker" }
//
//	func (w *MyWorker) Run(ctx context.Context) {
//	    // one pass of background processing
//	}
type Worker interface {
	Name() string
	Run(ctx context.Context)
}

// UserIDSource reports the currently logged-in user, or "".
type UserIDSource interface {
	UserID() string
}
