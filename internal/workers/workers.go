// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package workers

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/robfig/cron/v3"

	"github.com/MKhiriev/go-pass-vault/internal/logger"
)

// ErrAlreadyStarted is returned by Start on a running scheduler.
var ErrAlreadyStarted = errors.New("workers already started")

// specParser accepts standard five-field expressions and descriptors such
// as "@every 30s". It matches the parser used by config validation.
var specParser = cron.NewParser(cron.Minute | cron.Hour | cron.Dom | cron.Month | cron.Dow | cron.Descriptor)

// Workers schedules a set of [Worker]s. A pass that is still running when
// its next tick fires is skipped.
type Workers struct {
	log  *logger.Logger
	cron *cron.Cron

	mu      sync.Mutex
	workers []Worker
	runCtx  context.Context
	cancel  context.CancelFunc
}

// NewWorkers creates an idle scheduler. Nothing runs until Start.
func NewWorkers(log *logger.Logger) *Workers {
	log = log.WithComponent("workers")
	cl := cronLogger{log: log}
	return &Workers{
		log: log,
		cron: cron.New(
			cron.WithParser(specParser),
			cron.WithLogger(cl),
			cron.WithChain(cron.Recover(cl)),
		),
	}
}

// Add registers worker under spec. Workers added after Start are scheduled
// immediately but run with the context given to Start.
func (w *Workers) Add(spec string, worker Worker) error {
	w.mu.Lock()
	defer w.mu.Unlock()

	var running sync.Mutex
	_, err := w.cron.AddFunc(spec, func() {
		if !running.TryLock() {
			w.log.Debug().Str("worker", worker.Name()).Msg("previous pass still running, skipping")
			return
		}
		defer running.Unlock()

		w.mu.Lock()
		ctx := w.runCtx
		w.mu.Unlock()
		if ctx == nil {
			return
		}
		worker.Run(ctx)
	})
	if err != nil {
		return fmt.Errorf("schedule %s with %q: %w", worker.Name(), spec, err)
	}

	w.workers = append(w.workers, worker)
	w.log.Info().Str("worker", worker.Name()).Str("spec", spec).Msg("worker scheduled")
	return nil
}

// Run performs one pass of every registered worker in registration order on
// the caller's goroutine.
func (w *Workers) Run(ctx context.Context) {
	w.mu.Lock()
	workers := append([]Worker(nil), w.workers...)
	w.mu.Unlock()

	for _, worker := range workers {
		if ctx.Err() != nil {
			return
		}
		worker.Run(ctx)
	}
}

// Start begins scheduling. Passes receive a context derived from ctx that
// is cancelled by Stop.
func (w *Workers) Start(ctx context.Context) error {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.cancel != nil {
		return ErrAlreadyStarted
	}

	w.runCtx, w.cancel = context.WithCancel(ctx)
	w.cron.Start()
	w.log.Info().Int("workers", len(w.workers)).Msg("workers started")
	return nil
}

// Stop cancels running passes and waits for them to return. It is safe to
// call on a scheduler that was never started.
func (w *Workers) Stop() {
	w.mu.Lock()
	cancel := w.cancel
	w.cancel = nil
	w.mu.Unlock()

	if cancel == nil {
		return
	}

	cancel()
	<-w.cron.Stop().Done()

	w.mu.Lock()
	w.runCtx = nil
	w.mu.Unlock()

	w.log.Info().Msg("workers stopped")
}

// cronLogger forwards cron's internal messages to zerolog.
type cronLogger struct {
	log *logger.Logger
}

func (l cronLogger) Info(msg string, keysAndValues ...any) {
	l.log.Debug().Fields(keysAndValues).Msg(msg)
}

func (l cronLogger) Error(err error, msg string, keysAndValues ...any) {
	l.log.Err(err).Fields(keysAndValues).Msg(msg)
}
