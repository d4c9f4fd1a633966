// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package client is the composition root of the vault engine.
//
// It selects the platform adapter named by the configuration, wires the
// remote adapters and services on top of it, schedules the background
// workers, and drives a minimal console login so the engine can be exercised
// end to end.
package client
