// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package client implements the interactive client application runtime.
//
// It checks that the TIN server answers, runs the terminal UI against it and
// releases the server connection on exit.
package client
