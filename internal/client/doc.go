// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package client implements the headless sync client runtime.
//
// It wires client services, the stored session and the background sync
// worker into a single process lifecycle.
package client
