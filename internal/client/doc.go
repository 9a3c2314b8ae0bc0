// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package client implements the command-line client of the auth service.
//
// One process runs one command (register, login, protected, version or
// build) against the server through an adapter.ServerAdapter.
package client
