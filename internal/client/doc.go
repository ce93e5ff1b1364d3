// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package client implements the HEFIN command-line client.
//
// A subcommand and its flags are parsed from the argument list, the server is
// called through [adapter.ServerAdapter] and the result is rendered to the
// configured writer.
package client
