// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package client implements the wallet client runtime.
//
// It ties the terminal UI, the account services and the session idle job
// into a single process lifecycle and releases the session store on exit,
// which wipes everything the session wrote.
package client
