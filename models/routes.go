// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// Route names a client screen that can be navigated to.
type Route string

// Routes known to the terminal client.
const (
	RouteAccounts Route = "accounts"
	RouteSend     Route = "send"
	RouteReceive  Route = "receive"
	RouteUnlock   Route = "unlock"
)

// String implements fmt.Stringer.
func (r Route) String() string {
	return string(r)
}
