// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package session provides the in-memory server-side session store.

A session is created at login and resolved on every authenticated
request:

	mgr := session.NewManager(12 * time.Hour)
	token, _ := mgr.Create("bob", "user")
	s, ok := mgr.Get(token)
	mgr.Destroy(token)

Sessions expire after the configured idle TTL; expiry happens lazily on
lookup, so there is no background goroutine. The store is memory only -
restarting the server logs everyone out, which is fine for a
single-organization deployment.
*/
package session
