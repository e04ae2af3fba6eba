// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package session holds the process-wide registry of open wallet sessions.
//
// The [Registry] maps a user identifier to at most one [Handle]. All of its
// methods are plain map operations under one sync.RWMutex; callers do
// storage, cryptography and network work before or after, never while the
// lock is held. In particular Remove does not close the wallet: the caller
// closes the removed handle once it is no longer reachable.
//
// Create, Open, Restore and Destroy claim the identifier first with
// [Registry.Reserve], an atomic insert-if-absent of a pending slot, and then
// either Commit a handle or Release the slot. A pending slot is invisible
// to Exists and Get.
package session
