/**
 * Copyright (c) 2019, The Hypnos Authors.
 *
 * Permission to use, copy, modify, and/or distribute this software for any
 * purpose with or without fee is hereby granted, provided that the above
 * copyright notice and this permission notice appear in all copies.
 *
 * THE SOFTWARE IS PROVIDED "AS IS" AND THE AUTHOR DISCLAIMS ALL WARRANTIES
 * WITH REGARD TO THIS SOFTWARE INCLUDING ALL IMPLIED WARRANTIES OF
 * MERCHANTABILITY AND FITNESS. IN NO EVENT SHALL THE AUTHOR BE LIABLE FOR
 * ANY SPECIAL, DIRECT, INDIRECT, OR CONSEQUENTIAL DAMAGES OR ANY DAMAGES
 * WHATSOEVER RESULTING FROM LOSS OF USE, DATA OR PROFITS, WHETHER IN AN
 * ACTION OF CONTRACT, NEGLIGENCE OR OTHER TORTIOUS ACTION, ARISING OUT OF
 * OR IN CONNECTION WITH THE USE OR PERFORMANCE OF THIS SOFTWARE.
 */

package generator

// State describes where a Generator is in its lifecycle.
type State uint8

// Enumeration of State
const (
	// The Generator was created but no resumption has run any of its body yet.
	StateNotStarted State = iota

	// The Generator is paused at a suspension point with its local state saved, waiting to be
	// resumed.
	StateSuspended

	// A resumption call is transiently active inside the Generator's body. Observable only from
	// within the body itself; used to reject reentrant resumption.
	StateRunning

	// The Generator finished normally. Terminal.
	StateCompleted

	// An error propagated out of the Generator's body and was not handled internally, or the
	// Generator violated the cancellation protocol. Terminal.
	StateFailed
)

func (s State) String() string {
	switch s {
	case StateNotStarted:
		return "not started"
	case StateSuspended:
		return "suspended"
	case StateRunning:
		return "running"
	case StateCompleted:
		return "completed"
	case StateFailed:
		return "failed"
	}
	return "unknown state"
}

// Terminated returns true for the terminal states StateCompleted and StateFailed. A terminated
// Generator keeps signalling termination on every subsequent resumption attempt.
func (s State) Terminated() bool {
	return s == StateCompleted || s == StateFailed
}
