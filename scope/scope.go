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

// Package scope turns a one-value generator into a setup/cleanup pair. The generator's single
// suspension point splits its body in two: everything before it is setup, run by Enter, and
// everything after it is cleanup, run by Exit. The value produced at the suspension point is the
// scoped resource.
//
// With wires the pair around a body function and guarantees cleanup runs however the body ends,
// whether normally, with an error, or by panicking:
//
//	worker := generator.New(&workerScope{pool: pool})
//	err := scope.With(worker, func(value interface{}) error {
//		return value.(*Worker).Run()
//	})
//
// When the body fails, its error is thrown into the generator at the suspension point. The cleanup
// may observe the failure, suppress it, or replace it with its own error.
package scope

import (
	"github.com/botobag/hypnos/generator"
)

// Scope is an entered setup/cleanup pair: the generator has run its setup and is suspended at the
// point that produced the scoped value. Exit must be called exactly once to run the cleanup.
type Scope struct {
	g *generator.Generator

	// The value produced by the setup.
	value interface{}

	exited bool
}

const (
	opEnter generator.Op = "scope.Enter"
	opExit  generator.Op = "scope.Exit"
)

// Enter resumes g once to run its setup, stopping at the suspension point that produces the scoped
// value. A generator that terminates without producing one cannot delimit a scope and is rejected
// as a usage error. A setup failure propagates as-is and no Scope is returned.
func Enter(g *generator.Generator) (*Scope, error) {
	out, err := g.Next()
	if err != nil {
		return nil, err
	}
	if out.Terminated() {
		return nil, generator.NewError(
			"setup terminated without producing a scoped value", opEnter,
			generator.ErrKindUsage, g.State())
	}
	return &Scope{g: g, value: out.Value()}, nil
}

// Value returns the value produced by the setup.
func (s *Scope) Value() interface{} {
	return s.value
}

// Exit resumes the generator past its suspension point to run the cleanup.
//
// With a nil cause the generator is resumed plainly and must terminate; a cleanup failure
// propagates through err.
//
// With a non-nil cause the cause is thrown into the generator at the suspension point, as if the
// failure happened there. The cleanup then decides the cause's fate, reported through suppressed:
// terminating normally suppresses the cause (suppressed is true and the caller moves on), letting
// the same cause propagate back declines to handle it (suppressed is false and err is nil; the
// caller re-raises the cause itself), and any different error replaces it (returned through err).
//
// A generator that produces a second value instead of stopping is rejected as a usage error, as is
// a second Exit on the same Scope.
func (s *Scope) Exit(cause error) (suppressed bool, err error) {
	if s.exited {
		return false, generator.NewError("scope exited twice", opExit, generator.ErrKindUsage)
	}
	s.exited = true

	var out generator.Outcome
	if cause == nil {
		out, err = s.g.Next()
		if err != nil {
			return false, err
		}
	} else {
		out, err = s.g.Throw(cause)
		if err != nil {
			if err == cause {
				// The cleanup declined to handle the cause; the caller re-raises it.
				return false, nil
			}
			return false, err
		}
	}

	if out.Produced() {
		return false, generator.NewError(
			"cleanup produced a second value instead of terminating", opExit,
			generator.ErrKindUsage, s.g.State())
	}
	return cause != nil, nil
}

// With runs body inside the scope delimited by g: it Enters, hands the scoped value to body, and
// Exits. The cleanup is guaranteed to run however body ends.
//
// A failing body has its error thrown into the generator through Exit; With returns nil when the
// cleanup suppressed it, the body's error when not, or the different error the cleanup raised. A
// panicking body has the generator closed before the panic resumes.
func With(g *generator.Generator, body func(value interface{}) error) error {
	s, err := Enter(g)
	if err != nil {
		return err
	}

	bodyErr := func() error {
		defer func() {
			if r := recover(); r != nil {
				// The panic bypasses Exit; close the generator so the cleanup still runs.
				_ = g.Close()
				panic(r)
			}
		}()
		return body(s.Value())
	}()

	suppressed, err := s.Exit(bodyErr)
	if err != nil {
		return err
	}
	if bodyErr != nil && !suppressed {
		return bodyErr
	}
	return nil
}
