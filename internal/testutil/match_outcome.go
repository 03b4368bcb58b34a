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

package testutil

import (
	"fmt"
	"reflect"

	"github.com/botobag/hypnos/generator"

	"github.com/onsi/gomega/format"
	"github.com/onsi/gomega/types"
)

// outcomeVariant is what a matchOutcomeMatcher expects the Outcome to be.
type outcomeVariant uint8

const (
	produced outcomeVariant = iota
	terminated
	terminatedWith
)

type matchOutcomeMatcher struct {
	variant outcomeVariant
	// Expected produced value (for produced) or final result (for terminatedWith).
	value interface{}
}

// MatchProduced matches a generator.Outcome that carries the produced value.
func MatchProduced(value interface{}) types.GomegaMatcher {
	return &matchOutcomeMatcher{variant: produced, value: value}
}

// MatchTerminated matches a generator.Outcome that signals termination with no final result.
func MatchTerminated() types.GomegaMatcher {
	return &matchOutcomeMatcher{variant: terminated}
}

// MatchTerminatedWith matches a generator.Outcome that signals termination carrying the final
// result.
func MatchTerminatedWith(final interface{}) types.GomegaMatcher {
	return &matchOutcomeMatcher{variant: terminatedWith, value: final}
}

// Match implements types.GomegaMatcher.
func (matcher *matchOutcomeMatcher) Match(actual interface{}) (success bool, err error) {
	out, ok := actual.(generator.Outcome)
	if !ok {
		return false, fmt.Errorf("matcher expects a generator.Outcome but got %T", actual)
	}

	switch matcher.variant {
	case produced:
		return out.Produced() && reflect.DeepEqual(out.Value(), matcher.value), nil

	case terminated:
		if !out.Terminated() {
			return false, nil
		}
		_, hasFinal := out.Final()
		return !hasFinal, nil

	default: // terminatedWith
		if !out.Terminated() {
			return false, nil
		}
		final, hasFinal := out.Final()
		return hasFinal && reflect.DeepEqual(final, matcher.value), nil
	}
}

func (matcher *matchOutcomeMatcher) expected() string {
	switch matcher.variant {
	case produced:
		return fmt.Sprintf("to produce %s", format.Object(matcher.value, 0))
	case terminated:
		return "to terminate without a final result"
	default:
		return fmt.Sprintf("to terminate with final result %s", format.Object(matcher.value, 0))
	}
}

// FailureMessage implements types.GomegaMatcher.
func (matcher *matchOutcomeMatcher) FailureMessage(actual interface{}) (message string) {
	return format.Message(actual, matcher.expected())
}

// NegatedFailureMessage implements types.GomegaMatcher.
func (matcher *matchOutcomeMatcher) NegatedFailureMessage(actual interface{}) (message string) {
	return format.Message(actual, "not "+matcher.expected())
}
