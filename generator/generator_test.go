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

package generator_test

import (
	"errors"

	"github.com/botobag/hypnos/generator"
	"github.com/botobag/hypnos/internal/testutil"
	"github.com/botobag/hypnos/iterator"

	. "github.com/onsi/ginkgo"
	. "github.com/onsi/gomega"
)

// accumulator is a value-accumulating semicoroutine: it keeps a running total of the ints injected
// with Send, producing the updated total after each resumption.
type accumulator struct {
	total int
}

// Step implements generator.Stepper.
func (a *accumulator) Step(r generator.Resumption) (generator.Outcome, error) {
	if err := r.Err(); err != nil {
		return generator.Outcome{}, err
	}
	if r.Canceling() {
		return generator.Terminate(), nil
	}
	if input, ok := r.Input().(int); ok {
		a.total += input
	}
	return generator.Produce(a.total), nil
}

// resultStepper produces 0 once and then completes with the final result "done".
type resultStepper struct {
	produced bool
}

// Step implements generator.Stepper.
func (s *resultStepper) Step(r generator.Resumption) (generator.Outcome, error) {
	if err := r.Err(); err != nil {
		return generator.Outcome{}, err
	}
	if r.Canceling() {
		return generator.Terminate(), nil
	}
	if !s.produced {
		s.produced = true
		return generator.Produce(0), nil
	}
	return generator.TerminateWith("done"), nil
}

var _ = Describe("Generator", func() {
	Describe("starting", func() {
		It("runs no body code before the first resumption", func() {
			c := &counter{limit: 2}
			g := generator.New(c)
			Expect(c.started).Should(BeFalse())
			Expect(g.State()).Should(Equal(generator.StateNotStarted))
		})

		It("panics when created without a Stepper", func() {
			Expect(func() {
				generator.New(nil)
			}).Should(Panic())
		})
	})

	Describe("producing", func() {
		It("produces values until the computation terminates", func() {
			g := newCounter(2)

			mustProduce(g, 0)
			Expect(g.State()).Should(Equal(generator.StateSuspended))
			mustProduce(g, 1)

			out, err := g.Next()
			Expect(err).ShouldNot(HaveOccurred())
			Expect(out).Should(testutil.MatchTerminated())
			Expect(g.State()).Should(Equal(generator.StateCompleted))
		})

		It("keeps signalling termination after it terminated once", func() {
			g := newCounter(1)
			mustProduce(g, 0)

			for i := 0; i < 3; i++ {
				out, err := g.Next()
				Expect(err).ShouldNot(HaveOccurred())
				Expect(out).Should(testutil.MatchTerminated())
			}

			out, err := g.Send("ignored")
			Expect(err).ShouldNot(HaveOccurred())
			Expect(out).Should(testutil.MatchTerminated())
		})

		It("substitutes the caller-supplied default once terminated", func() {
			g := newCounter(2)

			mustProduce(g, 0)
			mustProduce(g, 1)

			out, err := g.Next()
			Expect(err).ShouldNot(HaveOccurred())
			Expect(out).Should(testutil.MatchTerminated())

			value, err := g.NextOr(99)
			Expect(err).ShouldNot(HaveOccurred())
			Expect(value).Should(Equal(99))
		})

		It("returns produced values through NextOr while the computation lasts", func() {
			g := newCounter(1)

			value, err := g.NextOr(99)
			Expect(err).ShouldNot(HaveOccurred())
			Expect(value).Should(Equal(0))

			value, err = g.NextOr(99)
			Expect(err).ShouldNot(HaveOccurred())
			Expect(value).Should(Equal(99))
		})
	})

	Describe("completing with a final result", func() {
		It("delivers the result to exactly the observing call", func() {
			g := generator.New(&resultStepper{})

			mustProduce(g, 0)

			out, err := g.Next()
			Expect(err).ShouldNot(HaveOccurred())
			Expect(out).Should(testutil.MatchTerminatedWith("done"))

			// The redundant resumption terminates with no result.
			out, err = g.Next()
			Expect(err).ShouldNot(HaveOccurred())
			Expect(out).Should(testutil.MatchTerminated())
		})
	})

	Describe("sending", func() {
		It("injects the input as the result of the suspension expression", func() {
			g := generator.New(&accumulator{})

			mustProduce(g, 0)

			out, err := g.Send(10)
			Expect(err).ShouldNot(HaveOccurred())
			Expect(out).Should(testutil.MatchProduced(10))

			out, err = g.Send(5)
			Expect(err).ShouldNot(HaveOccurred())
			Expect(out).Should(testutil.MatchProduced(15))
		})

		It("treats a nil input like a plain advance", func() {
			g := generator.New(&accumulator{})

			out, err := g.Send(nil)
			Expect(err).ShouldNot(HaveOccurred())
			Expect(out).Should(testutil.MatchProduced(0))
		})

		It("rejects a non-nil input before the first suspension point", func() {
			c := &counter{limit: 2}
			g := generator.New(c)

			_, err := g.Send(42)
			Expect(err).Should(testutil.MatchGeneratorError(
				testutil.MessageContainSubstring("has not reached a suspension point"),
				testutil.OpIs("generator.Send"),
				testutil.KindIs(generator.ErrKindUsage),
				testutil.StateIs(generator.StateNotStarted),
			))

			// The rejected call never ran the body and the Generator remains usable.
			Expect(c.started).Should(BeFalse())
			Expect(g.State()).Should(Equal(generator.StateNotStarted))
			mustProduce(g, 0)
		})
	})

	Describe("throwing", func() {
		var errBoom error

		BeforeEach(func() {
			errBoom = errors.New("boom")
		})

		It("propagates an unguarded error and fails the computation", func() {
			g := newCounter(5)
			mustProduce(g, 0)

			_, err := g.Throw(errBoom)
			Expect(err).Should(Equal(errBoom))
			Expect(g.State()).Should(Equal(generator.StateFailed))

			// Failure is terminal; later resumptions signal termination.
			out, err := g.Next()
			Expect(err).ShouldNot(HaveOccurred())
			Expect(out).Should(testutil.MatchTerminated())
		})

		It("returns the next value when the suspension point is guarded", func() {
			recovering := generator.StepFunc(func(r generator.Resumption) (generator.Outcome, error) {
				if r.Canceling() {
					return generator.Terminate(), nil
				}
				if err := r.Err(); err != nil {
					if err == errBoom {
						return generator.Produce("recovered"), nil
					}
					return generator.Outcome{}, err
				}
				return generator.Produce("tick"), nil
			})
			g := generator.New(recovering)

			mustProduce(g, "tick")

			out, err := g.Throw(errBoom)
			Expect(err).ShouldNot(HaveOccurred())
			Expect(out).Should(testutil.MatchProduced("recovered"))
			Expect(g.State()).Should(Equal(generator.StateSuspended))
		})

		It("signals termination when the computation completes while handling", func() {
			handling := generator.StepFunc(func(r generator.Resumption) (generator.Outcome, error) {
				if r.Canceling() {
					return generator.Terminate(), nil
				}
				if r.Err() != nil {
					return generator.TerminateWith("handled"), nil
				}
				return generator.Produce("tick"), nil
			})
			g := generator.New(handling)

			mustProduce(g, "tick")

			out, err := g.Throw(errBoom)
			Expect(err).ShouldNot(HaveOccurred())
			Expect(out).Should(testutil.MatchTerminatedWith("handled"))
			Expect(g.State()).Should(Equal(generator.StateCompleted))
		})

		It("propagates a different error raised during handling", func() {
			errTranslated := errors.New("translated")
			translating := generator.StepFunc(func(r generator.Resumption) (generator.Outcome, error) {
				if r.Canceling() {
					return generator.Terminate(), nil
				}
				if r.Err() != nil {
					return generator.Outcome{}, errTranslated
				}
				return generator.Produce("tick"), nil
			})
			g := generator.New(translating)

			mustProduce(g, "tick")

			_, err := g.Throw(errBoom)
			Expect(err).Should(Equal(errTranslated))
			Expect(g.State()).Should(Equal(generator.StateFailed))
		})

		It("fails a not-started computation without running the body", func() {
			c := &counter{limit: 2}
			g := generator.New(c)

			_, err := g.Throw(errBoom)
			Expect(err).Should(Equal(errBoom))
			Expect(c.started).Should(BeFalse())
			Expect(g.State()).Should(Equal(generator.StateFailed))
		})

		It("re-raises into the caller once the computation terminated", func() {
			g := newCounter(0)

			out, err := g.Next()
			Expect(err).ShouldNot(HaveOccurred())
			Expect(out).Should(testutil.MatchTerminated())

			_, err = g.Throw(errBoom)
			Expect(err).Should(Equal(errBoom))

			// The computation stays completed; the late Throw does not fail it.
			Expect(g.State()).Should(Equal(generator.StateCompleted))
		})

		It("rejects a nil error", func() {
			g := newCounter(2)
			_, err := g.Throw(nil)
			Expect(err).Should(testutil.MatchGeneratorError(
				testutil.MessageEqual("cannot inject a nil error"),
				testutil.OpIs("generator.Throw"),
				testutil.KindIs(generator.ErrKindUsage),
			))
		})
	})

	Describe("closing", func() {
		It("completes a not-started computation without running the body", func() {
			c := &counter{limit: 2}
			g := generator.New(c)

			Expect(g.Close()).Should(Succeed())
			Expect(c.started).Should(BeFalse())
			Expect(g.State()).Should(Equal(generator.StateCompleted))
		})

		It("lets the body terminate normally", func() {
			g := newCounter(5)
			mustProduce(g, 0)

			Expect(g.Close()).Should(Succeed())
			Expect(g.State()).Should(Equal(generator.StateCompleted))
		})

		It("accepts the Canceled sentinel as a clean acknowledgement", func() {
			acknowledging := generator.StepFunc(func(r generator.Resumption) (generator.Outcome, error) {
				if r.Canceling() {
					return generator.Outcome{}, generator.Canceled
				}
				return generator.Produce("tick"), nil
			})
			g := generator.New(acknowledging)
			mustProduce(g, "tick")

			Expect(g.Close()).Should(Succeed())
			Expect(g.State()).Should(Equal(generator.StateCompleted))
		})

		It("discards a final result carried by the termination", func() {
			g := generator.New(generator.StepFunc(func(r generator.Resumption) (generator.Outcome, error) {
				if r.Canceling() {
					return generator.TerminateWith("leftover"), nil
				}
				return generator.Produce("tick"), nil
			}))
			mustProduce(g, "tick")

			Expect(g.Close()).Should(Succeed())
			Expect(g.State()).Should(Equal(generator.StateCompleted))
		})

		It("propagates an error raised by the cleanup", func() {
			errCleanup := errors.New("cleanup failed")
			failing := generator.StepFunc(func(r generator.Resumption) (generator.Outcome, error) {
				if r.Canceling() {
					return generator.Outcome{}, errCleanup
				}
				return generator.Produce("tick"), nil
			})
			g := generator.New(failing)
			mustProduce(g, "tick")

			Expect(g.Close()).Should(Equal(errCleanup))
			Expect(g.State()).Should(Equal(generator.StateFailed))
		})

		It("reports a protocol violation when the body keeps producing", func() {
			stubborn := generator.StepFunc(func(r generator.Resumption) (generator.Outcome, error) {
				// Ignore the cancellation request entirely.
				return generator.Produce("more"), nil
			})
			g := generator.New(stubborn)
			mustProduce(g, "more")

			err := g.Close()
			Expect(err).Should(testutil.MatchGeneratorError(
				testutil.MessageContainSubstring("produced a value while being canceled"),
				testutil.OpIs("generator.Close"),
				testutil.KindIs(generator.ErrKindProtocol),
				testutil.StateIs(generator.StateFailed),
			))
			Expect(g.State()).Should(Equal(generator.StateFailed))
		})

		It("is a no-op on a terminated computation", func() {
			g := newCounter(0)

			out, err := g.Next()
			Expect(err).ShouldNot(HaveOccurred())
			Expect(out).Should(testutil.MatchTerminated())

			Expect(g.Close()).Should(Succeed())
			Expect(g.Close()).Should(Succeed())
		})
	})

	Describe("reentrancy", func() {
		It("rejects resumption from inside the body", func() {
			var g *generator.Generator
			reentrant := generator.StepFunc(func(r generator.Resumption) (generator.Outcome, error) {
				if r.Canceling() {
					return generator.Terminate(), nil
				}
				// Resume ourselves while running.
				if _, err := g.Next(); err != nil {
					return generator.Outcome{}, err
				}
				return generator.Produce("unreachable"), nil
			})
			g = generator.New(reentrant)

			_, err := g.Next()
			Expect(err).Should(testutil.MatchGeneratorError(
				testutil.MessageContainSubstring("from inside its own body"),
				testutil.OpIs("generator.Next"),
				testutil.KindIs(generator.ErrKindUsage),
				testutil.StateIs(generator.StateRunning),
			))

			// The body let the rejection propagate, so the computation failed.
			Expect(g.State()).Should(Equal(generator.StateFailed))
		})
	})

	Describe("misbehaving steppers", func() {
		It("reports a Stepper answering with neither an outcome nor an error", func() {
			g := generator.New(generator.StepFunc(func(generator.Resumption) (generator.Outcome, error) {
				return generator.Outcome{}, nil
			}))

			_, err := g.Next()
			Expect(err).Should(testutil.MatchGeneratorError(
				testutil.MessageContainSubstring("neither an outcome nor an error"),
				testutil.KindIs(generator.ErrKindProtocol),
			))
			Expect(g.State()).Should(Equal(generator.StateFailed))
		})

		It("fails the computation when the Stepper panics", func() {
			g := generator.New(generator.StepFunc(func(generator.Resumption) (generator.Outcome, error) {
				panic("stepper exploded")
			}))

			Expect(func() {
				_, _ = g.Next()
			}).Should(Panic())
			Expect(g.State()).Should(Equal(generator.StateFailed))

			out, err := g.Next()
			Expect(err).ShouldNot(HaveOccurred())
			Expect(out).Should(testutil.MatchTerminated())
		})
	})

	Describe("iterating", func() {
		It("consumes produced values with Each", func() {
			var values []interface{}
			Expect(iterator.Each(newCounter(3), func(value interface{}) error {
				values = append(values, value)
				return nil
			})).Should(Succeed())
			Expect(values).Should(Equal([]interface{}{0, 1, 2}))
		})

		It("drops the final result at the loop boundary", func() {
			var values []interface{}
			Expect(iterator.Each(generator.New(&resultStepper{}), func(value interface{}) error {
				values = append(values, value)
				return nil
			})).Should(Succeed())
			Expect(values).Should(Equal([]interface{}{0}))
		})

		It("propagates failures out of the loop", func() {
			errBoom := errors.New("boom")
			g := generator.New(generator.StepFunc(func(r generator.Resumption) (generator.Outcome, error) {
				return generator.Outcome{}, errBoom
			}))
			Expect(iterator.Each(g, func(interface{}) error {
				Fail("visit should not run")
				return nil
			})).Should(Equal(errBoom))
		})
	})
})
