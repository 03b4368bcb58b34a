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

// A Generator drives a suspendable computation: it wraps a Stepper with the state machine that
// owns the computation's lifecycle. All values, inputs and errors flow through the resumption
// operations Next, Send, Throw and Close; the Stepper's fields hold the state that survives
// between suspension points.
//
// A Generator is exclusively owned by its consumer. It is not safe for concurrent use, and
// resuming it from inside its own body is rejected as a usage error. Termination is one-way:
// however a Generator reaches StateCompleted or StateFailed, it deterministically keeps signalling
// termination afterwards.
type Generator struct {
	stepper Stepper
	state   State
}

// New creates a Generator for the computation embodied by stepper. None of the computation's code
// runs until the first resumption. New panics if stepper is nil.
func New(stepper Stepper) *Generator {
	if stepper == nil {
		panic("generator: New with nil Stepper")
	}
	return &Generator{stepper: stepper}
}

// State returns the current lifecycle state.
func (g *Generator) State() State {
	return g.state
}

// Next resumes the computation with no injected input and returns the next produced value, or a
// terminated Outcome once no further values will be produced. A terminated Generator keeps
// answering Next with a terminated Outcome (with no final result; the final result travels only
// with the Outcome that observed the termination).
func (g *Generator) Next() (Outcome, error) {
	const op Op = "generator.Next"
	switch g.state {
	case StateRunning:
		return Outcome{}, reentrantError(op)
	case StateCompleted, StateFailed:
		return Terminate(), nil
	}
	return g.run(op, Resumption{kind: resumeAdvance})
}

// NextOr is Next with a caller-supplied default: it returns the next produced value while the
// computation lasts and substitutes def once it has terminated, without disturbing the one-way
// termination state. Any final result carried by the termination is discarded. Genuine failures
// still return an error.
func (g *Generator) NextOr(def interface{}) (interface{}, error) {
	out, err := g.Next()
	if err != nil {
		return nil, err
	}
	if out.Terminated() {
		return def, nil
	}
	return out.Value(), nil
}

// Send resumes the computation, injecting input as the result of the suspension expression the
// computation is paused at. Send(nil) is identical to Next. The return contract is the same as
// Next.
//
// A not-started computation has no suspension expression to receive the input: Send with a non-nil
// input in StateNotStarted is a usage error, and the Generator is left untouched.
func (g *Generator) Send(input interface{}) (Outcome, error) {
	const op Op = "generator.Send"
	switch g.state {
	case StateRunning:
		return Outcome{}, reentrantError(op)
	case StateCompleted, StateFailed:
		return Terminate(), nil
	case StateNotStarted:
		if input != nil {
			return Outcome{}, NewError(
				"cannot inject an input into a computation that has not reached a suspension point",
				op, ErrKindUsage, g.state)
		}
		return g.run(op, Resumption{kind: resumeAdvance})
	}
	return g.run(op, Resumption{kind: resumeInput, input: input})
}

// Throw resumes the computation by injecting err at the paused suspension point, as if err were
// raised at that exact program point inside the body. If the body produces another value before
// the error is fully handled, that value is returned normally. If the injected error (or a
// different error raised during handling) propagates out unhandled, Throw returns it unmodified
// and the computation becomes failed. If the body completes normally while handling the error,
// Throw returns a terminated Outcome (optionally with a final result).
//
// Throwing into a not-started computation fails it without running the body: no suspension point
// is guarded yet. Throwing into a terminated computation returns err to the caller and leaves the
// state as it is. A nil err is a usage error.
func (g *Generator) Throw(err error) (Outcome, error) {
	const op Op = "generator.Throw"
	if err == nil {
		return Outcome{}, NewError("cannot inject a nil error", op, ErrKindUsage, g.state)
	}
	switch g.state {
	case StateRunning:
		return Outcome{}, reentrantError(op)
	case StateCompleted, StateFailed:
		// Re-raise at the call site; the computation stays terminated.
		return Outcome{}, err
	case StateNotStarted:
		// No suspension point is guarded yet; the body never runs.
		g.state = StateFailed
		return Outcome{}, err
	}
	return g.run(op, Resumption{kind: resumeError, err: err})
}

// Close requests graceful termination. The body receives the cancellation request at its paused
// suspension point and must release whatever it holds, then either terminate normally (any final
// result is discarded) or acknowledge with the Canceled sentinel; both count as success. An error
// raised by the cleanup propagates to the caller and the computation becomes failed. If the body
// produces another value instead of terminating, Close reports a protocol violation
// (ErrKindProtocol) and the computation becomes failed.
//
// Closing a not-started computation completes it without ever running the body. Closing a
// terminated computation is a no-op.
func (g *Generator) Close() error {
	const op Op = "generator.Close"
	switch g.state {
	case StateRunning:
		return reentrantError(op)
	case StateCompleted, StateFailed:
		return nil
	case StateNotStarted:
		// The body never ran; there is nothing to clean up.
		g.state = StateCompleted
		return nil
	}
	_, err := g.run(op, Resumption{kind: resumeCancel})
	return err
}

// run invokes the Stepper once and applies its answer to the state machine.
func (g *Generator) run(op Op, r Resumption) (Outcome, error) {
	g.state = StateRunning
	defer func() {
		// A panic escaping the Stepper leaves the computation failed.
		if g.state == StateRunning {
			g.state = StateFailed
		}
	}()

	out, err := g.stepper.Step(r)
	if err != nil {
		if r.kind == resumeCancel && err == Canceled {
			// Clean acknowledgement of the cancellation request.
			g.state = StateCompleted
			return Terminate(), nil
		}
		g.state = StateFailed
		return Outcome{}, err
	}

	switch out.kind {
	case outcomeProduced:
		if r.kind == resumeCancel {
			g.state = StateFailed
			return Outcome{}, NewError(
				"computation produced a value while being canceled instead of terminating",
				op, ErrKindProtocol, StateFailed)
		}
		g.state = StateSuspended
		return out, nil

	case outcomeTerminated:
		g.state = StateCompleted
		return out, nil
	}

	// The Stepper answered with the zero Outcome and a nil error.
	g.state = StateFailed
	return Outcome{}, NewError(
		"Step returned neither an outcome nor an error",
		op, ErrKindProtocol, StateFailed)
}

func reentrantError(op Op) error {
	return NewError(
		"computation resumed from inside its own body",
		op, ErrKindUsage, StateRunning)
}
