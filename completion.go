package vega

import (
	"context"
	"sync"
)

// Completion is the single-resolution signal returned by
// ChartView.Render. It resolves once the embedder has invoked its
// callback, successful or not.
//
// There is no timeout: if the embedder never calls back the
// completion never resolves. Completion.Wait accepts a context so
// a caller can stop waiting, which does not resolve the completion.
type Completion struct {
	once sync.Once
	done chan struct{}
	err  error
}

func newCompletion() *Completion {
	return &Completion{done: make(chan struct{})}
}

func (c *Completion) resolve(err error) {
	c.once.Do(func() {
		c.err = err
		close(c.done)
	})
}

// Done returns a channel that is closed when the completion resolves.
func (c *Completion) Done() <-chan struct{} {
	return c.done
}

// Wait blocks until the completion resolves or the context is done,
// returning the context's error in the latter case.
// Wait never returns an embedder error, see Err.
func (c *Completion) Wait(ctx context.Context) error {
	select {
	case <-c.done:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// Err returns the error the embedder reported, or nil.
// Valid after the completion resolved, nil before.
//
// Render resolves its completion successfully even when the embedder
// reported an error, Err is the only place that error surfaces.
func (c *Completion) Err() error {
	select {
	case <-c.done:
		return c.err
	default:
		return nil
	}
}
