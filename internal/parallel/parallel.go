// Package parallel provides the small fork/join helpers used by the
// multiplication engine and the orchestration layer.
package parallel

import (
	"sync"

	"golang.org/x/sync/errgroup"
)

// ErrorCollector records the first non-nil error reported by any of a set
// of goroutines. The zero value is ready to use.
type ErrorCollector struct {
	once sync.Once
	err  error
}

// SetError records err if it is the first non-nil error seen.
func (c *ErrorCollector) SetError(err error) {
	if err == nil {
		return
	}
	c.once.Do(func() { c.err = err })
}

// Err returns the first recorded error, or nil. It must only be called
// after all writers have finished.
func (c *ErrorCollector) Err() error {
	return c.err
}

// Execute3 runs the three functions concurrently and waits for all of them.
// The first and second run on new goroutines, the third on the caller's.
// It returns the first non-nil error; all three always run to completion.
func Execute3(a, b, c func() error) error {
	var g errgroup.Group
	g.Go(a)
	g.Go(b)
	var ec ErrorCollector
	ec.SetError(c())
	ec.SetError(g.Wait())
	return ec.Err()
}

// ExecuteAll runs every function concurrently with at most limit in flight
// (limit <= 0 means unbounded) and returns the first non-nil error.
func ExecuteAll(limit int, fns ...func() error) error {
	var g errgroup.Group
	if limit > 0 {
		g.SetLimit(limit)
	}
	for _, fn := range fns {
		g.Go(fn)
	}
	return g.Wait()
}
