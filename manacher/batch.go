// SPDX-License-Identifier: MIT

package manacher

import (
	"context"

	"golang.org/x/sync/errgroup"
)

// BuildAll indexes every sequence of seqs and returns the indexes in the
// same order. Sequences are indexed in parallel, at most
// BatchOptions.Concurrency at a time; each index is still built by a
// single goroutine.
//
// If ctx is cancelled before every index is built, BuildAll returns
// ctx.Err() and no indexes. A Concurrency below 1, however it was set,
// panics with ErrBadConcurrency.
//
// Example:
//
//	idxs, err := BuildAll(ctx, [][]byte{[]byte("level"), []byte("rotor")},
//	    WithConcurrency(2))
func BuildAll[T comparable](ctx context.Context, seqs [][]T, opts ...BatchOption) ([]*Index, error) {
	return buildAll(ctx, seqs, New[T], opts)
}

// BuildAllFunc is BuildAll for elements compared with eq, as in NewFunc.
// A nil eq panics with ErrNilEqual before any work starts.
func BuildAllFunc[T any](ctx context.Context, seqs [][]T, eq func(a, b T) bool, opts ...BatchOption) ([]*Index, error) {
	if eq == nil {
		panic(ErrNilEqual.Error())
	}

	return buildAll(ctx, seqs, func(s []T) *Index { return NewFunc(s, eq) }, opts)
}

// buildAll fans construction out over an errgroup bounded by the options.
func buildAll[T any](ctx context.Context, seqs [][]T, build func([]T) *Index, opts []BatchOption) ([]*Index, error) {
	o := DefaultBatchOptions()
	for _, opt := range opts {
		opt(&o)
	}
	// Options are plain funcs, so a caller may bypass WithConcurrency.
	if o.Concurrency < 1 {
		panic(ErrBadConcurrency.Error())
	}

	out := make([]*Index, len(seqs))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(o.Concurrency)

	for i, s := range seqs {
		if gctx.Err() != nil {
			break
		}
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			out[i] = build(s)

			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	return out, nil
}
