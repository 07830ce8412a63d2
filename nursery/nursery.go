// Package nursery implements Nurseries, a form of structured concurrency as
// described in
// https://vorpus.org/blog/notes-on-structured-concurrency-or-go-statement-considered-harmful/.
//
// The neighbors package uses RunIndices to fan the data-parallel EachI
// traversal of a neighbor list out across worker goroutines.
package nursery

import (
	"context"
	"fmt"

	"golang.org/x/sync/errgroup"
)

// Nursery provides a structured way to work with parent and child goroutine
// lifecycles.
type Nursery struct {
	g *errgroup.Group
}

// Block is a function that is executed in the context of a Nursery, which can
// be used to run multiple goroutines that all must exit before returning
// control to the caller of nursery.Run.
type Block func(context.Context, *Nursery)

// Run creates a nursery that runs the given function. Run executes the block,
// running any requested goroutines until they are all completed, using the
// same semantics as an ErrGroup with a Context.
func Run(ctx context.Context, block Block) error {
	g, childCtx := errgroup.WithContext(ctx)
	n := &Nursery{
		g: g,
	}

	block(childCtx, n)

	if err := g.Wait(); err != nil {
		return fmt.Errorf("Run nursery: %w", err)
	}

	return nil
}

// Go spawns a goroutine for the given function, ensuring that it will be waited on.
// The function takes no arguments; to observe cancellation it should watch the
// context that Run passed to the Block.
func (n *Nursery) Go(f func() error) {
	n.g.Go(f)
}

// RunIndices spawns one goroutine per index in [0, n), each calling op(i),
// and blocks until all of them return. It has no cancellation path: op is
// not expected to fail or to observe a context, which fits visitors that are
// required to be safe to call concurrently but are not expected to error.
// A panic inside op is not recovered: like any unrecovered goroutine panic it
// terminates the program, and the caller of RunIndices cannot recover it.
func RunIndices(n int, op func(i int)) {
	// The error return is always nil: every spawned function returns nil.
	_ = Run(context.Background(), func(_ context.Context, ns *Nursery) {
		for i := 0; i < n; i++ {
			i := i
			ns.Go(func() error {
				op(i)
				return nil
			})
		}
	})
}
