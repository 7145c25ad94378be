package gexiv2

import (
	"context"
	"runtime"

	"golang.org/x/sync/errgroup"
)

// OpenMany opens several files concurrently, at most runtime.NumCPU() at a
// time. The result is in the order of paths. If any open fails, or ctx is
// cancelled, every Metadata already opened is closed and the first error is
// returned. Cancellation stops further opens from starting; an open already
// inside the native library runs to completion.
func OpenMany(ctx context.Context, paths []string, opts ...Option) ([]*Metadata, error) {
	return std.openMany(ctx, paths, opts...)
}

func (l *library) openMany(ctx context.Context, paths []string, opts ...Option) ([]*Metadata, error) {
	if len(paths) == 0 {
		return []*Metadata{}, nil
	}

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(runtime.NumCPU())

	results := make([]*Metadata, len(paths))
	for i, path := range paths {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			md, err := l.open(path, opts...)
			if err != nil {
				return err
			}
			results[i] = md
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		for _, md := range results {
			_ = md.Close()
		}
		return nil, err
	}
	return results, nil
}
