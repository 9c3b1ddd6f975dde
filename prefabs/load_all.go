package prefabs

import (
	"context"
	"sync"

	"golang.org/x/sync/errgroup"
)

// LoadAll decodes the named actor prefabs concurrently. Duplicate names are
// loaded once.
func LoadAll(ctx context.Context, names ...string) (map[string]*ActorSpec, error) {
	var (
		mu  sync.Mutex
		out = make(map[string]*ActorSpec, len(names))
	)
	g, ctx := errgroup.WithContext(ctx)
	seen := make(map[string]bool, len(names))
	for _, name := range names {
		if seen[name] {
			continue
		}
		seen[name] = true
		name := name
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			spec, err := LoadActorSpec(name)
			if err != nil {
				return err
			}
			mu.Lock()
			out[name] = spec
			mu.Unlock()
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return out, nil
}
