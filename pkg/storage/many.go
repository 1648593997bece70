package storage

import (
	"context"
	"sync"

	"golang.org/x/sync/errgroup"

	"github.com/arthur-debert/jsonstore/pkg/paths"
)

// GetMany reads several records concurrently, at most Options.Concurrency
// at a time. Every key is validated before any file is read. The first
// failure cancels the remaining reads and is returned alone; missing
// records map to empty objects like Get.
func (s *Store) GetMany(ctx context.Context, keys []string) (map[string]any, error) {
	for _, key := range keys {
		if err := paths.ValidateKey(key); err != nil {
			return nil, err
		}
	}

	var (
		mu      sync.Mutex
		results = make(map[string]any, len(keys))
	)

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(s.opts.Concurrency)

	for _, key := range keys {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			value, err := s.Get(key)
			if err != nil {
				return err
			}
			mu.Lock()
			results[key] = value
			mu.Unlock()
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	s.logger.Debug().Int("keys", len(keys)).Msg("Records read")
	return results, nil
}
