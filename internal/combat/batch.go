package combat

import (
	"context"
	"fmt"
	"sync"

	"golang.org/x/sync/errgroup"

	"rpgsim/internal/config"
)

// Summary aggregates many independent battles of the same encounter.
type Summary struct {
	Runs      int     `json:"runs"`
	Victories int     `json:"victories"`
	Defeats   int     `json:"defeats"`
	Timeouts  int     `json:"timeouts"`
	WinRate   float64 `json:"win_rate"`
	AvgRounds float64 `json:"avg_rounds"`
	AvgHeroHP float64 `json:"avg_hero_hp"`
	Crits     int     `json:"crits"`
}

// RunBatch plays n battles from cfg on at most workers goroutines. Run i
// draws from newRng(cfg.Seed, i), so a batch is reproducible regardless of
// scheduling. Each battle still runs on a single goroutine.
func RunBatch(ctx context.Context, cfg *config.BattleConfig, n, workers int, newRng func(seed int64, i int) Roller, opts ...Option) (Summary, error) {
	if n <= 0 {
		return Summary{}, fmt.Errorf("batch size must be positive, got %d", n)
	}
	if workers <= 0 {
		workers = 1
	}

	var (
		mu        sync.Mutex
		sum       = Summary{Runs: n}
		sumRounds int
		sumHP     int
	)
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)
	for i := 0; i < n; i++ {
		if gctx.Err() != nil {
			break
		}
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			b, err := FromConfig(cfg, newRng(cfg.Seed, i), opts...)
			if err != nil {
				return fmt.Errorf("run %d: %w", i, err)
			}
			res := b.Run(false)
			if res.Err != nil {
				return fmt.Errorf("run %d: %w", i, res.Err)
			}

			mu.Lock()
			defer mu.Unlock()
			switch res.Outcome {
			case Victory:
				sum.Victories++
			case Defeat:
				sum.Defeats++
			case Timeout:
				sum.Timeouts++
			}
			sumRounds += res.Rounds
			sumHP += res.HeroHP
			sum.Crits += res.Crits
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return Summary{}, err
	}
	if err := ctx.Err(); err != nil {
		return Summary{}, err
	}

	sum.WinRate = float64(sum.Victories) / float64(n)
	sum.AvgRounds = float64(sumRounds) / float64(n)
	sum.AvgHeroHP = float64(sumHP) / float64(n)
	return sum, nil
}
