package levelwise

import (
	"context"
	"fmt"
	"sync"
	"sync/atomic"
	"time"
)

import (
	"github.com/timtadh/data-structures/errors"
)

import (
	"github.com/timtadh/fpm/config"
	"github.com/timtadh/fpm/lattice"
	"github.com/timtadh/fpm/miners"
	"github.com/timtadh/fpm/stats"
)

// Miner finds every frequent pattern one level at a time. Level k+1 is
// only attempted when level k produced at least one frequent pattern.
type Miner struct {
	Config *config.Config
	dt     lattice.DataType
	rptr   miners.Reporter
}

func NewMiner(conf *config.Config) *Miner {
	return &Miner{Config: conf}
}

func (m *Miner) Mine(ctx context.Context, dt lattice.DataType, rptr miners.Reporter, fmtr lattice.Formatter) error {
	m.dt = dt
	m.rptr = rptr
	threshold := m.Config.AbsoluteSupport(dt.Transactions())
	errors.Logf("INFO", "support %v of %d transactions, threshold %d", m.Config.Support, dt.Transactions(), threshold)

	wkrs := newWorkers(m.Config.Workers())
	defer wkrs.Stop()
	errors.Logf("DEBUG", "counting with %d workers", wkrs.Size())

	gen := dt.Generator()
	counter := dt.Counter()
	start := time.Now()
	total := 0
	var frequent []*lattice.Node
	for level := 1; level <= dt.LargestLevel(); level++ {
		if err := ctx.Err(); err != nil {
			return fmt.Errorf("level %d: %w", level, err)
		}
		candidates, err := gen.Candidates(level, frequent)
		if err != nil {
			return err
		}
		if len(candidates) == 0 {
			break
		}
		nodes, err := count(ctx, wkrs, counter, candidates)
		if err != nil {
			return fmt.Errorf("level %d: %w", level, err)
		}
		if err := ctx.Err(); err != nil {
			return fmt.Errorf("level %d: %w", level, err)
		}
		frequent = threshold.Supported(nodes)
		errors.Logf("INFO", "level %d: %d candidates, %d frequent, %v", level, len(candidates), len(frequent), summarize(frequent))
		for _, n := range frequent {
			errors.Logf("DEBUG", "frequent %v %v", n.Support(), fmtr.PatternName(n))
			if err := rptr.Report(n); err != nil {
				return err
			}
		}
		if lr, ok := rptr.(miners.LevelReporter); ok {
			if err := lr.EndLevel(level, len(frequent)); err != nil {
				return err
			}
		}
		total += len(frequent)
		if len(frequent) == 0 {
			break
		}
	}
	errors.Logf("INFO", "mined %d frequent patterns in %v", total, time.Since(start))
	return nil
}

// count computes the supporting transactions of every candidate on the
// pool. Each job writes only its own slot so the result does not depend on
// scheduling. The first failure stops the remaining jobs.
func count(ctx context.Context, wkrs *workers, counter lattice.Counter, candidates []lattice.Pattern) ([]*lattice.Node, error) {
	nodes := make([]*lattice.Node, len(candidates))
	var failed atomic.Bool
	var once sync.Once
	var firstErr error
	fail := func(err error) {
		once.Do(func() {
			firstErr = err
			failed.Store(true)
		})
	}
	var wg sync.WaitGroup
	for i, p := range candidates {
		i, p := i, p
		wg.Add(1)
		wkrs.Do(func() {
			defer wg.Done()
			if failed.Load() {
				return
			}
			if err := ctx.Err(); err != nil {
				fail(err)
				return
			}
			txs, err := counter.Supported(p)
			if err != nil {
				fail(err)
				return
			}
			nodes[i] = &lattice.Node{Pat: p, Txs: txs}
		})
	}
	wg.Wait()
	if firstErr != nil {
		return nil, firstErr
	}
	return nodes, nil
}

func summarize(nodes []*lattice.Node) stats.Summary {
	supports := make([]int, 0, len(nodes))
	for _, n := range nodes {
		supports = append(supports, n.Support())
	}
	return stats.Summarize(supports)
}

func (m *Miner) Close() error {
	var errs lattice.ErrorList
	if m.rptr != nil {
		if err := m.rptr.Close(); err != nil {
			errs = append(errs, err)
		}
	}
	if m.dt != nil {
		if err := m.dt.Close(); err != nil {
			errs = append(errs, err)
		}
	}
	return errs.Err()
}
