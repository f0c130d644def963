package reporters

import (
	"github.com/timtadh/fpm/lattice"
	"github.com/timtadh/fpm/miners"
)

type Chain struct {
	Reporters []miners.Reporter
}

func (r *Chain) Report(n *lattice.Node) error {
	for _, rpt := range r.Reporters {
		err := rpt.Report(n)
		if err != nil {
			return err
		}
	}
	return nil
}

func (r *Chain) EndLevel(level, count int) error {
	for _, rpt := range r.Reporters {
		if lr, ok := rpt.(miners.LevelReporter); ok {
			err := lr.EndLevel(level, count)
			if err != nil {
				return err
			}
		}
	}
	return nil
}

// Close closes every reporter in the chain even when an earlier one fails.
func (r *Chain) Close() error {
	var errs lattice.ErrorList
	for _, rpt := range r.Reporters {
		err := rpt.Close()
		if err != nil {
			errs = append(errs, err)
		}
	}
	return errs.Err()
}
