package reporters

import (
	"github.com/timtadh/fpm/lattice"
)

type Collector struct {
	Nodes  []*lattice.Node
	Levels []int
	Closed bool
}

func (c *Collector) Report(n *lattice.Node) error {
	c.Nodes = append(c.Nodes, n)
	return nil
}

func (c *Collector) EndLevel(level, count int) error {
	c.Levels = append(c.Levels, count)
	return nil
}

func (c *Collector) Close() error {
	c.Closed = true
	return nil
}
