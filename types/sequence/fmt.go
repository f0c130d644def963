package sequence

import (
	"fmt"
	"io"
	"strings"
)

import (
	"github.com/timtadh/fpm/lattice"
	"github.com/timtadh/fpm/types/labels"
)

// Output records separate tokens with ';' like itemsets do.
const OutputSeparator = ";"

type Formatter struct {
	Labels *labels.Labels
}

func (f *Formatter) PatternName(n *lattice.Node) string {
	return strings.Join(f.Labels.Labels(n.Pat.Items()), OutputSeparator)
}

func (f *Formatter) FormatPattern(w io.Writer, n *lattice.Node) error {
	_, err := fmt.Fprintf(w, "%d:%s\n", n.Support(), f.PatternName(n))
	return err
}
