package libdiff

import "github.com/ydiff-project/ydiff/ir"

type Config struct {
	// MaxDepth caps recursive descent; at the cap the remaining
	// subtrees collapse into a single leaf compared by structural
	// equality.
	MaxDepth int
	// SequenceFallback is the element count above which sequence
	// alignment switches from edit script to positional.
	SequenceFallback int
}

type Opt func(*Config)

func MaxDepth(n int) Opt {
	return func(c *Config) {
		c.MaxDepth = n
	}
}

func SequenceFallback(n int) Opt {
	return func(c *Config) {
		c.SequenceFallback = n
	}
}

// Differ dispatches each value pair to the matching comparator and
// assembles the DiffNode tree.
type Differ struct {
	cfg Config
}

func New(opts ...Opt) *Differ {
	d := &Differ{cfg: Config{
		MaxDepth:         DefaultMaxDepth,
		SequenceFallback: DefaultSequenceFallback,
	}}
	for _, opt := range opts {
		opt(&d.cfg)
	}
	return d
}

// Diff compares two values and returns the root of the diff tree.
// A nil side denotes a pure addition or deletion context and yields a
// fully tagged one-sided subtree.
func (d *Differ) Diff(from, to *ir.Node) *DiffNode {
	return d.diff(from, to, 0)
}

// Func exposes the differ as a DiffFunc rooted at depth zero, for
// per-key chunked computation.
func (d *Differ) Func() DiffFunc {
	return d.child(0)
}

func (d *Differ) diff(from, to *ir.Node, depth int) *DiffNode {
	switch {
	case from == nil && to == nil:
		return nil
	case from == nil:
		return MakeAdded(to)
	case to == nil:
		return MakeDeleted(from)
	}
	if depth >= d.cfg.MaxDepth {
		// collapse: compare the remaining subtrees whole
		if ir.Equal(from, to) {
			return leaf(Unchanged, from, to)
		}
		return leaf(Modified, from, to)
	}
	if from.Type != to.Type {
		// a kind change is a terminal difference, not partially
		// diffable
		return leaf(Modified, from, to)
	}
	switch from.Type {
	case ir.MappingType:
		return DiffMapping(from, to, d.child(depth))
	case ir.SequenceType:
		return DiffSequence(from, to, d.cfg.SequenceFallback, d.child(depth))
	default:
		return DiffScalar(from, to)
	}
}

func (d *Differ) child(depth int) DiffFunc {
	return func(from, to *ir.Node) *DiffNode {
		return d.diff(from, to, depth+1)
	}
}
