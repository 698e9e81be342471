package libdiff

const (
	// DefaultMaxDepth is the hard recursion cap; below it the
	// remaining subtrees are collapsed into a single leaf so that
	// pathologically nested documents cannot exhaust the stack.
	DefaultMaxDepth = 128

	// DefaultSequenceFallback is the element count above which
	// sequences are compared index by index instead of by minimal
	// edit script.
	DefaultSequenceFallback = 4096
)
