package ydiff

import (
	"fmt"

	"github.com/ydiff-project/ydiff/debug"
	"github.com/ydiff-project/ydiff/ir"
	"github.com/ydiff-project/ydiff/libdiff"
	"github.com/ydiff-project/ydiff/parse"
)

// Session holds the state of one comparison so a host can compute the
// diff one top-level key at a time, yielding between calls on its own
// schedule.  Every operation runs synchronously to completion; a
// session belongs to a single calling sequence and performs no
// internal concurrency.
type Session struct {
	left, right *ir.Node
	keys        []string
	keySet      map[string]bool
	results     []*libdiff.DiffNode
	differ      *libdiff.Differ
	closed      bool
}

// NewSession parses both raw documents and initializes a comparison.
// The two sides are parsed independently; on failure the returned
// error is a parse.Errors holding one side-tagged entry per failing
// side.
//
// When both roots are mappings, Keys reports the ordered key union
// and no diffs are computed until Step.  Otherwise Keys is empty and
// the host uses WholeDocument.
func NewSession(rawLeft, rawRight []byte, opts ...libdiff.Opt) (*Session, error) {
	left, right, errs := parse.ParseBoth(rawLeft, rawRight)
	if errs != nil {
		return nil, errs
	}
	s := &Session{
		left:   left,
		right:  right,
		differ: libdiff.New(opts...),
	}
	if left.Type == ir.MappingType && right.Type == ir.MappingType {
		s.keys = libdiff.KeyUnion(left, right)
		s.keySet = make(map[string]bool, len(s.keys))
		for _, k := range s.keys {
			s.keySet[k] = true
		}
	}
	if debug.Session() {
		debug.Logf("session: init with %d keys\n", len(s.keys))
	}
	return s, nil
}

// Keys returns the ordered key union computed at init, empty for
// non-mapping roots.
func (s *Session) Keys() []string {
	return s.keys
}

// Step computes exactly one top-level key's subtree and appends it to
// the accumulated results.  Stepping a key outside the union, or a
// cleaned-up session, is a usage error.
func (s *Session) Step(key string) (*libdiff.DiffNode, error) {
	if s.closed {
		return nil, fmt.Errorf("%w: step without a live session", ErrUsage)
	}
	if !s.keySet[key] {
		return nil, fmt.Errorf("%w: unknown key %q", ErrUsage, key)
	}
	node := libdiff.DiffMappingKey(s.left, s.right, key, s.differ.Func())
	s.results = append(s.results, node)
	if debug.Session() {
		debug.Logf("session: step %q -> %s\n", key, node.Type)
	}
	return node, nil
}

// WholeDocument computes the full comparison in one call: the
// singleton result for non-mapping roots, or every key of the union
// in order, identical to concatenating per-key Step results.
func (s *Session) WholeDocument() ([]*libdiff.DiffNode, error) {
	if s.closed {
		return nil, fmt.Errorf("%w: wholeDocument without a live session", ErrUsage)
	}
	if s.keySet == nil {
		res := []*libdiff.DiffNode{s.differ.Diff(s.left, s.right)}
		s.results = res
		return res, nil
	}
	res := make([]*libdiff.DiffNode, 0, len(s.keys))
	for _, key := range s.keys {
		res = append(res, libdiff.DiffMappingKey(s.left, s.right, key, s.differ.Func()))
	}
	s.results = res
	return res, nil
}

// Results returns the accumulated per-step results in computation
// order.
func (s *Session) Results() []*libdiff.DiffNode {
	return s.results
}

// Cleanup releases the session state.  It is idempotent and safe
// after an error or before any steps were taken.
func (s *Session) Cleanup() {
	s.closed = true
	s.left = nil
	s.right = nil
	s.keys = nil
	s.keySet = nil
	s.results = nil
}

// Manager owns at most one live session, implementing the documented
// reset policy: an Init while a session is live discards the previous
// one rather than erroring, since a host may restart a comparison
// mid-flight.
type Manager struct {
	opts []libdiff.Opt
	cur  *Session
}

func NewManager(opts ...libdiff.Opt) *Manager {
	return &Manager{opts: opts}
}

// Init starts a new comparison, implicitly discarding any live
// session.  It returns the ordered key union (empty for non-mapping
// roots) or the side-tagged parse errors.
func (m *Manager) Init(rawLeft, rawRight []byte) ([]string, error) {
	if m.cur != nil {
		if debug.Session() {
			debug.Logf("session: init discards live session\n")
		}
		m.cur.Cleanup()
		m.cur = nil
	}
	s, err := NewSession(rawLeft, rawRight, m.opts...)
	if err != nil {
		return nil, err
	}
	m.cur = s
	return s.Keys(), nil
}

func (m *Manager) Step(key string) (*libdiff.DiffNode, error) {
	if m.cur == nil {
		return nil, fmt.Errorf("%w: step before init", ErrUsage)
	}
	return m.cur.Step(key)
}

func (m *Manager) WholeDocument() ([]*libdiff.DiffNode, error) {
	if m.cur == nil {
		return nil, fmt.Errorf("%w: wholeDocument before init", ErrUsage)
	}
	return m.cur.WholeDocument()
}

func (m *Manager) Results() []*libdiff.DiffNode {
	if m.cur == nil {
		return nil
	}
	return m.cur.Results()
}

// Cleanup releases the live session, if any.  Idempotent.
func (m *Manager) Cleanup() {
	if m.cur != nil {
		m.cur.Cleanup()
		m.cur = nil
	}
}
