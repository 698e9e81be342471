package libdiff

// Stats summarizes a comparison result: each count is the number of
// maximal changed subtrees of that kind, so a wholly added mapping
// counts once no matter how many members it has.
type Stats struct {
	Additions int `json:"additions"`
	Deletions int `json:"deletions"`
	Modified  int `json:"modified"`
}

func (s Stats) Any() bool {
	return s.Additions != 0 || s.Deletions != 0 || s.Modified != 0
}

// NodeStats accumulates counts over a result list.
func NodeStats(nodes []*DiffNode) Stats {
	s := Stats{}
	for _, n := range nodes {
		s.add(n)
	}
	return s
}

func (s *Stats) add(n *DiffNode) {
	switch n.Type {
	case Added:
		s.Additions++
	case Deleted:
		s.Deletions++
	case Modified:
		if len(n.Children) == 0 {
			s.Modified++
			return
		}
		for _, c := range n.Children {
			s.add(c)
		}
	case Unchanged:
	}
}
