package experiment

import (
	"context"
	"slices"
	"sync"
)

// MemoryStorer is an in-memory Storer. The zero value is not usable; create
// one with NewMemoryStorer. It is safe for concurrent use.
type MemoryStorer struct {
	mu       sync.RWMutex
	nodes    map[string]*Node
	children map[string]int
	order    []string

	// maxNodes caps the store; 0 means unbounded.
	maxNodes int
}

// MemoryOption customizes NewMemoryStorer.
type MemoryOption func(*MemoryStorer)

// WithMaxNodes bounds the store to n nodes. Once full, every Put evicts the
// oldest leaves, so runs are dropped whole from their newest step back and a
// stored node never loses its parent. n <= 0 leaves the store unbounded.
func WithMaxNodes(n int) MemoryOption {
	return func(s *MemoryStorer) { s.maxNodes = max(n, 0) }
}

// NewMemoryStorer creates an empty in-memory store.
func NewMemoryStorer(opts ...MemoryOption) *MemoryStorer {
	s := &MemoryStorer{
		nodes:    make(map[string]*Node),
		children: make(map[string]int),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Len returns the number of stored nodes.
func (s *MemoryStorer) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.nodes)
}

func (s *MemoryStorer) Put(_ context.Context, node *Node) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.nodes[node.Hash]; ok {
		return nil
	}
	s.nodes[node.Hash] = node
	s.order = append(s.order, node.Hash)
	if node.ParentHash != nil {
		s.children[*node.ParentHash]++
	}
	s.evict(node.Hash)
	return nil
}

// evict removes the oldest leaves other than keep until the store fits
// maxNodes. Callers must hold mu.
func (s *MemoryStorer) evict(keep string) {
	if s.maxNodes == 0 {
		return
	}

	for len(s.nodes) > s.maxNodes {
		i := slices.IndexFunc(s.order, func(hash string) bool {
			return hash != keep && s.children[hash] == 0
		})
		if i < 0 {
			return
		}

		hash := s.order[i]
		node := s.nodes[hash]
		s.order = slices.Delete(s.order, i, i+1)
		delete(s.nodes, hash)
		delete(s.children, hash)
		if node.ParentHash != nil {
			s.children[*node.ParentHash]--
		}
	}
}

func (s *MemoryStorer) Get(_ context.Context, hash string) (*Node, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	node, ok := s.nodes[hash]
	if !ok {
		return nil, ErrNotFound{Hash: hash}
	}
	return node, nil
}

func (s *MemoryStorer) Has(_ context.Context, hash string) (bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	_, ok := s.nodes[hash]
	return ok, nil
}

func (s *MemoryStorer) GetByParent(_ context.Context, parentHash *string) ([]*Node, error) {
	return s.filter(func(n *Node) bool {
		if parentHash == nil {
			return n.ParentHash == nil
		}
		return n.ParentHash != nil && *n.ParentHash == *parentHash
	}), nil
}

func (s *MemoryStorer) List(_ context.Context) ([]*Node, error) {
	return s.filter(func(*Node) bool { return true }), nil
}

func (s *MemoryStorer) Roots(ctx context.Context) ([]*Node, error) {
	return s.GetByParent(ctx, nil)
}

func (s *MemoryStorer) Leaves(_ context.Context) ([]*Node, error) {
	return s.filter(func(n *Node) bool { return s.children[n.Hash] == 0 }), nil
}

func (s *MemoryStorer) Ancestry(_ context.Context, hash string) ([]*Node, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var path []*Node
	for next := &hash; next != nil; {
		node, ok := s.nodes[*next]
		if !ok {
			return nil, ErrNotFound{Hash: *next}
		}
		path = append(path, node)
		next = node.ParentHash
	}
	return path, nil
}

func (s *MemoryStorer) Depth(ctx context.Context, hash string) (int, error) {
	path, err := s.Ancestry(ctx, hash)
	if err != nil {
		return 0, err
	}
	return len(path) - 1, nil
}

func (s *MemoryStorer) Close() error {
	return nil
}

// filter returns matching nodes in insertion order. Callers must not hold mu.
func (s *MemoryStorer) filter(match func(*Node) bool) []*Node {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]*Node, 0)
	for _, hash := range s.order {
		if n := s.nodes[hash]; match(n) {
			out = append(out, n)
		}
	}
	return out
}
