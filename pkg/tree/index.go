package tree

import (
	lru "github.com/hashicorp/golang-lru/v2"
)

// Index maps node ids to nodes for one root snapshot.
type Index map[string]*Node

// BuildIndex walks root once. When ids repeat, the first node in depth-first
// order wins, matching Find.
func BuildIndex(root *Node) Index {
	index := make(Index)
	Walk(root, func(node *Node, _ int) bool {
		if _, exists := index[node.ID]; !exists {
			index[node.ID] = node
		}
		return true
	})
	return index
}

// IndexCache memoises indexes keyed by root pointer. Roots are immutable, so
// an entry can never go stale; it only ages out.
type IndexCache struct {
	cache *lru.Cache[*Node, Index]
}

// NewIndexCache keeps indexes for the size most recently used roots.
func NewIndexCache(size int) (*IndexCache, error) {
	if size <= 0 {
		size = 8
	}
	cache, err := lru.New[*Node, Index](size)
	if err != nil {
		return nil, err
	}
	return &IndexCache{cache: cache}, nil
}

// Index returns the cached index for root, building it on a miss.
func (c *IndexCache) Index(root *Node) Index {
	if root == nil {
		return Index{}
	}
	if c == nil || c.cache == nil {
		return BuildIndex(root)
	}
	if index, ok := c.cache.Get(root); ok {
		return index
	}
	index := BuildIndex(root)
	c.cache.Add(root, index)
	return index
}

// Lookup resolves id against root.
func (c *IndexCache) Lookup(root *Node, id string) (*Node, bool) {
	if id == "" {
		return nil, false
	}
	node, ok := c.Index(root)[id]
	return node, ok
}

// Len reports how many snapshots are cached.
func (c *IndexCache) Len() int {
	if c == nil || c.cache == nil {
		return 0
	}
	return c.cache.Len()
}
