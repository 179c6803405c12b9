// Copyright (c) 2026 The nemkit developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package id

import "github.com/decred/dcrd/container/lru"

// PathCache memoizes namespace paths by fully qualified name.  Only successful
// derivations are cached.
//
// It is safe for concurrent use.
type PathCache struct {
	paths *lru.Map[string, []NamespaceID]
}

// NewPathCache returns a cache that holds the paths of at most limit names,
// evicting the least recently used name once the limit is reached.
func NewPathCache(limit uint32) *PathCache {
	return &PathCache{paths: lru.NewMap[string, []NamespaceID](limit)}
}

// NamespacePath returns the path for name, deriving and caching it when it is
// not already cached.  The returned slice is a copy owned by the caller.
func (c *PathCache) NamespacePath(name string) ([]NamespaceID, error) {
	if path, ok := c.paths.Get(name); ok {
		return append([]NamespaceID(nil), path...), nil
	}
	path, err := GenerateNamespacePath(name)
	if err != nil {
		return nil, err
	}
	c.paths.Put(name, path)
	return append([]NamespaceID(nil), path...), nil
}

// NamespaceID returns the id of the deepest level of name.
func (c *PathCache) NamespaceID(name string) (NamespaceID, error) {
	path, err := c.NamespacePath(name)
	if err != nil {
		return 0, err
	}
	return path[len(path)-1], nil
}

// Len returns the number of cached names.
func (c *PathCache) Len() uint32 {
	return c.paths.Len()
}
