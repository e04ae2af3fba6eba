package rpc

import (
	"slices"
	"sync/atomic"
)

// Resolver orders the node URLs the client tries. It is immutable apart
// from the rotation cursor and safe for concurrent use.
type Resolver struct {
	forced string
	nodes  []string
	next   atomic.Uint32
}

// NewResolver builds a resolver. When forced is non-empty it is the only
// candidate and nodes are ignored.
func NewResolver(forced string, nodes []string) *Resolver {
	return &Resolver{
		forced: forced,
		nodes:  slices.Clone(nodes),
	}
}

// Forced returns the forced node URL or "".
func (r *Resolver) Forced() string {
	return r.forced
}

// Candidates returns the URLs to try, starting with the node that last
// answered.
func (r *Resolver) Candidates() []string {
	if r.forced != "" {
		return []string{r.forced}
	}
	if len(r.nodes) == 0 {
		return nil
	}

	start := int(r.next.Load()) % len(r.nodes)
	out := make([]string, 0, len(r.nodes))
	out = append(out, r.nodes[start:]...)
	return append(out, r.nodes[:start]...)
}

// MarkHealthy makes url the first candidate of later calls.
func (r *Resolver) MarkHealthy(url string) {
	if i := slices.Index(r.nodes, url); i >= 0 {
		r.next.Store(uint32(i))
	}
}
