// Package crags resolves and normalizes crag names.
//
// theCrag stores the location of an ascent as a hierarchical path, broad to
// specific, joined by " - ":
//
//	Frankenjura - Sektor A - Upper part
//
// Such paths mix genuine crag names with generic in-crag sector labels. The
// Resolver picks the crag name using a stoplist of sector labels plus a small
// override table for crags whose canonical name sits elsewhere in the path.
package crags

import (
	"fmt"
	"sort"
	"strings"

	"github.com/agentstation/cragsync/pkg/constants"
	"github.com/agentstation/cragsync/pkg/errors"
)

// Overrides maps a literal node name to the 1-based depth, counted from the
// start of the full path, of the node that names the crag.
type Overrides map[string]int

// defaultStoplist holds generic sub-area labels that denote sectors, not crags.
var defaultStoplist = []string{
	"Upper part",
	"Lower part",
	"Left",
	"Right",
	"Middle",
	"Centre",
	"East",
	"West",
}

// defaultOverrides holds crags whose canonical name is not the deepest
// non-sector node.
var defaultOverrides = Overrides{
	"Geyikbayırı": 1,
}

// DefaultStoplist returns a copy of the built-in stoplist.
func DefaultStoplist() []string {
	out := make([]string, len(defaultStoplist))
	copy(out, defaultStoplist)
	return out
}

// DefaultOverrides returns a copy of the built-in override table.
func DefaultOverrides() Overrides {
	out := make(Overrides, len(defaultOverrides))
	for name, depth := range defaultOverrides {
		out[name] = depth
	}
	return out
}

// Resolver extracts a single crag name from a crag path. It is immutable
// after construction and safe to share.
type Resolver struct {
	stoplist  map[string]struct{}
	overrides Overrides
}

// NewResolver builds a Resolver from a stoplist and an override table.
// Override depths must be positive.
func NewResolver(stoplist []string, overrides Overrides) (*Resolver, error) {
	r := &Resolver{
		stoplist:  make(map[string]struct{}, len(stoplist)),
		overrides: make(Overrides, len(overrides)),
	}
	for _, label := range stoplist {
		r.stoplist[label] = struct{}{}
	}
	for name, depth := range overrides {
		if depth < 1 {
			return nil, errors.NewConfigError("overrides",
				fmt.Sprintf("depth for %q must be at least 1, got %d", name, depth), errors.ErrInvalidInput)
		}
		r.overrides[name] = depth
	}
	return r, nil
}

// DefaultResolver returns a Resolver using the built-in tables.
func DefaultResolver() *Resolver {
	r, _ := NewResolver(defaultStoplist, defaultOverrides)
	return r
}

// Stoplist returns the sorted stoplist labels.
func (r *Resolver) Stoplist() []string {
	out := make([]string, 0, len(r.stoplist))
	for label := range r.stoplist {
		out = append(out, label)
	}
	sort.Strings(out)
	return out
}

// Overrides returns a copy of the override table.
func (r *Resolver) Overrides() Overrides {
	out := make(Overrides, len(r.overrides))
	for name, depth := range r.overrides {
		out[name] = depth
	}
	return out
}

// Resolve returns the crag name for path, or "" when the path is empty or
// consists only of stoplisted labels.
//
//	path empty                        -> ""
//	override hit, depth within path   -> node at depth
//	override hit, depth beyond path   -> stoplist result
//	otherwise                         -> last node after dropping stoplisted tail ("" if none left)
//
// Only the override key nearest the specific end is consulted. When its depth
// is out of range, override keys closer to the root are not tried.
func (r *Resolver) Resolve(path string) string {
	nodes := SplitPath(path)
	if len(nodes) == 0 {
		return ""
	}
	if name, ok := r.override(nodes); ok {
		return name
	}
	return r.trimStoplist(nodes)
}

// override scans nodes from the end for the first override key.
func (r *Resolver) override(nodes []string) (string, bool) {
	for i := len(nodes) - 1; i >= 0; i-- {
		depth, ok := r.overrides[nodes[i]]
		if !ok {
			continue
		}
		if depth > len(nodes) {
			return "", false
		}
		return nodes[depth-1], true
	}
	return "", false
}

// trimStoplist drops trailing stoplisted nodes and returns the last survivor.
func (r *Resolver) trimStoplist(nodes []string) string {
	for i := len(nodes) - 1; i >= 0; i-- {
		if _, stop := r.stoplist[nodes[i]]; !stop {
			return nodes[i]
		}
	}
	return ""
}

// SplitPath splits a crag path into its nodes. Surrounding whitespace is
// trimmed from every node; an empty path yields no nodes.
func SplitPath(path string) []string {
	path = strings.TrimSpace(path)
	if path == "" {
		return nil
	}
	parts := strings.Split(path, constants.PathDelimiter)
	nodes := make([]string, 0, len(parts))
	for _, part := range parts {
		nodes = append(nodes, strings.TrimSpace(part))
	}
	return nodes
}
