// Package render turns typed documentation content nodes into HTML
// fragments. Each node type is owned by exactly one component factory;
// the Manager dispatches nodes to factories and post-processes the
// assembled output (copy buttons, syntax highlighting).
package render

import "showfolio/internal/content"

// RenderFunc renders a sequence of content nodes under the given parent
// element id. Subsection factories use it to render nested content.
type RenderFunc func(nodes []content.Node, parentID string) string

// Factory builds the HTML fragment for one content-node type.
// Create returns the empty string, not an error, for node types the
// factory does not own, so the dispatcher can probe factories safely.
type Factory interface {
	CanCreate(typ string) bool
	Create(item *content.Node) string
}
