package pith

// Parser builds a navigable Document from raw markup. Implementations hide
// the tree-builder library; any conformant builder suffices.
type Parser interface {
	Parse(markup string) (Document, error)
}

// Document is a parsed, navigable markup tree.
type Document interface {
	// Root returns the document's root element.
	Root() Node

	// Find returns all elements matching the CSS selector in document
	// order. Returns EINVALID for selectors the engine cannot compile.
	Find(selector string) ([]Node, error)

	// Title returns the text of the document's <title> element.
	Title() string

	// HTML serializes the current state of the tree.
	HTML() (string, error)

	// Clone returns a deep copy sharing no mutable state with the
	// receiver, so destructive passes can run without touching the
	// original.
	Clone() (Document, error)
}

// Attribute is a single name/value attribute of a Node.
type Attribute struct {
	Key string
	Val string
}

// Node is one element of a Document. Mutating methods act directly on the
// underlying tree.
type Node interface {
	// Tag returns the lowercase element name.
	Tag() string

	// Text returns the concatenated visible descendant text. Script,
	// style and template content is not text.
	Text() string

	// HTML serializes the element including its own tags.
	HTML() (string, error)

	Attr(name string) (string, bool)
	SetAttr(name, value string)
	RemoveAttr(name string)
	Attrs() []Attribute

	// Parent returns the parent element, or false at the root.
	Parent() (Node, bool)

	// Children returns the element children in order, skipping text nodes.
	Children() []Node

	// Find returns matching descendant elements in document order.
	// Returns EINVALID for selectors the engine cannot compile.
	Find(selector string) ([]Node, error)

	// Is reports whether the element matches the selector. Invalid
	// selectors match nothing.
	Is(selector string) bool

	// Closest returns the nearest ancestor-or-self matching the selector,
	// or false when no ancestor matches or the selector is invalid.
	Closest(selector string) (Node, bool)

	// SameNode reports whether other refers to the same underlying element.
	// Two handles to one element compare equal even when obtained through
	// different traversals.
	SameNode(other Node) bool

	// Remove detaches the element and its subtree from the document.
	Remove()

	// Bounds returns the element's coarse layout rectangle. Bounds are a
	// heuristic signal derived by the tree builder, not rendered geometry.
	Bounds() Rect
}
