package axisml

import "strconv"

// NodeKind discriminates the node kinds of a document tree.
type NodeKind byte

const (
	NodeDocument NodeKind = iota
	NodeElement
	NodeAttribute
	NodeText
	NodeComment
	NodeProcInst
	NodeDoctype
)

func (k NodeKind) String() string {
	switch k {
	case NodeDocument:
		return "document"
	case NodeElement:
		return "element"
	case NodeAttribute:
		return "attribute"
	case NodeText:
		return "text"
	case NodeComment:
		return "comment"
	case NodeProcInst:
		return "proc-inst"
	case NodeDoctype:
		return "doctype"
	}
	return "unknown"
}

// Node is one node of a document tree. Elements own ordered children and
// an ordered list of attribute nodes; the parent link is a non-owning
// back-reference (nil for the root, the owning element for attributes).
// Trees are read-only once built; concurrent axis reads are safe as long
// as nobody mutates the tree.
type Node struct {
	Kind     NodeKind
	Name     Name
	Value    string
	Parent   *Node
	Children []*Node
	Attrs    []*Node
}

func (n *Node) String() string {
	switch n.Kind {
	case NodeDocument:
		return "#document"
	case NodeElement:
		return "<" + n.Name.String() + ">"
	case NodeAttribute:
		return "@" + n.Name.String() + "=" + strconv.Quote(n.Value)
	case NodeText:
		return strconv.Quote(n.Value)
	case NodeComment:
		return "<!--" + n.Value + "-->"
	case NodeProcInst:
		return "<?" + n.Name.Local + "?>"
	case NodeDoctype:
		return "<!DOCTYPE>"
	}
	return "?"
}

// NewElement creates a detached element node.
func NewElement(name string) *Node {
	return &Node{Kind: NodeElement, Name: Name{Local: name}}
}

// NewText creates a detached text node.
func NewText(value string) *Node {
	return &Node{Kind: NodeText, Value: value}
}

// Append attaches children to n in order, setting their parent links,
// and returns n.
func (n *Node) Append(children ...*Node) *Node {
	for _, c := range children {
		c.Parent = n
		n.Children = append(n.Children, c)
	}
	return n
}

// SetAttr appends an attribute node to n and returns n. Attributes keep
// declaration order.
func (n *Node) SetAttr(name, value string) *Node {
	a := &Node{Kind: NodeAttribute, Name: Name{Local: name}, Value: value, Parent: n}
	n.Attrs = append(n.Attrs, a)
	return n
}

// treeRec is one flattened token collected before the arena is sized.
type treeRec struct {
	kind        NodeKind
	name        Name
	value       string
	attrs       []Attr
	selfClosing bool
	endTag      bool
}

// BuildTree parses text into a document tree. All nodes live in one
// contiguous arena; links are plain pointers into it. The tree is
// best-effort: malformed input is skipped token-wise (see Reader),
// stray end tags are ignored and elements left open at the end of the
// input are closed implicitly. The root is always a document node.
// CDATA sections become text nodes.
func BuildTree(text string, opts ...ReaderOption) *Node {
	r := NewReader(text, opts...)

	var recs []treeRec
	total := 1 // the document node
	for r.Next() {
		switch r.Kind() {
		case TokenStartElement:
			attrs := make([]Attr, len(r.Attrs()))
			copy(attrs, r.Attrs())
			recs = append(recs, treeRec{
				kind:        NodeElement,
				name:        r.Name(),
				attrs:       attrs,
				selfClosing: r.SelfClosing(),
			})
			total += 1 + len(attrs)
		case TokenEndElement:
			recs = append(recs, treeRec{endTag: true})
		case TokenText, TokenCDATA:
			recs = append(recs, treeRec{kind: NodeText, value: r.Value()})
			total++
		case TokenComment:
			recs = append(recs, treeRec{kind: NodeComment, value: r.Value()})
			total++
		case TokenProcInst:
			recs = append(recs, treeRec{
				kind:  NodeProcInst,
				name:  Name{Local: r.Target()},
				value: r.Value(),
			})
			total++
		case TokenDoctype:
			recs = append(recs, treeRec{kind: NodeDoctype, value: r.Value()})
			total++
		}
	}

	arena := make([]Node, total)
	doc := &arena[0]
	doc.Kind = NodeDocument
	next := 1

	stack := []*Node{doc}
	for _, rec := range recs {
		if rec.endTag {
			if len(stack) > 1 {
				stack = stack[:len(stack)-1]
			}
			continue
		}
		n := &arena[next]
		next++
		n.Kind = rec.kind
		n.Name = rec.name
		n.Value = rec.value
		parent := stack[len(stack)-1]
		n.Parent = parent
		parent.Children = append(parent.Children, n)
		if rec.kind != NodeElement {
			continue
		}
		for _, attr := range rec.attrs {
			a := &arena[next]
			next++
			a.Kind = NodeAttribute
			a.Name = attr.Name
			a.Value = attr.Value
			a.Parent = n
			n.Attrs = append(n.Attrs, a)
		}
		if !rec.selfClosing {
			stack = append(stack, n)
		}
	}
	return doc
}
