package latex

// Tree is a parsed document. It owns all nodes and indexes them by ID.
type Tree struct {
	Root  *Node
	nodes []*Node
}

func newTree() *Tree {
	t := &Tree{}
	t.Root = t.node(DocumentKind)
	return t
}

// node allocates a new node with the next ID
func (t *Tree) node(kind Kind) *Node {
	n := &Node{ID: len(t.nodes) + 1, Kind: kind}
	t.nodes = append(t.nodes, n)
	return n
}

// nodeFrom allocates a new node with data of a token
func (t *Tree) nodeFrom(kind Kind, tok Token) *Node {
	n := t.node(kind)
	n.Name = tok.Name
	n.Content = tok.Content
	n.Options = tok.Options
	n.Args = tok.Args
	n.Label = tok.Label
	n.Ref = tok.Ref
	n.Source = tok.Source
	n.Body = tok.Body
	n.Line = tok.Line
	n.Star = tok.Star

	if tok.Class != "" {
		n.Class = []string{tok.Class}
	}

	return n
}

// remove drops node from the index, the node must not be referenced by the tree anymore
func (t *Tree) remove(n *Node) {
	if n.ID > 0 && n.ID <= len(t.nodes) {
		t.nodes[n.ID-1] = nil
	}
}

func attach(parent, child *Node) {
	child.Parent = parent.ID
	parent.Children = append(parent.Children, child)
}

// Node returns node by ID, nil if there is no such node.
func (t *Tree) Node(id int) *Node {
	if id <= 0 || id > len(t.nodes) {
		return nil
	}

	return t.nodes[id-1]
}

// Parent returns parent of the node, nil for the root.
func (t *Tree) Parent(n *Node) *Node {
	return t.Node(n.Parent)
}

// Len returns number of nodes in the tree.
func (t *Tree) Len() int {
	count := 0
	for _, n := range t.nodes {
		if n != nil {
			count++
		}
	}

	return count
}

// Walk visits nodes in document order. Children of a node are skipped when fn returns false.
func (t *Tree) Walk(fn func(n *Node) bool) {
	walk(t.Root, fn)
}

func walk(n *Node, fn func(n *Node) bool) {
	if !fn(n) {
		return
	}

	for _, child := range n.Children {
		walk(child, fn)
	}
}

// Find returns nodes of a given kind in document order.
func (t *Tree) Find(kind Kind) (nodes []*Node) {
	t.Walk(func(n *Node) bool {
		if n.Kind == kind {
			nodes = append(nodes, n)
		}

		return true
	})

	return
}
