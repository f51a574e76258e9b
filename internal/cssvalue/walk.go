package cssvalue

// Walk visits nodes depth-first in source order. Returning false from fn
// prunes the node's children.
func Walk(nodes []Node, fn func(Node) bool) {
	for _, n := range nodes {
		if !fn(n) {
			continue
		}
		if f, ok := n.(*Function); ok {
			Walk(f.Args, fn)
		}
	}
}

// ForEachValue parses text and calls fn for every node that extract accepts,
// left to right. Nodes for which skip returns true are pruned together with
// their subtree, and a node that extract accepts is not descended into.
// Malformed text yields no callbacks.
func ForEachValue[T any](text string, extract func(*Value, Node) (T, bool), skip func(Node) bool, fn func(T, Span)) {
	v, err := Parse(text)
	if err != nil {
		return
	}
	Walk(v.Nodes, func(n Node) bool {
		if skip != nil && skip(n) {
			return false
		}
		if out, ok := extract(v, n); ok {
			fn(out, n.Span())
			return false
		}
		return true
	})
}

// IsVarFunction reports whether n is a var(...) call.
func IsVarFunction(n Node) bool {
	f, ok := n.(*Function)
	return ok && f.Name == "var"
}

// IsWrappedInVar reports whether the whole of text is a single var(...) call.
func IsWrappedInVar(text string) bool {
	v, err := Parse(text)
	if err != nil || len(v.Nodes) != 1 {
		return false
	}
	return IsVarFunction(v.Nodes[0])
}
