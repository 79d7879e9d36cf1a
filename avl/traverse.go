package avl

import (
	"fmt"
	"io"
	"strings"
)

// keysInto appends the in-order key sequence of the subtree rooted at
// n onto out, which the caller pre-sizes to the container's count
// (spec §4.4: "a pre-sized output container of exactly size() slots").
// Traversal is eager; avl offers no lazy or structural iterator.
func keysInto[K, P any](n *node[K, P], out []K) []K {
	if n == nil {
		return out
	}
	out = keysInto(n.left, out)
	out = append(out, n.key)
	out = keysInto(n.right, out)
	return out
}

// printNode writes an indented, right-subtree-first dump of n to w,
// formatting each node with format.
func printNode[K, P any](w io.Writer, n *node[K, P], depth int, format func(K, P) string) {
	if n == nil {
		return
	}
	printNode(w, n.right, depth+1, format)
	fmt.Fprintf(w, "%s%s\n", strings.Repeat("    ", depth), format(n.key, n.payload))
	printNode(w, n.left, depth+1, format)
}
