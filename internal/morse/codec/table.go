package codec

import (
	"github.com/msto63/morsetree/internal/morse/tree"
)

// Entry pairs a symbol with its code
type Entry struct {
	Symbol string `json:"symbol" yaml:"symbol"`
	Code   string `json:"code" yaml:"code"`
}

// Table lists every encodable symbol of the tree in depth-first order,
// dot branch first. The root and placeholders are skipped.
func Table(root *tree.Node) []Entry {
	var entries []Entry
	collect(root, "", &entries)
	return entries
}

func collect(n *tree.Node, code string, entries *[]Entry) {
	if n == nil {
		return
	}
	if code != "" && !n.IsPlaceholder() {
		*entries = append(*entries, Entry{Symbol: n.Symbol, Code: code})
	}
	collect(n.Left, code+string(Dot), entries)
	collect(n.Right, code+string(Dash), entries)
}
