package tree

import (
	"sync"
)

// LettersDefinition is the international code tree for A-Z only
const LettersDefinition = "((((H S V) I (F U -)) E ((L R -) A (P W J))) * (((B D X) N (C K Y)) T ((Z G Q) M O)))"

// DefaultDefinition is the international code tree for A-Z and 0-9. The
// digit-only paths ..--, ---. and ---- go through placeholder nodes.
const DefaultDefinition = "(((((5 H 4) S (- V 3)) I (F U (- - 2))) E ((L R -) A (P W (- J 1)))) * " +
	"((((6 B -) D X) N (C K Y)) T (((7 Z -) G Q) M ((8 - -) O (9 - 0)))))"

var defaultTree = sync.OnceValue(func() *Node {
	return MustParse(DefaultDefinition)
})

// Default returns the parsed default tree. The tree is shared and must not
// be modified.
func Default() *Node {
	return defaultTree()
}
