// Package tree holds the binary code tree behind the Morse codec.
//
// A tree is written as a one-line s-expression:
//
//	node := "-"                          absent branch
//	      | token                        leaf labeled token
//	      | "(" node symbol node ")"     inner node, dot branch left, dash branch right
//
// The root must carry the marker "*". A node labeled "-" is a placeholder that
// only exists to hold deeper codes, e.g. the "..--" step on the way to "2".
package tree
