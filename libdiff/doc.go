// Package libdiff computes edit scripts between two syntax trees.
//
// # Usage
//
//	// Flatten both trees and compute the script turning base into edited
//	res := libdiff.Diff(flat.New(base), flat.New(edited))
//
//	// Inspect it
//	for _, line := range libdiff.Describe(res) {
//	    fmt.Println(line)
//	}
//
// # Algorithm
//
// Diff is a minimum cost ordered tree edit distance over the pre-order
// layout produced by package flat.  Edits are leaf level (align or replace,
// delete, insert, all of cost 1 except a zero cost alignment of shallowly
// equal nodes) but depth constraints forbid deleting or inserting a node
// "through" a deeper node which aligns elsewhere.  As a consequence the
// recovered script reads back as whole subtree operations.
//
// Inserts are only addressable inside lists.  An insert which does not land
// in a list turns into a replacement of its nearest aligned ancestor.
//
// # Related Packages
//
//   - github.com/alvawei/smerge-sub000/flat - pre-order layout and list wrappers
//   - github.com/alvawei/smerge-sub000/merge - applies two results onto a base tree
package libdiff
