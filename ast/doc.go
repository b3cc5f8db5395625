// Package ast provides the syntax tree representation merged by smerge.
//
// # Overview
//
// A syntax tree is a tree of [Node] values.  The tree is produced by a
// parser collaborator (see the parse package) and turned back into text by
// a printer collaborator (see the encode package).  Nothing in this package
// knows about source text; the tree is purely structural.
//
// # Node Structure
//
// A Node has
//
//   - a Kind from a closed enumeration (see [Kinds])
//   - a literal Value, meaningful for kinds where [Kind.HasValue] is true:
//     identifiers, qualified names, literals and operators
//   - an ordered sequence of named Fields.  A field is either a slot
//     holding at most one child, or a list holding any number of children.
//   - side channel attributes which are not children: a [Modifiers] set and
//     an attached Comment.
//
// Field order is significant.  It defines the pre-order of the tree which
// the differ works on.
//
// # Creating Nodes
//
//	cls := ast.New(ast.ClassKind).
//	    WithModifiers("public").
//	    WithSlot("name", ast.Name("Greeter")).
//	    WithList("members",
//	        ast.New(ast.MethodKind).WithSlot("name", ast.Name("hello")))
//
// # Equality
//
// [ShallowEqual] compares a node's own kind and value and is the cost
// function of the differ.  [Equal] compares whole subtrees including
// attributes.
package ast
