// Package format names the document formats trees are read and written
// in.
//
// # Usage
//
//	f, err := format.ParseFormat("json")
//	f = format.FromPath("base.yaml")
//
// # Related Packages
//
//   - github.com/alvawei/smerge-sub000/parse - Parse documents to trees
//   - github.com/alvawei/smerge-sub000/encode - Encode trees to documents
package format
