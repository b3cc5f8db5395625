// Package encode writes trees as YAML or JSON documents in the form read
// by package parse.
//
// # Usage
//
//	err := encode.Encode(node, os.Stdout)
//
//	// JSON, without comments
//	err = encode.Encode(node, w, encode.EncodeFormat(format.JSONFormat), encode.EncodeComments(false))
//
// Fields are written in order after the attribute keys, so parsing the
// output gives back an equal tree.
//
// # Related Packages
//
//   - github.com/alvawei/smerge-sub000/parse - Parse documents to trees
//   - github.com/alvawei/smerge-sub000/format - Document formats
package encode
