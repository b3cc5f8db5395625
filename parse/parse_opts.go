package parse

import "github.com/alvawei/smerge-sub000/format"

type parseOpts struct {
	format   format.Format
	comments bool
}

type ParseOption func(*parseOpts)

func ParseYAML() ParseOption {
	return ParseFormat(format.YAMLFormat)
}
func ParseJSON() ParseOption {
	return ParseFormat(format.JSONFormat)
}
func ParseFormat(f format.Format) ParseOption {
	return func(o *parseOpts) { o.format = f }
}

// ParseComments controls whether comment keys are kept.  It defaults to
// true.
func ParseComments(v bool) ParseOption {
	return func(o *parseOpts) { o.comments = v }
}
