package encode

import "github.com/alvawei/smerge-sub000/format"

type EncodeOption func(*EncState)

func EncodeFormat(f format.Format) EncodeOption {
	return func(es *EncState) { es.format = f }
}

// EncodeComments controls whether comments are written.  It defaults to
// true.
func EncodeComments(v bool) EncodeOption {
	return func(es *EncState) { es.comments = v }
}

// EncodeIndent sets the YAML indentation width.
func EncodeIndent(n int) EncodeOption {
	return func(es *EncState) { es.indent = n }
}

// FormatFromOpts extracts the format from encode options.
func FormatFromOpts(opts ...EncodeOption) format.Format {
	es := &EncState{}
	for _, opt := range opts {
		opt(es)
	}
	return es.format
}
