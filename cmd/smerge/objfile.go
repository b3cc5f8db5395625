package main

import (
	"bytes"
	"fmt"
	"io"
	"os"

	"github.com/alvawei/smerge-sub000/ast"
	"github.com/alvawei/smerge-sub000/config"
	"github.com/alvawei/smerge-sub000/encode"
	"github.com/alvawei/smerge-sub000/format"
	"github.com/alvawei/smerge-sub000/parse"

	"github.com/hashicorp/go-multierror"
)

// runner carries what a command needs once options are resolved.
type runner struct {
	cfg         *config.Config
	in          io.Reader
	out, errOut io.Writer
	colors      *Colors

	inFormat, outFormat *format.Format
}

func (r *runner) parseOpts() []parse.ParseOption {
	if r.inFormat == nil {
		return nil
	}
	return []parse.ParseOption{parse.ParseFormat(*r.inFormat)}
}

func (r *runner) getObjFile(path string) (*ast.Node, error) {
	if path != "-" {
		return parse.ParseFile(path, r.parseOpts()...)
	}
	d, err := io.ReadAll(r.in)
	if err != nil {
		return nil, fmt.Errorf("error reading stdin: %w", err)
	}
	n, err := parse.Parse(d, r.parseOpts()...)
	if err != nil {
		return nil, fmt.Errorf("stdin: %w", err)
	}
	return n, nil
}

// getObjFiles reads all of paths, reporting every input which fails.
func (r *runner) getObjFiles(paths ...string) ([]*ast.Node, error) {
	var merr *multierror.Error
	res := make([]*ast.Node, len(paths))
	for i, path := range paths {
		n, err := r.getObjFile(path)
		if err != nil {
			merr = multierror.Append(merr, err)
			continue
		}
		res[i] = n
	}
	if err := merr.ErrorOrNil(); err != nil {
		return nil, err
	}
	return res, nil
}

// outFormatFor picks the -O format, else the one named by the extension
// of path, else the configured one.
func (r *runner) outFormatFor(path string) format.Format {
	if r.outFormat != nil {
		return *r.outFormat
	}
	if f, ok := format.FromExt(path); ok {
		return f
	}
	return r.cfg.Format
}

// putObjFile encodes n completely before writing anything to path.
func (r *runner) putObjFile(path string, n *ast.Node) error {
	buf := bytes.NewBuffer(nil)
	if err := encode.Encode(n, buf, encode.EncodeFormat(r.outFormatFor(path))); err != nil {
		return err
	}
	if path == "-" {
		_, err := r.out.Write(buf.Bytes())
		return err
	}
	return os.WriteFile(path, buf.Bytes(), 0o644)
}
