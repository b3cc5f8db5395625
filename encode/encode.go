package encode

import (
	"errors"
	"fmt"
	"io"

	"github.com/alvawei/smerge-sub000/ast"
	"github.com/alvawei/smerge-sub000/format"
	"github.com/alvawei/smerge-sub000/parse"

	"github.com/goccy/go-yaml"
)

var ErrEncode = errors.New("encode error")

type EncState struct {
	indent   int
	comments bool
	format   format.Format
}

// Encode writes node to w.  A nil node is written as null.
func Encode(node *ast.Node, w io.Writer, opts ...EncodeOption) error {
	es := &EncState{
		indent:   2,
		comments: true,
	}
	for _, opt := range opts {
		opt(es)
	}
	var doc any
	if node != nil {
		ms, err := es.node(node, "$")
		if err != nil {
			return err
		}
		doc = ms
	}
	yOpts := []yaml.EncodeOption{yaml.Indent(es.indent)}
	if es.format.IsJSON() {
		yOpts = append(yOpts, yaml.JSON())
	} else {
		yOpts = append(yOpts, yaml.UseLiteralStyleIfMultiline(true))
	}
	d, err := yaml.MarshalWithOptions(doc, yOpts...)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrEncode, err)
	}
	if len(d) == 0 || d[len(d)-1] != '\n' {
		d = append(d, '\n')
	}
	_, err = w.Write(d)
	return err
}

func (es *EncState) node(n *ast.Node, at string) (yaml.MapSlice, error) {
	ms := yaml.MapSlice{{Key: "kind", Value: n.Kind.String()}}
	if n.Value != "" || n.Kind.HasValue() {
		ms = append(ms, yaml.MapItem{Key: "value", Value: n.Value})
	}
	if len(n.Modifiers) != 0 {
		ms = append(ms, yaml.MapItem{Key: "modifiers", Value: []string(n.Modifiers)})
	}
	if es.comments && n.Comment != "" {
		ms = append(ms, yaml.MapItem{Key: "comment", Value: n.Comment})
	}
	for i := range n.Fields {
		fld := &n.Fields[i]
		fat := at + "." + fld.Name
		if parse.IsReserved(fld.Name) {
			return nil, fmt.Errorf("%w: %s: field name is reserved", ErrEncode, fat)
		}
		switch {
		case fld.List:
			items := make([]any, len(fld.Items))
			for k, item := range fld.Items {
				if item == nil {
					return nil, fmt.Errorf("%w: %s[%d]: nil list member", ErrEncode, fat, k)
				}
				y, err := es.node(item, fmt.Sprintf("%s[%d]", fat, k))
				if err != nil {
					return nil, err
				}
				items[k] = y
			}
			ms = append(ms, yaml.MapItem{Key: fld.Name, Value: items})
		case fld.Node == nil:
			ms = append(ms, yaml.MapItem{Key: fld.Name, Value: nil})
		default:
			y, err := es.node(fld.Node, fat)
			if err != nil {
				return nil, err
			}
			ms = append(ms, yaml.MapItem{Key: fld.Name, Value: y})
		}
	}
	return ms, nil
}
