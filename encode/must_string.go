package encode

import (
	"bytes"
	"strings"

	"github.com/alvawei/smerge-sub000/ast"
)

func MustString(node *ast.Node, opts ...EncodeOption) string {
	buf := bytes.NewBuffer(nil)
	if err := Encode(node, buf, opts...); err != nil {
		panic(err)
	}
	return strings.TrimSpace(buf.String())
}
