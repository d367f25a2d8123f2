package encode

import (
	"bytes"
	"strings"

	"github.com/signadot/go-jsondom/dom"
)

func MustString(v *dom.Value, opts ...EncodeOption) string {
	buf := bytes.NewBuffer(nil)
	if err := Encode(v, buf, opts...); err != nil {
		panic(err)
	}
	return strings.TrimSpace(buf.String())
}
