package encode

import (
	"io"
	"math"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/signadot/go-jsondom/dom"
)

type EncState struct {
	line, col     int
	depth, indent int
	compact       bool

	Color func(dom.Type, ColorAttr, string) string
}

// Encode writes v to w as JSON, followed by a newline unless compact.
func Encode(v *dom.Value, w io.Writer, opts ...EncodeOption) error {
	es := &EncState{
		indent: 2,
	}
	for _, opt := range opts {
		opt(es)
	}
	if err := encode(v, w, es); err != nil {
		return err
	}
	if es.compact {
		return nil
	}
	return writeString(w, "\n")
}

// Helper functions for writing

func writeNL(w io.Writer, es *EncState) error {
	if es.compact {
		return nil
	}
	indentString := strings.Repeat(strings.Repeat(" ", es.indent), es.depth)
	if err := writeString(w, "\n"+indentString); err != nil {
		return err
	}
	es.line++
	es.col = len(indentString)
	return nil
}

func writeString(w io.Writer, s string) error {
	_, err := w.Write([]byte(s))
	return err
}

func writeCommaSeparator(w io.Writer, es *EncState, cType dom.Type) error {
	sep := ","
	es.col += len(sep)
	return writeString(w, applyColor(es, cType, SepColor, sep))
}

func writeFieldPrefix(name string, w io.Writer, es *EncState) error {
	field := quoteString(name)
	sep := ": "
	if es.compact {
		sep = ":"
	}
	es.col += len(field) + len(sep)
	field = applyColor(es, dom.ObjectType, FieldColor, field)
	return writeString(w, field+applyColor(es, dom.ObjectType, SepColor, sep))
}

// Color application helper

func applyColor(es *EncState, nodeType dom.Type, attr ColorAttr, v string) string {
	if es.Color == nil {
		return v
	}
	return es.Color(nodeType, attr, v)
}

// Main encode function

func encode(v *dom.Value, w io.Writer, es *EncState) error {
	switch v.Type() {
	case dom.ObjectType:
		return encodeObject(v, w, es)
	case dom.ArrayType:
		return encodeArray(v, w, es)
	case dom.StringType:
		return encodeString(v, w, es)
	case dom.IntType, dom.UintType, dom.RealType:
		return encodeNumber(v, w, es)
	case dom.BoolType:
		return encodeBool(v, w, es)
	default:
		return encodeNull(w, es)
	}
}

func encodeObject(v *dom.Value, w io.Writer, es *EncState) error {
	es.col++
	if err := writeString(w, "{"); err != nil {
		return err
	}
	es.depth++
	n := v.Len()
	i := 0
	var encErr error
	for name, el := range v.Items() {
		if encErr = writeNL(w, es); encErr != nil {
			break
		}
		if encErr = writeFieldPrefix(name, w, es); encErr != nil {
			break
		}
		if encErr = encode(el, w, es); encErr != nil {
			break
		}
		if i < n-1 {
			if encErr = writeCommaSeparator(w, es, dom.ObjectType); encErr != nil {
				break
			}
		}
		i++
	}
	if encErr != nil {
		return encErr
	}
	es.depth--
	if n != 0 {
		if err := writeNL(w, es); err != nil {
			return err
		}
	}
	es.col++
	return writeString(w, "}")
}

func encodeArray(v *dom.Value, w io.Writer, es *EncState) error {
	es.col++
	if err := writeString(w, "["); err != nil {
		return err
	}
	es.depth++
	n := v.Len()
	for i := 0; i < n; i++ {
		if err := writeNL(w, es); err != nil {
			return err
		}
		// holes read as null
		el := v.TryGet(i)
		var err error
		if el == nil {
			err = encodeNull(w, es)
		} else {
			err = encode(el, w, es)
		}
		if err != nil {
			return err
		}
		if i < n-1 {
			if err := writeCommaSeparator(w, es, dom.ArrayType); err != nil {
				return err
			}
		}
	}
	es.depth--
	if n != 0 {
		if err := writeNL(w, es); err != nil {
			return err
		}
	}
	es.col++
	return writeString(w, "]")
}

func encodeString(v *dom.Value, w io.Writer, es *EncState) error {
	s := quoteString(v.RawString())
	es.col += len(s)
	return writeString(w, applyColor(es, dom.StringType, ValueColor, s))
}

func encodeNumber(v *dom.Value, w io.Writer, es *EncState) error {
	var s string
	switch v.Type() {
	case dom.IntType:
		s = strconv.FormatInt(v.AsInt64(0), 10)
	case dom.UintType:
		s = strconv.FormatUint(v.AsUint64(0), 10)
	default:
		f := v.AsFloat64(0)
		if math.IsNaN(f) || math.IsInf(f, 0) {
			return encodeNull(w, es)
		}
		s = formatReal(f)
	}
	es.col += len(s)
	return writeString(w, applyColor(es, v.Type(), ValueColor, s))
}

// formatReal renders f in the shortest form that parses back to the
// same float64, keeping a decimal point or exponent so the text reads
// back as a real number rather than an integer.
func formatReal(f float64) string {
	s := strconv.FormatFloat(f, 'g', -1, 64)
	if !strings.ContainsAny(s, ".eE") {
		s += ".0"
	}
	return s
}

func encodeBool(v *dom.Value, w io.Writer, es *EncState) error {
	s := "false"
	if v.AsBool(false) {
		s = "true"
	}
	es.col += len(s)
	return writeString(w, applyColor(es, dom.BoolType, ValueColor, s))
}

func encodeNull(w io.Writer, es *EncState) error {
	es.col += len("null")
	return writeString(w, applyColor(es, dom.NullType, ValueColor, "null"))
}

// String quoting helper

const hexDigits = "0123456789abcdef"

// quoteString renders s as a JSON string literal. Control characters
// take their short escapes or \u00XX, and invalid UTF-8 is replaced
// with U+FFFD the way encoding/json does.
func quoteString(s string) string {
	var b strings.Builder
	b.Grow(len(s) + 2)
	b.WriteByte('"')
	for i := 0; i < len(s); {
		c := s[i]
		if c < utf8.RuneSelf {
			i++
			switch {
			case c == '"':
				b.WriteString(`\"`)
			case c == '\\':
				b.WriteString(`\\`)
			case c >= 0x20:
				b.WriteByte(c)
			case c == '\n':
				b.WriteString(`\n`)
			case c == '\r':
				b.WriteString(`\r`)
			case c == '\t':
				b.WriteString(`\t`)
			case c == '\b':
				b.WriteString(`\b`)
			case c == '\f':
				b.WriteString(`\f`)
			default:
				b.WriteString(`\u00`)
				b.WriteByte(hexDigits[c>>4])
				b.WriteByte(hexDigits[c&0xf])
			}
			continue
		}
		r, size := utf8.DecodeRuneInString(s[i:])
		if r == utf8.RuneError && size == 1 {
			b.WriteRune(utf8.RuneError)
			i++
			continue
		}
		b.WriteString(s[i : i+size])
		i += size
	}
	b.WriteByte('"')
	return b.String()
}
