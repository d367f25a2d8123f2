package parse

import (
	"errors"
	"fmt"
	"strconv"
	"unicode/utf16"
	"unicode/utf8"
	"unsafe"

	"github.com/signadot/go-jsondom/debug"
	"github.com/signadot/go-jsondom/dom"
)

const defaultMaxDepth = 10000

// Parse reads d as a single RFC 8259 JSON text and builds the document
// tree. Trailing non-whitespace after the value is an error.
func Parse(d []byte, opts ...ParseOption) (*dom.Value, error) {
	pOpts := &parseOpts{maxDepth: defaultMaxDepth}
	for _, f := range opts {
		f(pOpts)
	}
	p := &parser{d: d, opts: pOpts}
	p.skipSpace()
	v, err := p.value()
	if err == nil {
		p.skipSpace()
		if p.off != len(p.d) {
			err = p.errf("trailing data after value")
		}
	}
	if err != nil {
		if debug.Parse() {
			debug.Logf("parse of %d bytes failed: %v\n", len(d), err)
		}
		return nil, err
	}
	return v, nil
}

// ParseString is Parse over a string.
func ParseString(s string, opts ...ParseOption) (*dom.Value, error) {
	return Parse([]byte(s), opts...)
}

type parser struct {
	d     []byte
	off   int
	depth int
	opts  *parseOpts

	// scratch holds decoded escape-bearing strings. Whatever aliases it
	// is valid only until the next string is scanned.
	scratch []byte
}

func (p *parser) pos() Pos { return Pos{I: p.off, d: p.d} }

func (p *parser) errf(format string, args ...any) error {
	return fmt.Errorf("%w: %s %s", ErrParse, fmt.Sprintf(format, args...), p.pos())
}

func (p *parser) push() error {
	p.depth++
	if p.depth > p.opts.maxDepth {
		return fmt.Errorf("%w: more than %d levels %s", ErrDepth, p.opts.maxDepth, p.pos())
	}
	return nil
}

func (p *parser) pop() { p.depth-- }

func (p *parser) skipSpace() {
	for p.off < len(p.d) {
		switch p.d[p.off] {
		case ' ', '\t', '\n', '\r':
			p.off++
		default:
			return
		}
	}
}

func (p *parser) value() (*dom.Value, error) {
	if p.off >= len(p.d) {
		return nil, p.errf("unexpected end of input")
	}
	switch c := p.d[p.off]; c {
	case '{':
		return p.object()
	case '[':
		return p.array()
	case '"':
		return p.stringValue()
	case 't':
		return p.literal("true", dom.FromBool(true))
	case 'f':
		return p.literal("false", dom.FromBool(false))
	case 'n':
		return p.literal("null", dom.Null())
	default:
		if c == '-' || '0' <= c && c <= '9' {
			return p.number()
		}
		return nil, p.errf("unexpected character %q", c)
	}
}

func (p *parser) literal(lit string, v *dom.Value) (*dom.Value, error) {
	if len(p.d)-p.off < len(lit) || string(p.d[p.off:p.off+len(lit)]) != lit {
		return nil, p.errf("bad literal")
	}
	p.off += len(lit)
	return v, nil
}

func (p *parser) object() (*dom.Value, error) {
	if err := p.push(); err != nil {
		return nil, err
	}
	defer p.pop()
	p.off++
	obj := dom.New(dom.ObjectType)
	p.skipSpace()
	if p.off < len(p.d) && p.d[p.off] == '}' {
		p.off++
		return obj, nil
	}
	for {
		p.skipSpace()
		if p.off >= len(p.d) || p.d[p.off] != '"' {
			return nil, p.errf("expected object key")
		}
		key, escaped, err := p.scanString()
		if err != nil {
			return nil, err
		}
		// Duplicate keys upsert, so the last one wins.
		var slot *dom.Value
		if p.opts.zeroCopy && !escaped {
			slot = obj.AtShared(key)
		} else {
			slot = obj.AtField(key)
		}
		p.skipSpace()
		if p.off >= len(p.d) || p.d[p.off] != ':' {
			return nil, p.errf("expected ':' after object key")
		}
		p.off++
		p.skipSpace()
		val, err := p.value()
		if err != nil {
			return nil, err
		}
		slot.Swap(val)
		p.skipSpace()
		if p.off >= len(p.d) {
			return nil, p.errf("unterminated object")
		}
		switch p.d[p.off] {
		case ',':
			p.off++
		case '}':
			p.off++
			return obj, nil
		default:
			return nil, p.errf("expected ',' or '}' in object")
		}
	}
}

func (p *parser) array() (*dom.Value, error) {
	if err := p.push(); err != nil {
		return nil, err
	}
	defer p.pop()
	p.off++
	arr := dom.New(dom.ArrayType)
	p.skipSpace()
	if p.off < len(p.d) && p.d[p.off] == ']' {
		p.off++
		return arr, nil
	}
	for {
		p.skipSpace()
		el, err := p.value()
		if err != nil {
			return nil, err
		}
		arr.Append(el)
		p.skipSpace()
		if p.off >= len(p.d) {
			return nil, p.errf("unterminated array")
		}
		switch p.d[p.off] {
		case ',':
			p.off++
		case ']':
			p.off++
			return arr, nil
		default:
			return nil, p.errf("expected ',' or ']' in array")
		}
	}
}

func (p *parser) stringValue() (*dom.Value, error) {
	s, escaped, err := p.scanString()
	if err != nil {
		return nil, err
	}
	if p.opts.zeroCopy && !escaped {
		return dom.FromShared(s), nil
	}
	return dom.FromString(s), nil
}

// scanString consumes the quoted string at p.off and returns its
// decoded content, plus whether escape processing ran. Without escapes
// the result aliases the input; with escapes it aliases p.scratch.
func (p *parser) scanString() (string, bool, error) {
	p.off++
	segStart := p.off
	for p.off < len(p.d) {
		c := p.d[p.off]
		switch {
		case c == '"':
			s := bstr(p.d[segStart:p.off])
			p.off++
			return s, false, nil
		case c == '\\':
			return p.unescape(segStart)
		case c < 0x20:
			return "", false, p.errf("raw control character in string")
		default:
			p.off++
		}
	}
	return "", false, p.errf("unterminated string")
}

// unescape continues scanString from the first backslash, building the
// decoded content in p.scratch.
func (p *parser) unescape(segStart int) (string, bool, error) {
	p.scratch = append(p.scratch[:0], p.d[segStart:p.off]...)
	for p.off < len(p.d) {
		c := p.d[p.off]
		switch {
		case c == '"':
			p.off++
			return bstr(p.scratch), true, nil
		case c < 0x20:
			return "", false, p.errf("raw control character in string")
		case c != '\\':
			p.scratch = append(p.scratch, c)
			p.off++
		default:
			if p.off+1 >= len(p.d) {
				p.off = len(p.d)
				return "", false, p.errf("unterminated string")
			}
			e := p.d[p.off+1]
			p.off += 2
			switch e {
			case '"', '\\', '/':
				p.scratch = append(p.scratch, e)
			case 'b':
				p.scratch = append(p.scratch, '\b')
			case 'f':
				p.scratch = append(p.scratch, '\f')
			case 'n':
				p.scratch = append(p.scratch, '\n')
			case 'r':
				p.scratch = append(p.scratch, '\r')
			case 't':
				p.scratch = append(p.scratch, '\t')
			case 'u':
				if err := p.unicodeEscape(); err != nil {
					return "", false, err
				}
			default:
				return "", false, p.errf("bad escape \\%c", e)
			}
		}
	}
	return "", false, p.errf("unterminated string")
}

// unicodeEscape decodes the four hex digits after a \u, pairing lead
// surrogates with a following \u escape. An unpaired lead surrogate is
// an error; an unpaired trail surrogate decodes to U+FFFD.
func (p *parser) unicodeEscape() error {
	r, err := p.hex4()
	if err != nil {
		return err
	}
	if !utf16.IsSurrogate(rune(r)) {
		p.scratch = utf8.AppendRune(p.scratch, rune(r))
		return nil
	}
	if r >= 0xdc00 {
		p.scratch = utf8.AppendRune(p.scratch, utf8.RuneError)
		return nil
	}
	if len(p.d)-p.off < 6 || p.d[p.off] != '\\' || p.d[p.off+1] != 'u' {
		return p.errf("unpaired surrogate in \\u escape")
	}
	p.off += 2
	r2, err := p.hex4()
	if err != nil {
		return err
	}
	if r2 < 0xdc00 || r2 > 0xdfff {
		return p.errf("bad low surrogate in \\u escape")
	}
	p.scratch = utf8.AppendRune(p.scratch, utf16.DecodeRune(rune(r), rune(r2)))
	return nil
}

func (p *parser) hex4() (uint32, error) {
	if len(p.d)-p.off < 4 {
		p.off = len(p.d)
		return 0, p.errf("truncated \\u escape")
	}
	var r uint32
	for i := 0; i < 4; i++ {
		c := p.d[p.off]
		var h uint32
		switch {
		case '0' <= c && c <= '9':
			h = uint32(c - '0')
		case 'a' <= c && c <= 'f':
			h = uint32(c-'a') + 10
		case 'A' <= c && c <= 'F':
			h = uint32(c-'A') + 10
		default:
			return 0, p.errf("bad hex digit %q in \\u escape", c)
		}
		r = r<<4 | h
		p.off++
	}
	return r, nil
}

func (p *parser) number() (*dom.Value, error) {
	start := p.off
	if p.d[p.off] == '-' {
		p.off++
	}
	switch {
	case p.off >= len(p.d):
		return nil, p.errf("truncated number")
	case p.d[p.off] == '0':
		p.off++
	case '1' <= p.d[p.off] && p.d[p.off] <= '9':
		p.off++
		p.digits()
	default:
		return nil, p.errf("bad number")
	}
	isReal := false
	if p.off < len(p.d) && p.d[p.off] == '.' {
		isReal = true
		p.off++
		if !p.digits1() {
			return nil, p.errf("fraction needs digits")
		}
	}
	if p.off < len(p.d) && (p.d[p.off] == 'e' || p.d[p.off] == 'E') {
		isReal = true
		p.off++
		if p.off < len(p.d) && (p.d[p.off] == '+' || p.d[p.off] == '-') {
			p.off++
		}
		if !p.digits1() {
			return nil, p.errf("exponent needs digits")
		}
	}
	seg := bstr(p.d[start:p.off])
	if !isReal {
		if i, err := strconv.ParseInt(seg, 10, 64); err == nil {
			return dom.FromInt(i), nil
		}
		if u, err := strconv.ParseUint(seg, 10, 64); err == nil {
			return dom.FromUint(u), nil
		}
	}
	f, err := strconv.ParseFloat(seg, 64)
	if err != nil && !errors.Is(err, strconv.ErrRange) {
		return nil, p.errf("bad number %q", seg)
	}
	return dom.FromFloat(f), nil
}

// digits consumes a possibly empty run of decimal digits.
func (p *parser) digits() {
	for p.off < len(p.d) && '0' <= p.d[p.off] && p.d[p.off] <= '9' {
		p.off++
	}
}

// digits1 consumes a digit run and reports whether it was nonempty.
func (p *parser) digits1() bool {
	start := p.off
	p.digits()
	return p.off > start
}

// bstr aliases b as a string without copying. The result shares b's
// memory and must be copied before b changes.
func bstr(b []byte) string {
	if len(b) == 0 {
		return ""
	}
	return unsafe.String(&b[0], len(b))
}
