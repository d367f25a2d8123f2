package parse

import (
	"bytes"
	"fmt"
	"strconv"
)

// Pos is a byte offset into a parsed document. Line, column and the
// source snippet are derived from the document on demand, so building
// one is free until it is rendered.
type Pos struct {
	I int
	d []byte
}

// LineCol returns the zero-based line and column of the position.
func (p Pos) LineCol() (int, int) {
	head := p.d[:min(p.I, len(p.d))]
	line := bytes.Count(head, []byte{'\n'})
	col := len(head)
	if i := bytes.LastIndexByte(head, '\n'); i >= 0 {
		col = len(head) - i - 1
	}
	return line, col
}

func (p Pos) Line() int {
	l, _ := p.LineCol()
	return l
}

func (p Pos) Col() int {
	_, c := p.LineCol()
	return c
}

func (p Pos) String() string {
	sample := string(p.d[max(0, p.I-5):min(p.I+5, len(p.d))])
	sample = strconv.Quote(sample)
	sample = sample[1 : len(sample)-1]
	line, col := p.LineCol()
	return fmt.Sprintf("`...%s...` at offset %d (line=%d, col=%d)", sample, p.I, line, col)
}
