package jsondom

import (
	"bytes"
	"testing"

	"github.com/signadot/go-jsondom/dom"
	"github.com/signadot/go-jsondom/encode"
)

func TestParseEncodeRoundTrip(t *testing.T) {
	tests := []struct {
		in  string
		out string
	}{
		// canonical documents render back unchanged
		{`null`, `null`},
		{`true`, `true`},
		{`-3`, `-3`},
		{`18446744073709551615`, `18446744073709551615`},
		{`2.5`, `2.5`},
		{`"hé"`, `"hé"`},
		{`""`, `""`},
		{`[]`, `[]`},
		{`{}`, `{}`},
		{`[[[]]]`, `[[[]]]`},
		{`{"a":[1,2],"b":{"c":null}}`, `{"a":[1,2],"b":{"c":null}}`},
		// non-canonical input renders canonically
		{`1e2`, `100.0`},
		{`"A"`, `"A"`},
		{`-0`, `0`},
		{`-0.0`, `-0.0`},
		{`{"b":2, "a":1}`, `{"a":1,"b":2}`},
	}
	for _, tc := range tests {
		v, err := Parse([]byte(tc.in))
		if err != nil {
			t.Errorf("Parse(%s): %v", tc.in, err)
			continue
		}
		if got := String(v, encode.Compact()); got != tc.out {
			t.Errorf("String(Parse(%s)) = %s, want %s", tc.in, got, tc.out)
		}
		back, err := Parse([]byte(String(v)))
		if err != nil {
			t.Errorf("reparse of %s: %v", tc.in, err)
			continue
		}
		if dom.Compare(back, v) != 0 {
			t.Errorf("reparse of %s changed the tree: %s", tc.in, String(back))
		}
	}
}

func TestEncodeWriter(t *testing.T) {
	var buf bytes.Buffer
	if err := Encode(MustParse([]byte(`[1]`)), &buf); err != nil {
		t.Fatalf("Encode: %v", err)
	}
	if got := buf.String(); got != "[\n  1\n]\n" {
		t.Errorf("Encode([1]) wrote %q", got)
	}
}

func TestMustParsePanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("MustParse({) did not panic")
		}
	}()
	MustParse([]byte(`{`))
}

func TestDiffThenApply(t *testing.T) {
	a := MustParse([]byte(`{
		"replicas": 2,
		"containers": [{"image": "app:v1", "name": "app"}],
		"labels": {"env": "dev"}
	}`))
	b := MustParse([]byte(`{
		"replicas": 3,
		"containers": [
			{"image": "app:v2", "name": "app"},
			{"image": "sidecar:v1", "name": "proxy"}
		],
		"labels": {"env": "prod", "team": "core"}
	}`))

	got, err := Apply(a, Diff(a, b))
	if err != nil {
		t.Fatalf("Apply(a, Diff(a, b)): %v", err)
	}
	if dom.Compare(got, b) != 0 {
		t.Errorf("Apply(a, Diff(a, b)) = %s, want %s", String(got), String(b))
	}

	got, err = Apply(b, Diff(b, a))
	if err != nil {
		t.Fatalf("Apply(b, Diff(b, a)): %v", err)
	}
	if dom.Compare(got, a) != 0 {
		t.Errorf("Apply(b, Diff(b, a)) = %s, want %s", String(got), String(a))
	}
}

func TestApplyMergeDeletes(t *testing.T) {
	out, err := ApplyMerge(MustParse([]byte(`{"a":1,"b":2}`)), MustParse([]byte(`{"b":null,"c":3}`)))
	if err != nil {
		t.Fatalf("ApplyMerge: %v", err)
	}
	if got := String(out, encode.Compact()); got != `{"a":1,"c":3}` {
		t.Errorf("ApplyMerge = %s, want {\"a\":1,\"c\":3}", got)
	}
}

func TestEvalExpr(t *testing.T) {
	doc := MustParse([]byte(`{"a": 1, "b": [1, 2, 3]}`))
	res, err := Eval(doc, "a + len(b)")
	if err != nil {
		t.Fatalf("Eval: %v", err)
	}
	if got := String(res, encode.Compact()); got != "4" {
		t.Errorf("Eval = %s, want 4", got)
	}
}

func TestSelectPath(t *testing.T) {
	doc := MustParse([]byte(`{"b": [1, 2, 3]}`))
	res, err := Select(doc, "$.b[1]")
	if err != nil {
		t.Fatalf("Select: %v", err)
	}
	if got := String(dom.FromSlice(res), encode.Compact()); got != "[2]" {
		t.Errorf("Select = %s, want [2]", got)
	}
}
