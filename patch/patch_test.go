package patch_test

import (
	"testing"

	"github.com/signadot/go-jsondom/diff"
	"github.com/signadot/go-jsondom/dom"
	"github.com/signadot/go-jsondom/encode"
	"github.com/signadot/go-jsondom/parse"
	"github.com/signadot/go-jsondom/patch"
)

func mustParse(t *testing.T, s string) *dom.Value {
	t.Helper()
	v, err := parse.ParseString(s)
	if err != nil {
		t.Fatalf("parse %q: %v", s, err)
	}
	return v
}

func TestApply(t *testing.T) {
	tests := []struct {
		name  string
		doc   string
		patch string
		want  string
	}{
		{
			name:  "add-member",
			doc:   `{"a":1}`,
			patch: `[{"op":"add","path":"/b","value":2}]`,
			want:  `{"a":1,"b":2}`,
		},
		{
			name:  "remove-member",
			doc:   `{"a":1,"b":2}`,
			patch: `[{"op":"remove","path":"/a"}]`,
			want:  `{"b":2}`,
		},
		{
			name:  "replace-member",
			doc:   `{"a":1}`,
			patch: `[{"op":"replace","path":"/a","value":[1,2]}]`,
			want:  `{"a":[1,2]}`,
		},
		{
			name:  "insert-element",
			doc:   `[1,3]`,
			patch: `[{"op":"add","path":"/1","value":2}]`,
			want:  `[1,2,3]`,
		},
		{
			name:  "append-element",
			doc:   `[1]`,
			patch: `[{"op":"add","path":"/1","value":2}]`,
			want:  `[1,2]`,
		},
		{
			name:  "remove-element",
			doc:   `[1,2,3]`,
			patch: `[{"op":"remove","path":"/1"}]`,
			want:  `[1,3]`,
		},
		{
			name:  "move",
			doc:   `{"a":1,"b":2}`,
			patch: `[{"op":"move","from":"/a","path":"/c"}]`,
			want:  `{"b":2,"c":1}`,
		},
		{
			name:  "copy",
			doc:   `{"a":[1]}`,
			patch: `[{"op":"copy","from":"/a","path":"/b"}]`,
			want:  `{"a":[1],"b":[1]}`,
		},
		{
			name:  "test-pass",
			doc:   `{"a":1}`,
			patch: `[{"op":"test","path":"/a","value":1}]`,
			want:  `{"a":1}`,
		},
		{
			name:  "empty-patch",
			doc:   `{"a":1}`,
			patch: `[]`,
			want:  `{"a":1}`,
		},
		{
			name:  "escaped-pointer",
			doc:   `{"a/b":1}`,
			patch: `[{"op":"replace","path":"/a~1b","value":2}]`,
			want:  `{"a/b":2}`,
		},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			out, err := patch.Apply(mustParse(t, tc.doc), mustParse(t, tc.patch))
			if err != nil {
				t.Fatalf("Apply(%s, %s): %v", tc.doc, tc.patch, err)
			}
			if got := encode.MustString(out, encode.Compact()); got != tc.want {
				t.Errorf("Apply(%s, %s) = %s, want %s", tc.doc, tc.patch, got, tc.want)
			}
		})
	}
}

func TestApplyErrors(t *testing.T) {
	tests := []struct {
		name  string
		doc   string
		patch string
	}{
		{
			name:  "patch-not-an-array",
			doc:   `{}`,
			patch: `{"op":"add","path":"/a","value":1}`,
		},
		{
			name:  "remove-missing-member",
			doc:   `{}`,
			patch: `[{"op":"remove","path":"/zzz"}]`,
		},
		{
			name:  "test-mismatch",
			doc:   `{"a":1}`,
			patch: `[{"op":"test","path":"/a","value":2}]`,
		},
		{
			// the patch engine has no whole-document operations
			name:  "root-path",
			doc:   `{"a":1}`,
			patch: `[{"op":"replace","path":"","value":1}]`,
		},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := patch.Apply(mustParse(t, tc.doc), mustParse(t, tc.patch)); err == nil {
				t.Errorf("Apply(%s, %s) did not fail", tc.doc, tc.patch)
			}
		})
	}
}

func TestApplyMaterializesHoles(t *testing.T) {
	doc := dom.New(dom.ArrayType)
	doc.At(1).Swap(dom.FromInt(5))
	out, err := patch.Apply(doc, mustParse(t, `[{"op":"add","path":"/0","value":0}]`))
	if err != nil {
		t.Fatalf("Apply: %v", err)
	}
	if got := encode.MustString(out, encode.Compact()); got != `[0,null,5]` {
		t.Errorf("Apply(sparse, add) = %s, want [0,null,5]", got)
	}
}

func TestApplyLeavesInputs(t *testing.T) {
	doc := mustParse(t, `{"a":[1,2]}`)
	ops := mustParse(t, `[{"op":"replace","path":"/a/0","value":9}]`)
	docSnap, opsSnap := doc.Clone(), ops.Clone()
	if _, err := patch.Apply(doc, ops); err != nil {
		t.Fatalf("Apply: %v", err)
	}
	if dom.Compare(doc, docSnap) != 0 {
		t.Errorf("doc changed: %s", encode.MustString(doc, encode.Compact()))
	}
	if dom.Compare(ops, opsSnap) != 0 {
		t.Errorf("patch changed: %s", encode.MustString(ops, encode.Compact()))
	}
}

func TestApplyMerge(t *testing.T) {
	tests := []struct {
		name  string
		doc   string
		merge string
		want  string
	}{
		{
			name:  "add-and-delete",
			doc:   `{"a":1,"b":2}`,
			merge: `{"b":null,"c":3}`,
			want:  `{"a":1,"c":3}`,
		},
		{
			name:  "nested",
			doc:   `{"o":{"x":1,"y":2}}`,
			merge: `{"o":{"y":9}}`,
			want:  `{"o":{"x":1,"y":9}}`,
		},
		{
			name:  "array-replaces-wholesale",
			doc:   `{"a":[1,2]}`,
			merge: `{"a":[3]}`,
			want:  `{"a":[3]}`,
		},
		{
			name:  "non-object-patch-replaces-doc",
			doc:   `{"a":1}`,
			merge: `[1,2]`,
			want:  `[1,2]`,
		},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			out, err := patch.ApplyMerge(mustParse(t, tc.doc), mustParse(t, tc.merge))
			if err != nil {
				t.Fatalf("ApplyMerge(%s, %s): %v", tc.doc, tc.merge, err)
			}
			if got := encode.MustString(out, encode.Compact()); got != tc.want {
				t.Errorf("ApplyMerge(%s, %s) = %s, want %s", tc.doc, tc.merge, got, tc.want)
			}
		})
	}
}

func TestApplyDiffRoundTrip(t *testing.T) {
	pairs := []struct {
		name string
		a    string
		b    string
	}{
		{name: "members", a: `{"a":1,"b":2}`, b: `{"b":3,"c":4}`},
		{name: "nested", a: `{"l":[1,2,3],"o":{"x":1}}`, b: `{"l":[1,3],"o":{"x":2,"y":5}}`},
		{name: "elements", a: `[1,2,3,4]`, b: `[1,9,4]`},
		{name: "containers", a: `[[1],[2]]`, b: `[[1],[3]]`},
		{name: "element-type-change", a: `[1,[2]]`, b: `[1,{"b":2}]`},
		{name: "null-member", a: `{}`, b: `{"a":null}`},
		{name: "object-elements", a: `{"l":[{"k":1},{"k":2}]}`, b: `{"l":[{"k":2}]}`},
		{name: "equal", a: `{"a":[1,2]}`, b: `{"a":[1,2]}`},
	}
	for _, tc := range pairs {
		t.Run(tc.name, func(t *testing.T) {
			a, b := mustParse(t, tc.a), mustParse(t, tc.b)
			got, err := patch.Apply(a, diff.Diff(a, b))
			if err != nil {
				t.Fatalf("Apply(a, Diff(a, b)): %v", err)
			}
			if dom.Compare(got, b) != 0 {
				t.Errorf("Apply(a, Diff(a, b)) = %s, want %s",
					encode.MustString(got, encode.Compact()), tc.b)
			}
			got, err = patch.Apply(b, diff.Diff(b, a))
			if err != nil {
				t.Fatalf("Apply(b, Diff(b, a)): %v", err)
			}
			if dom.Compare(got, a) != 0 {
				t.Errorf("Apply(b, Diff(b, a)) = %s, want %s",
					encode.MustString(got, encode.Compact()), tc.a)
			}
		})
	}
}
