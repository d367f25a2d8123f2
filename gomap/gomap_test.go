package gomap

import (
	"math"
	"testing"

	json "github.com/goccy/go-json"
	"github.com/google/go-cmp/cmp"

	"github.com/signadot/go-jsondom/dom"
	"github.com/signadot/go-jsondom/encode"
)

func TestToValueScalars(t *testing.T) {
	tests := []struct {
		name string
		in   any
		t    dom.Type
		want string
	}{
		{name: "nil", in: nil, t: dom.NullType, want: "null"},
		{name: "bool", in: true, t: dom.BoolType, want: "true"},
		{name: "string", in: "hi", t: dom.StringType, want: `"hi"`},
		{name: "int", in: 42, t: dom.IntType, want: "42"},
		{name: "int8", in: int8(-3), t: dom.IntType, want: "-3"},
		{name: "int64", in: int64(math.MinInt64), t: dom.IntType, want: "-9223372036854775808"},
		{name: "uint8", in: uint8(7), t: dom.UintType, want: "7"},
		{name: "uint64", in: uint64(math.MaxUint64), t: dom.UintType, want: "18446744073709551615"},
		{name: "float32", in: float32(0.5), t: dom.RealType, want: "0.5"},
		{name: "float64", in: 2.0, t: dom.RealType, want: "2.0"},
		{name: "number int", in: json.Number("42"), t: dom.IntType, want: "42"},
		{name: "number uint", in: json.Number("18446744073709551615"), t: dom.UintType, want: "18446744073709551615"},
		{name: "number real", in: json.Number("2.5"), t: dom.RealType, want: "2.5"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v, err := ToValue(tt.in)
			if err != nil {
				t.Fatalf("ToValue(%v) error = %v", tt.in, err)
			}
			if v.Type() != tt.t {
				t.Errorf("ToValue(%v).Type() = %v, want %v", tt.in, v.Type(), tt.t)
			}
			if got := encode.MustString(v, encode.Compact()); got != tt.want {
				t.Errorf("ToValue(%v) renders %s, want %s", tt.in, got, tt.want)
			}
		})
	}
}

func TestToValueComposites(t *testing.T) {
	tests := []struct {
		name string
		in   any
		want string
	}{
		{
			name: "slice",
			in:   []any{1, "a", nil, true},
			want: `[1,"a",null,true]`,
		},
		{
			name: "map",
			in:   map[string]any{"b": 2, "a": []any{1}},
			want: `{"a":[1],"b":2}`,
		},
		{
			name: "nested",
			in:   map[string]any{"users": []any{map[string]any{"name": "alice"}}},
			want: `{"users":[{"name":"alice"}]}`,
		},
		{
			name: "struct via marshal",
			in: struct {
				Name string `json:"name"`
				Age  int    `json:"age"`
			}{Name: "bob", Age: 3},
			want: `{"age":3,"name":"bob"}`,
		},
		{
			name: "typed slice via marshal",
			in:   []int{1, 2, 3},
			want: `[1,2,3]`,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v, err := ToValue(tt.in)
			if err != nil {
				t.Fatalf("ToValue() error = %v", err)
			}
			if got := encode.MustString(v, encode.Compact()); got != tt.want {
				t.Errorf("ToValue() renders %s, want %s", got, tt.want)
			}
		})
	}
}

func TestToValueNodePassthrough(t *testing.T) {
	src := dom.FromStringMap(map[string]string{"k": "v"})
	v, err := ToValue(src)
	if err != nil {
		t.Fatalf("ToValue() error = %v", err)
	}
	v.AtField("k").Swap(dom.FromString("changed"))
	if got := src.GetField("k").RawString(); got != "v" {
		t.Errorf("source mutated through ToValue result: %q", got)
	}
}

func TestToValueUnmarshalable(t *testing.T) {
	if _, err := ToValue(make(chan int)); err == nil {
		t.Error("ToValue(chan) succeeded, want error")
	}
}

func TestFromValue(t *testing.T) {
	v := dom.Null()
	v.AtField("name").Swap(dom.FromString("alice"))
	v.AtField("age").Swap(dom.FromInt(30))
	v.AtField("tags").Swap(dom.FromStringSlice([]string{"a", "b"}))

	type user struct {
		Name string   `json:"name"`
		Age  int      `json:"age"`
		Tags []string `json:"tags"`
	}
	var u user
	if err := FromValue(v, &u); err != nil {
		t.Fatalf("FromValue() error = %v", err)
	}
	want := user{Name: "alice", Age: 30, Tags: []string{"a", "b"}}
	if diff := cmp.Diff(want, u); diff != "" {
		t.Errorf("FromValue() mismatch (-want +got):\n%s", diff)
	}
}

func TestFromValueHoles(t *testing.T) {
	arr := dom.Null()
	arr.At(2).Swap(dom.FromInt(9))

	var got []any
	if err := FromValue(arr, &got); err != nil {
		t.Fatalf("FromValue() error = %v", err)
	}
	want := []any{nil, nil, float64(9)}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("FromValue() mismatch (-want +got):\n%s", diff)
	}
}

func TestToAny(t *testing.T) {
	v := dom.Null()
	v.AtField("n").Swap(dom.FromInt(1))
	v.AtField("u").Swap(dom.FromUint(2))
	v.AtField("f").Swap(dom.FromFloat(0.5))
	v.AtField("s").Swap(dom.FromString("x"))
	v.AtField("b").Swap(dom.FromBool(true))
	v.AtField("z").Swap(dom.Null())
	arr := v.AtField("arr")
	arr.At(1).Swap(dom.FromString("sparse"))

	got := ToAny(v)
	want := map[string]any{
		"n":   int64(1),
		"u":   uint64(2),
		"f":   0.5,
		"s":   "x",
		"b":   true,
		"z":   nil,
		"arr": []any{nil, "sparse"},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("ToAny() mismatch (-want +got):\n%s", diff)
	}
}

func TestToAnyRoundTrip(t *testing.T) {
	src := map[string]any{"a": []any{int64(1), "two", 3.5}, "b": true}
	v, err := ToValue(src)
	if err != nil {
		t.Fatalf("ToValue() error = %v", err)
	}
	if diff := cmp.Diff(src, ToAny(v)); diff != "" {
		t.Errorf("round trip mismatch (-want +got):\n%s", diff)
	}
}
