package gomap

import (
	"bytes"

	json "github.com/goccy/go-json"

	"github.com/signadot/go-jsondom/dom"
	"github.com/signadot/go-jsondom/encode"
	"github.com/signadot/go-jsondom/parse"
)

// ToValue converts a Go value to a document tree. Nils, bools,
// numbers, strings, []any and map[string]any map directly; existing
// nodes clone; everything else (structs, named types, other maps and
// slices) round-trips through JSON marshaling.
func ToValue(v any) (*dom.Value, error) {
	switch x := v.(type) {
	case nil:
		return dom.Null(), nil
	case *dom.Value:
		return x.Clone(), nil
	case []*dom.Value:
		return dom.FromSlice(x), nil
	case map[string]*dom.Value:
		return dom.FromMap(x), nil
	case bool:
		return dom.FromBool(x), nil
	case string:
		return dom.FromString(x), nil
	case int:
		return dom.FromInt(int64(x)), nil
	case int8:
		return dom.FromInt(int64(x)), nil
	case int16:
		return dom.FromInt(int64(x)), nil
	case int32:
		return dom.FromInt(int64(x)), nil
	case int64:
		return dom.FromInt(x), nil
	case uint:
		return dom.FromUint(uint64(x)), nil
	case uint8:
		return dom.FromUint(uint64(x)), nil
	case uint16:
		return dom.FromUint(uint64(x)), nil
	case uint32:
		return dom.FromUint(uint64(x)), nil
	case uint64:
		return dom.FromUint(x), nil
	case float32:
		return dom.FromFloat(float64(x)), nil
	case float64:
		return dom.FromFloat(x), nil
	case json.Number:
		// The reader picks the canonical node type for the literal.
		return parse.Parse([]byte(x))
	case []any:
		arr := dom.New(dom.ArrayType)
		for _, el := range x {
			ev, err := ToValue(el)
			if err != nil {
				return nil, err
			}
			arr.Append(ev)
		}
		return arr, nil
	case map[string]any:
		obj := dom.New(dom.ObjectType)
		for name, el := range x {
			ev, err := ToValue(el)
			if err != nil {
				return nil, err
			}
			obj.AtField(name).Swap(ev)
		}
		return obj, nil
	default:
		d, err := json.Marshal(v)
		if err != nil {
			return nil, err
		}
		return parse.Parse(d)
	}
}

// FromValue unmarshals a document tree into target, which follows
// encoding/json pointer semantics. Array holes arrive as JSON nulls.
func FromValue(v *dom.Value, target any) error {
	var buf bytes.Buffer
	if err := encode.Encode(v, &buf, encode.Compact()); err != nil {
		return err
	}
	return json.Unmarshal(buf.Bytes(), target)
}

// ToAny projects a document tree onto the naive Go form:
// map[string]any for objects, []any for arrays, int64/uint64/float64
// for numbers. Array holes surface as untyped nils.
func ToAny(v *dom.Value) any {
	switch v.Type() {
	case dom.ObjectType:
		res := make(map[string]any, v.Len())
		for name, el := range v.Items() {
			res[name] = ToAny(el)
		}
		return res
	case dom.ArrayType:
		n := v.Len()
		res := make([]any, n)
		for i := 0; i < n; i++ {
			if el := v.TryGet(i); el != nil {
				res[i] = ToAny(el)
			}
		}
		return res
	case dom.StringType:
		return v.RawString()
	case dom.IntType:
		return v.AsInt64(0)
	case dom.UintType:
		return v.AsUint64(0)
	case dom.RealType:
		return v.AsFloat64(0)
	case dom.BoolType:
		return v.AsBool(false)
	default:
		return nil
	}
}
