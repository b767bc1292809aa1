package api

import (
	"github.com/go-faster/errors"
	"github.com/go-faster/jx"
)

// decodeAny decodes one JSON value into plain Go values.
// Integers become int64, other numbers float64.
func decodeAny(d *jx.Decoder) (any, error) {
	switch d.Next() {
	case jx.String:
		return d.Str()
	case jx.Number:
		n, err := d.Num()
		if err != nil {
			return nil, err
		}
		if n.IsInt() {
			return n.Int64()
		}
		return n.Float64()
	case jx.Bool:
		return d.Bool()
	case jx.Null:
		return nil, d.Null()
	case jx.Array:
		out := []any{}
		err := d.Arr(func(d *jx.Decoder) error {
			v, err := decodeAny(d)
			if err != nil {
				return err
			}
			out = append(out, v)
			return nil
		})
		return out, err
	case jx.Object:
		out := map[string]any{}
		err := d.Obj(func(d *jx.Decoder, key string) error {
			v, err := decodeAny(d)
			if err != nil {
				return err
			}
			out[key] = v
			return nil
		})
		return out, err
	default:
		return nil, errors.New("invalid json value")
	}
}

// decodeList calls item for every element when body is a JSON array.
// Any other body, including an empty one, decodes as an empty list.
func decodeList(body []byte, item func(d *jx.Decoder) error) error {
	d := jx.DecodeBytes(body)
	if d.Next() != jx.Array {
		return nil
	}
	return d.Arr(item)
}

// decodeObject runs fn over the object in body. A non-object body is an error.
func decodeObject(body []byte, fn func(d *jx.Decoder, key string) error) error {
	d := jx.DecodeBytes(body)
	if d.Next() != jx.Object {
		return errors.Errorf("expected json object, got %s", d.Next())
	}
	return d.Obj(fn)
}

// decodeString reads a string, treating null as "".
func decodeString(d *jx.Decoder) (string, error) {
	if d.Next() == jx.Null {
		return "", d.Null()
	}
	return d.Str()
}

// decodeID reads an identifier sent either as a string or a number.
func decodeID(d *jx.Decoder) (string, error) {
	switch d.Next() {
	case jx.Number:
		n, err := d.Num()
		if err != nil {
			return "", err
		}
		return n.String(), nil
	case jx.Null:
		return "", d.Null()
	default:
		return d.Str()
	}
}

// decodeInt reads a number as int, truncating fractions. null reads as 0.
func decodeInt(d *jx.Decoder) (int, error) {
	switch d.Next() {
	case jx.Null:
		return 0, d.Null()
	case jx.Number:
		n, err := d.Num()
		if err != nil {
			return 0, err
		}
		if n.IsInt() {
			v, err := n.Int64()
			return int(v), err
		}
		f, err := n.Float64()
		return int(f), err
	default:
		return 0, d.Skip()
	}
}
