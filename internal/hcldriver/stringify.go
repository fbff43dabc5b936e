package hcldriver

import (
	"fmt"
	"strings"

	"github.com/zclconf/go-cty/cty"
	"github.com/zclconf/go-cty/cty/convert"
)

// stringify renders an evaluated HCL value into the literal form the
// register's Reset pass understands.
func stringify(val cty.Value) (string, error) {
	if val.IsNull() {
		return "", fmt.Errorf("null values are not allowed")
	}

	t := val.Type()
	switch {
	case t == cty.String:
		return val.AsString(), nil

	case t == cty.Bool:
		if val.True() {
			return "true", nil
		}
		return "false", nil

	case t == cty.Number:
		return val.AsBigFloat().Text('f', -1), nil

	case t.IsTupleType() || t.IsListType() || t.IsSetType():
		var elems []string
		for it := val.ElementIterator(); it.Next(); {
			_, ev := it.Element()
			raw, err := stringify(ev)
			if err != nil {
				return "", err
			}
			elems = append(elems, raw)
		}
		return "[" + strings.Join(elems, ", ") + "]", nil
	}

	// Last resort: let cty attempt the conversion itself.
	converted, err := convert.Convert(val, cty.String)
	if err != nil {
		return "", fmt.Errorf("unsupported value of type %s", t.FriendlyName())
	}
	return converted.AsString(), nil
}
