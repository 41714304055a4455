// This file translates HCL run blocks into the format-agnostic config model.

package hcl

import (
	"fmt"

	"github.com/hashicorp/hcl/v2"
	"github.com/vk/dialsim/internal/config"
	"github.com/zclconf/go-cty/cty"
	"github.com/zclconf/go-cty/cty/convert"
	"github.com/zclconf/go-cty/cty/gocty"
)

func (l *Loader) translateRun(b *runBlock, source string) (*config.Run, error) {
	run := &config.Run{
		Name:   b.Name,
		Input:  b.Input,
		Source: source,
	}

	if err := decodeExpr(b.Rules, cty.List(cty.String), &run.Rules); err != nil {
		return nil, fmt.Errorf("rules: %w", err)
	}
	if err := decodeExpr(b.Expect, cty.Map(cty.Number), &run.Expect); err != nil {
		return nil, fmt.Errorf("expect: %w", err)
	}
	return run, nil
}

// decodeExpr evaluates expr without variables, converts the result to ty
// and stores it in target. A null or absent expression leaves target
// untouched.
func decodeExpr(expr hcl.Expression, ty cty.Type, target any) error {
	if expr == nil {
		return nil
	}
	val, diags := expr.Value(nil)
	if diags.HasErrors() {
		return diags
	}
	if val.IsNull() {
		return nil
	}
	if !val.IsWhollyKnown() {
		return fmt.Errorf("value must be known")
	}

	converted, err := convert.Convert(val, ty)
	if err != nil {
		return fmt.Errorf("cannot convert %s to %s: %w", val.Type().FriendlyName(), ty.FriendlyName(), err)
	}
	if err := requireWholeNumbers(converted); err != nil {
		return err
	}
	return gocty.FromCtyValue(converted, target)
}

// requireWholeNumbers rejects fractional or null numbers in a map or list.
// gocty truncates fractions when decoding into integer types.
func requireWholeNumbers(val cty.Value) error {
	ty := val.Type()
	if !(ty.IsMapType() || ty.IsListType()) || !ty.ElementType().Equals(cty.Number) {
		return nil
	}
	for it := val.ElementIterator(); it.Next(); {
		key, v := it.Element()
		name := key.AsBigFloat().String()
		if key.Type() == cty.String {
			name = key.AsString()
		}
		if v.IsNull() {
			return fmt.Errorf("%s: value must not be null", name)
		}
		if !v.AsBigFloat().IsInt() {
			return fmt.Errorf("%s: value must be a whole number, got %s", name, v.AsBigFloat().Text('g', -1))
		}
	}
	return nil
}
