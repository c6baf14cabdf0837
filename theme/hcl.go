package theme

import (
	"fmt"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
	"github.com/zclconf/go-cty/cty"
)

// hclTheme is the decoding target for HCL theme files. The two scales are
// kept as raw expressions so that values may be written as numbers or strings.
type hclTheme struct {
	Prefix              string         `hcl:"prefix,optional"`
	Strategies          []string       `hcl:"strategies,optional"`
	Values              hcl.Expression `hcl:"grid_template_columns_center,optional"`
	GridTemplateColumns hcl.Expression `hcl:"grid_template_columns,optional"`
	MaxTarget           int            `hcl:"max_target,optional"`
	Center              *hclCenter     `hcl:"center,block"`
}

type hclCenter struct {
	Formula        string `hcl:"formula,optional"`
	InclusiveIndex bool   `hcl:"inclusive_index,optional"`
}

// LoadHCL decodes an HCL theme; filename is used only in diagnostics.
func LoadHCL(filename string, src []byte) (Theme, error) {
	parser := hclparse.NewParser()
	file, diags := parser.ParseHCL(src, filename)
	if diags.HasErrors() {
		return Theme{}, fmt.Errorf("%w: %s", ErrDecode, diags.Error())
	}

	var raw hclTheme
	if diags = gohcl.DecodeBody(file.Body, nil, &raw); diags.HasErrors() {
		return Theme{}, fmt.Errorf("%w: %s", ErrDecode, diags.Error())
	}

	t := Theme{
		Prefix:     raw.Prefix,
		Strategies: raw.Strategies,
		MaxTarget:  raw.MaxTarget,
	}
	if raw.Center != nil {
		t.Center = CenterConfig{Formula: raw.Center.Formula, InclusiveIndex: raw.Center.InclusiveIndex}
	}
	if t.Values, diags = scaleFromExpr(raw.Values, "grid_template_columns_center"); diags.HasErrors() {
		return Theme{}, fmt.Errorf("%w: %s", ErrDecode, diags.Error())
	}
	if t.GridTemplateColumns, diags = scaleFromExpr(raw.GridTemplateColumns, "grid_template_columns"); diags.HasErrors() {
		return Theme{}, fmt.Errorf("%w: %s", ErrDecode, diags.Error())
	}
	if err := t.Validate(); err != nil {
		return Theme{}, err
	}

	return t, nil
}

// scaleFromExpr evaluates a map/object literal whose elements are strings or
// numbers. A missing attribute evaluates to null and yields nil.
func scaleFromExpr(expr hcl.Expression, name string) (map[string]string, hcl.Diagnostics) {
	if expr == nil {
		return nil, nil
	}
	val, diags := expr.Value(nil)
	if diags.HasErrors() || val.IsNull() {
		return nil, diags
	}

	ty := val.Type()
	if !ty.IsObjectType() && !ty.IsMapType() {
		return nil, append(diags, &hcl.Diagnostic{
			Severity: hcl.DiagError,
			Summary:  "Invalid scale",
			Detail:   fmt.Sprintf("The '%s' attribute must be a map of value keys to values.", name),
			Subject:  expr.Range().Ptr(),
		})
	}

	out := make(map[string]string, val.LengthInt())
	it := val.ElementIterator()
	for it.Next() {
		k, v := it.Element()
		switch {
		case v.IsNull():
			continue
		case v.Type() == cty.String:
			out[k.AsString()] = v.AsString()
		case v.Type() == cty.Number:
			// Fractional numbers are kept; the generator skips them like any
			// other non-integer value.
			out[k.AsString()] = v.AsBigFloat().Text('f', -1)
		default:
			return nil, append(diags, &hcl.Diagnostic{
				Severity: hcl.DiagError,
				Summary:  "Invalid scale value",
				Detail:   fmt.Sprintf("The '%s' value for key %q must be a string or a number.", name, k.AsString()),
				Subject:  expr.Range().Ptr(),
			})
		}
	}

	return out, diags
}
