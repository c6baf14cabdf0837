// Package theme describes which utility classes a stylesheet contains: the
// permitted value keys, the enabled strategies, the class prefix and the
// center formula revision.
//
// What:
//
//   - Theme mirrors the plugin theme namespace: gridTemplateColumnsCenter maps
//     value keys ("1".."12" by default) to raw values parsed by
//     distribute.ParseTargetCount.
//   - When no explicit values are given but a gridTemplateColumns scale is,
//     the integer keys of that scale become the values.
//   - Themes load from YAML (.yaml/.yml) or HCL (.hcl).
//
// YAML:
//
//	prefix: "tw-"
//	strategies: [center, between]
//	gridTemplateColumnsCenter:
//	  "2": "2"
//	  "3": "3"
//	center:
//	  formula: shifted
//
// HCL:
//
//	prefix     = "tw-"
//	strategies = ["center", "between"]
//	grid_template_columns_center = { "2" = 2, "3" = "3" }
//	center {
//	  formula = "shifted"
//	}
//
// Errors:
//
//   - ErrUnsupportedFormat: file extension is not .yaml, .yml or .hcl.
//   - ErrDecode:            the document does not match the schema.
//   - ErrInvalidTheme:      a decoded field holds an unusable value.
package theme
