// Package schema decodes a content model into a format-independent
// representation. It turns the management API's loosely-typed validation
// objects and field descriptors into canonical labels and human-readable
// clauses that the render package projects into each report format.
package schema

import (
	"fmt"
	"strings"

	json "github.com/goccy/go-json"
	"github.com/spf13/cast"

	"github.com/contentkit/modelreport/internal/contentful"
)

// NoValidations is the label for a field without validation rules.
const NoValidations = "None"

const (
	clauseSeparator = "; "
	ruleSeparator   = " | "
)

// clauseRule binds one recognized validation key to its clause formatter.
// A formatter may emit several clauses for one key, or none when the value
// carries nothing renderable.
type clauseRule struct {
	key    string
	format func(v any, rule contentful.ValidationRule, owner *contentful.Field) []string
}

// clauseRules is the total evaluation order for validation keys. Keys are not
// mutually exclusive, so every entry is tested against every rule; the order
// here fixes the clause order in the output.
var clauseRules = []clauseRule{
	{"unique", formatUnique},
	{"size", formatSize},
	{"range", formatRange},
	{"in", formatAllowedValues},
	{"linkContentType", formatLinkTarget},
	{"linkContentTypes", formatLinkTargetList},
	{"linkMimetypeGroup", formatMimeGroups},
	{"assetFileSize", formatAssetFileSize},
	{"assetImageDimensions", formatImageDimensions},
	{"regexp", formatPattern},
	{"enabledNodeTypes", formatNodeTypes},
	{"enabledMarks", formatMarks},
	{"nodes", formatRichTextNodes},
	{"dateRange", formatDateRange},
	{"prohibitRegexp", formatProhibitedPattern},
	{"message", formatMessage},
}

// richTextNodeKeys is the fixed emission order for nested rich-text node
// permissions.
var richTextNodeKeys = []string{
	"embedded-entry-block",
	"embedded-asset-block",
	"entry-hyperlink",
	"asset-hyperlink",
	"hyperlink",
}

// Decode renders a field's validation rules as plain text. Clauses within one
// rule join with "; ", rules join with " | ". An empty or absent rule list
// renders as NoValidations. The output is plain text only; callers embedding
// it in CSV or JSON must escape it themselves.
//
// The owning field is consulted only to disambiguate size bounds: on an Array
// field a size rule constrains the item count as well as acting as a generic
// size, so both readings are emitted.
func Decode(rules []contentful.ValidationRule, owner *contentful.Field) string {
	if len(rules) == 0 {
		return NoValidations
	}

	parts := make([]string, 0, len(rules))
	for _, rule := range rules {
		clauses, _ := decodeRule(rule, owner)
		parts = append(parts, strings.Join(clauses, clauseSeparator))
	}
	return strings.Join(parts, ruleSeparator)
}

// decodeRule produces the clauses for one rule. The second return reports
// whether any recognized key matched; when none did, the single returned
// clause is the serialized raw rule so no constraint is ever dropped.
func decodeRule(rule contentful.ValidationRule, owner *contentful.Field) ([]string, bool) {
	var clauses []string
	for _, cr := range clauseRules {
		v, ok := rule[cr.key]
		if !ok {
			continue
		}
		clauses = append(clauses, cr.format(v, rule, owner)...)
	}

	if len(clauses) == 0 {
		return []string{fallbackClause(rule)}, false
	}
	return clauses, true
}

// LinkTargets scans rules for link-target type constraints and returns the
// allowed content-type names in input order. Used both for the clause output
// and by type resolution of reference fields.
func LinkTargets(rules []contentful.ValidationRule) []string {
	var targets []string
	for _, rule := range rules {
		if v, ok := rule["linkContentType"]; ok {
			targets = append(targets, toStrings(v)...)
		}
		if v, ok := rule["linkContentTypes"]; ok {
			targets = append(targets, toStrings(v)...)
		}
	}
	return targets
}

func formatUnique(v any, _ contentful.ValidationRule, _ *contentful.Field) []string {
	if !cast.ToBool(v) {
		return nil
	}
	return []string{"Unique"}
}

func formatSize(v any, _ contentful.ValidationRule, owner *contentful.Field) []string {
	var out []string
	if c, ok := formatBounds("Size", "characters", v); ok {
		out = append(out, c)
	}
	// The size key is ambiguous on Array fields: the platform applies it to
	// the item count, while the same key on a text field bounds characters.
	// Surface both readings rather than guessing.
	if owner != nil && owner.Type == contentful.TypeArray {
		if c, ok := formatBounds("Array size", "items", v); ok {
			out = append(out, c)
		}
	}
	return out
}

func formatRange(v any, _ contentful.ValidationRule, _ *contentful.Field) []string {
	if c, ok := formatBounds("Range", "", v); ok {
		return []string{c}
	}
	return nil
}

func formatDateRange(v any, _ contentful.ValidationRule, _ *contentful.Field) []string {
	if c, ok := formatBounds("Date range", "", v); ok {
		return []string{c}
	}
	return nil
}

func formatAssetFileSize(v any, _ contentful.ValidationRule, _ *contentful.Field) []string {
	if c, ok := formatBounds("File size", "bytes", v); ok {
		return []string{c}
	}
	return nil
}

func formatImageDimensions(v any, _ contentful.ValidationRule, _ *contentful.Field) []string {
	dims, ok := v.(map[string]any)
	if !ok {
		return nil
	}

	var parts []string
	if w, ok := dims["width"]; ok {
		if c, ok := formatBounds("Width", "px", w); ok {
			parts = append(parts, c)
		}
	}
	if h, ok := dims["height"]; ok {
		if c, ok := formatBounds("Height", "px", h); ok {
			parts = append(parts, c)
		}
	}
	if len(parts) == 0 {
		return nil
	}
	return []string{"Image dimensions: " + strings.Join(parts, clauseSeparator)}
}

func formatAllowedValues(v any, _ contentful.ValidationRule, _ *contentful.Field) []string {
	values := toStrings(v)
	if len(values) == 0 {
		return nil
	}
	quoted := make([]string, 0, len(values))
	for _, val := range values {
		quoted = append(quoted, fmt.Sprintf("%q", val))
	}
	return []string{"Allowed values: [" + strings.Join(quoted, ", ") + "]"}
}

func formatLinkTarget(v any, _ contentful.ValidationRule, _ *contentful.Field) []string {
	names := toStrings(v)
	switch len(names) {
	case 0:
		return nil
	case 1:
		return []string{"Link content type: " + names[0]}
	default:
		return []string{"Link content types: [" + strings.Join(names, ", ") + "]"}
	}
}

func formatLinkTargetList(v any, _ contentful.ValidationRule, _ *contentful.Field) []string {
	names := toStrings(v)
	if len(names) == 0 {
		return nil
	}
	return []string{"Link content types: [" + strings.Join(names, ", ") + "]"}
}

func formatMimeGroups(v any, _ contentful.ValidationRule, _ *contentful.Field) []string {
	groups := toStrings(v)
	if len(groups) == 0 {
		return nil
	}
	return []string{"MIME type groups: [" + strings.Join(groups, ", ") + "]"}
}

func formatPattern(v any, _ contentful.ValidationRule, _ *contentful.Field) []string {
	if c, ok := formatRegexp("Pattern", v); ok {
		return []string{c}
	}
	return nil
}

// formatProhibitedPattern reads flags from the prohibit rule's own object.
// The upstream tooling read an enclosing rule's flags here, which can attach
// the wrong flags to a deny pattern; that behavior is treated as a bug.
func formatProhibitedPattern(v any, _ contentful.ValidationRule, _ *contentful.Field) []string {
	if c, ok := formatRegexp("Prohibited pattern", v); ok {
		return []string{c}
	}
	return nil
}

func formatNodeTypes(v any, _ contentful.ValidationRule, _ *contentful.Field) []string {
	types := toStrings(v)
	if len(types) == 0 {
		return nil
	}
	return []string{"Allowed node types: [" + strings.Join(types, ", ") + "]"}
}

func formatMarks(v any, _ contentful.ValidationRule, _ *contentful.Field) []string {
	marks := toStrings(v)
	if len(marks) == 0 {
		return nil
	}
	return []string{"Allowed marks: [" + strings.Join(marks, ", ") + "]"}
}

func formatRichTextNodes(v any, _ contentful.ValidationRule, _ *contentful.Field) []string {
	nodes, ok := v.(map[string]any)
	if !ok {
		return nil
	}

	var parts []string
	for _, key := range richTextNodeKeys {
		nv, ok := nodes[key]
		if !ok {
			continue
		}
		if targets := nestedLinkTargets(nv); len(targets) > 0 {
			parts = append(parts, key+": ["+strings.Join(targets, ", ")+"]")
		} else {
			parts = append(parts, key)
		}
	}
	if len(parts) == 0 {
		return nil
	}
	return []string{"Rich text nodes: " + strings.Join(parts, clauseSeparator)}
}

func formatMessage(v any, _ contentful.ValidationRule, _ *contentful.Field) []string {
	msg := cast.ToString(v)
	if msg == "" {
		return nil
	}
	return []string{fmt.Sprintf("Message: %q", msg)}
}

// formatBounds renders an optional {min, max} pair under one label. Both
// bounds present: "<label>: <min>-<max> <unit>"; a single bound: "Min
// <label>: <min> <unit>" or "Max <label>: <max> <unit>". The same template
// serves size, range, asset size, image dimensions and date range, so the
// three-way branch lives in exactly one place.
func formatBounds(label, unit string, v any) (string, bool) {
	bounds, ok := v.(map[string]any)
	if !ok {
		return "", false
	}

	minVal, hasMin := bounds["min"]
	maxVal, hasMax := bounds["max"]
	hasMin = hasMin && minVal != nil
	hasMax = hasMax && maxVal != nil

	var clause string
	switch {
	case hasMin && hasMax:
		clause = fmt.Sprintf("%s: %s-%s", label, cast.ToString(minVal), cast.ToString(maxVal))
	case hasMin:
		clause = fmt.Sprintf("Min %s: %s", label, cast.ToString(minVal))
	case hasMax:
		clause = fmt.Sprintf("Max %s: %s", label, cast.ToString(maxVal))
	default:
		return "", false
	}

	if unit != "" {
		clause += " " + unit
	}
	return clause, true
}

// formatRegexp renders a {pattern, flags} object in /pattern/flags notation.
func formatRegexp(label string, v any) (string, bool) {
	m, ok := v.(map[string]any)
	if !ok {
		return "", false
	}
	pattern := cast.ToString(m["pattern"])
	if pattern == "" {
		return "", false
	}
	flags := cast.ToString(m["flags"])
	return fmt.Sprintf("%s: /%s/%s", label, pattern, flags), true
}

// nestedLinkTargets extracts link-target names from a rich-text node
// permission value, which arrives either as a list of rule objects or as a
// single rule object.
func nestedLinkTargets(v any) []string {
	var targets []string
	switch val := v.(type) {
	case []any:
		for _, item := range val {
			if m, ok := item.(map[string]any); ok {
				targets = append(targets, LinkTargets([]contentful.ValidationRule{m})...)
			}
		}
	case map[string]any:
		targets = LinkTargets([]contentful.ValidationRule{val})
	}
	return targets
}

// toStrings coerces a loosely-typed JSON value to a string slice, preserving
// order. Scalars become a one-element slice.
func toStrings(v any) []string {
	if v == nil {
		return nil
	}
	raw, err := cast.ToSliceE(v)
	if err != nil {
		return []string{cast.ToString(v)}
	}
	out := make([]string, 0, len(raw))
	for _, item := range raw {
		out = append(out, cast.ToString(item))
	}
	return out
}

// fallbackClause serializes a rule no recognized key matched. Map keys are
// sorted by the encoder, so the fallback stays deterministic.
func fallbackClause(rule contentful.ValidationRule) string {
	data, err := json.Marshal(rule)
	if err != nil {
		return fmt.Sprintf("Unrecognized validation: %v", rule)
	}
	return "Unrecognized validation: " + string(data)
}
