package schema

import (
	"strings"

	"github.com/contentkit/modelreport/internal/contentful"
)

// ResolveType maps a field descriptor to its canonical type label.
//
// Link fields resolve against their own validation rules: an Entry link
// constrained to specific content types renders the target list, an
// unconstrained one renders "Reference to Entry". Array fields apply the same
// logic one level down on the item descriptor. Every other base type renders
// its tag verbatim. Malformed descriptors (Array without items, Link without
// a linkType) degrade to the most generic applicable label instead of
// failing.
func ResolveType(f contentful.Field) string {
	switch f.Type {
	case contentful.TypeLink:
		return linkLabel(f.LinkType, f.Validations)
	case contentful.TypeArray:
		if f.Items == nil || f.Items.Type == "" {
			return "Array"
		}
		if f.Items.Type == contentful.TypeLink {
			return "Array<" + linkLabel(f.Items.LinkType, f.Items.Validations) + ">"
		}
		return "Array<" + f.Items.Type + ">"
	case "":
		return "Unknown"
	default:
		return f.Type
	}
}

func linkLabel(linkType string, rules []contentful.ValidationRule) string {
	switch linkType {
	case contentful.LinkEntry:
		if targets := LinkTargets(rules); len(targets) > 0 {
			return "Reference to [" + strings.Join(targets, ", ") + "]"
		}
		return "Reference to Entry"
	case contentful.LinkAsset:
		return "Reference to Asset"
	case "":
		return "Link"
	default:
		return "Link to " + linkType
	}
}
