package schema

import (
	"sort"

	"github.com/contentkit/modelreport/internal/contentful"
)

// AuditReport summarizes what the decoder observed across a whole schema.
// It is purely diagnostic: generating it never alters report output, and an
// unhappy audit never aborts a run.
type AuditReport struct {
	// RuleKeys are the recognized validation keys seen, sorted.
	RuleKeys []string
	// BaseTypes are the field and array-item base types seen, sorted.
	BaseTypes []string
	// NodeTypes are the rich-text node literals seen, sorted.
	NodeTypes []string
	// Marks are the rich-text mark literals seen, sorted.
	Marks []string
	// Unclassified lists every rule the decoder could only render through
	// the raw-serialization fallback, flagging a possible decoder gap.
	Unclassified []UnclassifiedRule
}

// UnclassifiedRule locates one rule that matched no recognized key.
type UnclassifiedRule struct {
	ContentTypeID string
	FieldID       string
	Raw           string
}

// Clean reports whether every rule in the schema was classified.
func (r AuditReport) Clean() bool {
	return len(r.Unclassified) == 0
}

// Audit runs the decoder speculatively over every rule in the schema and
// collects coverage information.
func Audit(types []contentful.ContentType) AuditReport {
	recognized := make(map[string]struct{}, len(clauseRules))
	for _, cr := range clauseRules {
		recognized[cr.key] = struct{}{}
	}

	ruleKeys := map[string]struct{}{}
	baseTypes := map[string]struct{}{}
	nodeTypes := map[string]struct{}{}
	marks := map[string]struct{}{}
	var unclassified []UnclassifiedRule

	observe := func(ctID, fieldID string, rules []contentful.ValidationRule, owner *contentful.Field) {
		for _, rule := range rules {
			for key := range rule {
				if _, ok := recognized[key]; ok {
					ruleKeys[key] = struct{}{}
				}
			}
			for _, nt := range toStrings(rule["enabledNodeTypes"]) {
				nodeTypes[nt] = struct{}{}
			}
			for _, m := range toStrings(rule["enabledMarks"]) {
				marks[m] = struct{}{}
			}
			if nodes, ok := rule["nodes"].(map[string]any); ok {
				for key := range nodes {
					nodeTypes[key] = struct{}{}
				}
			}

			if _, classified := decodeRule(rule, owner); !classified {
				unclassified = append(unclassified, UnclassifiedRule{
					ContentTypeID: ctID,
					FieldID:       fieldID,
					Raw:           fallbackClause(rule),
				})
			}
		}
	}

	for _, ct := range types {
		for _, f := range ct.Fields {
			if f.Type != "" {
				baseTypes[f.Type] = struct{}{}
			}
			observe(ct.Sys.ID, f.ID, f.Validations, &f)

			if f.Items != nil {
				if f.Items.Type != "" {
					baseTypes[f.Items.Type] = struct{}{}
				}
				observe(ct.Sys.ID, f.ID, f.Items.Validations, nil)
			}
		}
	}

	return AuditReport{
		RuleKeys:     sortedKeys(ruleKeys),
		BaseTypes:    sortedKeys(baseTypes),
		NodeTypes:    sortedKeys(nodeTypes),
		Marks:        sortedKeys(marks),
		Unclassified: unclassified,
	}
}

func sortedKeys(set map[string]struct{}) []string {
	if len(set) == 0 {
		return nil
	}
	keys := make([]string, 0, len(set))
	for k := range set {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
