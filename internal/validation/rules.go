package validation

import "strings"

// Rule attaches a validator tag chain to one input field. Chains should
// lead with filled (required) or omitempty (nullable), followed by a type
// tag (string, integer, numeric, date) before any bound such as min or max.
type Rule struct {
	Field string
	Tags  string
}

// Rules is an ordered rule set. Order only affects iteration, never which
// message a field reports.
type Rules []Rule

// Fields lists the whitelisted field names.
func (r Rules) Fields() []string {
	fields := make([]string, len(r))
	for i, rule := range r {
		fields[i] = rule.Field
	}
	return fields
}

// Pick returns exactly the whitelisted fields of input. Absent fields are
// present with a nil value so binding clears them.
func (r Rules) Pick(input map[string]any) map[string]any {
	out := make(map[string]any, len(r))
	for _, rule := range r {
		out[rule.Field] = input[rule.Field]
	}
	return out
}

func (r Rule) has(tag string) bool {
	for _, t := range strings.Split(r.Tags, ",") {
		name, _, _ := strings.Cut(t, "=")
		if name == tag {
			return true
		}
	}
	return false
}
