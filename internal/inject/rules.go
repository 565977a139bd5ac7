package inject

import (
	_ "embed"
	"fmt"
	"regexp"
	"strings"

	"gopkg.in/yaml.v3"
)

//go:embed rules.yaml
var defaultRulesYAML []byte

// Kind selects how a rule matches and how many occurrences it rewrites
type Kind string

const (
	// KindNavigation matches dropdown-toggle nav links and rewrites every
	// occurrence once the first match is known to lack an icon.
	KindNavigation Kind = "navigation"
	// KindCapability matches links by href keyword and rewrites only the
	// first occurrence that lacks an icon, and nothing once the document
	// already references the rule's icon.
	KindCapability Kind = "capability"
)

// DefaultMarker is the substring that marks an anchor as already carrying an icon
const DefaultMarker = "icons/"

const iconStyle = "height: 20px; vertical-align: middle; margin-right: 8px;"

// Rule is one find/replace entry of the icon table
type Rule struct {
	Name  string `yaml:"name"`
	Kind  Kind   `yaml:"-"`
	Key   string `yaml:"key"`
	Label string `yaml:"label"`
	Icon  string `yaml:"icon"`
	Alt   string `yaml:"alt"`

	pattern *regexp.Regexp
}

// RuleSet is the ordered rule table. Navigation rules run before capability rules.
type RuleSet struct {
	Rules []Rule
}

type ruleFile struct {
	Navigation []Rule `yaml:"navigation"`
	Capability []Rule `yaml:"capability"`
}

// DefaultRules returns the embedded rule table
func DefaultRules() (*RuleSet, error) {
	return ParseRules(defaultRulesYAML)
}

// ParseRules decodes and compiles a YAML rule table
func ParseRules(data []byte) (*RuleSet, error) {
	var rf ruleFile
	if err := yaml.Unmarshal(data, &rf); err != nil {
		return nil, fmt.Errorf("failed to parse rules: %w", err)
	}

	rs := &RuleSet{}
	for _, group := range []struct {
		kind  Kind
		rules []Rule
	}{
		{KindNavigation, rf.Navigation},
		{KindCapability, rf.Capability},
	} {
		for _, r := range group.rules {
			r.Kind = group.kind
			if err := r.compile(); err != nil {
				return nil, err
			}
			rs.Rules = append(rs.Rules, r)
		}
	}
	return rs, nil
}

// NewRule builds and compiles a single rule
func NewRule(kind Kind, name, key, label, icon, alt string) (Rule, error) {
	r := Rule{Name: name, Kind: kind, Key: key, Label: label, Icon: icon, Alt: alt}
	if err := r.compile(); err != nil {
		return Rule{}, err
	}
	return r, nil
}

func (r *Rule) compile() error {
	if r.Name == "" || r.Key == "" || r.Label == "" || r.Icon == "" {
		return fmt.Errorf("rule %q: name, key, label and icon are required", r.Name)
	}

	var expr string
	switch r.Kind {
	case KindNavigation:
		expr = `(?i)(<a href="[^"]*` + regexp.QuoteMeta(r.Key) + `[^"]*" class="nav-link dropdown-toggle"[^>]*>)([^<]*)(` + r.Label + `)([^<]*</a>)`
	case KindCapability:
		expr = `(?i)(<a href="[^"]*` + regexp.QuoteMeta(r.Key) + `[^"]*">)([^<]*)(` + r.Label + `)([^<]*</a>)`
	default:
		return fmt.Errorf("rule %q: unknown kind %q", r.Name, r.Kind)
	}

	re, err := regexp.Compile(expr)
	if err != nil {
		return fmt.Errorf("rule %q: %w", r.Name, err)
	}
	r.pattern = re
	return nil
}

// Pattern returns the compiled expression
func (r Rule) Pattern() *regexp.Regexp {
	return r.pattern
}

// template builds the replacement, keeping the opening tag, label and tail
// but dropping any text captured between the tag and the label. The same
// shape is used for every rule: nothing is appended after the label, so
// "Cloud Security & AI Analytics" keeps its own text exactly once.
func (r Rule) template(iconPath string) string {
	img := fmt.Sprintf(`<img src="%s%s" alt="%s" style="%s">`, iconPath, r.Icon, r.Alt, iconStyle)
	return "${1}" + strings.ReplaceAll(img, "$", "$$") + "${3}${4}"
}

// Apply rewrites content for this rule. iconPath is the URL prefix of the
// icon directory as seen from the document, marker the substring that
// flags an anchor as already done. Reports whether content changed.
func (r Rule) Apply(content, iconPath, marker string) (string, bool) {
	tmpl := r.template(iconPath)

	switch r.Kind {
	case KindNavigation:
		loc := r.pattern.FindStringIndex(content)
		if loc == nil || strings.Contains(content[loc[0]:loc[1]], marker) {
			return content, false
		}
		out := r.pattern.ReplaceAllString(content, tmpl)
		return out, out != content

	case KindCapability:
		// One icon per capability per document; once it is in, later
		// occurrences stay untouched on every run.
		if strings.Contains(content, marker+r.Icon) {
			return content, false
		}
		for _, m := range r.pattern.FindAllStringSubmatchIndex(content, -1) {
			if strings.Contains(content[m[0]:m[1]], marker) {
				continue
			}
			expanded := r.pattern.ExpandString(nil, tmpl, content, m)
			out := content[:m[0]] + string(expanded) + content[m[1]:]
			return out, out != content
		}
	}
	return content, false
}

// Apply runs every rule in order and returns the rewritten content and the
// names of the rules that changed it.
func (rs *RuleSet) Apply(content, iconPath, marker string) (string, []string) {
	var applied []string
	for _, r := range rs.Rules {
		var changed bool
		content, changed = r.Apply(content, iconPath, marker)
		if changed {
			applied = append(applied, r.Name)
		}
	}
	return content, applied
}

// Count returns the number of rules of the given kind
func (rs *RuleSet) Count(kind Kind) int {
	n := 0
	for _, r := range rs.Rules {
		if r.Kind == kind {
			n++
		}
	}
	return n
}
