// Package classifier routes catalog entries to service sub-categories from
// their multilingual names.
package classifier

import (
	"fmt"
	"strings"

	"khadamat/models"

	"golang.org/x/text/unicode/norm"
)

// ActionKind is what a click on a classified card does.
type ActionKind string

const (
	ActionNavigate ActionKind = "navigate"
	ActionForm     ActionKind = "form"
	ActionNone     ActionKind = "none"
)

// Action is the routing target of a tag on a given page.
type Action struct {
	Kind        ActionKind `json:"kind"`
	Route       string     `json:"route,omitempty"`
	Reservation string     `json:"reservation,omitempty"`
}

func (a Action) Clickable() bool {
	return a.Kind == ActionNavigate || a.Kind == ActionForm
}

// Routes maps tags to actions for one page.
type Routes map[Tag]Action

// Table is a validated rule table with its priority order.
type Table struct {
	rules    map[Tag]Rule
	priority []Tag
}

// NewTable checks that every referenced tag has a rule and lower-cases keywords.
func NewTable(rules []Rule, priority []Tag) (*Table, error) {
	t := &Table{rules: make(map[Tag]Rule, len(rules))}
	for _, r := range rules {
		if _, dup := t.rules[r.Tag]; dup {
			return nil, fmt.Errorf("classifier: duplicate rule %q", r.Tag)
		}
		r.Positive = r.Positive.lower()
		r.ExtraExclusions = r.ExtraExclusions.lower()
		t.rules[r.Tag] = r
	}
	for _, r := range t.rules {
		for _, ex := range r.Excludes {
			if _, ok := t.rules[ex]; !ok {
				return nil, fmt.Errorf("classifier: rule %q excludes unknown tag %q", r.Tag, ex)
			}
		}
		for _, req := range r.Requires {
			dep, ok := t.rules[req]
			if !ok {
				return nil, fmt.Errorf("classifier: rule %q requires unknown tag %q", r.Tag, req)
			}
			if len(dep.Requires) > 0 {
				return nil, fmt.Errorf("classifier: rule %q requires %q which has requirements itself", r.Tag, req)
			}
		}
	}
	for _, tag := range priority {
		if _, ok := t.rules[tag]; !ok {
			return nil, fmt.Errorf("classifier: priority lists unknown tag %q", tag)
		}
	}
	t.priority = append([]Tag(nil), priority...)
	return t, nil
}

// Default is the table built from DefaultRules and DefaultPriority.
var Default = mustTable(DefaultRules, DefaultPriority)

func mustTable(rules []Rule, priority []Tag) *Table {
	t, err := NewTable(rules, priority)
	if err != nil {
		panic(err)
	}
	return t
}

// Priority returns a copy of the dispatch order.
func (t *Table) Priority() []Tag {
	return append([]Tag(nil), t.priority...)
}

// Matches reports whether names belong to tag. Unknown tags never match.
func (t *Table) Matches(tag Tag, names models.Localized) bool {
	return t.match(tag, normalize(names))
}

// Classify returns the first tag in priority order whose rule matches.
func (t *Table) Classify(names models.Localized) (Tag, bool) {
	n := normalize(names)
	for _, tag := range t.priority {
		if t.match(tag, n) {
			return tag, true
		}
	}
	return "", false
}

// Dispatch classifies names and looks the tag up in routes. Unclassified
// names, or tags without a clickable route, yield ActionNone.
func (t *Table) Dispatch(names models.Localized, routes Routes) (Tag, Action) {
	tag, ok := t.Classify(names)
	if !ok {
		return "", Action{Kind: ActionNone}
	}
	a, ok := routes[tag]
	if !ok || !a.Clickable() {
		return tag, Action{Kind: ActionNone}
	}
	return tag, a
}

type normalized struct {
	fr, ar, en string
}

func normalize(names models.Localized) normalized {
	return normalized{
		fr: fold(names.FR),
		ar: fold(names.AR),
		en: fold(names.EN),
	}
}

// fold puts a name or keyword in composed form and lower case, so names
// typed with combining accents match the keyword tables.
func fold(s string) string {
	return strings.ToLower(strings.TrimSpace(norm.NFC.String(s)))
}

func (t *Table) match(tag Tag, n normalized) bool {
	r, ok := t.rules[tag]
	if !ok {
		return false
	}
	if !r.Positive.any(n) {
		return false
	}
	for _, req := range r.Requires {
		if !t.match(req, n) {
			return false
		}
	}
	if r.ExtraExclusions.any(n) {
		return false
	}
	for _, ex := range r.Excludes {
		if t.rules[ex].Positive.any(n) {
			return false
		}
	}
	return true
}

func (k Keywords) any(n normalized) bool {
	return containsAny(n.fr, k.FR) || containsAny(n.ar, k.AR) || containsAny(n.en, k.EN)
}

func (k Keywords) lower() Keywords {
	return Keywords{FR: lowerAll(k.FR), AR: lowerAll(k.AR), EN: lowerAll(k.EN)}
}

func containsAny(field string, keywords []string) bool {
	if field == "" {
		return false
	}
	for _, kw := range keywords {
		if kw != "" && strings.Contains(field, kw) {
			return true
		}
	}
	return false
}

func lowerAll(in []string) []string {
	if len(in) == 0 {
		return nil
	}
	out := make([]string, len(in))
	for i, s := range in {
		out[i] = fold(s)
	}
	return out
}
