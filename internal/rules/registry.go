package rules

import (
	"errors"
	"fmt"
	"sync"
)

// ErrUnknownRule is returned when a selection names a rule the registry does not hold.
var ErrUnknownRule = errors.New("unknown rule")

// Category is one report section: a name and its rules in execution order.
type Category struct {
	Name  string
	Rules []Rule
}

// Registry keeps rules grouped by category. Categories appear in the order
// their first rule was registered; rules keep registration order inside a
// category. The order is the report layout.
type Registry struct {
	mu         sync.Mutex
	categories []Category
	byCategory map[string]int // name -> index into categories
	byID       map[string]Rule
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{
		byCategory: make(map[string]int),
		byID:       make(map[string]Rule),
	}
}

// Register appends rule to its category, creating the category when needed.
// Registering the same id twice is an error.
func (r *Registry) Register(rule Rule) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, dup := r.byID[rule.ID()]; dup {
		return fmt.Errorf("rule %q registered twice", rule.ID())
	}
	idx, ok := r.byCategory[rule.Category()]
	if !ok {
		idx = len(r.categories)
		r.categories = append(r.categories, Category{Name: rule.Category()})
		r.byCategory[rule.Category()] = idx
	}
	r.categories[idx].Rules = append(r.categories[idx].Rules, rule)
	r.byID[rule.ID()] = rule
	return nil
}

// MustRegister is Register for static tables.
func (r *Registry) MustRegister(rules ...Rule) *Registry {
	for _, rule := range rules {
		if err := r.Register(rule); err != nil {
			panic(err)
		}
	}
	return r
}

// Default builds the full rule set in report order with the given thresholds.
func Default(th Thresholds) *Registry {
	return NewRegistry().MustRegister(
		NewMissingSummary(th),
		NewTernaryCandidate(),
		NewMissingTryCatch(),
		NewEmptyCatch(),
		NewUnloggedGenericCatch(),
		NewMissingOptionStrict(),
		NewMissingOptionExplicit(),
		NewLateBoundVariable(),
		NewDynamicObjectCreation(),
		NewHungarianNotation(),
		NewReservedPrefix(),
		NewMissingMethodDoc(),
		NewMissingMethodComment(),
		NewLoopToLinqFilter(),
		NewLoopToLinqProjection(),
		NewStringConcatenation(),
		NewNestedLoop(),
		NewNestedForEach(),
		NewLengthInLoop(),
		NewMutateDuringIteration(),
		NewLocalNamingCase(),
		NewLocalHungarian(),
		NewAutoPropertyCandidate(),
		NewNonShortCircuitLogic(),
		NewExplicitCastStyle(),
		NewNegatedIsComparison(),
		NewRepeatedMemberAccess(th),
		NewTernaryOperatorPreferred(),
		NewEnumMissingFlags(),
		NewEmptyStringLiteral(),
		NewShortSelectCase(th),
	)
}

// DefaultRegistry is Default with DefaultThresholds.
func DefaultRegistry() *Registry {
	return Default(DefaultThresholds())
}

// Categories returns a copy of the categories in report order.
func (r *Registry) Categories() []Category {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]Category, len(r.categories))
	for i, c := range r.categories {
		out[i] = Category{Name: c.Name, Rules: append([]Rule(nil), c.Rules...)}
	}
	return out
}

// Rules returns every rule flattened in execution order.
func (r *Registry) Rules() []Rule {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []Rule
	for _, c := range r.categories {
		out = append(out, c.Rules...)
	}
	return out
}

// Len returns the number of registered rules.
func (r *Registry) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.byID)
}

// Lookup finds a rule by slug (nested-loop) or by code (VB1901).
func (r *Registry) Lookup(key string) (Rule, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if rule, ok := r.byID[key]; ok {
		return rule, true
	}
	for _, c := range r.categories {
		for _, rule := range c.Rules {
			if rule.Code().ID() == key {
				return rule, true
			}
		}
	}
	return nil, false
}

// Selection switches rules on or off by slug or code.
type Selection struct {
	Enable  []string
	Disable []string
}

// Filter returns a registry holding only the rules that are on under sel:
// rules on by default plus Enable, minus Disable. Disable wins when a rule
// is named in both. Categories left without rules are dropped.
func (r *Registry) Filter(sel Selection) (*Registry, error) {
	enabled, err := r.resolve(sel.Enable)
	if err != nil {
		return nil, err
	}
	disabled, err := r.resolve(sel.Disable)
	if err != nil {
		return nil, err
	}

	out := NewRegistry()
	for _, rule := range r.Rules() {
		id := rule.ID()
		on := rule.DefaultEnabled() || enabled[id]
		if disabled[id] || !on {
			continue
		}
		if err := out.Register(rule); err != nil {
			return nil, err
		}
	}
	return out, nil
}

func (r *Registry) resolve(keys []string) (map[string]bool, error) {
	set := make(map[string]bool, len(keys))
	for _, key := range keys {
		rule, ok := r.Lookup(key)
		if !ok {
			return nil, fmt.Errorf("%w: %q", ErrUnknownRule, key)
		}
		set[rule.ID()] = true
	}
	return set, nil
}
