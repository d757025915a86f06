package bundle

import "strings"

// LeafKind tags the storage shape found at the end of a key path.
type LeafKind int

const (
	// LeafNone marks an absent key or a value outside the bundle format.
	LeafNone LeafKind = iota
	// LeafString marks a plain template string.
	LeafString
	// LeafForms marks a plural-form table of string values.
	LeafForms
	// LeafContext marks a table holding grammatical-context form tables,
	// possibly alongside string-valued form keys.
	LeafContext
)

// Leaf is the classified value stored under a translation key. Exactly the
// fields implied by Kind are populated: Str for LeafString, Forms for
// LeafForms, Forms and Context for LeafContext.
type Leaf struct {
	Str     string
	Forms   map[string]string
	Context map[string]map[string]string
	Kind    LeafKind
}

// Classify resolves the shape of a raw tree value once, so consumers
// switch on Kind instead of re-sniffing types. Strings become LeafString.
// A map's string-valued keys become Forms; keys holding a nested map of
// strings become Context entries. String-valued keys are retained next to
// contexts so exact-count and interval overrides still apply at the outer
// level. Values of any other type classify as LeafNone.
func Classify(value any) Leaf {
	switch v := value.(type) {
	case string:
		return Leaf{Kind: LeafString, Str: v}
	case map[string]any:
		var forms map[string]string
		var contexts map[string]map[string]string

		for key, raw := range v {
			switch item := raw.(type) {
			case string:
				if forms == nil {
					forms = make(map[string]string)
				}
				forms[key] = item
			case map[string]any:
				inner := make(map[string]string, len(item))
				for name, rawInner := range item {
					if s, ok := rawInner.(string); ok {
						inner[name] = s
					}
				}
				if len(inner) == 0 {
					continue
				}
				if contexts == nil {
					contexts = make(map[string]map[string]string)
				}
				contexts[key] = inner
			}
		}

		if contexts != nil {
			return Leaf{Kind: LeafContext, Forms: forms, Context: contexts}
		}
		if forms != nil {
			return Leaf{Kind: LeafForms, Forms: forms}
		}
	}
	return Leaf{Kind: LeafNone}
}

// descend walks a dot-separated key path through a bundle tree. It reports
// false when any segment is absent or an intermediate node is not a map.
func descend(tree map[string]any, path string) (any, bool) {
	var current any = tree
	for _, segment := range strings.Split(path, ".") {
		node, ok := current.(map[string]any)
		if !ok {
			return nil, false
		}
		current, ok = node[segment]
		if !ok {
			return nil, false
		}
	}
	return current, true
}

// insertPath writes value into the tree at a dot-separated path, creating
// intermediate maps as needed. A non-map value sitting where a branch must
// grow is replaced by the branch.
func insertPath(tree map[string]any, path, value string) {
	segments := strings.Split(path, ".")
	node := tree
	for _, segment := range segments[:len(segments)-1] {
		next, ok := node[segment].(map[string]any)
		if !ok {
			next = make(map[string]any)
			node[segment] = next
		}
		node = next
	}
	node[segments[len(segments)-1]] = value
}
