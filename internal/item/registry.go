package item

import (
	"fmt"
	"sort"
)

// registry is built once from the forward catalog table. It is never
// mutated after package initialization, so it is safe to share.
var registry = newRegistry()

type tokenRegistry struct {
	byToken  map[string]Item
	families map[Family][]Item
}

func newRegistry() *tokenRegistry {
	r := &tokenRegistry{
		byToken:  make(map[string]Item, Count),
		families: make(map[Family][]Item),
	}
	for i := Item(1); i < numItems; i++ {
		e := catalog[i]
		if e.token == "" {
			panic(fmt.Sprintf("item: catalog entry %d has no token", i))
		}
		if prev, dup := r.byToken[e.token]; dup {
			panic(fmt.Sprintf("item: token %q registered for both %d and %d", e.token, prev, i))
		}
		r.byToken[e.token] = i
		r.families[e.family] = append(r.families[e.family], i)
	}
	return r
}

// UnknownTokenError reports a token the registry cannot resolve. It means
// the host and the engine disagree about the item catalog.
type UnknownTokenError struct {
	Token string
}

func (e *UnknownTokenError) Error() string {
	return fmt.Sprintf("UNKNOWN_ITEM: no item registered for token %q", e.Token)
}

// Parse resolves a registry token to its item identity.
func Parse(token string) (Item, error) {
	i, ok := registry.byToken[token]
	if !ok {
		return None, &UnknownTokenError{Token: token}
	}
	return i, nil
}

// MustParse is like Parse but panics on unknown tokens.
// Use only in tests or with compiled-in tokens.
func MustParse(token string) Item {
	i, err := Parse(token)
	if err != nil {
		panic(err)
	}
	return i
}

// Tokens returns every registered token, sorted.
func Tokens() []string {
	tokens := make([]string, 0, len(registry.byToken))
	for t := range registry.byToken {
		tokens = append(tokens, t)
	}
	sort.Strings(tokens)
	return tokens
}

// Families returns every family name, sorted.
func Families() []Family {
	fams := make([]Family, 0, len(registry.families))
	for f := range registry.families {
		fams = append(fams, f)
	}
	sort.Slice(fams, func(a, b int) bool { return fams[a] < fams[b] })
	return fams
}

// Names converts items to their tokens, preserving order.
func Names(items []Item) []string {
	names := make([]string, len(items))
	for i, it := range items {
		names[i] = it.String()
	}
	return names
}
