package location

import (
	"sort"
	"strings"
	"unicode/utf8"
)

// Match scores, highest first. A city entry gets CityBonus on top.
const (
	ScoreExact        = 100
	ScoreStartsWith   = 90
	ScoreAlias        = 80
	ScoreNameContains = 70
	ScoreParentCity   = 60
	ScoreState        = 50
	CityBonus         = 10
)

// MinQueryLength is the shortest query that is searched at all.
const MinQueryLength = 2

// DefaultSearchLimit applies when Search is called with a non-positive limit.
const DefaultSearchLimit = 10

// lookupMinScore is the score a top hit needs for Lookup to accept it.
const lookupMinScore = ScoreStartsWith

// Result is a scored gazetteer match.
type Result struct {
	Entry Entry `json:"entry"`
	Score int   `json:"score"`
}

// Resolver ranks gazetteer entries against free-text queries.
type Resolver struct {
	gazetteer *Gazetteer
	popular   []Entry
}

// NewResolver creates a resolver over g. A nil g uses DefaultGazetteer.
func NewResolver(g *Gazetteer) *Resolver {
	if g == nil {
		g = DefaultGazetteer()
	}

	want := make(map[string]struct{}, len(popularCityNames))
	for _, name := range popularCityNames {
		want[name] = struct{}{}
	}
	var popular []Entry
	for _, e := range g.entries {
		if e.Category != CategoryCity {
			continue
		}
		if _, ok := want[e.Name]; ok {
			popular = append(popular, e)
		}
	}

	return &Resolver{gazetteer: g, popular: popular}
}

// Search returns entries matching query, best first. Equal scores keep
// table order. Queries shorter than MinQueryLength return nothing.
func (r *Resolver) Search(query string, limit int) []Result {
	term := strings.ToLower(strings.TrimSpace(query))
	if utf8.RuneCountInString(term) < MinQueryLength {
		return nil
	}
	if limit <= 0 {
		limit = DefaultSearchLimit
	}

	var results []Result
	for _, e := range r.gazetteer.entries {
		score := scoreEntry(e, term)
		if score == 0 {
			continue
		}
		if e.Category == CategoryCity {
			score += CityBonus
		}
		results = append(results, Result{Entry: e.clone(), Score: score})
	}

	sort.SliceStable(results, func(i, j int) bool {
		return results[i].Score > results[j].Score
	})

	if len(results) > limit {
		results = results[:limit]
	}
	return results
}

// Lookup resolves a place name to a single entry when the best match for its
// first segment is at least a prefix match.
func (r *Resolver) Lookup(name string) (Entry, bool) {
	first := strings.TrimSpace(strings.SplitN(name, ",", 2)[0])
	results := r.Search(first, 1)
	if len(results) == 0 || results[0].Score < lookupMinScore {
		return Entry{}, false
	}
	return results[0].Entry, true
}

// PopularCities returns the fixed set of major-city entries used for
// placeholder suggestions, in table order.
func (r *Resolver) PopularCities() []Entry {
	return cloneEntries(r.popular)
}

// scoreEntry returns the base score of e for a lower-cased term, or 0.
func scoreEntry(e Entry, term string) int {
	name := strings.ToLower(e.Name)
	switch {
	case name == term:
		return ScoreExact
	case strings.HasPrefix(name, term):
		return ScoreStartsWith
	case aliasContains(e.Aliases, term):
		return ScoreAlias
	case strings.Contains(name, term):
		return ScoreNameContains
	case strings.Contains(strings.ToLower(e.ParentCity), term):
		return ScoreParentCity
	case strings.Contains(strings.ToLower(e.State), term):
		return ScoreState
	default:
		return 0
	}
}

func aliasContains(aliases []string, term string) bool {
	for _, a := range aliases {
		if strings.Contains(strings.ToLower(a), term) {
			return true
		}
	}
	return false
}
