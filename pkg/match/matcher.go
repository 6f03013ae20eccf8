// Package match finds the best manufacturer candidate for a commercial
// listing (or vice versa) without any shared identifier between sources.
// Matching runs in two passes: normalized-key equality first, then a
// token-set similarity score against a hard threshold.
package match

import (
	"github.com/unisonlabs/unison/pkg/normalize"
)

// FuzzyThreshold is the hard similarity cutoff for fuzzy matches.
// A candidate scoring at or above this value matches; anything below does
// not. This is a contract value, not tunable configuration.
const FuzzyThreshold = 0.70

// Method describes how a match was produced. It is a closed set: every
// consumer must handle all three cases.
type Method int

const (
	// MethodNone means no candidate matched.
	MethodNone Method = iota
	// MethodExact means normalized keys compared equal.
	MethodExact
	// MethodFuzzy means token-set similarity met the threshold.
	MethodFuzzy
)

// String returns the string representation of the match method.
func (m Method) String() string {
	switch m {
	case MethodExact:
		return "exact"
	case MethodFuzzy:
		return "fuzzy"
	case MethodNone:
		return "none"
	default:
		return "unknown"
	}
}

// Result is the outcome of a candidate search.
type Result struct {
	// CandidateIndex is the index of the matched candidate in the input
	// slice, or -1 when Method is MethodNone.
	CandidateIndex int
	Score          float64
	Method         Method
}

// Matcher searches candidate name lists for the best match of a target name.
// It is stateless and pure: marking a candidate consumed after acceptance is
// the caller's job, communicated back in via the consumed set.
type Matcher struct {
	normalizer *normalize.Normalizer
}

// New creates a Matcher using the given normalizer.
func New(n *normalize.Normalizer) *Matcher {
	return &Matcher{normalizer: n}
}

// FindBest returns the best match for target among the unconsumed candidates.
// Exact key equality wins outright with score 1.0; otherwise the highest
// token-set similarity at or above FuzzyThreshold wins. Ties keep the first
// candidate in input order, so results are deterministic for a given input
// ordering. An empty normalized target key is unmatchable.
func (m *Matcher) FindBest(target string, candidates []string, brandName string, consumed map[int]struct{}) Result {
	targetKey := m.normalizer.Key(target, brandName)

	if targetKey != "" {
		for i, candidate := range candidates {
			if _, ok := consumed[i]; ok {
				continue
			}
			if m.normalizer.Key(candidate, brandName) == targetKey {
				return Result{CandidateIndex: i, Score: 1.0, Method: MethodExact}
			}
		}
	}

	targetTokens := m.normalizer.Tokens(target, brandName)

	bestIndex := -1
	bestScore := 0.0
	for i, candidate := range candidates {
		if _, ok := consumed[i]; ok {
			continue
		}
		score := Similarity(targetTokens, m.normalizer.Tokens(candidate, brandName))
		if score > bestScore {
			bestScore = score
			bestIndex = i
		}
	}

	if bestIndex >= 0 && bestScore >= FuzzyThreshold {
		return Result{CandidateIndex: bestIndex, Score: bestScore, Method: MethodFuzzy}
	}

	return Result{CandidateIndex: -1, Score: 0.0, Method: MethodNone}
}

// Similarity computes the token-set similarity of two token lists:
// 2*|A∩B| / (|A|+|B|) over the distinct-token sets, which is 1 minus the
// normalized symmetric difference. Either side empty scores 0.
func Similarity(a, b []string) float64 {
	setA := toSet(a)
	setB := toSet(b)
	if len(setA) == 0 || len(setB) == 0 {
		return 0.0
	}

	shared := 0
	for tok := range setA {
		if _, ok := setB[tok]; ok {
			shared++
		}
	}

	return 2.0 * float64(shared) / float64(len(setA)+len(setB))
}

func toSet(tokens []string) map[string]struct{} {
	set := make(map[string]struct{}, len(tokens))
	for _, tok := range tokens {
		set[tok] = struct{}{}
	}
	return set
}
