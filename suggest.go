package peg

import "github.com/lithammer/fuzzysearch/fuzzy"

// suggestionHint ranks candidates (the expected labels an exhausted Or
// collected) against what was actually found at the failure point, and
// returns a short "Did you mean" hint when one candidate is a close
// lexical match. It returns "" when nothing is close enough to be useful,
// so a grammar with genuinely unrelated alternatives doesn't get a
// misleading suggestion tacked onto every error.
func suggestionHint(candidates []string, found string) string {
	if found == "" || found == "<end of input>" || len(candidates) == 0 {
		return ""
	}
	ranks := fuzzy.RankFindFold(found, candidates)
	if len(ranks) == 0 {
		return ""
	}
	best := ranks[0]
	for _, r := range ranks[1:] {
		if r.Distance < best.Distance {
			best = r
		}
	}
	if best.Distance > 2 {
		return ""
	}
	return "Did you mean " + quoteStr(best.Target) + "?"
}
