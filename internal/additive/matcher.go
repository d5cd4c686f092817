package additive

import "strings"

// MatchResult holds the records detected in one text and the codes that
// matched nothing.
type MatchResult struct {
	Matched   []Record `json:"matched"`
	Unmatched []string `json:"unmatched_codes"`
}

// Match resolves extracted candidates against the catalog and then scans the
// text for every record name and synonym. Each record appears at most once,
// keyed by canonical code: code hits come first in candidate order, followed
// by name and synonym hits in catalog order.
//
// A nil or unloaded catalog degrades to reporting every candidate as unmatched.
func Match(c *Catalog, candidates []Candidate, text string) MatchResult {
	res := MatchResult{Matched: []Record{}, Unmatched: []string{}}
	seenRecord := make(map[string]bool)
	seenUnmatched := make(map[string]bool)

	add := func(r Record) {
		if seenRecord[r.Code] {
			return
		}
		seenRecord[r.Code] = true
		res.Matched = append(res.Matched, r)
	}

	if !c.Loaded() {
		for _, cand := range candidates {
			if !seenUnmatched[cand.Code] {
				seenUnmatched[cand.Code] = true
				res.Unmatched = append(res.Unmatched, cand.Code)
			}
		}
		return res
	}

	for _, cand := range candidates {
		if r, err := c.LookupCode(cand.Code); err == nil {
			add(r)
			continue
		}
		if r, ok := c.LookupName(cand.Code); ok {
			add(r)
			continue
		}
		if !seenUnmatched[cand.Code] {
			seenUnmatched[cand.Code] = true
			res.Unmatched = append(res.Unmatched, cand.Code)
		}
	}

	folded := foldText(text)
	if folded == "" {
		return res
	}
	for _, t := range c.terms {
		if strings.Contains(folded, t.text) {
			add(c.records[t.index])
		}
	}
	return res
}
