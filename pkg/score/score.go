// Package score sums table weights over the tokens of a text.
package score

import (
	"sort"
	"strings"

	"github.com/mchmarny/spamdetector/pkg/table"
	"github.com/mchmarny/spamdetector/pkg/text"
)

// Match is one table key found in the text.
type Match struct {
	Phrase string `json:"phrase" yaml:"phrase"`
	Weight int64  `json:"weight" yaml:"weight"`
	Count  int    `json:"count" yaml:"count"`
}

// Result is the total score and the keys that contributed to it.
type Result struct {
	Score   int64   `json:"score" yaml:"score"`
	Matches []Match `json:"matches,omitempty" yaml:"matches,omitempty"`
}

// Text tokenizes content and scores it against tbl.
func Text(tbl *table.Table, content string) *Result {
	return Tokens(tbl, text.Tokenize(content))
}

// Tokens scores an already tokenized text. Every occurrence of every key
// counts, including overlapping phrase occurrences.
func Tokens(tbl *table.Table, tokens []string) *Result {
	res := &Result{}
	if tbl == nil || tbl.Len() == 0 {
		return res
	}

	lengths := tbl.PhraseLengths()
	counts := make(map[string]*Match)
	for i := range tokens {
		for _, n := range lengths {
			if i+n > len(tokens) {
				break
			}
			key := strings.Join(tokens[i:i+n], " ")
			w, ok := tbl.Weight(key)
			if !ok {
				continue
			}
			res.Score += w
			if m, ok := counts[key]; ok {
				m.Count++
				continue
			}
			counts[key] = &Match{Phrase: key, Weight: w, Count: 1}
		}
	}

	for _, m := range counts {
		res.Matches = append(res.Matches, *m)
	}
	sort.Slice(res.Matches, func(i, j int) bool {
		return res.Matches[i].Phrase < res.Matches[j].Phrase
	})

	return res
}
