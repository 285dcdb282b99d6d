// Package classify turns a score and a threshold into a verdict and renders
// the resulting report.
package classify

import (
	"github.com/mchmarny/spamdetector/pkg/score"
)

// Verdict is the outcome of a classification.
type Verdict string

const (
	Spam    Verdict = "SPAM"
	NotSpam Verdict = "NOT_SPAM"
)

// Report is everything printed for a successful run.
type Report struct {
	Verdict   Verdict       `json:"verdict" yaml:"verdict"`
	Score     int64         `json:"score" yaml:"score"`
	Threshold int64         `json:"threshold" yaml:"threshold"`
	Matches   []score.Match `json:"matches,omitempty" yaml:"matches,omitempty"`
}

// Classify returns Spam when s is at or above threshold.
func Classify(s, threshold int64) Verdict {
	if s >= threshold {
		return Spam
	}
	return NotSpam
}

// NewReport classifies res against threshold.
func NewReport(res *score.Result, threshold int64) *Report {
	r := &Report{Threshold: threshold}
	if res != nil {
		r.Score = res.Score
		r.Matches = res.Matches
	}
	r.Verdict = Classify(r.Score, threshold)
	return r
}
