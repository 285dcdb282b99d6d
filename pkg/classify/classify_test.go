package classify

import (
	"bytes"
	"encoding/json"
	"errors"
	"testing"

	"github.com/mchmarny/spamdetector/pkg/score"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func TestClassify_Boundary(t *testing.T) {
	tests := []struct {
		threshold int64
		want      Verdict
	}{
		{144, Spam},
		{145, Spam},
		{146, NotSpam},
		{1, Spam},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, Classify(145, tt.threshold), "threshold %d", tt.threshold)
	}

	assert.Equal(t, NotSpam, Classify(-10, 1))
	assert.Equal(t, NotSpam, Classify(0, 1))
}

func TestNewReport(t *testing.T) {
	res := &score.Result{Score: 145, Matches: []score.Match{{Phrase: "free", Weight: 100, Count: 1}}}
	r := NewReport(res, 146)
	assert.Equal(t, NotSpam, r.Verdict)
	assert.Equal(t, int64(145), r.Score)
	assert.Len(t, r.Matches, 1)

	r = NewReport(nil, 1)
	assert.Equal(t, NotSpam, r.Verdict)
}

func TestParseFormat(t *testing.T) {
	tests := []struct {
		in   string
		want Format
	}{
		{"", FormatText},
		{"text", FormatText},
		{"JSON", FormatJSON},
		{"yaml", FormatYAML},
		{"yml", FormatYAML},
	}
	for _, tt := range tests {
		got, err := ParseFormat(tt.in)
		require.NoError(t, err)
		assert.Equal(t, tt.want, got)
	}

	_, err := ParseFormat("xml")
	assert.Error(t, err)
}

func TestRender_Text(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Render(&buf, &Report{Verdict: Spam, Score: 145, Threshold: 144}, FormatText))
	assert.Equal(t, "SPAM (score: 145, threshold: 144)\n", buf.String())

	buf.Reset()
	require.NoError(t, Render(&buf, &Report{Verdict: NotSpam, Score: 145, Threshold: 146}, FormatText))
	assert.Equal(t, "NOT_SPAM (score: 145, threshold: 146)\n", buf.String())
}

func TestRender_JSON(t *testing.T) {
	r := &Report{
		Verdict:   Spam,
		Score:     145,
		Threshold: 145,
		Matches:   []score.Match{{Phrase: "free", Weight: 100, Count: 1}, {Phrase: "win", Weight: 45, Count: 1}},
	}
	var buf bytes.Buffer
	require.NoError(t, Render(&buf, r, FormatJSON))

	var got Report
	require.NoError(t, json.Unmarshal(buf.Bytes(), &got))
	assert.Equal(t, *r, got)
	assert.Contains(t, buf.String(), `"verdict": "SPAM"`)
}

func TestRender_YAML(t *testing.T) {
	r := &Report{Verdict: NotSpam, Score: -3, Threshold: 10}
	var buf bytes.Buffer
	require.NoError(t, Render(&buf, r, FormatYAML))
	assert.Contains(t, buf.String(), "verdict: NOT_SPAM")
	assert.NotContains(t, buf.String(), "matches")

	var got Report
	require.NoError(t, yaml.Unmarshal(buf.Bytes(), &got))
	assert.Equal(t, *r, got)
}

type failingWriter struct{}

func (failingWriter) Write([]byte) (int, error) { return 0, errors.New("closed") }

func TestRender_Errors(t *testing.T) {
	var buf bytes.Buffer
	assert.Error(t, Render(&buf, nil, FormatText))
	assert.Error(t, Render(&buf, &Report{}, Format("xml")))
	assert.Zero(t, buf.Len())

	assert.Error(t, Render(failingWriter{}, &Report{Verdict: Spam}, FormatText))
}
