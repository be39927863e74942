package rater

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/eeatgrade/eeatgrade/internal/model"
)

// maxSoftPoints caps what any single soft signal can contribute, no
// matter what the model claims.
const maxSoftPoints = 4

type ratedSignal struct {
	Name        string  `json:"name"`
	Points      float64 `json:"points"`
	Quote       string  `json:"quote"`
	Explanation string  `json:"explanation"`
}

type ratedDimension struct {
	Signals []ratedSignal `json:"signals"`
	Summary string        `json:"summary"`
}

type ratingPayload struct {
	Experience        ratedDimension `json:"experience"`
	Expertise         ratedDimension `json:"expertise"`
	Authoritativeness ratedDimension `json:"authoritativeness"`
	Trust             ratedDimension `json:"trust"`
}

// parseJudgment decodes the provider's JSON and validates every signal:
// the quote must appear verbatim (case-insensitive) in the document
// text, and points are clamped to [0, maxSoftPoints]. Signals that fail
// validation are dropped silently.
func parseJudgment(raw, documentText string) (*Judgment, error) {
	raw = stripFences(raw)

	var payload ratingPayload
	if err := json.Unmarshal([]byte(raw), &payload); err != nil {
		return nil, fmt.Errorf("unexpected rater output: %w", err)
	}

	haystack := strings.ToLower(documentText)
	judgment := &Judgment{Summaries: map[model.Dimension]string{}}

	add := func(dim model.Dimension, rd ratedDimension) {
		if rd.Summary != "" {
			judgment.Summaries[dim] = rd.Summary
		}
		for _, rs := range rd.Signals {
			quote := strings.TrimSpace(rs.Quote)
			if rs.Name == "" || quote == "" {
				continue
			}
			if !strings.Contains(haystack, strings.ToLower(quote)) {
				continue // hallucinated quote
			}
			points := rs.Points
			if points < 0 {
				points = 0
			}
			if points > maxSoftPoints {
				points = maxSoftPoints
			}
			judgment.Signals = append(judgment.Signals, model.Signal{
				Dimension:      dim,
				Name:           rs.Name,
				Found:          points > 0,
				Points:         points,
				PointsPossible: maxSoftPoints,
				Quote:          quote,
				Explanation:    rs.Explanation,
				Soft:           true,
			})
		}
	}

	add(model.DimensionExperience, payload.Experience)
	add(model.DimensionExpertise, payload.Expertise)
	add(model.DimensionAuthoritativeness, payload.Authoritativeness)
	add(model.DimensionTrust, payload.Trust)

	return judgment, nil
}

// stripFences removes a markdown code fence if the model wrapped its
// JSON in one.
func stripFences(raw string) string {
	raw = strings.TrimSpace(raw)
	if !strings.HasPrefix(raw, "```") {
		return raw
	}
	raw = strings.TrimPrefix(raw, "```json")
	raw = strings.TrimPrefix(raw, "```")
	raw = strings.TrimSuffix(strings.TrimSpace(raw), "```")
	return strings.TrimSpace(raw)
}
