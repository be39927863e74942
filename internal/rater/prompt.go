package rater

import (
	"fmt"
	"strings"
)

// maxExcerptLen caps what we send to the provider. Long pages are
// truncated at a word boundary.
const maxExcerptLen = 6000

const systemPrompt = `You are a content quality rater evaluating web content for Experience, Expertise, Authoritativeness, and Trust. You judge only qualities that keyword matching cannot: whether experience language sounds genuinely first-hand, whether the writing shows real depth of understanding, whether the tone is measured and honest. You respond with JSON only, no prose outside the JSON object.`

// BuildPrompt constructs the rating prompt. Every signal the model
// reports must quote the text verbatim; quotes are verified against the
// document before any signal is accepted.
func BuildPrompt(req JudgeRequest) string {
	excerpt := truncate(req.Excerpt, maxExcerptLen)

	contentType := req.Preset
	if contentType == "" {
		contentType = "general"
	}

	return fmt.Sprintf(`Rate the following content (type: %s) on four dimensions. For each dimension report zero or more soft signals you observed, each with:
- "name": short signal name
- "points": 0 to 4, how strongly the signal is present
- "quote": a VERBATIM quote from the text that shows the signal (required; signals without an exact quote are discarded)
- "explanation": one sentence on what the quote demonstrates

Also give each dimension a one-sentence "summary".

Respond with ONLY this JSON structure:
{
  "experience": {"signals": [{"name": "...", "points": 0, "quote": "...", "explanation": "..."}], "summary": "..."},
  "expertise": {"signals": [], "summary": "..."},
  "authoritativeness": {"signals": [], "summary": "..."},
  "trust": {"signals": [], "summary": "..."}
}

Title: %s

Content:
%s`, contentType, req.Title, excerpt)
}

func truncate(text string, limit int) string {
	if len(text) <= limit {
		return text
	}
	cut := text[:limit]
	if i := strings.LastIndexByte(cut, ' '); i > limit/2 {
		cut = cut[:i]
	}
	return cut + " …"
}
