package extract

import (
	"strings"

	"github.com/eeatgrade/eeatgrade/internal/model"
)

// FromText builds a Document from plain text. Paragraphs separated by
// blank lines become sections; a short first line followed by a blank
// line is treated as the title.
func (e *Extractor) FromText(text string) (*model.Document, error) {
	text = strings.TrimSpace(strings.ReplaceAll(text, "\r\n", "\n"))
	if text == "" {
		return nil, model.NewInputError("empty text content", nil)
	}

	doc := &model.Document{PlainText: text}
	doc.WordCount = len(strings.Fields(text))

	paragraphs := strings.Split(text, "\n\n")
	offset := 0
	for _, para := range paragraphs {
		trimmed := strings.TrimSpace(para)
		if trimmed != "" {
			sec := model.Section{
				Text:   trimmed,
				Index:  len(doc.Sections),
				Offset: offset,
			}
			// single short line reads as a heading
			if !strings.Contains(trimmed, "\n") && len(trimmed) < 80 && !strings.HasSuffix(trimmed, ".") {
				sec.Heading = trimmed
				if doc.Title == "" {
					doc.Title = trimmed
				}
			}
			doc.Sections = append(doc.Sections, sec)
		}
		offset += len(para) + 2
	}

	if m := bylinePattern.FindStringSubmatch(text); m != nil {
		doc.Author.Name = m[1]
	}
	if creds := credentialPattern.FindAllString(text, 3); creds != nil {
		doc.Author.Credentials = strings.Join(dedupeStrings(creds), ", ")
	}
	doc.Disclaimers = cueMatches(text, disclaimerCues)
	doc.Disclosures = cueMatches(text, disclosureCues)

	return doc, nil
}
