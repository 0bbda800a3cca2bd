package markdown

import (
	"regexp"
	"strings"

	"digibayt/internal/lib/slug"
)

// maxTOCLevel excludes deep headings from the table of contents.
const maxTOCLevel = 3

type Heading struct {
	ID    string `json:"id"`
	Text  string `json:"text"`
	Level int    `json:"level"`
}

var headingRe = regexp.MustCompile(`^(#{1,6})\s+(.+?)\s*$`)

// GenerateTOC scans line-anchored heading markers and returns the ordered
// entries of depth <= 3. Anchor ids are the slugified heading text; two
// identical headings yield the same id.
func GenerateTOC(content string) []Heading {
	toc := make([]Heading, 0)

	for _, line := range strings.Split(content, "\n") {
		m := headingRe.FindStringSubmatch(line)
		if m == nil {
			continue
		}

		level := len(m[1])
		if level > maxTOCLevel {
			continue
		}

		text := strings.TrimSpace(m[2])
		toc = append(toc, Heading{
			ID:    slug.Make(text),
			Text:  text,
			Level: level,
		})
	}

	return toc
}

var wordRe = regexp.MustCompile(`\S+`)

// EstimateReadTime returns the reading time in whole minutes at 200 words
// per minute, never less than one minute for non-empty content.
func EstimateReadTime(content string) int {
	words := len(wordRe.FindAllString(content, -1))
	if words == 0 {
		return 0
	}

	minutes := (words + 199) / 200
	return minutes
}
