package markdown

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGenerateTOC(t *testing.T) {
	content := `# Introduction

Some text here.

## Getting Started

### Installation

#### Too Deep

## Getting Started

Body text with a # that is not a heading.
`

	toc := GenerateTOC(content)

	assert.Len(t, toc, 4)

	assert.Equal(t, Heading{ID: "introduction", Text: "Introduction", Level: 1}, toc[0])
	assert.Equal(t, Heading{ID: "getting-started", Text: "Getting Started", Level: 2}, toc[1])
	assert.Equal(t, Heading{ID: "installation", Text: "Installation", Level: 3}, toc[2])

	// duplicate headings keep the same anchor id
	assert.Equal(t, toc[1].ID, toc[3].ID)
}

func TestGenerateTOC_Empty(t *testing.T) {
	assert.Empty(t, GenerateTOC(""))
	assert.Empty(t, GenerateTOC("just a paragraph\nanother line"))
}

func TestGenerateTOC_SkipsDeepHeadings(t *testing.T) {
	toc := GenerateTOC("#### h4\n##### h5\n###### h6")
	assert.Empty(t, toc)
}

func TestEstimateReadTime(t *testing.T) {
	assert.Equal(t, 0, EstimateReadTime(""))
	assert.Equal(t, 1, EstimateReadTime("one two three"))
	assert.Equal(t, 1, EstimateReadTime(strings.Repeat("word ", 200)))
	assert.Equal(t, 2, EstimateReadTime(strings.Repeat("word ", 201)))
	assert.Equal(t, 5, EstimateReadTime(strings.Repeat("word ", 1000)))
}
