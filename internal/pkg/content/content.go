package content

import (
	"bytes"
	"fmt"
	"html"
	"regexp"
	"strings"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"

	"github.com/courseforum/conversation-service/internal/model"
)

var tagPattern = regexp.MustCompile(`<[^>]*>`)

// Preprocessor turns raw author markdown into the two derived forms stored
// next to the source: the rendered HTML and the plain text the full-text
// index is built from. Raw HTML in the source is escaped, never passed
// through.
type Preprocessor struct {
	markdown goldmark.Markdown
}

func New() *Preprocessor {
	return &Preprocessor{
		markdown: goldmark.New(
			goldmark.WithExtensions(extension.GFM),
		),
	}
}

func (p *Preprocessor) Preprocess(source string) (*model.PreprocessedContent, error) {
	var rendered bytes.Buffer
	if err := p.markdown.Convert([]byte(source), &rendered); err != nil {
		return nil, fmt.Errorf("failed to render content: %w", err)
	}

	preprocessed := rendered.String()

	searchText := tagPattern.ReplaceAllString(preprocessed, " ")
	searchText = html.UnescapeString(searchText)
	searchText = strings.Join(strings.Fields(searchText), " ")

	return &model.PreprocessedContent{
		ContentPreprocessed: preprocessed,
		ContentSearch:       searchText,
	}, nil
}
