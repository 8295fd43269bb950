// Package content serves locally authored marketing content. FAQ entries are
// read from a YAML file when one is configured and otherwise from the copy
// embedded at build time; answers are markdown, rendered and sanitized before
// they reach a template.
package content

import (
	"bytes"
	_ "embed"
	"errors"
	"fmt"
	"html/template"
	"io/fs"
	"os"
	"strings"
	"sync"

	"github.com/microcosm-cc/bluemonday"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
	"gopkg.in/yaml.v3"
)

//go:embed faq.yaml
var embeddedFAQs []byte

// FAQ is one question with its rendered answer.
type FAQ struct {
	Question   string
	AnswerHTML template.HTML
}

type faqEntry struct {
	Question string `yaml:"question"`
	Answer   string `yaml:"answer"`
}

type faqFile struct {
	FAQs []faqEntry `yaml:"faqs"`
}

var (
	markdown = goldmark.New(goldmark.WithExtensions(extension.GFM))
	policy   = bluemonday.UGCPolicy()
)

// Store caches parsed FAQ entries for the lifetime of the process.
type Store struct {
	path string

	once sync.Once
	faqs []FAQ
	err  error
}

// NewStore configures the FAQ source. An empty path means the embedded copy.
func NewStore(path string) *Store {
	return &Store{path: strings.TrimSpace(path)}
}

// FAQs returns the parsed entries, loading them on first use. A configured
// file that does not exist falls back to the embedded copy rather than
// failing the page.
func (s *Store) FAQs() ([]FAQ, error) {
	s.once.Do(func() {
		s.faqs, s.err = s.load()
	})
	return s.faqs, s.err
}

func (s *Store) load() ([]FAQ, error) {
	raw := embeddedFAQs
	if s.path != "" {
		data, err := os.ReadFile(s.path)
		switch {
		case err == nil:
			raw = data
		case errors.Is(err, fs.ErrNotExist):
			// keep the embedded copy
		default:
			return nil, fmt.Errorf("content: read %s: %w", s.path, err)
		}
	}
	return parseFAQs(raw)
}

func parseFAQs(raw []byte) ([]FAQ, error) {
	var file faqFile
	if err := yaml.Unmarshal(raw, &file); err != nil {
		return nil, fmt.Errorf("content: parse faq yaml: %w", err)
	}
	out := make([]FAQ, 0, len(file.FAQs))
	for _, e := range file.FAQs {
		q := strings.TrimSpace(e.Question)
		a := strings.TrimSpace(e.Answer)
		if q == "" || a == "" {
			continue
		}
		html, err := renderMarkdown(a)
		if err != nil {
			return nil, fmt.Errorf("content: render answer for %q: %w", q, err)
		}
		out = append(out, FAQ{Question: q, AnswerHTML: html})
	}
	return out, nil
}

func renderMarkdown(src string) (template.HTML, error) {
	var buf bytes.Buffer
	if err := markdown.Convert([]byte(src), &buf); err != nil {
		return "", err
	}
	return template.HTML(policy.Sanitize(buf.String())), nil
}
