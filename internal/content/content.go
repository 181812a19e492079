package content

import (
	"bytes"
	_ "embed"
	"encoding/json"
	"errors"
	"fmt"
	"os"

	"github.com/santhosh-tekuri/jsonschema/v6"
	"gopkg.in/yaml.v3"

	"github.com/abhisek/genai-course/internal/catalog"
)

//go:embed chapters.yaml
var defaultChapters []byte

//go:embed schema.json
var schemaJSON []byte

const schemaURL = "schema://chapters.json"

var (
	ErrMissingChapter = errors.New("chapter has no content")
	ErrUnknownChapter = errors.New("content for unknown chapter")
)

// Chapter is the readable text of one chapter.
type Chapter struct {
	ID       string `yaml:"id"`
	Title    string `yaml:"title"`
	Summary  string `yaml:"summary"`
	Body     string `yaml:"body"`
	DeepDive string `yaml:"deep_dive"`
}

type document struct {
	Chapters []Chapter `yaml:"chapters"`
}

// Content holds chapter text keyed by chapter ID.
type Content struct {
	order []string
	byID  map[string]Chapter
}

// Default returns the embedded course content.
func Default() (*Content, error) {
	return Parse(defaultChapters)
}

// Load reads content from path. An empty path returns the embedded content.
func Load(path string) (*Content, error) {
	if path == "" {
		return Default()
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read content: %w", err)
	}
	return Parse(data)
}

// Parse validates data against the content schema and decodes it.
func Parse(data []byte) (*Content, error) {
	var raw any
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("parse content: %w", err)
	}

	schema, err := compileSchema()
	if err != nil {
		return nil, err
	}
	if err := schema.Validate(raw); err != nil {
		return nil, fmt.Errorf("validate content: %w", err)
	}

	var doc document
	if err := yaml.NewDecoder(bytes.NewReader(data)).Decode(&doc); err != nil {
		return nil, fmt.Errorf("decode content: %w", err)
	}

	c := &Content{byID: make(map[string]Chapter, len(doc.Chapters))}
	for _, ch := range doc.Chapters {
		if _, dup := c.byID[ch.ID]; dup {
			return nil, fmt.Errorf("duplicate chapter %q", ch.ID)
		}
		c.byID[ch.ID] = ch
		c.order = append(c.order, ch.ID)
	}
	return c, nil
}

func compileSchema() (*jsonschema.Schema, error) {
	var def any
	if err := json.Unmarshal(schemaJSON, &def); err != nil {
		return nil, fmt.Errorf("parse schema: %w", err)
	}
	c := jsonschema.NewCompiler()
	if err := c.AddResource(schemaURL, def); err != nil {
		return nil, fmt.Errorf("add schema resource: %w", err)
	}
	s, err := c.Compile(schemaURL)
	if err != nil {
		return nil, fmt.Errorf("compile schema: %w", err)
	}
	return s, nil
}

// Get returns the content for a chapter.
func (c *Content) Get(id string) (Chapter, bool) {
	if c == nil {
		return Chapter{}, false
	}
	ch, ok := c.byID[id]
	return ch, ok
}

// Len returns the number of chapters with content.
func (c *Content) Len() int { return len(c.order) }

// Check verifies that content and catalog describe the same chapters.
func (c *Content) Check(cat catalog.Catalog) error {
	var errs []error
	for _, id := range cat.IDs() {
		if _, ok := c.byID[id]; !ok {
			errs = append(errs, fmt.Errorf("%w: %s", ErrMissingChapter, id))
		}
	}
	for _, id := range c.order {
		if !cat.Has(id) {
			errs = append(errs, fmt.Errorf("%w: %s", ErrUnknownChapter, id))
		}
	}
	return errors.Join(errs...)
}
