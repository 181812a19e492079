package catalog

// ChapterCount is the number of chapters in the course.
const ChapterCount = 11

// Chapter is one static unit of course content.
type Chapter struct {
	ID    string
	Title string
}

// Catalog is the ordered, immutable chapter table.
type Catalog struct {
	chapters []Chapter
	byID     map[string]int
}

// New builds a Catalog from chapters in document order.
// Later duplicates of an ID are dropped.
func New(chapters []Chapter) Catalog {
	c := Catalog{byID: make(map[string]int, len(chapters))}
	for _, ch := range chapters {
		if _, dup := c.byID[ch.ID]; dup {
			continue
		}
		c.byID[ch.ID] = len(c.chapters)
		c.chapters = append(c.chapters, ch)
	}
	return c
}

// Default returns the eleven-chapter generative AI course.
func Default() Catalog {
	return New([]Chapter{
		{ID: "ch01", Title: "Generative AI Overview"},
		{ID: "ch02", Title: "How Large Language Models Work"},
		{ID: "ch03", Title: "Model Training"},
		{ID: "ch04", Title: "The Transformer Architecture"},
		{ID: "ch05", Title: "Prompt Engineering"},
		{ID: "ch06", Title: "Hands-on Practice"},
		{ID: "ch07", Title: "Function Calling"},
		{ID: "ch08", Title: "Retrieval-Augmented Generation"},
		{ID: "ch09", Title: "AI Agents"},
		{ID: "ch10", Title: "AI Safety"},
		{ID: "ch11", Title: "Small Language Models"},
	})
}

// Chapters returns a copy of the chapters in document order.
func (c Catalog) Chapters() []Chapter {
	out := make([]Chapter, len(c.chapters))
	copy(out, c.chapters)
	return out
}

// IDs returns chapter identifiers in document order.
func (c Catalog) IDs() []string {
	ids := make([]string, len(c.chapters))
	for i, ch := range c.chapters {
		ids[i] = ch.ID
	}
	return ids
}

// Len returns the number of chapters.
func (c Catalog) Len() int {
	return len(c.chapters)
}

// Get returns the chapter with the given ID.
func (c Catalog) Get(id string) (Chapter, bool) {
	i, ok := c.byID[id]
	if !ok {
		return Chapter{}, false
	}
	return c.chapters[i], true
}

// Index returns the document-order position of id, or -1.
func (c Catalog) Index(id string) int {
	if i, ok := c.byID[id]; ok {
		return i
	}
	return -1
}

// Has reports whether id is a known chapter.
func (c Catalog) Has(id string) bool {
	_, ok := c.byID[id]
	return ok
}
