package nav

import (
	"fmt"

	"github.com/abhisek/genai-course/internal/catalog"
	"github.com/abhisek/genai-course/internal/progress"
)

// Entry is the rendered state of one navigation link.
type Entry struct {
	ChapterID string
	Title     string
	Completed bool
	Active    bool
}

// Fragment returns the fragment-style link target for the entry.
func (e Entry) Fragment() string {
	return "#" + e.ChapterID
}

// View is the full navigation state handed to the renderer.
type View struct {
	Entries   []Entry
	Completed int
	Total     int
	Percent   int    // width of the progress fill, 0-100
	Text      string // "completed/total"
}

// Presenter reflects progress and the active section into navigation state.
type Presenter struct {
	active string
}

// NewPresenter returns a Presenter with no active section.
func NewPresenter() *Presenter {
	return &Presenter{}
}

// Active returns the current active section ID, or "".
func (p *Presenter) Active() string {
	return p.active
}

// SetActive records the active section. An empty id clears it.
func (p *Presenter) SetActive(id string) {
	p.active = id
}

// Render builds the navigation view. An entry is completed iff
// rec[chapter.ID] is true.
func (p *Presenter) Render(rec progress.Record, cat catalog.Catalog) View {
	chapters := cat.Chapters()
	v := View{
		Entries:   make([]Entry, 0, len(chapters)),
		Completed: rec.Completed(),
		Total:     len(chapters),
	}
	for _, ch := range chapters {
		v.Entries = append(v.Entries, Entry{
			ChapterID: ch.ID,
			Title:     ch.Title,
			Completed: rec[ch.ID],
			Active:    p.active != "" && p.active == ch.ID,
		})
	}
	v.Percent = progress.Percent(v.Completed, v.Total)
	v.Text = fmt.Sprintf("%d/%d", v.Completed, v.Total)
	return v
}
