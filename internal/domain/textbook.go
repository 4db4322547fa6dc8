package domain

import (
	"strings"
	"time"
	"unicode/utf8"
)

const (
	// DefaultChapterTitle names the text that precedes the first chapter marker.
	DefaultChapterTitle = "Introduction"

	chapterMarker       = "Chapter"
	chapterMarkerWindow = 100
)

// Textbook is an uploaded document.
type Textbook struct {
	ID        string
	Title     string
	Author    string
	FilePath  string
	CreatedAt time.Time
	Chapters  []*Chapter

	ChapterCount int // filled by list queries
}

// NewTextbook creates a new Textbook instance
func NewTextbook(title, author, filePath string) *Textbook {
	return &Textbook{
		Title:     title,
		Author:    author,
		FilePath:  filePath,
		CreatedAt: time.Now(),
	}
}

// Validate validates the textbook
func (t *Textbook) Validate() error {
	if strings.TrimSpace(t.Title) == "" {
		return NewInvalidInputError("textbook title is required")
	}
	if t.FilePath == "" {
		return NewInvalidInputError("textbook file path is required")
	}
	return nil
}

// Chapter is a titled span of a textbook's text.
type Chapter struct {
	ID            string
	TextbookID    string
	Title         string
	Number        int // 1-based, order of appearance
	Text          string
	QuestionCount int
}

// ChapterEntry is one segmented chapter before it is persisted.
type ChapterEntry struct {
	Title string
	Text  string
}

// ChapterSet is an insertion-ordered title -> text map.
type ChapterSet struct {
	order []string
	text  map[string]string
}

func newChapterSet() *ChapterSet {
	return &ChapterSet{text: make(map[string]string)}
}

// put stores text under title. A repeated title overwrites the text but keeps
// its original position.
func (s *ChapterSet) put(title, text string) {
	if _, ok := s.text[title]; !ok {
		s.order = append(s.order, title)
	}
	s.text[title] = text
}

// Len returns the number of chapters.
func (s *ChapterSet) Len() int {
	return len(s.order)
}

// Titles returns the chapter titles in appearance order.
func (s *ChapterSet) Titles() []string {
	out := make([]string, len(s.order))
	copy(out, s.order)
	return out
}

// Text returns the text stored under title.
func (s *ChapterSet) Text(title string) (string, bool) {
	t, ok := s.text[title]
	return t, ok
}

// Entries returns the chapters in appearance order.
func (s *ChapterSet) Entries() []ChapterEntry {
	out := make([]ChapterEntry, 0, len(s.order))
	for _, title := range s.order {
		out = append(out, ChapterEntry{Title: title, Text: s.text[title]})
	}
	return out
}

// Chapters converts the set into numbered chapters for textbookID.
func (s *ChapterSet) Chapters(textbookID string) []*Chapter {
	out := make([]*Chapter, 0, len(s.order))
	for i, title := range s.order {
		out = append(out, &Chapter{
			TextbookID: textbookID,
			Title:      title,
			Number:     i + 1,
			Text:       s.text[title],
		})
	}
	return out
}

// Segment splits extracted page texts into chapters.
//
// A page whose first 100 characters contain "Chapter" starts a new chapter
// titled with the page's first line. Text before the first marker goes under
// "Introduction". An empty page list yields a single empty "Introduction".
func Segment(pages []string) *ChapterSet {
	set := newChapterSet()
	if len(pages) == 0 {
		set.put(DefaultChapterTitle, "")
		return set
	}

	title := DefaultChapterTitle
	var buf strings.Builder
	for _, page := range pages {
		if strings.Contains(runePrefix(page, chapterMarkerWindow), chapterMarker) {
			if buf.Len() > 0 {
				set.put(title, strings.TrimSpace(buf.String()))
			}
			title, _, _ = strings.Cut(page, "\n")
			buf.Reset()
		}
		buf.WriteString(page)
		buf.WriteByte('\n')
	}
	if buf.Len() > 0 {
		set.put(title, strings.TrimSpace(buf.String()))
	}
	return set
}

// runePrefix returns at most n characters of s.
func runePrefix(s string, n int) string {
	if len(s) <= n {
		return s
	}
	i := 0
	for pos := range s {
		if i == n {
			return s[:pos]
		}
		i++
	}
	return s
}

func runeLen(s string) int {
	return utf8.RuneCountInString(s)
}
