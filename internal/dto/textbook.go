package dto

import "time"

// UploadResponse is returned after a document has been ingested.
// @Description Result of processing an uploaded document
type UploadResponse struct {
	Message       string `json:"message"`
	TextbookID    string `json:"textbook_id"`
	Title         string `json:"title"`
	Chapters      int    `json:"chapters"`
	QuestionCount int    `json:"questions"`
}

// TextbookResponse represents a textbook in list responses
type TextbookResponse struct {
	ID        string    `json:"id"`
	Title     string    `json:"title"`
	Author    string    `json:"author,omitempty"`
	Chapters  int       `json:"chapters"`
	CreatedAt time.Time `json:"created_at"`
}

// ChapterResponse represents a chapter of a textbook
type ChapterResponse struct {
	ID            string `json:"id"`
	Title         string `json:"title"`
	Number        int    `json:"number"`
	QuestionCount int    `json:"question_count"`
}
