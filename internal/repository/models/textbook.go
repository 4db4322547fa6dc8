package models

import (
	"database/sql"
	"time"
)

// Textbook is a row of the textbooks table.
type Textbook struct {
	ID        string         `db:"id"`
	Title     string         `db:"title"`
	Author    sql.NullString `db:"author"`
	FilePath  string         `db:"file_path"`
	CreatedAt time.Time      `db:"created_at"`

	ChapterCount int `db:"chapter_count"`
}

// Chapter is a row of the chapters table. QuestionCount is only populated by
// list queries.
type Chapter struct {
	ID            string `db:"id"`
	TextbookID    string `db:"textbook_id"`
	Title         string `db:"title"`
	Number        int    `db:"chapter_number"`
	Content       string `db:"content"`
	QuestionCount int    `db:"question_count"`
}

// Question is a row of the questions table.
type Question struct {
	ID            string      `db:"id"`
	ChapterID     string      `db:"chapter_id"`
	Text          string      `db:"question_text"`
	Options       StringSlice `db:"options"`
	CorrectAnswer string      `db:"correct_answer"`
	Difficulty    string      `db:"difficulty"`
	CreatedAt     time.Time   `db:"created_at"`
}
