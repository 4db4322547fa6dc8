package handler

import (
	"bytes"
	"context"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"quiz-maker/internal/domain"
	"quiz-maker/internal/dto"
	"quiz-maker/internal/middleware"
	"quiz-maker/internal/service"
)

func multipartUpload(t *testing.T, filename, content string, fields map[string]string) *http.Request {
	t.Helper()
	var body bytes.Buffer
	w := multipart.NewWriter(&body)
	for k, v := range fields {
		require.NoError(t, w.WriteField(k, v))
	}
	if filename != "-" {
		part, err := w.CreateFormFile("file", filename)
		require.NoError(t, err)
		_, err = part.Write([]byte(content))
		require.NoError(t, err)
	}
	require.NoError(t, w.Close())

	req := httptest.NewRequest(http.MethodPost, "/api/pdf/upload", &body)
	req.Header.Set("Content-Type", w.FormDataContentType())
	return req
}

func TestUpload_Success(t *testing.T) {
	app, svcs := newTestApp(t)
	var got service.IngestRequest
	svcs.ingest.IngestFileFunc = func(ctx context.Context, req service.IngestRequest) (*service.IngestSummary, error) {
		got = req
		data, err := os.ReadFile(req.FilePath)
		require.NoError(t, err)
		assert.Equal(t, "Chapter 1\nbody", string(data))
		return &service.IngestSummary{TextbookID: "tb-1", Title: req.Title, Chapters: 1, Questions: 0}, nil
	}

	resp, err := app.Test(multipartUpload(t, "networking.txt", "Chapter 1\nbody", map[string]string{"author": "Ann", "format": "text"}))
	require.NoError(t, err)
	assert.Equal(t, http.StatusCreated, resp.StatusCode)

	var body dto.UploadResponse
	decodeBody(t, resp, &body)
	assert.Equal(t, "tb-1", body.TextbookID)
	assert.Equal(t, "networking", body.Title)
	assert.Equal(t, 1, body.Chapters)
	assert.Equal(t, "Ann", got.Author)
	assert.Equal(t, service.FormatText, got.Format)
}

func TestUpload_Rejections(t *testing.T) {
	tests := []struct {
		name     string
		filename string
		fields   map[string]string
	}{
		{"no file part", "-", nil},
		{"unsupported extension", "slides.pptx", nil},
		{"unknown format", "doc.pdf", map[string]string{"format": "csv"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			app, _ := newTestApp(t)
			resp, err := app.Test(multipartUpload(t, tt.filename, "x", tt.fields))
			require.NoError(t, err)
			assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

			var body middleware.ErrorResponse
			decodeBody(t, resp, &body)
			assert.Equal(t, string(domain.CodeInvalidInput), body.Code)
		})
	}
}

func TestListTextbooksAndChapters(t *testing.T) {
	app, svcs := newTestApp(t)
	svcs.ingest.ListTextbooksFunc = func(ctx context.Context) ([]dto.TextbookResponse, error) {
		return []dto.TextbookResponse{{ID: testChapterID, Title: "Go", Chapters: 2}}, nil
	}
	svcs.ingest.ListChaptersFunc = func(ctx context.Context, textbookID string) ([]dto.ChapterResponse, error) {
		if textbookID != testChapterID {
			return nil, domain.NewNotFoundError("textbook not found")
		}
		return []dto.ChapterResponse{{ID: "c1", Title: "Introduction", Number: 1}}, nil
	}

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/api/pdf/textbooks", nil))
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	var textbooks []dto.TextbookResponse
	decodeBody(t, resp, &textbooks)
	require.Len(t, textbooks, 1)
	assert.Equal(t, 2, textbooks[0].Chapters)

	resp, err = app.Test(httptest.NewRequest(http.MethodGet, "/api/pdf/textbooks/"+testChapterID+"/chapters", nil))
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	resp, err = app.Test(httptest.NewRequest(http.MethodGet, "/api/pdf/textbooks/"+testQuizID+"/chapters", nil))
	require.NoError(t, err)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)

	resp, err = app.Test(httptest.NewRequest(http.MethodGet, "/api/pdf/textbooks/bad-id/chapters", nil))
	require.NoError(t, err)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}
