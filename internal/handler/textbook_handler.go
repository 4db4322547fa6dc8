package handler

import (
	"path/filepath"
	"strings"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"quiz-maker/internal/adapter/pdftext"
	"quiz-maker/internal/domain"
	"quiz-maker/internal/dto"
	"quiz-maker/internal/logger"
	"quiz-maker/internal/service"
	"quiz-maker/internal/storage"
)

// TextbookHandler handles document upload and browsing
type TextbookHandler struct {
	ingest service.IngestService
	store  storage.BlobStore
}

// NewTextbookHandler creates a new TextbookHandler instance
func NewTextbookHandler(ingest service.IngestService, store storage.BlobStore) *TextbookHandler {
	return &TextbookHandler{ingest: ingest, store: store}
}

// Upload godoc
// @Summary Upload a textbook
// @Description Stores a PDF or text file, splits it into chapters and generates questions
// @Tags textbooks
// @Accept multipart/form-data
// @Produce json
// @Param file formData file true "Document (.pdf or .txt)"
// @Param format formData string false "text (default) or sheet"
// @Param author formData string false "Author"
// @Success 201 {object} dto.UploadResponse
// @Failure 400 {object} middleware.ErrorResponse
// @Failure 500 {object} middleware.ErrorResponse
// @Router /pdf/upload [post]
func (h *TextbookHandler) Upload(c *fiber.Ctx) error {
	file, err := c.FormFile("file")
	if err != nil {
		return domain.NewInvalidInputError("No file part")
	}
	if file.Filename == "" {
		return domain.NewInvalidInputError("No selected file")
	}
	if !pdftext.SupportedExtension(file.Filename) {
		return domain.NewInvalidInputError("Invalid file type: only .pdf and .txt are accepted")
	}
	format, err := service.ParseIngestFormat(c.FormValue("format"))
	if err != nil {
		return err
	}

	src, err := file.Open()
	if err != nil {
		return domain.NewInvalidInputError("Uploaded file could not be read")
	}
	defer src.Close()

	key, err := h.store.Put(file.Filename, src)
	if err != nil {
		logger.Get().Error("Failed to store upload", zap.String("filename", file.Filename), zap.Error(err))
		return domain.NewInternalError("Failed to store file", err)
	}

	base := filepath.Base(file.Filename)
	summary, err := h.ingest.IngestFile(c.UserContext(), service.IngestRequest{
		Title:    strings.TrimSuffix(base, filepath.Ext(base)),
		Author:   c.FormValue("author"),
		FilePath: h.store.Path(key),
		Format:   format,
	})
	if err != nil {
		return err
	}

	return c.Status(fiber.StatusCreated).JSON(dto.UploadResponse{
		Message:       "File processed successfully",
		TextbookID:    summary.TextbookID,
		Title:         summary.Title,
		Chapters:      summary.Chapters,
		QuestionCount: summary.Questions,
	})
}

// ListTextbooks godoc
// @Summary List textbooks
// @Tags textbooks
// @Produce json
// @Success 200 {array} dto.TextbookResponse
// @Failure 500 {object} middleware.ErrorResponse
// @Router /pdf/textbooks [get]
func (h *TextbookHandler) ListTextbooks(c *fiber.Ctx) error {
	textbooks, err := h.ingest.ListTextbooks(c.UserContext())
	if err != nil {
		return err
	}
	return c.JSON(textbooks)
}

// ListChapters godoc
// @Summary List chapters of a textbook
// @Tags textbooks
// @Produce json
// @Param id path string true "Textbook ID"
// @Success 200 {array} dto.ChapterResponse
// @Failure 400 {object} middleware.ErrorResponse
// @Failure 404 {object} middleware.ErrorResponse
// @Router /pdf/textbooks/{id}/chapters [get]
func (h *TextbookHandler) ListChapters(c *fiber.Ctx) error {
	chapters, err := h.ingest.ListChapters(c.UserContext(), c.Params("id"))
	if err != nil {
		return err
	}
	return c.JSON(chapters)
}
