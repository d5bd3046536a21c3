package coverletter

import (
	"context"
	"errors"
	"io"
	"mime/multipart"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/akashpersetti/hired-eventually/internal/extract"
	"github.com/akashpersetti/hired-eventually/internal/ledger"
	"github.com/akashpersetti/hired-eventually/internal/llm"
	"github.com/akashpersetti/hired-eventually/internal/shared/server/respond"
	"github.com/akashpersetti/hired-eventually/internal/shared/telemetry"
)

const maxUploadSize = 10 << 20 // 10 MiB

const ledgerAppendTimeout = 10 * time.Second

// Handler wires the generation endpoint to the orchestrator and ledger.
type Handler struct {
	Svc    *Service
	Ledger *ledger.Service
}

// NewHandler constructs a Handler.
func NewHandler(svc *Service, led *ledger.Service) *Handler {
	return &Handler{Svc: svc, Ledger: led}
}

// RegisterRoutes attaches generation routes to the router group.
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.POST("/generate", h.generate)
	rg.GET("/models", h.models)
}

func (h *Handler) generate(c *gin.Context) {
	c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, maxUploadSize)

	fileHeader, err := c.FormFile("resume")
	if err != nil {
		respond.Error(c, http.StatusBadRequest, "validation_error", "resume file is required", nil)
		return
	}
	if ct := fileHeader.Header.Get("Content-Type"); ct != "" && ct != "application/pdf" && ct != "application/octet-stream" {
		respond.Error(c, http.StatusBadRequest, "validation_error", "resume must be a PDF", nil)
		return
	}

	jobDescription := strings.TrimSpace(c.PostForm("job_description"))
	if jobDescription == "" {
		respond.Error(c, http.StatusBadRequest, "validation_error", "job_description is required", nil)
		return
	}
	model := strings.TrimSpace(c.PostForm("model"))
	if model == "" {
		respond.Error(c, http.StatusBadRequest, "validation_error", "model is required", nil)
		return
	}
	link := strings.TrimSpace(c.PostForm("link"))

	c.Set("model", model)

	resumePath, err := saveUpload(fileHeader)
	if err != nil {
		respond.Error(c, http.StatusInternalServerError, "upload_error", "unable to read resume file", nil)
		return
	}
	defer os.Remove(resumePath)

	result, err := h.Svc.Generate(c.Request.Context(), resumePath, jobDescription, model)
	if err != nil {
		h.writeGenerateError(c, err)
		return
	}

	// The response never waits on the ledger; a failed append is logged
	// and the letter is still returned.
	go h.appendLedger(c.GetString("requestId"), result, link)

	respond.OK(c, result)
}

func (h *Handler) appendLedger(requestID string, result Result, link string) {
	ctx, cancel := context.WithTimeout(context.Background(), ledgerAppendTimeout)
	defer cancel()

	row, err := h.Ledger.Append(ctx, ledger.Entry{
		Company: result.CompanyName,
		Role:    result.RoleApplied,
		JobID:   result.JobID,
		Link:    link,
	})
	if err != nil {
		telemetry.Warn("ledger.append_failed", map[string]any{
			"error":      err.Error(),
			"company":    result.CompanyName,
			"request_id": requestID,
		})
		return
	}

	telemetry.Info("ledger.appended", map[string]any{
		"row":        row,
		"company":    result.CompanyName,
		"request_id": requestID,
	})
}

func (h *Handler) writeGenerateError(c *gin.Context, err error) {
	var provErr *llm.ProviderError
	switch {
	case errors.Is(err, llm.ErrUnsupportedProvider):
		respond.Error(c, http.StatusBadRequest, "unsupported_provider", err.Error(), nil)
	case errors.Is(err, extract.ErrUnreadable):
		respond.Error(c, http.StatusUnprocessableEntity, "unreadable_document", "could not extract text from the resume", nil)
	case errors.Is(err, ErrInvalidInput):
		respond.Error(c, http.StatusBadRequest, "validation_error", err.Error(), nil)
	case errors.Is(err, llm.ErrTimeout):
		respond.Error(c, http.StatusGatewayTimeout, "provider_timeout", "the model provider did not respond in time", nil)
	case errors.As(err, &provErr):
		respond.Error(c, http.StatusBadGateway, "provider_error", provErr.Error(), nil)
	default:
		respond.Error(c, http.StatusInternalServerError, "generation_error", "failed to generate cover letter", nil)
	}
}

type modelsResponse struct {
	Models []string `json:"models"`
}

func (h *Handler) models(c *gin.Context) {
	respond.OK(c, modelsResponse{Models: llm.SupportedModels()})
}

// saveUpload copies the multipart file to a temp path for the PDF reader,
// which needs a seekable file on disk.
func saveUpload(fileHeader *multipart.FileHeader) (string, error) {
	src, err := fileHeader.Open()
	if err != nil {
		return "", err
	}
	defer src.Close()

	path := filepath.Join(os.TempDir(), "resume-"+uuid.NewString()+".pdf")
	dst, err := os.Create(path)
	if err != nil {
		return "", err
	}
	if _, err := io.Copy(dst, src); err != nil {
		dst.Close()
		os.Remove(path)
		return "", err
	}
	if err := dst.Close(); err != nil {
		os.Remove(path)
		return "", err
	}
	return path, nil
}
