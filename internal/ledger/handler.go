package ledger

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/akashpersetti/hired-eventually/internal/shared/server/respond"
)

// Handler wires HTTP handlers to the ledger service.
type Handler struct {
	Svc *Service
}

// NewHandler constructs a Handler.
func NewHandler(svc *Service) *Handler {
	return &Handler{Svc: svc}
}

// RegisterRoutes attaches ledger routes to the router group.
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/applications", h.list)
	rg.POST("/applications/:row/status", h.updateStatus)
}

type listResponse struct {
	Applications []Record `json:"applications"`
	Choices      []string `json:"choices"`
}

func (h *Handler) list(c *gin.Context) {
	records, err := h.Svc.List(c.Request.Context())
	if err != nil {
		respond.Error(c, http.StatusInternalServerError, "ledger_error", "failed to load applications", nil)
		return
	}
	respond.OK(c, listResponse{
		Applications: records,
		Choices:      Choices(records),
	})
}

type updateStatusRequest struct {
	Status string `json:"status"`
}

type updateStatusResponse struct {
	Message string `json:"message"`
	Row     int    `json:"row"`
	Status  Status `json:"status"`
}

func (h *Handler) updateStatus(c *gin.Context) {
	row, err := strconv.Atoi(c.Param("row"))
	if err != nil || row < 1 {
		respond.Error(c, http.StatusBadRequest, "validation_error", "row must be a positive integer", nil)
		return
	}

	var req updateStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respond.Error(c, http.StatusBadRequest, "validation_error", "invalid request body", nil)
		return
	}
	status, err := ParseStatus(req.Status)
	if err != nil {
		respond.Error(c, http.StatusBadRequest, "validation_error", "status must be Applied, Accepted or Rejected", nil)
		return
	}

	c.Set("ledgerRow", row)

	msg, err := h.Svc.UpdateStatus(c.Request.Context(), row, status)
	if err != nil {
		if errors.Is(err, ErrRecordNotFound) {
			respond.Error(c, http.StatusNotFound, "record_not_found", err.Error(), nil)
			return
		}
		respond.Error(c, http.StatusInternalServerError, "ledger_error", "failed to update status", nil)
		return
	}

	respond.OK(c, updateStatusResponse{Message: msg, Row: row, Status: status})
}
