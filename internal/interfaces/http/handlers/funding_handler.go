package handlers

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
	"fundvault.backend/internal/domain/entities"
	domainerrors "fundvault.backend/internal/domain/errors"
	"fundvault.backend/internal/interfaces/http/middleware"
	"fundvault.backend/internal/interfaces/http/response"
	"fundvault.backend/pkg/metrics"
)

type FundingService interface {
	BackProject(ctx context.Context, projectID uint64, backer string, amount uint64) error
	RequestRefund(ctx context.Context, projectID uint64, backer string) (uint64, error)
	GetBacking(ctx context.Context, projectID uint64, backer string) (*entities.Backing, error)
	ListBackings(ctx context.Context, projectID uint64, limit, offset int) ([]*entities.Backing, int, error)
}

// FundingHandler handles contribution and refund endpoints
type FundingHandler struct {
	fundingUsecase FundingService
}

// NewFundingHandler creates a new funding handler
func NewFundingHandler(fundingUsecase FundingService) *FundingHandler {
	return &FundingHandler{fundingUsecase: fundingUsecase}
}

// BackProject contributes funds to a project open for funding
// POST /api/v1/projects/:id/backings
func (h *FundingHandler) BackProject(c *gin.Context) {
	projectID, err := parseProjectID(c)
	if err != nil {
		response.Error(c, domainerrors.BadRequest("Invalid project ID"))
		return
	}

	var body struct {
		Amount uint64 `json:"amount" binding:"required"`
	}

	if err := c.ShouldBindJSON(&body); err != nil {
		response.Error(c, domainerrors.BadRequest(err.Error()))
		return
	}

	caller, ok := middleware.GetCallerAddress(c)
	if !ok {
		response.Error(c, domainerrors.Unauthorized("User not authenticated"))
		return
	}

	if err := h.fundingUsecase.BackProject(c.Request.Context(), projectID, caller, body.Amount); err != nil {
		metrics.IncrementContribution("failed")
		response.Error(c, err)
		return
	}

	metrics.IncrementContribution("success")
	response.Success(c, http.StatusCreated, gin.H{"message": "Contribution accepted"})
}

// RequestRefund refunds the caller's backing on a failed or cancelled project
// POST /api/v1/projects/:id/refund
func (h *FundingHandler) RequestRefund(c *gin.Context) {
	projectID, err := parseProjectID(c)
	if err != nil {
		response.Error(c, domainerrors.BadRequest("Invalid project ID"))
		return
	}

	caller, ok := middleware.GetCallerAddress(c)
	if !ok {
		response.Error(c, domainerrors.Unauthorized("User not authenticated"))
		return
	}

	amount, err := h.fundingUsecase.RequestRefund(c.Request.Context(), projectID, caller)
	if err != nil {
		metrics.IncrementRefund("failed")
		response.Error(c, err)
		return
	}

	metrics.IncrementRefund("success")
	response.Success(c, http.StatusOK, gin.H{"refundedAmount": amount})
}

// GetMyBacking returns the caller's backing on a project
// GET /api/v1/projects/:id/backings/me
func (h *FundingHandler) GetMyBacking(c *gin.Context) {
	projectID, err := parseProjectID(c)
	if err != nil {
		response.Error(c, domainerrors.BadRequest("Invalid project ID"))
		return
	}

	caller, ok := middleware.GetCallerAddress(c)
	if !ok {
		response.Error(c, domainerrors.Unauthorized("User not authenticated"))
		return
	}

	backing, err := h.fundingUsecase.GetBacking(c.Request.Context(), projectID, caller)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"backing": backing})
}

// ListBackings lists a project's backings
// GET /api/v1/projects/:id/backings
func (h *FundingHandler) ListBackings(c *gin.Context) {
	projectID, err := parseProjectID(c)
	if err != nil {
		response.Error(c, domainerrors.BadRequest("Invalid project ID"))
		return
	}

	page, limit := parsePagination(c)

	backings, total, err := h.fundingUsecase.ListBackings(c.Request.Context(), projectID, limit, (page-1)*limit)
	if err != nil {
		response.Error(c, err)
		return
	}

	totalPages := (total + limit - 1) / limit

	response.Success(c, http.StatusOK, gin.H{
		"backings": backings,
		"pagination": gin.H{
			"page":       page,
			"limit":      limit,
			"total":      total,
			"totalPages": totalPages,
		},
	})
}
