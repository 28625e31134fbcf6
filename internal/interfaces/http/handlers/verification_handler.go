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

type VerificationService interface {
	SubmitForVerification(ctx context.Context, projectID uint64, index uint32, caller string) error
	VoteOnMilestone(ctx context.Context, projectID uint64, index uint32, voter string, approve bool) error
	ReviewerApprove(ctx context.Context, projectID uint64, index uint32, caller string) error
	ReviewerReject(ctx context.Context, projectID uint64, index uint32, caller string) error
	ReportMilestoneFailure(ctx context.Context, projectID uint64, index uint32) error
	ListVotes(ctx context.Context, projectID uint64, index uint32) ([]*entities.Vote, error)
}

type ReleaseService interface {
	ReleaseMilestoneFunds(ctx context.Context, projectID uint64, index uint32) (*entities.Payout, error)
	ListPayouts(ctx context.Context, projectID uint64) ([]*entities.Payout, error)
}

// VerificationHandler handles milestone verification and release endpoints
type VerificationHandler struct {
	verificationUsecase VerificationService
	releaseUsecase      ReleaseService
}

// NewVerificationHandler creates a new verification handler
func NewVerificationHandler(verificationUsecase VerificationService, releaseUsecase ReleaseService) *VerificationHandler {
	return &VerificationHandler{
		verificationUsecase: verificationUsecase,
		releaseUsecase:      releaseUsecase,
	}
}

func (h *VerificationHandler) milestoneKey(c *gin.Context) (uint64, uint32, bool) {
	projectID, err := parseProjectID(c)
	if err != nil {
		response.Error(c, domainerrors.BadRequest("Invalid project ID"))
		return 0, 0, false
	}
	index, err := parseMilestoneIndex(c)
	if err != nil {
		response.Error(c, domainerrors.BadRequest("Invalid milestone index"))
		return 0, 0, false
	}
	return projectID, index, true
}

// SubmitForVerification moves an active milestone into review
// POST /api/v1/projects/:id/milestones/:index/submit
func (h *VerificationHandler) SubmitForVerification(c *gin.Context) {
	projectID, index, ok := h.milestoneKey(c)
	if !ok {
		return
	}

	caller, ok := middleware.GetCallerAddress(c)
	if !ok {
		response.Error(c, domainerrors.Unauthorized("User not authenticated"))
		return
	}

	if err := h.verificationUsecase.SubmitForVerification(c.Request.Context(), projectID, index, caller); err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"message": "Milestone submitted for verification"})
}

// VoteOnMilestone records a backer's vote on an in-review milestone
// POST /api/v1/projects/:id/milestones/:index/votes
func (h *VerificationHandler) VoteOnMilestone(c *gin.Context) {
	projectID, index, ok := h.milestoneKey(c)
	if !ok {
		return
	}

	var body struct {
		Approve *bool `json:"approve" binding:"required"`
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

	if err := h.verificationUsecase.VoteOnMilestone(c.Request.Context(), projectID, index, caller, *body.Approve); err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusCreated, gin.H{"message": "Vote recorded"})
}

// ReviewerApprove records a reviewer approval on an in-review milestone
// POST /api/v1/projects/:id/milestones/:index/approve
func (h *VerificationHandler) ReviewerApprove(c *gin.Context) {
	projectID, index, ok := h.milestoneKey(c)
	if !ok {
		return
	}

	caller, ok := middleware.GetCallerAddress(c)
	if !ok {
		response.Error(c, domainerrors.Unauthorized("User not authenticated"))
		return
	}

	if err := h.verificationUsecase.ReviewerApprove(c.Request.Context(), projectID, index, caller); err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"message": "Milestone approved"})
}

// ReviewerReject sends an in-review milestone back to active for rework
// POST /api/v1/projects/:id/milestones/:index/reject
func (h *VerificationHandler) ReviewerReject(c *gin.Context) {
	projectID, index, ok := h.milestoneKey(c)
	if !ok {
		return
	}

	caller, ok := middleware.GetCallerAddress(c)
	if !ok {
		response.Error(c, domainerrors.Unauthorized("User not authenticated"))
		return
	}

	if err := h.verificationUsecase.ReviewerReject(c.Request.Context(), projectID, index, caller); err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"message": "Milestone rejected"})
}

// ReleaseMilestoneFunds pays out an approved milestone. Open to any
// authenticated caller; the approval rule, not the caller, gates the release.
// POST /api/v1/projects/:id/milestones/:index/release
func (h *VerificationHandler) ReleaseMilestoneFunds(c *gin.Context) {
	projectID, index, ok := h.milestoneKey(c)
	if !ok {
		return
	}

	payout, err := h.releaseUsecase.ReleaseMilestoneFunds(c.Request.Context(), projectID, index)
	if err != nil {
		metrics.IncrementRelease("failed")
		response.Error(c, err)
		return
	}

	metrics.IncrementRelease("success")
	response.Success(c, http.StatusOK, gin.H{"payout": payout})
}

// ReportMilestoneFailure flags an overdue active milestone and cancels the
// project. Callable by anyone; overdueness is objective.
// POST /api/v1/projects/:id/milestones/:index/report-failure
func (h *VerificationHandler) ReportMilestoneFailure(c *gin.Context) {
	projectID, index, ok := h.milestoneKey(c)
	if !ok {
		return
	}

	if err := h.verificationUsecase.ReportMilestoneFailure(c.Request.Context(), projectID, index); err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"message": "Milestone failure recorded"})
}

// ListVotes lists the votes on a milestone
// GET /api/v1/projects/:id/milestones/:index/votes
func (h *VerificationHandler) ListVotes(c *gin.Context) {
	projectID, index, ok := h.milestoneKey(c)
	if !ok {
		return
	}

	votes, err := h.verificationUsecase.ListVotes(c.Request.Context(), projectID, index)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"votes": votes})
}

// ListPayouts lists the release audit trail for a project
// GET /api/v1/projects/:id/payouts
func (h *VerificationHandler) ListPayouts(c *gin.Context) {
	projectID, err := parseProjectID(c)
	if err != nil {
		response.Error(c, domainerrors.BadRequest("Invalid project ID"))
		return
	}

	payouts, err := h.releaseUsecase.ListPayouts(c.Request.Context(), projectID)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"payouts": payouts})
}
