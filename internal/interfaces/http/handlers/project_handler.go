package handlers

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
	"fundvault.backend/internal/domain/entities"
	domainerrors "fundvault.backend/internal/domain/errors"
	"fundvault.backend/internal/interfaces/http/middleware"
	"fundvault.backend/internal/interfaces/http/response"
	"fundvault.backend/internal/usecases"
)

type ProjectService interface {
	CreateProject(ctx context.Context, input usecases.CreateProjectInput) (*entities.Project, error)
	AddMilestone(ctx context.Context, input usecases.AddMilestoneInput) (*entities.Milestone, error)
	AddReviewer(ctx context.Context, projectID uint64, caller, reviewer string) error
	ActivateProject(ctx context.Context, projectID uint64, caller string) error
	CancelProject(ctx context.Context, projectID uint64, caller string) error
	GetProject(ctx context.Context, projectID uint64) (*entities.Project, error)
	ListProjects(ctx context.Context, status entities.ProjectStatus, limit, offset int) ([]*entities.Project, int, error)
	GetMilestone(ctx context.Context, projectID uint64, index uint32) (*entities.Milestone, error)
	ListMilestones(ctx context.Context, projectID uint64) ([]*entities.Milestone, error)
	ListReviewers(ctx context.Context, projectID uint64) ([]*entities.Reviewer, error)
}

// ProjectHandler handles project lifecycle endpoints
type ProjectHandler struct {
	projectUsecase ProjectService
}

// NewProjectHandler creates a new project handler
func NewProjectHandler(projectUsecase ProjectService) *ProjectHandler {
	return &ProjectHandler{projectUsecase: projectUsecase}
}

// CreateProject creates a new draft project
// POST /api/v1/projects
func (h *ProjectHandler) CreateProject(c *gin.Context) {
	var body struct {
		Title       string `json:"title" binding:"required"`
		Description string `json:"description"`
		Goal        uint64 `json:"goal" binding:"required"`
		Mode        string `json:"mode" binding:"required"`
		Deadline    uint64 `json:"deadline" binding:"required"`
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

	project, err := h.projectUsecase.CreateProject(c.Request.Context(), usecases.CreateProjectInput{
		Creator:     caller,
		Title:       body.Title,
		Description: body.Description,
		Goal:        body.Goal,
		Mode:        entities.VerificationMode(body.Mode),
		Deadline:    body.Deadline,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusCreated, gin.H{"project": project})
}

// AddMilestone appends a milestone to a draft project
// POST /api/v1/projects/:id/milestones
func (h *ProjectHandler) AddMilestone(c *gin.Context) {
	projectID, err := parseProjectID(c)
	if err != nil {
		response.Error(c, domainerrors.BadRequest("Invalid project ID"))
		return
	}

	var body struct {
		Title       string `json:"title" binding:"required"`
		Description string `json:"description"`
		Percentage  uint32 `json:"percentage" binding:"required"`
		Deadline    uint64 `json:"deadline" binding:"required"`
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

	milestone, err := h.projectUsecase.AddMilestone(c.Request.Context(), usecases.AddMilestoneInput{
		ProjectID:   projectID,
		Caller:      caller,
		Title:       body.Title,
		Description: body.Description,
		Percentage:  body.Percentage,
		Deadline:    body.Deadline,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusCreated, gin.H{"milestone": milestone})
}

// AddReviewer authorizes a reviewer on a draft reviewer-mode project
// POST /api/v1/projects/:id/reviewers
func (h *ProjectHandler) AddReviewer(c *gin.Context) {
	projectID, err := parseProjectID(c)
	if err != nil {
		response.Error(c, domainerrors.BadRequest("Invalid project ID"))
		return
	}

	var body struct {
		Reviewer string `json:"reviewer" binding:"required"`
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

	if err := h.projectUsecase.AddReviewer(c.Request.Context(), projectID, caller, body.Reviewer); err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusCreated, gin.H{"message": "Reviewer added"})
}

// ActivateProject opens a draft project for funding
// POST /api/v1/projects/:id/activate
func (h *ProjectHandler) ActivateProject(c *gin.Context) {
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

	if err := h.projectUsecase.ActivateProject(c.Request.Context(), projectID, caller); err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"message": "Project open for funding"})
}

// CancelProject cancels a project that is still funding
// POST /api/v1/projects/:id/cancel
func (h *ProjectHandler) CancelProject(c *gin.Context) {
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

	if err := h.projectUsecase.CancelProject(c.Request.Context(), projectID, caller); err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"message": "Project cancelled"})
}

// GetProject gets a project by ID
// GET /api/v1/projects/:id
func (h *ProjectHandler) GetProject(c *gin.Context) {
	projectID, err := parseProjectID(c)
	if err != nil {
		response.Error(c, domainerrors.BadRequest("Invalid project ID"))
		return
	}

	project, err := h.projectUsecase.GetProject(c.Request.Context(), projectID)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"project": project})
}

// ListProjects lists projects, optionally filtered by status
// GET /api/v1/projects
func (h *ProjectHandler) ListProjects(c *gin.Context) {
	page, limit := parsePagination(c)
	status := entities.ProjectStatus(c.Query("status"))

	projects, total, err := h.projectUsecase.ListProjects(c.Request.Context(), status, limit, (page-1)*limit)
	if err != nil {
		response.Error(c, err)
		return
	}

	totalPages := (total + limit - 1) / limit

	response.Success(c, http.StatusOK, gin.H{
		"projects": projects,
		"pagination": gin.H{
			"page":       page,
			"limit":      limit,
			"total":      total,
			"totalPages": totalPages,
		},
	})
}

// GetMilestone gets a single milestone
// GET /api/v1/projects/:id/milestones/:index
func (h *ProjectHandler) GetMilestone(c *gin.Context) {
	projectID, err := parseProjectID(c)
	if err != nil {
		response.Error(c, domainerrors.BadRequest("Invalid project ID"))
		return
	}
	index, err := parseMilestoneIndex(c)
	if err != nil {
		response.Error(c, domainerrors.BadRequest("Invalid milestone index"))
		return
	}

	milestone, err := h.projectUsecase.GetMilestone(c.Request.Context(), projectID, index)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"milestone": milestone})
}

// ListMilestones lists a project's milestones in index order
// GET /api/v1/projects/:id/milestones
func (h *ProjectHandler) ListMilestones(c *gin.Context) {
	projectID, err := parseProjectID(c)
	if err != nil {
		response.Error(c, domainerrors.BadRequest("Invalid project ID"))
		return
	}

	milestones, err := h.projectUsecase.ListMilestones(c.Request.Context(), projectID)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"milestones": milestones})
}

// ListReviewers lists a project's authorized reviewers
// GET /api/v1/projects/:id/reviewers
func (h *ProjectHandler) ListReviewers(c *gin.Context) {
	projectID, err := parseProjectID(c)
	if err != nil {
		response.Error(c, domainerrors.BadRequest("Invalid project ID"))
		return
	}

	reviewers, err := h.projectUsecase.ListReviewers(c.Request.Context(), projectID)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"reviewers": reviewers})
}
