package main

import (
	"github.com/gin-gonic/gin"
	"fundvault.backend/internal/interfaces/http/handlers"
	"fundvault.backend/internal/interfaces/http/middleware"
)

type routeDeps struct {
	authHandler         *handlers.AuthHandler
	projectHandler      *handlers.ProjectHandler
	fundingHandler      *handlers.FundingHandler
	verificationHandler *handlers.VerificationHandler
	authMiddleware      gin.HandlerFunc
}

func registerAPIV1Routes(r *gin.Engine, d routeDeps) {
	v1 := r.Group("/api/v1")
	{
		// Auth routes (public)
		auth := v1.Group("/auth")
		{
			auth.POST("/register", d.authHandler.Register)
			auth.POST("/login", d.authHandler.Login)
			auth.POST("/refresh", d.authHandler.RefreshToken)
			auth.GET("/me", d.authMiddleware, d.authHandler.GetMe)
		}

		// Project reads (public)
		v1.GET("/projects", d.projectHandler.ListProjects)
		v1.GET("/projects/:id", d.projectHandler.GetProject)
		v1.GET("/projects/:id/milestones", d.projectHandler.ListMilestones)
		v1.GET("/projects/:id/milestones/:index", d.projectHandler.GetMilestone)
		v1.GET("/projects/:id/reviewers", d.projectHandler.ListReviewers)
		v1.GET("/projects/:id/backings", d.fundingHandler.ListBackings)
		v1.GET("/projects/:id/milestones/:index/votes", d.verificationHandler.ListVotes)
		v1.GET("/projects/:id/payouts", d.verificationHandler.ListPayouts)

		// Project lifecycle (protected)
		projects := v1.Group("/projects")
		projects.Use(d.authMiddleware)
		{
			projects.POST("", d.projectHandler.CreateProject)
			projects.POST("/:id/milestones", d.projectHandler.AddMilestone)
			projects.POST("/:id/reviewers", d.projectHandler.AddReviewer)
			projects.POST("/:id/activate", d.projectHandler.ActivateProject)
			projects.POST("/:id/cancel", d.projectHandler.CancelProject)

			// Funding. Idempotency keys make client retries safe on the
			// endpoints that move value.
			projects.POST("/:id/backings", middleware.IdempotencyMiddleware(), d.fundingHandler.BackProject)
			projects.POST("/:id/refund", middleware.IdempotencyMiddleware(), d.fundingHandler.RequestRefund)
			projects.GET("/:id/backings/me", d.fundingHandler.GetMyBacking)

			// Verification and release
			projects.POST("/:id/milestones/:index/submit", d.verificationHandler.SubmitForVerification)
			projects.POST("/:id/milestones/:index/votes", d.verificationHandler.VoteOnMilestone)
			projects.POST("/:id/milestones/:index/approve", d.verificationHandler.ReviewerApprove)
			projects.POST("/:id/milestones/:index/reject", d.verificationHandler.ReviewerReject)
			projects.POST("/:id/milestones/:index/release", middleware.IdempotencyMiddleware(), d.verificationHandler.ReleaseMilestoneFunds)
			projects.POST("/:id/milestones/:index/report-failure", d.verificationHandler.ReportMilestoneFailure)
		}
	}
}
