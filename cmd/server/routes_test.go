package main

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"fundvault.backend/internal/interfaces/http/handlers"
	"fundvault.backend/internal/interfaces/http/middleware"
	"fundvault.backend/pkg/jwt"
)

func newTestRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	jwtService := jwt.NewJWTService("test-secret", time.Minute, time.Hour)
	registerAPIV1Routes(r, routeDeps{
		authHandler:         handlers.NewAuthHandler(nil),
		projectHandler:      handlers.NewProjectHandler(nil),
		fundingHandler:      handlers.NewFundingHandler(nil),
		verificationHandler: handlers.NewVerificationHandler(nil, nil),
		authMiddleware:      middleware.AuthMiddleware(jwtService),
	})
	return r
}

func TestRoutes_AllEndpointsRegistered(t *testing.T) {
	r := newTestRouter()

	registered := make(map[string]bool)
	for _, route := range r.Routes() {
		registered[route.Method+" "+route.Path] = true
	}

	expected := []string{
		"POST /api/v1/auth/register",
		"POST /api/v1/auth/login",
		"POST /api/v1/auth/refresh",
		"GET /api/v1/auth/me",
		"GET /api/v1/projects",
		"GET /api/v1/projects/:id",
		"GET /api/v1/projects/:id/milestones",
		"GET /api/v1/projects/:id/milestones/:index",
		"GET /api/v1/projects/:id/reviewers",
		"GET /api/v1/projects/:id/backings",
		"GET /api/v1/projects/:id/backings/me",
		"GET /api/v1/projects/:id/milestones/:index/votes",
		"GET /api/v1/projects/:id/payouts",
		"POST /api/v1/projects",
		"POST /api/v1/projects/:id/milestones",
		"POST /api/v1/projects/:id/reviewers",
		"POST /api/v1/projects/:id/activate",
		"POST /api/v1/projects/:id/cancel",
		"POST /api/v1/projects/:id/backings",
		"POST /api/v1/projects/:id/refund",
		"POST /api/v1/projects/:id/milestones/:index/submit",
		"POST /api/v1/projects/:id/milestones/:index/votes",
		"POST /api/v1/projects/:id/milestones/:index/approve",
		"POST /api/v1/projects/:id/milestones/:index/reject",
		"POST /api/v1/projects/:id/milestones/:index/release",
		"POST /api/v1/projects/:id/milestones/:index/report-failure",
	}
	for _, route := range expected {
		assert.True(t, registered[route], "missing route %s", route)
	}
}

func TestRoutes_WritesRequireAuth(t *testing.T) {
	r := newTestRouter()

	writes := []string{
		"/api/v1/projects",
		"/api/v1/projects/1/milestones",
		"/api/v1/projects/1/activate",
		"/api/v1/projects/1/backings",
		"/api/v1/projects/1/refund",
		"/api/v1/projects/1/milestones/0/release",
	}
	for _, path := range writes {
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodPost, path, nil))
		assert.Equal(t, http.StatusUnauthorized, w.Code, "POST %s must reject anonymous callers", path)
	}
}
