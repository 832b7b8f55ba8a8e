// Package server wires the HTTP surface: one gin engine, all routes under
// /api/v1, owner identity taken from the Authorization bearer value.
package server

import (
	"context"
	"fmt"
	"image"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"resume-builder-backend/internal/llm"
	"resume-builder-backend/internal/resumes"
	"resume-builder-backend/internal/session"
	"resume-builder-backend/internal/shared/config"
	"resume-builder-backend/internal/shared/metrics"
	"resume-builder-backend/internal/shared/server/middleware"
	"resume-builder-backend/internal/shared/server/respond"
	"resume-builder-backend/resume/render"
)

// Rasterizer matches export.Rasterizer; declared here so tests can inject
// a fake without driving a browser.
type Rasterizer interface {
	Rasterize(ctx context.Context, html string) (image.Image, error)
}

// Deps carries everything the routes need.
type Deps struct {
	Config   config.Config
	Sessions *session.Store
	Repo     resumes.Repo
	LLM      llm.Client
	Raster   Rasterizer
}

// NewRouter constructs the gin engine with middleware and routes registered.
func NewRouter(deps Deps) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)
	r := gin.New()

	// Registered before the middleware chain: scrapers carry no identity.
	r.GET("/metrics", gin.WrapF(metrics.Handler()))

	r.Use(
		middleware.RequestID(),
		middleware.Logging(),
		middleware.Recovery(),
		middleware.CORS(deps.Config.CORSAllowOrigin),
		middleware.Identity(),
	)

	sessions := &sessionHandler{store: deps.Sessions, repo: deps.Repo, raster: deps.Raster}
	store := &resumeHandler{repo: deps.Repo}
	flowRunner := &flowHandler{llm: deps.LLM}

	api := r.Group("/api/v1")
	api.GET("/health", func(c *gin.Context) {
		respond.OK(c, gin.H{"ok": true})
	})

	api.POST("/sessions", sessions.create)
	api.GET("/sessions/:id", sessions.get)
	api.DELETE("/sessions/:id", sessions.drop)
	api.PUT("/sessions/:id/resume", sessions.replaceResume)
	api.PUT("/sessions/:id/template", sessions.setTemplate)
	api.POST("/sessions/:id/load", sessions.load)
	api.GET("/sessions/:id/export/pdf", sessions.exportPDF)
	api.GET("/sessions/:id/export/docx", sessions.exportDOCX)

	api.GET("/templates", func(c *gin.Context) {
		respond.OK(c, gin.H{"templates": render.Names(), "default": render.DefaultTemplate})
	})

	api.PUT("/resumes/:name", store.save)
	api.GET("/resumes/:name", store.load)
	api.GET("/resumes", store.list)
	api.DELETE("/resumes/:name", store.delete)

	// LLM calls are the expensive path; everything else stays unlimited.
	flows := api.Group("/flows")
	flows.Use(middleware.RateLimit(middleware.RateLimitConfig{
		DefaultGroup: "FLOWS",
		Rules: map[string]middleware.RateLimitRule{
			"FLOWS": {Rate: 0.5, Burst: 5},
		},
	}))
	flows.GET("", flowRunner.list)
	flows.POST("/:name", flowRunner.run)

	api.POST("/extract", extractText)

	return r
}

// Addr normalizes the listen address.
func Addr(port string) string {
	if port == "" {
		return ":8080"
	}
	if port[0] == ':' {
		return port
	}
	return fmt.Sprintf(":%s", port)
}

func ownerOrAbort(c *gin.Context) (string, bool) {
	ownerID := strings.TrimSpace(middleware.OwnerIDFromContext(c))
	if ownerID == "" {
		respond.Error(c, http.StatusUnauthorized, "unauthorized", "Missing identity", nil)
		return "", false
	}
	return ownerID, true
}
