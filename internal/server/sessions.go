package server

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"resume-builder-backend/internal/resumes"
	"resume-builder-backend/internal/session"
	"resume-builder-backend/internal/shared/metrics"
	"resume-builder-backend/internal/shared/server/respond"
	"resume-builder-backend/resume/export"
	"resume-builder-backend/resume/model"
	"resume-builder-backend/resume/render"
)

type sessionHandler struct {
	store  *session.Store
	repo   resumes.Repo
	raster Rasterizer
}

type sessionResponse struct {
	SessionID string               `json:"sessionId,omitempty"`
	Doc       model.ResumeDocument `json:"doc"`
	Template  string               `json:"template"`
	Notice    string               `json:"notice,omitempty"`
}

func (h *sessionHandler) create(c *gin.Context) {
	seedExample := c.Query("seed") == "example"
	id, state := h.store.Create(seedExample)
	c.Set("sessionId", id)
	respond.Created(c, sessionResponse{SessionID: id, Doc: state.Doc, Template: state.Template})
}

func (h *sessionHandler) get(c *gin.Context) {
	state, ok := h.snapshot(c)
	if !ok {
		return
	}
	respond.OK(c, sessionResponse{Doc: state.Doc, Template: state.Template})
}

func (h *sessionHandler) drop(c *gin.Context) {
	h.store.Drop(c.Param("id"))
	respond.NoContent(c)
}

func (h *sessionHandler) replaceResume(c *gin.Context) {
	id := c.Param("id")
	c.Set("sessionId", id)

	var doc model.ResumeDocument
	if err := c.ShouldBindJSON(&doc); err != nil {
		respond.Error(c, http.StatusBadRequest, "validation_error", "invalid resume document", nil)
		return
	}
	if err := h.store.Replace(id, doc.Normalize()); err != nil {
		respond.Error(c, http.StatusNotFound, "not_found", "session not found", nil)
		return
	}
	state, ok := h.snapshot(c)
	if !ok {
		return
	}
	respond.OK(c, sessionResponse{Doc: state.Doc, Template: state.Template})
}

type templateRequest struct {
	Template string `json:"template"`
}

func (h *sessionHandler) setTemplate(c *gin.Context) {
	id := c.Param("id")
	c.Set("sessionId", id)

	var req templateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respond.Error(c, http.StatusBadRequest, "validation_error", "invalid request body", nil)
		return
	}
	name := strings.TrimSpace(req.Template)
	if _, err := render.Get(name); err != nil {
		respond.Error(c, http.StatusBadRequest, "validation_error", "unknown template", gin.H{"template": name, "known": render.Names()})
		return
	}
	if err := h.store.SetTemplate(id, name); err != nil {
		respond.Error(c, http.StatusNotFound, "not_found", "session not found", nil)
		return
	}
	respond.OK(c, gin.H{"template": name})
}

type loadRequest struct {
	Name string `json:"name"`
}

func (h *sessionHandler) load(c *gin.Context) {
	id := c.Param("id")
	c.Set("sessionId", id)

	ownerID, ok := ownerOrAbort(c)
	if !ok {
		return
	}
	var req loadRequest
	if err := c.ShouldBindJSON(&req); err != nil || strings.TrimSpace(req.Name) == "" {
		respond.Error(c, http.StatusBadRequest, "validation_error", "name is required", nil)
		return
	}

	state, notice, err := h.store.LoadInto(c.Request.Context(), h.repo, id, ownerID, strings.TrimSpace(req.Name))
	if err != nil {
		respond.Error(c, http.StatusNotFound, "not_found", "session not found", nil)
		return
	}
	respond.OK(c, sessionResponse{Doc: state.Doc, Template: state.Template, Notice: notice})
}

func (h *sessionHandler) exportPDF(c *gin.Context) {
	state, ok := h.snapshot(c)
	if !ok {
		return
	}
	renderer, err := render.Get(state.Template)
	if err != nil {
		respond.Error(c, http.StatusInternalServerError, "export_error", "template no longer available", nil)
		return
	}

	started := metrics.NowMillis()
	pipeline := &export.PDFPipeline{Raster: h.raster}
	out, err := pipeline.Export(c.Request.Context(), renderer.Render(state.Doc))
	if err != nil {
		respond.Error(c, http.StatusInternalServerError, "export_error", "pdf export failed", err.Error())
		return
	}
	metrics.ObserveExportDurationMs(metrics.NowMillis() - started)
	c.Header("Content-Disposition", `attachment; filename="`+export.PDFFilename+`"`)
	c.Data(http.StatusOK, "application/pdf", out)
}

func (h *sessionHandler) exportDOCX(c *gin.Context) {
	state, ok := h.snapshot(c)
	if !ok {
		return
	}
	out, err := export.ToDocx(state.Doc)
	if err != nil {
		respond.Error(c, http.StatusInternalServerError, "export_error", "docx export failed", err.Error())
		return
	}
	c.Header("Content-Disposition", `attachment; filename="`+export.DocxFilename+`"`)
	c.Data(http.StatusOK, "application/vnd.openxmlformats-officedocument.wordprocessingml.document", out)
}

func (h *sessionHandler) snapshot(c *gin.Context) (session.State, bool) {
	id := c.Param("id")
	c.Set("sessionId", id)
	state, err := h.store.Snapshot(id)
	if err != nil {
		if errors.Is(err, session.ErrNoSession) {
			respond.Error(c, http.StatusNotFound, "not_found", "session not found", nil)
		} else {
			respond.Error(c, http.StatusInternalServerError, "internal", "failed to read session", nil)
		}
		return session.State{}, false
	}
	return state, true
}
