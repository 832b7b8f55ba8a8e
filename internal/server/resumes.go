package server

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"resume-builder-backend/internal/resumes"
	"resume-builder-backend/internal/session"
	"resume-builder-backend/internal/shared/server/respond"
	"resume-builder-backend/internal/shared/util"
	"resume-builder-backend/resume/model"
)

type resumeHandler struct {
	repo resumes.Repo
}

type resumeSummary struct {
	Name      string    `json:"name"`
	UpdatedAt time.Time `json:"updatedAt"`
}

func (h *resumeHandler) save(c *gin.Context) {
	ownerID, ok := ownerOrAbort(c)
	if !ok {
		return
	}
	name, ok := resumeName(c)
	if !ok {
		return
	}

	var doc model.ResumeDocument
	if err := c.ShouldBindJSON(&doc); err != nil {
		respond.Error(c, http.StatusBadRequest, "validation_error", "invalid resume document", nil)
		return
	}
	if err := h.repo.Save(c.Request.Context(), ownerID, name, doc.Normalize()); err != nil {
		respond.Error(c, http.StatusInternalServerError, "storage_error", "failed to save resume", nil)
		return
	}
	respond.OK(c, gin.H{"name": name})
}

func (h *resumeHandler) load(c *gin.Context) {
	ownerID, ok := ownerOrAbort(c)
	if !ok {
		return
	}
	name, ok := resumeName(c)
	if !ok {
		return
	}

	doc, err := h.repo.Load(c.Request.Context(), ownerID, name)
	if err != nil {
		if errors.Is(err, resumes.ErrNotFound) {
			respond.Error(c, http.StatusNotFound, "not_found", "resume not found", nil)
		} else {
			respond.Error(c, http.StatusInternalServerError, "storage_error", "failed to load resume", nil)
		}
		return
	}
	respond.OK(c, gin.H{"name": name, "doc": doc})
}

func (h *resumeHandler) list(c *gin.Context) {
	ownerID, ok := ownerOrAbort(c)
	if !ok {
		return
	}

	records, err := h.repo.List(c.Request.Context(), ownerID)
	if err != nil {
		respond.Error(c, http.StatusInternalServerError, "storage_error", "failed to list resumes", nil)
		return
	}
	out := make([]resumeSummary, 0, len(records))
	for _, rec := range records {
		out = append(out, resumeSummary{Name: rec.Name, UpdatedAt: rec.UpdatedAt})
	}
	respond.OK(c, gin.H{"resumes": out})
}

func (h *resumeHandler) delete(c *gin.Context) {
	ownerID, ok := ownerOrAbort(c)
	if !ok {
		return
	}
	name, ok := resumeName(c)
	if !ok {
		return
	}

	if err := h.repo.Delete(c.Request.Context(), ownerID, name); err != nil {
		if errors.Is(err, resumes.ErrNotFound) {
			respond.Error(c, http.StatusNotFound, "not_found", "resume not found", nil)
		} else {
			respond.Error(c, http.StatusInternalServerError, "storage_error", "failed to delete resume", nil)
		}
		return
	}
	respond.NoContent(c)
}

// resumeName validates the :name path segment. The load sentinel is reserved
// so a stored resume can never shadow it.
func resumeName(c *gin.Context) (string, bool) {
	name, err := util.SanitizeName(c.Param("name"))
	if err != nil || name == session.LoadNew {
		respond.Error(c, http.StatusBadRequest, "validation_error", "invalid resume name", gin.H{"name": c.Param("name")})
		return "", false
	}
	return name, true
}
