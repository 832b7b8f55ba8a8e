package server

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"resume-builder-backend/internal/flows"
	"resume-builder-backend/internal/llm"
	"resume-builder-backend/internal/shared/metrics"
	"resume-builder-backend/internal/shared/server/respond"
	"resume-builder-backend/resume/model"
)

type flowHandler struct {
	llm llm.Client
}

type flowInfo struct {
	Name        string `json:"name"`
	Description string `json:"description"`
}

func (h *flowHandler) list(c *gin.Context) {
	out := make([]flowInfo, 0)
	for _, name := range flows.Names() {
		if flow, ok := flows.Get(name); ok {
			out = append(out, flowInfo{Name: flow.Name, Description: flow.Description})
		}
	}
	respond.OK(c, gin.H{"flows": out})
}

func (h *flowHandler) run(c *gin.Context) {
	name := c.Param("name")
	c.Set("flowName", name)

	flow, ok := flows.Get(name)
	if !ok {
		respond.Error(c, http.StatusNotFound, "not_found", "unknown flow", gin.H{"known": flows.Names()})
		return
	}

	if name == "optimize-content" {
		h.runOptimize(c)
		return
	}

	var input map[string]any
	if err := c.ShouldBindJSON(&input); err != nil {
		respond.Error(c, http.StatusBadRequest, "validation_error", "invalid request body", nil)
		return
	}

	metrics.IncFlowStarted()
	out, err := flow.Run(c.Request.Context(), h.llm, input)
	if err != nil {
		metrics.IncFlowFailed()
		respondFlowError(c, err)
		return
	}
	metrics.IncFlowCompleted()
	respond.OK(c, out)
}

type optimizeRequest struct {
	ResumeData     model.ResumeDocument `json:"resumeData"`
	JobDescription string               `json:"jobDescription"`
}

func (h *flowHandler) runOptimize(c *gin.Context) {
	var req optimizeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respond.Error(c, http.StatusBadRequest, "validation_error", "invalid request body", nil)
		return
	}

	metrics.IncFlowStarted()
	doc, err := flows.RunOptimize(c.Request.Context(), h.llm, req.ResumeData.Normalize(), req.JobDescription)
	if err != nil {
		metrics.IncFlowFailed()
		respondFlowError(c, err)
		return
	}
	metrics.IncFlowCompleted()
	respond.OK(c, gin.H{"resumeData": doc})
}

func respondFlowError(c *gin.Context, err error) {
	var verr *flows.ValidationError
	var oerr *flows.ErrInvalidOutput
	switch {
	case errors.As(err, &verr):
		respond.Error(c, http.StatusBadRequest, "validation_error", "invalid flow input", gin.H{"issues": verr.Issues})
	case errors.As(err, &oerr):
		respond.Error(c, http.StatusBadGateway, "flow_error", "model returned an invalid result", gin.H{"issues": oerr.Issues})
	case errors.Is(err, flows.ErrEntriesChanged):
		respond.Error(c, http.StatusBadGateway, "flow_error", "optimized resume changed entries and was discarded", nil)
	case errors.Is(err, llm.ErrNotConfigured):
		respond.Error(c, http.StatusServiceUnavailable, "flow_error", "no language model is configured", nil)
	default:
		respond.Error(c, http.StatusBadGateway, "flow_error", "flow execution failed", nil)
	}
}
