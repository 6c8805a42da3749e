package api

import (
	"context"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/foremanhq/foreman/ent"
	"github.com/foremanhq/foreman/pkg/database"
	"github.com/foremanhq/foreman/pkg/store"
	"github.com/foremanhq/foreman/pkg/version"
)

// runResponse is the run snapshot returned by GET /api/runs/:id.
type runResponse struct {
	RunID         string     `json:"run_id"`
	ProjectID     string     `json:"project_id"`
	Request       string     `json:"request"`
	Status        string     `json:"status"`
	GraphJSON     string     `json:"graph_json"`
	DecisionCount int        `json:"decision_count"`
	RunningCost   float64    `json:"running_cost"`
	CurrentStep   *int       `json:"current_step,omitempty"`
	StepsJSON     string     `json:"steps_json,omitempty"`
	ErrorMessage  *string    `json:"error_message,omitempty"`
	LastHeartbeat *time.Time `json:"last_heartbeat,omitempty"`
	CreatedAt     time.Time  `json:"created_at"`
	CompletedAt   *time.Time `json:"completed_at,omitempty"`
}

func toRunResponse(run *ent.PipelineRun) runResponse {
	return runResponse{
		RunID:         run.ID,
		ProjectID:     run.ProjectID,
		Request:       run.Request,
		Status:        string(run.Status),
		GraphJSON:     run.GraphJSON,
		DecisionCount: run.DecisionCount,
		RunningCost:   run.RunningCost,
		CurrentStep:   run.CurrentStep,
		StepsJSON:     run.StepsJSON,
		ErrorMessage:  run.ErrorMessage,
		LastHeartbeat: run.LastHeartbeat,
		CreatedAt:     run.CreatedAt,
		CompletedAt:   run.CompletedAt,
	}
}

func (s *Server) health(c *gin.Context) {
	resp := gin.H{
		"status":  "healthy",
		"version": version.Full(),
	}
	code := http.StatusOK

	if s.db != nil {
		ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
		defer cancel()
		dbHealth, err := database.Health(ctx, s.db.DB())
		resp["database"] = dbHealth
		if err != nil {
			resp["status"] = "unhealthy"
			resp["error"] = err.Error()
			code = http.StatusServiceUnavailable
		}
	}

	c.JSON(code, resp)
}

func (s *Server) getRun(c *gin.Context) {
	run, err := s.runs.GetRun(c.Request.Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "run not found"})
			return
		}
		s.logger.Error("failed to load run", "run_id", c.Param("id"), "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load run"})
		return
	}
	c.JSON(http.StatusOK, toRunResponse(run))
}

// getRunLog serves the live log incrementally: the client passes the
// offset from its previous poll and receives only the appended bytes.
func (s *Server) getRunLog(c *gin.Context) {
	var offset int64
	if raw := c.Query("offset"); raw != "" {
		v, err := strconv.ParseInt(raw, 10, 64)
		if err != nil || v < 0 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid offset"})
			return
		}
		offset = v
	}

	content, next, err := s.gate.ReadLogFrom(offset)
	if err != nil {
		s.logger.Error("failed to read live log", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to read log"})
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"content":     content,
		"next_offset": next,
	})
}

func (s *Server) abortRun(c *gin.Context) {
	runID := c.Param("id")
	if _, err := s.runs.GetRun(c.Request.Context(), runID); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "run not found"})
			return
		}
		s.logger.Error("failed to load run", "run_id", runID, "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load run"})
		return
	}

	if err := s.gate.RequestAbort(); err != nil {
		s.logger.Error("failed to write abort flag", "run_id", runID, "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to request abort"})
		return
	}
	c.JSON(http.StatusAccepted, gin.H{"status": "abort requested"})
}
