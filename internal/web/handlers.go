package web

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"todoq/internal/about"
	"todoq/internal/i18n"
	"todoq/internal/task"
)

// statePayload is the JSON view of the manager: the list plus the
// derived counts and transient flags.
type statePayload struct {
	Items          []task.Task `json:"items"`
	CompletedCount int         `json:"completedCount"`
	PendingCount   int         `json:"pendingCount"`
	Loading        bool        `json:"loading"`
	Error          string      `json:"error,omitempty"`
	SelectedID     string      `json:"selectedId,omitempty"`
}

type createRequest struct {
	Title string `json:"title" validate:"required,min=2,max=100"`
}

func (s *Server) state() statePayload {
	p := statePayload{
		Items:          s.mgr.Items(),
		CompletedCount: s.mgr.CompletedCount(),
		PendingCount:   s.mgr.PendingCount(),
		Loading:        s.mgr.Loading(),
		SelectedID:     s.mgr.SelectedID(),
	}
	if p.Items == nil {
		p.Items = []task.Task{}
	}
	if err := s.mgr.Err(); err != nil {
		p.Error = err.Error()
	}
	return p
}

// getTasks reloads the list from the backend and returns the state.
// A failed load still answers 200; the failure rides in the error
// field so the client keeps its last known list.
func (s *Server) getTasks(c *gin.Context) {
	s.mgr.LoadAll(c.Request.Context())
	if err := s.mgr.Err(); err != nil {
		s.logger.Error("load failed", "err", err)
	}
	c.JSON(http.StatusOK, s.state())
}

func (s *Server) createTask(c *gin.Context) {
	var req createRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}
	if err := s.validate.Struct(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "title must be 2-100 characters"})
		return
	}

	s.mgr.Create(c.Request.Context(), task.CreateInput{Title: req.Title})
	if err := s.mgr.Err(); err != nil {
		s.logger.Error("create failed", "err", err)
		c.JSON(http.StatusBadGateway, s.state())
		return
	}
	c.JSON(http.StatusCreated, s.state())
}

func (s *Server) toggleTask(c *gin.Context) {
	id := c.Param("id")
	prev, ok := s.completed(id)
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "task not found"})
		return
	}

	s.mgr.Toggle(c.Request.Context(), id)

	// Toggle never clears a previous error, so the error field alone
	// cannot tell this call's failure from a stale one. A flip that
	// did not stick was rolled back.
	if now, ok := s.completed(id); !ok || now == prev {
		s.logger.Error("toggle failed", "id", id, "err", s.mgr.Err())
		c.JSON(http.StatusBadGateway, s.state())
		return
	}
	c.JSON(http.StatusOK, s.state())
}

func (s *Server) deleteTask(c *gin.Context) {
	id := c.Param("id")
	s.mgr.Delete(c.Request.Context(), id)
	if err := s.mgr.Err(); err != nil {
		s.logger.Error("delete failed", "id", id, "err", err)
		c.JSON(http.StatusBadGateway, s.state())
		return
	}
	c.JSON(http.StatusOK, s.state())
}

func (s *Server) selectTask(c *gin.Context) {
	s.mgr.Select(c.Param("id"))
	c.JSON(http.StatusOK, s.state())
}

func (s *Server) clearSelection(c *gin.Context) {
	s.mgr.ClearSelection()
	c.JSON(http.StatusOK, s.state())
}

// getAbout serves the about page localized per Accept-Language.
func (s *Server) getAbout(c *gin.Context) {
	tr := i18n.NewTranslator(c.GetHeader("Accept-Language"), s.reporter)
	c.Header("Content-Language", tr.Tag().String())
	c.JSON(http.StatusOK, about.Render(tr))
}

// completed returns the current completion value of id, and whether
// the id resolves at all.
func (s *Server) completed(id string) (bool, bool) {
	for _, t := range s.mgr.Items() {
		if t.ID == id {
			return t.Completed, true
		}
	}
	return false, false
}
