package server

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/locaddo/locaddo/pkg/version"
	"github.com/locaddo/locaddo/pkg/waitlist"
)

const (
	msgInvalidBody  = "Invalid request body"
	msgInvalidEmail = "Please provide a valid email address"
	msgJoined       = "Successfully joined the waitlist!"
	msgFailed       = "Something went wrong. Please try again."
	msgRunning      = "Waitlist API is running"
)

// JoinRequest is the body of POST /api/waitlist.
type JoinRequest struct {
	Email string `json:"email"`
	Name  string `json:"name,omitempty"`
}

// JoinResponse is returned by POST /api/waitlist. Error is only set in debug
// mode.
type JoinResponse struct {
	Message string `json:"message"`
	Success bool   `json:"success"`
	Error   string `json:"error,omitempty"`
}

// StatusResponse is returned by GET /api/waitlist.
type StatusResponse struct {
	Message   string   `json:"message"`
	Timestamp string   `json:"timestamp"`
	Methods   []string `json:"methods"`
}

func (s *Server) joinWaitlist(c *gin.Context) {
	var req JoinRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, JoinResponse{Message: msgInvalidBody})
		_ = c.Error(err)
		return
	}

	if !waitlist.ValidEmail(req.Email) {
		c.JSON(http.StatusBadRequest, JoinResponse{Message: msgInvalidEmail})
		return
	}

	_, err := s.svc.Join(c.Request.Context(), waitlist.Signup{
		Email:     req.Email,
		Name:      req.Name,
		UserAgent: c.Request.UserAgent(),
	})
	if errors.Is(err, waitlist.ErrInvalidEmail) {
		c.JSON(http.StatusBadRequest, JoinResponse{Message: msgInvalidEmail})
		return
	}
	if err != nil {
		resp := JoinResponse{Message: msgFailed}
		if s.conf.Debug() {
			resp.Error = err.Error()
		}
		c.JSON(http.StatusInternalServerError, resp)
		_ = c.Error(err)
		return
	}

	c.JSON(http.StatusOK, JoinResponse{Message: msgJoined, Success: true})
}

func (s *Server) waitlistStatus(c *gin.Context) {
	c.JSON(http.StatusOK, StatusResponse{
		Message:   msgRunning,
		Timestamp: s.now().UTC().Format(time.RFC3339),
		Methods:   []string{http.MethodPost},
	})
}

func getVersion(c *gin.Context) {
	c.IndentedJSON(http.StatusOK, version.Version)
}
