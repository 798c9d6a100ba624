package server

import (
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/san-kum/folio/internal/chat"
	"github.com/san-kum/folio/internal/contact"
	"github.com/san-kum/folio/internal/content"
)

func (s *Server) profile(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"profile":         s.content.Profile,
		"education":       s.content.Education,
		"specializations": s.content.Specializations,
	})
}

func (s *Server) skills(c *gin.Context) {
	c.JSON(http.StatusOK, s.content.Skills)
}

func (s *Server) experience(c *gin.Context) {
	c.JSON(http.StatusOK, s.content.Experience)
}

func (s *Server) categories(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"categories": s.content.Categories(),
		"tags":       s.content.Tags(),
	})
}

func (s *Server) projects(c *gin.Context) {
	list := s.content.ByCategory(c.Query("category"))
	if list == nil {
		list = []content.Project{}
	}
	c.JSON(http.StatusOK, list)
}

func (s *Server) project(c *gin.Context) {
	p, ok := s.content.Project(c.Param("id"))
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "project not found"})
		return
	}
	c.JSON(http.StatusOK, p)
}

func (s *Server) certifications(c *gin.Context) {
	c.JSON(http.StatusOK, s.content.Certifications)
}

type chatRequest struct {
	Message string `json:"message" binding:"required"`
}

func (s *Server) chat(c *gin.Context) {
	var req chatRequest
	if err := c.ShouldBindJSON(&req); err != nil || strings.TrimSpace(req.Message) == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "message is required"})
		return
	}

	var (
		reply string
		err   error
	)
	if s.gen == nil {
		err = chat.ErrNoAPIKey
	} else {
		reply, err = s.gen.Generate(c.Request.Context(), strings.TrimSpace(req.Message))
	}
	c.JSON(http.StatusOK, gin.H{"reply": chat.Reply(reply, err)})
}

func (s *Server) contact(c *gin.Context) {
	var form contact.Form
	if err := c.ShouldBindJSON(&form); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if err := form.Validate(); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if s.cfg.ContactDelay > 0 {
		t := time.NewTimer(s.cfg.ContactDelay)
		defer t.Stop()
		select {
		case <-t.C:
		case <-c.Request.Context().Done():
			c.Status(http.StatusRequestTimeout)
			return
		}
	}
	c.JSON(http.StatusAccepted, gin.H{"status": "sent"})
}
