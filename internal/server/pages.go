package server

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/adilcr01/adil-dev/internal/chat"
	"github.com/adilcr01/adil-dev/internal/content"
)

type contactForm struct {
	Name    string `form:"name" binding:"required,max=100"`
	Email   string `form:"email" binding:"required,email,max=254"`
	Subject string `form:"subject" binding:"max=200"`
	Message string `form:"message" binding:"required,max=5000"`
}

func (s *Server) routes() {
	s.engine.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	// Home page
	s.engine.GET("/", func(c *gin.Context) {
		c.HTML(http.StatusOK, "index.html", gin.H{
			"page":        s.page,
			"projects":    s.page.Portfolio.Projects,
			"category":    content.AllCategories,
			"categories":  s.page.Portfolio.Categories,
			"greeting":    chat.Greeting,
			"suggestions": chat.DefaultSuggestions(),
		})
	})

	// Portfolio category tab, returns just the project grid
	s.engine.GET("/portfolio", func(c *gin.Context) {
		category := c.DefaultQuery("category", content.AllCategories)
		c.HTML(http.StatusOK, "portfolio.html", gin.H{
			"projects": s.page.Portfolio.Filter(category),
			"category": category,
		})
	})

	s.engine.POST("/contact", s.handleContact)

	s.engine.GET("/privacy", func(c *gin.Context) {
		c.HTML(http.StatusOK, "privacy.html", gin.H{
			"title":         "Privacy Policy",
			"retentionDays": int(s.cfg.VisitorRetention.Hours() / 24),
		})
	})

	api := s.engine.Group("/api")
	api.GET("/chat", s.handleChatHistory)
	api.POST("/chat", s.handleChat)
}

// handleContact validates the form and pretends to send it. Nothing leaves
// the server; the delay only mimics a real submission.
func (s *Server) handleContact(c *gin.Context) {
	var form contactForm
	if err := c.ShouldBind(&form); err != nil {
		c.HTML(http.StatusOK, "contact-error.html", gin.H{
			"error": "Please fill in your name, a valid email address and a message.",
		})
		return
	}

	timer := time.NewTimer(s.cfg.ContactSubmitDelay)
	defer timer.Stop()
	select {
	case <-timer.C:
	case <-c.Request.Context().Done():
		s.log.Debug("contact form abandoned before submission finished")
		return
	}

	s.log.Info("contact form submitted",
		zap.String("from", s.hasher.Hash(form.Email)),
		zap.Int("message_length", len(form.Message)))
	c.HTML(http.StatusOK, "contact-success.html", gin.H{
		"success": "Thank you for your message! I'll get back to you soon.",
	})
}
