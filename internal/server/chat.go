package server

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/adilcr01/adil-dev/internal/chat"
)

const chatCookie = "chat_session"

type chatRequest struct {
	Message string `json:"message" binding:"required,max=2000"`
}

type chatResponse struct {
	SessionID   string         `json:"session_id"`
	Turn        *chat.Turn     `json:"turn,omitempty"`
	Navigation  string         `json:"navigation,omitempty"`
	Messages    []chat.Message `json:"messages"`
	Suggestions []string       `json:"suggestions"`
}

// navigation tells the widget how to follow a reply's link: "open" in a new
// tab or "scroll" to an anchor on the page.
func navigation(turn chat.Turn) string {
	switch {
	case turn.Reply.Link == nil:
		return ""
	case turn.Reply.Link.External():
		return "open"
	default:
		return "scroll"
	}
}

func (s *Server) conversation(c *gin.Context) *chat.Conversation {
	id, _ := c.Cookie(chatCookie)
	conv, created := s.sessions.GetOrCreate(id)
	if created {
		c.SetSameSite(http.SameSiteLaxMode)
		c.SetCookie(chatCookie, conv.ID(), int(s.cfg.ChatSessionTTL/time.Second), "/", "", false, true)
	}
	return conv
}

func (s *Server) handleChatHistory(c *gin.Context) {
	conv := s.conversation(c)
	c.JSON(http.StatusOK, chatResponse{
		SessionID:   conv.ID(),
		Messages:    conv.Transcript(),
		Suggestions: conv.Suggestions(),
	})
}

// handleChat records the question, waits out the typing delay and returns the
// reply. If the client goes away first the reply is dropped.
func (s *Server) handleChat(c *gin.Context) {
	var req chatRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "message is required"})
		return
	}

	conv := s.conversation(c)
	done := make(chan chat.Turn, 1)
	cancel, err := conv.Send(req.Message, func(t chat.Turn) { done <- t })
	switch {
	case errors.Is(err, chat.ErrEmptyMessage):
		c.JSON(http.StatusBadRequest, gin.H{"error": "message is required"})
		return
	case errors.Is(err, chat.ErrReplyPending):
		c.JSON(http.StatusConflict, gin.H{"error": "still typing, please wait"})
		return
	case err != nil:
		s.log.Error("chat send failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "something went wrong"})
		return
	}

	var turn chat.Turn
	select {
	case turn = <-done:
	case <-c.Request.Context().Done():
		cancel()
		s.log.Debug("chat client left before reply", zap.String("session", conv.ID()))
		return
	}

	ctx, stop := context.WithTimeout(context.Background(), 5*time.Second)
	defer stop()
	if err := s.analytics.RecordIntent(ctx, turn.Reply.Intent); err != nil {
		s.log.Warn("error recording intent", zap.String("intent", turn.Reply.Intent), zap.Error(err))
	}

	c.JSON(http.StatusOK, chatResponse{
		SessionID:   conv.ID(),
		Turn:        &turn,
		Navigation:  navigation(turn),
		Messages:    conv.Transcript(),
		Suggestions: conv.Suggestions(),
	})
}
