package server

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/adilcr01/adil-dev/internal/analytics"
	"github.com/adilcr01/adil-dev/internal/assistant"
	"github.com/adilcr01/adil-dev/internal/chat"
	"github.com/adilcr01/adil-dev/internal/config"
)

func TestMain(m *testing.M) {
	gin.SetMode(gin.TestMode)
	os.Exit(m.Run())
}

type testEnv struct {
	srv      *Server
	store    *analytics.Store
	sessions *chat.Store
}

func testConfig() *config.Config {
	return &config.Config{
		Port:                8080,
		ChatSessionTTL:      30 * time.Minute,
		VisitorRetention:    365 * 24 * time.Hour,
		TrackVisitors:       true,
		MaintenanceSchedule: "@hourly",
		AdminUsername:       "adil",
		AdminPassword:       "secret",
	}
}

func newTestEnv(t *testing.T, cfg *config.Config) *testEnv {
	t.Helper()
	store, err := analytics.Open(context.Background(), filepath.Join(t.TempDir(), "test.db"))
	require.NoError(t, err)

	responder := assistant.Default(assistant.WithTarget("resume_url", cfg.ResumeURL))
	sessions := chat.NewStore(func() *chat.Conversation {
		return chat.NewConversation(responder, chat.WithDelay(cfg.ChatReplyDelay))
	})

	srv, err := New(Deps{
		Config:    cfg,
		Logger:    zap.NewNop(),
		Sessions:  sessions,
		Analytics: store,
		Hasher:    analytics.NewHasherWithSalt("test"),
	})
	require.NoError(t, err)

	t.Cleanup(func() {
		srv.Wait()
		store.Close()
	})
	return &testEnv{srv: srv, store: store, sessions: sessions}
}

func (e *testEnv) do(req *http.Request) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	e.srv.Handler().ServeHTTP(w, req)
	return w
}

func postChat(message string, cookies ...*http.Cookie) *http.Request {
	body, _ := json.Marshal(map[string]string{"message": message})
	req := httptest.NewRequest(http.MethodPost, "/api/chat", strings.NewReader(string(body)))
	req.Header.Set("Content-Type", "application/json")
	for _, c := range cookies {
		req.AddCookie(c)
	}
	return req
}

func cookieNamed(w *httptest.ResponseRecorder, name string) *http.Cookie {
	for _, c := range w.Result().Cookies() {
		if c.Name == name {
			return c
		}
	}
	return nil
}

func TestNewRequiresDeps(t *testing.T) {
	_, err := New(Deps{})
	assert.Error(t, err)
}

func TestHomePage(t *testing.T) {
	env := newTestEnv(t, testConfig())

	w := env.do(httptest.NewRequest(http.MethodGet, "/", nil))
	require.Equal(t, http.StatusOK, w.Code)

	body := w.Body.String()
	for _, want := range []string{
		"Adil Anwar",
		`id="home"`, `id="skills"`, `id="resume"`, `id="portfolio"`, `id="contact"`,
		"Experience &amp; Education",
		"Sajal Tech Solution Private Limited",
		"Agentic RAG Engine",
		"Portfolio Assistant",
		"Show me the resume",
	} {
		assert.Contains(t, body, want)
	}

	env.srv.Wait()
	visitors, err := env.store.Visitors(context.Background(), 10)
	require.NoError(t, err)
	require.Len(t, visitors, 1)
	assert.Equal(t, "/", visitors[0].Path)
	assert.Len(t, visitors[0].HashedIP, 16)
}

func TestVisitorTrackingSkips(t *testing.T) {
	env := newTestEnv(t, testConfig())

	dnt := httptest.NewRequest(http.MethodGet, "/", nil)
	dnt.Header.Set("DNT", "1")
	env.do(dnt)
	env.do(httptest.NewRequest(http.MethodGet, "/static/site.css", nil))
	env.do(httptest.NewRequest(http.MethodGet, "/privacy", nil))
	env.do(httptest.NewRequest(http.MethodGet, "/healthz", nil))

	env.srv.Wait()
	stats, err := env.store.Stats(context.Background())
	require.NoError(t, err)
	assert.Zero(t, stats.TotalVisitors)
}

func TestVisitorTrackingDisabled(t *testing.T) {
	cfg := testConfig()
	cfg.TrackVisitors = false
	env := newTestEnv(t, cfg)

	env.do(httptest.NewRequest(http.MethodGet, "/", nil))

	env.srv.Wait()
	stats, err := env.store.Stats(context.Background())
	require.NoError(t, err)
	assert.Zero(t, stats.TotalVisitors)
}

func TestPortfolioFilter(t *testing.T) {
	env := newTestEnv(t, testConfig())

	w := env.do(httptest.NewRequest(http.MethodGet, "/portfolio?category=Backend", nil))
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Scalable E-Commerce Core")
	assert.Contains(t, w.Body.String(), "Live Chat Application")
	assert.NotContains(t, w.Body.String(), "Thyroid Risk Prediction")

	w = env.do(httptest.NewRequest(http.MethodGet, "/portfolio?category="+url.QueryEscape("AI / ML"), nil))
	assert.Contains(t, w.Body.String(), "Thyroid Risk Prediction")
	assert.NotContains(t, w.Body.String(), "Google Maps Scraper")

	w = env.do(httptest.NewRequest(http.MethodGet, "/portfolio?category=Frontend", nil))
	assert.Contains(t, w.Body.String(), "No projects in this category yet.")
}

func TestChat(t *testing.T) {
	env := newTestEnv(t, testConfig())

	w := env.do(postChat("Can I see your CV?"))
	require.Equal(t, http.StatusOK, w.Code)

	var resp chatResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.NotNil(t, resp.Turn)
	assert.Equal(t, "resume", resp.Turn.Reply.Intent)
	assert.Equal(t, "Can I see your CV?", resp.Turn.Input)
	require.NotNil(t, resp.Turn.Reply.Link)
	assert.Equal(t, "#resume", resp.Turn.Reply.Link.URL)
	assert.Equal(t, "scroll", resp.Navigation)
	assert.Len(t, resp.Messages, 3)
	assert.Empty(t, resp.Suggestions)

	session := cookieNamed(w, chatCookie)
	require.NotNil(t, session)
	assert.Equal(t, resp.SessionID, session.Value)

	w = env.do(postChat("hey there", session))
	require.Equal(t, http.StatusOK, w.Code)
	var second chatResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &second))
	assert.Equal(t, "greeting", second.Turn.Reply.Intent)
	assert.Empty(t, second.Navigation)
	assert.Len(t, second.Messages, 5)
	assert.Equal(t, 1, env.sessions.Len())

	intents, err := env.store.Intents(context.Background())
	require.NoError(t, err)
	assert.Len(t, intents, 2)
}

func TestChatHistory(t *testing.T) {
	env := newTestEnv(t, testConfig())

	w := env.do(httptest.NewRequest(http.MethodGet, "/api/chat", nil))
	require.Equal(t, http.StatusOK, w.Code)

	var resp chatResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Len(t, resp.Messages, 1)
	assert.Equal(t, chat.Greeting, resp.Messages[0].Text)
	assert.Len(t, resp.Suggestions, 4)
	assert.Nil(t, resp.Turn)
}

func TestChatExternalResume(t *testing.T) {
	cfg := testConfig()
	cfg.ResumeURL = "https://example.com/adil-cv.pdf"
	env := newTestEnv(t, cfg)

	w := env.do(postChat("show me your resume"))
	require.Equal(t, http.StatusOK, w.Code)

	var resp chatResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "open", resp.Navigation)
	assert.Equal(t, "https://example.com/adil-cv.pdf", resp.Turn.Reply.Link.URL)
}

func TestChatRejectsEmpty(t *testing.T) {
	env := newTestEnv(t, testConfig())

	for _, msg := range []string{"", "   "} {
		w := env.do(postChat(msg))
		assert.Equal(t, http.StatusBadRequest, w.Code, "message %q", msg)
	}

	w := env.do(httptest.NewRequest(http.MethodPost, "/api/chat", strings.NewReader("not json")))
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestChatClientLeavesBeforeReply(t *testing.T) {
	cfg := testConfig()
	cfg.ChatReplyDelay = time.Hour
	env := newTestEnv(t, cfg)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	w := env.do(postChat("skills?").WithContext(ctx))

	session := cookieNamed(w, chatCookie)
	require.NotNil(t, session)
	conv, ok := env.sessions.Get(session.Value)
	require.True(t, ok)
	assert.False(t, conv.Typing())
	assert.Empty(t, conv.Turns())

	intents, err := env.store.Intents(context.Background())
	require.NoError(t, err)
	assert.Empty(t, intents)
}

func TestContactForm(t *testing.T) {
	env := newTestEnv(t, testConfig())

	post := func(form url.Values) string {
		req := httptest.NewRequest(http.MethodPost, "/contact", strings.NewReader(form.Encode()))
		req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
		w := env.do(req)
		require.Equal(t, http.StatusOK, w.Code)
		return w.Body.String()
	}

	body := post(url.Values{
		"name":    {"Jane Recruiter"},
		"email":   {"jane@example.com"},
		"subject": {"Opportunity"},
		"message": {"Let's talk."},
	})
	assert.Contains(t, body, "Thank you for your message!")

	body = post(url.Values{
		"name":    {"Jane Recruiter"},
		"email":   {"not-an-email"},
		"message": {"Let's talk."},
	})
	assert.Contains(t, body, "valid email address")

	body = post(url.Values{"email": {"jane@example.com"}})
	assert.Contains(t, body, "alert error")
}

func TestPrivacyAndHealth(t *testing.T) {
	env := newTestEnv(t, testConfig())

	w := env.do(httptest.NewRequest(http.MethodGet, "/privacy", nil))
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "365 days")

	w = env.do(httptest.NewRequest(http.MethodGet, "/healthz", nil))
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"status":"ok"}`, w.Body.String())

	w = env.do(httptest.NewRequest(http.MethodGet, "/static/site.js", nil))
	assert.Equal(t, http.StatusOK, w.Code)
}
