package controllers

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"

	"github.com/projectlog/linebot/config"
	"github.com/projectlog/linebot/llm"
	"github.com/projectlog/linebot/models"
	"github.com/projectlog/linebot/repository/mock"
	"github.com/projectlog/linebot/service"
)

type fakeExtractor struct {
	raw   map[string]any
	err   error
	calls int
}

func (f *fakeExtractor) Extract(_ context.Context, _ string) (map[string]any, error) {
	f.calls++
	return f.raw, f.err
}

type fakeReplier struct {
	tokens  []string
	replies [][]string
	err     error
}

func (f *fakeReplier) Reply(_ context.Context, replyToken string, texts ...string) error {
	f.tokens = append(f.tokens, replyToken)
	f.replies = append(f.replies, texts)
	return f.err
}

type webhookFixture struct {
	router    *gin.Engine
	extractor *fakeExtractor
	replier   *fakeReplier
	store     *mock.Store
}

func newWebhookFixture(t *testing.T) *webhookFixture {
	t.Helper()
	gin.SetMode(gin.TestMode)

	extractor := &fakeExtractor{}
	replier := &fakeReplier{}
	store := &mock.Store{}

	handler := NewWebhookController(
		extractor,
		replier,
		service.NewIntakeService(store, config.ModeProjectLog),
		service.NewExporter(store, t.TempDir(), "http://localhost:8080"),
	)

	router := gin.New()
	router.POST("/webhook", handler.Handle)

	return &webhookFixture{router: router, extractor: extractor, replier: replier, store: store}
}

func (f *webhookFixture) post(t *testing.T, payload models.WebhookPayload) *httptest.ResponseRecorder {
	t.Helper()
	body, _ := json.Marshal(payload)
	req := httptest.NewRequest(http.MethodPost, "/webhook", bytes.NewBuffer(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	f.router.ServeHTTP(w, req)
	return w
}

func textEvent(text string) models.Event {
	return models.Event{
		Type:       "message",
		ReplyToken: "token-1",
		Message:    models.EventMessage{Type: "text", Text: text},
	}
}

func TestWebhookHelpTriggerSkipsExtraction(t *testing.T) {
	f := newWebhookFixture(t)

	w := f.post(t, models.WebhookPayload{Events: []models.Event{textEvent("Update ข้อมูลโครงการ")}})

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", w.Code)
	}
	if f.extractor.calls != 0 {
		t.Errorf("extractor calls = %d, want 0", f.extractor.calls)
	}
	if len(f.store.Projects)+len(f.store.FollowUps) != 0 {
		t.Error("trigger message must not write any record")
	}
	if len(f.replier.replies) != 1 || f.replier.replies[0][0] != service.MsgHelp {
		t.Errorf("replies = %v, want the help template", f.replier.replies)
	}
}

func TestWebhookFollowUpEndToEnd(t *testing.T) {
	f := newWebhookFixture(t)
	f.extractor.raw = map[string]any{
		"branch":       "BKK",
		"date":         "2024-01-01",
		"follow_up_no": "1",
		"project":      "X",
		"address":      "Y",
		"description":  "Z",
	}

	f.post(t, models.WebhookPayload{Events: []models.Event{textEvent("อัพเดตสาขา BKK ครั้งที่ 1")}})

	if len(f.store.FollowUps) != 1 {
		t.Fatalf("stored follow-ups = %d, want 1", len(f.store.FollowUps))
	}
	if f.store.FollowUps[0].FollowUpNo != "1" {
		t.Errorf("follow_up_no = %q, want %q", f.store.FollowUps[0].FollowUpNo, "1")
	}
	want := fmt.Sprintf(service.MsgFollowUpSavedFmt, "X", "1")
	if len(f.replier.replies) != 1 || f.replier.replies[0][0] != want {
		t.Errorf("replies = %v, want %q", f.replier.replies, want)
	}
}

func TestWebhookExtractionFailure(t *testing.T) {
	f := newWebhookFixture(t)
	f.extractor.err = llm.ErrNoObject

	f.post(t, models.WebhookPayload{Events: []models.Event{textEvent("สวัสดีครับ")}})

	if len(f.replier.replies) != 1 || f.replier.replies[0][0] != service.MsgCannotProcess {
		t.Errorf("replies = %v, want %q", f.replier.replies, service.MsgCannotProcess)
	}
}

func TestWebhookExportTriggerWithoutData(t *testing.T) {
	f := newWebhookFixture(t)

	f.post(t, models.WebhookPayload{Events: []models.Event{textEvent("แสดงข้อมูลโครงการ")}})

	if f.extractor.calls != 0 {
		t.Errorf("extractor calls = %d, want 0", f.extractor.calls)
	}
	if len(f.replier.replies) != 1 || f.replier.replies[0][0] != service.MsgNoProjectData {
		t.Errorf("replies = %v, want %q", f.replier.replies, service.MsgNoProjectData)
	}
}

func TestWebhookExportTriggerWithData(t *testing.T) {
	f := newWebhookFixture(t)
	f.store.Projects = append(f.store.Projects, models.ProjectRecord{
		ProjectNo: "P1", ProjectName: "X", ProjectDate: "2024-03-15",
		Description: "d", Contractor: "c",
	})

	f.post(t, models.WebhookPayload{Events: []models.Event{textEvent("แสดงข้อมูลโครงการ")}})

	if len(f.replier.replies) != 1 {
		t.Fatalf("replies = %v, want one download reply", f.replier.replies)
	}
	reply := f.replier.replies[0][0]
	if !strings.Contains(reply, "/download/project_") || !strings.Contains(reply, ".xlsx") {
		t.Errorf("reply = %q, want a download link", reply)
	}
}

func TestWebhookMultipleTriggersFireIndependently(t *testing.T) {
	f := newWebhookFixture(t)

	f.post(t, models.WebhookPayload{Events: []models.Event{
		textEvent("Update ข้อมูลโครงการ และ Upload รูปภาพโครงการ"),
	}})

	if f.extractor.calls != 0 {
		t.Errorf("extractor calls = %d, want 0", f.extractor.calls)
	}
	if len(f.replier.replies) != 1 {
		t.Fatalf("reply calls = %d, want 1", len(f.replier.replies))
	}
	texts := f.replier.replies[0]
	if len(texts) != 2 || texts[0] != service.MsgHelp || texts[1] != service.MsgUnderDevelopment {
		t.Errorf("reply texts = %v, want help + under-development", texts)
	}
}

func TestWebhookIgnoresNonTextEvents(t *testing.T) {
	f := newWebhookFixture(t)

	w := f.post(t, models.WebhookPayload{Events: []models.Event{
		{Type: "message", ReplyToken: "token-1", Message: models.EventMessage{Type: "sticker"}},
		{Type: "follow", ReplyToken: "token-2"},
	}})

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", w.Code)
	}
	if f.extractor.calls != 0 || len(f.replier.replies) != 0 {
		t.Error("non-text events must be ignored")
	}
}

func TestWebhookRejectsMalformedBody(t *testing.T) {
	f := newWebhookFixture(t)

	req := httptest.NewRequest(http.MethodPost, "/webhook", strings.NewReader("not json"))
	w := httptest.NewRecorder()
	f.router.ServeHTTP(w, req)

	if w.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want 400", w.Code)
	}
}
