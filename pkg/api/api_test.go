package api

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"reflect"
	"strings"
	"testing"

	"github.com/gofrs/uuid"
	log "github.com/sirupsen/logrus"

	"wordguard/pkg/censor"
	"wordguard/pkg/models"
)

const testRequestID = "9b4f6c5d-1a32-4d8f-b5a6-23c9e1f7d2a1"

func TestMain(m *testing.M) {
	log.SetLevel(log.PanicLevel)
	exitCode := m.Run()
	os.Exit(exitCode)
}

func newTestAPI(t *testing.T) *API {
	t.Helper()

	c := censor.New()
	err := c.LoadFile("../censor/test_data/words.json")
	if err != nil {
		t.Fatalf("failed to load words for censor: %v", err)
	}

	api, err := New("", c, nil)
	if err != nil {
		t.Fatalf("failed to create API: %v", err)
	}

	return api
}

func postComment(t *testing.T, api *API, text string) (*httptest.ResponseRecorder, models.Comment) {
	t.Helper()

	commentID, err := uuid.NewV4()
	if err != nil {
		t.Fatalf("failed to generate uuid: %v", err)
	}
	targetPostID, err := uuid.NewV4()
	if err != nil {
		t.Fatalf("failed to generate uuid: %v", err)
	}
	testComment := models.Comment{
		ID:     commentID,
		PostID: targetPostID,
		Author: "John Doe",
		Text:   text,
	}

	b, err := json.Marshal(testComment)
	if err != nil {
		t.Fatalf("failed to marshal comment: %v", err)
	}

	req := httptest.NewRequest(http.MethodPost, "/check", bytes.NewReader(b))
	req.Header.Set("X-Request-Id", testRequestID)
	rr := httptest.NewRecorder()
	api.Router().ServeHTTP(rr, req)

	return rr, testComment
}

func TestAPI_checkComment(t *testing.T) {
	api := newTestAPI(t)

	rr, comment := postComment(t, api, "This is a test comment")
	if rr.Code != http.StatusOK {
		t.Fatalf("want status code %v, got status code %v", http.StatusOK, rr.Code)
	}

	var verdict models.Verdict
	if err := json.NewDecoder(rr.Body).Decode(&verdict); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if !verdict.Allowed {
		t.Error("want comment allowed")
	}
	if verdict.CommentID != comment.ID {
		t.Errorf("want comment_id %v, got %v", comment.ID, verdict.CommentID)
	}
	if verdict.CheckedAt.IsZero() {
		t.Error("want non-zero checked_at")
	}
	if got := rr.Header().Get("X-Request-Id"); got != testRequestID {
		t.Errorf("want X-Request-Id %q, got %q", testRequestID, got)
	}
}

func TestAPI_checkCommentBanned(t *testing.T) {
	api := newTestAPI(t)

	rr, _ := postComment(t, api, "Well dаrn, that is a crap comment")
	if rr.Code != http.StatusUnprocessableEntity {
		t.Fatalf("want status code %v, got status code %v", http.StatusUnprocessableEntity, rr.Code)
	}

	var verdict models.Verdict
	if err := json.NewDecoder(rr.Body).Decode(&verdict); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if verdict.Allowed {
		t.Error("want comment rejected")
	}
	if want := []string{"darn", "crap"}; !reflect.DeepEqual(verdict.Matched, want) {
		t.Errorf("want matched %v, got %v", want, verdict.Matched)
	}
	if want := "Well ****, that is a **** comment"; verdict.Censored != want {
		t.Errorf("want censored %q, got %q", want, verdict.Censored)
	}
}

func TestAPI_checkCommentMalformed(t *testing.T) {
	api := newTestAPI(t)

	req := httptest.NewRequest(http.MethodPost, "/check", strings.NewReader("{not json"))
	rr := httptest.NewRecorder()
	api.Router().ServeHTTP(rr, req)

	if rr.Code != http.StatusBadRequest {
		t.Errorf("want status code %v, got status code %v", http.StatusBadRequest, rr.Code)
	}
}

func TestAPI_censorText(t *testing.T) {
	api := newTestAPI(t)

	tests := []struct {
		name string
		body string
		want censorResponse
	}{
		{
			name: "Default character",
			body: `{"text": "heckin darn"}`,
			want: censorResponse{Text: "****in ****", Matched: []string{"darn", "heck**"}},
		},
		{
			name: "Custom character",
			body: `{"text": "fudgesicle", "character": "#"}`,
			want: censorResponse{Text: "#####sicle", Matched: []string{"**fudge**"}},
		},
		{
			name: "Clean text",
			body: `{"text": "hello world"}`,
			want: censorResponse{Text: "hello world"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodPost, "/censor", strings.NewReader(tt.body))
			rr := httptest.NewRecorder()
			api.Router().ServeHTTP(rr, req)

			if rr.Code != http.StatusOK {
				t.Fatalf("want status code %v, got status code %v", http.StatusOK, rr.Code)
			}

			var got censorResponse
			if err := json.NewDecoder(rr.Body).Decode(&got); err != nil {
				t.Fatalf("failed to decode response: %v", err)
			}
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("want %+v, got %+v", tt.want, got)
			}
		})
	}
}

func TestAPI_listWords(t *testing.T) {
	api := newTestAPI(t)

	req := httptest.NewRequest(http.MethodGet, "/words", nil)
	rr := httptest.NewRecorder()
	api.Router().ServeHTTP(rr, req)

	if rr.Code != http.StatusOK {
		t.Fatalf("want status code %v, got status code %v", http.StatusOK, rr.Code)
	}
	if ct := rr.Header().Get("Content-Type"); ct != "application/json" {
		t.Errorf("want content type %q, got %q", "application/json", ct)
	}

	var got wordsResponse
	if err := json.NewDecoder(rr.Body).Decode(&got); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	want := []string{"darn", "heck**", "crap", "**fudge**", "b[uo]tt", "blimey"}
	if !reflect.DeepEqual(got.Words, want) {
		t.Errorf("want words %v, got %v", want, got.Words)
	}
	if got.Count != len(want) {
		t.Errorf("want count %d, got %d", len(want), got.Count)
	}
}

func TestAPI_health(t *testing.T) {
	api := newTestAPI(t)

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	rr := httptest.NewRecorder()
	api.Router().ServeHTTP(rr, req)

	if rr.Code != http.StatusOK {
		t.Fatalf("want status code %v, got status code %v", http.StatusOK, rr.Code)
	}

	var got healthResponse
	if err := json.NewDecoder(rr.Body).Decode(&got); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if got.Status != "ok" || got.Words != 6 {
		t.Errorf("want status ok with 6 words, got %+v", got)
	}
}

func TestAPI_methodNotAllowed(t *testing.T) {
	api := newTestAPI(t)

	req := httptest.NewRequest(http.MethodGet, "/check", nil)
	rr := httptest.NewRecorder()
	api.Router().ServeHTTP(rr, req)

	if rr.Code != http.StatusMethodNotAllowed {
		t.Errorf("want status code %v, got status code %v", http.StatusMethodNotAllowed, rr.Code)
	}
}
