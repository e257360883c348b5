package api

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gofrs/uuid"
	"github.com/segmentio/kafka-go"
)

// Dummy handler to check context and header
func makeTestHandler(t *testing.T, wantID string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		gotID, _ := r.Context().Value(RequestIDKey).(string)
		if wantID != "" && gotID != wantID {
			t.Errorf("want request id in context %q, got %q", wantID, gotID)
		}
		respID := w.Header().Get("X-Request-Id")
		if wantID != "" && respID != wantID {
			t.Errorf("want X-Request-Id header %q, got %q", wantID, respID)
		}
		w.WriteHeader(http.StatusOK)
		io.WriteString(w, "ok")
	}
}

func Test_requestIDMiddlewareHeaderExists(t *testing.T) {
	api := &API{}
	wantID := "test-req-id-123"
	handler := api.requestIDMiddleware(makeTestHandler(t, wantID))

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("X-Request-Id", wantID)
	rr := httptest.NewRecorder()

	handler.ServeHTTP(rr, req)

	if rr.Code != http.StatusOK {
		t.Errorf("want status code %v, got %v", http.StatusOK, rr.Code)
	}
	got := rr.Header().Get("X-Request-Id")
	if got != wantID {
		t.Errorf("want X-Request-Id header %q, got %q", wantID, got)
	}
}

func Test_requestIDMiddlewareHeaderNotExists(t *testing.T) {
	api := &API{}
	handler := api.requestIDMiddleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotID := GetRequestID(r.Context())
		if gotID == "" {
			t.Error("want non-empty request id in context when header is missing")
		}
		respID := w.Header().Get("X-Request-Id")
		if respID != gotID {
			t.Errorf("want X-Request-Id header %q, got %q", gotID, respID)
		}
		if _, err := uuid.FromString(respID); err != nil {
			t.Errorf("want valid UUID for generated request id, got %q", respID)
		}
		w.WriteHeader(http.StatusOK)
	}))

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rr := httptest.NewRecorder()

	handler.ServeHTTP(rr, req)

	if rr.Code != http.StatusOK {
		t.Errorf("want status code %v, got %v", http.StatusOK, rr.Code)
	}
}

func Test_headerMiddleware(t *testing.T) {
	api := &API{}
	handler := api.headerMiddleware(makeTestHandler(t, ""))

	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/", nil))

	if ct := rr.Header().Get("Content-Type"); ct != "application/json" {
		t.Errorf("want content type %q, got %q", "application/json", ct)
	}
}

type fakeWriter struct {
	msgs chan kafka.Message
	err  error
}

func (f *fakeWriter) WriteMessages(_ context.Context, msgs ...kafka.Message) error {
	for _, m := range msgs {
		f.msgs <- m
	}
	return f.err
}

func Test_loggingMiddleware(t *testing.T) {
	api := &API{ServiceName: "wordguard"}
	kw := &fakeWriter{msgs: make(chan kafka.Message, 1)}

	handler := api.requestIDMiddleware(api.loggingMiddleware(kw)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnprocessableEntity)
		io.WriteString(w, "rejected")
	})))

	req := httptest.NewRequest(http.MethodPost, "/check", strings.NewReader("{}"))
	req.Header.Set("X-Request-Id", testRequestID)
	req.Header.Set("X-Forwarded-For", "203.0.113.7")
	handler.ServeHTTP(httptest.NewRecorder(), req)

	var msg kafka.Message
	select {
	case msg = <-kw.msgs:
	case <-time.After(5 * time.Second):
		t.Fatal("want a log entry written to Kafka")
	}

	if string(msg.Key) != testRequestID {
		t.Errorf("want message key %q, got %q", testRequestID, msg.Key)
	}

	var entry LogEntry
	if err := json.Unmarshal(msg.Value, &entry); err != nil {
		t.Fatalf("failed to unmarshal log entry: %v", err)
	}

	want := LogEntry{
		IP:         "203.0.113.7",
		StatusCode: http.StatusUnprocessableEntity,
		Bytes:      len("rejected"),
		RequestID:  testRequestID,
		Method:     http.MethodPost,
		Path:       "/check",
		Service:    "wordguard",
	}
	got := entry
	got.Timestamp, got.Duration = time.Time{}, 0
	if got != want {
		t.Errorf("want %+v, got %+v", want, got)
	}
}

func Test_loggingMiddlewareWriteError(t *testing.T) {
	api := &API{}
	kw := &fakeWriter{msgs: make(chan kafka.Message, 1), err: errors.New("broker down")}

	handler := api.loggingMiddleware(kw)(makeTestHandler(t, ""))
	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/health", nil))

	if rr.Code != http.StatusOK {
		t.Errorf("want status code %v, got %v", http.StatusOK, rr.Code)
	}

	select {
	case <-kw.msgs:
	case <-time.After(5 * time.Second):
		t.Fatal("want a write attempt")
	}
}
