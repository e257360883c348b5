package logger

import (
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestResponseLogger(t *testing.T) {
	rr := httptest.NewRecorder()
	lw := New(rr)

	if lw.Status() != http.StatusOK {
		t.Errorf("want default status %v, got %v", http.StatusOK, lw.Status())
	}

	lw.Header().Set("X-Test", "1")
	lw.WriteHeader(http.StatusUnprocessableEntity)
	io.WriteString(lw, "hello")
	io.WriteString(lw, " world")

	if lw.Status() != http.StatusUnprocessableEntity {
		t.Errorf("want status %v, got %v", http.StatusUnprocessableEntity, lw.Status())
	}
	if lw.Size() != len("hello world") {
		t.Errorf("want size %d, got %d", len("hello world"), lw.Size())
	}
	if rr.Code != http.StatusUnprocessableEntity {
		t.Errorf("want recorded status %v, got %v", http.StatusUnprocessableEntity, rr.Code)
	}
	if rr.Header().Get("X-Test") != "1" {
		t.Error("want header passed through")
	}
	if rr.Body.String() != "hello world" {
		t.Errorf("want body %q, got %q", "hello world", rr.Body.String())
	}
}
