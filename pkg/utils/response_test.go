package utils

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

func TestRespondError(t *testing.T) {
	rr := httptest.NewRecorder()
	RespondError(rr, http.StatusUnprocessableEntity, "メッセージが見つかりませんでした")

	if rr.Code != http.StatusUnprocessableEntity {
		t.Fatalf("expected 422, got %d", rr.Code)
	}
	if ct := rr.Header().Get("Content-Type"); !strings.HasPrefix(ct, "application/json") {
		t.Fatalf("expected json content type, got %s", ct)
	}
	if !strings.Contains(rr.Body.String(), `"error":"メッセージが見つかりませんでした"`) {
		t.Fatalf("unexpected body %s", rr.Body.String())
	}
}
