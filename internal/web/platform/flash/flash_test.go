package flash

import (
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestWriteTakeRoundTrip(t *testing.T) {
	rec := httptest.NewRecorder()
	Write(rec, httptest.NewRequest(http.MethodGet, "/", nil), Error("Invalid credentials"))

	cookies := rec.Result().Cookies()
	if len(cookies) != 1 || cookies[0].Name != CookieName {
		t.Fatalf("expected flash cookie, got %v", cookies)
	}

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.AddCookie(cookies[0])
	takeRec := httptest.NewRecorder()

	notice, ok := Take(takeRec, req)
	if !ok {
		t.Fatal("expected pending notice")
	}
	if notice.Kind != KindError || notice.Message != "Invalid credentials" {
		t.Fatalf("unexpected notice %+v", notice)
	}

	// Take must clear the cookie so the notice shows once.
	cleared := takeRec.Result().Cookies()
	if len(cleared) != 1 || cleared[0].MaxAge != -1 {
		t.Fatalf("expected cleared cookie, got %v", cleared)
	}
}

func TestTakeWithoutCookie(t *testing.T) {
	if _, ok := Take(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/", nil)); ok {
		t.Fatal("expected no notice without cookie")
	}
}

func TestWriteSkipsEmptyMessage(t *testing.T) {
	rec := httptest.NewRecorder()
	Write(rec, httptest.NewRequest(http.MethodGet, "/", nil), Success("   "))
	if len(rec.Result().Cookies()) != 0 {
		t.Fatal("empty notices must not set a cookie")
	}
}

func TestTakeIgnoresGarbageValue(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.AddCookie(&http.Cookie{Name: CookieName, Value: "%%%not-base64%%%"})
	if _, ok := Take(httptest.NewRecorder(), req); ok {
		t.Fatal("garbage cookie must not decode into a notice")
	}
}
