package sessioncookie

import (
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestRead(t *testing.T) {
	t.Parallel()

	if _, ok := Read(nil); ok {
		t.Fatalf("expected nil request to have no cookie")
	}

	req := httptest.NewRequest(http.MethodGet, "http://example.com", nil)
	if _, ok := Read(req); ok {
		t.Fatalf("expected missing cookie")
	}

	req.AddCookie(&http.Cookie{Name: Name, Value: "  1  "})
	value, ok := Read(req)
	if !ok {
		t.Fatalf("expected cookie to be present")
	}
	if value != "1" {
		t.Fatalf("value = %q, want %q", value, "1")
	}
}

func TestWriteIsSessionScoped(t *testing.T) {
	t.Parallel()

	secureReq := httptest.NewRequest(http.MethodGet, "https://wrapped.example.test", nil)
	rr := httptest.NewRecorder()
	Write(rr, secureReq, "1")
	cookie, err := http.ParseSetCookie(rr.Header().Get("Set-Cookie"))
	if err != nil {
		t.Fatalf("ParseSetCookie() error = %v", err)
	}
	if cookie.Name != Name {
		t.Fatalf("cookie name = %q, want %q", cookie.Name, Name)
	}
	if !cookie.Secure {
		t.Fatalf("expected secure cookie for https request")
	}
	if cookie.MaxAge != 0 || !cookie.Expires.IsZero() {
		t.Fatalf("cookie should expire with the session: MaxAge=%d Expires=%v", cookie.MaxAge, cookie.Expires)
	}
}

func TestClearExpiresCookie(t *testing.T) {
	t.Parallel()

	rr := httptest.NewRecorder()
	Clear(rr, httptest.NewRequest(http.MethodGet, "http://example.com", nil))
	cookie, err := http.ParseSetCookie(rr.Header().Get("Set-Cookie"))
	if err != nil {
		t.Fatalf("ParseSetCookie() error = %v", err)
	}
	if cookie.MaxAge >= 0 {
		t.Fatalf("MaxAge = %d, want negative", cookie.MaxAge)
	}
}

func TestAudioFlags(t *testing.T) {
	t.Parallel()

	req := httptest.NewRequest(http.MethodGet, "http://example.com", nil)
	rr := httptest.NewRecorder()
	flags := NewAudioFlags(rr, req)
	if flags.Enabled() {
		t.Fatal("expected flag to start disabled")
	}
	flags.SetEnabled(true)
	if !flags.Enabled() {
		t.Fatal("expected write to be visible in the same request")
	}
	cookie, err := http.ParseSetCookie(rr.Header().Get("Set-Cookie"))
	if err != nil {
		t.Fatalf("ParseSetCookie() error = %v", err)
	}
	if cookie.Value != "1" {
		t.Fatalf("cookie value = %q, want %q", cookie.Value, "1")
	}

	enabledReq := httptest.NewRequest(http.MethodGet, "http://example.com", nil)
	enabledReq.AddCookie(&http.Cookie{Name: Name, Value: "1"})
	if !NewAudioFlags(httptest.NewRecorder(), enabledReq).Enabled() {
		t.Fatal("expected flag from cookie")
	}

	bogusReq := httptest.NewRequest(http.MethodGet, "http://example.com", nil)
	bogusReq.AddCookie(&http.Cookie{Name: Name, Value: "0"})
	if NewAudioFlags(httptest.NewRecorder(), bogusReq).Enabled() {
		t.Fatal("unexpected flag from unknown cookie value")
	}
}
