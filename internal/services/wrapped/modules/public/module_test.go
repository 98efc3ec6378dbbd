package public

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"testing/fstest"

	"github.com/louisbranch/wrapped/internal/platform/i18n"
	"github.com/louisbranch/wrapped/internal/services/wrapped/module"
	"github.com/louisbranch/wrapped/internal/services/wrapped/platform/sessioncookie"
	"github.com/louisbranch/wrapped/internal/services/wrapped/routepath"
	"github.com/louisbranch/wrapped/internal/wrapped/assets"
	"github.com/louisbranch/wrapped/internal/wrapped/content"
)

func testDependencies(t *testing.T) module.Dependencies {
	t.Helper()
	catalog, err := content.Default()
	if err != nil {
		t.Fatalf("content.Default() error = %v", err)
	}
	files := fstest.MapFS{
		"audio/main-background.mp3": {Data: []byte("mp3")},
		"images/thankyou.jpg":       {Data: []byte("jpg")},
	}
	return module.Dependencies{
		Catalog: catalog,
		Assets:  assets.New(files, ""),
		Locale:  i18n.MustParseLocale("en-US"),
	}
}

func mountHandler(t *testing.T) http.Handler {
	t.Helper()
	mount, err := New().Mount(testDependencies(t))
	if err != nil {
		t.Fatalf("Mount() error = %v", err)
	}
	if mount.Prefix != routepath.Root {
		t.Fatalf("Prefix = %q, want %q", mount.Prefix, routepath.Root)
	}
	return mount.Handler
}

func TestModuleIDReturnsPublic(t *testing.T) {
	t.Parallel()

	if got := New().ID(); got != "public" {
		t.Fatalf("ID() = %q, want %q", got, "public")
	}
}

func TestMountRequiresCatalog(t *testing.T) {
	t.Parallel()

	if _, err := New().Mount(module.Dependencies{}); err == nil {
		t.Fatal("expected missing catalog error")
	}
}

func TestLandingRendersStartLinkAndToggle(t *testing.T) {
	t.Parallel()

	rr := httptest.NewRecorder()
	mountHandler(t).ServeHTTP(rr, httptest.NewRequest(http.MethodGet, routepath.Root, nil))
	if rr.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d", rr.Code, http.StatusOK)
	}
	body := rr.Body.String()
	for _, marker := range []string{
		"<title>Mank&#39;s Wrapped</title>",
		"MANK&#39;S WRAPPED",
		"LET&#39;s START",
		`<a class="pill-button landing-start" data-continue href="/wrapped">`,
		`action="/audio/toggle"`,
		`name="return" value="/"`,
		`data-autoresume="false"`,
		`data-start-on-gesture="true"`,
	} {
		if !strings.Contains(body, marker) {
			t.Fatalf("body missing marker %q: %q", marker, body)
		}
	}
}

func TestLandingResumesAudioWhenFlagSet(t *testing.T) {
	t.Parallel()

	req := httptest.NewRequest(http.MethodGet, routepath.Root, nil)
	req.AddCookie(&http.Cookie{Name: sessioncookie.Name, Value: "1"})
	rr := httptest.NewRecorder()
	mountHandler(t).ServeHTTP(rr, req)
	body := rr.Body.String()
	for _, marker := range []string{` autoplay>`, `data-autoresume="true"`, `aria-label="Pause music"`} {
		if !strings.Contains(body, marker) {
			t.Fatalf("body missing marker %q: %q", marker, body)
		}
	}
}

func TestHealthReturnsOK(t *testing.T) {
	t.Parallel()

	rr := httptest.NewRecorder()
	mountHandler(t).ServeHTTP(rr, httptest.NewRequest(http.MethodGet, routepath.Health, nil))
	if rr.Code != http.StatusOK || rr.Body.String() != "ok" {
		t.Fatalf("health = (%d, %q), want (200, ok)", rr.Code, rr.Body.String())
	}
}

func TestImagesServePublishedFiles(t *testing.T) {
	t.Parallel()

	h := mountHandler(t)
	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/images/thankyou.jpg", nil))
	if rr.Code != http.StatusOK || rr.Body.String() != "jpg" {
		t.Fatalf("image = (%d, %q), want (200, jpg)", rr.Code, rr.Body.String())
	}

	missing := httptest.NewRecorder()
	h.ServeHTTP(missing, httptest.NewRequest(http.MethodGet, "/images/nope.jpg", nil))
	if missing.Code != http.StatusNotFound {
		t.Fatalf("missing image status = %d, want %d", missing.Code, http.StatusNotFound)
	}
}

func TestUnknownPathRendersNotFoundChrome(t *testing.T) {
	t.Parallel()

	rr := httptest.NewRecorder()
	mountHandler(t).ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/nowhere", nil))
	if rr.Code != http.StatusNotFound {
		t.Fatalf("status = %d, want %d", rr.Code, http.StatusNotFound)
	}
	body := rr.Body.String()
	for _, marker := range []string{`class="paper-card enter"`, `data-status="404"`, `href="/"`} {
		if !strings.Contains(body, marker) {
			t.Fatalf("body missing marker %q: %q", marker, body)
		}
	}
}

func TestLandingRejectsPost(t *testing.T) {
	t.Parallel()

	rr := httptest.NewRecorder()
	mountHandler(t).ServeHTTP(rr, httptest.NewRequest(http.MethodPost, routepath.Root, nil))
	if rr.Code != http.StatusMethodNotAllowed {
		t.Fatalf("status = %d, want %d", rr.Code, http.StatusMethodNotAllowed)
	}
}
