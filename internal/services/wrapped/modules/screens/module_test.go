package screens

import (
	"math"
	"net/http"
	"net/http/httptest"
	"regexp"
	"strings"
	"testing"
	"testing/fstest"

	"github.com/louisbranch/wrapped/internal/platform/i18n"
	"github.com/louisbranch/wrapped/internal/services/wrapped/module"
	"github.com/louisbranch/wrapped/internal/services/wrapped/routepath"
	"github.com/louisbranch/wrapped/internal/wrapped/assets"
	"github.com/louisbranch/wrapped/internal/wrapped/content"
	"github.com/louisbranch/wrapped/internal/wrapped/sequence"
)

var continueHref = regexp.MustCompile(`data-continue href="([^"]*)"`)

func testDependencies(t *testing.T) module.Dependencies {
	t.Helper()
	catalog, err := content.Default()
	if err != nil {
		t.Fatalf("content.Default() error = %v", err)
	}
	files := fstest.MapFS{
		"audio/whiplash-aespa.mp3":      {Data: []byte("mp3")},
		"audio/whiplash-aespa.ogg":      {Data: []byte("ogg")},
		"images/birthday-photo.jpg":     {Data: []byte("jpg")},
		"images/thankyou.jpg":           {Data: []byte("jpg")},
		"images/whiplash-aespa.jpg":     {Data: []byte("jpg")},
		"images/travel-boston.jpg":      {Data: []byte("lowercase on purpose")},
		"images/travel-saigon-2025.JPG": {Data: []byte("jpg")},
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
	if mount.Prefix != routepath.WrappedPrefix {
		t.Fatalf("Prefix = %q, want %q", mount.Prefix, routepath.WrappedPrefix)
	}
	return mount.Handler
}

func get(t *testing.T, h http.Handler, target string) *httptest.ResponseRecorder {
	t.Helper()
	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, target, nil))
	return rr
}

func assertMarkers(t *testing.T, body string, markers ...string) {
	t.Helper()
	for _, marker := range markers {
		if !strings.Contains(body, marker) {
			t.Fatalf("body missing marker %q: %q", marker, body)
		}
	}
}

func TestModuleIDReturnsScreens(t *testing.T) {
	t.Parallel()

	if got := New().ID(); got != "screens" {
		t.Fatalf("ID() = %q, want %q", got, "screens")
	}
}

func TestMountRequiresCatalog(t *testing.T) {
	t.Parallel()

	if _, err := New().Mount(module.Dependencies{}); err == nil {
		t.Fatal("expected missing catalog error")
	}
}

func TestEntryRedirectsToFirstScreen(t *testing.T) {
	t.Parallel()

	h := mountHandler(t)
	for _, path := range []string{routepath.Wrapped, routepath.WrappedPrefix} {
		rr := get(t, h, path)
		if rr.Code != http.StatusFound {
			t.Fatalf("GET %s status = %d, want %d", path, rr.Code, http.StatusFound)
		}
		if got := rr.Header().Get("Location"); got != routepath.Stats {
			t.Fatalf("GET %s Location = %q, want %q", path, got, routepath.Stats)
		}
	}
}

func TestContinueLinksFollowSequence(t *testing.T) {
	t.Parallel()

	h := mountHandler(t)
	for _, screen := range sequence.Screens()[1:] {
		rr := get(t, h, screen.Path)
		if rr.Code != http.StatusOK {
			t.Fatalf("GET %s status = %d, want %d", screen.Path, rr.Code, http.StatusOK)
		}
		matches := continueHref.FindAllStringSubmatch(rr.Body.String(), -1)
		if len(matches) != 1 {
			t.Fatalf("GET %s continue links = %d, want 1", screen.Path, len(matches))
		}
		want, err := sequence.Next(screen.Path)
		if err != nil {
			t.Fatalf("Next(%q) error = %v", screen.Path, err)
		}
		if got := matches[0][1]; got != want {
			t.Fatalf("GET %s continue = %q, want %q", screen.Path, got, want)
		}
		if want == routepath.Root {
			continue
		}
		if code := get(t, h, want).Code; code != http.StatusOK {
			t.Fatalf("GET %s status = %d, want %d", want, code, http.StatusOK)
		}
	}
}

func TestStatsRendersCountUpAndVerbatimText(t *testing.T) {
	t.Parallel()

	rr := get(t, mountHandler(t), routepath.Stats)
	assertMarkers(t, rr.Body.String(),
		"<h1 class=\"wrapped-title\">OUR STATS</h1>",
		`<span class="countup-final">758</span>`,
		`<span class="countup-final">67,676,767,676,767</span>`,
		`data-countup-interval-ms="33.333"`,
		`<p class="stat-value">∞</p>`,
		`<p class="stat-value">75% (nearly cooked)</p>`,
		`<p class="stat-value">Both get a job 😁</p>`,
	)
}

func TestMusicAutoplaysWithoutTouchingFlag(t *testing.T) {
	t.Parallel()

	rr := get(t, mountHandler(t), routepath.Music)
	body := rr.Body.String()
	assertMarkers(t, body,
		`<source src="/audio/whiplash-aespa.mp3" type="audio/mpeg">`,
		`<source src="/audio/whiplash-aespa.ogg" type="audio/ogg">`,
		` autoplay>`,
		`class="crown"`,
		`src="/images/whiplash-aespa.jpg"`,
	)
	if strings.Contains(body, "audio-toggle") {
		t.Fatalf("music screen rendered the toggle: %q", body)
	}
	if got := rr.Header().Get("Set-Cookie"); got != "" {
		t.Fatalf("Set-Cookie = %q, want none", got)
	}
}

func TestTravelFallsBackToPlaceholder(t *testing.T) {
	t.Parallel()

	body := get(t, mountHandler(t), routepath.Travel).Body.String()
	assertMarkers(t, body, `src="/images/travel-saigon-2025.JPG"`, "Your Photo Here")
	if strings.Contains(body, "travel-boston") {
		t.Fatalf("case-mismatched image resolved: %q", body)
	}
}

func TestBirthdayUsesFallbackPhotoAndBubbles(t *testing.T) {
	t.Parallel()

	body := get(t, mountHandler(t), routepath.Birthday).Body.String()
	assertMarkers(t, body, `src="/images/birthday-photo.jpg"`, "Happy Birthday", "love you even better.")
	if got := strings.Count(body, `class="bubble"`); got != 28 {
		t.Fatalf("bubbles = %d, want 28", got)
	}
}

func TestLetterOpenThenCloseRestoresClosedPage(t *testing.T) {
	t.Parallel()

	h := mountHandler(t)
	closed := get(t, h, routepath.Letter).Body.String()
	assertMarkers(t, closed, `data-envelope-state="closed"`, `href="/wrapped/letter?open=1"`, "data-letter-modal hidden>")

	open := get(t, h, routepath.Letter+"?open=1").Body.String()
	assertMarkers(t, open, `data-envelope-state="open"`, "data-letter-modal>", "rotateX(160deg) translateY(-4px)", "My bbi péo,")

	reclosed := get(t, h, routepath.Letter).Body.String()
	if reclosed != closed {
		t.Fatal("closing the letter did not restore the closed page")
	}
}

func TestUnknownScreenRendersNotFound(t *testing.T) {
	t.Parallel()

	rr := get(t, mountHandler(t), "/wrapped/unknown")
	if rr.Code != http.StatusNotFound {
		t.Fatalf("status = %d, want %d", rr.Code, http.StatusNotFound)
	}
	assertMarkers(t, rr.Body.String(), `data-status="404"`, `class="paper-card enter"`)
}

func TestScreensRejectPost(t *testing.T) {
	t.Parallel()

	rr := httptest.NewRecorder()
	mountHandler(t).ServeHTTP(rr, httptest.NewRequest(http.MethodPost, routepath.Stats, nil))
	if rr.Code != http.StatusMethodNotAllowed {
		t.Fatalf("status = %d, want %d", rr.Code, http.StatusMethodNotAllowed)
	}
}

func TestStatCardPrecomputesFrames(t *testing.T) {
	t.Parallel()

	card, err := statCard(content.Stat{Title: "Days Together", Value: int64(758)}, i18n.MustParseLocale("en-US"))
	if err != nil {
		t.Fatalf("statCard() error = %v", err)
	}
	if !card.Numeric || card.Initial != "0" || card.Final != "758" {
		t.Fatalf("card = %+v", card)
	}
	if !strings.HasPrefix(card.FramesJSON, `["0","12",`) || !strings.HasSuffix(card.FramesJSON, `"758"]`) {
		t.Fatalf("FramesJSON = %q", card.FramesJSON)
	}
	if card.IntervalMS != "33.333" {
		t.Fatalf("IntervalMS = %q, want %q", card.IntervalMS, "33.333")
	}

	text, err := statCard(content.Stat{Title: "Times I Missed You", Value: "∞"}, i18n.Locale{})
	if err != nil {
		t.Fatalf("statCard() error = %v", err)
	}
	if text.Numeric || text.Final != "∞" || text.FramesJSON != "" {
		t.Fatalf("text card = %+v", text)
	}
}

func TestBirthdayBubblesLayout(t *testing.T) {
	t.Parallel()

	bubbles := birthdayBubbles(28)
	if len(bubbles) != 28 {
		t.Fatalf("bubbles = %d, want 28", len(bubbles))
	}
	got := bubbles[1]
	if got.SizePX != 18 || math.Abs(got.LeftPct-8.4) > 1e-9 || math.Abs(got.Delay-0.18) > 1e-9 || got.Duration != 2.25 {
		t.Fatalf("bubble[1] = %+v", got)
	}
	if last := bubbles[27]; last.LeftPct >= 100 || last.SizePX != 26 {
		t.Fatalf("bubble[27] = %+v", last)
	}
	if birthdayBubbles(0) != nil {
		t.Fatal("birthdayBubbles(0) should be nil")
	}
}
