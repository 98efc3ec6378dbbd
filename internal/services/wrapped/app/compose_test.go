package app

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/louisbranch/wrapped/internal/services/wrapped/module"
	"github.com/louisbranch/wrapped/internal/wrapped/content"
)

func TestComposeRejectsDuplicateModulePrefix(t *testing.T) {
	t.Parallel()

	_, err := Compose(ComposeInput{
		Modules: []module.Module{
			stubModule{id: "one", mount: module.Mount{Prefix: "/one/", Handler: noContent()}},
			stubModule{id: "two", mount: module.Mount{Prefix: "/one/", Handler: noContent()}},
		},
	})
	if err == nil {
		t.Fatalf("expected duplicate prefix error")
	}
	if got := err.Error(); !strings.Contains(got, `"two"`) || !strings.Contains(got, `"one"`) {
		t.Fatalf("unexpected error = %q", got)
	}
}

func TestComposeRejectsAliasCollidingWithPrefix(t *testing.T) {
	t.Parallel()

	_, err := Compose(ComposeInput{
		Modules: []module.Module{
			stubModule{id: "one", mount: module.Mount{Prefix: "/one/", Aliases: []string{"/one"}, Handler: noContent()}},
			stubModule{id: "two", mount: module.Mount{Prefix: "/two/", Aliases: []string{"/one"}, Handler: noContent()}},
		},
	})
	if err == nil {
		t.Fatalf("expected duplicate alias error")
	}
}

func TestComposeRejectsInvalidModulePrefixes(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		prefix string
	}{
		{name: "missing leading slash", prefix: "wrapped/x"},
		{name: "missing trailing slash", prefix: "/wrapped/x"},
		{name: "contains surrounding whitespace", prefix: "/wrapped/x "},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			_, err := Compose(ComposeInput{
				Modules: []module.Module{
					stubModule{id: "bad", mount: module.Mount{Prefix: tc.prefix, Handler: noContent()}},
				},
			})
			if err == nil {
				t.Fatalf("expected invalid prefix error")
			}
			if got := err.Error(); !strings.Contains(got, "invalid prefix") || !strings.Contains(got, tc.prefix) || !strings.Contains(got, "bad") {
				t.Fatalf("unexpected error = %q", got)
			}
		})
	}
}

func TestComposeRejectsTrailingSlashAlias(t *testing.T) {
	t.Parallel()

	_, err := Compose(ComposeInput{
		Modules: []module.Module{
			stubModule{id: "bad", mount: module.Mount{Prefix: "/one/", Aliases: []string{"/two/"}, Handler: noContent()}},
		},
	})
	if err == nil || !strings.Contains(err.Error(), "invalid alias") {
		t.Fatalf("Compose() error = %v, want invalid alias", err)
	}
}

func TestComposeRejectsNilModule(t *testing.T) {
	t.Parallel()

	_, err := Compose(ComposeInput{Modules: []module.Module{nil}})
	if err == nil {
		t.Fatalf("expected nil module error")
	}
}

func TestComposeRejectsMissingHandler(t *testing.T) {
	t.Parallel()

	_, err := Compose(ComposeInput{
		Modules: []module.Module{stubModule{id: "empty", mount: module.Mount{Prefix: "/empty/"}}},
	})
	if err == nil || !strings.Contains(err.Error(), "handler is required") {
		t.Fatalf("Compose() error = %v, want handler required", err)
	}
}

func TestComposePropagatesMountError(t *testing.T) {
	t.Parallel()

	boom := errors.New("boom")
	_, err := Compose(ComposeInput{
		Modules: []module.Module{stubModule{id: "broken", err: boom}},
	})
	if !errors.Is(err, boom) {
		t.Fatalf("Compose() error = %v, want %v", err, boom)
	}
}

func TestComposeServesAliasWithoutRedirect(t *testing.T) {
	t.Parallel()

	h, err := Compose(ComposeInput{
		Modules: []module.Module{
			stubModule{id: "wrapped", mount: module.Mount{Prefix: "/wrapped/", Aliases: []string{"/wrapped"}, Handler: noContent()}},
		},
	})
	if err != nil {
		t.Fatalf("Compose() error = %v", err)
	}

	for _, path := range []string{"/wrapped", "/wrapped/stats"} {
		rr := httptest.NewRecorder()
		h.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, path, nil))
		if rr.Code != http.StatusNoContent {
			t.Fatalf("GET %s status = %d, want %d", path, rr.Code, http.StatusNoContent)
		}
	}
}

func TestComposeRejectsCrossOriginMutation(t *testing.T) {
	t.Parallel()

	h, err := Compose(ComposeInput{
		Modules: []module.Module{stubModule{id: "audio", mount: module.Mount{Prefix: "/audio/", Handler: noContent()}}},
	})
	if err != nil {
		t.Fatalf("Compose() error = %v", err)
	}

	tests := []struct {
		name   string
		origin string
		want   int
	}{
		{name: "missing proof", want: http.StatusForbidden},
		{name: "foreign origin", origin: "https://evil.example", want: http.StatusForbidden},
		{name: "same origin", origin: "http://example.com", want: http.StatusNoContent},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			req := httptest.NewRequest(http.MethodPost, "/audio/toggle", nil)
			if tc.origin != "" {
				req.Header.Set("Origin", tc.origin)
			}
			rr := httptest.NewRecorder()
			h.ServeHTTP(rr, req)
			if rr.Code != tc.want {
				t.Fatalf("status = %d, want %d", rr.Code, tc.want)
			}
		})
	}
}

func TestComposeLetsReadsThroughWithoutProof(t *testing.T) {
	t.Parallel()

	h, err := Compose(ComposeInput{
		Modules: []module.Module{stubModule{id: "audio", mount: module.Mount{Prefix: "/audio/", Handler: noContent()}}},
	})
	if err != nil {
		t.Fatalf("Compose() error = %v", err)
	}
	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/audio/main-background.mp3", nil))
	if rr.Code != http.StatusNoContent {
		t.Fatalf("status = %d, want %d", rr.Code, http.StatusNoContent)
	}
}

func TestComposePassesDependencies(t *testing.T) {
	t.Parallel()

	catalog := &content.Catalog{}
	var got module.Dependencies
	if _, err := Compose(ComposeInput{
		Dependencies: module.Dependencies{Catalog: catalog},
		Modules:      []module.Module{captureModule{capture: &got}},
	}); err != nil {
		t.Fatalf("Compose() error = %v", err)
	}
	if got.Catalog != catalog {
		t.Fatalf("module received catalog %p, want %p", got.Catalog, catalog)
	}
}

type stubModule struct {
	id    string
	mount module.Mount
	err   error
}

func (m stubModule) ID() string { return m.id }

func (m stubModule) Mount(module.Dependencies) (module.Mount, error) {
	return m.mount, m.err
}

type captureModule struct {
	capture *module.Dependencies
}

func (captureModule) ID() string { return "capture" }

func (m captureModule) Mount(deps module.Dependencies) (module.Mount, error) {
	*m.capture = deps
	return module.Mount{Prefix: "/capture/", Handler: noContent()}, nil
}

func noContent() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	})
}
