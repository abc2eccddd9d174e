package app

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	module "github.com/homeoinvent/homeoinvent/internal/services/web/module"
)

func TestComposeRejectsDuplicateModulePrefix(t *testing.T) {
	t.Parallel()

	_, err := Compose(ComposeInput{
		Modules: []module.Module{
			stubModule{id: "one", mount: module.Mount{Prefix: "/one/", Handler: okHandler("one")}},
			stubModule{id: "two", mount: module.Mount{Prefix: "/one/", Handler: okHandler("two")}},
		},
	})
	if err == nil || !strings.Contains(err.Error(), "duplicates prefix") {
		t.Fatalf("expected duplicate prefix error, got %v", err)
	}
}

func TestComposeRejectsInvalidModulePrefixes(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		prefix string
	}{
		{name: "empty", prefix: ""},
		{name: "missing leading slash", prefix: "analytics/"},
		{name: "missing trailing slash", prefix: "/analytics"},
		{name: "contains surrounding whitespace", prefix: "/analytics/ "},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			_, err := Compose(ComposeInput{
				Modules: []module.Module{
					stubModule{id: "bad", mount: module.Mount{Prefix: tc.prefix, Handler: okHandler("bad")}},
				},
			})
			if err == nil {
				t.Fatalf("expected invalid prefix error")
			}
			if got := err.Error(); !strings.Contains(got, "invalid prefix") || !strings.Contains(got, "bad") {
				t.Fatalf("unexpected error = %q", got)
			}
		})
	}
}

func TestComposeRejectsNilModuleAndMountFailures(t *testing.T) {
	t.Parallel()

	if _, err := Compose(ComposeInput{Modules: []module.Module{nil}}); err == nil {
		t.Fatal("expected nil module error")
	}
	if _, err := Compose(ComposeInput{Modules: []module.Module{stubModule{id: "broken", err: errors.New("boom")}}}); err == nil {
		t.Fatal("expected mount error")
	}
	if _, err := Compose(ComposeInput{Modules: []module.Module{stubModule{id: "nohandler", mount: module.Mount{Prefix: "/x/"}}}}); err == nil {
		t.Fatal("expected missing handler error")
	}
}

func TestComposeRoutesPrefixesAndSlashlessAliases(t *testing.T) {
	t.Parallel()

	h, err := Compose(ComposeInput{
		Modules: []module.Module{
			stubModule{id: "root", mount: module.Mount{Prefix: "/", Handler: okHandler("root")}},
			stubModule{id: "analytics", mount: module.Mount{Prefix: "/analytics/", Handler: okHandler("analytics")}},
		},
		Static: okHandler("static"),
	})
	if err != nil {
		t.Fatalf("Compose() error = %v", err)
	}

	tests := []struct {
		path string
		want string
	}{
		{path: "/", want: "root"},
		{path: "/medicines/abc", want: "root"},
		{path: "/analytics", want: "analytics"},
		{path: "/analytics/extra", want: "analytics"},
		{path: "/static/app.css", want: "static"},
	}
	for _, tc := range tests {
		rr := httptest.NewRecorder()
		h.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, tc.path, nil))
		if got := rr.Body.String(); got != tc.want {
			t.Fatalf("%s served by %q, want %q", tc.path, got, tc.want)
		}
	}
}

type stubModule struct {
	id    string
	mount module.Mount
	err   error
}

func (m stubModule) ID() string { return m.id }

func (m stubModule) Mount() (module.Mount, error) { return m.mount, m.err }

func okHandler(name string) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(name))
	})
}
