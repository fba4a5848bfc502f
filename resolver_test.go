package fontreg

import (
	"bytes"
	"context"
	"log/slog"
	"regexp"
	"strings"
	"testing"

	"github.com/gogpu/fontreg/asset"
)

func TestResolveFamily_EmptyUnchanged(t *testing.T) {
	r := newTestRegistry(t, &fakeRegistrar{})
	if got := r.ResolveFamily(""); got != "" {
		t.Errorf("ResolveFamily(\"\") = %q, want \"\"", got)
	}
}

func TestResolveFamily_SystemSentinelUnchanged(t *testing.T) {
	r := newTestRegistry(t, &fakeRegistrar{})
	if got := r.ResolveFamily(SystemFamily); got != SystemFamily {
		t.Errorf("ResolveFamily(%q) = %q, want unchanged", SystemFamily, got)
	}
}

func TestResolveFamily_SystemFontsBypassRegistry(t *testing.T) {
	r := newTestRegistry(t, &fakeRegistrar{})

	tests := []string{"Helvetica", "helvetica", "HELVETICA"}
	for _, name := range tests {
		if got := r.ResolveFamily(name); got != name {
			t.Errorf("ResolveFamily(%q) = %q, want unchanged", name, got)
		}
	}
}

func TestResolveFamily_BundledPattern(t *testing.T) {
	asset.SetCacheDir(t.TempDir())
	t.Cleanup(func() { asset.SetCacheDir("") })

	r := New(
		WithEnvironment(&testEnv{
			session: "abc",
			pattern: regexp.MustCompile(`^Bundled/`),
		}),
		WithRegistrar(&fakeRegistrar{}),
	)

	if got := r.ResolveFamily("Bundled/Inter"); got != "Bundled/Inter" {
		t.Errorf("ResolveFamily(\"Bundled/Inter\") = %q, want unchanged", got)
	}
	// Non-matching names still fall back.
	if got := r.ResolveFamily("Inter"); got != SystemFamily {
		t.Errorf("ResolveFamily(\"Inter\") = %q, want %q", got, SystemFamily)
	}
}

func TestResolveFamily_AlreadyNamespacedUnchanged(t *testing.T) {
	r := newTestRegistry(t, &fakeRegistrar{})

	name := "ExpoFont-abc-Foo"
	if got := r.ResolveFamily(name); got != name {
		t.Errorf("ResolveFamily(%q) = %q, want unchanged", name, got)
	}
}

func TestResolveFamily_LoadedFont(t *testing.T) {
	r := newTestRegistry(t, &fakeRegistrar{})

	src := AssetSource{Asset: asset.New("Foo", &gateProvider{data: []byte("font-bytes")})}
	if err := r.Load(context.Background(), "Foo", src); err != nil {
		t.Fatalf("Load() = %v", err)
	}

	if got := r.ResolveFamily("Foo"); got != "ExpoFont-abc-Foo" {
		t.Errorf("ResolveFamily(\"Foo\") = %q, want %q", got, "ExpoFont-abc-Foo")
	}
}

func TestResolveFamily_Diagnostics(t *testing.T) {
	orig := Logger()
	t.Cleanup(func() { SetLogger(orig) })

	var buf bytes.Buffer
	SetLogger(slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug})))

	fake := &fakeRegistrar{}
	r := newTestRegistry(t, fake)

	// Never requested: hint at Load / spelling.
	if got := r.ResolveFamily("Missing"); got != SystemFamily {
		t.Fatalf("ResolveFamily(\"Missing\") = %q, want %q", got, SystemFamily)
	}
	if !strings.Contains(buf.String(), "has not been loaded") {
		t.Errorf("expected never-requested diagnostic, got: %s", buf.String())
	}

	// Still loading: hint at waiting for Load.
	buf.Reset()
	gp := &gateProvider{data: []byte("font-bytes"), release: make(chan struct{})}
	src := AssetSource{Asset: asset.New("Pending", gp)}
	go r.Load(context.Background(), "Pending", src) //nolint:errcheck // settled below
	waitLoading(t, r, "Pending", true)

	if got := r.ResolveFamily("Pending"); got != SystemFamily {
		t.Errorf("ResolveFamily of loading font = %q, want %q", got, SystemFamily)
	}
	if !strings.Contains(buf.String(), "still loading") {
		t.Errorf("expected still-loading diagnostic, got: %s", buf.String())
	}

	close(gp.release)
	waitLoading(t, r, "Pending", false)
}

func TestResolveFamily_NeverMutatesState(t *testing.T) {
	r := newTestRegistry(t, &fakeRegistrar{})

	for i := 0; i < 3; i++ {
		r.ResolveFamily("Foo")
	}
	if r.IsLoaded("Foo") || r.IsLoading("Foo") {
		t.Error("ResolveFamily mutated registry state")
	}
	if got := len(r.LoadedFonts()); got != 0 {
		t.Errorf("LoadedFonts() has %d entries after resolve-only traffic, want 0", got)
	}
}
