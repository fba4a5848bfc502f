package fontreg

import (
	"context"
	"errors"
	"testing"

	"github.com/gogpu/fontreg/asset"
)

func TestModuleSource_Registered(t *testing.T) {
	asset.RegisterModule("test/inter.ttf", asset.BytesProvider("font-bytes"))

	r := newTestRegistry(t, &fakeRegistrar{})
	if err := r.Load(context.Background(), "Inter", ModuleSource("test/inter.ttf")); err != nil {
		t.Fatalf("Load via module source = %v, want nil", err)
	}
	if !r.IsLoaded("Inter") {
		t.Error("IsLoaded(\"Inter\") = false after module load")
	}
}

func TestAssetSource_NilAsset(t *testing.T) {
	r := newTestRegistry(t, &fakeRegistrar{})

	err := r.Load(context.Background(), "Foo", AssetSource{})
	if !errors.Is(err, ErrNoSource) {
		t.Fatalf("Load with nil asset = %v, want ErrNoSource", err)
	}
}

func TestAssetSource_LocalFilePassthrough(t *testing.T) {
	fake := &fakeRegistrar{}
	r := newTestRegistry(t, fake)

	a := asset.FromLocalFile("/fonts/inter.ttf")
	if err := r.Load(context.Background(), "Inter", AssetSource{Asset: a}); err != nil {
		t.Fatalf("Load() = %v, want nil", err)
	}

	fake.mu.Lock()
	defer fake.mu.Unlock()
	if len(fake.paths) != 1 || fake.paths[0] != "/fonts/inter.ttf" {
		t.Errorf("registrar received paths %v, want the asset's local path", fake.paths)
	}
}
