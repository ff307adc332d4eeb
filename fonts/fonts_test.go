package fonts

import (
	"testing"

	"golang.org/x/image/font/gofont/gomono"
)

func TestLoadDefaults(t *testing.T) {
	if err := LoadDefaults(10); err != nil {
		t.Fatalf("LoadDefaults() error = %v", err)
	}
	if !Loaded(Debug) {
		t.Fatal("debug font not loaded")
	}
	face := Debug.Get()
	if face.Metrics().Height <= 0 {
		t.Errorf("font height = %v, want positive", face.Metrics().Height)
	}
}

func TestLoadFontWithSizeRejectsGarbage(t *testing.T) {
	if err := LoadFontWithSize("broken", []byte("not a font"), 10); err == nil {
		t.Error("LoadFontWithSize() accepted invalid TTF data")
	}
	if Loaded("broken") {
		t.Error("invalid font was registered")
	}
}

func TestGetMissingFontPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("Get() on missing font did not panic")
		}
	}()
	FontName("missing").Get()
}

func TestLoadFontWithSizeCustomName(t *testing.T) {
	if err := LoadFontWithSize("mono-large", gomono.TTF, 20); err != nil {
		t.Fatalf("LoadFontWithSize() error = %v", err)
	}
	if !Loaded("mono-large") {
		t.Error("custom font not registered")
	}
}
