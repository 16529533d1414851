package catalog

import "testing"

func TestApplyDefaults_FillsUnsetLists(t *testing.T) {
	p := Product{Slug: "pencil-x1", Title: "Pencil X1", BasePrice: 10}
	p.ApplyDefaults()

	if len(p.Colors) != len(DefaultColors) {
		t.Fatalf("expected default colors, got %v", p.Colors)
	}
	if len(p.Textures) != len(DefaultTextures) {
		t.Fatalf("expected default textures, got %v", p.Textures)
	}
	if len(p.Features) != len(DefaultFeatures) {
		t.Fatalf("expected default features, got %v", p.Features)
	}
	if p.Images == nil {
		t.Fatal("expected images to be an empty list, not nil")
	}
}

func TestApplyDefaults_KeepsExplicitValues(t *testing.T) {
	p := Product{
		Slug:      "pencil-x1",
		Colors:    []string{"Black"},
		Textures:  []string{},
		Features:  []string{"grip"},
		Images:    []string{"a.png"},
		BasePrice: 10,
	}
	p.ApplyDefaults()

	if len(p.Colors) != 1 || p.Colors[0] != "Black" {
		t.Fatalf("explicit colors must survive, got %v", p.Colors)
	}
	if len(p.Textures) != 0 {
		t.Fatalf("explicit empty textures must survive, got %v", p.Textures)
	}
	if len(p.Features) != 1 {
		t.Fatalf("explicit features must survive, got %v", p.Features)
	}
	if len(p.Images) != 1 {
		t.Fatalf("explicit images must survive, got %v", p.Images)
	}
}

func TestApplyDefaults_CopiesDefaultSlices(t *testing.T) {
	var a, b Product
	a.ApplyDefaults()
	b.ApplyDefaults()

	a.Colors[0] = "mutated"
	if b.Colors[0] == "mutated" || DefaultColors[0] == "mutated" {
		t.Fatal("defaults must be copied per product, not shared")
	}
}
