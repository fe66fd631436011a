package stock

import (
	"encoding/json"
	"strings"
	"testing"
)

func TestClassifyCategory(t *testing.T) {
	testCases := []struct {
		label string
		want  Category
	}{
		{"products", Products},
		{"Products", Products},
		{"mobilization", Mobilization},
		{"Mobilization Costs", Mobilization},
		{"MOB", Mobilization},
		{"services", Services},
		{"SERVICES", Services},
		{"Service Fees", Services},
		{"", Products},
		{"hardware", Products},
		{"anything else", Products},
	}
	for _, tc := range testCases {
		if got := ClassifyCategory(tc.label); got != tc.want {
			t.Errorf("ClassifyCategory(%q) = %v, want %v", tc.label, got, tc.want)
		}
	}
}

func TestParseCategory(t *testing.T) {
	for _, cat := range Categories {
		got, err := ParseCategory(cat.String())
		if err != nil || got != cat {
			t.Errorf("ParseCategory(%q) = %v, %v", cat.String(), got, err)
		}
	}
	if got, err := ParseCategory("  Services "); err != nil || got != Services {
		t.Errorf("ParseCategory with padding = %v, %v", got, err)
	}
	if _, err := ParseCategory("mob"); err == nil {
		t.Error("ParseCategory must not accept loose labels")
	}
}

func TestCategoryJSON(t *testing.T) {
	testCases := []struct {
		name string
		in   string
		want Category
	}{
		{"by name", `"mobilization"`, Mobilization},
		{"loose name", `"Service Fees"`, Services},
		{"numeric legacy form", `2`, Services},
		{"out of range number clamps", `9`, Products},
		{"unknown name falls back", `"gadgets"`, Products},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			var got Category
			if err := json.Unmarshal([]byte(tc.in), &got); err != nil {
				t.Fatalf("Unmarshal(%s) failed: %v", tc.in, err)
			}
			if got != tc.want {
				t.Errorf("Unmarshal(%s) = %v, want %v", tc.in, got, tc.want)
			}
		})
	}

	data, err := json.Marshal(Mobilization)
	if err != nil {
		t.Fatal(err)
	}
	if string(data) != `"mobilization"` {
		t.Errorf("Marshal(Mobilization) = %s", data)
	}
}

func TestNewItemID(t *testing.T) {
	prefixes := map[Category]string{Products: "P", Mobilization: "M", Services: "S"}
	for cat, prefix := range prefixes {
		for range 20 {
			id := NewItemID(cat)
			if len(id) != 5 || !strings.HasPrefix(id, prefix) {
				t.Fatalf("NewItemID(%v) = %q, want %s followed by four digits", cat, id, prefix)
			}
			for _, r := range id[1:] {
				if r < '0' || r > '9' {
					t.Fatalf("NewItemID(%v) = %q, want digits after the prefix", cat, id)
				}
			}
		}
	}
}

func TestLowStock(t *testing.T) {
	testCases := []struct {
		qty  float64
		want bool
	}{
		{0, true},
		{4.5, true},
		{4, true},
		{5, false},
		{100, false},
	}
	for _, tc := range testCases {
		it := StockItem{Quantity: tc.qty}
		if got := it.LowStock(); got != tc.want {
			t.Errorf("LowStock() with quantity %v = %v, want %v", tc.qty, got, tc.want)
		}
	}
}

func TestNormalizeName(t *testing.T) {
	if NormalizeName("  Freight Charges  ") != NormalizeName("freight charges") {
		t.Error("normalization must ignore case and padding")
	}
	if NormalizeName("Freight Charges") == NormalizeName("Freight") {
		t.Error("distinct names must stay distinct")
	}
}
