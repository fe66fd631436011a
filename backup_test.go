package stock

import (
	"strings"
	"testing"
)

func TestBackupRoundTrip(t *testing.T) {
	s, _ := newTestStore(t)
	if err := s.SetRate(133); err != nil {
		t.Fatal(err)
	}

	text, err := EncodeBackup(s)
	if err != nil {
		t.Fatalf("EncodeBackup() failed: %v", err)
	}

	c, rate, err := DecodeBackup(text)
	if err != nil {
		t.Fatalf("DecodeBackup() failed: %v", err)
	}
	if rate != 133 {
		t.Errorf("rate = %v, want 133", rate)
	}
	if c.Size() != s.Size() {
		t.Fatalf("decoded %d items, want %d", c.Size(), s.Size())
	}
	for _, cat := range Categories {
		want := s.Items(cat)
		got := c.Items(cat)
		for i := range want {
			if got[i] != want[i] {
				t.Errorf("%s[%d] = %+v, want %+v", cat, i, got[i], want[i])
			}
		}
	}
}

func TestDecodeBackup_LegacyLayouts(t *testing.T) {
	testCases := []struct {
		name     string
		text     string
		wantRate float64
	}{
		{
			name:     "invoice tool layout",
			text:     `{"stock":{"products":[{"id":"P0001","name":"Router","quantity":2,"priceKsh":8500}]},"currencyRate":128}`,
			wantRate: 128,
		},
		{
			name:     "items layout",
			text:     `{"items":{"products":[{"id":"P0001","name":"Router","quantity":2,"priceKsh":8500}]},"rate":128}`,
			wantRate: 128,
		},
		{
			name:     "buckets at the top level",
			text:     `{"products":[{"id":"P0001","name":"Router","quantity":2,"priceKsh":8500}]}`,
			wantRate: DefaultRate,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			c, rate, err := DecodeBackup(tc.text)
			if err != nil {
				t.Fatalf("DecodeBackup() failed: %v", err)
			}
			if rate != tc.wantRate {
				t.Errorf("rate = %v, want %v", rate, tc.wantRate)
			}
			items := c.Items(Products)
			if len(items) != 1 || items[0].Name != "Router" {
				t.Fatalf("Items(Products) = %+v, want the one router", items)
			}
			if items[0].Category != Products {
				t.Error("decoded items must be pinned to their bucket")
			}
		})
	}
}

func TestDecodeBackup_Tolerance(t *testing.T) {
	// A malformed bucket is dropped; a blank name is substituted.
	text := `{
		"catalog": {
			"products": [{"name":"","quantity":1}],
			"services": "not a list"
		}
	}`
	c, rate, err := DecodeBackup(text)
	if err != nil {
		t.Fatalf("DecodeBackup() failed: %v", err)
	}
	if rate != DefaultRate {
		t.Errorf("rate = %v, want the default", rate)
	}
	if items := c.Items(Products); len(items) != 1 || items[0].Name != "Unknown Item" {
		t.Errorf("Items(Products) = %+v, want one Unknown Item", items)
	}
	if len(c.Items(Services)) != 0 {
		t.Error("the malformed services bucket should be dropped")
	}
}

func TestDecodeBackup_Errors(t *testing.T) {
	testCases := []struct {
		name string
		text string
	}{
		{"not json", "{oops"},
		{"no buckets", `{"rate":130}`},
		{"wrong shape", `[1,2,3]`},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			if _, _, err := DecodeBackup(tc.text); err == nil {
				t.Error("expected an error")
			}
		})
	}
}

func TestEncodeBackup_CarriesDate(t *testing.T) {
	s, _ := newTestStore(t)
	text, err := EncodeBackup(s)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(text, `"exported"`) {
		t.Error("backup should record the export date")
	}
}
