package core

import (
	"io"
	"strings"
	"testing"
)

func catalogFixture() io.Reader {
	return strings.NewReader(`{
		"MIT": ["MIT License", true],
		"Apache-2.0": ["Apache License 2.0", true],
		"WTFPL": ["Do What The F*ck You Want To Public License", false]
	}`)
}

func TestNewCatalog(t *testing.T) {
	c, err := NewCatalog(catalogFixture())
	if err != nil {
		t.Fatalf("NewCatalog failed: %v", err)
	}

	if c.Len() != 3 {
		t.Errorf("expected 3 licenses, got %d", c.Len())
	}

	if !c.Contains("MIT") {
		t.Error("expected catalog to contain MIT")
	}
	if c.Contains("mit") {
		t.Error("expected lookups to be case-sensitive")
	}
	if c.Contains("BSD-3-Clause") {
		t.Error("expected catalog not to contain BSD-3-Clause")
	}

	l, ok := c.Get("Apache-2.0")
	if !ok {
		t.Fatal("expected to get Apache-2.0")
	}
	if l.Name != "Apache License 2.0" {
		t.Errorf("expected name 'Apache License 2.0', got %q", l.Name)
	}
	if !l.OSIApproved {
		t.Error("expected Apache-2.0 to be OSI approved")
	}
	if got := l.TextURL(); got != "https://spdx.org/licenses/Apache-2.0#licenseText" {
		t.Errorf("unexpected text URL: %q", got)
	}

	l, ok = c.Get("WTFPL")
	if !ok {
		t.Fatal("expected to get WTFPL")
	}
	if l.OSIApproved {
		t.Error("expected WTFPL not to be OSI approved")
	}

	if _, ok := c.Get("Unknown"); ok {
		t.Error("expected Get on an unknown identifier to fail")
	}
}

func TestFindIDByName(t *testing.T) {
	c, err := NewCatalog(catalogFixture())
	if err != nil {
		t.Fatalf("NewCatalog failed: %v", err)
	}

	id, ok := c.FindIDByName("MIT License")
	if !ok || id != "MIT" {
		t.Errorf("expected (MIT, true), got (%q, %v)", id, ok)
	}

	if _, ok := c.FindIDByName("mit license"); ok {
		t.Error("expected name matching to be exact")
	}
	if _, ok := c.FindIDByName("No Such License"); ok {
		t.Error("expected unknown name to fail")
	}
}

func TestCatalogIDsSorted(t *testing.T) {
	c, err := NewCatalog(catalogFixture())
	if err != nil {
		t.Fatalf("NewCatalog failed: %v", err)
	}

	ids := c.IDs()
	want := []string{"Apache-2.0", "MIT", "WTFPL"}
	if len(ids) != len(want) {
		t.Fatalf("expected %d ids, got %d", len(want), len(ids))
	}
	for i := range want {
		if ids[i] != want[i] {
			t.Errorf("expected id %q at position %d, got %q", want[i], i, ids[i])
		}
	}
}

func TestNewCatalogBadData(t *testing.T) {
	tests := []struct {
		name string
		data string
	}{
		{"not json", "not json"},
		{"record not array", `{"MIT": {"name": "MIT License"}}`},
		{"record too short", `{"MIT": ["MIT License"]}`},
		{"record too long", `{"MIT": ["MIT License", true, "extra"]}`},
		{"name not string", `{"MIT": [1, true]}`},
		{"flag not bool", `{"MIT": ["MIT License", "yes"]}`},
	}

	for _, tt := range tests {
		if _, err := NewCatalog(strings.NewReader(tt.data)); err == nil {
			t.Errorf("%s: expected an error", tt.name)
		}
	}
}

func TestDefaultCatalog(t *testing.T) {
	c := DefaultCatalog()
	if c.Len() == 0 {
		t.Fatal("expected embedded catalog to be non-empty")
	}

	// Same instance on every call.
	if DefaultCatalog() != c {
		t.Error("expected DefaultCatalog to return the same catalog")
	}

	for _, id := range []string{"MIT", "Apache-2.0", "GPL-2.0+", "ISC", "BSD-3-Clause"} {
		if !c.Contains(id) {
			t.Errorf("expected embedded catalog to contain %q", id)
		}
	}

	l, ok := c.Get("MIT")
	if !ok || l.Name != "MIT License" || !l.OSIApproved {
		t.Errorf("unexpected MIT record: %+v (ok=%v)", l, ok)
	}
}
