package spdx_test

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/git-pkgs/spdx"
)

func TestValidate(t *testing.T) {
	tests := []struct {
		license any
		want    bool
	}{
		{"MIT", true},
		{"GPL-2.0+", true},
		{"(MIT OR Apache-2.0)", true},
		{"(BSD-2-Clause AND ISC)", true},
		{"NONE", true},
		{"NOASSERTION", true},
		{"LicenseRef-1", true},

		{"", false},
		{"Not-A-License", false},
		{"(MIT OR AND Apache-2.0)", false},
		{"((MIT))", false},
		{"(NONE)", false},
		{"LicenseRef-", false},
		{"MIT@", false},

		{[]string{}, false},
		{[]string{"MIT"}, true},
		{[]string{"MIT", "Apache-2.0"}, true},
		{[]any{"MIT", "Apache-2.0"}, true},
	}

	for _, tt := range tests {
		got, err := spdx.Validate(tt.license)
		if err != nil {
			t.Errorf("Validate(%v): unexpected error: %v", tt.license, err)
			continue
		}
		if got != tt.want {
			t.Errorf("Validate(%v): expected %v, got %v", tt.license, tt.want, got)
		}
	}
}

func TestValidateBadShape(t *testing.T) {
	for _, license := range []any{42, true, nil, []any{"MIT", 42}, []int{1, 2}} {
		if _, err := spdx.Validate(license); !errors.Is(err, spdx.ErrInvalidInput) {
			t.Errorf("Validate(%v): expected ErrInvalidInput, got %v", license, err)
		}
	}
}

func TestListEqualsJoinedExpression(t *testing.T) {
	list, err := spdx.Validate([]string{"MIT", "Apache-2.0"})
	if err != nil {
		t.Fatalf("Validate(list) failed: %v", err)
	}
	joined, err := spdx.Validate("(MIT or Apache-2.0)")
	if err != nil {
		t.Fatalf("Validate(joined) failed: %v", err)
	}
	if list != joined {
		t.Errorf("expected list and joined expression to agree, got %v vs %v", list, joined)
	}
}

func TestLookup(t *testing.T) {
	l, ok := spdx.Lookup("MIT")
	if !ok {
		t.Fatal("expected MIT to be in the embedded catalog")
	}
	if l.Name != "MIT License" {
		t.Errorf("expected name 'MIT License', got %q", l.Name)
	}
	if !l.OSIApproved {
		t.Error("expected MIT to be OSI approved")
	}
	if l.TextURL() != "https://spdx.org/licenses/MIT#licenseText" {
		t.Errorf("unexpected text URL: %q", l.TextURL())
	}

	if _, ok := spdx.Lookup("mit"); ok {
		t.Error("expected lookups to be case-sensitive")
	}
}

func TestFindIDByName(t *testing.T) {
	id, ok := spdx.FindIDByName("Apache License 2.0")
	if !ok || id != "Apache-2.0" {
		t.Errorf("expected (Apache-2.0, true), got (%q, %v)", id, ok)
	}
}

func TestEveryCatalogIdentifierValidates(t *testing.T) {
	for _, id := range spdx.DefaultCatalog().IDs() {
		if !spdx.ValidExpression(id) {
			t.Errorf("expected catalog identifier %q to validate", id)
		}
	}
}

func TestLoadCatalogFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "licenses.json")
	data := `{"Fake-1.0": ["Fake License 1.0", false]}`
	if err := os.WriteFile(path, []byte(data), 0o644); err != nil {
		t.Fatal(err)
	}

	catalog, err := spdx.LoadCatalogFile(path)
	if err != nil {
		t.Fatalf("LoadCatalogFile failed: %v", err)
	}

	v := spdx.NewValidator(catalog)
	if !v.ValidateExpression("Fake-1.0") {
		t.Error("expected Fake-1.0 to validate against the loaded catalog")
	}
	if v.ValidateExpression("MIT") {
		t.Error("expected MIT to be unknown to the loaded catalog")
	}
}
