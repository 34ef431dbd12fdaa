package catalog_test

import (
	"testing"

	"github.com/casecollector/Case-Collector-Backend/internal/catalog"
)

// TestCatalogOrdering tests that cases come out newest release first.
func TestCatalogOrdering(t *testing.T) {
	cases := catalog.Cases()
	if len(cases) == 0 {
		t.Fatal("catalog is empty")
	}

	for i := 1; i < len(cases); i++ {
		if cases[i].ReleaseDate.After(cases[i-1].ReleaseDate) {
			t.Errorf("catalog out of order: %s (%s) after %s (%s)",
				cases[i].Name, cases[i].ReleaseDate, cases[i-1].Name, cases[i-1].ReleaseDate)
		}
	}

	if cases[0].Name != "Fever Case" {
		t.Errorf("expected Fever Case newest, got %s", cases[0].Name)
	}
}

// TestDefIndex tests catalog identity lookups.
func TestDefIndex(t *testing.T) {
	idx, ok := catalog.DefIndex("Fracture Case")
	if !ok || idx != 4698 {
		t.Errorf("DefIndex(Fracture Case) = %d, %v; want 4698, true", idx, ok)
	}

	if _, ok := catalog.DefIndex("No Such Case"); ok {
		t.Error("unknown case resolved to a def_index")
	}

	if len(catalog.Names()) != len(catalog.Cases()) {
		t.Error("Names() and Cases() disagree on length")
	}
}
