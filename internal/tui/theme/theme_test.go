package theme

import "testing"

func TestByNameFallsBack(t *testing.T) {
	if got := ByName("classic").Name; got != "classic" {
		t.Errorf("ByName(classic) = %q", got)
	}
	if got := ByName("no-such-theme").Name; got != CatppuccinMocha.Name {
		t.Errorf("unknown theme -> %q, want %q", got, CatppuccinMocha.Name)
	}
}

func TestSetActive(t *testing.T) {
	defer SetActive(CatppuccinMocha.Name)

	SetActive("flexoki-dark")
	if Active.Name != "flexoki-dark" {
		t.Errorf("Active = %q", Active.Name)
	}
}

func TestNamesMatchAll(t *testing.T) {
	names := Names()
	if len(names) != len(All) {
		t.Fatalf("len = %d, want %d", len(names), len(All))
	}
	seen := map[string]bool{}
	for _, n := range names {
		if seen[n] {
			t.Errorf("duplicate theme %q", n)
		}
		seen[n] = true
	}
}

func TestFormThemeBuilds(t *testing.T) {
	if Form() == nil {
		t.Fatal("nil form theme")
	}
}
