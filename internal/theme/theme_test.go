package theme

import "testing"

func TestByName(t *testing.T) {
	if got := ByName("tokyo-night"); got.Name != "tokyo-night" {
		t.Fatalf("ByName(tokyo-night) = %q", got.Name)
	}
	if got := ByName("does-not-exist"); got.Name != Terminal.Name {
		t.Fatalf("unknown theme fell back to %q, want %q", got.Name, Terminal.Name)
	}
}

func TestSetActive(t *testing.T) {
	orig := Active
	defer func() { Active = orig }()

	SetActive("flexoki-dark")
	if Active.Name != "flexoki-dark" {
		t.Fatalf("Active = %q after SetActive(flexoki-dark)", Active.Name)
	}
}

func TestNames(t *testing.T) {
	names := Names()
	if len(names) != len(All) {
		t.Fatalf("Names() len = %d, want %d", len(names), len(All))
	}
	if names[0] != "terminal" {
		t.Fatalf("first theme = %q, want terminal", names[0])
	}
}
