package readability

import (
	"strings"
	"testing"
)

func TestAll_SortedAndUnique(t *testing.T) {
	defs := All()
	if len(defs) != 8 {
		t.Fatalf("len = %d, want 8", len(defs))
	}
	seen := map[string]bool{}
	for i, def := range defs {
		if i > 0 && def.ID < defs[i-1].ID {
			t.Fatalf("defs not sorted: %s after %s", def.ID, defs[i-1].ID)
		}
		if seen[def.Name] {
			t.Fatalf("duplicate name %q", def.Name)
		}
		seen[def.Name] = true
		if def.Compute == nil {
			t.Fatalf("%s has no Compute", def.ID)
		}
	}
}

func TestLookup_ByIDAndName(t *testing.T) {
	def, ok := Lookup("rdb004")
	if !ok || def.Name != "smog" {
		t.Fatalf("Lookup(rdb004) = %+v, %v", def, ok)
	}
	def, ok = Lookup(" Dale-Chall ")
	if !ok || def.ID != "RDB003" {
		t.Fatalf("Lookup(Dale-Chall) = %+v, %v", def, ok)
	}
	if _, ok := Lookup(""); ok {
		t.Fatal("empty query should not match")
	}
}

func TestResolve_Defaults(t *testing.T) {
	defs, err := Resolve(nil)
	if err != nil {
		t.Fatalf("Resolve defaults: %v", err)
	}
	if len(defs) != len(All()) {
		t.Fatalf("len = %d, want %d", len(defs), len(All()))
	}
	if defs[0].ID != "RDB001" {
		t.Fatalf("first metric = %q, want RDB001", defs[0].ID)
	}
}

func TestResolve_DeduplicatesAndKeepsOrder(t *testing.T) {
	defs, err := Resolve([]string{"smog", "RDB001", "RDB004", " "})
	if err != nil {
		t.Fatalf("Resolve: %v", err)
	}
	if len(defs) != 2 {
		t.Fatalf("len = %d, want 2", len(defs))
	}
	if defs[0].Name != "smog" || defs[1].Name != "flesch-kincaid-grade" {
		t.Fatalf("unexpected order: %s, %s", defs[0].Name, defs[1].Name)
	}
}

func TestResolve_UnknownMetricHasActionableError(t *testing.T) {
	_, err := Resolve([]string{"gunning-fog"})
	if err == nil {
		t.Fatal("expected unknown metric error")
	}
	msg := err.Error()
	if !strings.Contains(msg, "unknown metric") {
		t.Fatalf("error = %q, expected unknown metric message", msg)
	}
	if !strings.Contains(msg, "available:") || !strings.Contains(msg, "linsear-write") {
		t.Fatalf("error = %q, expected available list", msg)
	}
}

func TestResolve_OnlyBlanks(t *testing.T) {
	if _, err := Resolve([]string{" ", ""}); err == nil {
		t.Fatal("expected error when nothing is selected")
	}
}

func TestSplitList(t *testing.T) {
	got := SplitList(" smog, forcast , ,dale-chall ")
	want := []string{"smog", "forcast", "dale-chall"}
	if len(got) != len(want) {
		t.Fatalf("len = %d, want %d (%v)", len(got), len(want), got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("item %d = %q, want %q", i, got[i], want[i])
		}
	}
	if SplitList("  ") != nil {
		t.Fatal("blank input should return nil")
	}
}

func TestFormatValue(t *testing.T) {
	def := Definition{Name: "x", Precision: 2}
	if got := FormatValue(def, AvailableValue(7.6449)); got != "7.64" {
		t.Errorf("got %q, want 7.64", got)
	}
	if got := FormatValue(def, UnavailableValue()); got != "-" {
		t.Errorf("got %q, want -", got)
	}
	def.Precision = -1
	if got := FormatValue(def, AvailableValue(1.5)); got != "1.5" {
		t.Errorf("got %q, want 1.5", got)
	}
}

func TestJSONValue(t *testing.T) {
	def := Definition{Name: "x", Precision: 1}
	if got := JSONValue(def, AvailableValue(10.66)); got != 10.7 {
		t.Errorf("got %v, want 10.7", got)
	}
	if got := JSONValue(def, UnavailableValue()); got != nil {
		t.Errorf("got %v, want nil", got)
	}
}

func TestParseWindow(t *testing.T) {
	w, err := ParseWindow("")
	if err != nil || w != WindowTokens {
		t.Fatalf("ParseWindow(empty) = %q, %v", w, err)
	}
	w, err = ParseWindow("Words")
	if err != nil || w != WindowWords {
		t.Fatalf("ParseWindow(Words) = %q, %v", w, err)
	}
	if _, err := ParseWindow("sentences"); err == nil {
		t.Fatal("expected error for unknown window")
	}
}

func TestOptions_Validate(t *testing.T) {
	if err := DefaultOptions().Validate(); err != nil {
		t.Fatalf("defaults invalid: %v", err)
	}
	bad := DefaultOptions()
	bad.ForcastWindow = "sentences"
	if err := bad.Validate(); err == nil || !strings.Contains(err.Error(), "forcast") {
		t.Fatalf("error = %v, want forcast window error", err)
	}
	bad = DefaultOptions()
	bad.SMOGMinSentences = 0
	if err := bad.Validate(); err == nil {
		t.Fatal("expected error for zero smog min-sentences")
	}
}

func TestNewAnalysis_FillsDefaults(t *testing.T) {
	a := NewAnalysis(Document{}, nil, Options{ForcastSample: 10})
	want := DefaultOptions()
	want.ForcastSample = 10
	if a.opts != want {
		t.Fatalf("opts = %+v, want %+v", a.opts, want)
	}
}

func TestDescriptions_ConfigurableSamplesSayDefault(t *testing.T) {
	for _, name := range []string{"smog", "forcast", "linsear-write"} {
		def, ok := Lookup(name)
		if !ok {
			t.Fatalf("Lookup(%s) failed", name)
		}
		if !strings.Contains(def.Description, "by default") {
			t.Errorf("%s description %q should describe its sample size as a default", name, def.Description)
		}
	}
}
