package combos

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestSubsets(t *testing.T) {
	tests := []struct {
		items []string
		want  [][]string
	}{
		{nil, nil},
		{[]string{"B"}, [][]string{{"B"}}},
		{[]string{"B", "E"}, [][]string{{"B"}, {"E"}, {"B", "E"}}},
		{[]string{"a", "b", "c"}, [][]string{
			{"a"}, {"b"}, {"c"},
			{"a", "b"}, {"a", "c"}, {"b", "c"},
			{"a", "b", "c"},
		}},
	}
	for _, tt := range tests {
		if diff := cmp.Diff(tt.want, Subsets(tt.items)); diff != "" {
			t.Errorf("Subsets(%v) mismatch (-want +got):\n%s", tt.items, diff)
		}
	}
}

func TestConfigs(t *testing.T) {
	configs := Configs(Default())
	// 63 mutation subsets x 3 crossover subsets, minus 6x2 single pairs.
	if len(configs) != 177 {
		t.Fatalf("expected 177 configs, got %d", len(configs))
	}

	want := []string{
		"-m BE1 -c B,E",
		"-m RA1 -c B,E",
		"-m TP1 -c B,E",
	}
	for i, w := range want {
		if got := configs[i].String(); got != w {
			t.Errorf("config %d: got %q, want %q", i, got, w)
		}
	}
	if got := configs[len(configs)-1].String(); got != "-m BE1,RA1,TP1,TB2,TR1,TO1 -c B,E" {
		t.Errorf("unexpected last config %q", got)
	}
	for _, c := range configs {
		if len(c.Mutations)*len(c.Crossovers) < 2 {
			t.Errorf("single pairing kept: %s", c)
		}
	}
}

func TestWrite(t *testing.T) {
	var buf bytes.Buffer
	ops := Operators{Mutations: []string{"X", "Y"}, Crossovers: []string{"B"}}
	if err := Write(&buf, Configs(ops)); err != nil {
		t.Fatal(err)
	}
	if got := buf.String(); got != "-m X,Y -c B\n" {
		t.Errorf("unexpected output %q", got)
	}
}

func TestLoadOperators(t *testing.T) {
	path := filepath.Join(t.TempDir(), "ops.yaml")
	data := "mutations: [RA1, TO1]\ncrossovers: [E]\n"
	if err := os.WriteFile(path, []byte(data), 0644); err != nil {
		t.Fatal(err)
	}
	ops, err := LoadOperators(path)
	if err != nil {
		t.Fatal(err)
	}
	want := Operators{Mutations: []string{"RA1", "TO1"}, Crossovers: []string{"E"}}
	if diff := cmp.Diff(want, ops); diff != "" {
		t.Errorf("operators mismatch (-want +got):\n%s", diff)
	}

	if _, err := LoadOperators(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Error("expected error for missing file")
	}
	bad := filepath.Join(t.TempDir(), "bad.yaml")
	os.WriteFile(bad, []byte("mutations: {"), 0644)
	if _, err := LoadOperators(bad); err == nil || !strings.Contains(err.Error(), "bad.yaml") {
		t.Errorf("expected parse error naming the file, got %v", err)
	}
}
