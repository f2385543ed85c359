package main

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestWriteSchema(t *testing.T) {
	out := filepath.Join(t.TempDir(), "schema", "descriptor.json")
	if err := writeSchema(out, buildSchema()); err != nil {
		t.Fatalf("writeSchema: %v", err)
	}

	data, err := os.ReadFile(out)
	if err != nil {
		t.Fatalf("read schema: %v", err)
	}
	var doc map[string]any
	if err := json.Unmarshal(data, &doc); err != nil {
		t.Fatalf("schema is not JSON: %v", err)
	}
	if doc["title"] != "skii descriptor" {
		t.Errorf("title = %v", doc["title"])
	}

	text := string(data)
	for _, field := range []string{"forward_friction", "sideway_friction", "distribution", "hitbox", "glyph"} {
		if !strings.Contains(text, `"`+field+`"`) {
			t.Errorf("schema missing property %q", field)
		}
	}
	if _, err := os.Stat(out + ".tmp"); !os.IsNotExist(err) {
		t.Error("temp file left behind")
	}
}
