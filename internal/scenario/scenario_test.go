package scenario

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	lerrors "github.com/lumen-ui/lumen/internal/errors"
)

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoadYAML(t *testing.T) {
	path := writeFile(t, "toggle.yaml", `
tag: input
mount:
  type: checkbox
  checked: true
update:
  checked: false
remove:
  - checked
`)

	sc, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if sc.Tag != "input" {
		t.Errorf("Tag = %q, want input", sc.Tag)
	}
	if sc.Mount["type"] != "checkbox" || sc.Mount["checked"] != true {
		t.Errorf("Mount = %v, want type=checkbox checked=true", sc.Mount)
	}
	if sc.Update["checked"] != false {
		t.Errorf("Update = %v, want checked=false", sc.Update)
	}
	if len(sc.Remove) != 1 || sc.Remove[0] != "checked" {
		t.Errorf("Remove = %v, want [checked]", sc.Remove)
	}
}

func TestLoadJSON(t *testing.T) {
	path := writeFile(t, "link.json", `{
  "tag": "a",
  "mount": {"href": "/home", "title": "Home"}
}`)

	sc, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if sc.Tag != "a" || sc.Mount["href"] != "/home" {
		t.Errorf("scenario = %+v, want a with href=/home", sc)
	}
}

func TestLoadErrors(t *testing.T) {
	tests := []struct {
		name     string
		path     func(t *testing.T) string
		wantCode string
	}{
		{
			name:     "missing file",
			path:     func(t *testing.T) string { return filepath.Join(t.TempDir(), "nope.yaml") },
			wantCode: "E101",
		},
		{
			name:     "unsupported extension",
			path:     func(t *testing.T) string { return writeFile(t, "case.txt", "tag: div") },
			wantCode: "E102",
		},
		{
			name:     "malformed yaml",
			path:     func(t *testing.T) string { return writeFile(t, "bad.yaml", "tag: [unclosed") },
			wantCode: "E103",
		},
		{
			name:     "malformed json",
			path:     func(t *testing.T) string { return writeFile(t, "bad.json", `{"tag":`) },
			wantCode: "E103",
		},
		{
			name:     "missing tag",
			path:     func(t *testing.T) string { return writeFile(t, "notag.yaml", "mount:\n  id: x") },
			wantCode: "E104",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Load(tt.path(t))
			if err == nil {
				t.Fatal("Load should fail")
			}
			var le *lerrors.LumenError
			if !errors.As(err, &le) {
				t.Fatalf("error type = %T, want *LumenError", err)
			}
			if le.Code != tt.wantCode {
				t.Errorf("Code = %q, want %q", le.Code, tt.wantCode)
			}
		})
	}
}
