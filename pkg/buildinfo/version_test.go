package buildinfo

import (
	"strings"
	"testing"
)

func TestString(t *testing.T) {
	old := Version
	defer func() { Version = old }()
	Version = "v9.9.9"

	if s := String(); !strings.Contains(s, "version: v9.9.9") || !strings.Contains(s, "go: go") {
		t.Errorf("String() = %q", s)
	}
	if g := Generator(); g != "starchart v9.9.9" {
		t.Errorf("Generator() = %q", g)
	}
	if tpl := Template(); !strings.HasPrefix(tpl, "{{.Name}} version v9.9.9") {
		t.Errorf("Template() = %q", tpl)
	}
}
