package remote

import (
	"os"
	"path/filepath"
	"testing"

	"jeka/pkg/props"
)

func TestClassify(t *testing.T) {
	cases := []struct {
		raw  string
		kind Kind
		url  string
		rev  string
	}{
		{"https://github.com/jeka-dev/demo", Git, "https://github.com/jeka-dev/demo", ""},
		{"https://github.com/jeka-dev/demo#v1", Git, "https://github.com/jeka-dev/demo", "v1"},
		{"https://github.com/jeka-dev/demo#v1#odd", Git, "https://github.com/jeka-dev/demo", "v1#odd"},
		{"ssh://host/repo.git", Git, "ssh://host/repo.git", ""},
		{"git://host/repo", Git, "git://host/repo", ""},
		{"git@github.com:jeka-dev/demo.git#main", Git, "git@github.com:jeka-dev/demo.git", "main"},
		{"user@gitbox.example.org:team/proj", Git, "user@gitbox.example.org:team/proj", ""},
		{"./relative/dir", Local, "", ""},
		{"/absolute/dir", Local, "", ""},
		{"plain-name", Local, "", ""},
		{"dir/with@at:inside", Local, "", ""},
	}

	for _, c := range cases {
		ref := Classify(c.raw)
		if ref.Kind != c.kind {
			t.Errorf("Classify(%q) kind = %v, want %v", c.raw, ref.Kind, c.kind)
			continue
		}
		if c.kind == Local {
			if ref.Path != c.raw {
				t.Errorf("Classify(%q) path = %q, want the raw value", c.raw, ref.Path)
			}
			continue
		}
		if ref.URL != c.url || ref.Rev != c.rev {
			t.Errorf("Classify(%q) = %q @ %q, want %q @ %q", c.raw, ref.URL, ref.Rev, c.url, c.rev)
		}
	}
}

func TestCacheKey(t *testing.T) {
	cases := map[string]string{
		"https://example.com/org/repo":     "example.com_org_repo",
		"https://github.com/jeka-dev/demo": "github.com_jeka-dev_demo",
		"git@github.com:jeka-dev/demo.git": "github.com_jeka-dev_demo.git",
		"ssh://git@host:2222/team/proj":    "host_2222_team_proj",
		"git://host/repo":                  "host_repo",
	}
	for url, want := range cases {
		if got := CacheKey(url); got != want {
			t.Errorf("CacheKey(%q) = %q, want %q", url, got, want)
		}
	}

	// Distinct URLs keep distinct keys.
	if CacheKey("https://host/a/b") == CacheKey("https://host/a_b2") {
		t.Error("expected distinct keys for distinct URLs")
	}
}

func globalStore(t *testing.T, content string) *props.Store {
	t.Helper()
	path := filepath.Join(t.TempDir(), "global.properties")
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}
	s, err := props.Load(path)
	if err != nil {
		t.Fatal(err)
	}
	return s
}

func TestExpandAlias(t *testing.T) {
	global := globalStore(t,
		"jeka.remote.alias.demo=https://github.com/jeka-dev/demo#main\n"+
			"jeka.remote.alias.work=git@corp:team/proj\n")

	got, err := ExpandAlias("@demo", global)
	if err != nil {
		t.Fatalf("ExpandAlias failed: %v", err)
	}
	if got != "https://github.com/jeka-dev/demo#main" {
		t.Errorf("ExpandAlias = %q", got)
	}

	// Resolving an already-resolved reference returns it unchanged.
	again, err := ExpandAlias(got, global)
	if err != nil || again != got {
		t.Errorf("ExpandAlias should be a no-op on non-alias input, got %q (%v)", again, err)
	}
}

func TestExpandAliasUnknown(t *testing.T) {
	global := globalStore(t, "jeka.remote.alias.demo=https://github.com/jeka-dev/demo\n")

	_, err := ExpandAlias("@nope", global)
	aerr, ok := err.(*AliasNotFoundError)
	if !ok {
		t.Fatalf("Expected AliasNotFoundError, got: %v", err)
	}
	if aerr.Name != "nope" {
		t.Errorf("Name = %q", aerr.Name)
	}
	if len(aerr.Known) != 1 || aerr.Known[0] != "jeka.remote.alias.demo" {
		t.Errorf("Known = %v, want the declared alias keys", aerr.Known)
	}
}
