package dockerclient

import (
	"archive/tar"
	"io"
	"os"
	"path/filepath"
	"testing"
)

func TestTarDirectory(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	writeFile := func(rel, content string) {
		t.Helper()
		path := filepath.Join(dir, rel)
		if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
			t.Fatalf("mkdir: %v", err)
		}
		if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
			t.Fatalf("write: %v", err)
		}
	}

	writeFile("Dockerfile", "FROM scratch\n")
	writeFile("src/main.py", "print('ok')\n")
	writeFile(".git/config", "[core]\n")

	r, err := tarDirectory(dir)
	if err != nil {
		t.Fatalf("tarDirectory returned error: %v", err)
	}

	entries := map[string]string{}
	tr := tar.NewReader(r)
	for {
		hdr, err := tr.Next()
		if err == io.EOF {
			break
		}
		if err != nil {
			t.Fatalf("read tar: %v", err)
		}
		data, err := io.ReadAll(tr)
		if err != nil {
			t.Fatalf("read entry %s: %v", hdr.Name, err)
		}
		entries[hdr.Name] = string(data)
	}

	if got := entries["Dockerfile"]; got != "FROM scratch\n" {
		t.Fatalf("Dockerfile content = %q", got)
	}
	if got := entries["src/main.py"]; got != "print('ok')\n" {
		t.Fatalf("src/main.py content = %q", got)
	}
	if _, ok := entries["src/"]; !ok {
		t.Fatal("directory entry src/ missing")
	}
	for name := range entries {
		if name == ".git/" || name == ".git/config" {
			t.Fatalf(".git content leaked into build context: %s", name)
		}
	}
}

func TestTarDirectoryMissing(t *testing.T) {
	t.Parallel()

	if _, err := tarDirectory(filepath.Join(t.TempDir(), "nope")); err == nil {
		t.Fatal("expected error for missing directory")
	}
}
