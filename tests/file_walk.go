// Package tests holds source tree checks that span every package.
package tests

import (
	"os"
	"path"
	"path/filepath"
	"strings"
	"testing"
)

type walkFunc func(string) error

// Walk walks through every non-test code file in project. Directories the
// go tool ignores, i.e. those starting with "_" or ".", are skipped.
func Walk(t *testing.T, baseDir string, excludes []string, wf walkFunc) {
	baseDir = path.Join("../", baseDir)

	err := filepath.Walk(baseDir, func(path string, f os.FileInfo, err error) error {
		if err != nil {
			return err
		}

		if f.IsDir() {
			name := f.Name()
			if path != baseDir && (strings.HasPrefix(name, "_") || strings.HasPrefix(name, ".")) {
				return filepath.SkipDir
			}
			return nil
		}

		if filepath.Ext(path) != ".go" || strings.HasSuffix(path, "_test.go") {
			return nil
		}

		p := strings.TrimPrefix(path, "../")
		for _, exclude := range excludes {
			if strings.HasPrefix(p, exclude) {
				return nil
			}
		}

		return wf(path)
	})
	if err != nil {
		t.Fatal(err)
	}
}

// ReadFile reads code file from disk.
func ReadFile(path string) []string {
	codeBytes, err := os.ReadFile(path)
	if err != nil {
		panic(err)
	}

	return strings.Split(string(codeBytes), "\n")
}
