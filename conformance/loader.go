package conformance

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// FixtureDir is the directory of YAML fixture files, relative to this
// package, mirroring the teacher's conformance/loader.go TestPath
// constant (there pointed at an external cow_py checkout; here the
// fixtures live in-module since dices has no external test corpus to
// borrow).
const FixtureDir = "testdata"

// LoadedCase pairs a TestCase with the fixture file it came from, for
// grouping test output by file.
type LoadedCase struct {
	File string
	Case TestCase
}

// LoadAll walks FixtureDir and parses every *.yaml file into its
// TestCases, mirroring the teacher's directory-walk + per-file YAML
// unmarshal.
func LoadAll() ([]LoadedCase, error) {
	entries, err := os.ReadDir(FixtureDir)
	if err != nil {
		return nil, fmt.Errorf("reading fixture dir %s: %w", FixtureDir, err)
	}

	var out []LoadedCase
	for _, entry := range entries {
		if entry.IsDir() || filepath.Ext(entry.Name()) != ".yaml" {
			continue
		}
		path := filepath.Join(FixtureDir, entry.Name())
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("reading %s: %w", path, err)
		}
		var suite TestSuite
		if err := yaml.Unmarshal(data, &suite); err != nil {
			return nil, fmt.Errorf("parsing %s: %w", path, err)
		}
		for _, c := range suite.Cases {
			out = append(out, LoadedCase{File: entry.Name(), Case: c})
		}
	}
	return out, nil
}
