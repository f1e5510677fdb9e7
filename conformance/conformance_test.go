package conformance

import "testing"

// TestFixtures runs every YAML fixture under testdata/, grouping
// subtests by source file the way the teacher's conformance_test.go
// grouped by MOO test file.
func TestFixtures(t *testing.T) {
	cases, err := LoadAll()
	if err != nil {
		t.Fatalf("loading fixtures: %v", err)
	}
	if len(cases) == 0 {
		t.Fatal("no fixtures loaded")
	}

	for _, lc := range cases {
		lc := lc
		t.Run(lc.File+"/"+lc.Case.Name, func(t *testing.T) {
			res := Run(lc.Case)
			if !res.Passed {
				t.Errorf("%s: %s", lc.Case.Name, res.Detail)
			}
		})
	}
}
