package version

import "testing"

func TestIsCompatibleWith(t *testing.T) {
	cases := []struct {
		name         string
		local, remote Triple
		wantKind     IncompatibilityKind
		wantErr      bool
	}{
		{"identical", New(1, 2, 3), New(1, 2, 3), 0, false},
		{"patch differs, still compatible", New(1, 2, 3), New(1, 2, 9), 0, false},
		{"local minor behind remote", New(1, 1, 0), New(1, 2, 0), 0, false},
		{"local minor ahead of remote", New(1, 3, 0), New(1, 2, 0), Minor, true},
		{"major mismatch", New(2, 0, 0), New(1, 0, 0), Major, true},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			err := c.local.IsCompatibleWith(c.remote)
			if c.wantErr && err == nil {
				t.Fatalf("expected incompatibility, got nil")
			}
			if !c.wantErr && err != nil {
				t.Fatalf("expected compatible, got %v", err)
			}
			if c.wantErr {
				incompat, ok := err.(*Incompatibility)
				if !ok {
					t.Fatalf("expected *Incompatibility, got %T", err)
				}
				if incompat.Kind != c.wantKind {
					t.Errorf("kind = %v, want %v", incompat.Kind, c.wantKind)
				}
				if incompat.Local != c.local || incompat.Remote != c.remote {
					t.Errorf("incompatibility did not carry full triples: %+v", incompat)
				}
			}
		})
	}
}

func TestString(t *testing.T) {
	if got := New(1, 2, 3).String(); got != "1.2.3" {
		t.Errorf("String() = %q, want %q", got, "1.2.3")
	}
}
