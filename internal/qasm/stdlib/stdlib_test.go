package stdlib

import (
	"testing"

	"github.com/openqasm/qsim/internal/qasm/ast"
)

func containsGate(lib *ast.Library, name string) bool {
	for _, stmt := range lib.Gates {
		switch decl := stmt.(type) {
		case *ast.GateDecl:
			if decl.Name == name {
				return true
			}
		case *ast.OpaqueDecl:
			if decl.Name == name {
				return true
			}
		}
	}

	return false
}

func TestLibraryParses(t *testing.T) {
	lib, err := Library()
	if err != nil {
		t.Fatalf("Library(): unexpected error: %v", err)
	}

	if len(lib.Gates) == 0 {
		t.Fatal("Library(): no gates parsed")
	}
}

func TestLibraryDefinesCoreGates(t *testing.T) {
	lib, err := Library()
	if err != nil {
		t.Fatalf("Library(): unexpected error: %v", err)
	}

	for _, name := range []string{
		"u3", "u2", "u1", "cx", "id",
		"h", "x", "y", "z", "s", "sdg", "t", "tdg",
		"rx", "ry", "rz",
		"cz", "cy", "ch", "ccx", "crz", "cu1", "cu3", "cswap", "swap",
	} {
		if !containsGate(lib, name) {
			t.Errorf("stdlib is missing gate %q", name)
		}
	}
}
