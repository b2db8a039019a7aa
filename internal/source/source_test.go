package source

import "testing"

func TestFindFirstEnclosingLine(t *testing.T) {
	f := NewFile("test.qasm", []byte("OPENQASM 2.0;\nqreg q[2];\nh q[0];\n"))

	line := f.FindFirstEnclosingLine(NewSpan(14, 15))
	if line.Number() != 2 {
		t.Errorf("expected line 2, got %d", line.Number())
	}

	if line.String() != "qreg q[2];" {
		t.Errorf("expected %q, got %q", "qreg q[2];", line.String())
	}

	if col := line.Column(14); col != 1 {
		t.Errorf("expected column 1, got %d", col)
	}
}

func TestSyntaxErrorFormatting(t *testing.T) {
	f := NewFile("bad.qasm", []byte("qreg q[0];\n"))
	err := &SyntaxError{File: f, Span: NewSpan(6, 7), Message: "zero-sized register"}

	want := "bad.qasm:1:7: zero-sized register"
	if err.Error() != want {
		t.Errorf("expected %q, got %q", want, err.Error())
	}
}

func TestFindFirstEnclosingLineAtEof(t *testing.T) {
	f := NewFile("eof.qasm", []byte("qreg q[2];"))
	line := f.FindFirstEnclosingLine(NewSpan(f.Len(), f.Len()+1))

	if line.Number() != 1 {
		t.Errorf("expected line 1 for eof span, got %d", line.Number())
	}
}
