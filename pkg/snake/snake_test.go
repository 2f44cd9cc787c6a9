package snake

import "testing"

func TestParseBool(t *testing.T) {
	for _, in := range []string{"y", "Yes", "true", "1"} {
		if v, err := ParseBool(in); err != nil || !v {
			t.Fatalf("ParseBool(%q) = %v, %v", in, v, err)
		}
	}
	for _, in := range []string{"n", "no", "False", "0"} {
		if v, err := ParseBool(in); err != nil || v {
			t.Fatalf("ParseBool(%q) = %v, %v", in, v, err)
		}
	}
	if _, err := ParseBool("maybe"); err == nil {
		t.Fatalf("expected error")
	}
}

func TestValidateDate(t *testing.T) {
	if err := validateDate(""); err != nil {
		t.Fatalf("empty date should default: %v", err)
	}
	if err := validateDate("2024-03-05"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := validateDate("03/05/2024"); err == nil {
		t.Fatalf("expected error")
	}
}

func TestRequireFirst(t *testing.T) {
	if err := requireFirst(true)(" "); err == nil {
		t.Fatalf("first details line must not be blank")
	}
	if err := requireFirst(false)(""); err != nil {
		t.Fatalf("later blank line ends input: %v", err)
	}
}
