package check

import "testing"

func TestSelfTest(t *testing.T) {
	rec, err := SelfTest()
	if err != nil {
		t.Fatalf("SelfTest: %v", err)
	}
	if rec.ID != "reference" || rec.Length != len(Reference) {
		t.Errorf("record = %+v", rec)
	}
}
