package calendar

import "testing"

func TestDefault(t *testing.T) {
	days := Default().Days()
	want := []int{1, 2, 3, 4}
	if len(days) != len(want) {
		t.Fatalf("expected %v, got %v", want, days)
	}
	for i := range want {
		if days[i] != want[i] {
			t.Fatalf("expected %v, got %v", want, days)
		}
	}
}
