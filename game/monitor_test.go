package game

import "testing"

func TestFrameMonitor(t *testing.T) {
	m := newFrameMonitor(60)

	var warned []int
	for tick := 1; tick <= 800; tick++ {
		if m.observe(20, 3, 4) {
			warned = append(warned, tick)
		}
	}

	// Quiet for the first three seconds, then at most once every ten
	want := []int{180, 780}
	if len(warned) != len(want) {
		t.Fatalf("warned on ticks %v, want %v", warned, want)
	}
	for i := range want {
		if warned[i] != want[i] {
			t.Errorf("warning %d on tick %d, want %d", i, warned[i], want[i])
		}
	}
}

func TestFrameMonitorFullRate(t *testing.T) {
	m := newFrameMonitor(60)
	for tick := 1; tick <= 1000; tick++ {
		if m.observe(60, 0, 0) {
			t.Fatalf("warned at full rate on tick %d", tick)
		}
	}
	if m.observe(55, 0, 0) {
		t.Error("warned at exactly the threshold")
	}
	if !m.observe(54.9, 0, 0) {
		t.Error("no warning below the threshold")
	}
}
