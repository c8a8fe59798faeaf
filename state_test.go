// SPDX-License-Identifier: Unlicense OR MIT

package progressbutton

import "testing"

func TestProgressStateClamps(t *testing.T) {
	tests := []struct {
		in, want int
	}{
		{-10, 0},
		{0, 0},
		{42, 42},
		{100, 100},
		{250, 100},
	}
	for _, tc := range tests {
		s := ProgressState(tc.in)
		if s.Kind() != InProgress {
			t.Errorf("ProgressState(%d).Kind() = %v", tc.in, s.Kind())
		}
		if got := s.Percent(); got != tc.want {
			t.Errorf("ProgressState(%d).Percent() = %d, want %d", tc.in, got, tc.want)
		}
	}
}

func TestStatePercentOutsideProgress(t *testing.T) {
	for _, s := range []State{InitState(), SuccessState(), FailState(), {}} {
		if p := s.Percent(); p != 0 {
			t.Errorf("%v.Percent() = %d, want 0", s, p)
		}
	}
	if (State{}) != InitState() {
		t.Error("zero State is not the Init state")
	}
}

func TestParseKind(t *testing.T) {
	for _, k := range []Kind{Init, InProgress, Success, Fail} {
		got, err := ParseKind(k.String())
		if err != nil {
			t.Fatal(err)
		}
		if got != k {
			t.Errorf("ParseKind(%q) = %v, want %v", k.String(), got, k)
		}
	}
	if got, err := ParseKind(" Failure "); err != nil || got != Fail {
		t.Errorf("ParseKind(Failure) = %v, %v", got, err)
	}
	if _, err := ParseKind("exploded"); err == nil {
		t.Error("ParseKind accepted an unknown state")
	}
}

func TestStateString(t *testing.T) {
	if got, want := ProgressState(7).String(), "progress(7%)"; got != want {
		t.Errorf("String() = %q, want %q", got, want)
	}
	if got, want := SuccessState().String(), "success"; got != want {
		t.Errorf("String() = %q, want %q", got, want)
	}
}
