// SPDX-License-Identifier: Unlicense OR MIT

package progressbutton

import (
	"fmt"
	"strings"
)

// Kind identifies one of the four visual states of a button.
type Kind uint8

const (
	Init Kind = iota
	InProgress
	Success
	Fail
)

func (k Kind) String() string {
	switch k {
	case Init:
		return "init"
	case InProgress:
		return "progress"
	case Success:
		return "success"
	case Fail:
		return "fail"
	default:
		panic("invalid Kind")
	}
}

// ParseKind parses the names returned by Kind.String, case-insensitively.
func ParseKind(s string) (Kind, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "init", "idle", "":
		return Init, nil
	case "progress", "inprogress", "in-progress":
		return InProgress, nil
	case "success":
		return Success, nil
	case "fail", "failure":
		return Fail, nil
	}
	return Init, fmt.Errorf("progressbutton: unknown state %q", s)
}

// State is the display state of a button. The zero value is the Init
// state. States are values; every render receives a copy.
type State struct {
	kind    Kind
	percent int
}

// InitState returns the idle state.
func InitState() State { return State{} }

// ProgressState returns the in-progress state with percent clamped to
// [0, 100].
func ProgressState(percent int) State {
	return State{kind: InProgress, percent: clampPercent(percent)}
}

// SuccessState returns the success state.
func SuccessState() State { return State{kind: Success} }

// FailState returns the failure state.
func FailState() State { return State{kind: Fail} }

// Kind reports which of the four states s is.
func (s State) Kind() Kind { return s.kind }

// Percent returns the progress percentage. It is zero unless s is
// InProgress.
func (s State) Percent() int {
	if s.kind != InProgress {
		return 0
	}
	return s.percent
}

func (s State) String() string {
	if s.kind == InProgress {
		return fmt.Sprintf("progress(%d%%)", s.percent)
	}
	return s.kind.String()
}

func clampPercent(p int) int {
	if p < 0 {
		return 0
	}
	if p > 100 {
		return 100
	}
	return p
}
