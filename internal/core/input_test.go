package core

import "testing"

func TestInputFrameSetHas(t *testing.T) {
	f := NewInputFrame()

	if f.Has(ActionLeft) {
		t.Error("New frame should have no actions")
	}

	f.Set(ActionLeft)
	f.Set(ActionLaunch)

	if !f.Has(ActionLeft) || !f.Has(ActionLaunch) {
		t.Error("Set actions should be reported by Has")
	}
	if f.Has(ActionRight) {
		t.Error("Unset action should not be reported")
	}
}

func TestInputFrameZeroValue(t *testing.T) {
	// The zero value is usable: Has is false, Set lazily allocates.
	var f InputFrame

	if f.Has(ActionQuit) {
		t.Error("Zero frame should have no actions")
	}

	f.Set(ActionQuit)
	if !f.Has(ActionQuit) {
		t.Error("Set on zero frame should work")
	}
}

func TestInputFrameClear(t *testing.T) {
	f := NewInputFrame()
	f.Set(ActionLeft)
	f.Set(ActionRight)

	f.Clear()

	if f.Has(ActionLeft) || f.Has(ActionRight) {
		t.Error("Clear should remove all actions")
	}
}

func TestInputFrameClone(t *testing.T) {
	f := NewInputFrame()
	f.Set(ActionPause)

	clone := f.Clone()
	clone.Set(ActionRestart)

	if !clone.Has(ActionPause) {
		t.Error("Clone should carry over actions")
	}
	if f.Has(ActionRestart) {
		t.Error("Mutating the clone should not affect the original")
	}
}

func TestActionString(t *testing.T) {
	actions := []Action{
		ActionNone, ActionLeft, ActionRight, ActionLaunch,
		ActionConfirm, ActionBack, ActionRestart, ActionQuit, ActionPause,
	}
	for _, a := range actions {
		if a.String() == "Unknown" || a.String() == "" {
			t.Errorf("Action %d has no name", a)
		}
	}
}
