package spinball

import "testing"

func TestLauncherStaggersVolley(t *testing.T) {
	l := NewLauncher(80)
	fired := 0
	fire := func() { fired++ }

	if !l.Start(1000, fire) {
		t.Fatal("Start from idle should succeed")
	}
	if fired != 1 || l.Fired() != 1 {
		t.Fatalf("first ball should fire immediately, fired=%d", fired)
	}
	if l.Start(1000, fire) {
		t.Error("Start during a volley should be refused")
	}

	l.Update(1079, 3, fire)
	if fired != 1 {
		t.Errorf("second ball fired early at +79ms")
	}
	l.Update(1080, 3, fire)
	if fired != 2 {
		t.Errorf("second ball should fire at +80ms, fired=%d", fired)
	}
	l.Update(1200, 3, fire)
	if fired != 3 {
		t.Errorf("third ball should fire at +160ms, fired=%d", fired)
	}
	l.Update(5000, 3, fire)
	if fired != 3 {
		t.Errorf("launcher fired past the volley size: %d", fired)
	}
}

func TestLauncherFinished(t *testing.T) {
	l := NewLauncher(80)
	if l.Finished(1, 0) {
		t.Error("idle launcher should not report a finished volley")
	}

	l.Start(0, func() {})
	if l.Finished(2, 0) {
		t.Error("volley is not finished before every ball fired")
	}
	l.Update(80, 2, func() {})
	if l.Finished(2, 1) {
		t.Error("volley is not finished while a ball is in play")
	}
	if !l.Finished(2, 0) {
		t.Fatal("volley should be finished")
	}
	if l.State() != LauncherIdle || l.Fired() != 0 {
		t.Error("launcher should return to idle")
	}
}
