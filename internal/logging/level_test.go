package logging

import "testing"

func TestNameToLevel(t *testing.T) {
	tests := []struct {
		name      string
		want      Level
		wantValid bool
	}{
		{"disabled", LevelDisabled, true},
		{"error", LevelError, true},
		{"warn", LevelWarn, true},
		{"info", LevelInfo, true},
		{"debug", LevelDebug, true},
		{"trace", LevelTrace, true},
		{"bogus", LevelDisabled, false},
		{"", LevelDisabled, false},
	}
	for _, test := range tests {
		got, valid := NameToLevel(test.name)
		if got != test.want || valid != test.wantValid {
			t.Errorf("NameToLevel(%q) = (%v, %v), want (%v, %v)", test.name, got, valid, test.want, test.wantValid)
		}
	}
}

func TestLevelString(t *testing.T) {
	tests := []struct {
		level Level
		want  string
	}{
		{LevelDisabled, "disabled"},
		{LevelError, "error"},
		{LevelWarn, "warn"},
		{LevelInfo, "info"},
		{LevelDebug, "debug"},
		{LevelTrace, "trace"},
		{Level(99), "unknown"},
	}
	for _, test := range tests {
		if got := test.level.String(); got != test.want {
			t.Errorf("Level(%d).String() = %q, want %q", test.level, got, test.want)
		}
	}
}

func TestLevelOrdering(t *testing.T) {
	if !(LevelTrace > LevelDebug && LevelDebug > LevelInfo && LevelInfo > LevelWarn &&
		LevelWarn > LevelError && LevelError > LevelDisabled) {
		t.Error("expected levels to be strictly ordered from Disabled to Trace")
	}
}
