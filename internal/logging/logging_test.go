package logging

import "testing"

func TestSetLevelAdjustsRootLogger(t *testing.T) {
	original := RootLogger.level
	defer func() { RootLogger.level = original }()

	SetLevel(LevelTrace)
	if RootLogger.level != LevelTrace {
		t.Errorf("RootLogger.level = %v, want %v", RootLogger.level, LevelTrace)
	}

	sub := RootLogger.Sublogger("component")
	if sub.level != LevelTrace {
		t.Errorf("Sublogger created after SetLevel inherited %v, want %v", sub.level, LevelTrace)
	}
}
