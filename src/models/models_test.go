package models

import (
	"testing"
	"time"
)

func TestConstants(t *testing.T) {
	if DEFAULT_TOTAL != 100 {
		t.Errorf("DEFAULT_TOTAL = %d, want %d", DEFAULT_TOTAL, 100)
	}

	if DEFAULT_BAR_LENGTH != 90 {
		t.Errorf("DEFAULT_BAR_LENGTH = %d, want %d", DEFAULT_BAR_LENGTH, 90)
	}

	if NEWLINE_WIDTH != 50 {
		t.Errorf("NEWLINE_WIDTH = %d, want %d", NEWLINE_WIDTH, 50)
	}

	if DEFAULT_FILL != '=' {
		t.Errorf("DEFAULT_FILL = %q, want %q", DEFAULT_FILL, '=')
	}
}

func TestDemoDefaults(t *testing.T) {
	if DEFAULT_DEMO_LENGTH <= 0 {
		t.Errorf("DEFAULT_DEMO_LENGTH = %d, should be positive", DEFAULT_DEMO_LENGTH)
	}

	if DEFAULT_DEMO_DELAY != 150*time.Millisecond {
		t.Errorf("DEFAULT_DEMO_DELAY = %v, want %v", DEFAULT_DEMO_DELAY, 150*time.Millisecond)
	}

	if ENV_PREFIX != "RICHBAR_" {
		t.Errorf("ENV_PREFIX = %s, want %s", ENV_PREFIX, "RICHBAR_")
	}
}
