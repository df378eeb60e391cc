package version

import (
	"strings"
	"testing"
)

func TestInfo(t *testing.T) {
	old := Version
	defer func() { Version = old }()
	Version = "v1.2.3"

	if got := Short(); got != "v1.2.3" {
		t.Errorf("Short() = %v, want v1.2.3", got)
	}
	info := Info()
	for _, want := range []string{"Version: v1.2.3", "Commit:", "Go version:"} {
		if !strings.Contains(info, want) {
			t.Errorf("Info() = %q, missing %q", info, want)
		}
	}
}
