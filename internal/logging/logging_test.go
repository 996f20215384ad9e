package logging

import (
	"testing"
)

func TestNewLogger(t *testing.T) {
	for _, scope := range []string{"yuvlayout/fixture", "yuvlayout/imagefile", "yuvlayout/yuvtool"} {
		logger := NewLogger(scope)
		if logger == nil {
			t.Fatalf("%s: expected a logger", scope)
		}
		logger.Debugf("logger for %s", scope)
	}
}
