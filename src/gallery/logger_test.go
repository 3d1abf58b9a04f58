package gallery

import (
	"bytes"
	"log"
	"strings"
	"testing"
)

func captureLog(t *testing.T) *bytes.Buffer {
	t.Helper()
	var buf bytes.Buffer
	saved := baseLogger
	baseLogger = log.New(&buf, "", 0)
	t.Cleanup(func() { baseLogger = saved })
	return &buf
}

func TestLogLevelFiltering(t *testing.T) {
	buf := captureLog(t)
	SetLogLevel("warn")
	defer SetLogLevel("info")

	Debugf("hidden debug")
	Infof("hidden info")
	Warnf("visible warning")
	Errorf("visible error")

	out := buf.String()
	if strings.Contains(out, "hidden") {
		t.Fatalf("low severity messages leaked: %s", out)
	}
	if !strings.Contains(out, "[WARN] visible warning") || !strings.Contains(out, "[ERROR] visible error") {
		t.Fatalf("high severity messages missing: %s", out)
	}
}

func TestUnknownLevelKeepsCurrent(t *testing.T) {
	buf := captureLog(t)
	SetLogLevel("info")
	SetLogLevel("nonsense")
	Infof("still visible")
	if !strings.Contains(buf.String(), "still visible") {
		t.Fatalf("unknown level should not change filtering: %s", buf.String())
	}
}

func TestPlainMessageKeepsPercent(t *testing.T) {
	buf := captureLog(t)
	SetLogLevel("info")
	msg := "wrote artifact (100.0% of 1024 bytes)"
	Infof(msg)
	out := buf.String()
	if !strings.Contains(out, "(100.0% of 1024 bytes)") {
		t.Fatalf("percent literal mangled: %s", out)
	}
	if strings.Contains(out, "%!") {
		t.Fatalf("fmt artifact in output: %s", out)
	}
}
