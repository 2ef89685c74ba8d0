package check

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/varunkalambe/speechprobe/internal/config"
)

// recordingLogger captures formatted log lines per level for assertions.
type recordingLogger struct {
	lines []string
}

func (l *recordingLogger) log(level, format string, args ...interface{}) {
	l.lines = append(l.lines, level+": "+fmt.Sprintf(format, args...))
}
func (l *recordingLogger) Info(f string, a ...interface{})    { l.log("INFO", f, a...) }
func (l *recordingLogger) Success(f string, a ...interface{}) { l.log("SUCCESS", f, a...) }
func (l *recordingLogger) Warn(f string, a ...interface{})    { l.log("WARN", f, a...) }
func (l *recordingLogger) Error(f string, a ...interface{})   { l.log("ERROR", f, a...) }
func (l *recordingLogger) Debug(f string, a ...interface{})   { l.log("DEBUG", f, a...) }

func (l *recordingLogger) joined() string { return strings.Join(l.lines, "\n") }

func TestCheckModelDir_NotConfigured(t *testing.T) {
	cfg := config.DefaultConfig()
	log := &recordingLogger{}

	checkModelDir(&cfg, log)

	if !strings.Contains(log.joined(), "WARN: Model dir: "+config.EnvModelPath+" not set") {
		t.Errorf("logs: %s", log.joined())
	}
}

func TestCheckModelDir_NotADirectory(t *testing.T) {
	file := filepath.Join(t.TempDir(), "model.zip")
	if err := os.WriteFile(file, []byte("x"), 0o644); err != nil {
		t.Fatal(err)
	}
	cfg := config.DefaultConfig()
	cfg.ModelDir = file
	log := &recordingLogger{}

	checkModelDir(&cfg, log)

	if !strings.Contains(log.joined(), "ERROR: Model dir: "+file+" is not a directory") {
		t.Errorf("logs: %s", log.joined())
	}
}

func TestCheckModelDir_ReportsSize(t *testing.T) {
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "final.mdl"), make([]byte, 2048), 0o644); err != nil {
		t.Fatal(err)
	}
	cfg := config.DefaultConfig()
	cfg.ModelDir = dir
	log := &recordingLogger{}

	checkModelDir(&cfg, log)

	got := log.joined()
	if !strings.Contains(got, "SUCCESS: Model dir: "+dir) || !strings.Contains(got, "2.0 KiB") {
		t.Errorf("logs: %s", got)
	}
}

func TestCheckVoskModule_NoInterpreter(t *testing.T) {
	log := &recordingLogger{}
	if checkVoskModule(context.Background(), "", log) {
		t.Fatal("missing interpreter must fail the core check")
	}
	if !strings.Contains(log.joined(), "ERROR: Vosk module:") {
		t.Errorf("logs: %s", log.joined())
	}
}
