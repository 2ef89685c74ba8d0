package pipeline

import (
	"context"
	"fmt"
	"testing"

	"github.com/varunkalambe/speechprobe/internal/probe"
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

// fakeProber returns a canned result.
type fakeProber struct {
	name   string
	result probe.Result
}

func (p fakeProber) Name() string        { return p.name }
func (p fakeProber) DisplayName() string { return p.name }

func (p fakeProber) Probe(ctx context.Context) probe.Result { return p.result }

func TestRun_CountsOutcomes(t *testing.T) {
	probers := []probe.Prober{
		fakeProber{"vosk", probe.Available("vosk", "0.3.45")},
		fakeProber{"ffmpeg", probe.Unavailable("ffmpeg", "ffmpeg not found on PATH")},
		fakeProber{"libvosk", probe.Available("libvosk", "0.3.45")},
	}
	log := &recordingLogger{}

	results, stats := Run(context.Background(), probers, log, false)

	if stats.Total != 3 || stats.Available != 2 || stats.Unavailable != 1 {
		t.Errorf("stats = %+v", stats)
	}
	if len(results) != 3 {
		t.Fatalf("got %d results", len(results))
	}
	if stats.AllAvailable() {
		t.Error("AllAvailable must be false with one miss")
	}
	want := "INFO: 2/3 capabilities available"
	if log.lines[len(log.lines)-1] != want {
		t.Errorf("summary = %q, want %q", log.lines[len(log.lines)-1], want)
	}
}

func TestRun_AllAvailable(t *testing.T) {
	probers := []probe.Prober{
		fakeProber{"vosk", probe.Available("vosk", "0.3.45")},
	}
	_, stats := Run(context.Background(), probers, &recordingLogger{}, false)
	if !stats.AllAvailable() {
		t.Errorf("stats = %+v", stats)
	}
}

func TestRun_QuietLogsNothing(t *testing.T) {
	probers := []probe.Prober{
		fakeProber{"vosk", probe.Available("vosk", "0.3.45")},
		fakeProber{"ffmpeg", probe.Unavailable("ffmpeg", "missing")},
	}
	log := &recordingLogger{}

	results, _ := Run(context.Background(), probers, log, true)

	if len(results) != 2 {
		t.Fatalf("got %d results", len(results))
	}
	if len(log.lines) != 0 {
		t.Errorf("quiet run logged %v", log.lines)
	}
}

func TestRun_CanceledContextStops(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	probers := []probe.Prober{
		fakeProber{"vosk", probe.Available("vosk", "0.3.45")},
		fakeProber{"ffmpeg", probe.Available("ffmpeg", "6.1")},
	}
	results, stats := Run(ctx, probers, &recordingLogger{}, false)

	if len(results) != 0 {
		t.Errorf("canceled run produced results: %v", results)
	}
	if stats.Available != 0 || stats.Unavailable != 0 {
		t.Errorf("stats = %+v", stats)
	}
}
