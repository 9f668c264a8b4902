package logger

import (
	"bytes"
	"encoding/json"
	"errors"
	"strings"
	"testing"
	"time"
)

func fixedNow() time.Time { return time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC) }

func TestStdLogger_TextIsSortedAndQuoted(t *testing.T) {
	var buf bytes.Buffer
	l := New(Options{Level: Info, Format: FormatText, App: "passaro-ok", Writer: &buf}).(*StdLogger)
	l.now = fixedNow

	l.Info("bird created", Fields{"bird_id": "b-1", "name": "Piu Piu"})

	got := strings.TrimSpace(buf.String())
	want := `app=passaro-ok bird_id=b-1 level=info msg="bird created" name="Piu Piu" ts=2026-01-02T03:04:05Z`
	if got != want {
		t.Fatalf("unexpected line\n got: %s\nwant: %s", got, want)
	}
}

func TestStdLogger_LevelFilterAndJSON(t *testing.T) {
	var buf bytes.Buffer
	l := New(Options{Level: Warn, Format: FormatJSON, Writer: &buf})

	l.Info("ignored", nil)
	l.With(Fields{"component": "store"}).Error("persist failed", Fields{"err": errors.New("disk full")})

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	if len(lines) != 1 {
		t.Fatalf("expected 1 line, got %d: %q", len(lines), buf.String())
	}

	var entry map[string]any
	if err := json.Unmarshal([]byte(lines[0]), &entry); err != nil {
		t.Fatalf("invalid json line: %v", err)
	}
	if entry["component"] != "store" || entry["err"] != "disk full" || entry["level"] != "error" {
		t.Fatalf("unexpected entry: %v", entry)
	}
}

func TestParseLevelAndFormat(t *testing.T) {
	if ParseLevel("WARNING") != Warn || ParseLevel("") != Info || ParseLevel("nope") != Info {
		t.Fatalf("unexpected level parsing")
	}
	if ParseFormat(" JSON ") != FormatJSON || ParseFormat("xml") != FormatText {
		t.Fatalf("unexpected format parsing")
	}
}
