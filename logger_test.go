package parallax

import (
	"bytes"
	"log"
	"strings"
	"testing"

	"github.com/rs/zerolog"
)

func TestLoggers(t *testing.T) {
	t.Run("std", func(t *testing.T) {
		var buf bytes.Buffer
		NewStdLogger(log.New(&buf, "", 0)).Log("hello %d", 1)
		if got := strings.TrimSpace(buf.String()); got != "hello 1" {
			t.Errorf("got %q", got)
		}
	})

	t.Run("zerolog", func(t *testing.T) {
		var buf bytes.Buffer
		NewZerologLogger(zerolog.New(&buf)).Log("hello %d", 2)
		out := buf.String()
		if !strings.Contains(out, `"level":"debug"`) || !strings.Contains(out, `"message":"hello 2"`) {
			t.Errorf("unexpected output: %s", out)
		}
	})

	t.Run("prefix", func(t *testing.T) {
		var buf bytes.Buffer
		l := &prefixLogger{id: "abcd1234", base: NewStdLogger(log.New(&buf, "", 0))}
		l.Log("GET %s -> %d", "/usage", 200)
		if got := strings.TrimSpace(buf.String()); got != "[abcd1234] GET /usage -> 200" {
			t.Errorf("got %q", got)
		}
	})
}
