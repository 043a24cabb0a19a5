package logging

import (
	"bytes"
	"strings"
	"testing"

	"github.com/phuslu/log"
)

func TestNew_FansOutToEverySink(t *testing.T) {
	var console, first, second bytes.Buffer

	logger := New(Options{Console: &console}, &first, nil, &second)
	logger.Info().Str("device", "iPhone 12").Msg("Starting cart verification")

	for name, buf := range map[string]*bytes.Buffer{"console": &console, "first": &first, "second": &second} {
		out := buf.String()
		if !strings.Contains(out, "Starting cart verification") {
			t.Errorf("%s sink missing message, got %q", name, out)
		}
		if strings.Count(out, "\n") != 1 {
			t.Errorf("%s sink expected exactly one line, got %q", name, out)
		}
	}
}

func TestNew_ConsoleRespectsLevel(t *testing.T) {
	var console bytes.Buffer

	logger := New(Options{Console: &console, Level: "warn"})
	logger.Info().Msg("hidden")
	logger.Warn().Msg("shown")

	if strings.Contains(console.String(), "hidden") {
		t.Error("info entry should be filtered at warn level")
	}
	if !strings.Contains(console.String(), "shown") {
		t.Error("warn entry should be written at warn level")
	}
}

func TestNew_SinkIgnoresLevel(t *testing.T) {
	tests := []string{"debug", "info", "warn", "warning", "error", ""}

	for _, level := range tests {
		t.Run(level, func(t *testing.T) {
			var console, sink bytes.Buffer

			logger := New(Options{Console: &console, Level: level}, &sink)
			logger.Debug().Msg("debug entry")
			logger.Info().Msg("info entry")
			logger.Warn().Msg("warn entry")
			logger.Error().Msg("error entry")

			want := "debug entry\ninfo entry\nwarn entry\nerror entry\n"
			if sink.String() != want {
				t.Errorf("expected every entry in the sink, got %q", sink.String())
			}
		})
	}
}

func TestNew_SinkReceivesBareMessage(t *testing.T) {
	var console, sink bytes.Buffer

	logger := New(Options{Console: &console}, &sink)
	logger.Warn().Str("device", "iPhone 12").Int("quantity", 5).Msg("Cart verification failed")

	if got := sink.String(); got != "Cart verification failed\n" {
		t.Errorf("expected the bare message in the sink, got %q", got)
	}
	if !strings.Contains(console.String(), "device=iPhone 12") {
		t.Errorf("expected fields on the console, got %q", console.String())
	}
}

func TestParseLevel(t *testing.T) {
	tests := []struct {
		input string
		want  log.Level
	}{
		{"debug", log.DebugLevel},
		{"DEBUG", log.DebugLevel},
		{"info", log.InfoLevel},
		{"warn", log.WarnLevel},
		{"warning", log.WarnLevel},
		{" error ", log.ErrorLevel},
		{"", log.InfoLevel},
		{"verbose", log.InfoLevel},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			if got := ParseLevel(tt.input); got != tt.want {
				t.Errorf("ParseLevel(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

func TestDiscard(t *testing.T) {
	logger := Discard()
	// must not panic or write to stdout
	logger.Error().Msg("dropped")
}
