//-----------------------------------------------------------------------------
// Copyright (c) 2023-present The rstree authors
//
// This file is part of rstree.
//
// rstree is licensed under the latest version of the EUPL (European Union
// Public License). Please see file LICENSE.txt for your rights and obligations
// under this license.
//-----------------------------------------------------------------------------

package logger_test

import (
	"strings"
	"testing"
	"time"

	"codeberg.org/rstree/rstree/logger"
)

func TestParseLevel(t *testing.T) {
	testcases := []struct {
		text string
		exp  logger.Level
	}{
		{"tra", logger.TraceLevel},
		{"deb", logger.DebugLevel},
		{"info", logger.InfoLevel},
		{"warn", logger.WarnLevel},
		{"err", logger.ErrorLevel},
		{"fata", logger.FatalLevel},
		{"manda", logger.MandatoryLevel},
		{"dis", logger.NeverLevel},
		{"d", logger.Level(0)},
	}
	for i, tc := range testcases {
		got := logger.ParseLevel(tc.text)
		if got != tc.exp {
			t.Errorf("%d: ParseLevel(%q) == %q, but got %q", i, tc.text, tc.exp, got)
		}
	}
}

type captureLogWriter struct {
	sb strings.Builder
}

func (c *captureLogWriter) WriteMessage(level logger.Level, _ time.Time, prefix, msg string, details []byte) error {
	c.sb.WriteString(level.Format())
	c.sb.WriteByte(' ')
	c.sb.WriteString(prefix)
	c.sb.WriteByte(' ')
	c.sb.WriteString(msg)
	c.sb.Write(details)
	c.sb.WriteByte('\n')
	return nil
}

func TestLevelFilter(t *testing.T) {
	var lw captureLogWriter
	log := logger.New(&lw, "").SetLevel(logger.WarnLevel)
	log.Debug().Msg("dropped")
	log.Warn().Str("key", "val").Msg("kept")
	got := lw.sb.String()
	if strings.Contains(got, "dropped") {
		t.Errorf("debug message was logged: %q", got)
	}
	if !strings.Contains(got, "kept") || !strings.Contains(got, "key=val") {
		t.Errorf("warn message missing: %q", got)
	}
}

type testLogWriter struct{}

func (*testLogWriter) WriteMessage(logger.Level, time.Time, string, string, []byte) error {
	return nil
}

func BenchmarkDisabled(b *testing.B) {
	log := logger.New(&testLogWriter{}, "").SetLevel(logger.NeverLevel)
	for n := 0; n < b.N; n++ {
		log.Info().Str("key", "val").Msg("Benchmark")
	}
}

func BenchmarkStrMessage(b *testing.B) {
	log := logger.New(&testLogWriter{}, "")
	for n := 0; n < b.N; n++ {
		log.Info().Str("key", "val").Msg("Benchmark")
	}
}
