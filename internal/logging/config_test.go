package logging

import (
	"bytes"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
)

func TestDefaultConfig(t *testing.T) {
	rt := DefaultConfig(ProfileRuntime)
	assert.Equal(t, zerolog.InfoLevel, rt.Level)
	assert.True(t, rt.Timestamp)

	tc := DefaultConfig(ProfileTest)
	assert.Equal(t, zerolog.DebugLevel, tc.Level)
	assert.False(t, tc.Timestamp)
	assert.True(t, tc.NoColor)
}

func TestApplyEnv(t *testing.T) {
	env := map[string]string{
		EnvLogLevel:     " TRACE ",
		EnvLogTimestamp: "false",
		EnvLogNoColor:   "1",
	}
	cfg := DefaultConfig(ProfileRuntime)
	applyEnv(&cfg, func(k string) string { return env[k] })

	assert.Equal(t, zerolog.TraceLevel, cfg.Level)
	assert.False(t, cfg.Timestamp)
	assert.True(t, cfg.NoColor)
}

func TestApplyEnv_IgnoresGarbage(t *testing.T) {
	env := map[string]string{
		EnvLogLevel:     "loud",
		EnvLogTimestamp: "sometimes",
	}
	cfg := DefaultConfig(ProfileRuntime)
	applyEnv(&cfg, func(k string) string { return env[k] })

	assert.Equal(t, DefaultConfig(ProfileRuntime).Level, cfg.Level)
	assert.True(t, cfg.Timestamp)
}

func TestApplyEnv_Process(t *testing.T) {
	t.Setenv(EnvLogLevel, "off")
	cfg := DefaultConfig(ProfileTest)
	ApplyEnv(&cfg)
	assert.Equal(t, zerolog.Disabled, cfg.Level)
}

func TestParseLevel(t *testing.T) {
	cases := map[string]zerolog.Level{
		"trace":       zerolog.TraceLevel,
		"diagnostics": zerolog.TraceLevel,
		"debug":       zerolog.DebugLevel,
		"info":        zerolog.InfoLevel,
		"warning":     zerolog.WarnLevel,
		"error":       zerolog.ErrorLevel,
		"none":        zerolog.Disabled,
	}
	for raw, want := range cases {
		got, ok := parseLevel(raw)
		assert.True(t, ok, raw)
		assert.Equal(t, want, got, raw)
	}

	_, ok := parseLevel("")
	assert.False(t, ok)
}

func TestNew(t *testing.T) {
	var buf bytes.Buffer
	cfg := DefaultConfig(ProfileTest)
	cfg.Out = &buf

	log := New("rcgraph-test", cfg)
	log.Debug().Int("live", 0).Msg("scenario done")
	log.Trace().Msg("hidden")

	out := buf.String()
	assert.Contains(t, out, "scenario done")
	assert.Contains(t, out, "app=rcgraph-test")
	assert.Contains(t, out, "live=0")
	assert.NotContains(t, out, "hidden")
}
