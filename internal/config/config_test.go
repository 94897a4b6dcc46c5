package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func TestEmbeddedYAMLMatchesDefault(t *testing.T) {
	cfg := Default()
	require.NoError(t, yaml.Unmarshal(DefaultYAML(), &cfg))

	if diff := cmp.Diff(Default(), cfg); diff != "" {
		t.Errorf("defaults/purrdle.yaml differs from Default() (-code +yaml):\n%s", diff)
	}
}

func TestLoadCustomPathOverlaysDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "custom.yaml")
	body := "game:\n  puzzle_rows: 8\nanimation:\n  flip_duration: 1s\n"
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, 8, cfg.Game.PuzzleRows)
	assert.Equal(t, time.Second, cfg.Animation.FlipDuration)
	assert.Equal(t, 5, cfg.Game.WordLength, "unset fields keep defaults")
	assert.Equal(t, 250*time.Millisecond, cfg.Animation.FlipDelay)
}

func TestLoadCustomPathErrors(t *testing.T) {
	dir := t.TempDir()

	_, err := Load(filepath.Join(dir, "missing.yaml"))
	assert.Error(t, err)

	bad := filepath.Join(dir, "bad.yaml")
	require.NoError(t, os.WriteFile(bad, []byte("game: [unclosed"), 0o644))
	_, err = Load(bad)
	assert.Error(t, err)

	invalid := filepath.Join(dir, "invalid.yaml")
	require.NoError(t, os.WriteFile(invalid, []byte("game:\n  fps: 0\n"), 0o644))
	_, err = Load(invalid)
	assert.ErrorContains(t, err, "fps")
}

func TestLoadLocalConfigsDir(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("HOME", dir) // no ~/.purrdle/config.yaml
	t.Chdir(dir)

	require.NoError(t, os.MkdirAll("configs", 0o755))
	require.NoError(t, os.WriteFile(filepath.Join("configs", "purrdle.yaml"), []byte("game:\n  vocab_rows: 4\n"), 0o644))

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, 4, cfg.Game.VocabRows)
}

func TestLoadUserConfigWins(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("HOME", dir)
	t.Chdir(dir)

	require.NoError(t, os.MkdirAll(filepath.Join(dir, ".purrdle"), 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, ".purrdle", "config.yaml"), []byte("game:\n  vocab_rows: 5\n"), 0o644))
	require.NoError(t, os.MkdirAll("configs", 0o755))
	require.NoError(t, os.WriteFile(filepath.Join("configs", "purrdle.yaml"), []byte("game:\n  vocab_rows: 4\n"), 0o644))

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, 5, cfg.Game.VocabRows)
}

func TestLoadEmbeddedFallback(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("HOME", dir)
	t.Chdir(dir)

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}

func TestApplyEnv(t *testing.T) {
	env := map[string]string{
		"PURRDLE_WORDS_FILE": " /tmp/words.txt ",
		"PURRDLE_DB":         "/tmp/p.db",
		"PURRDLE_FPS":        "30",
		"PURRDLE_OFFLINE":    "true",
		"PURRDLE_LOG_LEVEL":  "debug",
	}
	lookup := func(k string) (string, bool) {
		v, ok := env[k]
		return v, ok
	}

	cfg := Default()
	require.NoError(t, ApplyEnv(&cfg, lookup))

	assert.Equal(t, "/tmp/words.txt", cfg.Words.File)
	assert.Equal(t, "/tmp/p.db", cfg.Storage.DB)
	assert.Equal(t, 30, cfg.Game.FPS)
	assert.True(t, cfg.Dictionary.Offline)
	assert.Equal(t, "debug", cfg.Log.Level)
	assert.Equal(t, Default().Vocab.File, cfg.Vocab.File, "unset variables change nothing")
}

func TestApplyEnvRejectsBadValues(t *testing.T) {
	env := map[string]string{"PURRDLE_FPS": "fast", "PURRDLE_OFFLINE": "maybe"}
	lookup := func(k string) (string, bool) {
		v, ok := env[k]
		return v, ok
	}

	cfg := Default()
	err := ApplyEnv(&cfg, lookup)
	require.Error(t, err)
	assert.ErrorContains(t, err, "PURRDLE_FPS")
	assert.ErrorContains(t, err, "PURRDLE_OFFLINE")
	assert.Equal(t, 60, cfg.Game.FPS)
}

func TestLoadEnvFile(t *testing.T) {
	dir := t.TempDir()
	assert.NoError(t, LoadEnvFile(filepath.Join(dir, "missing.env")))

	path := filepath.Join(dir, "test.env")
	require.NoError(t, os.WriteFile(path, []byte("PURRDLE_TEST_ONLY=hello\n"), 0o644))
	t.Cleanup(func() { os.Unsetenv("PURRDLE_TEST_ONLY") })

	require.NoError(t, LoadEnvFile(path))
	assert.Equal(t, "hello", os.Getenv("PURRDLE_TEST_ONLY"))
}

func TestAnimationTiming(t *testing.T) {
	timing := Default().Animation.Timing()
	assert.Equal(t, 500*time.Millisecond, timing.FlipDuration)
	assert.Equal(t, 1500*time.Millisecond, timing.BatchDuration(5))
}

func TestDictionaryClientConfig(t *testing.T) {
	c := Default().Dictionary.Client()
	assert.Equal(t, 5*time.Second, c.Timeout)
	assert.Contains(t, c.DefinitionURL, "dictionaryapi.dev")
}
