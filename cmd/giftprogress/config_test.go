package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/alexisbeaulieu97/giftprogress/internal/config"
	gperrors "github.com/alexisbeaulieu97/giftprogress/pkg/errors"
)

func TestConfigCommandPrintsDefaults(t *testing.T) {
	t.Chdir(t.TempDir())

	out, err := execute(t, "config")
	require.NoError(t, err)

	var cfg config.Config
	require.NoError(t, yaml.Unmarshal([]byte(out), &cfg))
	require.Equal(t, config.Default(), &cfg)
}

func TestConfigCommandReadsFlagPath(t *testing.T) {
	path := filepath.Join(t.TempDir(), "custom.yaml")
	require.NoError(t, os.WriteFile(path, []byte("window:\n  size: 20\n  step: 4\n"), 0o600))

	out, err := execute(t, "config", "--config", path)
	require.NoError(t, err)
	require.Contains(t, out, "size: 20")
	require.Contains(t, out, "step: 4")
}

func TestConfigCommandReadsEnvironment(t *testing.T) {
	path := filepath.Join(t.TempDir(), "env.yaml")
	require.NoError(t, os.WriteFile(path, []byte("gift:\n  label_suffix: pts\n"), 0o600))
	t.Setenv("GIFTPROGRESS_CONFIG", path)

	out, err := execute(t, "config")
	require.NoError(t, err)
	require.Contains(t, out, "label_suffix: pts")
}

func TestConfigCommandRequiresExplicitFile(t *testing.T) {
	_, err := execute(t, "config", "--config", filepath.Join(t.TempDir(), "absent.yaml"))
	var parseErr *gperrors.ParseError
	require.ErrorAs(t, err, &parseErr)
}

func TestLogLevelFromEnvironment(t *testing.T) {
	t.Setenv("GIFTPROGRESS_LOG_LEVEL", "loud")
	t.Chdir(t.TempDir())

	_, err := execute(t, "render", "--out", "x.png")
	require.ErrorContains(t, err, "create logger")
}
