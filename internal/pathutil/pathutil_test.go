package pathutil

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStripExtension(t *testing.T) {
	cases := map[string]string{
		"Draft.md":           "Draft",
		"notes/Chapter 1.md": "notes/Chapter 1",
		"README":             "README",
		"archive.tar.gz":     "archive.tar",
	}

	for in, want := range cases {
		assert.Equal(t, want, StripExtension(in))
	}
}

func TestEnvironmentOverrides(t *testing.T) {
	p := &Paths{
		appDir:         "streak",
		configFileName: "config.yml",
		dbFileName:     "streak.db",
		statusFileName: "status.json",
		logFileName:    "streak.log",
	}

	p.applyEnvironmentOverrides("testing")

	assert.Equal(t, "config_testing.yml", p.configFileName)
	assert.Equal(t, "streak_testing.db", p.dbFileName)
	assert.Equal(t, "status_testing.json", p.statusFileName)
	assert.Equal(t, "streak_testing.log", p.logFileName)
}

func TestInitialize(t *testing.T) {
	t.Setenv(EnvVar, "testing")

	assert.NoError(t, Initialize())
	assert.True(t, IsTesting())
	assert.Equal(t, "streak", Dir())
	assert.Equal(t, "streak_testing.db", filepath.Base(DBFilePath()))
	assert.Equal(t, "log", filepath.Base(filepath.Dir(LogFilePath())))
	assert.Equal(t, "config_testing.yml", filepath.Base(ConfigFilePath()))
	assert.Equal(t, "status_testing.json", filepath.Base(StatusFilePath()))
}
