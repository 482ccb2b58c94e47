// Package pathutil manages application file paths and locations
package pathutil

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/adrg/xdg"
)

// EnvVar selects an alternate set of files, e.g. STREAK_ENV=testing.
const EnvVar = "STREAK_ENV"

// Paths holds the resolved locations of every file the app owns.
type Paths struct {
	appDir         string
	configFileName string
	dbFileName     string
	statusFileName string
	logFileName    string

	configFilePath string
	dbFilePath     string
	statusFilePath string
	logFilePath    string
}

var (
	paths   *Paths
	once    sync.Once
	initErr error
)

// Initialize resolves all paths. Only the first call does any work.
func Initialize() error {
	once.Do(func() {
		paths = &Paths{
			appDir:         "streak",
			configFileName: "config.yml",
			dbFileName:     "streak.db",
			statusFileName: "status.json",
			logFileName:    "streak.log",
		}

		paths.applyEnvironmentOverrides(Env())
		initErr = paths.computePaths()
	})

	return initErr
}

// Env returns the trimmed value of STREAK_ENV.
func Env() string {
	return strings.TrimSpace(os.Getenv(EnvVar))
}

// IsTesting reports whether the app runs under STREAK_ENV=testing.
func IsTesting() bool {
	return Env() == "testing"
}

func Dir() string {
	return must().appDir
}

func ConfigFilePath() string {
	return must().configFilePath
}

func DBFilePath() string {
	return must().dbFilePath
}

func StatusFilePath() string {
	return must().statusFilePath
}

func LogFilePath() string {
	return must().logFilePath
}

func must() *Paths {
	if paths == nil {
		panic("pathutil.Initialize() must be called before accessing paths")
	}

	return paths
}

func (p *Paths) applyEnvironmentOverrides(env string) {
	if env == "" {
		return
	}

	p.configFileName = fmt.Sprintf("config_%s.yml", env)
	p.dbFileName = fmt.Sprintf("streak_%s.db", env)
	p.statusFileName = fmt.Sprintf("status_%s.json", env)
	p.logFileName = fmt.Sprintf("streak_%s.log", env)
}

func (p *Paths) computePaths() error {
	var err error

	p.configFilePath, err = xdg.ConfigFile(
		filepath.Join(p.appDir, p.configFileName),
	)
	if err != nil {
		return err
	}

	dataDir, err := xdg.DataFile(p.appDir)
	if err != nil {
		return err
	}

	p.dbFilePath = filepath.Join(dataDir, p.dbFileName)
	p.statusFilePath = filepath.Join(dataDir, p.statusFileName)
	p.logFilePath = filepath.Join(dataDir, "log", p.logFileName)

	return nil
}

// StripExtension returns the input file name without its extension.
func StripExtension(fileName string) string {
	return fileName[:len(fileName)-len(filepath.Ext(fileName))]
}
