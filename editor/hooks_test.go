package editor

import (
	"context"
	"os"
	"path/filepath"
	"runtime"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/gopxl/beep/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ayoisaiah/streak/sprint"
	"github.com/ayoisaiah/streak/sprintlog"
)

func testResult(status sprint.Status) sprint.Result {
	return sprint.Result{
		Status: status,
		Entry: sprintlog.NewEntry(
			testNow,
			25,
			740,
			status == sprint.Succeeded,
			"essay",
			"/notes/essay.md",
		),
	}
}

func TestNotification(t *testing.T) {
	title, msg := notification(testResult(sprint.Succeeded))
	assert.Equal(t, "Sprint complete", title)
	assert.Equal(t, "740 words in 25 minutes", msg)

	title, _ = notification(testResult(sprint.Failed))
	assert.Equal(t, "Sprint failed", title)
}

func TestRunSessionCmd(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("requires a POSIX shell")
	}

	out := filepath.Join(t.TempDir(), "out.txt")

	err := runSessionCmd(
		context.Background(),
		`sh -c 'echo "$STREAK_OUTCOME $STREAK_WORDS $STREAK_MINUTES $STREAK_DOCUMENT" > `+out+`'`,
		testResult(sprint.Succeeded),
	)
	require.NoError(t, err)

	b, err := os.ReadFile(out)
	require.NoError(t, err)
	assert.Equal(t, "success 740 25 /notes/essay.md\n", string(b))
}

func TestRunSessionCmdInvalid(t *testing.T) {
	err := runSessionCmd(context.Background(), `echo "unterminated`, testResult(sprint.Failed))

	assert.ErrorIs(t, err, errSessionCmd)
}

func TestDecodeSoundRejectsUnknownFormat(t *testing.T) {
	path := filepath.Join(t.TempDir(), "chime.aiff")
	require.NoError(t, os.WriteFile(path, []byte("data"), 0o600))

	_, _, err := decodeSound(path)
	assert.ErrorIs(t, err, errInvalidSoundFormat)
}

func TestPresenterQueuesHooksOnce(t *testing.T) {
	calls := map[string]int{}

	p := &presenter{
		notify:     true,
		sound:      "bell.ogg",
		sessionCmd: "true",
		hooks: Hooks{
			History: &fakeRecorder{},
			Notify: func(string, string) error {
				calls["notify"]++
				return nil
			},
			Play: func(string) error {
				calls["play"]++
				return nil
			},
			Run: func(context.Context, string, sprint.Result) error {
				calls["run"]++
				return nil
			},
		},
	}

	p.Finish(testResult(sprint.Succeeded))

	assert.Len(t, p.cmds, 4)
	assert.Equal(t, successText, p.message)
	assert.Equal(t, 1, p.progress.Successes)

	assert.NotNil(t, p.take())
	assert.Nil(t, p.take())
}

// silence is a stream of zero samples.
type silence struct {
	closed *atomic.Int32
}

func (silence) Stream(samples [][2]float64) (int, bool) { return len(samples), true }
func (silence) Err() error                              { return nil }
func (silence) Len() int                                { return 0 }
func (silence) Position() int                           { return 0 }
func (silence) Seek(int) error                          { return nil }
func (s silence) Close() error {
	s.closed.Add(1)
	return nil
}

func TestPlayThroughSerialisesSpeaker(t *testing.T) {
	var (
		active, peak, closed atomic.Int32
		wg                   sync.WaitGroup
	)

	decode := func(string) (beep.StreamSeekCloser, beep.Format, error) {
		return silence{closed: &closed}, beep.Format{SampleRate: 44100, NumChannels: 2, Precision: 2}, nil
	}

	out := func(beep.Streamer, beep.Format) error {
		n := active.Add(1)

		for {
			p := peak.Load()
			if n <= p || peak.CompareAndSwap(p, n) {
				break
			}
		}

		time.Sleep(5 * time.Millisecond)
		active.Add(-1)

		return nil
	}

	for range 4 {
		wg.Add(1)

		go func() {
			defer wg.Done()
			assert.NoError(t, playThrough("bell.ogg", decode, out))
		}()
	}

	wg.Wait()

	assert.Equal(t, int32(1), peak.Load())
	assert.Equal(t, int32(4), closed.Load())
}
