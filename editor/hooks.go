package editor

import (
	"context"
	"fmt"
	"os"
	"os/exec"
	"strconv"

	"github.com/gen2brain/beeep"
	"github.com/kballard/go-shellquote"

	"github.com/ayoisaiah/streak/internal/models"
	"github.com/ayoisaiah/streak/sprint"
)

// Recorder keeps the structured history of finished sprints.
type Recorder interface {
	SaveSprint(s *models.Sprint) error
}

// Hooks are the side effects run after a sprint ends. Nil fields are
// skipped.
type Hooks struct {
	History Recorder
	Notify  func(title, message string) error
	Play    func(path string) error
	Run     func(ctx context.Context, command string, r sprint.Result) error
}

// DefaultHooks returns the hooks used outside of tests.
func DefaultHooks(history Recorder) Hooks {
	return Hooks{
		History: history,
		Notify:  desktopNotify,
		Play:    playSound,
		Run:     runSessionCmd,
	}
}

// hookDoneMsg reports the completion of a hook.
type hookDoneMsg struct {
	err  error
	name string
}

func desktopNotify(title, message string) error {
	return beeep.Notify(title, message, "")
}

func notification(r sprint.Result) (title, message string) {
	title = "Sprint failed"
	if r.Success() {
		title = "Sprint complete"
	}

	message = fmt.Sprintf(
		"%d words in %d minutes",
		r.Entry.WordsWritten,
		r.Entry.DurationMinutes,
	)

	return title, message
}

// runSessionCmd executes the post-sprint command. The outcome is passed
// through the environment.
func runSessionCmd(ctx context.Context, command string, r sprint.Result) error {
	if command == "" {
		return nil
	}

	cmdSlice, err := shellquote.Split(command)
	if err != nil {
		return errSessionCmd.Fmt(command).Wrap(err)
	}

	if len(cmdSlice) == 0 {
		return nil
	}

	outcome := "fail"
	if r.Success() {
		outcome = "success"
	}

	cmd := exec.CommandContext(ctx, cmdSlice[0], cmdSlice[1:]...)
	cmd.Env = append(
		os.Environ(),
		"STREAK_OUTCOME="+outcome,
		"STREAK_WORDS="+strconv.Itoa(r.Entry.WordsWritten),
		"STREAK_MINUTES="+strconv.Itoa(r.Entry.DurationMinutes),
		"STREAK_DOCUMENT="+r.Entry.Path,
	)

	return cmd.Run()
}
