package editor

import (
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/gopxl/beep/v2"
	"github.com/gopxl/beep/v2/flac"
	"github.com/gopxl/beep/v2/mp3"
	"github.com/gopxl/beep/v2/speaker"
	"github.com/gopxl/beep/v2/vorbis"
	"github.com/gopxl/beep/v2/wav"
)

// decodeSound opens and decodes the sound file at path.
func decodeSound(path string) (beep.StreamSeekCloser, beep.Format, error) {
	var (
		stream beep.StreamSeekCloser
		format beep.Format
	)

	f, err := os.Open(path)
	if err != nil {
		return nil, format, err
	}

	switch strings.ToLower(filepath.Ext(path)) {
	case ".ogg":
		stream, format, err = vorbis.Decode(f)
	case ".mp3":
		stream, format, err = mp3.Decode(f)
	case ".flac":
		stream, format, err = flac.Decode(f)
	case ".wav":
		stream, format, err = wav.Decode(f)
	default:
		_ = f.Close()
		return nil, format, errInvalidSoundFormat
	}

	if err != nil {
		_ = f.Close()
		return nil, format, err
	}

	return stream, format, nil
}

// speakerMu serialises use of the audio device across sound hooks.
var speakerMu sync.Mutex

type soundDecoder func(path string) (beep.StreamSeekCloser, beep.Format, error)

type soundOutput func(s beep.Streamer, format beep.Format) error

// playSound plays the file at path to completion.
func playSound(path string) error {
	return playThrough(path, decodeSound, speakerOutput)
}

func playThrough(path string, decode soundDecoder, out soundOutput) error {
	stream, format, err := decode(path)
	if err != nil {
		return err
	}

	defer stream.Close()

	speakerMu.Lock()
	defer speakerMu.Unlock()

	return out(stream, format)
}

// speakerOutput plays s on the speaker and waits for it to finish. The
// caller must hold speakerMu.
func speakerOutput(s beep.Streamer, format beep.Format) error {
	bufferSize := 10

	err := speaker.Init(
		format.SampleRate,
		format.SampleRate.N(time.Duration(int(time.Second)/bufferSize)),
	)
	if err != nil {
		return err
	}

	defer speaker.Close()

	done := make(chan struct{})

	speaker.Play(beep.Seq(s, beep.Callback(func() {
		close(done)
	})))

	<-done

	speaker.Clear()

	return nil
}
