package assets

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/vorbis"
	"github.com/gopxl/beep/wav"
)

// resampleQuality is the beep.Resample quality used when a file's rate
// differs from the engine rate.
const resampleQuality = 4

// EngineFormat is the in-memory format every sound is converted to.
func EngineFormat(sampleRate int) beep.Format {
	return beep.Format{
		SampleRate:  beep.SampleRate(sampleRate),
		NumChannels: 2,
		Precision:   2,
	}
}

// LoadSound decodes an Ogg Vorbis or WAV file into a buffer at the
// engine format, resampling when needed.
func LoadSound(path string, format beep.Format) (*beep.Buffer, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("load sound %s: %w", path, err)
	}

	var (
		stream beep.StreamSeekCloser
		src    beep.Format
	)
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".ogg":
		stream, src, err = vorbis.Decode(f)
	case ".wav":
		stream, src, err = wav.Decode(f)
	default:
		f.Close()
		return nil, fmt.Errorf("load sound %s: unsupported format %q", path, ext)
	}
	if err != nil {
		f.Close()
		return nil, fmt.Errorf("decode sound %s: %w", path, err)
	}
	defer stream.Close()

	var s beep.Streamer = stream
	if src.SampleRate != format.SampleRate {
		s = beep.Resample(resampleQuality, src.SampleRate, format.SampleRate, stream)
	}

	buf := beep.NewBuffer(format)
	buf.Append(s)
	if err := stream.Err(); err != nil {
		return nil, fmt.Errorf("decode sound %s: %w", path, err)
	}
	return buf, nil
}

// Duration returns the playback length of a buffer.
func Duration(buf *beep.Buffer) time.Duration {
	return buf.Format().SampleRate.D(buf.Len())
}
