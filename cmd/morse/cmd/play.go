package cmd

import (
	"bytes"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/msto63/morsetree/internal/morse/audio"
	"github.com/msto63/morsetree/internal/morse/codec"
	"github.com/msto63/morsetree/internal/morse/service"
	"github.com/msto63/morsetree/pkg/core/config"
	coreerr "github.com/msto63/morsetree/pkg/core/errors"
)

// newSink opens the speaker output; tests replace it
var newSink = func(sampleRate int) audio.Sink {
	return audio.NewPlayback(sampleRate)
}

type playOptions struct {
	wavPath    string
	wpm        int
	farnsworth int
	toneHz     float64
}

func (a *app) newPlayCmd() *cobra.Command {
	var opts playOptions

	cmd := &cobra.Command{
		Use:   "play [tree-file]",
		Short: "Encode standard input and key it as audio",
		Long: `Encode standard input like "morse -e" and key the result as a sine
tone, either on the default audio device or into a WAV file (--wav).
The encoded lines are echoed to standard output.`,
		Args: maxOneArg,
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runPlay(cmd, args, opts)
		},
	}

	cmd.Flags().StringVar(&opts.wavPath, "wav", "", "write a WAV file instead of playing")
	cmd.Flags().IntVar(&opts.wpm, "wpm", 0, "keying speed in words per minute (default from config)")
	cmd.Flags().IntVar(&opts.farnsworth, "farnsworth", 0, "Farnsworth spacing speed in words per minute")
	cmd.Flags().Float64Var(&opts.toneHz, "tone", 0, "tone frequency in Hz (default from config)")

	return cmd
}

func (a *app) runPlay(cmd *cobra.Command, args []string, opts playOptions) error {
	settings, err := a.audioSettings(opts)
	if err != nil {
		return err
	}

	root, err := service.LoadTree(a.treePath(args), a.logger)
	if err != nil {
		return err
	}

	translator, err := service.NewTranslator(service.Config{
		Mode:   service.ModeEncode,
		Tree:   root,
		Logger: a.logger,
	})
	if err != nil {
		return err
	}

	var encoded bytes.Buffer
	if _, err := translator.Run(cmd.Context(), a.stdin, io.MultiWriter(a.stdout, &encoded)); err != nil {
		return err
	}

	timing := audio.Timing{
		WPM:           settings.WPM,
		FarnsworthWPM: settings.FarnsworthWPM,
	}

	synth := audio.DefaultSynthConfig()
	if settings.SampleRate > 0 {
		synth.SampleRate = settings.SampleRate
	}
	if settings.ToneHz > 0 {
		synth.ToneHz = settings.ToneHz
	}
	if settings.Volume > 0 {
		synth.Volume = settings.Volume
	}
	if settings.Ramp.Duration > 0 {
		synth.Ramp = settings.Ramp.Duration
	}

	elements := audio.Schedule(joinLines(encoded.String()), timing)
	if len(elements) == 0 {
		a.logger.Warn("Nothing to play")
		return nil
	}

	samples := audio.Synthesize(elements, synth)
	a.logger.Info("Keying",
		"wpm", timing.WPM,
		"farnsworth_wpm", timing.FarnsworthWPM,
		"tone_hz", synth.ToneHz,
		"duration", audio.Total(elements),
		"samples", len(samples))

	if opts.wavPath != "" {
		return writeWAVFile(opts.wavPath, samples, synth.SampleRate)
	}

	if err := newSink(synth.SampleRate).Play(cmd.Context(), samples); err != nil {
		return coreerr.Wrap(err, "playback failed").WithCode(coreerr.CodeAudio)
	}
	return nil
}

// audioSettings applies the command line overrides to the configured audio
// settings and checks the result like a config file
func (a *app) audioSettings(opts playOptions) (config.AudioConfig, error) {
	checked := *a.cfg
	if opts.wpm > 0 {
		checked.Audio.WPM = opts.wpm
	}
	if opts.farnsworth > 0 {
		checked.Audio.FarnsworthWPM = opts.farnsworth
	}
	if opts.toneHz > 0 {
		checked.Audio.ToneHz = opts.toneHz
	}

	if err := checked.Validate(); err != nil {
		return config.AudioConfig{}, coreerr.Wrap(err, "invalid audio settings").WithCode(coreerr.CodeUsage)
	}
	return checked.Audio, nil
}

// joinLines turns one encoded line per input line into a single keying text,
// treating each line break as a word gap
func joinLines(encoded string) string {
	var words []string
	for _, line := range strings.Split(encoded, "\n") {
		if line != "" {
			words = append(words, line)
		}
	}
	return strings.Join(words, codec.WordSeparator)
}

func writeWAVFile(path string, samples []float32, sampleRate int) error {
	f, err := os.Create(path)
	if err != nil {
		return coreerr.Wrap(err, "cannot create WAV file").
			WithCode(coreerr.CodeIO).
			WithDetail("path", path)
	}

	if err := audio.WriteWAV(f, samples, sampleRate); err != nil {
		f.Close()
		return coreerr.Wrap(err, "failed to write WAV file").
			WithCode(coreerr.CodeAudio).
			WithDetail("path", path)
	}

	if err := f.Close(); err != nil {
		return coreerr.Wrap(err, "failed to close WAV file").WithCode(coreerr.CodeIO)
	}
	return nil
}
