// Package main provides the digitizer throughput tester. It stands in
// for a real digitizer, producing a stream of encoded frames at a
// fixed interval and measuring encode/decode throughput. The buffers
// never leave the process; transport belongs to the surrounding
// pipeline.
package main

import (
	"fmt"
	"os"
	"time"

	logging "github.com/ipfs/go-log/v2"
	"github.com/spf13/cobra"

	"github.com/neutrondaq/streaming-types/digitizer"
	"github.com/neutrondaq/streaming-types/internal/config"
)

var log = logging.Logger("tester")

var rootCmd = &cobra.Command{
	Use:   "trace-throughput-tester",
	Short: "Generate digitizer frames and measure codec throughput",
	Long: `trace-throughput-tester simulates a neutron-detector digitizer. It
builds analog-trace (or event-list) frames at a fixed interval, encodes
them, decodes them back, and reports per-frame and aggregate timings.`,
}

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Start producing frames",
	RunE:  runTester,
}

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Write a default configuration file",
	RunE:  runInit,
}

var (
	configPath string
	debug      bool

	mode        string
	digitizerID uint8
	channels    int
	timeBins    int
	startFrame  uint32
	frameTime   int
	frameCount  int
	sampleRate  uint64
)

func init() {
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "", "config file path")
	rootCmd.PersistentFlags().BoolVarP(&debug, "debug", "d", false, "enable debug logging")

	runCmd.Flags().StringVar(&mode, "mode", "trace", "message kind to produce: trace or eventlist")
	runCmd.Flags().Uint8Var(&digitizerID, "did", 0, "digitizer identifier to use")
	runCmd.Flags().IntVar(&channels, "channels", 8, "number of channels per frame")
	runCmd.Flags().IntVar(&timeBins, "time-bins", 20000, "number of measurements to include in each frame")
	runCmd.Flags().Uint32Var(&startFrame, "start-frame", 0, "number of first frame to be sent")
	runCmd.Flags().IntVar(&frameTime, "frame-time", 20, "time in milliseconds between each frame")
	runCmd.Flags().IntVar(&frameCount, "frames", 0, "number of frames to produce; 0 means run until interrupted")
	runCmd.Flags().Uint64Var(&sampleRate, "sample-rate", 1_000_000_000, "samples per second")

	rootCmd.AddCommand(runCmd)
	rootCmd.AddCommand(initCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func runInit(cmd *cobra.Command, args []string) error {
	cfg := config.Default()
	if err := config.Save(configPath, cfg); err != nil {
		return fmt.Errorf("failed to write config: %w", err)
	}
	path := configPath
	if path == "" {
		path = config.DefaultPath()
	}
	fmt.Printf("Wrote default configuration to %s\n", path)
	return nil
}

func runTester(cmd *cobra.Command, args []string) error {
	if debug {
		logging.SetAllLoggers(logging.LevelDebug)
	} else {
		logging.SetAllLoggers(logging.LevelInfo)
	}

	cfg, err := config.Load(configPath)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	applyFlagOverrides(cmd, cfg)
	if err := cfg.Validate(); err != nil {
		return err
	}

	registry, err := digitizer.NewSchemaRegistry()
	if err != nil {
		return fmt.Errorf("failed to load schema registry: %w", err)
	}

	switch mode {
	case "trace":
		return produceTraces(cfg, registry)
	case "eventlist":
		return produceEventLists(cfg, registry)
	}
	return fmt.Errorf("unknown mode %q (want trace or eventlist)", mode)
}

func applyFlagOverrides(cmd *cobra.Command, cfg *config.Config) {
	f := cmd.Flags()
	if f.Changed("did") {
		cfg.Digitizer.ID = digitizerID
	}
	if f.Changed("channels") {
		cfg.Digitizer.Channels = channels
	}
	if f.Changed("sample-rate") {
		cfg.Digitizer.SampleRate = sampleRate
	}
	if f.Changed("time-bins") {
		cfg.Frames.TimeBins = timeBins
	}
	if f.Changed("start-frame") {
		cfg.Frames.StartFrame = startFrame
	}
	if f.Changed("frame-time") {
		cfg.Frames.IntervalMS = frameTime
	}
	if f.Changed("frames") {
		cfg.Frames.Count = frameCount
	}
}

func produceTraces(cfg *config.Config, registry *digitizer.SchemaRegistry) error {
	// Recognizable filler: every sample is 404 except the first two,
	// which carry the frame number and digitizer id.
	voltages := make([][]uint16, cfg.Digitizer.Channels)
	for i := range voltages {
		data := make([]uint16, cfg.Frames.TimeBins)
		for j := range data {
			data[j] = 404
		}
		if len(data) > 1 {
			data[1] = uint16(cfg.Digitizer.ID)
		}
		voltages[i] = data
	}

	builder := digitizer.NewTraceBuilder().
		WithDigitizerID(cfg.Digitizer.ID).
		WithSampleRate(cfg.Digitizer.SampleRate)

	ticker := time.NewTicker(time.Duration(cfg.Frames.IntervalMS) * time.Millisecond)
	defer ticker.Stop()

	var totalBytes int
	var totalEncode, totalDecode time.Duration
	frameNumber := cfg.Frames.StartFrame
	frames := 0

	for {
		builder.Reset().WithMetadata(digitizer.FrameMetadata{
			Timestamp:   digitizer.GpsTimeFromTime(time.Now()),
			Running:     true,
			FrameNumber: frameNumber,
		})
		for i := range voltages {
			if len(voltages[i]) > 0 {
				voltages[i][0] = uint16(frameNumber)
			}
			builder.WithChannel(uint32(i), voltages[i])
		}

		start := time.Now()
		buf, err := builder.Build()
		if err != nil {
			return fmt.Errorf("failed to encode frame %d: %w", frameNumber, err)
		}
		encodeTime := time.Since(start)

		if frames == 0 {
			if info, ok := registry.Describe(buf); ok {
				log.Infof("Producing %s frames (%s), %d bytes each",
					info.Name, info.Description, len(buf))
			}
		}

		start = time.Now()
		view, err := digitizer.DecodeTrace(buf)
		if err != nil {
			return fmt.Errorf("frame %d failed decode verification: %w", frameNumber, err)
		}
		decodeTime := time.Since(start)
		if view.Metadata().FrameNumber != frameNumber {
			return fmt.Errorf("frame %d round-tripped as frame %d",
				frameNumber, view.Metadata().FrameNumber)
		}

		log.Debugf("Trace frame %d: encode %v, decode %v", frameNumber, encodeTime, decodeTime)

		totalBytes += len(buf)
		totalEncode += encodeTime
		totalDecode += decodeTime
		frameNumber++
		frames++

		if cfg.Frames.Count > 0 && frames >= cfg.Frames.Count {
			break
		}
		<-ticker.C
	}

	reportTotals("trace", frames, totalBytes, totalEncode, totalDecode)
	return nil
}

func produceEventLists(cfg *config.Config, registry *digitizer.SchemaRegistry) error {
	builder := digitizer.NewEventListBuilder().
		WithDigitizerID(cfg.Digitizer.ID)

	ticker := time.NewTicker(time.Duration(cfg.Frames.IntervalMS) * time.Millisecond)
	defer ticker.Stop()

	var totalBytes int
	var totalEncode, totalDecode time.Duration
	frameNumber := cfg.Frames.StartFrame
	frames := 0

	for {
		builder.Reset().WithMetadata(digitizer.FrameMetadata{
			Timestamp:   digitizer.GpsTimeFromTime(time.Now()),
			Running:     true,
			FrameNumber: frameNumber,
		})
		for i := 0; i < cfg.Frames.TimeBins; i++ {
			ch := uint32(0)
			if cfg.Digitizer.Channels > 0 {
				ch = uint32(i % cfg.Digitizer.Channels)
			}
			builder.AddEvent(uint32(i), 404, ch)
		}

		start := time.Now()
		buf, err := builder.Build()
		if err != nil {
			return fmt.Errorf("failed to encode frame %d: %w", frameNumber, err)
		}
		encodeTime := time.Since(start)

		if frames == 0 {
			if info, ok := registry.Describe(buf); ok {
				log.Infof("Producing %s frames (%s), %d bytes each",
					info.Name, info.Description, len(buf))
			}
		}

		start = time.Now()
		view, err := digitizer.DecodeEventList(buf)
		if err != nil {
			return fmt.Errorf("frame %d failed decode verification: %w", frameNumber, err)
		}
		decodeTime := time.Since(start)
		if view.Metadata().FrameNumber != frameNumber {
			return fmt.Errorf("frame %d round-tripped as frame %d",
				frameNumber, view.Metadata().FrameNumber)
		}

		log.Debugf("Event-list frame %d: encode %v, decode %v", frameNumber, encodeTime, decodeTime)

		totalBytes += len(buf)
		totalEncode += encodeTime
		totalDecode += decodeTime
		frameNumber++
		frames++

		if cfg.Frames.Count > 0 && frames >= cfg.Frames.Count {
			break
		}
		<-ticker.C
	}

	reportTotals("event-list", frames, totalBytes, totalEncode, totalDecode)
	return nil
}

func reportTotals(kind string, frames, totalBytes int, encode, decode time.Duration) {
	if frames == 0 {
		return
	}
	log.Infof("%s: %d frames, %d bytes total", kind, frames, totalBytes)
	log.Infof("encode: %v total, %v/frame; decode: %v total, %v/frame",
		encode, encode/time.Duration(frames),
		decode, decode/time.Duration(frames))
}
