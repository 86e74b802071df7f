package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"strconv"

	"github.com/cheggaaa/pb/v3"
	"github.com/jessevdk/go-flags"

	"github.com/liclac/pngbomb/pkg/png"
)

var opts struct {
	Output    string `long:"output" short:"o" default:"out.png" description:"output file path"`
	Depth     uint8  `long:"depth" short:"d" default:"1" description:"bit depth: 1, 2, 4, 8 or 16"`
	Color     string `long:"color" short:"c" default:"grayscale" description:"color type: grayscale, truecolor, indexed, grayscale-alpha or truecolor-alpha"`
	Level     int    `long:"level" short:"l" default:"1" description:"zlib compression level, -2 to 9"`
	BlockSize int    `long:"block-size" default:"65536" description:"streaming block size in bytes"`
	Quiet     bool   `long:"quiet" short:"q" description:"disable the progress bar"`
	Verbose   []bool `long:"verbose" short:"v" description:"increase the output verbosity"`
}

func main() {
	parser := flags.NewParser(&opts, flags.PassDoubleDash|flags.PrintErrors)
	parser.Usage = "[OPTIONS] <width> <height>"
	args, err := parser.Parse()
	if err != nil || len(args) != 2 {
		printUsage(os.Stderr, parser)
		os.Exit(2)
	}

	if len(opts.Verbose) > 0 {
		slog.SetLogLoggerLevel(slog.LevelDebug)
	}

	width, err := strconv.ParseUint(args[0], 10, 32)
	if err != nil {
		fmt.Fprintf(os.Stderr, "invalid width %q\n", args[0])
		os.Exit(2)
	}
	height, err := strconv.ParseUint(args[1], 10, 32)
	if err != nil {
		fmt.Fprintf(os.Stderr, "invalid height %q\n", args[1])
		os.Exit(2)
	}

	color, err := png.ParseColorType(opts.Color)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}

	info := png.Info{
		Width:     uint32(width),
		Height:    uint32(height),
		BitDepth:  opts.Depth,
		ColorType: color,
	}
	cfg := png.DefaultConfig()
	cfg.CompressionLevel = opts.Level
	cfg.BlockSize = opts.BlockSize

	if err := info.Validate(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}
	if err := cfg.Validate(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}

	slog.Info("Generating PNG", "width", info.Width, "height", info.Height,
		"depth", info.BitDepth, "color", info.ColorType.String(), "rawBytes", info.RawSize())
	slog.Debug("Encoder configuration", "blockSize", cfg.BlockSize, "level", cfg.CompressionLevel)

	out, err := os.Create(opts.Output)
	if err != nil {
		slog.Error("Failed to create output file", "error", err, "path", opts.Output)
		os.Exit(1)
	}

	enc := png.NewEncoder(cfg)

	var bar *pb.ProgressBar
	if !opts.Quiet {
		bar = pb.Full.Start64(info.RawSize())
		bar.Set(pb.Bytes, true)
		enc.SetProgress(png.ProgressFunc(func(done int64) {
			bar.SetCurrent(done)
		}))
	}

	size, err := enc.EncodeZero(out, info)
	if bar != nil {
		bar.Finish()
	}
	if err != nil {
		out.Close()
		slog.Error("Encode failed", "error", err, "path", opts.Output)
		os.Exit(1)
	}
	if err := out.Close(); err != nil {
		slog.Error("Failed to close output file", "error", err, "path", opts.Output)
		os.Exit(1)
	}

	slog.Info("PNG written", "path", opts.Output, "bytes", size)
}

// printUsage writes the full option help plus an invocation example.
func printUsage(w io.Writer, parser *flags.Parser) {
	fmt.Fprintln(w)
	parser.WriteHelp(w)
	fmt.Fprintf(w, "\nExample:\n  %s -o bomb.png 100000 100000\n\n", parser.Name)
}
