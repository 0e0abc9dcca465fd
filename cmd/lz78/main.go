// Command lz78 compresses text files into .mz containers and back.
package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/op/go-logging"

	"github.com/woozymasta/lz78"
	"github.com/woozymasta/lz78/internal/batch"
)

const progName = "lz78"
const usageMessageRaw = `
Usage: lz78 [OPTIONS] FILE...

Compress text files into .mz containers (-c), or decompress .mz containers
into .txt files (default). Outputs keep the input base name and are written
to the output directory.

Options:
  -c          compress
  -d          decompress (default)
  -o DIR      output directory (default ".")
  -j N        files processed in parallel (default: number of CPUs)
  -max-size N refuse to compress inputs larger than N bytes (0 = no limit)
  -lenient    do not verify container padding bits
  -v          verbose logging
`

var log = logging.MustGetLogger(progName)

type nullWriter struct{}

func (n *nullWriter) Write(p []byte) (int, error) {
	return len(p), nil
}

func usageMessage() string {
	return strings.TrimLeft(usageMessageRaw, "\n")
}

func usageErrorf(detailFmt string, detailArgs ...interface{}) {
	detail := fmt.Sprintf(detailFmt, detailArgs...)
	fmt.Fprintf(os.Stderr, "%s: %s\n%s", progName, detail, usageMessage())
	os.Exit(64)
}

func exitError(err error) {
	fmt.Fprintf(os.Stderr, "%s: %s\n", progName, err.Error())
	os.Exit(1)
}

func setupLogging(verbose bool) {
	backend := logging.NewLogBackend(os.Stderr, "", 0)
	format := logging.MustStringFormatter(`%{time:15:04:05.000} %{module} %{level:.4s} %{message}`)
	leveled := logging.AddModuleLevel(logging.NewBackendFormatter(backend, format))
	if verbose {
		leveled.SetLevel(logging.DEBUG, "")
	} else {
		leveled.SetLevel(logging.WARNING, "")
	}
	logging.SetBackend(leveled)
}

func main() {
	flags := flag.NewFlagSet(progName, flag.ContinueOnError)
	flags.Usage = func() {}
	flags.SetOutput(&nullWriter{})

	compress := flags.Bool("c", false, "")
	decompress := flags.Bool("d", false, "")
	outDir := flags.String("o", ".", "")
	workers := flags.Int("j", 0, "")
	maxSize := flags.Int("max-size", 0, "")
	lenient := flags.Bool("lenient", false, "")
	verbose := flags.Bool("v", false, "")

	argErr := flags.Parse(os.Args[1:])
	if argErr == flag.ErrHelp {
		_, _ = io.WriteString(os.Stdout, usageMessage())
		os.Exit(0)
	} else if argErr != nil {
		usageErrorf("%s", argErr.Error())
	}

	if *compress && *decompress {
		usageErrorf("-c and -d are mutually exclusive")
	}
	if flags.NArg() == 0 {
		usageErrorf("no input files")
	}
	if *workers < 0 || *maxSize < 0 {
		usageErrorf("-j and -max-size must be non-negative")
	}

	setupLogging(*verbose)

	info, err := os.Stat(*outDir)
	if err != nil || !info.IsDir() {
		exitError(fmt.Errorf("output directory %q does not exist", *outDir))
	}

	cfg := batch.Config{
		Mode:       batch.Decompress,
		OutDir:     *outDir,
		Workers:    *workers,
		Compress:   &lz78.CompressOptions{SizeLimit: *maxSize},
		Decompress: lz78.DefaultOptions(),
	}
	if *compress {
		cfg.Mode = batch.Compress
	}
	if *lenient {
		cfg.Decompress = lz78.LenientOptions()
	}

	runner, err := batch.New(cfg)
	if err != nil {
		exitError(err)
	}

	results, err := runner.Run(context.Background(), flags.Args())
	if err != nil && results == nil {
		exitError(err)
	}

	failed := 0
	for _, res := range results {
		if res.Err != nil {
			failed++
			fmt.Fprintf(os.Stderr, "%s: %s: %v\n", progName, res.Input, res.Err)
			continue
		}
		log.Debugf("%s: %d -> %d bytes, cached=%v", res.Output, res.InSize, res.OutSize, res.Cached)
	}
	if failed > 0 {
		exitError(fmt.Errorf("%d of %d files failed", failed, len(results)))
	}
}
