// Package main provides the CLI entrypoint for rtac-writer.
//
// rtac-writer turns a SCADA point map and a directory of IED data maps into
// the RTAC structured-text program that copies IED points onto the SCADA
// DNP bus:
//   - Reads every "*Data_Map*.xlsx" in the device directory
//   - Resolves each SCADA map row to an IED point alias
//   - Writes the analog, binary-output or binary-input script
//
// Run with -init-profile to get an editable YAML profile describing the
// default sheet layouts.
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/labstack/gommon/log"

	"rtac-writer/internal/mapping"
	"rtac-writer/internal/pipeline"
)

const (
	exitOK    = 0
	exitError = 1
	exitUsage = 2
)

var version = "dev"

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

type cliOptions struct {
	scada    string
	devices  string
	variant  string
	out      string
	profile  string
	report   string
	logLevel string
	dump     bool
	version  bool
	// initProfile is where to write the default profile for editing.
	initProfile string
}

func parseFlags(args []string, stderr io.Writer) (cliOptions, error) {
	var opts cliOptions

	fs := flag.NewFlagSet("rtac-writer", flag.ContinueOnError)
	fs.SetOutput(stderr)

	fs.StringVar(&opts.scada, "scada", "", "SCADA map workbook (.xlsx)")
	fs.StringVar(&opts.devices, "devices", "", "directory holding the IED data maps")
	fs.StringVar(&opts.variant, "variant", mapping.VariantAnalog.String(),
		"point family: analog, binary-output or binary-input")
	fs.StringVar(&opts.out, "out", "", "script path (default: next to the SCADA map)")
	fs.StringVar(&opts.profile, "profile", "", "YAML profile describing the sheet layouts")
	fs.StringVar(&opts.report, "report", "", "run report path (.json, .yaml or .msgpack)")
	fs.StringVar(&opts.logLevel, "log-level", "info", "debug, info, warn or error")
	fs.BoolVar(&opts.dump, "dump", false, "dump the loaded tables to stdout")
	fs.BoolVar(&opts.version, "version", false, "print the version and exit")
	fs.StringVar(&opts.initProfile, "init-profile", "", "write the default YAML profile to this path and exit")

	if err := fs.Parse(args); err != nil {
		return opts, err
	}

	if opts.version || opts.initProfile != "" {
		return opts, nil
	}

	if opts.scada == "" || opts.devices == "" {
		fs.Usage()
		return opts, errors.New("both -scada and -devices are required")
	}

	return opts, nil
}

func run(args []string, stdout, stderr io.Writer) int {
	opts, err := parseFlags(args, stderr)
	if errors.Is(err, flag.ErrHelp) {
		return exitOK
	}

	if err != nil {
		fmt.Fprintln(stderr, err)
		return exitUsage
	}

	if opts.version {
		fmt.Fprintln(stdout, "rtac-writer", version)
		return exitOK
	}

	if opts.initProfile != "" {
		if err := mapping.WriteFile(mapping.DefaultProfile(), opts.initProfile); err != nil {
			fmt.Fprintln(stderr, err)
			return exitError
		}

		fmt.Fprintln(stdout, "profile written to", opts.initProfile)

		return exitOK
	}

	variant, err := mapping.ParseVariant(opts.variant)
	if err != nil {
		fmt.Fprintln(stderr, err)
		return exitUsage
	}

	lvl, err := parseLevel(opts.logLevel)
	if err != nil {
		fmt.Fprintln(stderr, err)
		return exitUsage
	}

	logger := newLogger(stderr, lvl)

	pipelineOpts := pipeline.Options{
		ScadaMap:    opts.scada,
		DeviceDir:   opts.devices,
		Variant:     variant,
		Output:      opts.out,
		ProfilePath: opts.profile,
		ReportPath:  opts.report,
		Logger:      logger,
	}
	if opts.dump {
		pipelineOpts.Dump = stdout
	}

	res, err := pipeline.Run(pipelineOpts)
	if err != nil {
		logger.Errorf("%v", err)
		return exitError
	}

	logger.Infof("file saved at %s", res.Output)

	return exitOK
}

func newLogger(w io.Writer, lvl log.Lvl) *log.Logger {
	logger := log.New("rtac-writer")
	logger.SetHeader("${time_rfc3339} ${level} ${prefix}")
	logger.SetOutput(w)
	logger.SetLevel(lvl)

	return logger
}

func parseLevel(s string) (log.Lvl, error) {
	switch strings.ToLower(s) {
	case "debug":
		return log.DEBUG, nil
	case "info":
		return log.INFO, nil
	case "warn", "warning":
		return log.WARN, nil
	case "error":
		return log.ERROR, nil
	default:
		return 0, fmt.Errorf("unknown log level %q", s)
	}
}
