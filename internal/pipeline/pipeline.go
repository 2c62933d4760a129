package pipeline

import (
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/davecgh/go-spew/spew"

	"rtac-writer/internal/diagnostic"
	"rtac-writer/internal/gen"
	"rtac-writer/internal/mapping"
	"rtac-writer/internal/plan"
	"rtac-writer/internal/report"
	"rtac-writer/internal/sheet"
)

// Logger receives progress and diagnostics.
type Logger interface {
	Debugf(format string, args ...any)
	Infof(format string, args ...any)
	Warnf(format string, args ...any)
}

type nopLogger struct{}

func (nopLogger) Debugf(string, ...any) {}
func (nopLogger) Infof(string, ...any)  {}
func (nopLogger) Warnf(string, ...any)  {}

// Options configures a run.
type Options struct {
	// ScadaMap is the SCADA map workbook.
	ScadaMap string
	// DeviceDir holds the IED map workbooks.
	DeviceDir string
	Variant   mapping.Variant
	// Output is the script path. Empty means the variant's default name
	// next to the SCADA map.
	Output string
	// ProfilePath is an optional YAML profile. Empty means the default profile.
	ProfilePath string
	// ReportPath is an optional report file (.json, .yaml or .msgpack).
	ReportPath string
	// Dump receives the loaded tables and records when set.
	Dump   io.Writer
	Logger Logger
}

// Result is the outcome of a successful run.
type Result struct {
	Output      string
	Script      []byte
	DeviceMaps  []string
	Devices     *mapping.DeviceTable
	Plan        *plan.Plan
	Summary     plan.Summary
	Diagnostics diagnostic.Diagnostics
	Report      *report.Report
}

// Run loads every input, then resolves and renders the script. Structural
// problems in the profile or the workbooks abort the run with an error.
func Run(opts Options) (*Result, error) {
	log := opts.Logger
	if log == nil {
		log = nopLogger{}
	}

	if opts.ReportPath != "" {
		if _, err := report.FormatFromPath(opts.ReportPath); err != nil {
			return nil, err
		}
	}

	profile, err := loadProfile(opts.ProfilePath)
	if err != nil {
		return nil, err
	}

	settings, err := profile.Settings(opts.Variant)
	if err != nil {
		return nil, err
	}

	res := &Result{}

	devices, files, err := loadDevices(opts, profile, settings, &res.Diagnostics, log)
	if err != nil {
		return nil, err
	}

	res.Devices, res.DeviceMaps = devices, files

	records, err := loadScada(opts.ScadaMap, settings, &res.Diagnostics, log)
	if err != nil {
		return nil, err
	}

	if opts.Dump != nil {
		spew.Fdump(opts.Dump, devices, records)
	}

	res.Plan = plan.NewResolver(devices, plan.DefaultConfig()).Resolve(opts.Variant, records)
	res.Summary = plan.Summarize(res.Plan)

	generator := gen.NewGenerator(gen.GeneratorConfig{
		Bus:       settings.Bus,
		PointType: settings.PointType,
		Banner:    true,
	})

	res.Script, err = generator.Generate(res.Plan)
	if err != nil {
		return nil, fmt.Errorf("generating script: %w", err)
	}

	res.Output = opts.Output
	if res.Output == "" {
		res.Output = filepath.Join(filepath.Dir(opts.ScadaMap), settings.OutputName)
	}

	if err := gen.WriteScript(res.Output, res.Script); err != nil {
		return nil, err
	}

	log.Infof("wrote %s", res.Output)

	logDiagnostics(log, res.Plan.Diagnostics)
	logSummary(log, res.Summary)

	if opts.ReportPath != "" {
		res.Report = report.Build(res.Plan, res.Diagnostics, report.Meta{
			ScadaMap:   opts.ScadaMap,
			DeviceMaps: files,
			Output:     res.Output,
		})

		if err := report.WriteFile(opts.ReportPath, res.Report); err != nil {
			return nil, err
		}

		log.Infof("wrote report %s (run %s)", opts.ReportPath, res.Report.RunID)
	}

	res.Diagnostics.Merge(res.Plan.Diagnostics)

	return res, nil
}

func loadProfile(path string) (*mapping.Profile, error) {
	profile := mapping.DefaultProfile()

	if path != "" {
		var err error

		profile, err = mapping.LoadFile(path)
		if err != nil {
			return nil, err
		}
	}

	if diags := mapping.Validate(profile); diags.HasErrors() {
		return nil, fmt.Errorf("invalid profile: %w", diags.Error())
	}

	return profile, nil
}

func loadDevices(
	opts Options,
	profile *mapping.Profile,
	settings mapping.Settings,
	diags *diagnostic.Diagnostics,
	log Logger,
) (*mapping.DeviceTable, []string, error) {
	files, err := mapping.DiscoverDeviceFiles(opts.DeviceDir, profile.DeviceFiles)
	if err != nil {
		return nil, nil, err
	}

	files = withoutPath(files, opts.ScadaMap)
	if len(files) == 0 {
		diags.AddWarning("no_device_maps",
			fmt.Sprintf("no %q files found", "*"+profile.DeviceFiles.Marker+"*"+profile.DeviceFiles.Extension),
			diagnostic.Location{Source: opts.DeviceDir})
	}

	devices := mapping.NewDeviceTable()

	for _, path := range files {
		wb, err := sheet.Open(path)
		if err != nil {
			return nil, nil, err
		}

		table, d, err := mapping.LoadDevice(wb, settings)
		if err != nil {
			return nil, nil, fmt.Errorf("loading IED map: %w", err)
		}

		if prev := devices.Add(table); prev != nil {
			d.AddWarning("duplicate_device",
				fmt.Sprintf("device %q is also defined in %s; the later file wins", table.Device, prev.Source),
				diagnostic.Location{Source: filepath.Base(path), Device: table.Device})
		}

		logDiagnostics(log, d)
		diags.Merge(d)

		log.Infof("loaded %d points for %s from %s", table.Len(), table.Device, filepath.Base(path))
	}

	return devices, files, nil
}

func loadScada(path string, settings mapping.Settings, diags *diagnostic.Diagnostics, log Logger) (
	[]mapping.ScadaRecord, error,
) {
	wb, err := sheet.Open(path)
	if err != nil {
		return nil, err
	}

	records, d, err := mapping.LoadScada(wb, settings)
	if err != nil {
		return nil, fmt.Errorf("loading SCADA map: %w", err)
	}

	logDiagnostics(log, d)
	diags.Merge(d)

	log.Infof("loaded %d SCADA records from %s", len(records), filepath.Base(path))

	return records, nil
}

// withoutPath drops target from paths so a SCADA map stored among the IED
// maps is not read as one.
func withoutPath(paths []string, target string) []string {
	abs, err := filepath.Abs(target)
	if err != nil {
		return paths
	}

	out := paths[:0:0]

	for _, p := range paths {
		if pa, err := filepath.Abs(p); err == nil && pa == abs {
			continue
		}

		out = append(out, p)
	}

	return out
}

func logDiagnostics(log Logger, d diagnostic.Diagnostics) {
	for _, w := range d.Warnings {
		log.Warnf("%s", w)
	}

	for _, i := range d.Infos {
		log.Debugf("%s", i)
	}
}

func logSummary(log Logger, s plan.Summary) {
	for _, line := range strings.Split(strings.TrimSpace(plan.FormatSummary(s)), "\n") {
		if line != "" {
			log.Infof("%s", line)
		}
	}
}
