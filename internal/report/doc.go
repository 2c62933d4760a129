// Package report builds the machine-readable record of a generation run.
//
// A report carries a run ID, the inputs used, a summary of resolution
// outcomes, one entry per SCADA record and all diagnostics. It encodes to
// JSON, YAML or MessagePack, chosen by the output file extension.
package report
