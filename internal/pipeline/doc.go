// Package pipeline runs one generation end to end.
//
// A run has two phases. The load phase reads the profile, every IED map in
// the device directory and the SCADA map. The render phase resolves the
// SCADA records, writes the script and, when asked, the run report.
package pipeline
