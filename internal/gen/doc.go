// Package gen renders a resolved plan into RTAC structured text.
//
// Every variant renders records in SCADA map order into one text buffer:
//   - Analog inputs: one assignment pair per point, with optional scaling
//   - Binary outputs: operTrip/operClose alternation per device
//   - Binary inputs: one grouped OR/AND expression per SCADA address
//
// Records that could not be resolved become diagnostic lines in place.
package gen
