// Package diagnostic provides structured warnings, errors, and infos
// collected while loading maps and resolving SCADA points.
//
// Key capabilities:
//   - Data-quality warnings (duplicate devices, invalid indices, packed cells)
//   - Resolution warnings (index mismatch, points not marked for SCADA)
//   - Source location (workbook, device, row) for every finding
package diagnostic
