// Package mapping loads SCADA maps and IED maps into point tables and
// SCADA records, and defines the YAML profile that describes where the
// loaders find things in both spreadsheet families.
//
// # Key capabilities
//
//   - Locate sheets and columns by keyword rules instead of fixed positions
//   - Normalize device names so both map families agree on identity
//   - Synthesize the RTAC alias of every point marked for SCADA
//   - Split packed "A:B" key cells into two records
//   - Carry addresses forward for repeated (0) or blank address cells
//   - Report data-quality problems as diagnostics instead of failing
//
// # Profile Overview
//
// The profile file has the following structure. Every key is optional;
// anything left out falls back to DefaultProfile.
//
//	version: "1"
//	bus: SCADA_DNP
//	marker_symbol: X
//	device_codes: [87TA, 74TA, 51TA, 90TA]
//	device_prefixes: [K, L]
//	device_files:
//	  marker: Data_Map
//	  extension: .xlsx
//	variants:
//	  analog:
//	    point_type: AI
//	    output_name: RTAC Analog Structured Text.txt
//	    ied:
//	      sheet: Analog Points
//	      device_label: {all_of: [device, name]}
//	      device_cell: D3
//	      header_rows: 5
//	      first_data_row: 6
//	      columns:
//	        - name: key
//	          all_of: [relay, element]
//	        - name: supervisory_mark
//	          equals: SCADA
//	    scada:
//	      sheet: {all_of: [analog, input]}
//	      header_rows: 10
//	      columns:
//	        - name: address
//	          all_of: [analog, address, dnp]
//	        - name: scaling
//	          any_of: scale
//	          optional: true
//
// # Identity
//
// SCADA device names pass through DeviceNormalizer.NormalizeScada. IED
// device names are stripped of one prefix letter and normalized to form
// the DeviceTable key, while the alias keeps the unstripped normalized name.
package mapping
