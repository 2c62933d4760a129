// Package match locates spreadsheet columns by keyword heuristics and
// normalizes device names so that both map families agree on identity.
//
// Key functions:
//   - Rule.Match: case-insensitive keyword predicate over header text
//   - ResolveSchema: resolves named columns once per sheet
//   - Levenshtein: edit distance used for "did you mean" suggestions
//   - DeviceNormalizer: device name swap, truncation and delimiter rules
package match
