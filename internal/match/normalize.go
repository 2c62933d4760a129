package match

import (
	"slices"
	"strings"
	"unicode"
)

// DefaultDeviceCodes are the device-type codes whose names are written
// with the first two characters swapped on one side of the maps.
var DefaultDeviceCodes = []string{"87TA", "74TA", "51TA", "90TA"}

// DefaultDevicePrefixes are the letters an IED map may prepend to a device name.
var DefaultDevicePrefixes = []string{"K", "L"}

// DeviceNormalizer brings device names from both map families to one form.
type DeviceNormalizer struct {
	Codes    []string
	Prefixes []string
}

// NewDeviceNormalizer returns a normalizer with the default codes and prefixes.
func NewDeviceNormalizer() DeviceNormalizer {
	return DeviceNormalizer{
		Codes:    slices.Clone(DefaultDeviceCodes),
		Prefixes: slices.Clone(DefaultDevicePrefixes),
	}
}

// Normalize trims raw, swaps the first two characters of names carrying a
// device code when they read digit-then-letter, and truncates at the first space.
// Examples:
//   - "1T_87TA" -> "T1_87TA"
//   - "T1_87TA" -> "T1_87TA"
//   - "T1_87TA SPARE" -> "T1_87TA"
func (n DeviceNormalizer) Normalize(raw string) string {
	name := strings.TrimSpace(raw)

	if n.hasCode(name) {
		name = swapLeadingDigit(name)
	}

	if idx := strings.IndexFunc(name, unicode.IsSpace); idx >= 0 {
		name = name[:idx]
	}

	return name
}

// NormalizeScada applies Normalize and replaces '-' and '/' with '_'.
func (n DeviceNormalizer) NormalizeScada(raw string) string {
	return strings.NewReplacer("-", "_", "/", "_").Replace(n.Normalize(raw))
}

// StripPrefix removes one leading prefix letter from name.
func (n DeviceNormalizer) StripPrefix(name string) string {
	for _, p := range n.Prefixes {
		if p != "" && strings.HasPrefix(name, p) {
			return strings.TrimPrefix(name, p)
		}
	}

	return name
}

func (n DeviceNormalizer) hasCode(name string) bool {
	return slices.ContainsFunc(n.Codes, func(code string) bool {
		return code != "" && strings.Contains(name, code)
	})
}

// swapLeadingDigit swaps the first two runes when a digit is followed by a
// letter, so a swapped name never qualifies for a second swap.
func swapLeadingDigit(name string) string {
	runes := []rune(name)
	if len(runes) < 2 || !unicode.IsDigit(runes[0]) || !unicode.IsLetter(runes[1]) {
		return name
	}

	runes[0], runes[1] = runes[1], runes[0]

	return string(runes)
}
