package mapping

import (
	"fmt"
	"strings"
)

//go:generate go tool stringer -type=Variant -linecomment -output=variant_string.go

// Variant selects the SCADA point family a run generates.
type Variant int

const (
	_ Variant = iota // skip zero value, use it as an invalid Variant

	VariantAnalog       // analog
	VariantBinaryOutput // binary-output
	VariantBinaryInput  // binary-input
)

// Variants lists every supported variant.
var Variants = []Variant{VariantAnalog, VariantBinaryOutput, VariantBinaryInput}

// ParseVariant parses the name printed by Variant.String.
func ParseVariant(s string) (Variant, error) {
	name := strings.ToLower(strings.TrimSpace(s))
	for _, v := range Variants {
		if v.String() == name {
			return v, nil
		}
	}

	return 0, fmt.Errorf("unknown variant %q (want one of %s)", s, variantNames())
}

func variantNames() string {
	names := make([]string, len(Variants))
	for i, v := range Variants {
		names[i] = v.String()
	}

	return strings.Join(names, ", ")
}
