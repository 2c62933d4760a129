package report

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/goccy/go-json"
	"github.com/vmihailenco/msgpack/v5"
	"gopkg.in/yaml.v3"
)

// Format is a report encoding.
type Format string

const (
	FormatJSON    Format = "json"
	FormatYAML    Format = "yaml"
	FormatMsgpack Format = "msgpack"
)

const filePerm = 0o644

// FormatFromPath picks the encoding from the file extension.
func FormatFromPath(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		return FormatJSON, nil
	case ".yaml", ".yml":
		return FormatYAML, nil
	case ".msgpack", ".mpk":
		return FormatMsgpack, nil
	default:
		return "", fmt.Errorf("unsupported report extension %q (want .json, .yaml or .msgpack)", filepath.Ext(path))
	}
}

// Encode serializes r in format f.
func Encode(r *Report, f Format) ([]byte, error) {
	switch f {
	case FormatJSON:
		data, err := json.MarshalIndent(r, "", "  ")
		if err != nil {
			return nil, fmt.Errorf("encoding JSON report: %w", err)
		}

		return append(data, '\n'), nil
	case FormatYAML:
		data, err := yaml.Marshal(r)
		if err != nil {
			return nil, fmt.Errorf("encoding YAML report: %w", err)
		}

		return data, nil
	case FormatMsgpack:
		var buf bytes.Buffer

		enc := msgpack.NewEncoder(&buf)
		enc.SetCustomStructTag("json")

		if err := enc.Encode(r); err != nil {
			return nil, fmt.Errorf("encoding MessagePack report: %w", err)
		}

		return buf.Bytes(), nil
	default:
		return nil, fmt.Errorf("unsupported report format %q", f)
	}
}

// Decode parses a report previously produced by Encode.
func Decode(data []byte, f Format) (*Report, error) {
	var (
		r   Report
		err error
	)

	switch f {
	case FormatJSON:
		err = json.Unmarshal(data, &r)
	case FormatYAML:
		err = yaml.Unmarshal(data, &r)
	case FormatMsgpack:
		dec := msgpack.NewDecoder(bytes.NewReader(data))
		dec.SetCustomStructTag("json")
		err = dec.Decode(&r)
	default:
		return nil, fmt.Errorf("unsupported report format %q", f)
	}

	if err != nil {
		return nil, fmt.Errorf("decoding %s report: %w", f, err)
	}

	return &r, nil
}

// WriteFile encodes r in the format implied by path and writes it.
func WriteFile(path string, r *Report) error {
	f, err := FormatFromPath(path)
	if err != nil {
		return err
	}

	data, err := Encode(r, f)
	if err != nil {
		return err
	}

	if err := os.WriteFile(path, data, filePerm); err != nil {
		return fmt.Errorf("writing report %s: %w", path, err)
	}

	return nil
}
