package match

import (
	"fmt"
	"strings"

	"rtac-writer/internal/sheet"
)

// ColumnSpec names a logical column and the rule that finds its header.
type ColumnSpec struct {
	Name     string `yaml:"name"`
	Rule     `yaml:",inline"`
	Optional bool `yaml:"optional,omitempty"`
}

// Required returns a spec for a column that must be present.
func Required(name string, rule Rule) ColumnSpec {
	return ColumnSpec{Name: name, Rule: rule}
}

// Optional returns a spec for a column that may be absent.
func Optional(name string, rule Rule) ColumnSpec {
	return ColumnSpec{Name: name, Rule: rule, Optional: true}
}

// ColumnNotFoundError reports a required column with no matching header.
type ColumnNotFoundError struct {
	Column      string
	Rule        Rule
	Suggestions []string
}

func (e *ColumnNotFoundError) Error() string {
	msg := fmt.Sprintf("column %q not found (header matching %s)", e.Column, e.Rule)
	if len(e.Suggestions) > 0 {
		msg += "; closest headers: " + strings.Join(e.Suggestions, ", ")
	}

	return msg
}

// Schema maps logical column names to resolved 0-based column indices.
type Schema struct {
	columns map[string]int
}

// Col returns the column index of name, or -1 when it was not resolved.
func (s Schema) Col(name string) int {
	if idx, ok := s.columns[name]; ok {
		return idx
	}

	return -1
}

// Has reports whether name was resolved.
func (s Schema) Has(name string) bool {
	_, ok := s.columns[name]
	return ok
}

// Len returns the number of resolved columns.
func (s Schema) Len() int {
	return len(s.columns)
}

// FindCell scans rows top-to-bottom, left-to-right and returns the
// coordinates of the first non-numeric cell whose text satisfies rule.
func FindCell(rows [][]sheet.Cell, rule Rule) (row, col int, ok bool) {
	for r, cells := range rows {
		for c, cell := range cells {
			if !cell.IsText() {
				continue
			}

			if rule.Match(cell.Text) {
				return r, c, true
			}
		}
	}

	return -1, -1, false
}

// FindColumn returns the column of the first header cell satisfying rule.
func FindColumn(rows [][]sheet.Cell, rule Rule) (int, bool) {
	_, col, ok := FindCell(rows, rule)
	return col, ok
}

// ResolveSchema resolves every spec against the header rows. The first
// required column that cannot be found fails with *ColumnNotFoundError.
func ResolveSchema(rows [][]sheet.Cell, specs []ColumnSpec) (Schema, error) {
	schema := Schema{columns: make(map[string]int, len(specs))}

	for _, spec := range specs {
		col, ok := FindColumn(rows, spec.Rule)
		if ok {
			schema.columns[spec.Name] = col

			continue
		}

		if spec.Optional {
			continue
		}

		return Schema{}, &ColumnNotFoundError{
			Column:      spec.Name,
			Rule:        spec.Rule,
			Suggestions: Suggest(spec.Rule, headerTexts(rows)),
		}
	}

	return schema, nil
}

func headerTexts(rows [][]sheet.Cell) []string {
	var texts []string

	for _, cells := range rows {
		for _, cell := range cells {
			if cell.IsText() {
				texts = append(texts, cell.Text)
			}
		}
	}

	return texts
}
