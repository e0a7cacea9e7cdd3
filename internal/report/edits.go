package report

import (
	"errors"
	"fmt"
	"io"

	"gopkg.in/yaml.v3"
)

// EditOp names an edit script operation.
type EditOp string

// Supported edit operations
const (
	OpEdit   EditOp = "edit"
	OpInsert EditOp = "insert"
	OpDelete EditOp = "delete"
)

// Edit is one step of an edit script.
type Edit struct {
	Op    EditOp `yaml:"op"`
	Row   int    `yaml:"row,omitempty"`
	Field string `yaml:"field,omitempty"`
	Value string `yaml:"value,omitempty"`
	ID    string `yaml:"id,omitempty"`
	// Date overrides the period default date of an inserted row.
	Date string `yaml:"date,omitempty"`
}

// EditScript is an ordered list of grid edits applied before export.
type EditScript struct {
	Edits []Edit `yaml:"edits"`
}

// LoadEditScript decodes a YAML edit script. Both a bare list and a document
// with an edits key are accepted.
func LoadEditScript(r io.Reader) (*EditScript, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("failed to read edit script: %w", err)
	}

	var node yaml.Node
	if err := yaml.Unmarshal(data, &node); err != nil {
		return nil, fmt.Errorf("failed to parse edit script: %w", err)
	}
	script := &EditScript{}
	if len(node.Content) == 0 {
		return script, nil
	}
	root := node.Content[0]
	if root.Kind == yaml.SequenceNode {
		err = root.Decode(&script.Edits)
	} else {
		err = root.Decode(script)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to decode edit script: %w", err)
	}

	for i, e := range script.Edits {
		if err := e.validate(); err != nil {
			return nil, fmt.Errorf("edit %d: %w", i+1, err)
		}
	}
	return script, nil
}

func (e Edit) validate() error {
	switch e.Op {
	case OpEdit:
		if e.Field == "" {
			return errors.New("edit requires a field")
		}
	case OpInsert:
	case OpDelete:
		if e.ID == "" {
			return errors.New("delete requires an id")
		}
	default:
		return fmt.Errorf("unknown edit op '%s'", e.Op)
	}
	return nil
}

// Apply runs the script against the session grid in order and stops at the
// first failing edit. Deleting an unknown id is not a failure.
func (s *EditScript) Apply(session *Session) error {
	grid := session.Grid()
	for i, e := range s.Edits {
		switch e.Op {
		case OpEdit:
			if err := grid.EditCell(e.Row, e.Field, e.Value); err != nil {
				return fmt.Errorf("edit %d: %w", i+1, err)
			}
		case OpInsert:
			date := e.Date
			if date == "" {
				date = session.DefaultDate()
			}
			grid.InsertRow(date)
		case OpDelete:
			grid.DeleteRow(e.ID)
		default:
			return fmt.Errorf("edit %d: unknown edit op '%s'", i+1, e.Op)
		}
	}
	return nil
}
