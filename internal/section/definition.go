package section

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"
)

// Definition is the serialized form of a section. Dimensions are read
// according to Shape; Properties, when present, replace the geometric
// derivation (missing fields are back-derived).
//
// Example:
//
//	{
//	  "name": "W130x13",
//	  "shape": "I",
//	  "construction": "rolled",
//	  "dimensions": {"flange_width": 76, "flange_thickness": 7.6,
//	                 "web_thickness": 4, "total_height": 127, "radius": 7.6},
//	  "properties": {"area": 1650, "ix": 4762500, "iy": 560000}
//	}
type Definition struct {
	Name         string          `json:"name"`
	Description  string          `json:"description,omitempty"`
	Shape        Kind            `json:"shape"`
	Construction Construction    `json:"construction"`
	Dimensions   json.RawMessage `json:"dimensions"`
	Properties   *Properties     `json:"properties,omitempty"`
}

// Build creates the section described by the definition
func (d Definition) Build() (Section, error) {
	if len(d.Dimensions) == 0 {
		return nil, &ValidationError{msg: fmt.Sprintf("section %q has no dimensions", d.Name)}
	}
	switch Kind(strings.ToUpper(string(d.Shape))) {
	case KindI, "W", "H", "HP":
		var dims FlangedDimensions
		if err := json.Unmarshal(d.Dimensions, &dims); err != nil {
			return nil, fmt.Errorf("section %q dimensions: %w", d.Name, err)
		}
		if d.Properties != nil {
			return NewISectionWithProperties(d.Name, dims, *d.Properties)
		}
		return NewISection(d.Name, dims)
	case KindChannel:
		var dims FlangedDimensions
		if err := json.Unmarshal(d.Dimensions, &dims); err != nil {
			return nil, fmt.Errorf("section %q dimensions: %w", d.Name, err)
		}
		if d.Properties != nil {
			return NewChannelWithProperties(d.Name, dims, *d.Properties)
		}
		return NewChannel(d.Name, dims)
	case KindAngle:
		var dims AngleDimensions
		if err := json.Unmarshal(d.Dimensions, &dims); err != nil {
			return nil, fmt.Errorf("section %q dimensions: %w", d.Name, err)
		}
		if d.Properties != nil {
			return nil, &ValidationError{"supplied properties are not supported for angles"}
		}
		return NewAngle(d.Name, dims)
	case KindPipe, "CHS", "O":
		var dims PipeDimensions
		if err := json.Unmarshal(d.Dimensions, &dims); err != nil {
			return nil, fmt.Errorf("section %q dimensions: %w", d.Name, err)
		}
		if d.Properties != nil {
			return NewPipeWithProperties(d.Name, dims, *d.Properties)
		}
		return NewPipe(d.Name, dims)
	default:
		return nil, &ValidationError{msg: fmt.Sprintf("unknown shape %q", d.Shape)}
	}
}

// LoadFromFile loads a section definition from a JSON file
func LoadFromFile(filepath string) (Section, Definition, error) {
	data, err := os.ReadFile(filepath)
	if err != nil {
		return nil, Definition{}, err
	}

	var def Definition
	if err := json.Unmarshal(data, &def); err != nil {
		return nil, Definition{}, err
	}

	sec, err := def.Build()
	if err != nil {
		return nil, Definition{}, err
	}
	return sec, def, nil
}
