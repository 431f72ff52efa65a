// Package batch checks many members concurrently. Members come from JSON or
// XLSX tables; a member that fails to load or analyze is reported on its own
// and never stops the rest of the run.
package batch

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/alexiusacademia/gosteel/internal/aisc"
	"github.com/alexiusacademia/gosteel/internal/beam"
	"github.com/alexiusacademia/gosteel/internal/criteria"
	"github.com/alexiusacademia/gosteel/internal/material"
	"github.com/alexiusacademia/gosteel/internal/section"
)

// Spec is the serialized form of one member.
//
// Example:
//
//	{
//	  "name": "B1",
//	  "section": {"name": "W130x13", "shape": "I", "dimensions": {...}},
//	  "grade": "A992",
//	  "lengths": {"major": 3000},
//	  "loads": {"axial": -100000, "moment_major": 10000000}
//	}
//
// Loads are required strengths. When Effects is given instead, the member is
// checked under every load combination of the design method and the
// combination with the highest ratio is reported.
type Spec struct {
	Name        string             `json:"name"`
	Section     section.Definition `json:"section"`
	Grade       string             `json:"grade,omitempty"`
	Material    *material.Material `json:"material,omitempty"`
	Lengths     beam.Lengths       `json:"lengths"`
	K           beam.KFactors      `json:"k,omitempty"`
	Cb          float64            `json:"cb,omitempty"`
	ShearLength float64            `json:"shear_length,omitempty"`
	Loads       aisc.Forces        `json:"loads"`
	Effects     *aisc.LoadEffects  `json:"effects,omitempty"`
}

// Member is a resolved member ready for analysis. Err holds a definition
// error; such a member is reported as failed without being analyzed.
type Member struct {
	Beam    beam.Beam
	Effects *aisc.LoadEffects
	Err     error
}

// Resolve builds the section and material of a spec
func (s Spec) Resolve() Member {
	m := Member{Effects: s.Effects}
	m.Beam = beam.Beam{
		Name:        s.Name,
		Lengths:     s.Lengths,
		K:           s.K,
		Cb:          s.Cb,
		ShearLength: s.ShearLength,
		Loads:       s.Loads,
	}
	sec, err := s.Section.Build()
	if err != nil {
		m.Err = err
		return m
	}
	m.Beam.Section = sec
	m.Beam.Construction = s.Section.Construction
	if m.Beam.Name == "" {
		m.Beam.Name = sec.Name()
	}
	m.Beam.Material, m.Err = resolveMaterial(s.Grade, s.Material)
	return m
}

// resolveMaterial prefers an explicit material over a named grade
func resolveMaterial(grade string, m *material.Material) (material.Material, error) {
	switch {
	case m != nil:
		return *m, nil
	case grade != "":
		return material.Grade(grade)
	default:
		return material.Material{}, fmt.Errorf("no grade or material given")
	}
}

// Analyze checks the member under cfg. With load effects every combination
// of cfg.Design is checked and the one with the highest ratio is returned
// with its ID.
func (m Member) Analyze(cfg criteria.Config) (*beam.Result, string, error) {
	if m.Err != nil {
		return nil, "", m.Err
	}
	if m.Effects == nil {
		r, err := m.Beam.Analyze(cfg)
		return r, "", err
	}

	var worst *beam.Result
	var id string
	for _, lc := range aisc.Combinations(cfg.Design.String()) {
		b := m.Beam
		b.Loads = lc.Factored(*m.Effects)
		r, err := b.Analyze(cfg)
		if err != nil {
			return nil, lc.ID, fmt.Errorf("combination %s (%s): %w", lc.ID, lc.Description, err)
		}
		if worst == nil || r.MaxRatio > worst.MaxRatio {
			worst, id = r, lc.ID
		}
	}
	return worst, id, nil
}

// File is the JSON batch file
type File struct {
	Design  *criteria.DesignType `json:"design,omitempty"`
	Members []Spec               `json:"members"`
}

// LoadJSON loads a batch file. A member that cannot be resolved is kept with
// its error.
func LoadJSON(path string) (File, []Member, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return File{}, nil, err
	}
	var f File
	if err := json.Unmarshal(data, &f); err != nil {
		return File{}, nil, fmt.Errorf("%s: %w", path, err)
	}
	if len(f.Members) == 0 {
		return f, nil, fmt.Errorf("%s: no members", path)
	}
	members := make([]Member, len(f.Members))
	for i, s := range f.Members {
		if s.Name == "" {
			s.Name = fmt.Sprintf("member %d", i+1)
		}
		members[i] = s.Resolve()
	}
	return f, members, nil
}
