package main

import (
	"fmt"
	"os"

	"Hammerforce/internal/calc/penetration"
	"Hammerforce/internal/calc/report"
	"Hammerforce/internal/units"

	"gopkg.in/yaml.v3"
)

// scenario is a strike file. With units "display" (the default) the strike is read
// in form units and checked against the form limits; with "si" it is used as is.
type scenario struct {
	Units   string    `yaml:"units"`
	Title   string    `yaml:"title"`
	Project string    `yaml:"project"`
	Author  string    `yaml:"author"`
	Notes   string    `yaml:"notes"`
	Strike  yaml.Node `yaml:"strike"`
}

func (s scenario) meta() report.Meta {
	return report.Meta{Title: s.Title, Project: s.Project, Author: s.Author, Notes: s.Notes}
}

func loadScenario(path string) (scenario, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return scenario{}, err
	}
	var s scenario
	if err := yaml.Unmarshal(data, &s); err != nil {
		return scenario{}, fmt.Errorf("parse %s: %w", path, err)
	}
	if s.Strike.Kind == 0 {
		return scenario{}, fmt.Errorf("%s: no strike", path)
	}
	return s, nil
}

// run returns the SI input actually used together with the breakdown.
func (s scenario) run(opts ...penetration.Option) (penetration.SIInput, penetration.Result, error) {
	switch s.Units {
	case "", "display":
		var ui units.FormInput
		if err := s.Strike.Decode(&ui); err != nil {
			return penetration.SIInput{}, penetration.Result{}, fmt.Errorf("decode strike: %w", err)
		}
		res, err := units.Compute(ui, opts...)
		return units.NormalizeToSI(ui), res, err
	case "si":
		var in penetration.SIInput
		if err := s.Strike.Decode(&in); err != nil {
			return penetration.SIInput{}, penetration.Result{}, fmt.Errorf("decode strike: %w", err)
		}
		res, err := penetration.Calculate(in, opts...)
		return in, res, err
	default:
		return penetration.SIInput{}, penetration.Result{}, fmt.Errorf("unknown units %q, want display or si", s.Units)
	}
}
