package main

import (
	"fmt"
	"os"
	"sort"

	"gopkg.in/yaml.v3"

	matcalc "github.com/matsci/matcalc-go/pkg/matcalc"
)

// Scenario describes one batch calculation: setup commands, a fixed
// composition, a temperature sweep, and the variables to report at each
// point.
type Scenario struct {
	Setup        []string         `yaml:"setup"`
	Composition  Composition      `yaml:"composition"`
	Temperatures TemperatureSweep `yaml:"temperatures"`
	Variables    []string         `yaml:"variables"`
}

// Composition holds per-element fractions, keyed by element symbol.
type Composition struct {
	Mole   map[string]float64 `yaml:"mole"`
	Weight map[string]float64 `yaml:"weight"`
	Site   map[string]float64 `yaml:"site"`
}

// TemperatureSweep is either an explicit list of temperatures or a linear
// range. List wins when both are given.
type TemperatureSweep struct {
	List  []float64 `yaml:"list"`
	From  float64   `yaml:"from"`
	To    float64   `yaml:"to"`
	Steps int       `yaml:"steps"`
}

// Values expands the sweep into concrete temperatures in Kelvin.
func (t TemperatureSweep) Values() []float64 {
	if len(t.List) > 0 {
		return t.List
	}
	if t.Steps <= 1 {
		return []float64{t.From}
	}
	out := make([]float64, t.Steps)
	step := (t.To - t.From) / float64(t.Steps-1)
	for i := range out {
		out[i] = t.From + float64(i)*step
	}
	return out
}

// LoadScenario reads and validates a scenario file.
func LoadScenario(path string) (*Scenario, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var sc Scenario
	if err := yaml.Unmarshal(data, &sc); err != nil {
		return nil, fmt.Errorf("parse scenario %q: %w", path, err)
	}
	if len(sc.Variables) == 0 {
		return nil, fmt.Errorf("scenario %q: no variables to report", path)
	}
	if len(sc.Temperatures.Values()) == 0 {
		return nil, fmt.Errorf("scenario %q: empty temperature sweep", path)
	}
	return &sc, nil
}

// apply issues the setup commands and enters the composition. Element order
// is sorted for reproducible command sequences.
func (sc *Scenario) apply(s *matcalc.Session) error {
	for _, cmd := range sc.Setup {
		if err := s.ExecuteCommand(cmd); err != nil {
			return err
		}
	}
	type setter struct {
		fractions map[string]float64
		set       func(symbol string, value float64) error
	}
	for _, st := range []setter{
		{sc.Composition.Mole, s.SetElementMoleFraction},
		{sc.Composition.Weight, s.SetElementWeightFraction},
		{sc.Composition.Site, s.SetElementSiteFraction},
	} {
		symbols := make([]string, 0, len(st.fractions))
		for sym := range st.fractions {
			symbols = append(symbols, sym)
		}
		sort.Strings(symbols)
		for _, sym := range symbols {
			if err := st.set(sym, st.fractions[sym]); err != nil {
				return err
			}
		}
	}
	return nil
}
