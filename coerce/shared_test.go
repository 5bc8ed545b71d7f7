package coerce

import (
	"fmt"
	"testing"
)

// Test fixtures: a small measurement domain spread over three modules so
// that lazy loading, requirements and external declarations all get
// exercised.
//
//	test/units     declares the metric types and their conversions
//	test/imperial  requires units, declares miles and exports two functions
//	test/glue      declares externals by name only

type meters struct{ Value float64 }

type feet struct{ Value float64 }

type yards struct{ Value float64 }

type inches struct{ Value float64 }

type miles struct{ Value float64 }

type rogue struct{}

// fathoms is deliberately never declared in any module.
type fathoms struct{ Value float64 }

type distance interface{ Meters() float64 }

func (m meters) Meters() float64 { return m.Value }

func (m meters) AsFeet() feet { return feet{Value: m.Value * 3.28084} }

func feetFromMeters(m meters) feet { return feet{Value: m.Value * 3.28084} }

func yardsFromMeters(m meters) yards { return yards{Value: m.Value * 1.09361} }

func metersAsInches(m meters) inches { return inches{Value: m.Value * 39.3701} }

func milesFromMeters(m meters) miles { return miles{Value: m.Value / 1609.344} }

func inchesFromMeters(m meters) inches { return inches{Value: m.Value * 39.3701} }

// unitsModule declares meters to feet both as a push and a pull so that
// resolution precedence is observable.
func unitsModule() *Module {
	m := NewModule("test/units")
	Declare[meters](m, "units.Meters")
	Declare[feet](m, "units.Feet")
	Declare[yards](m, "units.Yards")
	Declare[inches](m, "units.Inches")
	Declare[distance](m, "units.Distance")
	Push[meters, feet](m, meters.AsFeet)
	Pull[feet, meters](m, feetFromMeters)
	Pull[yards, meters](m, yardsFromMeters)
	Push[meters, inches](m, metersAsInches)
	return m
}

func imperialModule() *Module {
	m := NewModule("test/imperial").Requires("test/units")
	Declare[miles](m, "units.Miles")
	Pull[miles, meters](m, milesFromMeters)
	Export[meters, miles](m, "MilesFromMeters", milesFromMeters)
	Export[meters, inches](m, "InchesFromMeters", inchesFromMeters)
	return m
}

// glueModule carries nothing but external declarations; the pair meters to
// inches also has a push in units, so externals outranking declared
// conversions is observable.
func glueModule() *Module {
	m := NewModule("test/glue")
	External(m, "units.Meters", "units.Miles", "test/imperial", "MilesFromMeters")
	External(m, "units.Meters", "units.Inches", "test/imperial", "InchesFromMeters")
	return m
}

// rogueModule registers dynamic adapters that misbehave in distinct ways.
func rogueModule() *Module {
	m := NewModule("test/rogue").Requires("test/units")
	Declare[rogue](m, "units.Rogue")
	PushAdapter(m, "units.Rogue", "units.Meters", func(value any) (any, error) {
		return "nonsense", nil
	})
	PushAdapter(m, "units.Rogue", "units.Feet", func(value any) (any, error) {
		return nil, nil
	})
	PushAdapter(m, "units.Rogue", "units.Yards", func(value any) (any, error) {
		return nil, fmt.Errorf("conversion backend unavailable")
	})
	return m
}

// brokenModule registers fine but fails to load: its push references a type
// no module declares.
func brokenModule() *Module {
	m := NewModule("test/broken")
	Push[fathoms, meters](m, func(f fathoms) meters { return meters{Value: f.Value * 1.8288} })
	return m
}

func newTestService(t *testing.T, options ...Option) *Service {
	t.Helper()
	options = append([]Option{WithModules(unitsModule(), imperialModule(), glueModule())}, options...)
	svc, err := New(options...)
	if err != nil {
		t.Fatalf("failed to create service: %v", err)
	}
	return svc
}

func moduleLoaded(t *testing.T, svc *Service, name string) bool {
	t.Helper()
	for _, info := range svc.Registry().Modules() {
		if info.Name == name {
			return info.Loaded
		}
	}
	t.Fatalf("module %q is not registered", name)
	return false
}
