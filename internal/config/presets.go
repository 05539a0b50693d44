package config

import (
	"sort"

	"github.com/san-kum/physcalc/internal/topic"
)

// Presets holds named input sets per topic. Ohm's law presets omit the
// quantity to solve for.
var Presets = map[string]map[string]topic.Inputs{
	"projectile": {
		"max-range":  {"v0": 20, "angle": 45},
		"lob":        {"v0": 20, "angle": 75},
		"line-drive": {"v0": 40, "angle": 15},
		"cannon":     {"v0": 250, "angle": 30},
	},
	"newton": {
		"car":     {"force": 4000, "mass": 1200},
		"falling": {"force": 9.81, "mass": 1},
		"rocket":  {"force": 7.6e6, "mass": 5.5e5},
	},
	"coulomb": {
		"micro":    {"q1": 1e-6, "q2": 2e-6, "distance": 0.1},
		"hydrogen": {"q1": 1.602e-19, "q2": -1.602e-19, "distance": 5.29e-11},
	},
	"ohm": {
		"resistor": {"voltage": 10, "current": 2},
		"bulb":     {"voltage": 230, "resistance": 529},
		"led":      {"current": 0.02, "resistance": 150},
	},
	"circular": {
		"merry-go-round": {"speed": 3, "radius": 2},
		"curve":          {"speed": 25, "radius": 100},
	},
	"lorentz": {
		"electron": {"charge": 1.602e-19, "speed": 1e6, "field": 0.5, "angle": 90},
		"oblique":  {"charge": 1e-6, "speed": 300, "field": 2, "angle": 30},
	},
	"capacitor": {
		"micro": {"capacitance": 1e-6, "voltage": 5},
		"flash": {"capacitance": 1.5e-4, "voltage": 330},
	},
	"blackbody": {
		"room": {"temperature": 300},
		"sun":  {"temperature": 5778},
		"lava": {"temperature": 1400},
	},
}

// GetPreset returns a copy of the named preset, or nil.
func GetPreset(topicName, preset string) topic.Inputs {
	topicPresets, ok := Presets[topicName]
	if !ok {
		return nil
	}
	in, ok := topicPresets[preset]
	if !ok {
		return nil
	}
	return in.Clone()
}

func ListPresets(topicName string) []string {
	topicPresets, ok := Presets[topicName]
	if !ok {
		return nil
	}
	names := make([]string, 0, len(topicPresets))
	for name := range topicPresets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
