// Package topic exposes the formula library through named topics.
//
// A [Topic] pairs one formula with its named parameter set. The parameter
// set carries the bounds and defaults an input form enforces; the formulas
// themselves do not check them. [Registry.Solve] validates an [Inputs] map
// against the topic and dispatches it:
//
//	reg := topic.NewRegistry(formula.DefaultConstants(), logger)
//	res, err := reg.Solve("ohm", topic.Inputs{"voltage": 10, "current": 2})
//
// A parameter missing from Inputs is absent. Only Ohm's law accepts absent
// parameters.
package topic
