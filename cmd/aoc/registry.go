package main

import (
	"github.com/katalvlaran/gridlab/antenna"
	"github.com/katalvlaran/gridlab/calibrate"
	"github.com/katalvlaran/gridlab/garden"
	"github.com/katalvlaran/gridlab/lists"
	"github.com/katalvlaran/gridlab/ordering"
	"github.com/katalvlaran/gridlab/patrol"
	"github.com/katalvlaran/gridlab/robots"
	"github.com/katalvlaran/gridlab/solver"
	"github.com/katalvlaran/gridlab/trail"
	"github.com/katalvlaran/gridlab/wordsearch"
)

// newRegistry registers every implemented day.
func newRegistry() (*solver.Registry, error) {
	reg := solver.NewRegistry()
	err := reg.Register(
		lists.Solver{},
		wordsearch.Solver{},
		ordering.Solver{},
		patrol.Solver{},
		calibrate.Solver{},
		antenna.Solver{},
		trail.Solver{},
		garden.Solver{},
		robots.Solver{},
	)
	return reg, err
}
