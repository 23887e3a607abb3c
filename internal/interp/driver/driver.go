// Package driver is the program-entry routine: it loads the class
// registry from an AST, locates Main.run, and runs it.
package driver

import (
	"github.com/sol25-lang/sol25/internal/ast"
	"github.com/sol25-lang/sol25/internal/classes"
	"github.com/sol25-lang/sol25/internal/interp/engine"
	"github.com/sol25-lang/sol25/internal/interp/errors"
	"github.com/sol25-lang/sol25/internal/runtime"
	"github.com/sol25-lang/sol25/internal/trace"
)

// mainClass and runSelector name the fixed program entry point: the Main
// class must exist and define a parameterless method run.
const (
	mainClass   = "Main"
	runSelector = "run"
)

// Options configures one Run invocation.
type Options struct {
	// MaxCallDepth bounds Frame Stack growth; see config.RunConfig.
	MaxCallDepth int
	// Trace, when non-nil, receives one Event per dispatch decision.
	Trace *trace.Recorder
}

// Run loads programNode's classes into a fresh Registry, locates
// Main.run, and executes it against io. It returns the classified error,
// if any; a nil return means the program completed successfully (exit
// code 0).
func Run(programNode ast.Node, io engine.IO, opts Options) (rerr *errors.RuntimeError) {
	defer func() {
		if r := recover(); r != nil {
			me, ok := r.(*ast.MalformedError)
			if !ok {
				panic(r)
			}
			rerr = errors.Internal("%s", me.Error())
		}
	}()

	registry := classes.NewRegistry()
	if err := classes.Load(registry, programNode); err != nil {
		return errors.Internal("%s", err.Error())
	}

	if _, ok := registry.Find(mainClass); !ok {
		return errors.MissingMainRun("no class named \"Main\"")
	}

	_, body, ok := registry.FindMethod(mainClass, runSelector)
	if !ok {
		return errors.MissingMainRun("Main has no method \"run\"")
	}
	if len(body.ChildrenByTag("parameter")) != 0 {
		return errors.MissingMainRun("Main.run must take no parameters")
	}

	interp := engine.New(registry, io, opts.MaxCallDepth)
	interp.Trace = opts.Trace

	self := runtime.NewObject(mainClass)
	_, err := interp.Send(self, runSelector, nil)
	return err
}
