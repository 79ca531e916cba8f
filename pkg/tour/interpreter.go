package tour

import (
	"fmt"
	"log/slog"

	"github.com/jzx17/uiwait/pkg/driver"
	"github.com/jzx17/uiwait/pkg/types"
)

// UI is the navigation surface the interpreter drives. Clicks retry through
// transitions and element waits block at the job-completion timeout; the
// interpreter itself never retries a step.
type UI interface {
	// ClickSelector waits for the selector to be clickable and clicks it
	ClickSelector(selector string) error
	// WaitForSelector blocks until the selector is present
	WaitForSelector(selector string) (driver.Element, error)
	// SleepSeconds pauses before a step with a sleep override
	SleepSeconds(seconds float64)
}

// Options adjust one run of a script.
type Options struct {
	// SkipTitles names steps to skip entirely: no clicks, no waits, no
	// callback invocation
	SkipTitles []string

	// SleepOnTitles maps a step title to seconds slept before executing it
	SleepOnTitles map[string]float64

	// Callback is invoked for every executed step; nil means NullCallback
	Callback Callback
}

// Interpreter executes tour scripts strictly sequentially on one UI session.
type Interpreter struct {
	ui  UI
	log *slog.Logger
}

// NewInterpreter creates an interpreter for the given UI session.
func NewInterpreter(ui UI, log *slog.Logger) *Interpreter {
	if log == nil {
		log = slog.Default()
	}
	return &Interpreter{ui: ui, log: log}
}

// Run executes the script's steps in order, preserving original indices.
// The first failing step aborts the run with a step error wrapping the
// cause; there is no partial-step rollback.
func (i *Interpreter) Run(script *Script, opts Options) error {
	callback := opts.Callback
	if callback == nil {
		callback = NullCallback{}
	}

	skip := make(map[string]bool, len(opts.SkipTitles))
	for _, title := range opts.SkipTitles {
		skip[title] = true
	}

	for index, step := range script.Steps {
		if step.Title != "" && skip[step.Title] {
			i.log.Debug("skipping tour step", "index", index, "title", step.Title)
			continue
		}

		if seconds, ok := opts.SleepOnTitles[step.Title]; ok {
			i.ui.SleepSeconds(seconds)
		}

		if err := i.runStep(step, index, callback); err != nil {
			return types.NewStepError(step.Title, index, err)
		}
	}
	return nil
}

func (i *Interpreter) runStep(step Step, index int, callback Callback) error {
	for _, selector := range step.Preclick {
		i.log.Debug("tour preclick", "index", index, "selector", selector)
		if err := i.ui.ClickSelector(selector); err != nil {
			return fmt.Errorf("preclick %q: %w", selector, err)
		}
	}

	var element driver.Element
	if step.Element != "" {
		i.log.Debug("tour element wait", "index", index, "selector", step.Element)
		found, err := i.ui.WaitForSelector(step.Element)
		if err != nil {
			return fmt.Errorf("element %q: %w", step.Element, err)
		}
		element = found
	}

	if step.TextInsert != "" {
		if element == nil {
			return fmt.Errorf("textinsert without an element to type into")
		}
		if err := element.SendKeys(step.TextInsert); err != nil {
			return fmt.Errorf("textinsert into %q: %w", step.Element, err)
		}
	}

	callback.HandleStep(step, index)

	for _, selector := range step.Postclick {
		i.log.Debug("tour postclick", "index", index, "selector", selector)
		if err := i.ui.ClickSelector(selector); err != nil {
			return fmt.Errorf("postclick %q: %w", selector, err)
		}
	}
	return nil
}
