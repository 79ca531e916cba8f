package wait

import "time"

// Type is a named category of expected delay with a default length.
type Type struct {
	Name    string
	Default time.Duration
}

// Default wait lengths should make sense for a development server under low
// load. Lengths for production servers are scaled up with the session
// multiplier. The catalog is fixed at process start and immutable.
var (
	// Render covers rendering a form and registering callbacks.
	Render = Type{Name: "render", Default: 1 * time.Second}
	// Transition covers fade in, fade out, etc.
	Transition = Type{Name: "transition", Default: 5 * time.Second}
	// Popup covers toast popup and dismissal.
	Popup = Type{Name: "popup", Default: 15 * time.Second}
	// DatabaseOperation covers creating a record and loading it into a panel.
	DatabaseOperation = Type{Name: "db-operation", Default: 10 * time.Second}
	// JobCompletion covers remote jobs finishing in a default environment.
	JobCompletion = Type{Name: "job-completion", Default: 30 * time.Second}
	// EnvironmentSpawn covers an interactive environment spawning.
	EnvironmentSpawn = Type{Name: "environment-spawn", Default: 30 * time.Second}
	// Search covers remote search round trips.
	Search = Type{Name: "search", Default: 30 * time.Second}
	// Install covers repository installation.
	Install = Type{Name: "install", Default: 60 * time.Second}
	// Poll is the panel polling duration.
	Poll = Type{Name: "poll", Default: 3 * time.Second}
)

// DefaultType is a moderate wait type for operations that don't specify one.
var DefaultType = DatabaseOperation
