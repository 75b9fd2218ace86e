package core

// RuntimeConfig contains configuration passed to a frontend at initialization.
type RuntimeConfig struct {
	ScreenW  int   // Screen width in frontend units (cells or pixels)
	ScreenH  int   // Screen height in frontend units
	TickRate int   // Frames per second requested from the frontend (default 60)
	Seed     int64 // RNG seed for deterministic courses
}

// Phase is the lifecycle state of a run.
type Phase int

const (
	PhaseIdle Phase = iota
	PhaseRunning
	PhaseOver
)

// String returns a human-readable name for the phase.
func (p Phase) String() string {
	switch p {
	case PhaseIdle:
		return "Idle"
	case PhaseRunning:
		return "Running"
	case PhaseOver:
		return "Over"
	default:
		return "Unknown"
	}
}

// GameState represents the current state of a run.
type GameState struct {
	Phase   Phase   // Idle, Running or Over
	Elapsed float64 // Seconds survived in the current run
	Speed   float64 // Current scroll speed in units per second
}

// Event is something notable that happened during a tick.
type Event int

const (
	EventStarted Event = iota
	EventJumped
	EventLanded
	EventPickedUp
	EventCrashed
)

// String returns a human-readable name for the event.
func (e Event) String() string {
	switch e {
	case EventStarted:
		return "Started"
	case EventJumped:
		return "Jumped"
	case EventLanded:
		return "Landed"
	case EventPickedUp:
		return "PickedUp"
	case EventCrashed:
		return "Crashed"
	default:
		return "Unknown"
	}
}

// StepResult is returned after each simulation tick.
// Contains the updated state and any events that occurred.
type StepResult struct {
	State  GameState
	Events []Event
	Cause  string // Obstacle kind that ended the run, set with EventCrashed
}

// Has returns true if the event occurred during the tick.
func (r StepResult) Has(e Event) bool {
	for _, ev := range r.Events {
		if ev == e {
			return true
		}
	}
	return false
}
