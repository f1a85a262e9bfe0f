package order

// FlowSettings are the per-store stage toggles. pending and preparing can each
// be switched off; ready is always present and delivered is reached by an
// explicit deliver action, never by Next.
type FlowSettings struct {
	PendingEnabled   bool
	PreparingEnabled bool
}

func DefaultFlowSettings() FlowSettings {
	return FlowSettings{PendingEnabled: true, PreparingEnabled: true}
}

// Flow is the ordered pipeline of enabled stages ending in ready.
type Flow struct {
	stages []Status
}

func NewFlow(settings FlowSettings) Flow {
	stages := make([]Status, 0, 3)
	if settings.PendingEnabled {
		stages = append(stages, StatusPending)
	}
	if settings.PreparingEnabled {
		stages = append(stages, StatusPreparing)
	}
	stages = append(stages, StatusReady)
	return Flow{stages: stages}
}

// InitialStatus is the first enabled stage.
func (f Flow) InitialStatus() Status {
	return f.stages[0]
}

// Next returns the stage following current in the enabled subsequence. The
// second return is false when current is terminal: ready, or a stage that was
// disabled after the order reached it. Such orders stay where they are; no
// recovery is attempted.
func (f Flow) Next(current Status) (Status, bool) {
	for i, s := range f.stages {
		if s != current {
			continue
		}
		if i+1 >= len(f.stages) {
			return current, false
		}
		return f.stages[i+1], true
	}
	return current, false
}

// Stages is the active flow as rendered by queue views: enabled stages with
// ready always appended.
func (f Flow) Stages() []Status {
	out := make([]Status, len(f.stages))
	copy(out, f.stages)
	return out
}
