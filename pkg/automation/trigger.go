package automation

//go:generate go run github.com/dmarkham/enumer -type Trigger -trimprefix Trigger -transform lower -json -yaml -output trigger.gen.go

// Trigger records why a task run was started. Its String form is what the
// check task receives as its last argument.
type Trigger int

const (
	// TriggerManual is a run requested by a user
	TriggerManual Trigger = iota
	// TriggerTiming is a run fired by the periodic scheduler
	TriggerTiming
)
