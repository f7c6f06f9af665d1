package display

// Task represents one long-running resolution step that can be monitored,
// such as a clone or an archive download.
type Task interface {
	// SetStage announces the current stage of the task (e.g. "Download",
	// "Extract") and the target it works on.
	SetStage(name string, target string)
	// Progress updates the completion percentage (0-100) and status message.
	Progress(percent int, message string)
	// Done marks the task as completed. The caller that started the task
	// must call it exactly once.
	Done()
}

// Display handles the launcher's user-facing output.
type Display interface {
	// StartTask creates and returns a new tracked Task.
	StartTask(name string) Task
	// Log adds a secondary message, shown only in verbose mode.
	Log(msg string)
	// Print adds a primary output message, always shown.
	Print(msg string)
	// SetVerbose enables or disables verbose output.
	SetVerbose(v bool)
	// Close ensures any pending output is terminated cleanly.
	Close()
}

// NopTask returns a Task that discards all updates.
func NopTask() Task {
	return nopTask{}
}

type nopTask struct{}

func (nopTask) SetStage(name string, target string)  {}
func (nopTask) Progress(percent int, message string) {}
func (nopTask) Done()                                {}
