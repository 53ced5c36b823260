package napt

import (
	"sync/atomic"

	"github.com/fredrikaverpil/napt/build"
	"github.com/goyek/goyek/v3"
)

const (
	// CreateTriggerTaskName is the name of the task writing the trigger.
	CreateTriggerTaskName = "createNaptTrigger"
	// CleanTriggerTaskName is the name of the task removing the trigger.
	CleanTriggerTaskName = "cleanNaptTrigger"
)

// TaskState is the lifecycle state of a trigger task within one build.
type TaskState int32

// Trigger task states. A task that never ran stays registered.
const (
	StateRegistered TaskState = iota
	StateSkipped
	StateExecuted
)

func (s TaskState) String() string {
	switch s {
	case StateSkipped:
		return "skipped"
	case StateExecuted:
		return "executed"
	default:
		return "registered"
	}
}

// TriggerTask is a registered trigger task and its lifecycle state.
type TriggerTask struct {
	Task  *build.Task
	state atomic.Int32
}

// State returns the current lifecycle state.
func (t *TriggerTask) State() TaskState {
	return TaskState(t.state.Load())
}

func (t *TriggerTask) setState(s TaskState) {
	t.state.Store(int32(s))
}

// BindTriggerCreation registers the create task and makes every compile task,
// present and future, depend on it.
func BindTriggerCreation(p *build.Project, ext Extension) *TriggerTask {
	tt := &TriggerTask{}
	tt.Task = p.Tasks().Register(build.TaskSpec{
		Name:        CreateTriggerTaskName,
		Description: "Creates NaptTrigger.java in order to trigger NAPT javac plugin",
		Group:       TaskGroup,
		Action: func(a *goyek.A) {
			d := Resolve(projectContext(p, ext))
			if err := WriteTrigger(d); err != nil {
				a.Fatal(err)
			}
			tt.setState(StateExecuted)
			a.Logf("Wrote %s", d.Path)
		},
	})
	tt.Task.OnlyIf(func() bool {
		if projectContext(p, ext).GenerateTrigger {
			return true
		}
		tt.setState(StateSkipped)
		return false
	})

	create := tt.Task
	p.Tasks().Matching(func(t *build.Task) bool {
		return t.Kind().IsCompile()
	}, func(t *build.Task) {
		t.DependsOn(create)
		p.Logger().Debug().
			Str("task", t.Name()).
			Str("dependency", create.Name()).
			Msg("compile task depends on trigger creation")
	})
	return tt
}

// BindTriggerCleaning registers the clean task and makes every cleanup task,
// present and future, depend on it.
func BindTriggerCleaning(p *build.Project, ext Extension) *TriggerTask {
	tt := &TriggerTask{}
	tt.Task = p.Tasks().Register(build.TaskSpec{
		Name:        CleanTriggerTaskName,
		Description: "Removes NaptTrigger.java if present",
		Group:       TaskGroup,
		Action: func(a *goyek.A) {
			d := Resolve(projectContext(p, ext))
			if err := RemoveTrigger(d); err != nil {
				a.Fatal(err)
			}
			tt.setState(StateExecuted)
		},
	})

	clean := tt.Task
	p.Tasks().Matching(isCleanTask, func(t *build.Task) {
		t.DependsOn(clean)
		p.Logger().Debug().
			Str("task", t.Name()).
			Str("dependency", clean.Name()).
			Msg("cleanup task depends on trigger cleaning")
	})
	return tt
}

// isCleanTask matches delete tasks; tasks without a kind fall back to the
// conventional "clean" name.
func isCleanTask(t *build.Task) bool {
	if t.Kind() == build.KindDelete {
		return true
	}
	return t.Kind() == build.KindDefault && t.Name() == "clean"
}
