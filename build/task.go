package build

import (
	"fmt"
	"slices"

	"github.com/goyek/goyek/v3"
)

// Kind is the structural type of a task.
// Plugins match tasks by kind rather than by name, so user-defined tasks of
// the same kind are configured too.
type Kind int

const (
	// KindDefault is a task without a structural role.
	KindDefault Kind = iota
	// KindJavaCompile is a javac invocation.
	KindJavaCompile
	// KindKotlinCompile is a kotlinc invocation.
	KindKotlinCompile
	// KindDelete removes build outputs.
	KindDelete
)

func (k Kind) String() string {
	switch k {
	case KindJavaCompile:
		return "java-compile"
	case KindKotlinCompile:
		return "kotlin-compile"
	case KindDelete:
		return "delete"
	default:
		return "default"
	}
}

// IsCompile reports whether the kind runs a compiler.
func (k Kind) IsCompile() bool {
	return k == KindJavaCompile || k == KindKotlinCompile
}

// TaskSpec describes a task to register.
type TaskSpec struct {
	// Name is the CLI name of the task (e.g., "compileJava").
	Name string
	// Description is the help text shown by goyek.
	Description string
	// Group is a free-form grouping label (e.g., "build", "napt").
	Group string
	// Kind is the structural type used for matching.
	Kind Kind
	// Action runs when the task executes. May be nil for aggregate tasks.
	Action func(a *goyek.A)
}

// Task is a registered task: a goyek task plus the metadata plugins match on.
type Task struct {
	project *Project
	defined *goyek.DefinedTask

	kind        Kind
	group       string
	description string
	action      func(a *goyek.A)
	onlyIf      []func() bool

	compile *CompileOptions
}

// Name returns the task name.
func (t *Task) Name() string { return t.defined.Name() }

// Kind returns the structural type of the task.
func (t *Task) Kind() Kind { return t.kind }

// Group returns the task group label.
func (t *Task) Group() string { return t.group }

// Description returns the task help text.
func (t *Task) Description() string { return t.description }

// Project returns the project the task belongs to.
func (t *Task) Project() *Project { return t.project }

// Defined returns the underlying goyek task.
func (t *Task) Defined() *goyek.DefinedTask { return t.defined }

// CompileOptions returns the compiler configuration of a compile task,
// or nil for other kinds.
func (t *Task) CompileOptions() *CompileOptions { return t.compile }

// SetAction replaces the task action.
func (t *Task) SetAction(action func(a *goyek.A)) {
	t.action = action
}

// OnlyIf adds a predicate evaluated at execution time.
// If any predicate returns false the task is skipped.
func (t *Task) OnlyIf(pred func() bool) {
	t.onlyIf = append(t.onlyIf, pred)
}

// DependsOn makes t run after others. Adding an existing edge is a no-op.
func (t *Task) DependsOn(others ...*Task) {
	deps := slices.Clone(t.defined.Deps())
	for _, o := range others {
		if o == nil || o == t || slices.Contains(deps, o.defined) {
			continue
		}
		deps = append(deps, o.defined)
	}
	t.defined.SetDeps(deps)
}

// Dependencies returns the names of the tasks t depends on.
func (t *Task) Dependencies() []string {
	deps := t.defined.Deps()
	names := make([]string, 0, len(deps))
	for _, d := range deps {
		names = append(names, d.Name())
	}
	return names
}

func (t *Task) run(a *goyek.A) {
	for _, pred := range t.onlyIf {
		if !pred() {
			a.Skipf("%s: condition not met", t.Name())
		}
	}
	if t.action != nil {
		t.action(a)
	}
}

type taskHook struct {
	match func(*Task) bool
	fn    func(*Task)
}

// TaskContainer holds a project's tasks.
type TaskContainer struct {
	project *Project
	tasks   []*Task
	byName  map[string]*Task
	hooks   []taskHook
}

func newTaskContainer(p *Project) *TaskContainer {
	return &TaskContainer{
		project: p,
		byName:  make(map[string]*Task),
	}
}

// Register defines a new task and runs every matching configuration callback on it.
// It panics if the name is empty or already registered.
func (c *TaskContainer) Register(spec TaskSpec) *Task {
	if spec.Name == "" {
		panic("build.Register: name is required")
	}
	if _, ok := c.byName[spec.Name]; ok {
		panic(fmt.Sprintf("build.Register: task %q already registered", spec.Name))
	}

	t := &Task{
		project:     c.project,
		kind:        spec.Kind,
		group:       spec.Group,
		description: spec.Description,
		action:      spec.Action,
	}
	if spec.Kind.IsCompile() {
		t.compile = &CompileOptions{}
	}
	t.defined = c.project.flow.Define(goyek.Task{
		Name:   spec.Name,
		Usage:  spec.Description,
		Action: t.run,
	})

	c.tasks = append(c.tasks, t)
	c.byName[spec.Name] = t
	c.project.logger.Debug().
		Str("task", spec.Name).
		Stringer("kind", spec.Kind).
		Msg("registered task")

	for _, h := range c.hooks {
		if h.match(t) {
			h.fn(t)
		}
	}
	return t
}

// Get returns the task with the given name.
func (c *TaskContainer) Get(name string) (*Task, bool) {
	t, ok := c.byName[name]
	return t, ok
}

// All returns the registered tasks in registration order.
func (c *TaskContainer) All() []*Task {
	return slices.Clone(c.tasks)
}

// Matching calls fn for every task matching match: the ones registered now
// and every one registered later.
func (c *TaskContainer) Matching(match func(*Task) bool, fn func(*Task)) {
	existing := slices.Clone(c.tasks)
	c.hooks = append(c.hooks, taskHook{match: match, fn: fn})
	for _, t := range existing {
		if match(t) {
			fn(t)
		}
	}
}

// WithKind calls fn for every task, present and future, of one of the given kinds.
func (c *TaskContainer) WithKind(fn func(*Task), kinds ...Kind) {
	c.Matching(func(t *Task) bool {
		return slices.Contains(kinds, t.kind)
	}, fn)
}
