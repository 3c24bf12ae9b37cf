package form

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"sync"

	"github.com/goliatone/go-surveyform/pkg/model"
	"github.com/goliatone/go-surveyform/pkg/validation"
)

// Snapshot is a copy of the controller state handed to listeners and
// renderers.
type Snapshot struct {
	Values      model.Values
	Errors      model.ValidationErrors
	Submitted   bool
	SubmitCount int
}

// Listener observes every state mutation. It runs synchronously after the
// mutation completes and before the mutating call returns.
type Listener func(Snapshot)

// Option configures a Controller.
type Option func(*Controller)

// WithListener subscribes fn for the lifetime of the controller.
func WithListener(fn Listener) Option {
	return func(c *Controller) {
		if fn != nil {
			c.subscribe(fn)
		}
	}
}

// Controller owns the values and validation errors of one form instance. It
// follows the submit-then-revalidate model: nothing is validated while the
// user types until the first submit attempt, after which each Set
// re-validates the touched field.
type Controller struct {
	mu sync.Mutex

	schema    model.FormSchema
	order     []string
	fields    map[string]registration
	values    model.Values
	errors    model.ValidationErrors
	submitted bool
	count     int

	listeners map[int]Listener
	nextID    int
}

// New checks the schema and registers every field. Schema problems are
// returned as *validation.ConfigError.
func New(form model.FormSchema, options ...Option) (*Controller, error) {
	if err := validation.CheckSchema(form).Err(); err != nil {
		return nil, err
	}

	c := &Controller{
		schema:    form.Clone(),
		fields:    make(map[string]registration, len(form.Fields)),
		values:    make(model.Values),
		errors:    make(model.ValidationErrors),
		listeners: make(map[int]Listener),
	}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(c)
	}

	for _, field := range c.schema.Fields {
		if err := c.registerLocked(field); err != nil {
			return nil, err
		}
	}
	return c, nil
}

// Schema returns a copy of the schema, including fields added by Register.
func (c *Controller) Schema() model.FormSchema {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.schema.Clone()
}

// Register adds a field after construction. The field is checked the same
// way New checks the schema and is appended to Schema, so renderers and the
// submission contract see it. Malformed fields return *validation.ConfigError.
func (c *Controller) Register(field model.Field) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if _, exists := c.fields[field.ID]; exists {
		return fmt.Errorf("%w: %q", ErrDuplicateField, field.ID)
	}
	if err := validation.CheckSchema(model.FormSchema{Fields: []model.Field{field}}).Err(); err != nil {
		return err
	}
	if err := c.registerLocked(field); err != nil {
		return err
	}
	c.schema.Fields = append(c.schema.Fields, field.Clone())
	return nil
}

// registerLocked attaches the field's constraints: required, and for
// free-text kinds with a pattern, the pattern rule.
func (c *Controller) registerLocked(field model.Field) error {
	reg, err := newRegistration(field)
	if err != nil {
		return err
	}
	if _, exists := c.fields[field.ID]; exists {
		return fmt.Errorf("%w: %q", ErrDuplicateField, field.ID)
	}
	c.fields[field.ID] = reg
	c.order = append(c.order, field.ID)
	return nil
}

// Set records a value for one field. Select fields only accept declared
// option values or "" (unset).
func (c *Controller) Set(id, value string) error {
	c.mu.Lock()
	reg, ok := c.fields[id]
	if !ok {
		c.mu.Unlock()
		return fmt.Errorf("%w: %q", ErrUnknownField, id)
	}
	if !reg.accepts(value) {
		c.mu.Unlock()
		return fmt.Errorf("%w: %q for field %q", ErrUndeclaredOption, value, id)
	}

	c.values[id] = value
	if c.submitted {
		if fieldErr, valid := reg.check(value); valid {
			delete(c.errors, id)
		} else {
			c.errors[id] = fieldErr
		}
	}
	snap := c.snapshotLocked()
	c.mu.Unlock()

	c.notify(snap)
	return nil
}

// Value returns the current value of a field, falling back to the select
// default and then "".
func (c *Controller) Value(id string) string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.valueLocked(id)
}

// Values returns a copy holding every registered field id.
func (c *Controller) Values() model.Values {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.valuesLocked()
}

// Errors returns a copy of the current error map.
func (c *Controller) Errors() model.ValidationErrors {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.errors.Clone()
}

// ErrorText returns the message displayed for a field, or "" when the field
// is valid.
func (c *Controller) ErrorText(id string) string {
	c.mu.Lock()
	defer c.mu.Unlock()
	fieldErr, ok := c.errors[id]
	if !ok {
		return ""
	}
	return fieldErr.Text(c.fields[id].field.Label)
}

// Snapshot returns a copy of the full state.
func (c *Controller) Snapshot() Snapshot {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.snapshotLocked()
}

// Validate evaluates every registered field and replaces the error map.
func (c *Controller) Validate() model.ValidationErrors {
	c.mu.Lock()
	c.validateLocked()
	errs := c.errors.Clone()
	snap := c.snapshotLocked()
	c.mu.Unlock()

	c.notify(snap)
	return errs
}

// HandleSubmit validates the form and, when every field passes, hands the
// full value map to handler exactly once and resets the state. When any field
// fails it returns ErrValidationFailed and handler is not called. Handler
// errors are returned wrapped and the values are kept.
func (c *Controller) HandleSubmit(ctx context.Context, handler SubmitHandler) error {
	if handler == nil {
		return ErrNoHandler
	}
	if err := ctx.Err(); err != nil {
		return err
	}

	c.mu.Lock()
	c.submitted = true
	c.count++
	c.validateLocked()
	invalid := len(c.errors) > 0
	values := c.valuesLocked()
	snap := c.snapshotLocked()
	c.mu.Unlock()

	c.notify(snap)
	if invalid {
		return ErrValidationFailed
	}

	if err := handler.Submit(ctx, values); err != nil {
		return fmt.Errorf("form: submit: %w", err)
	}
	c.Reset()
	return nil
}

// Reset discards values, errors and the submitted flag.
func (c *Controller) Reset() {
	c.mu.Lock()
	c.values = make(model.Values)
	c.errors = make(model.ValidationErrors)
	c.submitted = false
	snap := c.snapshotLocked()
	c.mu.Unlock()

	c.notify(snap)
}

// Subscribe registers fn and returns a function that removes it.
func (c *Controller) Subscribe(fn Listener) func() {
	if fn == nil {
		return func() {}
	}
	c.mu.Lock()
	id := c.subscribe(fn)
	c.mu.Unlock()

	return func() {
		c.mu.Lock()
		delete(c.listeners, id)
		c.mu.Unlock()
	}
}

func (c *Controller) subscribe(fn Listener) int {
	id := c.nextID
	c.nextID++
	c.listeners[id] = fn
	return id
}

func (c *Controller) validateLocked() {
	errs := make(model.ValidationErrors)
	for _, id := range c.order {
		if fieldErr, valid := c.fields[id].check(c.valueLocked(id)); !valid {
			errs[id] = fieldErr
		}
	}
	c.errors = errs
}

func (c *Controller) valueLocked(id string) string {
	if value, ok := c.values[id]; ok {
		return value
	}
	if reg, ok := c.fields[id]; ok {
		return reg.initial
	}
	return ""
}

func (c *Controller) valuesLocked() model.Values {
	out := make(model.Values, len(c.order))
	for _, id := range c.order {
		out[id] = c.valueLocked(id)
	}
	return out
}

func (c *Controller) snapshotLocked() Snapshot {
	return Snapshot{
		Values:      c.valuesLocked(),
		Errors:      c.errors.Clone(),
		Submitted:   c.submitted,
		SubmitCount: c.count,
	}
}

func (c *Controller) notify(snap Snapshot) {
	c.mu.Lock()
	ids := make([]int, 0, len(c.listeners))
	for id := range c.listeners {
		ids = append(ids, id)
	}
	listeners := make([]Listener, 0, len(ids))
	slices.Sort(ids)
	for _, id := range ids {
		listeners = append(listeners, c.listeners[id])
	}
	c.mu.Unlock()

	for _, fn := range listeners {
		fn(snap)
	}
}

// IsValidationFailure reports whether err blocked a submission on field
// errors.
func IsValidationFailure(err error) bool {
	return errors.Is(err, ErrValidationFailed)
}
