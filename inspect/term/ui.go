// Package term implements inspect.UI on a terminal: every widget becomes a
// prompt pre-filled with the field's current value.
package term

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"inspector-generator/inspect"
)

// Option configures a UI.
type Option func(*UI)

// WithPromptDriver overrides the prompt driver used by the UI.
func WithPromptDriver(driver PromptDriver) Option {
	return func(u *UI) {
		if driver != nil {
			u.driver = driver
		}
	}
}

// WithContext sets the context passed to every prompt.
func WithContext(ctx context.Context) Option {
	return func(u *UI) {
		if ctx != nil {
			u.ctx = ctx
		}
	}
}

// UI prompts for each widget in draw order. After the first prompt error every
// later widget is skipped and reports no change; the error is kept in Err.
type UI struct {
	ctx    context.Context
	driver PromptDriver

	stack []string
	// label is static text not yet shown; SameLine turns it into the next
	// widget's prompt.
	label   string
	pending bool
	inline  bool

	err error
}

var _ inspect.UI = (*UI)(nil)

// New creates a terminal UI.
func New(opts ...Option) *UI {
	u := &UI{ctx: context.Background()}

	for _, opt := range opts {
		opt(u)
	}

	if u.driver == nil {
		u.driver = NewSurveyDriver()
	}

	return u
}

// Err returns the first prompt error, or nil.
func (u *UI) Err() error {
	return u.err
}

// PushID implements inspect.UI.
func (u *UI) PushID(id string) {
	u.flush()
	u.stack = append(u.stack, id)
}

// PopID implements inspect.UI.
func (u *UI) PopID() {
	u.flush()

	if len(u.stack) > 0 {
		u.stack = u.stack[:len(u.stack)-1]
	}
}

// Text implements inspect.UI. Text followed by SameLine labels the next widget;
// any other text is printed as a heading.
func (u *UI) Text(text string) {
	u.flush()
	u.label, u.pending = text, true
}

// SameLine implements inspect.UI.
func (u *UI) SameLine(float32) {
	u.inline = u.pending
}

// InputInt implements inspect.UI.
func (u *UI) InputInt(label string, value *int64) bool {
	return promptNumber(u, label, value, "", func(s string) (int64, error) {
		return strconv.ParseInt(s, 0, 64)
	}, nil)
}

// InputUint implements inspect.UI.
func (u *UI) InputUint(label string, value *uint64) bool {
	return promptNumber(u, label, value, "", func(s string) (uint64, error) {
		return strconv.ParseUint(s, 0, 64)
	}, nil)
}

// InputFloat implements inspect.UI.
func (u *UI) InputFloat(label string, value *float64) bool {
	return promptNumber(u, label, value, "", parseFloat, nil)
}

// SliderInt implements inspect.UI.
func (u *UI) SliderInt(label string, value *int64, minVal, maxVal int64) bool {
	return promptNumber(u, label, value, rangeHelp(minVal, maxVal), func(s string) (int64, error) {
		return strconv.ParseInt(s, 0, 64)
	}, inRange(minVal, maxVal))
}

// SliderUint implements inspect.UI.
func (u *UI) SliderUint(label string, value *uint64, minVal, maxVal uint64) bool {
	return promptNumber(u, label, value, rangeHelp(minVal, maxVal), func(s string) (uint64, error) {
		return strconv.ParseUint(s, 0, 64)
	}, inRange(minVal, maxVal))
}

// SliderFloat implements inspect.UI.
func (u *UI) SliderFloat(label string, value *float64, minVal, maxVal float64) bool {
	return promptNumber(u, label, value, rangeHelp(minVal, maxVal), parseFloat, inRange(minVal, maxVal))
}

// InputText implements inspect.UI.
func (u *UI) InputText(label string, value *string) bool {
	message, ok := u.begin(label)
	if !ok {
		return false
	}

	out, err := u.driver.Input(u.ctx, InputConfig{Message: message, Default: *value, Help: u.scope()})
	if err != nil {
		u.err = err
		return false
	}

	if out == *value {
		return false
	}

	*value = out

	return true
}

// Checkbox implements inspect.UI.
func (u *UI) Checkbox(label string, value *bool) bool {
	message, ok := u.begin(label)
	if !ok {
		return false
	}

	out, err := u.driver.Confirm(u.ctx, ConfirmConfig{Message: message, Default: *value, Help: u.scope()})
	if err != nil {
		u.err = err
		return false
	}

	if out == *value {
		return false
	}

	*value = out

	return true
}

type number interface {
	~int64 | ~uint64 | ~float64
}

// promptNumber asks for a numeric value. The driver re-asks until parse and
// check accept the answer.
func promptNumber[T number](u *UI, label string, value *T, help string, parse func(string) (T, error), check func(T) error) bool {
	message, ok := u.begin(label)
	if !ok {
		return false
	}

	if help == "" {
		help = u.scope()
	}

	validate := func(s string) error {
		v, err := parse(strings.TrimSpace(s))
		if err != nil {
			return fmt.Errorf("not a number: %q", s)
		}

		if check != nil {
			return check(v)
		}

		return nil
	}

	out, err := u.driver.Input(u.ctx, InputConfig{
		Message:   message,
		Default:   fmt.Sprint(*value),
		Help:      help,
		Validator: validate,
	})
	if err != nil {
		u.err = err
		return false
	}

	v, err := parse(strings.TrimSpace(out))
	if err != nil {
		u.err = fmt.Errorf("%s: %w", message, err)
		return false
	}

	if check != nil {
		if err := check(v); err != nil {
			u.err = fmt.Errorf("%s: %w", message, err)
			return false
		}
	}

	if v == *value {
		return false
	}

	*value = v

	return true
}

// begin prepares a widget prompt. It reports false once an earlier prompt failed.
func (u *UI) begin(label string) (string, bool) {
	message := label
	if u.inline {
		message = u.label
	}

	u.label, u.pending, u.inline = "", false, false

	if strings.HasPrefix(message, "##") || message == "" {
		message = u.scope()
	}

	return message, u.err == nil
}

// flush prints buffered text that did not become a widget label.
func (u *UI) flush() {
	if !u.pending {
		return
	}

	text := u.label
	u.label, u.pending, u.inline = "", false, false

	if u.err != nil {
		return
	}

	indent := strings.Repeat("  ", max(len(u.stack)-1, 0))
	if err := u.driver.Info(u.ctx, indent+text); err != nil {
		u.err = err
	}
}

func (u *UI) scope() string {
	return strings.Join(u.stack, "/")
}

func parseFloat(s string) (float64, error) {
	return strconv.ParseFloat(s, 64)
}

func rangeHelp[T number](minVal, maxVal T) string {
	return fmt.Sprintf("a value between %v and %v", minVal, maxVal)
}

// inRange accepts values between the bounds. Inverted bounds accept anything.
func inRange[T number](minVal, maxVal T) func(T) error {
	return func(v T) error {
		if minVal > maxVal || (v >= minVal && v <= maxVal) {
			return nil
		}

		return fmt.Errorf("%v is outside [%v, %v]", v, minVal, maxVal)
	}
}
