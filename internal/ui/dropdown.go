package ui

import (
	"fmt"
	"strings"

	"github.com/desertthunder/dlx/internal/shared"
)

// Option is a single dropdown entry.
type Option struct {
	ID      string
	Caption string
}

// Dropdown is a single-choice selector. The empty value stands for "nothing chosen" and is shown with the
// description as its caption.
type Dropdown struct {
	id          string
	description string
	required    bool
	options     []Option
	value       string
	onChange    func(value string)
}

// NewDropdown creates a dropdown with the given description placeholder and options.
//
// Options with a blank ID are rejected with [shared.ErrValidation].
func NewDropdown(id, description string, required bool, options []Option) (*Dropdown, error) {
	d := &Dropdown{id: id, description: description, required: required}
	if err := d.SetOptions(options); err != nil {
		return nil, err
	}
	return d, nil
}

func (d *Dropdown) ID() string          { return d.id }
func (d *Dropdown) Description() string { return d.description }
func (d *Dropdown) Required() bool      { return d.required }
func (d *Dropdown) Value() string       { return d.value }

// Options returns a copy of the options in display order.
func (d *Dropdown) Options() []Option {
	return append([]Option(nil), d.options...)
}

// OnChange registers fn to be called with the new value whenever it changes.
func (d *Dropdown) OnChange(fn func(value string)) { d.onChange = fn }

// SetValue selects the option with the given ID. Unknown IDs select the empty value.
func (d *Dropdown) SetValue(value string) {
	if d.indexOf(value) < 0 {
		value = ""
	}
	d.set(value)
}

// AddOption appends an option.
func (d *Dropdown) AddOption(id, caption string) error {
	if strings.TrimSpace(id) == "" {
		return fmt.Errorf("%w: option id is required", shared.ErrValidation)
	}
	if d.indexOf(id) >= 0 {
		return fmt.Errorf("%w: duplicate option %q", shared.ErrValidation, id)
	}
	d.options = append(d.options, Option{ID: id, Caption: caption})
	return nil
}

// SetOptions replaces every option. The current value is kept when it is still offered.
func (d *Dropdown) SetOptions(options []Option) error {
	prev := d.options
	d.options = nil
	for _, o := range options {
		if err := d.AddOption(o.ID, o.Caption); err != nil {
			d.options = prev
			return err
		}
	}
	if d.indexOf(d.value) < 0 {
		d.set("")
	}
	return nil
}

// Validate fails when the dropdown is required and nothing is chosen.
func (d *Dropdown) Validate() error {
	if d.required && d.value == "" {
		label := d.description
		if label == "" {
			label = d.id
		}
		return fmt.Errorf("%w: %s", shared.ErrValidation, label)
	}
	return nil
}

// Next moves to the following option, wrapping through the empty value.
func (d *Dropdown) Next() { d.step(1) }

// Prev moves to the previous option, wrapping through the empty value.
func (d *Dropdown) Prev() { d.step(-1) }

// Caption is the text for the current value.
func (d *Dropdown) Caption() string {
	if i := d.indexOf(d.value); i > 0 {
		return d.options[i-1].Caption
	}
	return d.description
}

// View renders the dropdown on one line.
func (d *Dropdown) View(focused bool) string {
	caption := d.Caption()
	if d.value == "" {
		caption = styles.muted.Render(caption)
	}
	marker := "  "
	if focused {
		marker = styles.cursor.Render("▸ ")
	}
	line := fmt.Sprintf("%s‹ %s ›", marker, caption)
	if d.required {
		line += styles.warn.Render(" *")
	}
	return line
}

// step moves through the ring [empty, options...].
func (d *Dropdown) step(delta int) {
	n := len(d.options) + 1
	i := max(d.indexOf(d.value), 0)
	i = ((i+delta)%n + n) % n
	if i == 0 {
		d.set("")
		return
	}
	d.set(d.options[i-1].ID)
}

func (d *Dropdown) set(value string) {
	if value == d.value {
		return
	}
	d.value = value
	if d.onChange != nil {
		d.onChange(value)
	}
}

// indexOf returns the ring position of value: 0 for the empty value, i+1 for options[i], -1 when unknown.
func (d *Dropdown) indexOf(value string) int {
	if value == "" {
		return 0
	}
	for i, o := range d.options {
		if o.ID == value {
			return i + 1
		}
	}
	return -1
}
