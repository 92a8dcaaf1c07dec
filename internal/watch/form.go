package watch

import (
	"strconv"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/anjalxbt/mooncap/internal/config"
)

// Form field indexes. Navigation wraps modulo FieldCount.
const (
	FieldAddress = iota
	FieldChain
	FieldTarget
	FieldInterval
	FieldCount
)

// FieldLabels are the form labels in field order.
var FieldLabels = [FieldCount]string{
	"Pair or token address",
	"Chain",
	"Target market cap (USD)",
	"Check interval (seconds)",
}

// Form is the configuration-entry sub-state: four text fields and the
// index of the active one. It exists only while the watcher is in form
// mode; validation happens on submit, not per keystroke.
type Form struct {
	inputs [FieldCount]textinput.Model
	active int
}

// NewForm builds a form pre-filled from the given config.
func NewForm(cfg *config.Config) *Form {
	f := &Form{}

	placeholders := [FieldCount]string{
		"e.g. 7xKXtg2CW87d97TXJSDpbD5jBkheTqA83TZRuJosgAsU",
		config.DefaultChain,
		strconv.FormatFloat(config.DefaultTargetMarketCap, 'f', 0, 64),
		strconv.FormatUint(config.DefaultIntervalSeconds, 10),
	}

	values := [FieldCount]string{
		cfg.PairAddress,
		cfg.Chain,
		strconv.FormatFloat(cfg.TargetMarketCap, 'f', -1, 64),
		strconv.FormatUint(cfg.IntervalSeconds, 10),
	}

	for i := range f.inputs {
		ti := textinput.New()
		ti.Prompt = ""
		ti.Placeholder = placeholders[i]
		ti.CharLimit = 128
		ti.SetValue(values[i])
		f.inputs[i] = ti
	}

	f.inputs[f.active].Focus()
	return f
}

// Active returns the index of the focused field.
func (f *Form) Active() int {
	return f.active
}

// Value returns the current text of the given field.
func (f *Form) Value(i int) string {
	return f.inputs[i].Value()
}

// Next moves focus to the following field, wrapping past the last.
func (f *Form) Next() {
	f.setActive((f.active + 1) % FieldCount)
}

// Prev moves focus to the preceding field, wrapping past the first.
func (f *Form) Prev() {
	f.setActive((f.active + FieldCount - 1) % FieldCount)
}

func (f *Form) setActive(i int) {
	f.inputs[f.active].Blur()
	f.active = i
	f.inputs[f.active].Focus()
}

// Update routes a message to the active field. Printable characters and
// backspace are handled by the text input itself.
func (f *Form) Update(msg tea.Msg) tea.Cmd {
	var cmd tea.Cmd
	f.inputs[f.active], cmd = f.inputs[f.active].Update(msg)
	return cmd
}

// View renders one field's current text with cursor for the form overlay.
func (f *Form) FieldView(i int) string {
	return f.inputs[i].View()
}
