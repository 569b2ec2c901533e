package tui

import (
	"log/slog"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/pluqqy/tagclip/pkg/models"
	"github.com/pluqqy/tagclip/pkg/session"
)

// attributeInputs is the pair of text inputs for one attribute row
type attributeInputs struct {
	key   textinput.Model
	value textinput.Model
}

// focusCycleMsg starts a new interaction cycle so a pending focus request
// can be granted after the field it names has been rendered.
type focusCycleMsg struct{}

// App renders a session and feeds it key events, one message per cycle.
type App struct {
	machine  *session.Machine
	settings *models.Settings
	origin   OriginProvider
	logger   *slog.Logger

	keys KeyMap
	help help.Model

	tagInput textinput.Model
	rows     []attributeInputs
	focus    session.FieldID

	width  int
	height int
}

// Option configures an App
type Option func(*App)

// WithOrigin sets the origin collaborator
func WithOrigin(origin OriginProvider) Option {
	return func(a *App) {
		if origin != nil {
			a.origin = origin
		}
	}
}

// WithLogger sets the logger
func WithLogger(logger *slog.Logger) Option {
	return func(a *App) {
		if logger != nil {
			a.logger = logger
		}
	}
}

// NewApp creates the form for machine. Settings may be nil.
func NewApp(machine *session.Machine, settings *models.Settings, opts ...Option) *App {
	if settings == nil {
		settings = models.DefaultSettings()
	}

	a := &App{
		machine:  machine,
		settings: settings,
		origin:   FixedOrigin{},
		logger:   slog.New(slog.DiscardHandler),
		keys:     DefaultKeyMap(),
		help:     help.New(),
		tagInput: newInput("<tag_name>", settings.UI.Width-4),
		focus:    session.NoField,
	}
	for _, opt := range opts {
		opt(a)
	}

	a.tagInput.SetValue(machine.Input().Tag)
	a.rebuildRows()
	return a
}

func newInput(placeholder string, width int) textinput.Model {
	ti := textinput.New()
	ti.Placeholder = placeholder
	ti.Prompt = ""
	ti.PlaceholderStyle = PlaceholderStyle
	ti.CharLimit = 0 // No limit
	ti.Width = max(width, 1)
	return ti
}

// Init starts the first cycle so the initial focus request is granted
func (a *App) Init() tea.Cmd {
	return nextCycle
}

func nextCycle() tea.Msg {
	return focusCycleMsg{}
}

func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if a.machine.Done() {
		return a, nil
	}

	var cmds []tea.Cmd
	if f, ok := a.machine.BeginCycle(); ok {
		cmds = append(cmds, a.setFocus(f))
	}

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		a.help.Width = msg.Width

	case focusCycleMsg:
		// Focus was granted above.

	case tea.KeyMsg:
		cmds = append(cmds, a.handleKey(msg))

	default:
		cmds = append(cmds, a.updateFocused(msg))
	}

	return a, tea.Batch(cmds...)
}

func (a *App) handleKey(msg tea.KeyMsg) tea.Cmd {
	ev := keyEvent(msg)
	if ev.Key != session.KeyNone {
		a.logger.Debug("key event", "key", ev.Key.String(), "modified", ev.Modified, "focus", a.focus.String())

		res := a.machine.Handle(session.Event{Key: ev, Focus: a.focus})
		switch res.Signal {
		case session.SignalCommit, session.SignalCancel:
			// Quitting runs as a command, outside this cycle.
			return tea.Quit
		}
		if res.Handled {
			return tea.Batch(a.syncRows(), a.pendingCycle())
		}

		switch {
		case key.Matches(msg, a.keys.Next):
			return a.setFocus(a.focus.Next(len(a.rows)))
		case key.Matches(msg, a.keys.Prev):
			return a.setFocus(a.focus.Prev(len(a.rows)))
		}
		return nil
	}

	switch {
	case key.Matches(msg, a.keys.AddRow):
		a.machine.AddRow()
		return tea.Batch(a.rebuildRows(), a.pendingCycle())

	case key.Matches(msg, a.keys.RemoveRow):
		if a.focus.Kind != session.FieldKey && a.focus.Kind != session.FieldValue {
			return nil
		}
		if err := a.machine.RemoveRow(a.focus.Index); err != nil {
			a.logger.Warn("remove row failed", "error", err)
			return nil
		}
		return tea.Batch(a.rebuildRows(), a.pendingCycle())
	}

	return a.updateFocused(msg)
}

// pendingCycle schedules the next cycle when the machine asked for focus.
func (a *App) pendingCycle() tea.Cmd {
	if _, ok := a.machine.PendingFocus(); ok {
		return nextCycle
	}
	return nil
}

// updateFocused forwards msg to the focused input and records any edit.
func (a *App) updateFocused(msg tea.Msg) tea.Cmd {
	input := a.input(a.focus)
	if input == nil {
		return nil
	}

	var cmd tea.Cmd
	*input, cmd = input.Update(msg)

	if changed, err := a.machine.SetField(a.focus, input.Value()); err != nil {
		a.logger.Warn("edit rejected", "field", a.focus.String(), "error", err)
	} else if changed {
		a.logger.Debug("field edited", "field", a.focus.String())
	}
	return cmd
}

// setFocus moves focus to f, blurring every other input.
func (a *App) setFocus(f session.FieldID) tea.Cmd {
	a.tagInput.Blur()
	for i := range a.rows {
		a.rows[i].key.Blur()
		a.rows[i].value.Blur()
	}

	input := a.input(f)
	if input == nil {
		a.focus = session.NoField
		return nil
	}
	a.focus = f
	return input.Focus()
}

// input returns the text input for f, or nil.
func (a *App) input(f session.FieldID) *textinput.Model {
	switch f.Kind {
	case session.FieldTag:
		return &a.tagInput
	case session.FieldKey:
		if f.Index < len(a.rows) {
			return &a.rows[f.Index].key
		}
	case session.FieldValue:
		if f.Index < len(a.rows) {
			return &a.rows[f.Index].value
		}
	}
	return nil
}

// syncRows rebuilds the row inputs when the machine's row count changed.
func (a *App) syncRows() tea.Cmd {
	if len(a.rows) != a.machine.Rows() {
		return a.rebuildRows()
	}
	return nil
}

// rebuildRows recreates the row inputs from the machine after rows were
// added or removed. Identifiers are positional, so every row is rebuilt.
// The returned command keeps the cursor of the focused input blinking.
func (a *App) rebuildRows() tea.Cmd {
	raw := a.machine.Input()
	keyWidth, valueWidth := a.rowWidths()

	a.rows = make([]attributeInputs, len(raw.Attributes))
	for i, row := range raw.Attributes {
		a.rows[i] = attributeInputs{
			key:   newInput("key", keyWidth),
			value: newInput("value (empty for boolean)", valueWidth),
		}
		a.rows[i].key.SetValue(row.Key)
		a.rows[i].value.SetValue(row.Value)
	}

	input := a.input(a.focus)
	if input == nil {
		a.focus = session.NoField
		return nil
	}
	return input.Focus()
}

func (a *App) rowWidths() (int, int) {
	inner := a.settings.UI.Width - 4
	keyWidth := inner * 2 / 5
	return max(keyWidth, 1), max(inner-keyWidth-2, 1)
}

// Focus returns the focused field
func (a *App) Focus() session.FieldID {
	return a.focus
}

// Signal returns how the session ended, SignalNone while it is open
func (a *App) Signal() session.Signal {
	return a.machine.Signal()
}

// Output returns the text copied on commit
func (a *App) Output() string {
	return a.machine.Output()
}
