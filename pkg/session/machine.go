package session

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/pluqqy/tagclip/pkg/clipboard"
	"github.com/pluqqy/tagclip/pkg/markup"
)

// ErrRowOutOfRange is returned when an edit names a row that does not exist.
var ErrRowOutOfRange = errors.New("attribute row out of range")

// Machine drives one editing session: it owns the raw input, the pending
// focus request and the error flag, and turns key events into row additions,
// commits and cancels. It is not safe for concurrent use; the presentation
// layer delivers one cycle at a time.
type Machine struct {
	input markup.RawInput

	pending    FieldID
	hasPending bool

	errFlag bool
	lastErr error

	signal Signal
	output string

	clip   clipboard.Writer
	logger *slog.Logger
}

// Option configures a Machine.
type Option func(*Machine)

// WithLogger sets the logger used for session events.
func WithLogger(logger *slog.Logger) Option {
	return func(m *Machine) {
		if logger != nil {
			m.logger = logger
		}
	}
}

// WithInput seeds the session with an initial tag and rows.
func WithInput(raw markup.RawInput) Option {
	return func(m *Machine) {
		m.input = raw.Clone()
	}
}

// New starts a session with focus requested on the tag field. clip may be
// nil, in which case every commit fails with clipboard.ErrUnavailable.
func New(clip clipboard.Writer, opts ...Option) *Machine {
	m := &Machine{
		pending:    TagField(),
		hasPending: true,
		clip:       clip,
		logger:     slog.New(slog.DiscardHandler),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// BeginCycle hands out the focus request made during the previous cycle, if
// any, and clears it.
func (m *Machine) BeginCycle() (FieldID, bool) {
	if !m.hasPending {
		return NoField, false
	}
	f := m.pending
	m.pending, m.hasPending = NoField, false
	return f, true
}

// PendingFocus reports the focus request without consuming it.
func (m *Machine) PendingFocus() (FieldID, bool) {
	return m.pending, m.hasPending
}

// Handle evaluates one key event. Escape wins over Tab, Tab over Enter; only
// unmodified presses are intercepted. Once the session has ended every call
// is a no-op that repeats the terminal signal.
func (m *Machine) Handle(ev Event) Result {
	if m.signal != SignalNone {
		return Result{Signal: m.signal, Output: m.output}
	}
	if ev.Key.Modified {
		return Result{}
	}

	switch ev.Key.Key {
	case KeyEscape:
		m.logger.Info("escape pressed, cancelling session")
		m.signal = SignalCancel
		return Result{Handled: true, Signal: SignalCancel}

	case KeyTab:
		return m.handleTab(ev.Focus)

	case KeyEnter:
		return m.commit()
	}

	return Result{}
}

func (m *Machine) handleTab(focus FieldID) Result {
	rows := len(m.input.Attributes)
	fromTag := focus.Kind == FieldTag && rows == 0
	fromLastValue := rows > 0 && focus == ValueField(rows-1)

	m.logger.Debug("tab pressed", "focus", focus.String(), "rows", rows)
	if !fromTag && !fromLastValue {
		return Result{}
	}

	f := m.AddRow()
	m.logger.Debug("tab added attribute row", "focus_request", f.String())
	return Result{Handled: true}
}

func (m *Machine) commit() Result {
	out, err := markup.Render(m.input)
	if err != nil {
		m.logger.Warn("build failed", "error", err)
		m.setError(err)
		return Result{Handled: true, Err: err}
	}

	if err := m.writeClipboard(out); err != nil {
		m.logger.Error("failed to copy to clipboard", "error", err)
		m.setError(err)
		return Result{Handled: true, Err: err}
	}

	m.logger.Info("copied to clipboard", "output", out)
	m.clearError()
	m.signal = SignalCommit
	m.output = out
	return Result{Handled: true, Signal: SignalCommit, Output: out}
}

// writeClipboard maps every collaborator failure, including a panic, onto
// the two clipboard error kinds.
func (m *Machine) writeClipboard(text string) (err error) {
	if m.clip == nil {
		return fmt.Errorf("no clipboard configured: %w", clipboard.ErrUnavailable)
	}

	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("%w: %v", clipboard.ErrUnavailable, r)
		}
	}()

	err = m.clip.WriteText(text)
	if err != nil && !errors.Is(err, clipboard.ErrUnavailable) && !errors.Is(err, clipboard.ErrWriteFailed) {
		err = fmt.Errorf("%w: %v", clipboard.ErrWriteFailed, err)
	}
	return err
}

// AddRow appends an empty attribute row and requests focus on its key for
// the next cycle.
func (m *Machine) AddRow() FieldID {
	m.input.Attributes = append(m.input.Attributes, markup.AttributeRow{})
	f := KeyField(len(m.input.Attributes) - 1)
	m.requestFocus(f)
	m.clearError()
	return f
}

// RemoveRow deletes row i. Focus is requested on the row that moved into
// its place, else the previous row's value, else the tag field.
func (m *Machine) RemoveRow(i int) error {
	if i < 0 || i >= len(m.input.Attributes) {
		return fmt.Errorf("remove row %d: %w", i, ErrRowOutOfRange)
	}

	m.input.Attributes = append(m.input.Attributes[:i], m.input.Attributes[i+1:]...)
	m.clearError()

	switch rows := len(m.input.Attributes); {
	case i < rows:
		m.requestFocus(KeyField(i))
	case rows > 0:
		m.requestFocus(ValueField(rows - 1))
	default:
		m.requestFocus(TagField())
	}
	return nil
}

// SetTag records an edit of the tag field. It reports whether the text
// changed; a change clears the error flag.
func (m *Machine) SetTag(text string) bool {
	if m.input.Tag == text {
		return false
	}
	m.input.Tag = text
	m.clearError()
	return true
}

// SetKey records an edit of row i's key.
func (m *Machine) SetKey(i int, text string) (bool, error) {
	if i < 0 || i >= len(m.input.Attributes) {
		return false, fmt.Errorf("set key %d: %w", i, ErrRowOutOfRange)
	}
	if m.input.Attributes[i].Key == text {
		return false, nil
	}
	m.input.Attributes[i].Key = text
	m.clearError()
	return true, nil
}

// SetValue records an edit of row i's value.
func (m *Machine) SetValue(i int, text string) (bool, error) {
	if i < 0 || i >= len(m.input.Attributes) {
		return false, fmt.Errorf("set value %d: %w", i, ErrRowOutOfRange)
	}
	if m.input.Attributes[i].Value == text {
		return false, nil
	}
	m.input.Attributes[i].Value = text
	m.clearError()
	return true, nil
}

// SetField routes an edit to the field named by f.
func (m *Machine) SetField(f FieldID, text string) (bool, error) {
	switch f.Kind {
	case FieldTag:
		return m.SetTag(text), nil
	case FieldKey:
		return m.SetKey(f.Index, text)
	case FieldValue:
		return m.SetValue(f.Index, text)
	}
	return false, fmt.Errorf("field %q is not editable", f.String())
}

// Input returns a copy of the current raw input.
func (m *Machine) Input() markup.RawInput {
	return m.input.Clone()
}

// Rows returns the number of attribute rows.
func (m *Machine) Rows() int {
	return len(m.input.Attributes)
}

// ErrorFlag reports whether the last commit attempt failed and no edit has
// happened since.
func (m *Machine) ErrorFlag() bool {
	return m.errFlag
}

// Err returns the error behind the error flag, or nil.
func (m *Machine) Err() error {
	if !m.errFlag {
		return nil
	}
	return m.lastErr
}

// Signal returns the terminal signal, SignalNone while the session is open.
func (m *Machine) Signal() Signal {
	return m.signal
}

// Done reports whether the session has ended.
func (m *Machine) Done() bool {
	return m.signal != SignalNone
}

// Output returns the committed text, empty unless the session committed.
func (m *Machine) Output() string {
	return m.output
}

func (m *Machine) requestFocus(f FieldID) {
	m.pending, m.hasPending = f, true
}

func (m *Machine) setError(err error) {
	m.errFlag = true
	m.lastErr = err
}

func (m *Machine) clearError() {
	m.errFlag = false
	m.lastErr = nil
}
