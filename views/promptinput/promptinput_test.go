// SPDX-License-Identifier: Apache-2.0
// Copyright © 2026 Eldara Tech

package promptinput

import (
	"testing"
	"time"

	"promptbar/core/hotkeys"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/require"
)

type fakeStore struct {
	text      string
	contextID string
	ready     bool

	setCalls      []string
	validateCalls []string
}

func (s *fakeStore) SetText(v string) {
	s.text = v
	s.setCalls = append(s.setCalls, v)
}

func (s *fakeStore) ValidateText(v string) {
	s.validateCalls = append(s.validateCalls, v)
}

func (s *fakeStore) Text() string            { return s.text }
func (s *fakeStore) ActiveContextID() string { return s.contextID }
func (s *fakeStore) IsReady() bool           { return s.ready }

type fakeSubmitter struct{ calls []string }

func (f *fakeSubmitter) Submit(contextID string) { f.calls = append(f.calls, contextID) }

type keyTranslator struct{}

func (keyTranslator) T(key string) string { return key }

// manualClock stands in for tea.Tick: tasks only fire when the test says so.
type manualClock struct {
	delays []time.Duration
	tasks  []func(time.Time) tea.Msg
}

func (c *manualClock) schedule(d time.Duration, fn func(time.Time) tea.Msg) tea.Cmd {
	c.delays = append(c.delays, d)
	c.tasks = append(c.tasks, fn)
	return nil
}

// elapse delivers every scheduled task to the model, stale ones included.
func (c *manualClock) elapse(m *Model) {
	tasks := c.tasks
	c.tasks = nil
	for _, fn := range tasks {
		m.Update(fn(time.Now()))
	}
}

type fixture struct {
	model     *Model
	store     *fakeStore
	submitter *fakeSubmitter
	clock     *manualClock
	hotkeys   *hotkeys.Registry
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	f := &fixture{
		store:     &fakeStore{contextID: "txt2img"},
		submitter: &fakeSubmitter{},
		clock:     &manualClock{},
		hotkeys:   hotkeys.NewRegistry(),
	}
	f.model = New(f.store, f.submitter, keyTranslator{}, Options{
		Hotkeys:   f.hotkeys,
		Scheduler: f.clock.schedule,
	})
	f.model.OnEnter()
	require.True(t, f.model.Focused())
	return f
}

func typeText(m *Model, s string) {
	for _, r := range s {
		m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}})
	}
}

var (
	enterKey      = tea.KeyMsg{Type: tea.KeyEnter}
	shiftEnterKey = tea.KeyMsg{Type: tea.KeyEnter, Alt: true}
	ctrlJKey      = tea.KeyMsg{Type: tea.KeyCtrlJ}
	focusKey      = tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'a'}, Alt: true}
)

// --- Debounce ---

func TestRapidEdits_CoalesceIntoOneValidation(t *testing.T) {
	f := newFixture(t)

	typeText(f.model, "cat")

	require.Equal(t, []string{"c", "ca", "cat"}, f.store.setCalls, "every edit reaches the store at once")
	require.Empty(t, f.store.validateCalls, "nothing validated before the quiet period")
	require.True(t, f.model.ValidationPending())

	f.clock.elapse(f.model)

	require.Equal(t, []string{"cat"}, f.store.validateCalls)
	require.False(t, f.model.ValidationPending())
}

func TestSingleEdit_SetsAndValidatesOnce(t *testing.T) {
	f := newFixture(t)

	typeText(f.model, "x")
	require.Equal(t, []string{"x"}, f.store.setCalls)
	require.Empty(t, f.store.validateCalls)
	require.Equal(t, []time.Duration{DefaultDelay}, f.clock.delays)

	f.clock.elapse(f.model)
	require.Equal(t, []string{"x"}, f.store.validateCalls)

	// Nothing else is pending.
	f.clock.elapse(f.model)
	require.Equal(t, []string{"x"}, f.store.validateCalls)
}

func TestEditsInSeparatePauses_ValidateEachPause(t *testing.T) {
	f := newFixture(t)

	typeText(f.model, "ab")
	f.clock.elapse(f.model)
	typeText(f.model, "c")
	f.clock.elapse(f.model)

	require.Equal(t, []string{"ab", "abc"}, f.store.validateCalls)
}

func TestTextChanged_ValidatesCapturedValue(t *testing.T) {
	f := newFixture(t)

	f.model.TextChanged("first")
	f.model.TextChanged("second")

	require.Equal(t, "second", f.model.Value())
	f.clock.elapse(f.model)
	require.Equal(t, []string{"second"}, f.store.validateCalls)
}

func TestUnmount_DropsPendingValidation(t *testing.T) {
	f := newFixture(t)

	typeText(f.model, "late")
	f.model.OnExit()
	f.clock.elapse(f.model)

	require.Empty(t, f.store.validateCalls)
}

// --- Validity ---

func TestIsInvalid(t *testing.T) {
	require.True(t, IsInvalid(""))
	require.True(t, IsInvalid("\n\n  \r"))
	require.False(t, IsInvalid("a"))
	require.False(t, IsInvalid("  a  "))
}

func TestInvalid_ComputedFromStore(t *testing.T) {
	f := newFixture(t)
	require.True(t, f.model.Invalid())

	typeText(f.model, " ")
	require.True(t, f.model.Invalid())

	typeText(f.model, "a")
	require.False(t, f.model.Invalid())
}

// --- Submit ---

func TestEnter_WhenReady_SubmitsAndSuppressesNewline(t *testing.T) {
	f := newFixture(t)
	typeText(f.model, "a cat")
	f.store.ready = true
	setCalls := len(f.store.setCalls)

	cmd := f.model.Update(enterKey)

	require.Equal(t, []string{"txt2img"}, f.submitter.calls)
	require.Equal(t, "a cat", f.model.Value(), "no newline inserted")
	require.Len(t, f.store.setCalls, setCalls, "submit is not an edit")

	require.NotNil(t, cmd)
	require.Equal(t, SubmittedMsg{ContextID: "txt2img"}, cmd())
}

func TestShiftEnter_NeverSubmits(t *testing.T) {
	for name, key := range map[string]tea.KeyMsg{"alt+enter": shiftEnterKey, "ctrl+j": ctrlJKey} {
		for _, ready := range []bool{true, false} {
			f := newFixture(t)
			typeText(f.model, "a")
			f.store.ready = ready

			f.model.Update(key)

			require.Empty(t, f.submitter.calls, "%s ready=%v", name, ready)
			require.Equal(t, "a\n", f.model.Value(), "%s ready=%v inserts a newline", name, ready)
			require.Equal(t, "a\n", f.store.text)
		}
	}
}

func TestEnter_WhenNotReady_FallsThroughToNewline(t *testing.T) {
	f := newFixture(t)
	typeText(f.model, "a")
	f.store.ready = false

	f.model.Update(enterKey)

	require.Empty(t, f.submitter.calls)
	require.Equal(t, "a\n", f.model.Value())
}

func TestKeyPressed(t *testing.T) {
	f := newFixture(t)
	f.store.contextID = "img2img"

	f.store.ready = true
	require.True(t, f.model.KeyPressed(KeyEnter, false))
	require.False(t, f.model.KeyPressed(KeyEnter, true))
	require.False(t, f.model.KeyPressed("a", false))

	f.store.ready = false
	require.False(t, f.model.KeyPressed(KeyEnter, false))

	require.Equal(t, []string{"img2img"}, f.submitter.calls)
}

func TestKeys_IgnoredWhenBlurred(t *testing.T) {
	f := newFixture(t)
	f.store.ready = true
	f.model.Blur()

	typeText(f.model, "x")
	f.model.Update(enterKey)

	require.Empty(t, f.store.setCalls)
	require.Empty(t, f.submitter.calls)
}

func TestEsc_BlursAndNotifies(t *testing.T) {
	f := newFixture(t)

	cmd := f.model.Update(tea.KeyMsg{Type: tea.KeyEsc})
	require.False(t, f.model.Focused())
	require.NotNil(t, cmd)
	require.Equal(t, BlurredMsg{}, cmd())
}

// --- Focus shortcut ---

func TestFocusShortcut_WhileMounted(t *testing.T) {
	f := newFixture(t)
	require.True(t, f.hotkeys.Bound(DefaultFocusKey))

	f.model.Blur()
	require.False(t, f.model.Focused())

	_, handled := f.hotkeys.Dispatch(focusKey)
	require.True(t, handled)
	require.True(t, f.model.Focused())
}

func TestFocusShortcut_AfterUnmountIsNoop(t *testing.T) {
	f := newFixture(t)
	f.model.OnExit()

	require.False(t, f.hotkeys.Bound(DefaultFocusKey))

	var handled bool
	require.NotPanics(t, func() { _, handled = f.hotkeys.Dispatch(focusKey) })
	require.False(t, handled)
	require.False(t, f.model.Focused())

	// A handler captured before unmount and invoked late does nothing.
	require.Nil(t, f.model.focusFromShortcut())
	require.False(t, f.model.Focused())

	require.NotPanics(t, func() { f.model.OnExit() })
}

func TestRemount_RebindsShortcutAndRestoresText(t *testing.T) {
	f := newFixture(t)
	typeText(f.model, "kept")
	f.model.OnExit()

	m := New(f.store, f.submitter, keyTranslator{}, Options{Hotkeys: f.hotkeys, Scheduler: f.clock.schedule})
	m.OnEnter()

	require.Equal(t, "kept", m.Value())
	require.True(t, f.hotkeys.Bound(DefaultFocusKey))
}

func TestMount_ShortcutConflictStillMounts(t *testing.T) {
	reg := hotkeys.NewRegistry()
	_, err := reg.Register(DefaultFocusKey, nil)
	require.NoError(t, err)

	m := New(&fakeStore{}, &fakeSubmitter{}, keyTranslator{}, Options{Hotkeys: reg})
	m.OnEnter()

	require.True(t, m.Mounted())
	require.True(t, m.Focused())

	m.OnExit()
	require.True(t, reg.Bound(DefaultFocusKey), "unmount must not release a binding it never owned")
}

// --- Rendering ---

func TestView_ShowsContextAndPlaceholder(t *testing.T) {
	f := newFixture(t)
	f.model.SetWidth(60)

	out := f.model.View()
	require.Contains(t, out, "txt2img")
	require.Contains(t, out, "parameters.prompt")
}
