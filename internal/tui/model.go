package tui

import (
	"math/rand/v2"
	"slices"
	"time"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/alexisbeaulieu97/huewheel/internal/color"
	"github.com/alexisbeaulieu97/huewheel/internal/editor"
	"github.com/alexisbeaulieu97/huewheel/internal/harmony"
	"github.com/alexisbeaulieu97/huewheel/internal/logger"
	"github.com/alexisbeaulieu97/huewheel/internal/naming"
	"github.com/alexisbeaulieu97/huewheel/internal/radial"
	"github.com/alexisbeaulieu97/huewheel/internal/store"
	"github.com/alexisbeaulieu97/huewheel/internal/tui/components"
)

// Screen position of the wheel's top-left corner. View keeps the wheel there
// so mouse coordinates can be mapped back onto it.
const (
	wheelOriginX = 2
	wheelOriginY = 2
)

// Step sizes for keyboard adjustments.
const (
	hueStep   = 5
	valueStep = 5
)

// Options configures a Model.
type Options struct {
	Store         *store.Store
	Namer         naming.Namer
	NamingTimeout time.Duration
	Diameter      int
	Base          color.HSL
	Harmony       harmony.Rule
	Logger        *logger.Logger
	Rand          *rand.Rand
	Clipboard     func(string) error
}

// Model is the Bubbletea state of the interactive palette editor.
type Model struct {
	state editor.State
	store *store.Store
	saved []store.SavedPalette

	// Naming state
	namer         naming.Namer
	namingTimeout time.Duration
	name          string
	naming        bool
	generation    int

	// Wheel state
	wheel components.Wheel
	drag  radial.Drag

	// Component state
	hexInput  textinput.Model
	hexOrigin editor.State
	spinner   spinner.Model

	// UI state
	mode        Mode
	cursor      int
	status      string
	statusError bool

	// Dimensions
	width  int
	height int

	log       *logger.Logger
	rng       *rand.Rand
	clipboard func(string) error
}

// NewModel creates the editor model.
func NewModel(opts Options) Model {
	diameter := opts.Diameter
	if diameter <= 0 {
		diameter = 21
	}
	rule := opts.Harmony
	if !rule.Valid() {
		rule = harmony.Analogous
	}
	rng := opts.Rand
	if rng == nil {
		now := uint64(time.Now().UnixNano())
		rng = rand.New(rand.NewPCG(now, now>>1))
	}
	write := opts.Clipboard
	if write == nil {
		write = clipboard.WriteAll
	}
	input := textinput.New()
	input.Prompt = "HEX "
	input.Placeholder = "#rrggbb"
	input.CharLimit = 7
	input.Width = 8

	s := spinner.New()
	s.Spinner = spinner.Dot
	s.Style = spinnerStyle

	wheel := components.Wheel{Diameter: diameter}

	m := Model{
		state:         editor.New(opts.Base, rule),
		store:         opts.Store,
		namer:         opts.Namer,
		namingTimeout: opts.NamingTimeout,
		wheel:         wheel,
		drag:          *radial.NewDrag(wheel.Box()),
		hexInput:      input,
		spinner:       s,
		mode:          ModeEdit,
		width:         80,
		height:        24,
		log:           opts.Logger.WithComponent("tui"),
		rng:           rng,
		clipboard:     write,
	}
	m.reloadSaved()
	m.name = m.defaultName()

	return m
}

// Init initializes the model and returns initial commands.
func (m Model) Init() tea.Cmd {
	return tea.Batch(textinput.Blink, m.spinner.Tick)
}

// State returns the current editor state.
func (m Model) State() editor.State {
	return m.state
}

// Mode returns the current screen.
func (m Model) Mode() Mode {
	return m.mode
}

// Saved returns the saved palettes as last read from the store.
func (m Model) Saved() []store.SavedPalette {
	return m.saved
}

// Name returns the palette name shown in the header.
func (m Model) Name() string {
	return m.name
}

// Status returns the status line text.
func (m Model) Status() string {
	return m.status
}

// Dragging reports whether a wheel drag session is active.
func (m Model) Dragging() bool {
	return m.drag.Dragging()
}

// apply runs an editor event. Any change to the palette invalidates a pending name.
func (m *Model) apply(e editor.Event) {
	m.replace(editor.Apply(m.state, e))
}

// replace installs next as the editor state, invalidating any pending name when the palette changed.
func (m *Model) replace(next editor.State) {
	before := m.state
	m.state = next
	if before.Base != m.state.Base || before.Harmony != m.state.Harmony || !slices.Equal(before.Palette, m.state.Palette) {
		m.generation++
		m.naming = false
		m.name = m.defaultName()
	}
}

func (m *Model) defaultName() string {
	return m.state.Harmony.Label() + " Palette"
}

func (m *Model) reloadSaved() {
	if m.store == nil {
		m.saved = nil
		return
	}
	m.saved = m.store.List()
	if m.cursor >= len(m.saved) {
		m.cursor = max(0, len(m.saved)-1)
	}
}

func (m *Model) setStatus(msg string, isErr bool) tea.Cmd {
	m.status = msg
	m.statusError = isErr
	return clearStatusAfter(4 * time.Second)
}

// selected returns the saved palette under the cursor.
func (m Model) selected() (store.SavedPalette, bool) {
	if m.cursor < 0 || m.cursor >= len(m.saved) {
		return store.SavedPalette{}, false
	}
	return m.saved[m.cursor], true
}
