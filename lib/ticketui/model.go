// Copyright 2026 The Ticketdesk Authors
// SPDX-License-Identifier: Apache-2.0

package ticketui

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"

	"github.com/ticketdesk/ticketdesk/lib/actions"
	schema "github.com/ticketdesk/ticketdesk/lib/schema/ticket"
	"github.com/ticketdesk/ticketdesk/lib/ticket"
	"github.com/ticketdesk/ticketdesk/lib/ticketstore"
	"github.com/ticketdesk/ticketdesk/lib/tui"
)

// FocusRegion identifies where keyboard input is routed.
type FocusRegion int

const (
	// FocusForm means keystrokes go to the intake form fields.
	FocusForm FocusRegion = iota
	// FocusTable means navigation and action keys operate on the
	// ticket table.
	FocusTable
	// FocusSearch means keystrokes go to the search bar.
	FocusSearch
	// FocusConfirm means a delete confirmation modal is active and
	// captures all input until answered.
	FocusConfirm
)

// noticeFadeDelay is how long a transient status-bar notice (export
// done, ticket submitted) stays visible. The export notice doubles as
// the release point for the export's transient state; by the time it
// fades, the file write has long completed.
const noticeFadeDelay = 3 * time.Second

// noticeFadeMsg clears a transient notice from the status bar.
type noticeFadeMsg struct{}

// statusCycle and priorityCycle are the filter states stepped through
// by the s and p keys. Empty string means no constraint.
var (
	statusCycle   = []string{"", string(schema.StatusOpen), string(schema.StatusClosed)}
	priorityCycle = []string{"", string(schema.PriorityLow), string(schema.PriorityMedium), string(schema.PriorityHigh)}
)

// confirmState tracks an in-flight delete confirmation.
type confirmState struct {
	modal    tui.ConfirmModal
	ticketID int64
}

// Model is the top-level bubbletea model: the intake form, the filter
// bar, the ticket table, and the status bar, composed over the shared
// action handlers. The model keeps no authoritative state; the store
// owns the collection, and every action reloads before mutating. The
// tickets held here are a render snapshot, refreshed after each
// action.
type Model struct {
	app  *actions.App
	ctx  context.Context
	keys KeyMap

	theme tui.Theme

	// Terminal dimensions (set by WindowSizeMsg).
	width  int
	height int
	ready  bool

	focus FocusRegion
	form  FormModel

	// Filter state.
	search         SearchBar
	statusCursor   int
	priorityCursor int

	// Render snapshot.
	all     []schema.Ticket
	visible []schema.Ticket
	cursor  int

	confirm *confirmState

	// Transient status-bar notice.
	notice      string
	noticeIsErr bool

	// exportDir is where the e key writes CSV files.
	exportDir string
}

// Config carries the construction parameters for the TUI.
type Config struct {
	// App provides the action handlers (required).
	App *actions.App

	// ThemeName is the resolved theme ("light" or "dark").
	ThemeName string

	// ExportDir is the target directory for CSV exports. Empty
	// means the current working directory.
	ExportDir string
}

// NewModel builds the TUI model with an initial snapshot loaded.
func NewModel(cfg Config) Model {
	exportDir := cfg.ExportDir
	if exportDir == "" {
		exportDir = "."
	}

	model := Model{
		app:       cfg.App,
		ctx:       context.Background(),
		keys:      DefaultKeyMap,
		theme:     tui.ThemeByName(cfg.ThemeName),
		focus:     FocusForm,
		form:      NewForm(),
		exportDir: exportDir,
	}
	model.refresh()
	return model
}

// Init implements tea.Model.
func (model Model) Init() tea.Cmd {
	return nil
}

// criteria assembles the active filter state.
func (model *Model) criteria() ticket.Criteria {
	return ticket.Criteria{
		Status:   statusCycle[model.statusCursor],
		Priority: priorityCycle[model.priorityCursor],
		Query:    model.search.Input,
	}
}

// refresh reloads the render snapshot from the store and clamps the
// table cursor.
func (model *Model) refresh() {
	model.all, model.visible = model.app.List(model.ctx, model.criteria())
	if model.cursor >= len(model.visible) {
		model.cursor = len(model.visible) - 1
	}
	if model.cursor < 0 {
		model.cursor = 0
	}
}

// setNotice shows a transient status-bar message and schedules its
// fade.
func (model *Model) setNotice(text string, isError bool) tea.Cmd {
	model.notice = text
	model.noticeIsErr = isError
	return tea.Tick(noticeFadeDelay, func(time.Time) tea.Msg {
		return noticeFadeMsg{}
	})
}

// Update implements tea.Model. Every branch runs to completion before
// the next message is processed; there is no overlap between two
// handler invocations.
func (model Model) Update(message tea.Msg) (tea.Model, tea.Cmd) {
	switch message := message.(type) {
	case tea.WindowSizeMsg:
		model.width = message.Width
		model.height = message.Height
		model.ready = true
		return model, nil

	case noticeFadeMsg:
		model.notice = ""
		model.noticeIsErr = false
		return model, nil

	case tea.KeyMsg:
		return model.handleKey(message)
	}
	return model, nil
}

func (model Model) handleKey(message tea.KeyMsg) (tea.Model, tea.Cmd) {
	// The confirmation modal captures everything while active.
	if model.focus == FocusConfirm {
		return model.handleConfirmKey(message)
	}

	// ctrl+c always quits; q only outside text inputs.
	if message.Type == tea.KeyCtrlC {
		return model, tea.Quit
	}

	switch model.focus {
	case FocusSearch:
		return model.handleSearchKey(message)
	case FocusForm:
		return model.handleFormKey(message)
	default:
		return model.handleTableKey(message)
	}
}

func (model Model) handleConfirmKey(message tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch message.String() {
	case "y", "Y":
		state := model.confirm
		model.confirm = nil
		model.focus = FocusTable
		deleted, err := model.app.Delete(model.ctx, state.ticketID, func(schema.Ticket) bool {
			// The on-screen modal already asked; this transaction
			// re-checks nothing further.
			return true
		})
		model.refresh()
		if err != nil {
			return model, model.setNotice(writeFailureNotice(err), true)
		}
		if !deleted {
			// Already gone, the silent no-op case.
			return model, nil
		}
		return model, model.setNotice("Ticket deleted.", false)

	case "n", "N", "esc":
		model.confirm = nil
		model.focus = FocusTable
		return model, nil
	}
	return model, nil
}

func (model Model) handleSearchKey(message tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch message.Type {
	case tea.KeyEnter:
		// Keep the query, leave search mode.
		model.search.Active = false
		model.focus = FocusTable
		return model, nil
	case tea.KeyEscape:
		model.search.Clear()
		model.focus = FocusTable
		model.refresh()
		return model, nil
	case tea.KeyBackspace:
		if model.search.HandleBackspace() {
			model.refresh()
		}
		return model, nil
	case tea.KeySpace:
		model.search.HandleRune(' ')
		model.refresh()
		return model, nil
	case tea.KeyRunes:
		for _, character := range message.Runes {
			model.search.HandleRune(character)
		}
		model.refresh()
		return model, nil
	}
	return model, nil
}

func (model Model) handleFormKey(message tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(message, model.keys.FocusToggle):
		model.focus = FocusTable
		model.form.SetActive(false)
		return model, nil
	case key.Matches(message, model.keys.Submit):
		return model.submit()
	}

	event, cmd := model.form.Update(message)
	if event == formEventSubmit {
		return model.submit()
	}
	return model, cmd
}

// submit runs the submit transaction and updates the form and table
// accordingly. On validation failure the form is left untouched so
// the user can fix the flagged field.
func (model Model) submit() (tea.Model, tea.Cmd) {
	_, validationMessage, err := model.app.Submit(model.ctx, model.form.Submission())
	if validationMessage != "" {
		return model, model.setNotice(validationMessage, true)
	}
	if err != nil {
		return model, model.setNotice(writeFailureNotice(err), true)
	}

	// Success: clear the fields, put focus back on Name, keep the
	// active filters as they are.
	model.form.Reset()
	model.focus = FocusForm
	model.form.SetActive(true)
	model.refresh()
	return model, model.setNotice("Ticket submitted.", false)
}

func (model Model) handleTableKey(message tea.KeyMsg) (tea.Model, tea.Cmd) {
	keys := model.keys
	switch {
	case key.Matches(message, keys.Quit):
		return model, tea.Quit

	case key.Matches(message, keys.FocusToggle):
		model.focus = FocusForm
		model.form.SetActive(true)
		return model, nil

	case key.Matches(message, keys.Up):
		if model.cursor > 0 {
			model.cursor--
		}
		return model, nil

	case key.Matches(message, keys.Down):
		if model.cursor < len(model.visible)-1 {
			model.cursor++
		}
		return model, nil

	case key.Matches(message, keys.Home):
		model.cursor = 0
		return model, nil

	case key.Matches(message, keys.End):
		if len(model.visible) > 0 {
			model.cursor = len(model.visible) - 1
		}
		return model, nil

	case key.Matches(message, keys.Toggle):
		if model.cursor >= len(model.visible) {
			return model, nil
		}
		id := model.visible[model.cursor].ID
		_, _, err := model.app.Toggle(model.ctx, id)
		model.refresh()
		if err != nil {
			return model, model.setNotice(writeFailureNotice(err), true)
		}
		return model, nil

	case key.Matches(message, keys.Delete):
		if model.cursor >= len(model.visible) {
			return model, nil
		}
		selected := model.visible[model.cursor]
		model.confirm = &confirmState{
			modal: tui.NewConfirmModal(
				fmt.Sprintf("Delete the ticket from %s?", selected.Name),
				model.theme,
			),
			ticketID: selected.ID,
		}
		model.focus = FocusConfirm
		return model, nil

	case key.Matches(message, keys.Export):
		path, count, err := model.app.Export(model.ctx, model.exportDir)
		if err != nil {
			if errors.Is(err, actions.ErrNoTickets) {
				return model, model.setNotice("No tickets to export.", true)
			}
			return model, model.setNotice(writeFailureNotice(err), true)
		}
		return model, model.setNotice(fmt.Sprintf("Exported %d ticket(s) to %s", count, path), false)

	case key.Matches(message, keys.SearchActivate):
		model.search.Active = true
		model.focus = FocusSearch
		return model, nil

	case key.Matches(message, keys.CycleStatus):
		model.statusCursor = (model.statusCursor + 1) % len(statusCycle)
		model.refresh()
		return model, nil

	case key.Matches(message, keys.CyclePriority):
		model.priorityCursor = (model.priorityCursor + 1) % len(priorityCycle)
		model.refresh()
		return model, nil

	case key.Matches(message, keys.ClearFilters):
		model.statusCursor = 0
		model.priorityCursor = 0
		model.search.Clear()
		model.refresh()
		return model, nil

	case key.Matches(message, keys.ThemeToggle):
		next, err := model.app.ToggleTheme(model.ctx, model.theme.Name)
		if err != nil {
			return model, model.setNotice(writeFailureNotice(err), true)
		}
		model.theme = tui.ThemeByName(next)
		return model, nil
	}
	return model, nil
}

// writeFailureNotice maps a save error to its user-facing advisory.
// A capacity failure gets actionable guidance; anything else is the
// best-effort case.
func writeFailureNotice(err error) string {
	if errors.Is(err, ticketstore.ErrCapacityExceeded) {
		return "Storage is full. Export your tickets (e) and delete old ones to free space."
	}
	return "Could not save changes: " + err.Error()
}

// View implements tea.Model.
func (model Model) View() string {
	if !model.ready {
		return "Loading..."
	}

	display := BuildDisplay(model.all, model.visible)

	sections := []string{
		model.headerView(display),
		model.form.View(model.theme, model.width),
		model.filterBarView(),
		model.tableView(display),
		model.statusBarView(),
	}
	view := strings.Join(sections, "\n")

	if model.confirm != nil {
		// The modal is centered on the terminal, not the content, and
		// the splice needs full-width rows to land on, so square the
		// view to the whole canvas first.
		view = padToCanvas(view, model.width, model.height)
		lines, x, y := model.confirm.modal.Render(model.width, model.height)
		view = tui.SpliceOverlay(view, lines, x, y)
	}
	return view
}

func padToCanvas(view string, width, height int) string {
	lines := strings.Split(view, "\n")
	for len(lines) < height {
		lines = append(lines, "")
	}
	for i, line := range lines {
		if lineWidth := ansi.StringWidth(line); lineWidth < width {
			lines[i] = line + strings.Repeat(" ", width-lineWidth)
		}
	}
	return strings.Join(lines, "\n")
}

func (model *Model) headerView(display Display) string {
	title := lipgloss.NewStyle().
		Foreground(model.theme.HeaderForeground).
		Bold(true).
		Render("Ticketdesk")

	right := display.Summary
	if stats := ticket.Summarize(model.all); stats.Total > 0 {
		right += fmt.Sprintf("  (%d open, %d closed)", stats.Open, stats.Closed)
	}
	summary := lipgloss.NewStyle().
		Foreground(model.theme.FaintText).
		Render(right)

	gap := model.width - ansi.StringWidth(title) - ansi.StringWidth(summary)
	if gap < 1 {
		gap = 1
	}
	rule := lipgloss.NewStyle().
		Foreground(model.theme.BorderColor).
		Render(strings.Repeat("─", max(model.width, 1)))

	return title + strings.Repeat(" ", gap) + summary + "\n" + rule
}

func (model *Model) filterBarView() string {
	label := func(name, value string) string {
		style := lipgloss.NewStyle().Foreground(model.theme.HelpText)
		if value == "" {
			return style.Render(name + ": All")
		}
		active := lipgloss.NewStyle().Foreground(model.theme.HeaderForeground).Bold(true)
		return style.Render(name+": ") + active.Render(value)
	}

	segments := []string{
		label("Status", statusCycle[model.statusCursor]),
		label("Priority", priorityCycle[model.priorityCursor]),
		model.search.View(model.theme),
	}
	return strings.Join(segments, "   ")
}

// Table column widths: date and the enum columns are fixed, the
// remaining width is split between name and description.
const (
	columnDateWidth     = 22
	columnPriorityWidth = 8
	columnStatusWidth   = 8
	columnToggleWidth   = 8
)

func (model *Model) tableView(display Display) string {
	// Rows above and below the table: header+rule (2), form
	// (fieldCount), filter bar (1), table header (1), status bar (1).
	tableHeight := model.height - fieldCount - 5 - 1
	if tableHeight < 3 {
		tableHeight = 3
	}

	if len(display.Rows) == 0 {
		message := lipgloss.NewStyle().
			Foreground(model.theme.FaintText).
			Italic(true).
			Render(display.EmptyMessage)
		return "\n" + message + strings.Repeat("\n", max(tableHeight-2, 0))
	}

	flexible := model.width - columnDateWidth - columnPriorityWidth - columnStatusWidth - columnToggleWidth - 5
	if flexible < 20 {
		flexible = 20
	}
	nameWidth := flexible * 2 / 5
	descriptionWidth := flexible - nameWidth

	headerStyle := lipgloss.NewStyle().Foreground(model.theme.HeaderForeground).Bold(true)
	header := headerStyle.Render(
		pad("Date", columnDateWidth) + " " +
			pad("Name", nameWidth) + " " +
			pad("Description", descriptionWidth) + " " +
			pad("Priority", columnPriorityWidth) + " " +
			pad("Status", columnStatusWidth) + " " +
			pad("", columnToggleWidth),
	)

	// Scroll window keeping the cursor visible.
	visibleRows := tableHeight - 1
	first := 0
	if model.cursor >= visibleRows {
		first = model.cursor - visibleRows + 1
	}
	last := first + visibleRows
	if last > len(display.Rows) {
		last = len(display.Rows)
	}

	lines := []string{header}
	for index := first; index < last; index++ {
		lines = append(lines, model.rowView(display.Rows[index], index == model.cursor, nameWidth, descriptionWidth))
	}
	return strings.Join(lines, "\n")
}

// rowView renders one table row. Field values are drawn as literal
// text; lipgloss only styles, it never interprets.
func (model *Model) rowView(row Row, selected bool, nameWidth, descriptionWidth int) string {
	priorityStyle := lipgloss.NewStyle().Foreground(model.theme.PriorityColor(row.Priority))
	statusStyle := lipgloss.NewStyle().Foreground(model.theme.StatusColor(row.Status))
	toggleStyle := lipgloss.NewStyle().Foreground(model.theme.HelpText)
	textStyle := lipgloss.NewStyle().Foreground(model.theme.NormalText)

	line := textStyle.Render(pad(row.Date, columnDateWidth)+" "+pad(row.Name, nameWidth)+" "+pad(row.Description, descriptionWidth)) + " " +
		priorityStyle.Render(pad(string(row.Priority), columnPriorityWidth)) + " " +
		statusStyle.Render(pad(string(row.Status), columnStatusWidth)) + " " +
		toggleStyle.Render(pad(row.ToggleLabel, columnToggleWidth))

	if selected {
		return lipgloss.NewStyle().
			Background(model.theme.SelectedBackground).
			Foreground(model.theme.SelectedForeground).
			Render(ansi.Strip(line))
	}
	return line
}

func (model *Model) statusBarView() string {
	if model.notice != "" {
		color := model.theme.NoticeText
		if model.noticeIsErr {
			color = model.theme.ErrorText
		}
		return lipgloss.NewStyle().Foreground(color).Render(model.notice)
	}

	help := "Tab switch pane"
	if model.focus == FocusForm {
		help += "  Enter next field  C-s submit"
	} else {
		help += "  Enter close/reopen  d delete  e export  / search  s status  p priority  t theme  q quit"
	}
	return lipgloss.NewStyle().Foreground(model.theme.HelpText).Render(help)
}

// pad truncates or right-pads a value to an exact display width,
// ANSI-aware.
func pad(value string, width int) string {
	if width <= 0 {
		return ""
	}
	if ansi.StringWidth(value) > width {
		return ansi.Truncate(value, width-1, "…")
	}
	return value + strings.Repeat(" ", width-ansi.StringWidth(value))
}
