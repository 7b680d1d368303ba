// Package tui renders the product list view in the terminal. It maps key
// presses to view transitions and runs shop requests as bubbletea commands.
//
// Requests are not serialized: a command runs for every submit or save, and
// whichever response arrives last decides the final state.
package tui

import (
	"context"
	"strconv"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/rs/zerolog"

	"github.com/rogerio-castellano/shop-inventory/internal/models"
	"github.com/rogerio-castellano/shop-inventory/internal/view"
)

// ShopClient is the subset of the shop API the view uses.
type ShopClient interface {
	List(ctx context.Context) ([]models.Product, error)
	Create(ctx context.Context, in models.ProductInput) (models.Product, error)
	Update(ctx context.Context, id int, in models.ProductInput) (models.Product, error)
}

type focusArea int

const (
	focusTable focusArea = iota
	focusAddForm
	focusEditRow
)

const (
	fieldName = iota
	fieldQuantity
	fieldPrice
	fieldCount
)

type productsLoadedMsg struct {
	products []models.Product
	err      error
}

type productCreatedMsg struct {
	product models.Product
	err     error
}

type productSavedMsg struct {
	id      int
	product models.Product
	err     error
}

// Model is the bubbletea model of the product list view.
type Model struct {
	client  ShopClient
	logger  zerolog.Logger
	timeout time.Duration

	state  view.State
	cursor int
	focus  focusArea
	field  int

	addInputs  [fieldCount]textinput.Model
	editInputs [fieldCount]textinput.Model

	keys   keyMap
	help   help.Model
	styles Styles
}

// New returns the view with nothing loaded. The product list is requested by Init.
func New(client ShopClient, logger zerolog.Logger, timeout time.Duration) Model {
	m := Model{
		client:  client,
		logger:  logger,
		timeout: timeout,
		state:   view.New(),
		keys:    defaultKeyMap(),
		help:    help.New(),
		styles:  DefaultStyles(),
	}
	for i := range m.addInputs {
		m.addInputs[i] = newInput("")
		m.editInputs[i] = newInput("")
	}
	m.addInputs[fieldName].Placeholder = "Product name"
	m.resetAddInputs()
	return m
}

func newInput(prompt string) textinput.Model {
	ti := textinput.New()
	ti.Prompt = prompt
	ti.CharLimit = 0
	ti.Width = 16
	return ti
}

// State returns the current view state.
func (m Model) State() view.State {
	return m.state
}

// Init issues the one and only list request.
func (m Model) Init() tea.Cmd {
	return m.loadProducts()
}

func (m Model) loadProducts() tea.Cmd {
	client, timeout := m.client, m.timeout
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), timeout)
		defer cancel()
		products, err := client.List(ctx)
		return productsLoadedMsg{products: products, err: err}
	}
}

func (m Model) createProduct(in models.ProductInput) tea.Cmd {
	client, timeout := m.client, m.timeout
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), timeout)
		defer cancel()
		p, err := client.Create(ctx, in)
		return productCreatedMsg{product: p, err: err}
	}
}

func (m Model) saveProduct(id int, in models.ProductInput) tea.Cmd {
	client, timeout := m.client, m.timeout
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), timeout)
		defer cancel()
		p, err := client.Update(ctx, id, in)
		return productSavedMsg{id: id, product: p, err: err}
	}
}

// Update handles messages.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case productsLoadedMsg:
		if msg.err != nil {
			m.logger.Error().Err(msg.err).Msg("Error fetching products")
			m.state = m.state.LoadFailed()
			return m, nil
		}
		m.state = m.state.Loaded(msg.products)
		m.clampCursor()
		return m, nil

	case productCreatedMsg:
		if msg.err != nil {
			m.logger.Error().Err(msg.err).Msg("Error adding product")
			m.state = m.state.CreateFailed()
			return m, nil
		}
		m.state = m.state.Created(msg.product)
		m.resetAddInputs()
		if m.focus == focusAddForm {
			m.focusTable()
		}
		return m, nil

	case productSavedMsg:
		if msg.err != nil {
			m.logger.Error().Err(msg.err).Int("id", msg.id).Msg("Error updating product")
			m.state = m.state.SaveFailed()
			return m, nil
		}
		m.state = m.state.Saved(msg.product)
		if m.focus == focusEditRow {
			m.focusTable()
		}
		return m, nil

	case tea.WindowSizeMsg:
		m.help.Width = msg.Width
		return m, nil

	case tea.KeyMsg:
		if key.Matches(msg, m.keys.Abort) {
			return m, tea.Quit
		}
		switch m.focus {
		case focusAddForm:
			return m.updateAddForm(msg)
		case focusEditRow:
			return m.updateEditRow(msg)
		default:
			return m.updateTable(msg)
		}
	}

	return m, nil
}

func (m Model) updateTable(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit

	case key.Matches(msg, m.keys.Add):
		m.state = m.state.ToggleAddForm()
		if m.state.AddForm.Visible {
			cmd := m.focusAddForm(fieldName)
			return m, cmd
		}
		return m, nil

	case key.Matches(msg, m.keys.Up):
		if m.cursor > 0 {
			m.cursor--
		}

	case key.Matches(msg, m.keys.Down):
		if m.cursor < len(m.state.Products)-1 {
			m.cursor++
		}

	case key.Matches(msg, m.keys.Edit):
		if len(m.state.Products) == 0 {
			return m, nil
		}
		p := m.state.Products[m.cursor]
		if !m.state.Editing(p.ID) {
			m.state = m.state.EnterEdit(p)
			m.fillEditInputs()
		}
		cmd := m.focusEditRow(fieldName)
		return m, cmd

	case key.Matches(msg, m.keys.Save):
		return m, m.save()
	}
	return m, nil
}

func (m Model) updateAddForm(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Back):
		m.state = m.state.ToggleAddForm()
		m.focusTable()
		return m, nil
	case key.Matches(msg, m.keys.Next):
		cmd := m.focusAddForm((m.field + 1) % fieldCount)
		return m, cmd
	case key.Matches(msg, m.keys.Prev):
		cmd := m.focusAddForm((m.field + fieldCount - 1) % fieldCount)
		return m, cmd
	case key.Matches(msg, m.keys.Submit):
		return m, m.createProduct(m.state.AddPayload())
	}

	var cmd tea.Cmd
	m.addInputs[m.field], cmd = m.addInputs[m.field].Update(msg)
	value := m.addInputs[m.field].Value()
	switch m.field {
	case fieldName:
		m.state = m.state.SetAddName(value)
	case fieldQuantity:
		m.state = m.state.SetAddQuantity(value)
	case fieldPrice:
		m.state = m.state.SetAddPrice(value)
	}
	return m, cmd
}

func (m Model) updateEditRow(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Back):
		m.state = m.state.CancelEdit()
		m.focusTable()
		return m, nil
	case key.Matches(msg, m.keys.Next):
		cmd := m.focusEditRow((m.field + 1) % fieldCount)
		return m, cmd
	case key.Matches(msg, m.keys.Prev):
		cmd := m.focusEditRow((m.field + fieldCount - 1) % fieldCount)
		return m, cmd
	case key.Matches(msg, m.keys.Submit):
		return m, m.save()
	}

	var cmd tea.Cmd
	m.editInputs[m.field], cmd = m.editInputs[m.field].Update(msg)
	value := m.editInputs[m.field].Value()
	switch m.field {
	case fieldName:
		m.state = m.state.EditName(value)
	case fieldQuantity:
		m.state = m.state.EditQuantity(value)
	case fieldPrice:
		m.state = m.state.EditPrice(value)
	}
	return m, cmd
}

// save issues the update request for the draft, or nothing when there is no draft.
func (m Model) save() tea.Cmd {
	id, payload, ok := m.state.SaveRequest()
	if !ok {
		return nil
	}
	return m.saveProduct(id, payload)
}

func (m *Model) focusTable() {
	m.focus = focusTable
	for i := range m.addInputs {
		m.addInputs[i].Blur()
		m.editInputs[i].Blur()
	}
}

func (m *Model) focusAddForm(field int) tea.Cmd {
	m.focusTable()
	m.focus = focusAddForm
	m.field = field
	return m.addInputs[field].Focus()
}

func (m *Model) focusEditRow(field int) tea.Cmd {
	m.focusTable()
	m.focus = focusEditRow
	m.field = field
	return m.editInputs[field].Focus()
}

func (m *Model) resetAddInputs() {
	f := m.state.AddForm.Fields
	m.addInputs[fieldName].SetValue(f.ProductName)
	m.addInputs[fieldQuantity].SetValue(formatInt(f.Quantity))
	m.addInputs[fieldPrice].SetValue(formatFloat(f.Price))
}

func (m *Model) fillEditInputs() {
	if m.state.Draft == nil {
		return
	}
	f := m.state.Draft.Fields
	m.editInputs[fieldName].SetValue(f.ProductName)
	m.editInputs[fieldQuantity].SetValue(formatInt(f.Quantity))
	m.editInputs[fieldPrice].SetValue(formatFloat(f.Price))
}

func (m *Model) clampCursor() {
	if m.cursor >= len(m.state.Products) {
		m.cursor = len(m.state.Products) - 1
	}
	if m.cursor < 0 {
		m.cursor = 0
	}
}

func formatInt(n *int) string {
	if n == nil {
		return ""
	}
	return strconv.Itoa(*n)
}

func formatFloat(f *float64) string {
	if f == nil {
		return ""
	}
	return strconv.FormatFloat(*f, 'f', -1, 64)
}
