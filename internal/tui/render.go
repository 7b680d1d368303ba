package tui

import (
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/rogerio-castellano/shop-inventory/internal/models"
)

var tableHeaders = []string{"ID", "Name", "Quantity", "Price", "Action"}

// View renders the heading, the add form section and the product table.
func (m Model) View() string {
	var sb strings.Builder

	sb.WriteString(m.styles.Heading.Render("Products"))
	sb.WriteString("\n\n")

	sb.WriteString(m.styles.Section.Render("Add Product"))
	sb.WriteString("\n")
	sb.WriteString(m.styles.Button.Render("[a] Add Product"))
	sb.WriteString("\n")
	if m.state.AddForm.Visible {
		sb.WriteString(m.renderAddForm())
		sb.WriteString("\n")
	}
	sb.WriteString("\n")

	sb.WriteString(m.styles.Section.Render("Product List"))
	sb.WriteString("\n")
	sb.WriteString(m.renderTable())
	sb.WriteString("\n")

	if m.focus == focusTable {
		sb.WriteString(m.help.View(m.keys))
	} else {
		sb.WriteString(m.help.View(formKeys(m.keys)))
	}
	return sb.String()
}

func (m Model) renderAddForm() string {
	labels := [fieldCount]string{"Product Name:", "Quantity:", "Price:"}
	var rows []string
	for i, label := range labels {
		rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top,
			m.styles.Label.Render(label),
			m.addInputs[i].View(),
		))
	}
	rows = append(rows, m.styles.Button.Render("[enter] Add"))
	return m.styles.Popup.Render(lipgloss.JoinVertical(lipgloss.Left, rows...))
}

// renderTable lays the rows out in columns as wide as their widest cell.
func (m Model) renderTable() string {
	rows := make([][]string, 0, len(m.state.Products))
	for _, p := range m.state.Products {
		rows = append(rows, m.rowCells(p))
	}

	widths := make([]int, len(tableHeaders))
	for i, h := range tableHeaders {
		widths[i] = lipgloss.Width(h)
	}
	for _, row := range rows {
		for i, cell := range row {
			if w := lipgloss.Width(cell); w > widths[i] {
				widths[i] = w
			}
		}
	}
	// lipgloss widths include the cell padding
	for i := range widths {
		widths[i] += 2
	}

	sep := m.styles.Muted.Render("|")
	var sb strings.Builder
	for i, h := range tableHeaders {
		sb.WriteString(m.styles.Header.Width(widths[i]).Render(h))
		if i < len(tableHeaders)-1 {
			sb.WriteString(sep)
		}
	}
	sb.WriteString("\n")

	total := len(tableHeaders) - 1
	for _, w := range widths {
		total += w
	}
	sb.WriteString(m.styles.Muted.Render(strings.Repeat("-", total)))
	sb.WriteString("\n")

	for r, row := range rows {
		style := m.styles.Cell
		if r == m.cursor {
			style = m.styles.Selected
		}
		for i, cell := range row {
			sb.WriteString(style.Width(widths[i]).Render(cell))
			if i < len(row)-1 {
				sb.WriteString(sep)
			}
		}
		sb.WriteString("\n")
	}
	return sb.String()
}

func (m Model) rowCells(p models.Product) []string {
	if m.state.Editing(p.ID) {
		return []string{
			strconv.Itoa(p.ID),
			m.editInputs[fieldName].View(),
			m.editInputs[fieldQuantity].View(),
			m.editInputs[fieldPrice].View(),
			"[Save]",
		}
	}
	return []string{
		strconv.Itoa(p.ID),
		p.ProductName,
		strconv.Itoa(p.Quantity),
		strconv.FormatFloat(p.Price, 'f', -1, 64),
		"[Edit]",
	}
}
