package tui

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/theirongolddev/partyplan/internal/budget"
	"github.com/theirongolddev/partyplan/internal/cli"
	"github.com/theirongolddev/partyplan/internal/model"
	"github.com/theirongolddev/partyplan/internal/templates"
	"github.com/theirongolddev/partyplan/internal/tui/components"
	"github.com/theirongolddev/partyplan/internal/tui/theme"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"
)

// itemsState tracks the items tab state.
type itemsState struct {
	cursor      int // index into the visible items
	templateIdx int // last template applied with "t"; starts at the default
}

// itemFormValues backs the add/edit form. It lives on the heap so the
// form's field pointers stay valid while App is copied by value.
type itemFormValues struct {
	editID  string // empty when adding
	name    string
	price   string
	qty     string
	peanuts bool
}

func (a App) selectedItem() (model.Item, bool) {
	visible := a.plan.VisibleItems()
	if a.items.cursor < 0 || a.items.cursor >= len(visible) {
		return model.Item{}, false
	}
	return visible[a.items.cursor], true
}

func (a App) updateItemsKey(k string) (App, tea.Cmd, bool) {
	switch k {
	case "j", "down":
		a.moveCursor(1)
	case "k", "up":
		a.moveCursor(-1)
	case "g":
		a.items.cursor = 0
	case "G":
		a.items.cursor = len(a.plan.VisibleItems()) - 1
		a.clampCursors()
	case "a":
		return a.openItemForm(model.Item{Quantity: 1}, "")
	case "e", "enter":
		it, ok := a.selectedItem()
		if !ok {
			return a, nil, true
		}
		return a.openItemForm(it, it.ID)
	case "d":
		it, ok := a.selectedItem()
		if !ok {
			return a, nil, true
		}
		p := a.plan.Clone()
		if err := p.RemoveItem(it.ID); err != nil {
			a.flash = err.Error()
			return a, nil, true
		}
		cmd := a.commit(p, "Removed "+itemName(it))
		return a, cmd, true
	case "+", "=":
		return a.editSelected(func(it *model.Item) { it.Quantity++ })
	case "-", "_":
		return a.editSelected(func(it *model.Item) {
			if it.Quantity > 0 {
				it.Quantity--
			}
		})
	case "p":
		return a.editSelected(func(it *model.Item) { it.ContainsPeanuts = !it.ContainsPeanuts })
	case "f":
		p := a.plan.Clone()
		p.PeanutFreeOnly = !p.PeanutFreeOnly
		cmd := a.commit(p, "Peanut filter "+onOff(p.PeanutFreeOnly))
		return a, cmd, true
	case "t":
		all := templates.All()
		a.items.templateIdx = (a.items.templateIdx + 1) % len(all)
		tpl := all[a.items.templateIdx]
		p := a.plan.Clone()
		p.Items = tpl.Items
		cmd := a.commit(p, "Applied template "+tpl.Name)
		return a, cmd, true
	default:
		return a, nil, false
	}
	return a, nil, true
}

// editSelected applies edit to the selected visible item and saves.
func (a App) editSelected(edit func(*model.Item)) (App, tea.Cmd, bool) {
	it, ok := a.selectedItem()
	if !ok {
		return a, nil, true
	}
	p := a.plan.Clone()
	if _, err := p.UpdateItem(it.ID, edit); err != nil {
		a.flash = err.Error()
		return a, nil, true
	}
	cmd := a.commit(p, "")
	return a, cmd, true
}

// ─── Item Form ──────────────────────────────────────────────────

func (a App) openItemForm(it model.Item, editID string) (App, tea.Cmd, bool) {
	vals := &itemFormValues{
		editID:  editID,
		name:    it.Name,
		price:   strconv.FormatFloat(it.Price, 'f', -1, 64),
		qty:     strconv.Itoa(it.Quantity),
		peanuts: it.ContainsPeanuts,
	}
	if editID == "" && it.Price == 0 {
		vals.price = ""
	}

	a.formVals = vals
	a.form = newItemForm(vals).WithWidth(a.formWidth())
	cmd := a.form.Init()
	return a, cmd, true
}

func newItemForm(vals *itemFormValues) *huh.Form {
	km := huh.NewDefaultKeyMap()
	km.Quit = key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "cancel"))

	return huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Name").
				Placeholder("Pretzel Twists (15 oz)").
				Value(&vals.name),
			huh.NewInput().
				Title("Price (USD)").
				Placeholder("2.50").
				Value(&vals.price).
				Validate(func(s string) error {
					_, err := cli.ParseCost(s)
					return err
				}),
			huh.NewInput().
				Title("Quantity").
				Value(&vals.qty).
				Validate(func(s string) error {
					_, err := cli.ParseCount(s)
					return err
				}),
			huh.NewConfirm().
				Title("Contains peanuts?").
				Value(&vals.peanuts),
		),
	).WithKeyMap(km).WithShowHelp(true)
}

func (a App) formWidth() int {
	w := components.CardInnerWidth(a.contentWidth())
	if w > 60 {
		w = 60
	}
	return w
}

func (a App) formTitle() string {
	if a.formVals != nil && a.formVals.editID != "" {
		return "Edit Item"
	}
	return "Add Item"
}

func (a App) updateItemForm(msg tea.Msg) (tea.Model, tea.Cmd) {
	form, formCmd := a.form.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		a.form = f
	}

	switch a.form.State {
	case huh.StateCompleted:
		vals := a.formVals
		a.form = nil
		a.formVals = nil
		cmd := a.submitItemForm(vals)
		return a, cmd
	case huh.StateAborted:
		a.form = nil
		a.formVals = nil
		a.flash = "Cancelled"
		return a, nil
	}

	return a, formCmd
}

// submitItemForm applies completed form values to the plan.
func (a *App) submitItemForm(vals *itemFormValues) tea.Cmd {
	price, err := cli.ParseCost(vals.price)
	if err != nil {
		a.flash = err.Error()
		return nil
	}
	qty, err := cli.ParseCount(vals.qty)
	if err != nil {
		a.flash = err.Error()
		return nil
	}
	name := strings.TrimSpace(vals.name)

	p := a.plan.Clone()
	if vals.editID == "" {
		it, err := p.AddItem(model.Item{Name: name, Price: price, Quantity: qty, ContainsPeanuts: vals.peanuts})
		if err != nil {
			a.flash = err.Error()
			return nil
		}
		cmd := a.commit(p, "Added "+itemName(it))
		if idx := model.FindItem(a.plan.VisibleItems(), it.ID); idx >= 0 {
			a.items.cursor = idx
		}
		return cmd
	}

	it, err := p.UpdateItem(vals.editID, func(it *model.Item) {
		it.Name = name
		it.Price = price
		it.Quantity = qty
		it.ContainsPeanuts = vals.peanuts
	})
	if err != nil {
		a.flash = err.Error()
		return nil
	}
	return a.commit(p, "Updated "+itemName(it))
}

// ─── Rendering ──────────────────────────────────────────────────

func (a App) renderItemsTab(cw int) string {
	t := theme.Active

	headerStyle := lipgloss.NewStyle().Foreground(t.Accent).Background(t.Surface).Bold(true)
	rowStyle := lipgloss.NewStyle().Foreground(t.TextPrimary).Background(t.Surface)
	selectedStyle := lipgloss.NewStyle().Foreground(t.TextPrimary).Background(t.SurfaceBright).Bold(true)
	dimStyle := lipgloss.NewStyle().Foreground(t.TextDim).Background(t.Surface)
	warnStyle := lipgloss.NewStyle().Foreground(t.Orange).Background(t.Surface)

	innerW := components.CardInnerWidth(cw)
	const (
		qtyW   = 5
		priceW = 9
		lineW  = 10
		nutW   = 4
	)
	nameW := innerW - qtyW - priceW - lineW - nutW - 4
	if nameW < 10 {
		nameW = 10
	}

	visible := a.plan.VisibleItems()

	var body strings.Builder
	body.WriteString(headerStyle.Render(fmt.Sprintf("%-*s %*s %*s %*s %-*s",
		nameW, "Item", qtyW, "Qty", priceW, "Price", lineW, "Line", nutW, "Nut")))
	body.WriteString("\n")

	if len(visible) == 0 {
		body.WriteString(dimStyle.Render("No items. Press a to add one or t for a template."))
		body.WriteString("\n")
	}

	for i, it := range visible {
		nut := ""
		if it.ContainsPeanuts {
			nut = "yes"
		}
		line := fmt.Sprintf("%-*s %*d %*s %*s %-*s",
			nameW, truncStr(itemName(it), nameW),
			qtyW, it.Quantity,
			priceW, cli.FormatCost(it.Price),
			lineW, cli.FormatCost(it.LineCost()),
			nutW, nut)
		// %-*s pads by bytes; re-pad by display width for non-ASCII names
		line = lipgloss.NewStyle().Width(innerW).Render(line)

		if i == a.items.cursor {
			body.WriteString(selectedStyle.Render(line))
		} else {
			body.WriteString(rowStyle.Render(line))
		}
		body.WriteString("\n")
	}

	hidden := len(a.plan.Items) - len(visible)
	if hidden > 0 {
		body.WriteString(warnStyle.Render(fmt.Sprintf("%d peanut item(s) hidden by the filter (f to show)", hidden)))
		body.WriteString("\n")
	}

	total := budget.PlanTotal(a.plan)
	title := fmt.Sprintf("Shopping List  %d items  %s", len(visible), cli.FormatCost(total))
	return components.ContentCard(title, strings.TrimRight(body.String(), "\n"), cw)
}

func itemName(it model.Item) string {
	if it.Name == "" {
		return "Item"
	}
	return it.Name
}

func onOff(b bool) string {
	if b {
		return "on"
	}
	return "off"
}
