package tui

import (
	"fmt"

	"github.com/MKhiriev/dealer-desk/internal/service"
	"github.com/MKhiriev/dealer-desk/models"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
)

type listModel struct {
	idx         int
	loading     bool
	refreshing  bool
	spinner     spinner.Model
	search      textinput.Model
	searchFocus bool
	sort        service.SortKey
	status      string
}

func newListModel() listModel {
	s := spinner.New()
	s.Spinner = spinner.MiniDot

	search := textinput.New()
	search.Placeholder = "brand or model"
	search.Width = 24

	return listModel{spinner: s, search: search, loading: true}
}

// cycleSort advances to the next sort key in the fixed cycle.
func (m listModel) cycleSort() listModel {
	for i, k := range service.SortKeys {
		if k == m.sort {
			m.sort = service.SortKeys[(i+1)%len(service.SortKeys)]
			return m
		}
	}
	m.sort = service.SortKeys[0]
	return m
}

func sortLabel(k service.SortKey) string {
	switch k {
	case service.SortPriceAsc:
		return "price ↑"
	case service.SortPriceDesc:
		return "price ↓"
	case service.SortYearAsc:
		return "year ↑"
	case service.SortYearDesc:
		return "year ↓"
	default:
		return "none"
	}
}

func (m listModel) View(cars []models.Car, uploading map[int64]struct{}, user *models.User) string {
	header := titleStyle.Render("Dealer Desk — Inventory")
	if user != nil {
		header += "  " + helpStyle.Render(user.Username+" ("+user.Role+")")
	}
	if m.refreshing {
		header += "  " + m.spinner.View()
	}
	out := header + "\n\n"

	out += "Search: [" + m.search.View() + "]  Sort: " + sortLabel(m.sort) + "\n\n"

	if m.loading {
		out += "Loading...\n"
	} else if len(cars) == 0 {
		out += "No vehicles\n"
	} else {
		for i, car := range cars {
			cursor := "  "
			if i == m.idx {
				cursor = "> "
			}
			marker := ""
			if _, ok := uploading[car.ID]; ok {
				marker = " ⇡img"
			}
			out += fmt.Sprintf("%s%s %s — %d, %.0f%s\n", cursor, car.Brand, car.Model, car.ProductionYear, car.Price, marker)
		}
	}

	if m.status != "" {
		out += "\n" + m.status + "\n"
	}

	help := "enter open  / search  o sort  r refresh  L sign in  q quit"
	if user != nil {
		help = "enter open  n new  e edit  d delete  / search  o sort  r refresh  L logout  q quit"
	}
	out += "\n" + helpStyle.Render(help)
	return out
}
