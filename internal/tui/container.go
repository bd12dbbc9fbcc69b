package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/h0rv/bpmdash/internal/domain"
	"github.com/muesli/reflow/wordwrap"
)

// ContainerProps configures a chart container. The container keeps no state;
// the current chart type and its change handler belong to the caller.
type ContainerProps struct {
	Title       string
	Description string

	// ChartType and OnChange together enable the chart type selector.
	// When either is missing the selector is not rendered.
	ChartType domain.ChartType
	OnChange  func(domain.ChartType)

	Width   int // Outer width including border
	Height  int // Height of the plotting region
	Focused bool
}

// HasSelector reports whether the chart type selector is shown.
func (p ContainerProps) HasSelector() bool {
	return p.ChartType != "" && p.OnChange != nil
}

// Select hands t to OnChange before returning. It reports false, without
// calling anything, when the selector is hidden or t is not a known type.
func (p ContainerProps) Select(t domain.ChartType) bool {
	if !p.HasSelector() || !t.Valid() {
		return false
	}
	p.OnChange(t)
	return true
}

// ChartContainer lays out the title, the optional description and selector and
// a fixed-height region holding child.
func ChartContainer(p ContainerProps, child string) string {
	inner := p.Width - 4 // Border plus horizontal padding
	if inner < 10 {
		inner = 10
	}

	header := PanelTitleStyle.Render(p.Title)
	if p.HasSelector() {
		selector := renderSelector(p.ChartType)
		gap := inner - lipgloss.Width(header) - lipgloss.Width(selector)
		if gap < 1 {
			header = lipgloss.JoinVertical(lipgloss.Left, header, selector)
		} else {
			header += strings.Repeat(" ", gap) + selector
		}
	}

	sections := []string{header}
	if p.Description != "" {
		sections = append(sections, DescriptionStyle.Render(wordwrap.String(p.Description, inner)))
	}

	height := p.Height
	if height < 1 {
		height = 1
	}
	region := lipgloss.Place(inner, height, lipgloss.Left, lipgloss.Top, child)
	sections = append(sections, region)

	style := panelStyle
	if p.Focused {
		style = focusedPanelStyle
	}
	return style.Width(inner + 2).Render(lipgloss.JoinVertical(lipgloss.Left, sections...))
}

func renderSelector(current domain.ChartType) string {
	parts := make([]string, len(domain.ChartTypes))
	for i, t := range domain.ChartTypes {
		if t == current {
			parts[i] = SelectedItemStyle.Render("[" + string(t) + "]")
		} else {
			parts[i] = NormalItemStyle.Render(" " + string(t) + " ")
		}
	}
	return strings.Join(parts, "")
}
