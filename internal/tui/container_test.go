package tui

import (
	"strings"
	"testing"

	"github.com/h0rv/bpmdash/internal/domain"
	"github.com/stretchr/testify/assert"
)

func TestContainerProps_HasSelector(t *testing.T) {
	noop := func(domain.ChartType) {}

	assert.True(t, ContainerProps{ChartType: domain.ChartBar, OnChange: noop}.HasSelector())
	assert.False(t, ContainerProps{ChartType: domain.ChartBar}.HasSelector())
	assert.False(t, ContainerProps{OnChange: noop}.HasSelector())
}

func TestContainerProps_Select(t *testing.T) {
	var got []domain.ChartType
	props := ContainerProps{
		ChartType: domain.ChartBar,
		OnChange:  func(t domain.ChartType) { got = append(got, t) },
	}

	assert.True(t, props.Select(domain.ChartPie))
	assert.Equal(t, []domain.ChartType{domain.ChartPie}, got, "handler runs before Select returns")

	assert.False(t, props.Select(domain.ChartType("radar")))
	assert.Len(t, got, 1)

	props.OnChange = nil
	assert.False(t, props.Select(domain.ChartLine))
}

func TestChartContainer(t *testing.T) {
	t.Run("with selector", func(t *testing.T) {
		out := ChartContainer(ContainerProps{
			Title:       "Defects by Code",
			Description: "Occurrences per defect code.",
			ChartType:   domain.ChartLine,
			OnChange:    func(domain.ChartType) {},
			Width:       70,
			Height:      4,
		}, "child")

		assert.Contains(t, out, "Defects by Code")
		assert.Contains(t, out, "Occurrences per defect code.")
		assert.Contains(t, out, "[line]")
		assert.Contains(t, out, "pie")
		assert.Contains(t, out, "child")
	})

	t.Run("without selector", func(t *testing.T) {
		out := ChartContainer(ContainerProps{
			Title:     "Summary",
			ChartType: domain.ChartLine,
			Width:     70,
			Height:    4,
		}, "child")

		assert.Contains(t, out, "Summary")
		assert.NotContains(t, out, "[line]")
		assert.NotContains(t, out, "pie")
	})

	t.Run("fixed height region", func(t *testing.T) {
		small := ChartContainer(ContainerProps{Title: "T", Width: 40, Height: 3}, "a")
		large := ChartContainer(ContainerProps{Title: "T", Width: 40, Height: 8}, "a")
		assert.Equal(t, 5, strings.Count(large, "\n")-strings.Count(small, "\n"))
	})
}
