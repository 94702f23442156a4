package tui

import (
	"fmt"
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// BalanceChart plots one balance walk as an ASCII line chart, with an
// optional horizontal target line.
type BalanceChart struct {
	Title  string
	Points []float64
	Labels []string // X-axis labels, one per point
	Target float64  // zero means no target line
	Width  int
	Height int
	Color  lipgloss.Color
}

// NewBalanceChart creates a chart with default dimensions.
func NewBalanceChart(title string) *BalanceChart {
	return &BalanceChart{
		Title:  title,
		Width:  60,
		Height: 12,
		Color:  ColorPrimary,
	}
}

// WithPoints sets the series to plot.
func (c *BalanceChart) WithPoints(points []float64) *BalanceChart {
	c.Points = points
	return c
}

// WithLabels sets the X-axis labels.
func (c *BalanceChart) WithLabels(labels []string) *BalanceChart {
	c.Labels = labels
	return c
}

// WithTarget draws a horizontal marker at the target balance.
func (c *BalanceChart) WithTarget(target float64) *BalanceChart {
	c.Target = target
	return c
}

// WithSize sets the chart dimensions.
func (c *BalanceChart) WithSize(width, height int) *BalanceChart {
	c.Width = width
	c.Height = height
	return c
}

// Render returns the styled chart.
func (c *BalanceChart) Render() string {
	if len(c.Points) == 0 {
		return SubtitleStyle.Render("No data to display")
	}

	var content strings.Builder
	if c.Title != "" {
		content.WriteString(TitleStyle.Render(c.Title))
		content.WriteString("\n\n")
	}

	minVal, maxVal := c.minMax()
	content.WriteString(c.renderGrid(minVal, maxVal))
	return content.String()
}

func (c *BalanceChart) minMax() (float64, float64) {
	minVal := math.Inf(1)
	maxVal := math.Inf(-1)
	for _, p := range c.Points {
		if p < minVal {
			minVal = p
		}
		if p > maxVal {
			maxVal = p
		}
	}
	if c.Target > 0 {
		if c.Target < minVal {
			minVal = c.Target
		}
		if c.Target > maxVal {
			maxVal = c.Target
		}
	}
	if maxVal == minVal {
		maxVal = minVal + 1
	}
	padding := (maxVal - minVal) * 0.1
	return minVal - padding, maxVal + padding
}

func (c *BalanceChart) renderGrid(minVal, maxVal float64) string {
	yAxisWidth := 10
	chartWidth := c.Width - yAxisWidth
	if chartWidth < 10 {
		chartWidth = 10
	}

	grid := make([][]rune, c.Height)
	for i := range grid {
		grid[i] = make([]rune, chartWidth)
		for j := range grid[i] {
			grid[i][j] = ' '
		}
	}

	// Target line first so data points draw over it.
	if c.Target > 0 {
		ty := c.yPos(c.Target, minVal, maxVal)
		if ty >= 0 && ty < c.Height {
			for x := 0; x < chartWidth; x++ {
				grid[ty][x] = '·'
			}
		}
	}

	for i, p := range c.Points {
		x := c.xPos(i, chartWidth)
		y := c.yPos(p, minVal, maxVal)
		if i > 0 {
			prevX := c.xPos(i-1, chartWidth)
			prevY := c.yPos(c.Points[i-1], minVal, maxVal)
			drawLine(grid, prevX, prevY, x, y, '·')
		}
		if x >= 0 && x < chartWidth && y >= 0 && y < c.Height {
			grid[y][x] = '●'
		}
	}

	var output strings.Builder
	yAxisStyle := lipgloss.NewStyle().
		Foreground(ColorMuted).
		Width(yAxisWidth).
		Align(lipgloss.Right)

	valueRange := maxVal - minVal
	for i, row := range grid {
		yValue := maxVal - (float64(i)/float64(c.Height-1))*valueRange
		output.WriteString(yAxisStyle.Render(formatChartValue(yValue)))
		output.WriteString(" │ ")
		output.WriteString(string(row))
		output.WriteString("\n")
	}

	output.WriteString(strings.Repeat(" ", yAxisWidth))
	output.WriteString(" └")
	output.WriteString(strings.Repeat("─", chartWidth))
	output.WriteString("\n")

	if len(c.Labels) > 0 {
		output.WriteString(c.renderXAxisLabels(yAxisWidth, chartWidth))
	}
	return output.String()
}

func (c *BalanceChart) xPos(i, chartWidth int) int {
	if len(c.Points) <= 1 {
		return 0
	}
	return int(float64(i) / float64(len(c.Points)-1) * float64(chartWidth-1))
}

func (c *BalanceChart) yPos(value, minVal, maxVal float64) int {
	return c.Height - 1 - int((value-minVal)/(maxVal-minVal)*float64(c.Height-1))
}

// drawLine connects two grid cells using Bresenham's algorithm, never
// overwriting an existing data point.
func drawLine(grid [][]rune, x0, y0, x1, y1 int, char rune) {
	dx := abs(x1 - x0)
	dy := abs(y1 - y0)

	sx := -1
	if x0 < x1 {
		sx = 1
	}
	sy := -1
	if y0 < y1 {
		sy = 1
	}

	err := dx - dy
	x, y := x0, y0
	for {
		if y >= 0 && y < len(grid) && x >= 0 && x < len(grid[0]) {
			if grid[y][x] == ' ' {
				grid[y][x] = char
			}
		}
		if x == x1 && y == y1 {
			break
		}
		e2 := 2 * err
		if e2 > -dy {
			err -= dy
			x += sx
		}
		if e2 < dx {
			err += dx
			y += sy
		}
	}
}

func (c *BalanceChart) renderXAxisLabels(yAxisWidth, chartWidth int) string {
	maxLabels := 4
	step := len(c.Labels) / maxLabels
	if step == 0 {
		step = 1
	}

	labelStyle := lipgloss.NewStyle().Foreground(ColorMuted)
	var output strings.Builder
	output.WriteString(strings.Repeat(" ", yAxisWidth+3))
	for i := 0; i < len(c.Labels); i += step {
		if i > 0 {
			spacing := chartWidth / maxLabels
			pad := spacing - len(c.Labels[i-step])
			if pad < 1 {
				pad = 1
			}
			output.WriteString(strings.Repeat(" ", pad))
		}
		output.WriteString(labelStyle.Render(c.Labels[i]))
	}
	return output.String()
}

func formatChartValue(value float64) string {
	if math.Abs(value) >= 1000000 {
		return fmt.Sprintf("%.1fM", value/1000000)
	} else if math.Abs(value) >= 1000 {
		return fmt.Sprintf("%.1fK", value/1000)
	}
	return fmt.Sprintf("%.0f", value)
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
