package main

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/rohanthewiz/rroute/consts"
)

// palette styles the route table.
type palette struct {
	title   lipgloss.Style
	method  lipgloss.Style
	path    lipgloss.Style
	handler lipgloss.Style
	ok      lipgloss.Style
	err     lipgloss.Style
}

func newPalette() *palette {
	return &palette{
		title:   lipgloss.NewStyle().Foreground(lipgloss.Color("#7D56F4")).Bold(true).MarginBottom(1),
		method:  lipgloss.NewStyle().Foreground(lipgloss.Color("#04B575")).Bold(true).Width(methodWidth()),
		path:    lipgloss.NewStyle(),
		handler: lipgloss.NewStyle().Foreground(lipgloss.Color("#626262")).Italic(true),
		ok:      lipgloss.NewStyle().Foreground(lipgloss.Color("#04B575")).Bold(true),
		err:     lipgloss.NewStyle().Foreground(lipgloss.Color("#FF0000")).Bold(true),
	}
}

// status colors a response status line by class.
func (p *palette) status(code int, line string) string {
	if code >= 400 {
		return p.err.Render(line)
	}
	return p.ok.Render(line)
}

// methodWidth pads a method to the widest recognized method.
func methodWidth() int {
	width := 0
	for _, method := range consts.Methods {
		width = max(width, len(method))
	}
	return width + 2
}
