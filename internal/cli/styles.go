package cli

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/SeamusWaldron/nxcube"
)

// Styles
var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("205"))

	statusStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("241"))

	solvedStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("39"))

	moveStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("82"))

	errorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("196"))

	helpStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("241"))
)

// Sticker backgrounds, indexed by color.
var stickerStyles = [nxcube.NumColors]lipgloss.Style{
	nxcube.White:  sticker("15"),
	nxcube.Red:    sticker("160"),
	nxcube.Green:  sticker("34"),
	nxcube.Yellow: sticker("226"),
	nxcube.Orange: sticker("208"),
	nxcube.Blue:   sticker("27"),
}

func sticker(bg string) lipgloss.Style {
	return lipgloss.NewStyle().
		Background(lipgloss.Color(bg)).
		Foreground(lipgloss.Color("0"))
}

// renderNet draws the unfolded cube. With color off it is the plain letter
// net from Cube.String.
func renderNet(c *nxcube.Cube, color bool) string {
	if !color {
		return c.String()
	}
	return c.Net(func(col nxcube.Color) string {
		return stickerStyles[col].Render(col.String() + " ")
	}, "  ")
}

// solvedLabel renders the solved flag.
func solvedLabel(solved bool) string {
	if solved {
		return solvedStyle.Render("SOLVED")
	}
	return statusStyle.Render("not solved")
}
