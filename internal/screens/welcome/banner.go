package welcome

import (
	"charm.land/lipgloss/v2"

	"github.com/abhisek/quizup/internal/ui/theme"
)

const bannerArt = `
  ██████╗ ██╗   ██╗██╗███████╗██╗   ██╗██████╗
 ██╔═══██╗██║   ██║██║╚══███╔╝██║   ██║██╔══██╗
 ██║   ██║██║   ██║██║  ███╔╝ ██║   ██║██████╔╝
 ██║▄▄ ██║██║   ██║██║ ███╔╝  ██║   ██║██╔═══╝
 ╚██████╔╝╚██████╔╝██║███████╗╚██████╔╝██║
  ╚══▀▀═╝  ╚═════╝ ╚═╝╚══════╝ ╚═════╝ ╚═╝`

const bannerCompact = "Q U I Z U P"

// RenderBanner returns the QUIZUP banner styled in the primary color.
// Uses a compact fallback for terminals narrower than 52 columns.
func RenderBanner(width int) string {
	style := lipgloss.NewStyle().
		Foreground(theme.Primary).
		Bold(true)

	if width < 52 {
		return style.Render(bannerCompact)
	}
	return style.Render(bannerArt)
}
