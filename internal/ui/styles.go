package ui

import "github.com/charmbracelet/lipgloss"

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("212"))

	formLabelStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("245"))

	formValueStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("252")).
			Bold(true)

	cardBorderStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("240")).
			Padding(0, 1)

	skeletonBorderStyle = lipgloss.NewStyle().
				Border(lipgloss.RoundedBorder()).
				BorderForeground(lipgloss.Color("236")).
				Foreground(lipgloss.Color("236")).
				Padding(0, 1)

	cardNameStyle = lipgloss.NewStyle().Bold(true)

	cardIDStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("245"))

	cardImageStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("240")).
			Italic(true)

	statNameStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("248"))

	chipStyle = lipgloss.NewStyle().
			Padding(0, 1).
			Foreground(lipgloss.Color("230"))

	emptyStateStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("243")).
			Italic(true).
			Padding(1, 2)

	toastInfoStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("39"))

	toastErrorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("196"))

	helpStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("241"))
)

// typeColors maps category names to chip background colors. Unknown
// categories fall back to a neutral grey.
var typeColors = map[string]lipgloss.Color{
	"normal":   lipgloss.Color("101"),
	"fire":     lipgloss.Color("202"),
	"water":    lipgloss.Color("33"),
	"electric": lipgloss.Color("220"),
	"grass":    lipgloss.Color("70"),
	"ice":      lipgloss.Color("51"),
	"fighting": lipgloss.Color("124"),
	"poison":   lipgloss.Color("90"),
	"ground":   lipgloss.Color("137"),
	"flying":   lipgloss.Color("104"),
	"psychic":  lipgloss.Color("200"),
	"bug":      lipgloss.Color("106"),
	"rock":     lipgloss.Color("94"),
	"ghost":    lipgloss.Color("60"),
	"dragon":   lipgloss.Color("57"),
	"dark":     lipgloss.Color("238"),
	"steel":    lipgloss.Color("103"),
	"fairy":    lipgloss.Color("218"),
}

func chipFor(category string) string {
	color, ok := typeColors[category]
	if !ok {
		color = lipgloss.Color("240")
	}
	return chipStyle.Background(color).Render(category)
}
