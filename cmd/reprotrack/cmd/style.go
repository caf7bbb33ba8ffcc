package cmd

import (
	"fmt"
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/viper"

	"github.com/talgya/reprotrack/internal/tracker"
)

var (
	titleStyle   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#FF6B9D"))
	panelStyle   = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(lipgloss.Color("#FF6B9D")).Padding(0, 1)
	dimStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("#666666"))
	successStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#4ECDC4"))
	warningStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#FFE66D"))
	errorStyle   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#FF5555"))
)

// printPanel writes command output, boxed unless --plain.
func printPanel(title, body string) {
	if viper.GetBool("plain") {
		fmt.Println(body)
		return
	}
	fmt.Println(titleStyle.Render(title))
	fmt.Println(panelStyle.Render(body))
}

// notifier prints tracker notifications to stderr.
func notifier() tracker.Notifier {
	return tracker.NotifierFunc(func(msg string, level tracker.Level) {
		if viper.GetBool("plain") {
			fmt.Fprintf(os.Stderr, "[%s] %s\n", level, msg)
			return
		}
		style := dimStyle
		switch level {
		case tracker.LevelSuccess:
			style = successStyle
		case tracker.LevelWarning:
			style = warningStyle
		}
		fmt.Fprintln(os.Stderr, style.Render(msg))
	})
}
