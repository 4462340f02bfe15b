package banner

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
)

type Info struct {
	Port       string
	StaticRoot string
	Version    string
}

func (i Info) URL() string {
	return fmt.Sprintf("http://localhost:%s", i.Port)
}

// Render writes the startup banner to w. The profile decides whether colors
// are emitted; termenv.Ascii produces plain text.
func Render(w io.Writer, profile termenv.Profile, info Info) error {
	renderer := lipgloss.NewRenderer(w, termenv.WithProfile(profile))

	titleStyle := renderer.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("#7D56F4"))

	urlStyle := renderer.NewStyle().
		Foreground(lipgloss.Color("#04B575")).
		Underline(true)

	helpStyle := renderer.NewStyle().
		Foreground(lipgloss.Color("#666666")).
		Italic(true)

	boxStyle := renderer.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("#7D56F4")).
		Padding(0, 2)

	var b strings.Builder
	b.WriteString(titleStyle.Render("🚀 Simple Todo Server starting on " + info.URL()))
	b.WriteString("\n")
	b.WriteString("📝 Todo app available at: " + urlStyle.Render(info.URL()))
	b.WriteString("\n")
	b.WriteString("📁 Serving files from: " + info.StaticRoot)
	if info.Version != "" {
		b.WriteString("\n")
		b.WriteString(helpStyle.Render(info.Version))
	}

	_, err := fmt.Fprintf(w, "%s\n%s\n", boxStyle.Render(b.String()), helpStyle.Render("Press Ctrl+C to stop the server"))
	return err
}

func Shutdown(w io.Writer) error {
	_, err := fmt.Fprintln(w, "\n👋 Server shutting down...")
	return err
}
