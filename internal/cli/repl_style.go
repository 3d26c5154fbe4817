package cli

import (
	"context"
	"io"
	"time"

	"github.com/charmbracelet/lipgloss"
)

// Palette.
var (
	colorBanner = lipgloss.Color("#20B9B4")
	colorError  = lipgloss.Color("#E74C3C")
	colorMuted  = lipgloss.Color("#2C4A54")
)

// styles renders session output. The zero value renders plain text.
type styles struct {
	enabled bool
	banner  lipgloss.Style
	err     lipgloss.Style
	muted   lipgloss.Style
}

func newStyles(out io.Writer, enabled bool) styles {
	if !enabled {
		return styles{}
	}

	r := lipgloss.NewRenderer(out)

	return styles{
		enabled: true,
		banner:  r.NewStyle().Bold(true).Foreground(colorBanner),
		err:     r.NewStyle().Foreground(colorError),
		muted:   r.NewStyle().Foreground(colorMuted),
	}
}

func (s styles) render(style lipgloss.Style, text string) string {
	if !s.enabled {
		return text
	}

	return style.Render(text)
}

// playBanner prints prompt, then reveals message one character at a time
// with delay between characters. Stops early if ctx is done.
func playBanner(ctx context.Context, out io.Writer, st styles, prompt, message string, delay time.Duration) {
	_, _ = io.WriteString(out, prompt)

	for _, r := range message {
		_, _ = io.WriteString(out, st.render(st.banner, string(r)))

		if delay == 0 {
			continue
		}

		select {
		case <-ctx.Done():
			_, _ = io.WriteString(out, "\n")

			return
		case <-time.After(delay):
		}
	}

	_, _ = io.WriteString(out, "\n")
}
