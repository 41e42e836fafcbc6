// Package markdown formats AI-returned text, including fenced code blocks,
// for terminal display.
package markdown

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/SDhinakar/Interview-Prep-Frontend/internal/domain"
)

// Segment is a contiguous run of either prose or fenced code.
type Segment struct {
	Code     bool
	Language string
	Content  string
}

// Split parses content into prose and fenced code segments. An unterminated
// fence swallows the rest of the input as code, which is how truncated AI
// responses usually arrive.
func Split(content string) []Segment {
	var segments []Segment
	var buf []string
	inCode := false
	language := ""

	flush := func() {
		text := strings.Join(buf, "\n")
		if strings.TrimSpace(text) != "" {
			segments = append(segments, Segment{Code: inCode, Language: language, Content: text})
		}
		buf = buf[:0]
	}

	for _, line := range strings.Split(content, "\n") {
		trimmed := strings.TrimSpace(line)
		if strings.HasPrefix(trimmed, "```") {
			flush()
			if inCode {
				inCode = false
				language = ""
			} else {
				inCode = true
				language = strings.TrimSpace(strings.TrimPrefix(trimmed, "```"))
			}
			continue
		}
		buf = append(buf, line)
	}
	flush()

	return dropSeparatorsBetweenCode(segments)
}

// dropSeparatorsBetweenCode removes prose segments that are only punctuation
// sitting between two code blocks. The AI occasionally emits a bare comma
// between consecutive fences.
func dropSeparatorsBetweenCode(segments []Segment) []Segment {
	out := segments[:0]
	for i, s := range segments {
		if !s.Code && i > 0 && i < len(segments)-1 && segments[i-1].Code && segments[i+1].Code {
			if strings.Trim(strings.TrimSpace(s.Content), ",;") == "" {
				continue
			}
		}
		out = append(out, s)
	}
	return out
}

// Renderer turns markdown-ish AI text into styled terminal output.
type Renderer struct {
	code    lipgloss.Style
	lang    lipgloss.Style
	heading lipgloss.Style
}

// NewRenderer creates a renderer with the default styles.
func NewRenderer() *Renderer {
	return &Renderer{
		code: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("240")).
			Padding(0, 1),
		lang:    lipgloss.NewStyle().Foreground(lipgloss.Color("244")).Italic(true),
		heading: lipgloss.NewStyle().Bold(true),
	}
}

// Render formats the content: prose with emphasis markers stripped and
// headings bolded, code blocks boxed with a language caption.
func (r *Renderer) Render(content string) string {
	var b strings.Builder
	for i, seg := range Split(content) {
		if i > 0 {
			b.WriteString("\n")
		}
		if seg.Code {
			if seg.Language != "" {
				b.WriteString(r.lang.Render(seg.Language))
				b.WriteString("\n")
			}
			b.WriteString(r.code.Render(seg.Content))
			b.WriteString("\n")
			continue
		}
		b.WriteString(r.renderProse(seg.Content))
		b.WriteString("\n")
	}
	return b.String()
}

func (r *Renderer) renderProse(text string) string {
	lines := strings.Split(domain.StripEmphasis(text), "\n")
	for i, line := range lines {
		if strings.HasPrefix(strings.TrimSpace(line), "#") {
			lines[i] = r.heading.Render(strings.TrimLeft(strings.TrimSpace(line), "# "))
		}
	}
	return strings.Join(lines, "\n")
}
