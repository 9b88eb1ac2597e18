package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"codecleanup/internal/engine"
	"codecleanup/internal/nav"
)

var (
	paneStyle     = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(lipgloss.Color("8"))
	focusStyle    = paneStyle.BorderForeground(lipgloss.Color("6"))
	cursorStyle   = lipgloss.NewStyle().Reverse(true)
	selectedStyle = lipgloss.NewStyle().Background(lipgloss.Color("3")).Foreground(lipgloss.Color("0"))
	gutterStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
	footerStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("7"))
)

// Viewer shows a report next to the source it was produced from. Pressing
// enter on a finding line moves the source pane to that line; it is the
// nav.Viewer the navigation contract drives.
type Viewer struct {
	title  string
	report []string
	source []string

	cursor    int
	reportTop int
	selected  int // 1-based, 0 — ничего не выделено

	src    viewport.Model
	width  int
	height int
	status string
}

var _ nav.Viewer = (*Viewer)(nil)

// NewViewer prepares the model. source is the analysed text.
func NewViewer(title string, rep *engine.Report, source []byte) *Viewer {
	v := &Viewer{
		title:  title,
		report: strings.Split(strings.TrimRight(rep.String(), "\n"), "\n"),
		source: strings.Split(strings.TrimRight(string(source), "\n"), "\n"),
		width:  100,
		height: 30,
		status: "↑/↓ move · enter go to line · pgup/pgdn scroll source · q quit",
	}
	v.src = viewport.New(v.paneWidth(), v.paneHeight())
	v.src.SetContent(v.renderSource())
	return v
}

// ScrollToLine puts line in the upper third of the source pane.
func (v *Viewer) ScrollToLine(line int) {
	line = min(max(line, 1), len(v.source))
	v.src.SetYOffset(max(line-1-v.src.Height/3, 0))
}

// SelectLine highlights line; out-of-range lines clear the highlight.
func (v *Viewer) SelectLine(line int) {
	if line < 1 || line > len(v.source) {
		v.selected = 0
	} else {
		v.selected = line
	}
	offset := v.src.YOffset
	v.src.SetContent(v.renderSource())
	v.src.SetYOffset(offset)
}

// Selected returns the highlighted source line, 0 when none.
func (v *Viewer) Selected() int { return v.selected }

// Cursor returns the report line under the cursor.
func (v *Viewer) Cursor() string {
	if v.cursor < 0 || v.cursor >= len(v.report) {
		return ""
	}
	return v.report[v.cursor]
}

// SourceOffset is the first visible source line, 0-based.
func (v *Viewer) SourceOffset() int { return v.src.YOffset }

func (v *Viewer) Init() tea.Cmd { return nil }

func (v *Viewer) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		v.width, v.height = msg.Width, msg.Height
		v.src.Width, v.src.Height = v.paneWidth(), v.paneHeight()
		v.src.SetContent(v.renderSource())
		v.clampReport()
		return v, nil
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c", "esc":
			return v, tea.Quit
		case "up", "k":
			v.moveCursor(-1)
		case "down", "j":
			v.moveCursor(1)
		case "home", "g":
			v.moveCursor(-len(v.report))
		case "end", "G":
			v.moveCursor(len(v.report))
		case "enter":
			if nav.Navigate(v, v.Cursor()) {
				v.status = fmt.Sprintf("line %d", v.selected)
			} else {
				v.status = "no line number on this report line"
			}
		case "pgup", "pgdown", "ctrl+u", "ctrl+d":
			var cmd tea.Cmd
			v.src, cmd = v.src.Update(msg)
			return v, cmd
		}
		return v, nil
	}
	return v, nil
}

func (v *Viewer) View() string {
	w, h := v.paneWidth(), v.paneHeight()

	var left strings.Builder
	for i := v.reportTop; i < len(v.report) && i < v.reportTop+h; i++ {
		line := truncate(v.report[i], w)
		if i == v.cursor {
			line = cursorStyle.Render(line + strings.Repeat(" ", max(w-lipgloss.Width(line), 0)))
		}
		left.WriteString(line)
		if i < v.reportTop+h-1 {
			left.WriteByte('\n')
		}
	}

	reportPane := focusStyle.Width(w).Height(h).Render(left.String())
	sourcePane := paneStyle.Width(w).Height(h).Render(v.src.View())
	body := lipgloss.JoinHorizontal(lipgloss.Top, reportPane, sourcePane)
	footer := footerStyle.Render(truncate(v.title+" · "+v.status, v.width))
	return body + "\n" + footer
}

func (v *Viewer) moveCursor(delta int) {
	if len(v.report) == 0 {
		return
	}
	v.cursor = min(max(v.cursor+delta, 0), len(v.report)-1)
	v.clampReport()
}

// clampReport keeps the cursor inside the visible part of the report pane.
func (v *Viewer) clampReport() {
	h := v.paneHeight()
	if v.cursor < v.reportTop {
		v.reportTop = v.cursor
	}
	if v.cursor >= v.reportTop+h {
		v.reportTop = v.cursor - h + 1
	}
}

func (v *Viewer) renderSource() string {
	digits := len(fmt.Sprint(len(v.source)))
	textWidth := max(v.paneWidth()-digits-3, 8)
	var b strings.Builder
	for i, text := range v.source {
		n := i + 1
		text = truncate(strings.ReplaceAll(text, "\t", "    "), textWidth)
		gutter := gutterStyle.Render(fmt.Sprintf("%*d │", digits, n))
		if n == v.selected {
			text = selectedStyle.Render(text + strings.Repeat(" ", max(textWidth-lipgloss.Width(text), 0)))
		}
		b.WriteString(gutter)
		b.WriteByte(' ')
		b.WriteString(text)
		if n < len(v.source) {
			b.WriteByte('\n')
		}
	}
	return b.String()
}

// paneWidth — ширина содержимого одной панели без рамки.
func (v *Viewer) paneWidth() int {
	return max(v.width/2-2, 10)
}

func (v *Viewer) paneHeight() int {
	return max(v.height-3, 3)
}
