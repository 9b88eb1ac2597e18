package main

import (
	"context"
	"fmt"
	"os"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"codecleanup/internal/driver"
	"codecleanup/internal/engine"
	"codecleanup/internal/ui"
)

type uiMode string

const (
	uiModeAuto uiMode = "auto"
	uiModeOn   uiMode = "on"
	uiModeOff  uiMode = "off"
)

func readUIMode(value string) (uiMode, error) {
	switch strings.TrimSpace(strings.ToLower(value)) {
	case "", "auto":
		return uiModeAuto, nil
	case "on":
		return uiModeOn, nil
	case "off":
		return uiModeOff, nil
	default:
		return "", fmt.Errorf("invalid --ui value %q (expected auto|on|off)", value)
	}
}

// shouldUseTUI decides for the progress view, which draws on stderr so
// that stdout stays a clean report.
func shouldUseTUI(mode uiMode) bool {
	switch mode {
	case uiModeOn:
		return true
	case uiModeOff:
		return false
	default:
		return isTerminal(os.Stderr)
	}
}

type analyzeOutcome struct {
	session *driver.Session
	err     error
}

func runAnalyzeWithUI(ctx context.Context, title string, eng *engine.Engine, files []string, opts driver.Options) (*driver.Session, error) {
	events := make(chan driver.Event, 256)
	outcomeCh := make(chan analyzeOutcome, 1)

	go func() {
		optsCopy := opts
		optsCopy.Progress = driver.ChannelSink{Ch: events}
		sess, err := driver.Analyze(ctx, eng, files, optsCopy)
		outcomeCh <- analyzeOutcome{session: sess, err: err}
		close(events)
	}()

	model := ui.NewProgressModel(title, files, events)
	program := tea.NewProgram(model, tea.WithOutput(os.Stderr))
	_, uiErr := program.Run()
	// окно могли закрыть раньше времени: дочитываем события, чтобы анализ не встал
	for range events {
	}
	outcome := <-outcomeCh
	if uiErr != nil {
		return outcome.session, uiErr
	}
	return outcome.session, outcome.err
}
