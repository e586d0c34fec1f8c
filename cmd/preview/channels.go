package preview

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/flytaly/cardtext/pkg/log"
	"github.com/flytaly/cardtext/pkg/source"
	"github.com/flytaly/cardtext/pkg/spans"
	"github.com/flytaly/cardtext/pkg/watch"
)

type eventMsg watch.Event

type errMsg struct{ err error }

type renderedMsg struct {
	res spans.Result
	err error
}

func render(cfg ProgramCfg, logger log.Logger) tea.Cmd {
	return func() tea.Msg {
		res, err := source.RenderFile(source.Options{
			ConfigPath: cfg.ConfigPath,
			Width:      cfg.Width,
			Logger:     logger,
			Location:   time.Local,
		}, cfg.Source)
		return renderedMsg{res: res, err: err}
	}
}

// stoppedMsg reports that the poller could not run.
type stoppedMsg struct{ err error }

// startPolling runs the poller until it is closed.
func startPolling(p *watch.Poller, interval time.Duration) tea.Cmd {
	return func() tea.Msg {
		if err := p.Start(interval); err != nil {
			return stoppedMsg{err}
		}
		return nil
	}
}

func waitForEvents(p *watch.Poller) tea.Cmd {
	return func() tea.Msg {
		return eventMsg(<-p.Events())
	}
}

func waitForErrors(p *watch.Poller) tea.Cmd {
	return func() tea.Msg {
		return errMsg{<-p.Errors()}
	}
}

func waitForLogs(logChan <-chan log.Record) tea.Cmd {
	return func() tea.Msg {
		r, ok := <-logChan
		if !ok {
			return nil
		}
		return r
	}
}
