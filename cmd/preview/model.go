package preview

import (
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/gookit/color"

	"github.com/flytaly/cardtext/pkg/log"
	"github.com/flytaly/cardtext/pkg/spans"
	"github.com/flytaly/cardtext/pkg/termview"
	"github.com/flytaly/cardtext/pkg/watch"
)

const maxLogs = 8

type ProgramCfg struct {
	Source     string
	ConfigPath string
	LogPath    string
	Width      int
	Dark       bool
	Links      bool
	Interval   time.Duration
}

type model struct {
	cfg     ProgramCfg
	poller  *watch.Poller
	records *log.ChanLog
	logger  log.Logger

	res      spans.Result
	err      error
	logs     []log.Record
	showLog  bool
	width    int
	help     help.Model
	quitting bool
}

// Init optionally returns an initial command we should run.
func (m model) Init() tea.Cmd {
	return tea.Batch(
		render(m.cfg, m.logger),
		startPolling(m.poller, m.cfg.Interval),
		waitForEvents(m.poller),
		waitForErrors(m.poller),
		waitForLogs(m.records.Records()),
	)
}

// Update is called when messages are received. The idea is that you inspect the
// message and send back an updated model accordingly. You can also return
// a command, which is a function that performs I/O and returns a message.
func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, keys.Quit):
			m.quitting = true
			_ = m.poller.Close()
			_ = m.logger.Close()
			return m, tea.Quit
		case key.Matches(msg, keys.Reload):
			return m, render(m.cfg, m.logger)
		case key.Matches(msg, keys.Dark):
			m.cfg.Dark = !m.cfg.Dark
		case key.Matches(msg, keys.Links):
			m.cfg.Links = !m.cfg.Links
		case key.Matches(msg, keys.Log):
			m.showLog = !m.showLog
		}
		return m, nil

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.help.Width = msg.Width
		return m, nil

	case eventMsg:
		m.logger.Info("%s %s", msg.Op, msg.Name)
		return m, tea.Batch(render(m.cfg, m.logger), waitForEvents(m.poller))

	case stoppedMsg:
		m.logger.Error("watch stopped: %v", msg.err)
		m.showLog = true
		return m, nil

	case errMsg:
		m.logger.Error("watch: %v", msg.err)
		return m, waitForErrors(m.poller)

	case renderedMsg:
		m.res, m.err = msg.res, msg.err
		if m.err != nil {
			m.logger.Error("%v", m.err)
		}
		return m, nil

	case log.Record:
		m.logs = append(m.logs, msg)
		if len(m.logs) > maxLogs {
			m.logs = m.logs[len(m.logs)-maxLogs:]
		}
		return m, waitForLogs(m.records.Records())
	}
	return m, nil
}

func (m model) paintWidth() int {
	if m.cfg.Width > 0 {
		return m.cfg.Width
	}
	return m.width
}

// View returns a string based on data in the model. That string which will be
// rendered to the terminal.
func (m model) View() string {
	if m.quitting {
		return ""
	}
	parts := []string{header(m.cfg.Source, m.width), ""}
	if m.err != nil {
		parts = append(parts, color.Red.Sprint(m.err.Error()))
	} else {
		parts = append(parts, termview.Paint(m.res, termview.Options{
			Width: m.paintWidth(),
			Dark:  m.cfg.Dark,
			Links: m.cfg.Links,
		}), "", status(m.res))
	}
	if m.showLog && len(m.logs) > 0 {
		parts = append(parts, "", printLogs(m.logs, maxLogs))
	}
	parts = append(parts, "", m.help.View(keys))
	return strings.Join(parts, "\n")
}

// fsPath splits p into a file system root and a slash separated name
// inside it, so files from different directories share one poller.
func fsPath(p string) (string, string, error) {
	abs, err := filepath.Abs(p)
	if err != nil {
		return "", "", err
	}
	root := filepath.VolumeName(abs) + string(filepath.Separator)
	return root, filepath.ToSlash(strings.TrimPrefix(abs, root)), nil
}

func newModel(cfg ProgramCfg) (model, error) {
	records := log.NewChanLog(64)
	var logger log.Logger = records
	if cfg.LogPath != "" {
		file, err := log.New(cfg.LogPath)
		if err != nil {
			return model{}, err
		}
		logger = log.Multi(records, file)
	}

	root, name, err := fsPath(cfg.Source)
	if err != nil {
		return model{}, err
	}
	poller := watch.NewPoller(os.DirFS(root))
	if err := poller.Add(name); err != nil {
		return model{}, err
	}
	if cfg.ConfigPath != "" {
		_, cfgName, err := fsPath(cfg.ConfigPath)
		if err != nil {
			return model{}, err
		}
		if err := poller.Add(cfgName); err != nil {
			return model{}, err
		}
	}

	return model{
		cfg:     cfg,
		poller:  poller,
		records: records,
		logger:  logger,
		help:    help.New(),
	}, nil
}

// NewProgram returns the preview program. Setup errors are shown in the
// preview itself.
func NewProgram(cfg ProgramCfg) *tea.Program {
	m, err := newModel(cfg)
	if err != nil {
		return tea.NewProgram(failed{err: err})
	}
	return tea.NewProgram(m)
}

// failed is the program shown when the preview could not start.
type failed struct{ err error }

func (f failed) Init() tea.Cmd { return tea.Quit }

func (f failed) Update(tea.Msg) (tea.Model, tea.Cmd) { return f, tea.Quit }

func (f failed) View() string {
	return color.Red.Sprint(f.err.Error()) + "\n"
}
