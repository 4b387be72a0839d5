package views

import (
	"fmt"
	"io/fs"
	"path/filepath"
	"sort"
	"strings"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/google/uuid"

	"mnemo/internal/adapters/tui/styles"
	"mnemo/internal/application"
	"mnemo/internal/config"
	"mnemo/internal/domain"
	"mnemo/internal/ports"
)

// BrowserKeyMap defines key bindings for the store browser
type BrowserKeyMap struct {
	Up      key.Binding
	Down    key.Binding
	Open    key.Binding
	Copy    key.Binding
	Refresh key.Binding
	Quit    key.Binding
}

var BrowserKeys = BrowserKeyMap{
	Up: key.NewBinding(
		key.WithKeys("k", "up"),
		key.WithHelp("k/↑", "up"),
	),
	Down: key.NewBinding(
		key.WithKeys("j", "down"),
		key.WithHelp("j/↓", "down"),
	),
	Open: key.NewBinding(
		key.WithKeys("enter"),
		key.WithHelp("enter", "open"),
	),
	Copy: key.NewBinding(
		key.WithKeys("c"),
		key.WithHelp("c", "copy path"),
	),
	Refresh: key.NewBinding(
		key.WithKeys("r"),
		key.WithHelp("r", "refresh"),
	),
	Quit: key.NewBinding(
		key.WithKeys("q", "ctrl+c"),
		key.WithHelp("q", "quit"),
	),
}

// BrowserModel lists the store's files with a preview pane and the
// co-visited neighbors of the opened file. Browsing is read-only: nothing
// is recorded in the index.
type BrowserModel struct {
	repo        ports.MemoryRepository
	recommender *application.Recommender
	session     string

	files   []string
	cursor  int
	opened  string
	related []domain.Related
	preview viewport.Model

	width   int
	height  int
	ready   bool
	message string
}

// NewBrowserModel creates a browser over the given repository.
func NewBrowserModel(repo ports.MemoryRepository, recommender *application.Recommender) *BrowserModel {
	return &BrowserModel{
		repo:        repo,
		recommender: recommender,
		session:     uuid.NewString(),
	}
}

func (m *BrowserModel) Init() tea.Cmd {
	return m.loadFiles
}

type filesLoadedMsg struct {
	files []string
}

type fileOpenedMsg struct {
	file    string
	content string
	related []domain.Related
}

type browserErrMsg struct {
	err error
}

func (m *BrowserModel) loadFiles() tea.Msg {
	var files []string
	filepath.WalkDir(m.repo.Root(), func(path string, entry fs.DirEntry, err error) error {
		if err != nil {
			return nil
		}
		if entry.IsDir() {
			if path != m.repo.Root() && domain.IsInternal(path) {
				return filepath.SkipDir
			}
			return nil
		}
		if !domain.IsInternal(path) {
			files = append(files, m.repo.RelativeID(path))
		}
		return nil
	})
	sort.Strings(files)
	return filesLoadedMsg{files}
}

func (m *BrowserModel) openSelected() tea.Cmd {
	if len(m.files) == 0 {
		return nil
	}
	file := m.files[m.cursor]
	return func() tea.Msg {
		abs, err := m.repo.Resolve(file)
		if err != nil {
			return browserErrMsg{err}
		}
		content, err := m.repo.ReadFile(abs)
		if err != nil {
			return browserErrMsg{err}
		}
		content = application.ClampRead(content, config.MaxReadChars())
		related := m.recommender.Related(abs, m.session, config.MaxRecommendations())
		return fileOpenedMsg{file: file, content: content, related: related}
	}
}

func (m *BrowserModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		pw, ph := m.paneSize()
		if !m.ready {
			m.preview = viewport.New(pw, ph)
			m.ready = true
		} else {
			m.preview.Width = pw
			m.preview.Height = ph
		}
		return m, nil

	case filesLoadedMsg:
		m.files = msg.files
		if m.cursor >= len(m.files) {
			m.cursor = 0
		}
		return m, nil

	case fileOpenedMsg:
		m.opened = msg.file
		m.related = msg.related
		m.preview.SetContent(msg.content)
		m.preview.GotoTop()
		m.message = ""
		return m, nil

	case browserErrMsg:
		m.message = styles.ErrorMsg.Render(msg.err.Error())
		return m, nil

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, BrowserKeys.Quit):
			return m, tea.Quit
		case key.Matches(msg, BrowserKeys.Up):
			if m.cursor > 0 {
				m.cursor--
			}
			return m, nil
		case key.Matches(msg, BrowserKeys.Down):
			if m.cursor < len(m.files)-1 {
				m.cursor++
			}
			return m, nil
		case key.Matches(msg, BrowserKeys.Open):
			return m, m.openSelected()
		case key.Matches(msg, BrowserKeys.Copy):
			if len(m.files) > 0 {
				clipboard.WriteAll(m.files[m.cursor])
				m.message = styles.Success.Render("copied " + m.files[m.cursor])
			}
			return m, nil
		case key.Matches(msg, BrowserKeys.Refresh):
			return m, m.loadFiles
		}
	}

	if m.ready {
		var cmd tea.Cmd
		m.preview, cmd = m.preview.Update(msg)
		return m, cmd
	}
	return m, nil
}

func (m *BrowserModel) paneSize() (int, int) {
	w := m.width - m.listWidth() - 6
	if w < 20 {
		w = 20
	}
	h := m.height - 4
	if h < 5 {
		h = 5
	}
	return w, h
}

func (m *BrowserModel) listWidth() int {
	w := m.width / 3
	if w < 24 {
		w = 24
	}
	return w
}

func (m *BrowserModel) View() string {
	if !m.ready {
		return "loading..."
	}

	list := m.renderList()
	right := m.preview.View()
	if len(m.related) > 0 {
		var sb strings.Builder
		sb.WriteString(right)
		sb.WriteString("\n")
		sb.WriteString(styles.RelatedHeader.Render("Related files"))
		sb.WriteString("\n")
		for i, rec := range m.related {
			fmt.Fprintf(&sb, "%s %s %s\n",
				styles.Rank.Render(fmt.Sprintf("[%d]", i+1)),
				rec.File,
				styles.MutedText.Render(fmt.Sprintf("(%dx)", rec.Count)),
			)
		}
		right = sb.String()
	}

	body := lipgloss.JoinHorizontal(lipgloss.Top,
		styles.PaneBorder.Width(m.listWidth()).Render(list),
		styles.PaneBorder.Render(right),
	)

	status := m.message
	if status == "" {
		status = styles.MutedText.Render("enter open · c copy · r refresh · q quit")
	}
	return lipgloss.JoinVertical(lipgloss.Left, body, styles.StatusBar.Render(status))
}

func (m *BrowserModel) renderList() string {
	if len(m.files) == 0 {
		return styles.MutedText.Render("(no memory files)")
	}

	visible := m.height - 6
	if visible < 1 {
		visible = 1
	}
	start := 0
	if m.cursor >= visible {
		start = m.cursor - visible + 1
	}
	end := start + visible
	if end > len(m.files) {
		end = len(m.files)
	}

	var sb strings.Builder
	for i := start; i < end; i++ {
		line := m.files[i]
		if i == m.cursor {
			line = styles.FileSelected.Render(line)
		} else if m.files[i] == m.opened {
			line = styles.Directory.Render(line)
		} else {
			line = styles.FileEntry.Render(line)
		}
		sb.WriteString(line)
		sb.WriteString("\n")
	}
	return strings.TrimRight(sb.String(), "\n")
}
