package app

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"time"

	"github.com/atotto/clipboard"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"sidenav/config"
	"sidenav/inspect"
	"sidenav/keys"
	"sidenav/log"
	"sidenav/ui"
	"sidenav/ui/inflate"
	"sidenav/ui/layout"
	"sidenav/ui/pan"
	"sidenav/ui/sidenav"
)

// Node ids the app binds behavior to.
const (
	panButtonID    = "pan-button"
	contentTitleID = "content-title"
	contentURLID   = "content-url"
)

const (
	panLabel   = "Pan"
	unpanLabel = "Unpan"
)

// Run is the main entrypoint into the application.
func Run(ctx context.Context, cfg *config.Config) error {
	h, err := newHome(ctx, cfg)
	if err != nil {
		return err
	}
	defer h.close()

	p := tea.NewProgram(
		h,
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(), // Drags need motion events while the button is held
		tea.WithReportFocus(),     // Focus loss cancels a drag in progress
	)
	_, err = p.Run()
	return err
}

// clipboardWriter is swapped out in tests.
var clipboardWriter = clipboard.WriteAll

type home struct {
	ctx context.Context

	// -- Storage and Configuration --

	appConfig *config.Config
	appState  *config.State

	// -- Container --

	loader    *inflate.Loader
	watcher   *inflate.Watcher
	engine    *pan.Engine
	container *sidenav.Container

	// site is the navigation item loaded into the main panel, or nil.
	site *sidenav.Node

	// -- UI Components --

	status      *ui.StatusBar
	constraints layout.Constraints
	inspector   *inspect.Writer
	errText     string

	// pendingSave is set by tap and pan callbacks, which cannot return
	// commands themselves.
	pendingSave bool
}

func newHome(ctx context.Context, cfg *config.Config) (*home, error) {
	appState := config.DefaultState()
	if cfg.RememberState {
		appState = config.LoadState()
	}

	resourceDir, err := cfg.GetResourceDir()
	if err != nil {
		log.WarningLog.Printf("failed to get resource directory: %v", err)
		resourceDir = ""
	}

	m := &home{
		ctx:       ctx,
		appConfig: cfg,
		appState:  appState,
		loader:    inflate.NewLoader(resourceDir),
		engine:    pan.NewEngine(),
		status:    ui.NewStatusBar(),
		inspector: inspect.FromEnv(),
	}

	opts := sidenav.DefaultOptions()
	opts.NavigationLayout = cfg.NavigationLayout
	opts.MainLayout = cfg.MainLayout
	opts.Inflater = m.loader
	opts.DragThreshold = cfg.DragThreshold
	if cfg.LeftPanBound >= 0 {
		opts.LeftPanBound = cfg.LeftPanBound
	}
	if cfg.RightPanBound >= 0 {
		opts.RightPanBound = cfg.RightPanBound
	}

	container, err := sidenav.New(m.engine, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to create container: %w", err)
	}
	m.container = container
	m.container.SetOnPanListener(sidenav.PanListener{
		OnPanStart: m.panStarted,
		OnPanEnd:   m.panEnded,
	})
	m.bindNavigation()
	m.bindMain()

	if id := appState.SelectedSite; id != "" {
		if site := m.findSite(id); site != nil {
			m.showSite(site)
		}
	}
	if appState.NavigationOpen {
		m.container.ShowNavigationView()
	}
	m.pendingSave = false

	if resourceDir != "" {
		if _, err := os.Stat(resourceDir); err == nil {
			w, err := inflate.NewWatcher(resourceDir)
			if err != nil {
				log.WarningLog.Printf("failed to watch %s: %v", resourceDir, err)
			} else {
				m.watcher = w
			}
		} else if !errors.Is(err, fs.ErrNotExist) {
			log.WarningLog.Printf("failed to stat %s: %v", resourceDir, err)
		}
	}

	return m, nil
}

func (m *home) close() {
	if m.watcher != nil {
		if err := m.watcher.Close(); err != nil {
			log.WarningLog.Printf("failed to close layout watcher: %v", err)
		}
	}
}

// bindNavigation makes every navigation item with a URL load it on tap.
func (m *home) bindNavigation() {
	root := m.container.NavigationContainer().Content()
	if root == nil {
		return
	}
	root.Walk(func(n *sidenav.Node) bool {
		if n.Kind == sidenav.KindItem && n.Value != "" {
			n.SetOnTap(m.showSiteAndClose)
		}
		return true
	})
}

func (m *home) bindMain() {
	root := m.container.MainContainer().Content()
	if root == nil {
		return
	}
	if button := root.Find(panButtonID); button != nil {
		button.SetOnTap(func(*sidenav.Node) { m.togglePan() })
	}
	m.relabelPanButton()
	if m.site != nil {
		m.showSite(m.site)
	}
}

func (m *home) findSite(id string) *sidenav.Node {
	root := m.container.NavigationContainer().Content()
	if root == nil {
		return nil
	}
	if n := root.Find(id); n != nil && n.Tappable() {
		return n
	}
	return nil
}

// showSite loads a navigation item into the main panel.
func (m *home) showSite(site *sidenav.Node) {
	m.site = site
	m.status.SetSite(site.Value)
	m.appState.SelectedSite = site.ID
	m.pendingSave = true

	root := m.container.MainContainer().Content()
	if root == nil {
		return
	}
	if title := root.Find(contentTitleID); title != nil {
		title.Text = site.Text
	}
	if url := root.Find(contentURLID); url != nil {
		url.Text = site.Value
	}
	log.InfoLog.Printf("loaded %s", site.Value)
}

func (m *home) showSiteAndClose(site *sidenav.Node) {
	m.showSite(site)
	m.container.ShowMainView()
}

func (m *home) togglePan() {
	if m.container.IsNavigationViewVisible() {
		m.container.ShowMainView()
	} else {
		m.container.ShowNavigationView()
	}
}

func (m *home) panStarted() {
	m.status.SetState(ui.StatusPanning)
}

func (m *home) panEnded() {
	m.relabelPanButton()
	open := m.container.IsNavigationViewVisible()
	if open {
		m.status.SetState(ui.StatusNavigation)
	} else {
		m.status.SetState(ui.StatusMain)
	}
	if m.appState.NavigationOpen != open {
		m.appState.NavigationOpen = open
		m.pendingSave = true
	}
}

func (m *home) relabelPanButton() {
	root := m.container.MainContainer().Content()
	if root == nil {
		return
	}
	button := root.Find(panButtonID)
	if button == nil {
		return
	}
	if m.container.IsNavigationViewVisible() {
		button.Text = unpanLabel
	} else {
		button.Text = panLabel
	}
}

// reload inflates a layout again and rebinds it. Unrelated ids are ignored.
func (m *home) reload(id string) error {
	var panel *sidenav.Panel
	switch id {
	case m.appConfig.NavigationLayout:
		panel = m.container.NavigationContainer()
	case m.appConfig.MainLayout:
		panel = m.container.MainContainer()
	default:
		return nil
	}

	content, err := m.loader.Inflate(id)
	if err != nil {
		return fmt.Errorf("failed to reload layout %q: %w", id, err)
	}
	// A session may hold a node from the old tree.
	m.container.CancelPointer()
	panel.SetContent(content)

	if panel == m.container.NavigationContainer() {
		m.bindNavigation()
		if m.site != nil {
			m.site = m.findSite(m.site.ID)
			if m.site == nil {
				m.status.SetSite("")
			}
		}
	}
	m.bindMain()
	log.InfoLog.Printf("reloaded layout %q", id)
	return nil
}

// updateHandleWindowSizeEvent sizes the container and status bar and
// recomputes the pan bounds the config leaves automatic.
func (m *home) updateHandleWindowSizeEvent(msg tea.WindowSizeMsg) {
	m.constraints = layout.ComputeConstraints(msg.Width, msg.Height)

	if m.appConfig.LeftPanBound < 0 {
		m.container.SetLeftPanBound(m.constraints.LeftPanBound)
	}
	if m.appConfig.RightPanBound < 0 {
		m.container.SetRightPanBound(m.constraints.RightPanBound)
	}
	m.container.Resize(m.constraints.ContainerWidth, m.constraints.ContainerHeight)
	m.status.SetSize(m.constraints.StatusWidth)

	log.LayoutTrace("window %dx%d mode=%s", msg.Width, msg.Height, m.constraints.Mode)
}

func (m *home) Init() tea.Cmd {
	return m.waitForLayoutChange()
}

func (m *home) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case hideErrMsg:
		m.errText = ""
		return m, nil
	case keyupMsg:
		m.status.ClearKeydown()
		return m, nil
	case layoutChangedMsg:
		var cmd tea.Cmd
		if err := m.reload(msg.id); err != nil {
			cmd = m.handleError(err)
		}
		return m, tea.Batch(cmd, m.saveCmd(), m.waitForLayoutChange())
	case watchErrMsg:
		return m, tea.Batch(m.handleError(msg.err), m.waitForLayoutChange())
	case tea.MouseMsg, tea.BlurMsg:
		m.container.Update(msg)
		return m, m.saveCmd()
	case tea.KeyMsg:
		return m.handleKeyPress(msg)
	case tea.WindowSizeMsg:
		m.updateHandleWindowSizeEvent(msg)
		return m, nil
	case error:
		return m, m.handleError(msg)
	}
	return m, nil
}

func (m *home) handleKeyPress(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	name, ok := keys.GlobalKeyStringsMap[msg.String()]
	if !ok {
		return m, nil
	}
	highlightCmd := m.keydownCallback(name)

	var cmd tea.Cmd
	switch name {
	case keys.KeyQuit:
		return m.handleQuit()
	case keys.KeyToggle:
		m.togglePan()
	case keys.KeyOpen:
		m.container.ShowNavigationView()
	case keys.KeyClose:
		m.container.ShowMainView()
	case keys.KeyCopy:
		cmd = m.copySite()
	case keys.KeyReload:
		for _, id := range []string{m.appConfig.NavigationLayout, m.appConfig.MainLayout} {
			if err := m.reload(id); err != nil {
				cmd = m.handleError(err)
				break
			}
		}
	}
	return m, tea.Batch(highlightCmd, cmd, m.saveCmd())
}

func (m *home) copySite() tea.Cmd {
	if m.site == nil {
		return m.handleError(fmt.Errorf("no site loaded"))
	}
	if err := clipboardWriter(m.site.Value); err != nil {
		return m.handleError(fmt.Errorf("failed to copy url: %w", err))
	}
	log.InfoLog.Printf("copied %s", m.site.Value)
	return nil
}

func (m *home) handleQuit() (tea.Model, tea.Cmd) {
	if m.appConfig.RememberState {
		if err := config.SaveState(m.appState); err != nil {
			log.ErrorLog.Printf("failed to save state: %v", err)
		}
	}
	m.pendingSave = false
	return m, tea.Quit
}

// saveCmd persists the state if a callback changed it.
func (m *home) saveCmd() tea.Cmd {
	if !m.pendingSave {
		return nil
	}
	m.pendingSave = false
	if !m.appConfig.RememberState {
		return nil
	}
	state := *m.appState
	return func() tea.Msg {
		if err := config.SaveState(&state); err != nil {
			log.ErrorLog.Printf("failed to save state: %v", err)
		}
		return nil
	}
}

type keyupMsg struct{}

// keydownCallback clears the status bar highlighting after 500ms.
func (m *home) keydownCallback(name keys.KeyName) tea.Cmd {
	m.status.Keydown(name)
	return func() tea.Msg {
		select {
		case <-m.ctx.Done():
		case <-time.After(500 * time.Millisecond):
		}

		return keyupMsg{}
	}
}

// hideErrMsg implements tea.Msg and clears the error text from the screen.
type hideErrMsg struct{}

// layoutChangedMsg is sent when a layout file changes on disk.
type layoutChangedMsg struct {
	id string
}

type watchErrMsg struct {
	err error
}

// waitForLayoutChange blocks until the watcher reports a change.
func (m *home) waitForLayoutChange() tea.Cmd {
	if m.watcher == nil {
		return nil
	}
	w := m.watcher
	return func() tea.Msg {
		select {
		case <-m.ctx.Done():
			return nil
		case id, ok := <-w.Events:
			if !ok {
				return nil
			}
			return layoutChangedMsg{id: id}
		case err, ok := <-w.Errors:
			if !ok {
				return nil
			}
			return watchErrMsg{err: err}
		}
	}
}

func (m *home) handleError(err error) tea.Cmd {
	log.ErrorLog.Printf("%v", err)
	m.errText = err.Error()
	return func() tea.Msg {
		select {
		case <-m.ctx.Done():
		case <-time.After(3 * time.Second):
		}

		return hideErrMsg{}
	}
}

func (m *home) View() string {
	start := time.Now()
	defer func() { log.Profiler().RecordFrame(time.Since(start)) }()

	switch {
	case m.constraints.ShowMinWarning:
		m.status.SetWarning(fmt.Sprintf("terminal too small (%dx%d)", m.constraints.TerminalWidth, m.constraints.TerminalHeight))
	default:
		m.status.SetWarning(m.errText)
	}

	statusBar := lipgloss.NewStyle().MaxWidth(m.constraints.StatusWidth).Render(m.status.String())
	view := statusBar
	if m.constraints.ContainerHeight > 0 {
		view = m.container.View() + "\n" + statusBar
	}

	if m.inspector != nil {
		m.writeSnapshot()
	}
	return view
}

func (m *home) writeSnapshot() {
	snap := inspect.NewSnapshot().
		WithLayout(m.constraints).
		WithPan(m.container.PanInfo()).
		WithTree(m.container.InspectNode())
	if err := m.inspector.Write(snap); err != nil {
		log.WarningLog.Printf("failed to write inspect snapshot: %v", err)
	}
}
