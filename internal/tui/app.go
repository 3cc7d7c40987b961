package tui

import (
	"io"
	"log/slog"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/nikbrunner/stories/internal/api"
	"github.com/nikbrunner/stories/internal/htmltext"
	"github.com/nikbrunner/stories/internal/model"
	"github.com/nikbrunner/stories/internal/tui/layout"
)

// MessageType represents the type of status message.
type MessageType int

const (
	MessageInfo MessageType = iota
	MessageError
)

// App is the main bubbletea model for the story reader.
type App struct {
	source       DataSource
	navigator    Navigator
	logger       *slog.Logger
	writeClip    func(string) error
	keys         KeyMap
	styles       Styles
	layoutConfig layout.LayoutConfig

	// Navigation state
	route   Route
	history []Route // screens to return to, most recent last

	stories   ListState
	bookmarks ListState
	details   DetailsState
	actions   ActionTracker
	filter    FilterState

	alert       *Alert
	showHelp    bool
	messageText string
	messageType MessageType

	spinner  spinner.Model
	spinning bool

	// For gg command
	lastKeyWasG bool

	// Window dimensions
	width  int
	height int
}

// AppParams holds parameters for creating a new App.
type AppParams struct {
	Source       DataSource
	Navigator    Navigator            // optional, routes through the App itself if nil
	Logger       *slog.Logger         // optional
	Clipboard    func(string) error   // optional, uses the system clipboard if nil
	Keys         *KeyMap              // optional, uses default if nil
	Styles       *Styles              // optional, uses default if nil
	LayoutConfig *layout.LayoutConfig // optional, uses default if nil
}

// NewApp creates a new App with the given parameters.
func NewApp(params AppParams) App {
	keys := DefaultKeyMap()
	if params.Keys != nil {
		keys = *params.Keys
	}

	styles := DefaultStyles()
	if params.Styles != nil {
		styles = *params.Styles
	}

	layoutCfg := layout.DefaultConfig()
	if params.LayoutConfig != nil {
		layoutCfg = *params.LayoutConfig
	}

	navigator := params.Navigator
	if navigator == nil {
		navigator = msgNavigator{}
	}

	logger := params.Logger
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}

	writeClip := params.Clipboard
	if writeClip == nil {
		writeClip = clipboard.WriteAll
	}

	stories := NewListState()
	stories.Loading = true

	return App{
		source:       params.Source,
		navigator:    navigator,
		logger:       logger,
		writeClip:    writeClip,
		keys:         keys,
		styles:       styles,
		layoutConfig: layoutCfg,
		route:        Route{Name: RouteStories},
		stories:      stories,
		bookmarks:    NewListState(),
		actions:      NewActionTracker(),
		filter:       NewFilterState(layoutCfg),
		spinner: spinner.New(
			spinner.WithSpinner(spinner.Dot),
			spinner.WithStyle(styles.Spinner),
		),
		width:  80,
		height: 24,
	}
}

// Route returns the screen currently shown.
func (a App) Route() Route {
	return a.route
}

// Alert returns the open alert, or nil.
func (a App) Alert() *Alert {
	return a.alert
}

// Cursor returns the cursor of the current list.
func (a App) Cursor() int {
	if l := a.currentList(); l != nil {
		return l.Cursor
	}
	return 0
}

// ActionState returns the in-flight bookmark state of a story.
func (a App) ActionState(storyID string) ActionState {
	return a.actions.State(storyID)
}

// StoryItems returns the rows of the current list as they would be drawn.
func (a App) StoryItems() []StoryItemView {
	l := a.currentList()
	if l == nil {
		return nil
	}
	visible := l.Visible(a.filter.Query)
	views := make([]StoryItemView, len(visible))
	for i, s := range visible {
		views[i] = BuildStoryItem(s, a.route.cta(), a.actions.State(s.ID))
	}
	return views
}

// Details returns the details screen state.
func (a App) Details() DetailsState {
	return a.details
}

// Message returns the status line text.
func (a App) Message() string {
	return a.messageText
}

// Filtering reports whether the filter input has focus.
func (a App) Filtering() bool {
	return a.filter.Active
}

// Init implements tea.Model.
func (a App) Init() tea.Cmd {
	return tea.Batch(loadStoriesCmd(a.source), a.spinner.Tick)
}

// Update implements tea.Model.
func (a App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		return a, nil

	case spinner.TickMsg:
		if !a.needsSpinner() {
			a.spinning = false
			return a, nil
		}
		a.spinning = true
		var cmd tea.Cmd
		a.spinner, cmd = a.spinner.Update(msg)
		return a, cmd

	case NavigateMsg:
		return a, a.navigate(msg.Route)

	case storiesLoadedMsg:
		a.applyList(&a.stories, msg.stories, msg.stale, msg.err, "stories")
		return a, nil

	case bookmarksLoadedMsg:
		var stories []model.StorySummary
		if msg.err == nil {
			stories = model.FeedFromBookmarks(msg.bookmarks).Stories
		}
		a.applyList(&a.bookmarks, stories, msg.stale, msg.err, "bookmarks")
		return a, nil

	case storyLoadedMsg:
		a.applyDetails(msg)
		return a, nil

	case bookmarkAddedMsg:
		a.actions.FinishAdd(msg.storyID)
		if msg.err != nil {
			a.handleMutationError("add", msg.storyID, msg.err, addOfflineBody)
			return a, nil
		}
		return a, a.refreshAfterMutation(msg.storyID)

	case bookmarkRemovedMsg:
		a.actions.FinishRemove(msg.storyID)
		if msg.err != nil {
			a.handleMutationError("remove", msg.storyID, msg.err, removeOfflineBody)
			return a, nil
		}
		return a, a.refreshAfterMutation(msg.storyID)

	case clipboardMsg:
		if msg.err != nil {
			a.setMessage(MessageError, "Copy failed: "+msg.err.Error())
		} else {
			a.setMessage(MessageInfo, "Copied: "+msg.title)
		}
		return a, nil

	case tea.MouseMsg:
		return a, a.handleMouse(msg)

	case tea.KeyMsg:
		return a, a.handleKey(msg)
	}

	return a, nil
}

// View implements tea.Model.
func (a App) View() string {
	return a.renderView()
}

func (a *App) handleKey(msg tea.KeyMsg) tea.Cmd {
	// An open alert swallows everything but its own acknowledgement
	if a.alert != nil {
		if key.Matches(msg, a.keys.Dismiss) {
			a.alert = nil
		}
		return nil
	}

	if a.showHelp {
		if key.Matches(msg, a.keys.Help) || key.Matches(msg, a.keys.Back) || key.Matches(msg, a.keys.Quit) {
			a.showHelp = false
		}
		return nil
	}

	if a.filter.Active {
		return a.handleFilterKey(msg)
	}

	// Handle gg sequence
	if key.Matches(msg, a.keys.Top) {
		if a.lastKeyWasG {
			a.lastKeyWasG = false
			a.moveTop()
			return nil
		}
		a.lastKeyWasG = true
		return nil
	}
	a.lastKeyWasG = false

	a.messageText = ""

	switch {
	case key.Matches(msg, a.keys.Quit):
		return tea.Quit
	case key.Matches(msg, a.keys.Help):
		a.showHelp = true
		return nil
	}

	if a.route.Name == RouteStoryDetails {
		return a.handleDetailsKey(msg)
	}
	return a.handleListKey(msg)
}

func (a *App) handleListKey(msg tea.KeyMsg) tea.Cmd {
	list := a.currentList()
	rows := a.StoryItems()

	switch {
	case key.Matches(msg, a.keys.Down):
		if len(rows) > 0 && list.Cursor < len(rows)-1 {
			list.Cursor++
		}

	case key.Matches(msg, a.keys.Up):
		if list.Cursor > 0 {
			list.Cursor--
		}

	case key.Matches(msg, a.keys.Bottom):
		if len(rows) > 0 {
			list.Cursor = len(rows) - 1
		}

	case key.Matches(msg, a.keys.Open):
		if row, ok := a.selectedRow(); ok {
			return a.activateRow(row)
		}

	case key.Matches(msg, a.keys.Bookmark):
		if row, ok := a.selectedRow(); ok {
			return a.activateControl(row)
		}

	case key.Matches(msg, a.keys.NextTab):
		next := Route{Name: RouteBookmarks}
		if a.route.Name == RouteBookmarks {
			next = Route{Name: RouteStories}
		}
		return a.navigator.Navigate(next)

	case key.Matches(msg, a.keys.Filter):
		a.filter.Active = true
		a.filter.Input.SetValue(a.filter.Query)
		a.filter.Input.CursorEnd()
		return a.filter.Input.Focus()

	case key.Matches(msg, a.keys.Back):
		if a.filter.Query != "" {
			a.filter.Reset()
			list.Cursor = 0
		}

	case key.Matches(msg, a.keys.Yank):
		if row, ok := a.selectedRow(); ok {
			if story := list.Feed.GetStoryByID(row.ID); story != nil {
				return copyStoryCmd(a.writeClip, *story)
			}
		}

	case key.Matches(msg, a.keys.Refresh):
		return a.reloadCurrentList()
	}

	return nil
}

func (a *App) handleFilterKey(msg tea.KeyMsg) tea.Cmd {
	list := a.currentList()
	if list == nil {
		a.filter.Active = false
		a.filter.Input.Blur()
		return nil
	}

	switch msg.Type {
	case tea.KeyEsc:
		a.filter.Reset()
		list.Cursor = 0
		return nil
	case tea.KeyEnter:
		a.filter.Active = false
		a.filter.Input.Blur()
		return nil
	}

	var cmd tea.Cmd
	a.filter.Input, cmd = a.filter.Input.Update(msg)
	if q := a.filter.Input.Value(); q != a.filter.Query {
		a.filter.Query = q
		list.Cursor = 0
	}
	return cmd
}

func (a *App) handleDetailsKey(msg tea.KeyMsg) tea.Cmd {
	switch {
	case key.Matches(msg, a.keys.Back):
		a.back()

	case key.Matches(msg, a.keys.Down):
		a.details.Scroll++

	case key.Matches(msg, a.keys.Up):
		if a.details.Scroll > 0 {
			a.details.Scroll--
		}

	case key.Matches(msg, a.keys.Yank):
		if a.details.Story != nil {
			return copyStoryCmd(a.writeClip, a.details.Story.StorySummary)
		}

	case key.Matches(msg, a.keys.Refresh):
		return a.navigateDetails(a.details.Params, false)
	}
	return nil
}

func (a *App) handleMouse(msg tea.MouseMsg) tea.Cmd {
	if a.alert != nil || a.showHelp || a.filter.Active {
		return nil
	}

	if a.route.Name == RouteStoryDetails {
		switch msg.Button {
		case tea.MouseButtonWheelDown:
			a.details.Scroll++
		case tea.MouseButtonWheelUp:
			if a.details.Scroll > 0 {
				a.details.Scroll--
			}
		}
		return nil
	}

	list := a.currentList()
	rows := a.StoryItems()

	switch msg.Button {
	case tea.MouseButtonWheelDown:
		if list.Cursor < len(rows)-1 {
			list.Cursor++
		}
		return nil
	case tea.MouseButtonWheelUp:
		if list.Cursor > 0 {
			list.Cursor--
		}
		return nil
	}

	if msg.Action != tea.MouseActionPress || msg.Button != tea.MouseButtonLeft {
		return nil
	}

	cfg := a.layoutConfig.List
	visible := layout.CalculateVisibleItems(layout.CalculateListHeight(a.height, cfg), cfg)
	offset := layout.CalculateViewportOffset(list.Cursor, len(rows), visible)

	hit, ok := layout.HitTestRow(msg.Y, offset, len(rows), visible, cfg)
	if !ok {
		return nil
	}
	list.Cursor = hit.Index
	row := rows[hit.Index]

	width := layout.CalculateItemWidth(a.width, cfg)
	controlWidth := layout.VisibleLength(controlText(row.Control))
	if hit.Line == 0 && layout.HitTestControl(msg.X, width, controlWidth, cfg) {
		return a.activateControl(row)
	}
	return a.activateRow(row)
}

// activateRow opens the details of the story on a row.
func (a *App) activateRow(row StoryItemView) tea.Cmd {
	return a.navigator.Navigate(detailsRoute(row))
}

// activateControl runs whichever bookmark mutation the row offers.
// Rows without a control do nothing.
func (a *App) activateControl(row StoryItemView) tea.Cmd {
	switch row.Control {
	case ControlAdd:
		if !a.actions.StartAdd(row.ID) {
			return nil
		}
		return tea.Batch(addBookmarkCmd(a.source, row.ID), a.startSpinner())

	case ControlRemove:
		if !a.actions.StartRemove(row.ID) {
			return nil
		}
		return tea.Batch(removeBookmarkCmd(a.source, row.ID, row.BookmarkID), a.startSpinner())
	}
	return nil
}

func (a *App) handleMutationError(action, storyID string, err error, offlineBody string) {
	if api.IsOffline(err) {
		a.alert = offlineAlert(offlineBody)
		return
	}
	a.logger.Warn("bookmark mutation failed",
		"action", action,
		"story_id", storyID,
		"kind", api.KindOf(err),
		"error", err,
	)
}

// refreshAfterMutation reloads everything that shows bookmark state.
func (a *App) refreshAfterMutation(storyID string) tea.Cmd {
	cmds := []tea.Cmd{
		loadStoriesCmd(a.source),
		loadBookmarksCmd(a.source),
	}
	if a.route.Name == RouteStoryDetails && a.details.Params.ID == storyID {
		cmds = append(cmds, loadStoryCmd(a.source, storyID))
	}
	return tea.Batch(cmds...)
}

func (a *App) navigate(route Route) tea.Cmd {
	a.showHelp = false

	if route.isTab() {
		a.history = nil
		if route.Name != a.route.Name {
			a.filter.Reset()
		}
		a.route = route
		return a.reloadCurrentList()
	}

	if route.Name == RouteStoryDetails {
		// The details screen has no list to filter
		a.filter.Active = false
		a.filter.Input.Blur()
		if a.route != route {
			a.history = append(a.history, a.route)
			a.route = route
		}
		return a.navigateDetails(route.Params, true)
	}

	a.logger.Warn("unknown route", "route", route.Name)
	return nil
}

func (a *App) navigateDetails(params StoryDetailsParams, reset bool) tea.Cmd {
	if reset {
		a.details = DetailsState{Params: params}
	}
	a.details.Loading = true
	return tea.Batch(loadStoryCmd(a.source, params.ID), a.startSpinner())
}

// back returns to the previous screen.
func (a *App) back() {
	if len(a.history) == 0 {
		return
	}
	last := len(a.history) - 1
	a.route = a.history[last]
	a.history = a.history[:last]
}

func (a *App) reloadCurrentList() tea.Cmd {
	list := a.currentList()
	if list == nil {
		return nil
	}
	list.Loading = true

	load := loadStoriesCmd(a.source)
	if a.route.Name == RouteBookmarks {
		load = loadBookmarksCmd(a.source)
	}
	return tea.Batch(load, a.startSpinner())
}

func (a *App) applyList(list *ListState, stories []model.StorySummary, stale bool, err error, what string) {
	list.Loading = false
	if err != nil {
		a.logger.Warn("load failed", "list", what, "kind", api.KindOf(err), "error", err)
		list.Err = err
		return
	}

	list.Feed = model.NewFeed(stories)
	a.logger.Debug("list loaded", "list", what, "count", list.Feed.Len(), "stale", stale)
	list.Loaded = true
	list.Stale = stale
	list.Err = nil
	list.ClampCursor(len(list.Visible(a.filter.Query)))
}

func (a *App) applyDetails(msg storyLoadedMsg) {
	// A late response for a story no longer shown
	if msg.id != a.details.Params.ID {
		return
	}

	a.details.Loading = false
	if msg.err != nil {
		a.logger.Warn("load story failed", "story_id", msg.id, "kind", api.KindOf(msg.err), "error", msg.err)
		a.details.Err = msg.err
		return
	}

	a.details.Story = msg.story
	a.details.Stale = msg.stale
	a.details.Err = nil

	body, err := htmltext.PlainText(msg.story.Text)
	if err != nil {
		a.logger.Debug("story text is not html", "story_id", msg.id, "error", err)
		body = msg.story.Text
	}
	a.details.Body = body
}

func (a *App) moveTop() {
	if a.route.Name == RouteStoryDetails {
		a.details.Scroll = 0
		return
	}
	if list := a.currentList(); list != nil {
		list.Cursor = 0
	}
}

// currentList returns the list for the current tab, or nil on other screens.
func (a *App) currentList() *ListState {
	switch a.route.Name {
	case RouteStories:
		return &a.stories
	case RouteBookmarks:
		return &a.bookmarks
	}
	return nil
}

func (a App) selectedRow() (StoryItemView, bool) {
	rows := a.StoryItems()
	cursor := a.Cursor()
	if cursor < 0 || cursor >= len(rows) {
		return StoryItemView{}, false
	}
	return rows[cursor], true
}

func (a *App) setMessage(t MessageType, text string) {
	a.messageType = t
	a.messageText = text
}

// startSpinner starts the tick loop unless it is already running.
func (a *App) startSpinner() tea.Cmd {
	if a.spinning {
		return nil
	}
	a.spinning = true
	return a.spinner.Tick
}

func (a App) needsSpinner() bool {
	if a.actions.Busy() || a.details.Loading {
		return true
	}
	return a.stories.Loading || a.bookmarks.Loading
}
