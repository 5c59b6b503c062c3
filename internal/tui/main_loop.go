package tui

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/hacksnooze/snooze-client/internal/service"
	"github.com/hacksnooze/snooze-client/models"
)

type storyView int

const (
	feedView storyView = iota
	favoritesView
	ownView
)

type mainLoopModel struct {
	ctx      context.Context
	services *service.ClientServices
	user     *models.User

	feed    *models.StoryList
	view    storyView
	idx     int
	loading bool
	offline bool
	status  string
	errMsg  string
	detail  bool

	adding    bool
	addInputs []textinput.Model
	addFocus  int
	addSaving bool
	addErr    string

	confirmDelete bool
	deleteTarget  models.Story

	logout bool
}

func newMainLoopModel(ctx context.Context, services *service.ClientServices, user *models.User) mainLoopModel {
	return mainLoopModel{
		ctx:      ctx,
		services: services,
		user:     user,
		feed:     models.NewStoryList(nil),
		loading:  true,
	}
}

func (m mainLoopModel) Init() tea.Cmd {
	return m.cmdLoadFeed()
}

func (m mainLoopModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case feedLoadedMsg:
		m.loading = false
		if msg.err != nil {
			m.errMsg = humanizeError(msg.err)
			return m, nil
		}
		m.errMsg = ""
		m.feed = msg.list
		m.offline = msg.fromCache
		if msg.fromCache {
			m.status = "Server unreachable, showing cached stories"
		} else {
			m.status = "Loaded " + pluralStories(m.feed.Len())
		}
		m.clampIdx()
		return m, nil
	case storySubmittedMsg:
		m.addSaving = false
		if msg.err != nil {
			m.addErr = humanizeError(msg.err)
			return m, nil
		}
		m.resetAddForm()
		m.status = "Story \"" + fitText(msg.story.Title, 30) + "\" submitted"
		m.errMsg = ""
		return m, nil
	case storyDeletedMsg:
		if msg.err != nil {
			m.errMsg = "Delete failed: " + humanizeError(msg.err)
			return m, nil
		}
		m.status = "Story removed"
		m.errMsg = ""
		m.detail = false
		m.clampIdx()
		return m, nil
	case favoriteToggledMsg:
		if msg.err != nil {
			m.errMsg = humanizeError(msg.err)
			return m, nil
		}
		if msg.added {
			m.status = "Added to favorites"
		} else {
			m.status = "Removed from favorites"
		}
		m.errMsg = ""
		m.clampIdx()
		return m, nil
	case clearStatusMsg:
		m.status = ""
		return m, nil
	}

	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		if m.adding {
			return m.updateAddForm(msg)
		}
		return m, nil
	}

	switch keyMsg.String() {
	case "ctrl+c":
		return m, tea.Quit
	}

	if m.adding {
		return m.updateAddForm(msg)
	}

	if m.confirmDelete {
		switch keyMsg.String() {
		case "y":
			m.confirmDelete = false
			return m, m.cmdDelete(m.deleteTarget.StoryID)
		case "n", "esc":
			m.confirmDelete = false
		}
		return m, nil
	}

	if m.detail {
		story, ok := m.current()
		if !ok {
			m.detail = false
			return m, nil
		}

		switch keyMsg.String() {
		case "esc":
			m.detail = false
		case "c":
			return m.copyStoryURL(story)
		case "f":
			return m.toggleFavorite(story)
		case "ctrl+d":
			return m.startDelete(story)
		}
		return m, nil
	}

	switch keyMsg.String() {
	case "q":
		return m, tea.Quit
	case "up", "k":
		if m.idx > 0 {
			m.idx--
		}
	case "down", "j":
		if m.idx < len(m.visibleStories())-1 {
			m.idx++
		}
	case "tab":
		return m.nextView()
	case "1":
		m.switchView(feedView)
	case "2":
		return m.switchAuthedView(favoritesView)
	case "3":
		return m.switchAuthedView(ownView)
	case "enter":
		if _, ok := m.current(); !ok {
			m.status = "No stories here"
			return m, nil
		}
		m.detail = true
	case "n":
		if !m.user.IsAuthenticated() {
			m.status = "Log in to submit stories"
			return m, nil
		}
		m.startAddForm()
		return m, nil
	case "f":
		story, ok := m.current()
		if !ok {
			m.status = "No stories here"
			return m, nil
		}
		return m.toggleFavorite(story)
	case "c":
		story, ok := m.current()
		if !ok {
			m.status = "No stories here"
			return m, nil
		}
		return m.copyStoryURL(story)
	case "ctrl+d":
		story, ok := m.current()
		if !ok {
			m.status = "No stories here"
			return m, nil
		}
		return m.startDelete(story)
	case "r":
		if m.loading {
			return m, nil
		}
		m.loading = true
		m.status = "Refreshing..."
		m.errMsg = ""
		return m, m.cmdLoadFeed()
	case "l":
		if !m.user.IsAuthenticated() {
			m.status = "Not logged in"
			return m, nil
		}
		m.logout = true
		return m, tea.Quit
	}

	return m, nil
}

func (m mainLoopModel) View() string {
	if m.adding {
		return m.viewAddForm()
	}
	if m.confirmDelete {
		return overlayBoxStyle.Render("Delete \"" + fitText(m.deleteTarget.Title, 40) + "\"?\n\ny: yes    n: no")
	}
	if m.detail {
		if story, ok := m.current(); ok {
			return m.viewDetail(story)
		}
	}
	return m.viewList()
}

// ── list ─────────────────────────────────────────────────────────────────────

func (m mainLoopModel) visibleStories() []models.Story {
	switch m.view {
	case favoritesView:
		if m.user != nil {
			return m.user.Favorites
		}
		return nil
	case ownView:
		if m.user != nil {
			return m.user.OwnStories
		}
		return nil
	default:
		return m.feed.Stories
	}
}

func (m mainLoopModel) current() (models.Story, bool) {
	stories := m.visibleStories()
	if m.idx < 0 || m.idx >= len(stories) {
		return models.Story{}, false
	}
	return stories[m.idx], true
}

func (m *mainLoopModel) clampIdx() {
	if max := len(m.visibleStories()) - 1; m.idx > max {
		m.idx = max
	}
	if m.idx < 0 {
		m.idx = 0
	}
}

func (m mainLoopModel) nextView() (tea.Model, tea.Cmd) {
	if !m.user.IsAuthenticated() {
		m.status = "Log in to see favorites and your stories"
		return m, nil
	}
	m.switchView((m.view + 1) % 3)
	return m, nil
}

func (m mainLoopModel) switchAuthedView(view storyView) (tea.Model, tea.Cmd) {
	if !m.user.IsAuthenticated() {
		m.status = "Log in to see favorites and your stories"
		return m, nil
	}
	m.switchView(view)
	return m, nil
}

func (m *mainLoopModel) switchView(view storyView) {
	m.view = view
	m.idx = 0
	m.detail = false
}

func (m mainLoopModel) viewList() string {
	title := m.listTitle()
	if m.offline {
		title += " (offline)"
	}

	if m.loading {
		return renderPage(title, "Loading...", "")
	}

	stories := m.visibleStories()

	var b strings.Builder
	if m.status != "" {
		b.WriteString("OK: " + m.status + "\n")
	}
	if m.errMsg != "" {
		b.WriteString("Error: " + m.errMsg + "\n")
	}
	if m.status != "" || m.errMsg != "" {
		b.WriteString("\n")
	}

	if len(stories) == 0 {
		b.WriteString("(no stories)\n")
	} else {
		for i, story := range stories {
			cursor := " "
			if i == m.idx {
				cursor = ">"
			}
			b.WriteString(fmt.Sprintf("%s %2d. %s%s (%s)\n",
				cursor, i+1, m.favoriteMarker(story), fitText(story.Title, 48), m.hostOrDash(story)))
			b.WriteString(fmt.Sprintf("        by %s, posted by %s\n", fitText(story.Author, 30), story.Username))
		}
	}

	return renderPage(title, strings.TrimRight(b.String(), "\n"), m.listHotKeys())
}

func (m mainLoopModel) listTitle() string {
	switch m.view {
	case favoritesView:
		return "FAVORITES"
	case ownView:
		return "MY STORIES"
	default:
		return "ALL STORIES"
	}
}

func (m mainLoopModel) listHotKeys() string {
	if m.user.IsAuthenticated() {
		return "enter: open │ n: new │ f: star │ c: copy url │ ctrl+d: delete │ tab/1/2/3: view │ r: refresh │ l: logout │ q: quit"
	}
	return "enter: open │ c: copy url │ r: refresh │ q: quit"
}

func (m mainLoopModel) favoriteMarker(story models.Story) string {
	if m.user != nil && m.user.IsFavorite(story) {
		return "★ "
	}
	return "  "
}

func (m mainLoopModel) hostOrDash(story models.Story) string {
	host, err := story.HostName()
	if err != nil || host == "" {
		return "-"
	}
	return host
}

// ── detail ───────────────────────────────────────────────────────────────────

func (m mainLoopModel) viewDetail(story models.Story) string {
	var b strings.Builder

	b.WriteString("Title     : " + story.Title + "\n")
	b.WriteString("Author    : " + story.Author + "\n")
	b.WriteString("URL       : " + story.URL + "\n")
	b.WriteString("Posted by : " + story.Username + "\n")
	if !story.CreatedAt.IsZero() {
		b.WriteString("Posted at : " + story.CreatedAt.Format(time.RFC822) + "\n")
	}

	if m.user.IsAuthenticated() {
		if m.user.IsFavorite(story) {
			b.WriteString("\n★ In your favorites\n")
		}
		if m.user.IsOwnStory(story) {
			b.WriteString("\nThis is your story\n")
		}
	}

	if m.status != "" {
		b.WriteString("\nOK: " + m.status + "\n")
	}
	if m.errMsg != "" {
		b.WriteString("\nError: " + m.errMsg + "\n")
	}

	hotKeys := "c: copy url │ esc: back"
	if m.user.IsAuthenticated() {
		hotKeys = "f: star │ c: copy url │ ctrl+d: delete │ esc: back"
	}

	return renderPage("STORY: "+fitText(story.Title, 40), strings.TrimRight(b.String(), "\n"), hotKeys)
}

// ── actions ──────────────────────────────────────────────────────────────────

func (m mainLoopModel) copyStoryURL(story models.Story) (tea.Model, tea.Cmd) {
	if err := clipboard.WriteAll(story.URL); err != nil {
		m.errMsg = fmt.Sprintf("Copy failed: %v", err)
		return m, nil
	}
	m.status = "URL copied"
	return m, tea.Tick(3*time.Second, func(time.Time) tea.Msg { return clearStatusMsg{} })
}

func (m mainLoopModel) toggleFavorite(story models.Story) (tea.Model, tea.Cmd) {
	if !m.user.IsAuthenticated() {
		m.status = "Log in to favorite stories"
		return m, nil
	}
	return m, m.cmdToggleFavorite(story)
}

func (m mainLoopModel) startDelete(story models.Story) (tea.Model, tea.Cmd) {
	if !m.user.IsAuthenticated() {
		m.status = "Log in to delete stories"
		return m, nil
	}
	if !m.user.IsOwnStory(story) {
		m.status = "Only your own stories can be deleted"
		return m, nil
	}
	m.confirmDelete = true
	m.deleteTarget = story
	return m, nil
}

// ── submit form ──────────────────────────────────────────────────────────────

func (m *mainLoopModel) startAddForm() {
	title := textinput.New()
	title.Placeholder = "title"
	title.CharLimit = 100
	title.Width = 48
	title.Focus()

	author := textinput.New()
	author.Placeholder = "author"
	author.CharLimit = 50
	author.Width = 48
	if m.user != nil && m.user.Name != "" {
		author.SetValue(m.user.Name)
	}

	url := textinput.New()
	url.Placeholder = "https://..."
	url.CharLimit = 200
	url.Width = 48

	m.addInputs = []textinput.Model{title, author, url}
	m.addFocus = 0
	m.addSaving = false
	m.addErr = ""
	m.adding = true
	m.status = ""
	m.errMsg = ""
}

func (m *mainLoopModel) resetAddForm() {
	m.adding = false
	m.addInputs = nil
	m.addFocus = 0
	m.addSaving = false
	m.addErr = ""
}

func (m mainLoopModel) updateAddForm(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if ok {
		switch keyMsg.String() {
		case "esc":
			m.resetAddForm()
			return m, nil
		case "tab":
			m.addInputs[m.addFocus].Blur()
			m.addFocus = (m.addFocus + 1) % len(m.addInputs)
			m.addInputs[m.addFocus].Focus()
			return m, nil
		case "shift+tab":
			m.addInputs[m.addFocus].Blur()
			m.addFocus = (m.addFocus - 1 + len(m.addInputs)) % len(m.addInputs)
			m.addInputs[m.addFocus].Focus()
			return m, nil
		case "enter":
			if m.addSaving {
				return m, nil
			}

			draft := models.StoryDraft{
				Title:  strings.TrimSpace(m.addInputs[0].Value()),
				Author: strings.TrimSpace(m.addInputs[1].Value()),
				URL:    strings.TrimSpace(m.addInputs[2].Value()),
			}
			if err := draft.Validate(); err != nil {
				m.addErr = "Title, author and URL are required"
				return m, nil
			}

			m.addErr = ""
			m.addSaving = true
			return m, m.cmdSubmit(draft)
		}
	}

	var cmd tea.Cmd
	m.addInputs[m.addFocus], cmd = m.addInputs[m.addFocus].Update(msg)
	return m, cmd
}

func (m mainLoopModel) viewAddForm() string {
	var b strings.Builder
	b.WriteString("Field  │ Value\n")
	b.WriteString("───────┼────────────────────────────────────────────────\n")
	b.WriteString("Title  │ [" + m.addInputs[0].View() + "]\n")
	b.WriteString("Author │ [" + m.addInputs[1].View() + "]\n")
	b.WriteString("URL    │ [" + m.addInputs[2].View() + "]\n")

	if m.addSaving {
		b.WriteString("\n[Submitting...]\n")
	} else {
		b.WriteString("\n[Submit]\n")
	}

	if m.addErr != "" {
		b.WriteString("\nError: " + m.addErr + "\n")
	}

	return renderPage("NEW STORY", strings.TrimRight(b.String(), "\n"), "esc: cancel │ tab: next field │ enter: submit")
}

// ── commands ─────────────────────────────────────────────────────────────────

// cmdLoadFeed fetches the feed, falling back to the local cache when the
// server is unreachable.
func (m mainLoopModel) cmdLoadFeed() tea.Cmd {
	ctx := m.ctx
	svc := m.services.StoryService

	return func() tea.Msg {
		list, err := svc.FetchAll(ctx)
		if err == nil {
			return feedLoadedMsg{list: list}
		}

		cached, cacheErr := svc.FetchCached(ctx)
		if cacheErr != nil || cached.Len() == 0 {
			return feedLoadedMsg{err: err}
		}
		return feedLoadedMsg{list: cached, fromCache: true}
	}
}

func (m mainLoopModel) cmdSubmit(draft models.StoryDraft) tea.Cmd {
	ctx := m.ctx
	svc := m.services.StoryService
	user := m.user
	feed := m.feed

	return func() tea.Msg {
		story, err := svc.Add(ctx, user, feed, draft)
		return storySubmittedMsg{story: story, err: err}
	}
}

func (m mainLoopModel) cmdDelete(storyID string) tea.Cmd {
	ctx := m.ctx
	svc := m.services.StoryService
	user := m.user
	feed := m.feed

	return func() tea.Msg {
		err := svc.Remove(ctx, user, feed, storyID)
		return storyDeletedMsg{storyID: storyID, err: err}
	}
}

func (m mainLoopModel) cmdToggleFavorite(story models.Story) tea.Cmd {
	ctx := m.ctx
	svc := m.services.FavoriteService
	user := m.user

	return func() tea.Msg {
		if user.IsFavorite(story) {
			return favoriteToggledMsg{story: story, added: false, err: svc.Remove(ctx, user, story)}
		}
		return favoriteToggledMsg{story: story, added: true, err: svc.Add(ctx, user, story)}
	}
}
