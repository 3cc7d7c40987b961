package tui

import tea "github.com/charmbracelet/bubbletea"

// RouteName identifies a screen.
type RouteName string

const (
	RouteStories      RouteName = "stories"
	RouteBookmarks    RouteName = "bookmarks"
	RouteStoryDetails RouteName = "story details"
)

// StoryDetailsParams are the parameters of the story details screen.
type StoryDetailsParams struct {
	ID    string
	Title string
}

// Route is a screen plus its parameters.
type Route struct {
	Name   RouteName
	Params StoryDetailsParams
}

// Navigator moves the app to another screen.
type Navigator interface {
	Navigate(route Route) tea.Cmd
}

// NavigateMsg asks the App to show route.
type NavigateMsg struct {
	Route Route
}

// msgNavigator is the default Navigator: it routes through the App's own
// update loop.
type msgNavigator struct{}

func (msgNavigator) Navigate(route Route) tea.Cmd {
	return func() tea.Msg {
		return NavigateMsg{Route: route}
	}
}

// detailsRoute builds the details route for a story row.
func detailsRoute(view StoryItemView) Route {
	return Route{
		Name:   RouteStoryDetails,
		Params: StoryDetailsParams{ID: view.ID, Title: view.Title},
	}
}

// isTab reports whether the route is one of the top-level lists.
func (r Route) isTab() bool {
	return r.Name == RouteStories || r.Name == RouteBookmarks
}

// cta returns the call to action a list route offers.
func (r Route) cta() CallToAction {
	if r.Name == RouteBookmarks {
		return CTARemove
	}
	return CTAAdd
}
