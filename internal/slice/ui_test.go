package slice

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSidebarAndTheme(t *testing.T) {
	ui := NewUISlice()
	assert.True(t, ui.State().SidebarOpen)
	assert.Equal(t, ThemeLight, ui.State().Theme)

	ui.ToggleSidebar()
	assert.False(t, ui.State().SidebarOpen)
	ui.SetSidebarOpen(true)
	assert.True(t, ui.State().SidebarOpen)

	ui.ToggleTheme()
	assert.Equal(t, ThemeDark, ui.State().Theme)
	ui.ToggleTheme()
	assert.Equal(t, ThemeLight, ui.State().Theme)
}

func TestNotifications(t *testing.T) {
	ui := NewUISlice()

	first := ui.AddNotification(NotifyInfo, "Heads up")
	ui.Success("Saved")
	ui.Error("Broke")

	state := ui.State()
	assert.Len(t, state.Notifications, 3)
	assert.Equal(t, NotifySuccess, state.Notifications[1].Type)
	assert.NotEqual(t, state.Notifications[0].ID, state.Notifications[1].ID)

	ui.RemoveNotification(first)
	assert.Len(t, ui.State().Notifications, 2)

	ui.ClearNotifications()
	assert.Empty(t, ui.State().Notifications)
}

func TestModals(t *testing.T) {
	ui := NewUISlice()

	ui.OpenModal(ProductModal)
	ui.OpenModal(OrderModal)
	ui.OpenModal(Modal("unknown"))
	state := ui.State()
	assert.True(t, state.Modals[ProductModal])
	assert.True(t, state.Modals[OrderModal])
	assert.NotContains(t, state.Modals, Modal("unknown"))

	ui.CloseModal(ProductModal)
	assert.False(t, ui.State().Modals[ProductModal])

	ui.CloseAllModals()
	for _, open := range ui.State().Modals {
		assert.False(t, open)
	}
}

func TestLoadingSearchSelection(t *testing.T) {
	ui := NewUISlice()

	ui.SetGlobalLoading(true)
	ui.SetLoadingState(LoadingOrders, true)
	assert.True(t, ui.State().LoadingStates[LoadingGlobal])
	assert.True(t, ui.State().LoadingStates[LoadingOrders])

	ui.SetSearchQuery("lamp")
	assert.Equal(t, "lamp", ui.State().SearchQuery)
	ui.ClearSearchQuery()
	assert.Empty(t, ui.State().SearchQuery)

	ui.SetSelectedItems([]string{"a", "b"})
	ui.AddSelectedItem("b")
	ui.AddSelectedItem("c")
	assert.Equal(t, []string{"a", "b", "c"}, ui.State().SelectedItems)
	ui.RemoveSelectedItem("a")
	assert.Equal(t, []string{"b", "c"}, ui.State().SelectedItems)
	ui.ClearSelectedItems()
	assert.Empty(t, ui.State().SelectedItems)

	ui.SetViewMode(ViewList)
	assert.Equal(t, ViewList, ui.State().ViewMode)
}

func TestStateIsACopy(t *testing.T) {
	ui := NewUISlice()
	ui.SetSelectedItems([]string{"a"})

	state := ui.State()
	state.SelectedItems[0] = "mutated"
	state.Modals[ProductModal] = true

	assert.Equal(t, []string{"a"}, ui.State().SelectedItems)
	assert.False(t, ui.State().Modals[ProductModal])
}

func TestResetUIKeepsTheme(t *testing.T) {
	ui := NewUISlice()
	ui.SetTheme(ThemeDark)
	ui.SetSidebarOpen(false)
	ui.Success("x")
	ui.SetViewMode(ViewList)

	ui.ResetUI()

	state := ui.State()
	assert.Equal(t, ThemeDark, state.Theme)
	assert.True(t, state.SidebarOpen)
	assert.Empty(t, state.Notifications)
	assert.Equal(t, ViewGrid, state.ViewMode)
}
