package slice

import (
	"sync"
	"time"

	"github.com/google/uuid"
)

// Theme is the console colour scheme.
type Theme string

const (
	ThemeLight Theme = "light"
	ThemeDark  Theme = "dark"
)

// ViewMode is how collections are laid out.
type ViewMode string

const (
	ViewGrid ViewMode = "grid"
	ViewList ViewMode = "list"
)

// Modal names a dialog.
type Modal string

const (
	ProductModal       Modal = "productModal"
	CategoryModal      Modal = "categoryModal"
	OrderModal         Modal = "orderModal"
	DeleteConfirmModal Modal = "deleteConfirmModal"
)

var modals = []Modal{ProductModal, CategoryModal, OrderModal, DeleteConfirmModal}

// LoadingKey names a screen-level loading flag.
type LoadingKey string

const (
	LoadingGlobal     LoadingKey = "global"
	LoadingProducts   LoadingKey = "products"
	LoadingCategories LoadingKey = "categories"
	LoadingOrders     LoadingKey = "orders"
)

var loadingKeys = []LoadingKey{LoadingGlobal, LoadingProducts, LoadingCategories, LoadingOrders}

// NotificationType is the severity of a toast.
type NotificationType string

const (
	NotifySuccess NotificationType = "success"
	NotifyError   NotificationType = "error"
	NotifyInfo    NotificationType = "info"
)

// Notification is a transient message.
type Notification struct {
	ID        string
	Type      NotificationType
	Message   string
	CreatedAt time.Time
}

// UIState is a snapshot of the UI slice.
type UIState struct {
	SidebarOpen   bool
	Theme         Theme
	Notifications []Notification
	Modals        map[Modal]bool
	LoadingStates map[LoadingKey]bool
	SearchQuery   string
	SelectedItems []string
	ViewMode      ViewMode
}

func initialUIState() UIState {
	s := UIState{
		SidebarOpen:   true,
		Theme:         ThemeLight,
		Notifications: []Notification{},
		Modals:        make(map[Modal]bool, len(modals)),
		LoadingStates: make(map[LoadingKey]bool, len(loadingKeys)),
		SelectedItems: []string{},
		ViewMode:      ViewGrid,
	}
	for _, m := range modals {
		s.Modals[m] = false
	}
	for _, k := range loadingKeys {
		s.LoadingStates[k] = false
	}
	return s
}

func (s UIState) clone() UIState {
	out := s
	out.Notifications = append([]Notification{}, s.Notifications...)
	out.SelectedItems = append([]string{}, s.SelectedItems...)
	out.Modals = make(map[Modal]bool, len(s.Modals))
	for k, v := range s.Modals {
		out.Modals[k] = v
	}
	out.LoadingStates = make(map[LoadingKey]bool, len(s.LoadingStates))
	for k, v := range s.LoadingStates {
		out.LoadingStates[k] = v
	}
	return out
}

// UISlice holds presentation state and collects the notifications raised by
// the other slices.
type UISlice struct {
	mu    sync.RWMutex
	state UIState
	hook  changeHook
	now   func() time.Time
}

// NewUISlice creates a UI slice with the sidebar open and the light theme.
func NewUISlice() *UISlice {
	return &UISlice{state: initialUIState(), now: time.Now}
}

// State returns a copy of the current UI state.
func (u *UISlice) State() UIState {
	u.mu.RLock()
	defer u.mu.RUnlock()
	return u.state.clone()
}

func (u *UISlice) update(fn func(*UIState)) {
	u.mu.Lock()
	fn(&u.state)
	u.mu.Unlock()
	u.hook.emit()
}

// ToggleSidebar flips the sidebar.
func (u *UISlice) ToggleSidebar() {
	u.update(func(s *UIState) { s.SidebarOpen = !s.SidebarOpen })
}

func (u *UISlice) SetSidebarOpen(open bool) {
	u.update(func(s *UIState) { s.SidebarOpen = open })
}

// ToggleTheme switches between light and dark.
func (u *UISlice) ToggleTheme() {
	u.update(func(s *UIState) {
		if s.Theme == ThemeLight {
			s.Theme = ThemeDark
		} else {
			s.Theme = ThemeLight
		}
	})
}

func (u *UISlice) SetTheme(t Theme) {
	u.update(func(s *UIState) { s.Theme = t })
}

// AddNotification queues a message and returns its id.
func (u *UISlice) AddNotification(kind NotificationType, message string) string {
	n := Notification{
		ID:        uuid.NewString(),
		Type:      kind,
		Message:   message,
		CreatedAt: u.now(),
	}
	u.update(func(s *UIState) { s.Notifications = append(s.Notifications, n) })
	return n.ID
}

// RemoveNotification dismisses one notification.
func (u *UISlice) RemoveNotification(id string) {
	u.update(func(s *UIState) {
		kept := s.Notifications[:0:0]
		for _, n := range s.Notifications {
			if n.ID != id {
				kept = append(kept, n)
			}
		}
		s.Notifications = kept
	})
}

func (u *UISlice) ClearNotifications() {
	u.update(func(s *UIState) { s.Notifications = []Notification{} })
}

// Success raises a success toast.
func (u *UISlice) Success(message string) {
	u.AddNotification(NotifySuccess, message)
}

// Error raises an error toast.
func (u *UISlice) Error(message string) {
	u.AddNotification(NotifyError, message)
}

// OpenModal ignores names that are not known modals.
func (u *UISlice) OpenModal(m Modal) {
	u.update(func(s *UIState) {
		if _, ok := s.Modals[m]; ok {
			s.Modals[m] = true
		}
	})
}

func (u *UISlice) CloseModal(m Modal) {
	u.update(func(s *UIState) {
		if _, ok := s.Modals[m]; ok {
			s.Modals[m] = false
		}
	})
}

// CloseAllModals closes every dialog.
func (u *UISlice) CloseAllModals() {
	u.update(func(s *UIState) {
		for k := range s.Modals {
			s.Modals[k] = false
		}
	})
}

func (u *UISlice) SetLoadingState(key LoadingKey, loading bool) {
	u.update(func(s *UIState) {
		if _, ok := s.LoadingStates[key]; ok {
			s.LoadingStates[key] = loading
		}
	})
}

func (u *UISlice) SetGlobalLoading(loading bool) {
	u.SetLoadingState(LoadingGlobal, loading)
}

func (u *UISlice) SetSearchQuery(q string) {
	u.update(func(s *UIState) { s.SearchQuery = q })
}

func (u *UISlice) ClearSearchQuery() {
	u.SetSearchQuery("")
}

func (u *UISlice) SetSelectedItems(ids []string) {
	u.update(func(s *UIState) { s.SelectedItems = append([]string{}, ids...) })
}

// AddSelectedItem selects id once.
func (u *UISlice) AddSelectedItem(id string) {
	u.update(func(s *UIState) {
		for _, v := range s.SelectedItems {
			if v == id {
				return
			}
		}
		s.SelectedItems = append(s.SelectedItems, id)
	})
}

func (u *UISlice) RemoveSelectedItem(id string) {
	u.update(func(s *UIState) {
		kept := []string{}
		for _, v := range s.SelectedItems {
			if v != id {
				kept = append(kept, v)
			}
		}
		s.SelectedItems = kept
	})
}

func (u *UISlice) ClearSelectedItems() {
	u.SetSelectedItems(nil)
}

// SetViewMode sets the collection layout.
func (u *UISlice) SetViewMode(m ViewMode) {
	u.update(func(s *UIState) { s.ViewMode = m })
}

// ResetUI restores the initial state but keeps the theme.
func (u *UISlice) ResetUI() {
	u.update(func(s *UIState) {
		theme := s.Theme
		*s = initialUIState()
		s.Theme = theme
	})
}
