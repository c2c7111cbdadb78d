package tui

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/MKhiriev/dealer-desk/internal/adapter"
	"github.com/MKhiriev/dealer-desk/internal/bus"
	"github.com/MKhiriev/dealer-desk/internal/logger"
	"github.com/MKhiriev/dealer-desk/internal/service"
	"github.com/MKhiriev/dealer-desk/models"
	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
)

var ErrUserQuit = errors.New("user quit")

type screen int

const (
	screenLogin screen = iota
	screenList
	screenDetail
	screenForm
)

type appModel struct {
	ctx       context.Context
	services  *service.ClientServices
	events    <-chan bus.Event
	maxStaged int
	logger    *logger.Logger

	currentScreen screen
	user          *models.User

	// cars is the last authoritative fetch; every view filters it on read.
	cars      []models.Car
	uploading map[int64]struct{}

	login  loginModel
	list   listModel
	detail detailModel
	form   carFormModel

	// formFrom is where esc from the form returns to.
	formFrom screen

	showError    bool
	errorOverlay errorOverlayModel
	showConfirm  bool
	confirm      confirmModel
	// pendingDelete is the vehicle id awaiting delete confirmation.
	pendingDelete int64

	err    error
	logout bool
}

func newAppModel(ctx context.Context, services *service.ClientServices, events <-chan bus.Event, maxStaged int, user *models.User, log *logger.Logger) appModel {
	m := appModel{
		ctx:           ctx,
		services:      services,
		events:        events,
		maxStaged:     maxStaged,
		logger:        log,
		user:          user,
		uploading:     make(map[int64]struct{}),
		login:         newLoginModel(),
		list:          newListModel(),
		currentScreen: screenLogin,
	}
	if user != nil {
		m.currentScreen = screenList
	}
	return m
}

func (m appModel) Init() tea.Cmd {
	cmds := []tea.Cmd{m.cmdListenBus()}
	if m.currentScreen == screenList {
		cmds = append(cmds, m.cmdLoadCars(false))
	}
	return tea.Batch(cmds...)
}

// visibleCars applies the current search and sort to the fetched list.
func (m appModel) visibleCars() []models.Car {
	return service.Filter(m.cars, m.list.search.Value(), m.list.sort)
}

func (m appModel) currentVisible() (models.Car, bool) {
	visible := m.visibleCars()
	if m.list.idx < 0 || m.list.idx >= len(visible) {
		return models.Car{}, false
	}
	return visible[m.list.idx], true
}

func (m appModel) loggedIn() bool {
	return m.user != nil
}

func (m appModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if m.showError {
			if key.Matches(msg, keys.enter) || key.Matches(msg, keys.esc) {
				m.showError = false
				m.errorOverlay.message = ""
			}
			return m, nil
		}
		if m.showConfirm {
			if key.Matches(msg, keys.yes) {
				m.showConfirm = false
				if m.pendingDelete == 0 {
					return m, nil
				}
				id := m.pendingDelete
				m.pendingDelete = 0
				m.removeCarLocally(id)
				if m.currentScreen == screenDetail {
					m.currentScreen = screenList
				}
				return m, m.cmdDeleteCar(id)
			}
			if key.Matches(msg, keys.no) || key.Matches(msg, keys.esc) {
				m.showConfirm = false
				m.pendingDelete = 0
			}
			return m, nil
		}

	case busEventMsg:
		return m.handleBusEvent(msg.event)

	case busClosedMsg:
		return m, nil

	case loginDoneMsg:
		m.login.submitting = false
		if msg.err != nil {
			m.login.errMsg = loginErrorMessage(msg.err)
			return m, nil
		}
		user := msg.user
		m.user = &user
		m.login = newLoginModel()
		m.currentScreen = screenList
		m.list.loading = true
		return m, m.cmdLoadCars(false)

	case logoutDoneMsg:
		m.logout = true
		return m, tea.Quit

	case carsLoadedMsg:
		m.list.loading = false
		m.list.refreshing = false
		if msg.err != nil {
			// Failed background refetches keep the previous list on screen.
			if msg.background {
				m.logger.Warn().Err(msg.err).Msg("background list refetch failed")
				return m, nil
			}
			m.showErrorf("Cannot load vehicles: " + msg.err.Error())
			return m, nil
		}
		m.cars = msg.cars
		m.clampListCursor()
		if m.currentScreen == screenDetail {
			fresh, ok := m.findCar(m.detail.car.ID)
			if !ok {
				m.currentScreen = screenList
				return m, nil
			}
			m.detail = m.detail.refresh(fresh)
		}
		return m, nil

	case suggestionsLoadedMsg:
		if m.currentScreen == screenForm {
			m.form.setSuggestions(msg.brands, msg.fuelTypes)
		}
		return m, nil

	case carSavedMsg:
		m.form.submitting = false
		if msg.err != nil {
			m.showErrorf("Cannot save vehicle: " + msg.err.Error())
			return m, nil
		}
		m.currentScreen = screenList
		m.list.status = "Saved"
		if msg.staged > 0 {
			m.list.status = "Saved, uploading images in background"
		}
		return m, cmdClearStatus()

	case carDeletedMsg:
		if msg.err != nil {
			m.showErrorf("Network error, restoring list")
			m.list.refreshing = true
			return m, tea.Batch(m.list.spinner.Tick, m.cmdLoadCars(true))
		}
		return m, nil

	case imageRemovedMsg:
		if msg.err != nil {
			m.showErrorf("Cannot remove image: " + msg.err.Error())
		}
		return m, nil

	case copiedMsg:
		if m.currentScreen == screenDetail {
			m.detail.status = "Copied!"
		}
		m.list.status = "Copied!"
		return m, cmdClearStatus()

	case clearStatusMsg:
		m.detail.status = ""
		m.list.status = ""
		return m, nil

	case tea.WindowSizeMsg:
		return m, nil
	}

	switch m.currentScreen {
	case screenLogin:
		return m.updateLogin(msg)
	case screenList:
		return m.updateList(msg)
	case screenDetail:
		return m.updateDetail(msg)
	case screenForm:
		return m.updateForm(msg)
	}

	return m, nil
}

// handleBusEvent reacts to one bus event and immediately re-arms the
// listener so the next event is picked up.
func (m appModel) handleBusEvent(event bus.Event) (tea.Model, tea.Cmd) {
	cmds := []tea.Cmd{m.cmdListenBus()}

	switch ev := event.(type) {
	case bus.CarsChanged:
		m.list.refreshing = true
		cmds = append(cmds, m.list.spinner.Tick, m.cmdLoadCars(true))
	case bus.CarImagesChanged:
		switch ev.Status {
		case bus.UploadLoading:
			m.uploading[ev.CarID] = struct{}{}
		case bus.UploadCompleted:
			delete(m.uploading, ev.CarID)
			m.list.refreshing = true
			cmds = append(cmds, m.list.spinner.Tick, m.cmdLoadCars(true))
		}
	}

	return m, tea.Batch(cmds...)
}

func (m appModel) View() string {
	var body string
	switch m.currentScreen {
	case screenLogin:
		body = m.login.View()
	case screenList:
		body = m.list.View(m.visibleCars(), m.uploading, m.user)
	case screenDetail:
		_, isUploading := m.uploading[m.detail.car.ID]
		body = m.detail.View(isUploading, m.loggedIn())
	case screenForm:
		body = m.form.View()
	}

	if m.showConfirm {
		body += "\n\n" + m.confirm.View()
	}
	if m.showError {
		body += "\n\n" + m.errorOverlay.View()
	}

	return appStyle.Render(body)
}

func (m *appModel) showErrorf(message string) {
	m.showError = true
	m.errorOverlay = newErrorOverlayModel(message)
}

func (m *appModel) clampListCursor() {
	visible := m.visibleCars()
	if m.list.idx >= len(visible) {
		m.list.idx = len(visible) - 1
	}
	if m.list.idx < 0 {
		m.list.idx = 0
	}
}

func (m appModel) findCar(id int64) (models.Car, bool) {
	for _, car := range m.cars {
		if car.ID == id {
			return car, true
		}
	}
	return models.Car{}, false
}

// removeCarLocally drops the vehicle from the fetched list before the
// delete request resolves; a failed delete refetches to restore it.
func (m *appModel) removeCarLocally(id int64) {
	kept := m.cars[:0]
	for _, car := range m.cars {
		if car.ID != id {
			kept = append(kept, car)
		}
	}
	m.cars = kept
	m.clampListCursor()
}

// loginErrorMessage reduces a login failure to the text shown inline on the
// login form. Backend rejections carry the server's own message, which is
// displayed verbatim.
func loginErrorMessage(err error) string {
	var statusErr *adapter.StatusError
	if errors.As(err, &statusErr) && statusErr.Message != "" {
		return statusErr.Message
	}

	msg := err.Error()
	if cut, ok := strings.CutPrefix(msg, service.ErrLoginFailed.Error()+": "); ok {
		return cut
	}
	return msg
}

func (m appModel) updateLogin(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if ok {
		switch {
		case key.Matches(keyMsg, keys.quit):
			m.err = ErrUserQuit
			return m, tea.Quit
		case key.Matches(keyMsg, keys.esc):
			m.currentScreen = screenList
			m.list.loading = true
			return m, m.cmdLoadCars(false)
		case key.Matches(keyMsg, keys.tab), key.Matches(keyMsg, keys.backtab):
			m.login.inputs[m.login.focus].Blur()
			m.login.focus = (m.login.focus + 1) % len(m.login.inputs)
			m.login.inputs[m.login.focus].Focus()
			return m, nil
		case key.Matches(keyMsg, keys.enter):
			if m.login.submitting {
				return m, nil
			}
			username := strings.TrimSpace(m.login.inputs[0].Value())
			password := m.login.inputs[1].Value()
			if username == "" || password == "" {
				m.login.errMsg = "Username and password are required"
				return m, nil
			}
			m.login.submitting = true
			m.login.errMsg = ""
			return m, m.cmdLogin(username, password)
		}
	}

	var cmd tea.Cmd
	m.login.inputs[m.login.focus], cmd = m.login.inputs[m.login.focus].Update(msg)
	return m, cmd
}

func (m appModel) updateList(msg tea.Msg) (tea.Model, tea.Cmd) {
	if m.list.searchFocus {
		if keyMsg, ok := msg.(tea.KeyMsg); ok {
			if key.Matches(keyMsg, keys.esc) || key.Matches(keyMsg, keys.enter) {
				m.list.searchFocus = false
				m.list.search.Blur()
				return m, nil
			}
		}
		var cmd tea.Cmd
		m.list.search, cmd = m.list.search.Update(msg)
		m.clampListCursor()
		return m, cmd
	}

	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, keys.up):
			if m.list.idx > 0 {
				m.list.idx--
			}
		case key.Matches(msg, keys.down):
			if m.list.idx < len(m.visibleCars())-1 {
				m.list.idx++
			}
		case key.Matches(msg, keys.enter):
			car, ok := m.currentVisible()
			if !ok {
				return m, nil
			}
			m.detail = newDetailModel(car)
			m.currentScreen = screenDetail
		case key.Matches(msg, keys.search):
			m.list.searchFocus = true
			return m, m.list.search.Focus()
		case key.Matches(msg, keys.sort):
			m.list = m.list.cycleSort()
			m.clampListCursor()
		case key.Matches(msg, keys.refresh):
			m.list.refreshing = true
			return m, tea.Batch(m.list.spinner.Tick, m.cmdLoadCars(false))
		case key.Matches(msg, keys.newCar):
			if !m.loggedIn() {
				return m, nil
			}
			m.form = newCarFormModel(nil, m.maxStaged)
			m.formFrom = screenList
			m.currentScreen = screenForm
			return m, m.cmdLoadSuggestions()
		case key.Matches(msg, keys.edit):
			if !m.loggedIn() {
				return m, nil
			}
			car, ok := m.currentVisible()
			if !ok {
				return m, nil
			}
			m.form = newCarFormModel(&car, m.maxStaged)
			m.formFrom = screenList
			m.currentScreen = screenForm
			return m, m.cmdLoadSuggestions()
		case key.Matches(msg, keys.delete):
			if !m.loggedIn() {
				return m, nil
			}
			car, ok := m.currentVisible()
			if !ok {
				return m, nil
			}
			m.showConfirm = true
			m.confirm = newConfirmModel("Delete " + car.Brand + " " + car.Model + "?")
			m.pendingDelete = car.ID
		case key.Matches(msg, keys.logout):
			if !m.loggedIn() {
				m.currentScreen = screenLogin
				m.login = newLoginModel()
				return m, nil
			}
			return m, m.cmdLogout()
		case key.Matches(msg, keys.quit):
			return m, tea.Quit
		}
	case spinner.TickMsg:
		if m.list.refreshing {
			var cmd tea.Cmd
			m.list.spinner, cmd = m.list.spinner.Update(msg)
			return m, cmd
		}
	}

	return m, nil
}

func (m appModel) updateDetail(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	if m.detail.gallery.zoomed != "" {
		if key.Matches(keyMsg, keys.esc) || key.Matches(keyMsg, keys.zoom) {
			m.detail.gallery = m.detail.gallery.closeZoom()
		}
		return m, nil
	}

	switch {
	case key.Matches(keyMsg, keys.esc):
		m.currentScreen = screenList
		return m, nil
	case key.Matches(keyMsg, keys.left):
		m.detail.gallery = m.detail.gallery.prev()
	case key.Matches(keyMsg, keys.right):
		m.detail.gallery = m.detail.gallery.next()
	case key.Matches(keyMsg, keys.zoom):
		m.detail.gallery = m.detail.gallery.toggleZoom()
	case key.Matches(keyMsg, keys.removeImage):
		if !m.loggedIn() {
			return m, nil
		}
		url, ok := m.detail.gallery.current()
		if !ok {
			return m, nil
		}
		return m, m.cmdRemoveImage(m.detail.car.ID, url)
	case key.Matches(keyMsg, keys.edit):
		if !m.loggedIn() {
			return m, nil
		}
		car := m.detail.car
		m.form = newCarFormModel(&car, m.maxStaged)
		m.formFrom = screenDetail
		m.currentScreen = screenForm
		return m, m.cmdLoadSuggestions()
	case key.Matches(keyMsg, keys.delete):
		if !m.loggedIn() {
			return m, nil
		}
		m.showConfirm = true
		m.confirm = newConfirmModel("Delete " + m.detail.car.Brand + " " + m.detail.car.Model + "?")
		m.pendingDelete = m.detail.car.ID
	case key.Matches(keyMsg, keys.copy):
		return m, cmdCopyToClipboard(m.detail.clipboardSummary())
	case key.Matches(keyMsg, keys.copyAll):
		return m, cmdCopyToClipboard(m.detail.clipboardFull())
	case key.Matches(keyMsg, keys.quit):
		return m, tea.Quit
	}

	return m, nil
}

func (m appModel) updateForm(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if ok {
		switch {
		case key.Matches(keyMsg, keys.esc):
			m.currentScreen = m.formFrom
			return m, nil
		case key.Matches(keyMsg, keys.tab):
			m.form = m.form.focusNext()
			return m, nil
		case key.Matches(keyMsg, keys.backtab):
			m.form = m.form.focusPrev()
			return m, nil
		case key.Matches(keyMsg, keys.stageImage):
			m.form = m.form.stageImage()
			return m, nil
		case key.Matches(keyMsg, keys.imageDrop):
			m.form = m.form.dropStaged()
			return m, nil
		case key.Matches(keyMsg, keys.imageNext):
			m.form = m.form.galleryNext()
			return m, nil
		case key.Matches(keyMsg, keys.imagePrev):
			m.form = m.form.galleryPrev()
			return m, nil
		case key.Matches(keyMsg, keys.galleryDrop):
			m.form = m.form.dropGalleryAtCursor()
			return m, nil
		case key.Matches(keyMsg, keys.enter):
			if m.form.focus == fieldImagePath {
				m.form = m.form.stageImage()
				return m, nil
			}
			if m.form.submitting {
				return m, nil
			}
			car, problem := m.form.validate()
			if problem != "" {
				m.form.errMsg = problem
				return m, nil
			}
			m.form.errMsg = ""
			m.form.submitting = true
			return m, m.cmdSaveCar(car, m.form.staged.Files())
		}
	}

	var cmd tea.Cmd
	m.form.inputs[m.form.focus], cmd = m.form.inputs[m.form.focus].Update(msg)
	return m, cmd
}

func (m appModel) cmdListenBus() tea.Cmd {
	events := m.events
	return func() tea.Msg {
		event, ok := <-events
		if !ok {
			return busClosedMsg{}
		}
		return busEventMsg{event: event}
	}
}

func (m appModel) cmdLogin(username, password string) tea.Cmd {
	ctx := m.ctx
	auth := m.services.AuthService
	return func() tea.Msg {
		user, err := auth.Login(ctx, username, password)
		return loginDoneMsg{user: user, err: err}
	}
}

func (m appModel) cmdLogout() tea.Cmd {
	ctx := m.ctx
	auth := m.services.AuthService
	return func() tea.Msg {
		auth.Logout(ctx)
		return logoutDoneMsg{}
	}
}

// cmdLoadCars fetches the list. background marks refetches the user did not
// ask for; their failures are logged instead of raising the error overlay.
func (m appModel) cmdLoadCars(background bool) tea.Cmd {
	ctx := m.ctx
	cars := m.services.CarsService
	return func() tea.Msg {
		list, err := cars.List(ctx)
		return carsLoadedMsg{cars: list, err: err, background: background}
	}
}

func (m appModel) cmdLoadSuggestions() tea.Cmd {
	ctx := m.ctx
	cars := m.services.CarsService
	return func() tea.Msg {
		brands, err := cars.Brands(ctx)
		if err != nil {
			brands = nil
		}
		fuelTypes, err := cars.FuelTypes(ctx)
		if err != nil {
			fuelTypes = nil
		}
		return suggestionsLoadedMsg{brands: brands, fuelTypes: fuelTypes}
	}
}

// cmdSaveCar persists the record first, then hands staged files to the
// background uploader with the backend-assigned id.
func (m appModel) cmdSaveCar(car models.Car, staged []service.StagedImage) tea.Cmd {
	ctx := m.ctx
	cars := m.services.CarsService
	uploads := m.services.UploadService
	return func() tea.Msg {
		saved, err := cars.Save(ctx, car)
		if err != nil {
			return carSavedMsg{err: err}
		}
		if len(staged) > 0 {
			uploads.Enqueue(ctx, saved.ID, staged)
		}
		return carSavedMsg{car: saved, staged: len(staged)}
	}
}

func (m appModel) cmdDeleteCar(id int64) tea.Cmd {
	ctx := m.ctx
	cars := m.services.CarsService
	return func() tea.Msg {
		err := cars.Delete(ctx, id)
		return carDeletedMsg{carID: id, err: err}
	}
}

func (m appModel) cmdRemoveImage(carID int64, imageURL string) tea.Cmd {
	ctx := m.ctx
	cars := m.services.CarsService
	return func() tea.Msg {
		err := cars.RemoveImage(ctx, carID, imageURL)
		return imageRemovedMsg{err: err}
	}
}

func cmdCopyToClipboard(text string) tea.Cmd {
	return func() tea.Msg {
		if err := clipboard.WriteAll(text); err != nil {
			return clearStatusMsg{}
		}
		return copiedMsg{}
	}
}

func cmdClearStatus() tea.Cmd {
	return tea.Tick(2*time.Second, func(time.Time) tea.Msg {
		return clearStatusMsg{}
	})
}
