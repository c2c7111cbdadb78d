package tui

type errorOverlayModel struct {
	message string
}

func newErrorOverlayModel(message string) errorOverlayModel {
	return errorOverlayModel{message: message}
}

func (m errorOverlayModel) View() string {
	return overlayBoxStyle.Render(errorStyle.Render(m.message) + "\n\n" + helpStyle.Render("enter / esc dismiss"))
}
