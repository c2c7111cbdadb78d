package tui

type confirmModel struct {
	prompt string
}

func newConfirmModel(prompt string) confirmModel {
	return confirmModel{prompt: prompt}
}

func (m confirmModel) View() string {
	return overlayBoxStyle.Render(m.prompt + "\n\n" + helpStyle.Render("y confirm  n / esc cancel"))
}
