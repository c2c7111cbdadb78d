package tui

import (
	"github.com/charmbracelet/bubbles/textinput"
)

type loginModel struct {
	inputs     []textinput.Model
	focus      int
	submitting bool
	errMsg     string
}

func newLoginModel() loginModel {
	inputs := make([]textinput.Model, 2)
	for i := range inputs {
		inputs[i] = textinput.New()
		inputs[i].Width = 30
	}
	inputs[0].Placeholder = "username"
	inputs[1].Placeholder = "password"
	inputs[1].EchoMode = textinput.EchoPassword
	inputs[1].EchoCharacter = '*'
	inputs[0].Focus()

	return loginModel{inputs: inputs}
}

func (m loginModel) View() string {
	out := titleStyle.Render("Dealer Desk — Sign in") + "\n\n"
	out += "Username: [" + m.inputs[0].View() + "]\n"
	out += "Password: [" + m.inputs[1].View() + "]\n"

	if m.errMsg != "" {
		out += "\n" + errorStyle.Render(m.errMsg) + "\n"
	}
	if m.submitting {
		out += "\nSigning in...\n"
	}

	out += "\n" + helpStyle.Render("enter sign in  esc browse without signing in  q quit")
	return out
}
