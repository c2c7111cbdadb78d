package tui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	up          key.Binding
	down        key.Binding
	left        key.Binding
	right       key.Binding
	enter       key.Binding
	esc         key.Binding
	tab         key.Binding
	backtab     key.Binding
	quit        key.Binding
	logout      key.Binding
	newCar      key.Binding
	refresh     key.Binding
	search      key.Binding
	sort        key.Binding
	edit        key.Binding
	delete      key.Binding
	removeImage key.Binding
	zoom        key.Binding
	copy        key.Binding
	copyAll     key.Binding
	stageImage  key.Binding
	imageNext   key.Binding
	imagePrev   key.Binding
	imageDrop   key.Binding
	galleryDrop key.Binding
	yes         key.Binding
	no          key.Binding
}

var keys = keyMap{
	up:          key.NewBinding(key.WithKeys("up", "k")),
	down:        key.NewBinding(key.WithKeys("down", "j")),
	left:        key.NewBinding(key.WithKeys("left", "h")),
	right:       key.NewBinding(key.WithKeys("right", "l")),
	enter:       key.NewBinding(key.WithKeys("enter")),
	esc:         key.NewBinding(key.WithKeys("esc")),
	tab:         key.NewBinding(key.WithKeys("tab")),
	backtab:     key.NewBinding(key.WithKeys("shift+tab")),
	quit:        key.NewBinding(key.WithKeys("q", "ctrl+c")),
	logout:      key.NewBinding(key.WithKeys("L")),
	newCar:      key.NewBinding(key.WithKeys("n")),
	refresh:     key.NewBinding(key.WithKeys("r")),
	search:      key.NewBinding(key.WithKeys("/")),
	sort:        key.NewBinding(key.WithKeys("o")),
	edit:        key.NewBinding(key.WithKeys("e")),
	delete:      key.NewBinding(key.WithKeys("d")),
	removeImage: key.NewBinding(key.WithKeys("x")),
	zoom:        key.NewBinding(key.WithKeys("z")),
	copy:        key.NewBinding(key.WithKeys("c")),
	copyAll:     key.NewBinding(key.WithKeys("u")),
	stageImage:  key.NewBinding(key.WithKeys("ctrl+o")),
	imageNext:   key.NewBinding(key.WithKeys("ctrl+n")),
	imagePrev:   key.NewBinding(key.WithKeys("ctrl+p")),
	imageDrop:   key.NewBinding(key.WithKeys("ctrl+d")),
	galleryDrop: key.NewBinding(key.WithKeys("ctrl+x")),
	yes:         key.NewBinding(key.WithKeys("y")),
	no:          key.NewBinding(key.WithKeys("n")),
}
