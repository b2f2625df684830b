package views

import (
	"fyne.io/fyne/v2"
)

// setupMenus mirrors the toolbar in the window menu. Fyne appends Quit to
// the first menu on its own.
func (mv *MainView) setupMenus() {
	fileMenu := fyne.NewMenu("File",
		fyne.NewMenuItem("Open File...", func() { invoke(mv.browseHandler) }),
		fyne.NewMenuItem("Convert", func() { invoke(mv.convertHandler) }),
		fyne.NewMenuItemSeparator(),
		fyne.NewMenuItem("Save As...", func() { invoke(mv.saveHandler) }),
	)

	editMenu := fyne.NewMenu("Edit",
		fyne.NewMenuItem("Copy", func() { invoke(mv.copyHandler) }),
		fyne.NewMenuItem("Copy as Data URI", func() { invoke(mv.copyDataURIHandler) }),
	)

	mv.window.SetMainMenu(fyne.NewMainMenu(fileMenu, editMenu))
}

// MenuItem looks up a menu entry by menu and item label.
func (mv *MainView) MenuItem(menu, label string) *fyne.MenuItem {
	mainMenu := mv.window.MainMenu()
	if mainMenu == nil {
		return nil
	}
	for _, m := range mainMenu.Items {
		if m.Label != menu {
			continue
		}
		for _, item := range m.Items {
			if item.Label == label {
				return item
			}
		}
	}
	return nil
}
