package components

import "github.com/yohamta/donburi"

// MenuItem is one entry of the main menu: an offline arena or the server.
type MenuItem struct {
	Label   string
	Arena   string // Arena to fight in offline
	Online  bool   // Join a server instead
	Address string // Server to join when Online
}

// MenuData stores the current state of the main menu
type MenuData struct {
	Items         []MenuItem
	SelectedIndex int
	Footer        string // Battle record or last connection error
}

// Menu is the component type for main menu state
var Menu = donburi.NewComponentType[MenuData]()
