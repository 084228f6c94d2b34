package modes

import "github.com/charmbracelet/bubbles/key"

// KeyMap holds every binding the modes react to. It also feeds the help bar.
type KeyMap struct {
	Up        key.Binding
	Down      key.Binding
	Left      key.Binding
	Right     key.Binding
	Home      key.Binding
	End       key.Binding
	Search    key.Binding
	Select    key.Binding
	Clear     key.Binding
	Blur      key.Binding
	Tab       key.Binding
	Rate      key.Binding
	Watchlist key.Binding
	Favorite  key.Binding
	Close     key.Binding
	BackHome  key.Binding
	Help      key.Binding
	Quit      key.Binding
	ForceQuit key.Binding
}

// Keys is the default key map
var Keys = KeyMap{
	Up:        key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "up")),
	Down:      key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "down")),
	Left:      key.NewBinding(key.WithKeys("left", "h"), key.WithHelp("←/h", "left")),
	Right:     key.NewBinding(key.WithKeys("right", "l"), key.WithHelp("→/l", "right")),
	Home:      key.NewBinding(key.WithKeys("home", "g"), key.WithHelp("g", "first")),
	End:       key.NewBinding(key.WithKeys("end", "G"), key.WithHelp("G", "last")),
	Search:    key.NewBinding(key.WithKeys("/"), key.WithHelp("/", "search")),
	Select:    key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "open")),
	Clear:     key.NewBinding(key.WithKeys("ctrl+u"), key.WithHelp("ctrl+u", "clear")),
	Blur:      key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "leave search")),
	Tab:       key.NewBinding(key.WithKeys("tab"), key.WithHelp("tab", "trending/upcoming")),
	Rate:      key.NewBinding(key.WithKeys("1", "2", "3", "4", "5", "6", "7", "8", "9", "0"), key.WithHelp("1-0", "rate")),
	Watchlist: key.NewBinding(key.WithKeys("w"), key.WithHelp("w", "watchlist")),
	Favorite:  key.NewBinding(key.WithKeys("enter", " "), key.WithHelp("enter", "favourite card")),
	Close:     key.NewBinding(key.WithKeys("esc", "c"), key.WithHelp("esc", "close details")),
	BackHome:  key.NewBinding(key.WithKeys("enter", "esc", "H"), key.WithHelp("enter", "back to home")),
	Help:      key.NewBinding(key.WithKeys("?"), key.WithHelp("?", "help")),
	Quit:      key.NewBinding(key.WithKeys("q"), key.WithHelp("q", "quit")),
	ForceQuit: key.NewBinding(key.WithKeys("ctrl+c")),
}

// ShortHelp returns the bindings shown in the one-line help bar
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Search, k.Select, k.Tab, k.Help, k.Quit}
}

// FullHelp returns the bindings shown in the expanded help
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.Left, k.Right, k.Home, k.End},
		{k.Search, k.Select, k.Clear, k.Blur},
		{k.Rate, k.Watchlist, k.Close},
		{k.Tab, k.Favorite, k.BackHome, k.Help, k.Quit},
	}
}

// rateScore maps a number key to a 1-10 score; "0" means 10
func rateScore(s string) int {
	if s == "0" {
		return 10
	}
	if len(s) == 1 && s[0] >= '1' && s[0] <= '9' {
		return int(s[0] - '0')
	}
	return 0
}
