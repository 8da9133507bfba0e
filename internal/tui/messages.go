package tui

type unlockDoneMsg struct {
	password string
	vault    map[string]any
	err      error
}

type copiedMsg struct {
	err error
}

type clearStatusMsg struct{}
