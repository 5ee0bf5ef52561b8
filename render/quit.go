package render

import "github.com/gdamore/tcell/v2"

// WatchQuit polls screen events until the screen is finalized and calls quit on Esc, q or Ctrl-C
// The view takes no other input
func WatchQuit(screen tcell.Screen, quit func()) {
	for {
		ev := screen.PollEvent()
		if ev == nil {
			return
		}
		if key, ok := ev.(*tcell.EventKey); ok && isQuitKey(key) {
			quit()
		}
	}
}

func isQuitKey(ev *tcell.EventKey) bool {
	switch ev.Key() {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return true
	case tcell.KeyRune:
		return ev.Rune() == 'q'
	}
	return false
}
