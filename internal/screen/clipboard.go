package screen

import "github.com/atotto/clipboard"

// writeClipboard is swapped out in tests.
var writeClipboard = clipboard.WriteAll

// clipboardText picks what the copy shortcut copies: the open info window's
// text first, else the newest tooltip.
func clipboardText(info string, infoOpen bool, last string, hasLast bool) (string, bool) {
	if infoOpen && info != "" {
		return info, true
	}
	if hasLast {
		return last, true
	}
	return "", false
}
