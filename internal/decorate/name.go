package decorate

import "strings"

// QuoteName wraps name in double quotes when it contains a space.
func QuoteName(name string, quote bool) string {
	if quote && strings.Contains(name, " ") {
		return `"` + name + `"`
	}
	return name
}

// Hyperlink wraps text in an OSC 8 link to the absolute path target.
func Hyperlink(target, text string) string {
	return "\x1b]8;;file://" + target + "\x1b\\" + text + "\x1b]8;;\x1b\\"
}
