package shell

import (
	"strings"

	"github.com/kballard/go-shellquote"

	"github.com/temirov/execf/internal/resolver"
)

const (
	commentMarkerConstant           = "#"
	escapedCommentMarkerConstant    = "\\#"
	windowsQuoteConstant            = "\""
	windowsBackslashConstant        = '\\'
	windowsUnsafeCharactersConstant = "\"%!"
	windowsReplacementConstant      = ' '
)

// ArgumentQuoter turns one argument into exactly one shell word.
type ArgumentQuoter interface {
	Quote(argument string) string
}

// NewArgumentQuoter selects the quoting discipline of the family's shell.
func NewArgumentQuoter(family resolver.OperatingSystemFamily) ArgumentQuoter {
	if family == resolver.OperatingSystemFamilyWindows {
		return WindowsArgumentQuoter{}
	}
	return POSIXArgumentQuoter{}
}

// POSIXArgumentQuoter quotes for /bin/sh.
type POSIXArgumentQuoter struct{}

// Quote implements ArgumentQuoter.
func (POSIXArgumentQuoter) Quote(argument string) string {
	quoted := shellquote.Join(argument)
	// shellquote leaves '#' alone, but a word starting with it begins a comment.
	if strings.HasPrefix(quoted, commentMarkerConstant) {
		return escapedCommentMarkerConstant + strings.TrimPrefix(quoted, commentMarkerConstant)
	}
	return quoted
}

// WindowsArgumentQuoter quotes for cmd.exe. Characters cmd.exe expands inside
// double quotes are replaced with spaces, and trailing backslashes are doubled
// so they cannot escape the closing quote.
type WindowsArgumentQuoter struct{}

// Quote implements ArgumentQuoter.
func (WindowsArgumentQuoter) Quote(argument string) string {
	sanitized := strings.Map(func(character rune) rune {
		if strings.ContainsRune(windowsUnsafeCharactersConstant, character) {
			return windowsReplacementConstant
		}
		return character
	}, argument)

	trailingBackslashes := 0
	for index := len(sanitized) - 1; index >= 0 && sanitized[index] == windowsBackslashConstant; index-- {
		trailingBackslashes++
	}
	sanitized += strings.Repeat(string(windowsBackslashConstant), trailingBackslashes)

	return windowsQuoteConstant + sanitized + windowsQuoteConstant
}
