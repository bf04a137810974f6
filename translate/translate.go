// Package translate formats user-visible messages for the user's locale.
package translate

import (
	"io"
	"log"

	"github.com/jeandeaual/go-locale"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

var printer *message.Printer

func init() {
	locales, err := locale.GetLocales()
	if err != nil {
		log.Printf("as8: locale: %v", err)
	}

	printer = newPrinter(locales...)
}

// newPrinter selects a printer for the best match of the given locales,
// falling back to en-US.
func newPrinter(locales ...string) *message.Printer {
	if len(locales) == 0 {
		locales = []string{language.AmericanEnglish.String()}
	}

	return message.NewPrinter(message.MatchLanguage(locales...))
}

// From an en-US Sprintf() format, translate to string.
func From(key message.Reference, args ...any) string {
	return printer.Sprintf(key, args...)
}

// Fprintf writes a translated en-US Printf() format to w.
func Fprintf(w io.Writer, key message.Reference, args ...any) (n int, err error) {
	return printer.Fprintf(w, key, args...)
}
