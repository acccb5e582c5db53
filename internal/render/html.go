package render

import (
	_ "embed"

	"github.com/a-h/templ"
)

//go:embed assets/quiz.css
var stylesheet string

// stylesheetTag inlines the embedded stylesheet. Bank text never flows
// through it; every bank string is written by quiz.templ expressions, which
// escape on output.
func stylesheetTag() templ.Component {
	return templ.Raw("<style>" + stylesheet + "</style>")
}
