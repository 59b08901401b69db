package asciiwire

import _ "embed"

//go:embed guide.md
var guide string

// Guide returns the wireframe grammar guide written for language models.
func Guide() string {
	return guide
}
