package renderer

import (
	"github.com/unrolled/render"
)

// New builds the JSON renderer shared by every API handler.
func New() *render.Render {
	return render.New(render.Options{
		IndentJSON: false,
		Charset:    "UTF-8",
	})
}
