package simplot

import (
	"fmt"
	"sync"

	"github.com/gogpu/gg/text"
	"golang.org/x/image/font/gofont/goregular"
)

// fontSource parses the embedded Go Regular font on first use.
var fontSource = sync.OnceValues(func() (*text.FontSource, error) {
	return text.NewFontSource(goregular.TTF)
})

// fontFace returns a Go Regular face at size points.
func fontFace(size float64) (text.Face, error) {
	src, err := fontSource()
	if err != nil {
		return nil, fmt.Errorf("simplot: load font: %w", err)
	}
	return src.Face(size), nil
}
