package leveldata

import (
	"fmt"
	"image"

	"github.com/lafriks/go-tiled/render"
)

// RenderBackdrop draws every tile layer flagged with the "render" property
// into one image, top row first as in the map. It returns nil when no layer
// is flagged. Collision layers are drawn by the game itself since they change
// during play.
func (l *Level) RenderBackdrop() (image.Image, error) {
	if l.source == nil {
		return nil, nil
	}
	var renderer *render.Renderer
	for i, layer := range l.source.Layers {
		if !layer.Properties.GetBool("render") {
			continue
		}
		if renderer == nil {
			var err error
			renderer, err = render.NewRendererWithFileSystem(l.source, l.fsys)
			if err != nil {
				return nil, fmt.Errorf("%s: create renderer: %w", l.Name, err)
			}
		}
		if err := renderer.RenderLayer(i); err != nil {
			return nil, fmt.Errorf("%s: render layer %q: %w", l.Name, layer.Name, err)
		}
	}
	if renderer == nil {
		return nil, nil
	}
	return renderer.Result, nil
}
