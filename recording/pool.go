package recording

import (
	"github.com/gogpu/gg"
	"github.com/gogpu/gg/text"
)

// slots is an append-only table addressed by index.
type slots[T any] []T

func (s *slots[T]) put(v T) uint32 {
	*s = append(*s, v)
	// #nosec G115 -- bounded by memory
	return uint32(len(*s) - 1)
}

func (s slots[T]) at(i uint32) (T, bool) {
	if int(i) >= len(s) {
		var zero T
		return zero, false
	}
	return s[i], true
}

// ResourcePool holds the paths, brushes, images and fonts referenced by
// recorded commands. Paths are cloned when added, so a renderer may keep
// reusing its scratch path.
//
// ResourcePool is not safe for concurrent use.
type ResourcePool struct {
	paths   slots[*gg.Path]
	brushes slots[gg.Brush]
	images  slots[*gg.ImageBuf]
	fonts   slots[text.Face]
}

// NewResourcePool creates an empty pool.
func NewResourcePool() *ResourcePool {
	return &ResourcePool{
		paths:   make(slots[*gg.Path], 0, 64),
		brushes: make(slots[gg.Brush], 0, 16),
	}
}

// AddPath stores a snapshot of path.
func (p *ResourcePool) AddPath(path *gg.Path) PathRef {
	if path != nil {
		path = path.Clone()
	}
	return PathRef(p.paths.put(path))
}

// GetPath returns the path for ref, or nil.
func (p *ResourcePool) GetPath(ref PathRef) *gg.Path {
	path, _ := p.paths.at(uint32(ref))
	return path
}

// PathCount returns the number of stored paths.
func (p *ResourcePool) PathCount() int { return len(p.paths) }

// AddBrush stores brush. Consecutive identical solid brushes share one
// slot, since a series is usually drawn with a single paint.
func (p *ResourcePool) AddBrush(brush gg.Brush) BrushRef {
	if n := len(p.brushes); n > 0 && sameSolid(p.brushes[n-1], brush) {
		// #nosec G115 -- bounded by memory
		return BrushRef(uint32(n - 1))
	}
	return BrushRef(p.brushes.put(brush))
}

func sameSolid(a, b gg.Brush) bool {
	sa, ok := a.(gg.SolidBrush)
	if !ok {
		return false
	}
	sb, ok := b.(gg.SolidBrush)
	return ok && sa == sb
}

// GetBrush returns the brush for ref, or nil.
func (p *ResourcePool) GetBrush(ref BrushRef) gg.Brush {
	b, _ := p.brushes.at(uint32(ref))
	return b
}

// BrushCount returns the number of stored brushes.
func (p *ResourcePool) BrushCount() int { return len(p.brushes) }

// AddImage stores img.
func (p *ResourcePool) AddImage(img *gg.ImageBuf) ImageRef {
	return ImageRef(p.images.put(img))
}

// GetImage returns the image for ref, or nil.
func (p *ResourcePool) GetImage(ref ImageRef) *gg.ImageBuf {
	img, _ := p.images.at(uint32(ref))
	return img
}

// ImageCount returns the number of stored images.
func (p *ResourcePool) ImageCount() int { return len(p.images) }

// AddFont stores face once and returns its reference. A nil face yields
// InvalidRef.
func (p *ResourcePool) AddFont(face text.Face) FontRef {
	if face == nil {
		return FontRef(InvalidRef)
	}
	for i, f := range p.fonts {
		if f == face {
			// #nosec G115 -- bounded by memory
			return FontRef(uint32(i))
		}
	}
	return FontRef(p.fonts.put(face))
}

// GetFont returns the face for ref, or nil.
func (p *ResourcePool) GetFont(ref FontRef) text.Face {
	if !ref.IsValid() {
		return nil
	}
	f, _ := p.fonts.at(uint32(ref))
	return f
}

// FontCount returns the number of stored faces.
func (p *ResourcePool) FontCount() int { return len(p.fonts) }

// Clear drops every stored resource.
func (p *ResourcePool) Clear() {
	p.paths = p.paths[:0]
	p.brushes = p.brushes[:0]
	p.images = p.images[:0]
	p.fonts = p.fonts[:0]
}
