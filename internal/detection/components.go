package detection

import "image"

// Component is a connected region of foreground pixels in a binary mask.
type Component struct {
	// Points are the foreground pixel coordinates belonging to the region.
	Points []image.Point

	// Bounds is the bounding box (Min inclusive, Max exclusive).
	Bounds image.Rectangle
}

// findComponents groups the foreground pixels of a 0/255 mask into
// 8-connected components.
func findComponents(mask *image.Gray) []Component {
	b := mask.Bounds()
	w, h := b.Dx(), b.Dy()

	visited := make([]bool, w*h)
	components := make([]Component, 0)

	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			if mask.Pix[y*mask.Stride+x] == 0 || visited[y*w+x] {
				continue
			}
			components = append(components, traceComponent(mask, visited, x, y, w, h))
		}
	}

	return components
}

// traceComponent flood-fills one component starting at (startX, startY).
// Stack-based rather than recursive so large regions cannot overflow the
// goroutine stack.
func traceComponent(mask *image.Gray, visited []bool, startX, startY, w, h int) Component {
	points := make([]image.Point, 0)
	minX, minY := startX, startY
	maxX, maxY := startX, startY

	stack := []image.Point{{X: startX, Y: startY}}

	for len(stack) > 0 {
		p := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		if p.X < 0 || p.X >= w || p.Y < 0 || p.Y >= h {
			continue
		}
		if visited[p.Y*w+p.X] || mask.Pix[p.Y*mask.Stride+p.X] == 0 {
			continue
		}

		visited[p.Y*w+p.X] = true
		points = append(points, p)

		if p.X < minX {
			minX = p.X
		}
		if p.X > maxX {
			maxX = p.X
		}
		if p.Y < minY {
			minY = p.Y
		}
		if p.Y > maxY {
			maxY = p.Y
		}

		// 8-connected neighbors
		for dy := -1; dy <= 1; dy++ {
			for dx := -1; dx <= 1; dx++ {
				if dx == 0 && dy == 0 {
					continue
				}
				stack = append(stack, image.Point{X: p.X + dx, Y: p.Y + dy})
			}
		}
	}

	return Component{
		Points: points,
		Bounds: image.Rect(minX, minY, maxX+1, maxY+1),
	}
}
