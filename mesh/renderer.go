package mesh

import (
	"io"

	"github.com/soypat/geometry/ms3"
)

// Renderer is the streaming triangle source contract: repeated calls fill
// dst with the next batch of triangles until io.EOF. Mesher implements it.
type Renderer interface {
	ReadTriangles(dst []ms3.Triangle, userData any) (n int, err error)
}

// RenderAll drains r entirely and returns every triangle it produced. It
// does not treat io.EOF as an error, matching io.ReadAll's convention.
func RenderAll(r Renderer, userData any) ([]ms3.Triangle, error) {
	const startSize = 4096
	var err error
	var n int
	result := make([]ms3.Triangle, 0, startSize)
	buf := make([]ms3.Triangle, startSize)
	for {
		n, err = r.ReadTriangles(buf, userData)
		if err == nil || err == io.EOF {
			result = append(result, buf[:n]...)
		}
		if err != nil {
			break
		}
	}
	if err == io.EOF {
		return result, nil
	}
	return result, err
}
