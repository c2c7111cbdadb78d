package tui

import "fmt"

// galleryModel is a pure presentational state machine over an ordered image
// list: a current index that wraps modulo length, plus an optional zoomed
// image selection independent of the index. It renders nothing when the list
// is empty and hides navigation under two images; deciding what a delete
// request means is the parent's job.
type galleryModel struct {
	images []string
	idx    int
	zoomed string
}

func newGalleryModel(images []string) galleryModel {
	return galleryModel{images: images}
}

// withImages swaps the image list in place, clamping the cursor and
// dropping the zoom when the zoomed image is gone.
func (g galleryModel) withImages(images []string) galleryModel {
	g.images = images
	if g.idx >= len(images) {
		g.idx = len(images) - 1
	}
	if g.idx < 0 {
		g.idx = 0
	}
	if g.zoomed != "" {
		found := false
		for _, url := range images {
			if url == g.zoomed {
				found = true
				break
			}
		}
		if !found {
			g.zoomed = ""
		}
	}
	return g
}

func (g galleryModel) empty() bool {
	return len(g.images) == 0
}

// showNav reports whether prev/next controls make sense.
func (g galleryModel) showNav() bool {
	return len(g.images) > 1
}

func (g galleryModel) current() (string, bool) {
	if g.empty() || g.idx < 0 || g.idx >= len(g.images) {
		return "", false
	}
	return g.images[g.idx], true
}

func (g galleryModel) next() galleryModel {
	if g.showNav() {
		g.idx = (g.idx + 1) % len(g.images)
	}
	return g
}

func (g galleryModel) prev() galleryModel {
	if g.showNav() {
		g.idx = (g.idx - 1 + len(g.images)) % len(g.images)
	}
	return g
}

// selectAt jumps straight to the image at index i, mirroring a thumbnail
// click. Out-of-range indices are ignored.
func (g galleryModel) selectAt(i int) galleryModel {
	if i >= 0 && i < len(g.images) {
		g.idx = i
	}
	return g
}

func (g galleryModel) toggleZoom() galleryModel {
	if g.zoomed != "" {
		g.zoomed = ""
		return g
	}
	if url, ok := g.current(); ok {
		g.zoomed = url
	}
	return g
}

func (g galleryModel) closeZoom() galleryModel {
	g.zoomed = ""
	return g
}

func (g galleryModel) View() string {
	if g.empty() {
		return ""
	}

	out := fmt.Sprintf("Image %d/%d: %s\n", g.idx+1, len(g.images), g.images[g.idx])
	if g.showNav() {
		thumbs := ""
		for i := range g.images {
			if i == g.idx {
				thumbs += "[*]"
			} else {
				thumbs += "[ ]"
			}
		}
		out += thumbs + "\n"
	}

	if g.zoomed != "" {
		out += "\n" + overlayBoxStyle.Render("Full size\n\n"+g.zoomed+"\n\nz / esc close") + "\n"
	}

	return out
}
