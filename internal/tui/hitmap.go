package tui

// Rect is a screen area in cells. Width and height are exclusive.
type Rect struct {
	X, Y, W, H int
}

// Contains reports whether (x, y) lies inside r
func (r Rect) Contains(x, y int) bool {
	return x >= r.X && x < r.X+r.W && y >= r.Y && y < r.Y+r.H
}

// Region is a clickable area recorded while rendering
type Region struct {
	ID   string
	Rect Rect
	Data any
}

// HitMap resolves screen coordinates to the regions drawn there.
// Regions added later sit on top of earlier ones.
type HitMap struct {
	regions []Region
}

// NewHitMap creates an empty hit map
func NewHitMap() *HitMap {
	return &HitMap{}
}

// AddRect records a region
func (h *HitMap) AddRect(id string, x, y, w, h2 int, data any) {
	h.regions = append(h.regions, Region{ID: id, Rect: Rect{X: x, Y: y, W: w, H: h2}, Data: data})
}

// Test returns the topmost region at (x, y), nil for none
func (h *HitMap) Test(x, y int) *Region {
	for i := len(h.regions) - 1; i >= 0; i-- {
		if h.regions[i].Rect.Contains(x, y) {
			return &h.regions[i]
		}
	}
	return nil
}

// Find returns the region with id, nil for none
func (h *HitMap) Find(id string) *Region {
	for i := range h.regions {
		if h.regions[i].ID == id {
			return &h.regions[i]
		}
	}
	return nil
}

// Clear drops every region
func (h *HitMap) Clear() {
	h.regions = h.regions[:0]
}

// Regions returns the recorded regions, bottom first
func (h *HitMap) Regions() []Region {
	return h.regions
}
