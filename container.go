package vega

import "sync"

// Container is the drawing target that an Embedder renders into.
// The host owns the container and decides how its content is shown,
// the ChartView and Embedder only replace the content on render.
//
// Methods are safe for concurrent use because overlapping render
// calls on the same ChartView race on the shared container,
// with the last completing embed winning visually.
type Container struct {
	mu      sync.Mutex
	classes []string
	content []byte
}

func NewContainer() *Container {
	return new(Container)
}

// AddClass adds a styling class label to the container
// if it is not already present.
func (c *Container) AddClass(class string) {
	c.mu.Lock()
	defer c.mu.Unlock()

	for _, existing := range c.classes {
		if existing == class {
			return
		}
	}
	c.classes = append(c.classes, class)
}

func (c *Container) HasClass(class string) bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	for _, existing := range c.classes {
		if existing == class {
			return true
		}
	}
	return false
}

// Classes returns a copy of the container's styling class labels.
func (c *Container) Classes() []string {
	c.mu.Lock()
	defer c.mu.Unlock()

	return append([]string(nil), c.classes...)
}

// SetContent replaces the visible content of the container.
func (c *Container) SetContent(content []byte) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.content = content
}

// Content returns the visible content of the container.
func (c *Container) Content() []byte {
	c.mu.Lock()
	defer c.mu.Unlock()

	return c.content
}
