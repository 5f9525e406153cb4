package chart

import (
	"log"
	"time"

	"git.sr.ht/~whereswaldon/energy-viewer/backend"
)

// Selection is the state of the two chart filters. An empty State means no
// state is highlighted.
type Selection struct {
	Type  string
	State string
}

// Controller applies filter changes to a scene. It owns the selection and
// the option lists offered by the two selectors.
type Controller struct {
	data  *backend.Dataset
	scene *Scene
	sel   Selection

	typeOptions  []string
	stateOptions []string
}

// NewController performs the initial render of defaultType. The state
// options are taken from the first consumption type in the dataset and are
// never regenerated.
func NewController(data *backend.Dataset, scene *Scene, defaultType string) *Controller {
	c := &Controller{
		data:        data,
		scene:       scene,
		sel:         Selection{Type: defaultType},
		typeOptions: data.TypeKeys(),
	}
	if len(data.Types) > 0 {
		c.stateOptions = data.Types[0].StateKeys()
	}
	scene.SetDomainMax(data.MaxValue())
	group, ok := data.Type(defaultType)
	if !ok {
		log.Printf("default consumption type %q not found in data", defaultType)
	}
	scene.Render(group, c.sel)
	return c
}

func (c *Controller) Scene() *Scene {
	return c.scene
}

func (c *Controller) Selection() Selection {
	return c.sel
}

// TypeOptions returns the consumption types offered by the type selector.
func (c *Controller) TypeOptions() []string {
	return c.typeOptions
}

// StateOptions returns the states offered by the state selector.
func (c *Controller) StateOptions() []string {
	return c.stateOptions
}

// ActiveGroup returns the group of the selected consumption type.
func (c *Controller) ActiveGroup() (*backend.TypeGroup, bool) {
	return c.data.Type(c.sel.Type)
}

// SelectType switches the chart to the consumption type key, animating the
// lines and the vertical axis. Unknown keys are ignored and reported false.
func (c *Controller) SelectType(key string, now time.Time) bool {
	group, ok := c.data.Type(key)
	if !ok {
		return false
	}
	c.sel.Type = key
	c.scene.Update(group, c.sel, now)
	return true
}

// SelectState highlights the line of state key. It only restyles lines.
func (c *Controller) SelectState(key string) {
	c.sel.State = key
	c.scene.Highlight(c.sel)
}
