// Package paint derives CSS styles from 7TV paint cosmetics.
package paint

// Stop is a colour anchor point in a paint gradient.
type Stop struct {
	At    float64 `json:"at"`
	Color int32   `json:"color"`
}

// Shadow is a drop shadow applied on top of a paint.
type Shadow struct {
	XOffset float64 `json:"x_offset"`
	YOffset float64 `json:"y_offset"`
	Radius  float64 `json:"radius"`
	Color   int32   `json:"color"`
}

// Paint is a cosmetic visual style as returned by the cosmetics service.
// Stops are kept in rendering order, which is not necessarily sorted by At.
type Paint struct {
	ID       string   `json:"id"`
	Kind     string   `json:"kind"`
	Name     string   `json:"name"`
	Function string   `json:"function"`
	Color    *int32   `json:"color"`
	Angle    float64  `json:"angle"`
	Shape    string   `json:"shape"`
	ImageURL string   `json:"image_url"`
	Repeat   bool     `json:"repeat"`
	Stops    []Stop   `json:"stops"`
	Shadows  []Shadow `json:"shadows"`
}

// HasImage reports whether the paint is image based.
func (p *Paint) HasImage() bool {
	return p != nil && p.ImageURL != ""
}

// StyleResult is the visual style applied to a presentation node.
type StyleResult struct {
	Label           string `json:"label"`
	BackgroundImage string `json:"background_image"`
	ShadowFilter    string `json:"shadow_filter"`
}
