// Package page renders styled paint nodes as an HTML document.
package page

import (
	"strings"

	"github.com/Fiszh/7TVPaintsViewer/internal/paint"
)

// PlaceholderText is shown until a node's style has been applied.
const PlaceholderText = "Paint"

// Node is one presentation element on the page, owned by a single user.
type Node struct {
	UserID          string `json:"user_id"`
	Note            string `json:"note,omitempty"`
	Text            string `json:"text"`
	BackgroundImage string `json:"background_image,omitempty"`
	Filter          string `json:"filter,omitempty"`
	Styled          bool   `json:"styled"`
}

// NewNode returns a node in its initial placeholder state.
func NewNode(userID string) *Node {
	return &Node{UserID: userID, Text: PlaceholderText}
}

// Apply copies a derived style onto the node.
func (n *Node) Apply(s paint.StyleResult) {
	n.Text = s.Label
	n.BackgroundImage = s.BackgroundImage
	n.Filter = s.ShadowFilter
	n.Styled = true
}

// StyleAttr returns the inline CSS for the node, or "" while unstyled.
func (n *Node) StyleAttr() string {
	if !n.Styled {
		return ""
	}

	var b strings.Builder
	b.WriteString("background-image: ")
	b.WriteString(n.BackgroundImage)
	b.WriteString(";")
	if n.Filter != "" {
		b.WriteString(" filter: ")
		b.WriteString(n.Filter)
		b.WriteString(";")
	}
	return b.String()
}
