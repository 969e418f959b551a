package paint

import "strings"

const (
	// NoPaintLabel is shown for users without a renderable paint.
	NoPaintLabel = "No Paint"

	// DefaultBackground is the background used when no paint applies.
	DefaultBackground = "linear-gradient(45deg, white, white)"
)

// Default returns the style used when there is nothing to render.
func Default() StyleResult {
	return StyleResult{
		Label:           NoPaintLabel,
		BackgroundImage: DefaultBackground,
	}
}

// DeriveStyle turns a paint into a concrete style. Branches are evaluated in
// order: no paint, image paint, gradient paint, then the default fallback.
// A paint with neither an image nor stops falls back to Default even though
// its name is known.
func DeriveStyle(p *Paint) StyleResult {
	switch {
	case p == nil:
		return Default()
	case p.HasImage():
		return StyleResult{
			Label:           p.Name,
			BackgroundImage: ImageReference(p.ImageURL),
			ShadowFilter:    DeriveShadowFilter(p.Shadows),
		}
	case len(p.Stops) > 0:
		return StyleResult{
			Label:           p.Name,
			BackgroundImage: LinearGradient(p.Angle, p.Stops),
			ShadowFilter:    DeriveShadowFilter(p.Shadows),
		}
	default:
		return Default()
	}
}

// cssURLEscaper keeps an image URL inside its quoted url() token.
var cssURLEscaper = strings.NewReplacer(
	`\`, `%5C`,
	`'`, `%27`,
	`"`, `%22`,
	"\n", `%0A`,
	"\r", `%0D`,
)

// ImageReference wraps an image URL as a CSS url() value.
func ImageReference(url string) string {
	return "url('" + cssURLEscaper.Replace(url) + "')"
}
