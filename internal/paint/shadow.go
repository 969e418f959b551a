package paint

import "strings"

// DeriveShadowFilter builds a CSS filter of drop-shadow tokens in input order.
func DeriveShadowFilter(shadows []Shadow) string {
	if len(shadows) == 0 {
		return ""
	}

	tokens := make([]string, len(shadows))
	for i, s := range shadows {
		tokens[i] = "drop-shadow(" + ColorToRGBString(s.Color) + " " +
			formatNumber(s.XOffset) + "px " +
			formatNumber(s.YOffset) + "px " +
			formatNumber(s.Radius) + "px)"
	}
	return strings.Join(tokens, " ")
}
