package cosmetics

import "github.com/Fiszh/7TVPaintsViewer/internal/paint"

// Reference identifies a cosmetic without its full definition.
type Reference struct {
	ID   string `json:"id"`
	Kind string `json:"kind"`
	Name string `json:"name"`
}

// UserCosmetics is a user's currently equipped cosmetics.
type UserCosmetics struct {
	ID          string     `json:"id"`
	Username    string     `json:"username"`
	DisplayName string     `json:"display_name"`
	Paint       *Reference `json:"paint,omitempty"`
	Badge       *Reference `json:"badge,omitempty"`
}

// Badge is returned alongside paints by the cosmetics query.
type Badge struct {
	ID      string `json:"id"`
	Kind    string `json:"kind"`
	Name    string `json:"name"`
	Tooltip string `json:"tooltip"`
	Tag     string `json:"tag"`
}

type userResponse struct {
	Data struct {
		User *struct {
			ID          string `json:"id"`
			Username    string `json:"username"`
			DisplayName string `json:"display_name"`
			Style       *struct {
				Paint *Reference `json:"paint"`
				Badge *Reference `json:"badge"`
			} `json:"style"`
		} `json:"user"`
	} `json:"data"`
	Errors []gqlError `json:"errors"`
}

type cosmeticsResponse struct {
	Data struct {
		Cosmetics *struct {
			Paints []paint.Paint `json:"paints"`
			Badges []Badge       `json:"badges"`
		} `json:"cosmetics"`
	} `json:"data"`
	Errors []gqlError `json:"errors"`
}
