package cosmetics

// DefaultEndpoint is the public 7TV GraphQL endpoint.
const DefaultEndpoint = "https://7tv.io/v3/gql"

const userCosmeticsQuery = `query GetUserCurrentCosmetics($id: ObjectID!) {
	user(id: $id) {
		id
		username
		display_name
		style {
			paint { id kind name }
			badge { id kind name }
		}
	}
}`

const cosmeticsQuery = `query GetCosmetics($list: [ObjectID!]) {
	cosmetics(list: $list) {
		paints {
			id
			kind
			name
			function
			color
			angle
			shape
			image_url
			repeat
			stops { at color }
			shadows { x_offset y_offset radius color }
		}
		badges {
			id
			kind
			name
			tooltip
			tag
		}
	}
}`

// request is a GraphQL request document.
type request struct {
	OperationName string         `json:"operationName,omitempty"`
	Query         string         `json:"query"`
	Variables     map[string]any `json:"variables,omitempty"`
}

// gqlError is a single entry of a GraphQL errors array.
type gqlError struct {
	Message string `json:"message"`
}
