package leagues

// League is a named competition with sport and season metadata.
type League struct {
	ID        int    `json:"id"`
	Name      string `json:"name"`
	Logo      string `json:"logo"`
	Sport     string `json:"sport"`
	TeamCount int    `json:"teamCount"`
	Season    string `json:"season"`
}

// ListResponse is the payload returned by /leagues and /leagues/featured.
type ListResponse struct {
	Leagues []League `json:"leagues"`
}
