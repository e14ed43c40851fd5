package teams

// Team is a club that appears as home or away side in games.
type Team struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
	Logo string `json:"logo"`
}

// ListResponse is the payload returned by /teams.
type ListResponse struct {
	Teams []Team `json:"teams"`
}
