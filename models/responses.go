package models

// DeleteResponse confirms a successful delete.
type DeleteResponse struct {
	Message string `json:"message"`
}
