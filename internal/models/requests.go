package models

// DeleteRequest carries the password that re-authorizes a deletion
type DeleteRequest struct {
	Password string `json:"password" binding:"required"`
}
