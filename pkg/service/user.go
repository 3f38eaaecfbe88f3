package service

// User is the caller of a request, identified by the x-user-id header.
type User struct {
	ID string `json:"id"`
}
