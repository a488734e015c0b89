package dto

type ErrorResponse struct {
	Message string `json:"message"`
}

type ListResp[T any] struct {
	Items      []T     `json:"items"`
	NextCursor *string `json:"next_cursor"`
	HasMore    bool    `json:"has_more"`
}
