package httpapi

// profileResponse is the profile service payload for one user.
type profileResponse struct {
	ID    int64  `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

// postResponse is a single post in the posts service payload.
type postResponse struct {
	ID      int64  `json:"id"`
	Title   string `json:"title"`
	Content string `json:"content"`
}

// notificationResponse is a single notification in the notifications service
// payload.
type notificationResponse struct {
	ID      int64  `json:"id"`
	Message string `json:"message"`
	IsRead  bool   `json:"isRead"`
}
