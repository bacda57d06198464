package domain

// UserProfile represents the public profile of a user.
type UserProfile struct {
	ID    int64
	Name  string
	Email string
}

// Post represents a single post authored by a user.
type Post struct {
	ID      int64
	Title   string
	Content string
}

// NotificationItem represents a single notification delivered to a user.
type NotificationItem struct {
	ID      int64
	Message string
	IsRead  bool
}

// DashboardData is the aggregate of everything the dashboard shows for one
// user. It exists only when all three constituent fetches succeeded; there is
// no partial or degraded instance.
type DashboardData struct {
	Profile       UserProfile
	Posts         []Post
	Notifications []NotificationItem
}

// DashboardMetrics holds counts derived from a DashboardData. Metrics are
// never stored; they are recomputed from the aggregate on demand.
type DashboardMetrics struct {
	PostsCount               int
	UnreadNotificationsCount int
	TotalNotificationsCount  int
}

// Metrics recomputes the derived counts from the current posts and
// notifications. Empty slices yield zero counts; there is no error path.
func (d DashboardData) Metrics() DashboardMetrics {
	unread := 0
	for _, n := range d.Notifications {
		if !n.IsRead {
			unread++
		}
	}

	return DashboardMetrics{
		PostsCount:               len(d.Posts),
		UnreadNotificationsCount: unread,
		TotalNotificationsCount:  len(d.Notifications),
	}
}
