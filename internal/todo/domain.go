package todo

// Todo is a task bound to exactly one owning user.
type Todo struct {
	ID     int64
	Task   string
	UserID int64
}
