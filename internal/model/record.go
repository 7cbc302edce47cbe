package model

// Record constrains the per-user logged resource kinds. Each one is owned
// through a plain string user id, not a database reference.
type Record interface {
	Activity | Nutrition | Sleep
}

// RecencyColumn is the column each record kind is listed by, newest first.
func RecencyColumn[T Record]() string {
	var zero T
	switch any(zero).(type) {
	case Sleep:
		return "start_time"
	default:
		return "date"
	}
}
