package ports

import "time"

// Clock supplies the current instant in UTC.
type Clock interface {
	Now() time.Time
}
