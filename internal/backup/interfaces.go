package backup

import "io"

// Snapshotter writes a consistent copy of the database.
type Snapshotter interface {
	WriteTo(w io.Writer) (n int64, err error)
}

type Logger interface {
	Info(s string)
	Warn(s string)
	Error(s string)
}
