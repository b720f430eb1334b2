package eventlog

type Persister interface {
	AppendLog(entry Entry) (err error)
}

type Logger interface {
	Warn(s string)
}
