package probe

type Store interface {
	LoadProbes() (probes []Probe, err error)
	PutProbe(probe Probe) (err error)
	DeleteProbe(url string) (err error)
}

type DebugLogger interface {
	Debug(s string)
}

type Logger interface {
	DebugLogger
	Info(s string)
	Warn(s string)
	Error(s string)
}
