package provider

type Logger interface {
	Debug(s string)
}
