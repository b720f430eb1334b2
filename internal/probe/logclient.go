package probe

import (
	"bytes"
	"io"
	"net/http"
	"strings"
)

func makeLogClient(client *http.Client, logger DebugLogger) (newClient *http.Client) {
	originalTransport := client.Transport
	if originalTransport == nil {
		originalTransport = http.DefaultTransport
	}

	return &http.Client{
		Timeout: client.Timeout,
		Transport: &loggingRoundTripper{
			proxied: originalTransport,
			logger:  logger,
		},
	}
}

type loggingRoundTripper struct {
	proxied http.RoundTripper
	logger  DebugLogger
}

func (lrt *loggingRoundTripper) RoundTrip(request *http.Request) (
	response *http.Response, err error) {
	lrt.logger.Debug(requestToString(request))

	response, err = lrt.proxied.RoundTrip(request)
	if err != nil {
		lrt.logger.Debug(request.Method + " " + request.URL.String() + " failed: " + err.Error())
		return response, err
	}

	lrt.logger.Debug(responseToString(request, response))

	return response, nil
}

func requestToString(request *http.Request) (s string) {
	return request.Method + " " + request.URL.String()
}

func responseToString(request *http.Request, response *http.Response) (s string) {
	s = request.URL.String() + " | " + response.Status

	if response.Body != nil {
		newBody, bodyString := readAndResetBody(response.Body)
		response.Body = newBody
		s += " | body: " + bodyString
	}

	return s
}

func readAndResetBody(body io.ReadCloser) (
	newBody io.ReadCloser, bodyString string) {
	b, err := io.ReadAll(body)
	_ = body.Close()
	newBody = io.NopCloser(bytes.NewBuffer(b))
	if err != nil {
		return newBody, "error reading body: " + err.Error()
	}
	return newBody, toSingleLine(string(b))
}

func toSingleLine(s string) string {
	s = strings.ReplaceAll(s, "\r", "")
	s = strings.ReplaceAll(s, "\n", " ")
	return strings.TrimSpace(s)
}
