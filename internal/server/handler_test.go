package server

import (
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"net/netip"
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	ddnserrors "github.com/qdm12/ddns-scheduler/internal/errors"
	"github.com/qdm12/ddns-scheduler/internal/eventlog"
	"github.com/qdm12/ddns-scheduler/internal/models"
	"github.com/qdm12/ddns-scheduler/internal/probe"
	"github.com/qdm12/ddns-scheduler/internal/provider"
	"github.com/qdm12/ddns-scheduler/internal/server/mock_server"
	"github.com/qdm12/ddns-scheduler/internal/tasks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type noopLogger struct{}

func (noopLogger) Debug(string) {}
func (noopLogger) Info(string)  {}
func (noopLogger) Warn(string)  {}
func (noopLogger) Error(string) {}

type testMocks struct {
	scheduler *mock_server.MockScheduler
	pool      *mock_server.MockPool
	eventLog  *mock_server.MockEventLog
}

func serve(t *testing.T, handler http.Handler, method, path, body string) (
	status int, responseBody string) {
	t.Helper()
	var bodyReader io.Reader
	if body != "" {
		bodyReader = strings.NewReader(body)
	}
	request := httptest.NewRequest(method, path, bodyReader)
	w := httptest.NewRecorder()
	handler.ServeHTTP(w, request)
	response := w.Result()
	defer response.Body.Close()
	b, err := io.ReadAll(response.Body)
	require.NoError(t, err)
	return response.StatusCode, string(b)
}

func newTestHandler(ctrl *gomock.Controller, rootURL string) (
	handler http.Handler, mocks testMocks) {
	mocks = testMocks{
		scheduler: mock_server.NewMockScheduler(ctrl),
		pool:      mock_server.NewMockPool(ctrl),
		eventLog:  mock_server.NewMockEventLog(ctrl),
	}
	buildInfo := models.BuildInformation{
		Version: "latest",
		Commit:  "1234567",
		Date:    "2024-01-02",
	}
	handler = newHandler(rootURL, mocks.scheduler, mocks.pool,
		mocks.eventLog, buildInfo, noopLogger{})
	return handler, mocks
}

func exampleTask() tasks.Task {
	return tasks.Task{
		ID:            "abcd1234",
		Provider:      "tencentcloud",
		SecretID:      "AKID",
		SecretKey:     "very-secret",
		Domain:        "example.com",
		Subdomain:     "www",
		FullDomain:    "www.example.com",
		IPServiceURL:  "https://ipinfo.io/ip",
		IPServiceName: "ipinfo.io",
		Interval:      60,
		Status:        tasks.StatusStopped,
		CreatedAt:     time.Date(2024, 1, 2, 3, 4, 5, 0, time.UTC),
	}
}

func Test_errorToStatus(t *testing.T) {
	t.Parallel()

	testCases := map[string]struct {
		err    error
		status int
	}{
		"validation": {
			err:    fmt.Errorf("%w: domain: is empty", ddnserrors.ErrValidation),
			status: http.StatusBadRequest,
		},
		"not_found": {
			err:    fmt.Errorf("%w: task x", ddnserrors.ErrNotFound),
			status: http.StatusNotFound,
		},
		"busy": {
			err:    fmt.Errorf("%w: task x", ddnserrors.ErrBusy),
			status: http.StatusConflict,
		},
		"probe_unavailable": {
			err:    fmt.Errorf("%w: ipinfo.io", ddnserrors.ErrProbeUnavailable),
			status: http.StatusServiceUnavailable,
		},
		"provider": {
			err:    fmt.Errorf("setting record: %w: quota", ddnserrors.ErrProvider),
			status: http.StatusBadGateway,
		},
		"other": {
			err:    errors.New("disk full"),
			status: http.StatusInternalServerError,
		},
	}

	for name, testCase := range testCases {
		testCase := testCase
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			status := errorToStatus(testCase.err)
			assert.Equal(t, testCase.status, status)
		})
	}
}

func Test_handler_tasks(t *testing.T) {
	t.Parallel()

	testCases := map[string]struct {
		method       string
		path         string
		body         string
		setup        func(mocks testMocks)
		status       int
		responseBody string
		contains     []string
	}{
		"list_all": {
			method: http.MethodGet,
			path:   "/api/v1/tasks",
			setup: func(mocks testMocks) {
				mocks.scheduler.EXPECT().ListTasks("").Return(nil)
			},
			status:       http.StatusOK,
			responseBody: "[]\n",
		},
		"list_by_account": {
			method: http.MethodGet,
			path:   "/api/v1/tasks?secretId=AKID",
			setup: func(mocks testMocks) {
				mocks.scheduler.EXPECT().ListTasks("AKID").
					Return([]tasks.Task{exampleTask()})
			},
			status: http.StatusOK,
			contains: []string{
				`"id":"abcd1234"`,
				`"secretId":"AKID"`,
				`"lastUpdateTime":null`,
			},
		},
		"create": {
			method: http.MethodPost,
			path:   "/api/v1/tasks",
			body: `{"provider":"tencentcloud","secretId":"AKID","secretKey":"very-secret",` +
				`"domain":"example.com","subdomain":"www","ipServiceUrl":"https://ipinfo.io/ip",` +
				`"ipServiceName":"ipinfo.io","interval":60}`,
			setup: func(mocks testMocks) {
				mocks.scheduler.EXPECT().CreateTask(tasks.Settings{
					Provider:      "tencentcloud",
					SecretID:      "AKID",
					SecretKey:     "very-secret",
					Domain:        "example.com",
					Subdomain:     "www",
					IPServiceURL:  "https://ipinfo.io/ip",
					IPServiceName: "ipinfo.io",
					Interval:      60,
				}).Return(exampleTask(), nil)
			},
			status:   http.StatusCreated,
			contains: []string{`"status":"stopped"`, `"createdAt":"2024-01-02T03:04:05Z"`},
		},
		"create_unknown_field": {
			method:       http.MethodPost,
			path:         "/api/v1/tasks",
			body:         `{"provider":"tencentcloud","owner":"me"}`,
			status:       http.StatusBadRequest,
			responseBody: `{"error":"invalid parameter: decoding JSON body: json: unknown field \"owner\""}` + "\n",
		},
		"create_validation_error": {
			method: http.MethodPost,
			path:   "/api/v1/tasks",
			body:   `{"interval":0}`,
			setup: func(mocks testMocks) {
				mocks.scheduler.EXPECT().CreateTask(tasks.Settings{}).
					Return(tasks.Task{}, fmt.Errorf("%w: provider name is empty", ddnserrors.ErrValidation))
			},
			status:       http.StatusBadRequest,
			responseBody: `{"error":"invalid parameter: provider name is empty"}` + "\n",
		},
		"get_not_found": {
			method: http.MethodGet,
			path:   "/api/v1/tasks/abc",
			setup: func(mocks testMocks) {
				mocks.scheduler.EXPECT().GetTask("abc").
					Return(tasks.Task{}, fmt.Errorf("%w: task abc", ddnserrors.ErrNotFound))
			},
			status:       http.StatusNotFound,
			responseBody: `{"error":"not found: task abc"}` + "\n",
		},
		"get_trailing_slash": {
			method: http.MethodGet,
			path:   "/api/v1/tasks/abcd1234/",
			setup: func(mocks testMocks) {
				mocks.scheduler.EXPECT().GetTask("abcd1234").Return(exampleTask(), nil)
			},
			status:   http.StatusOK,
			contains: []string{`"fullDomain":"www.example.com"`},
		},
		"edit": {
			method: http.MethodPut,
			path:   "/api/v1/tasks/abcd1234",
			body:   `{"interval":120,"ipServiceUrl":"https://v4.ident.me","ipServiceName":"ident.me"}`,
			setup: func(mocks testMocks) {
				task := exampleTask()
				task.Interval = 120
				mocks.scheduler.EXPECT().EditTask(gomock.Any(), "abcd1234", 120,
					"https://v4.ident.me", "ident.me").Return(task, nil)
			},
			status:   http.StatusOK,
			contains: []string{`"interval":120`},
		},
		"delete": {
			method: http.MethodDelete,
			path:   "/api/v1/tasks/abcd1234",
			setup: func(mocks testMocks) {
				mocks.scheduler.EXPECT().DeleteTask(gomock.Any(), "abcd1234").Return(nil)
			},
			status: http.StatusNoContent,
		},
		"start": {
			method: http.MethodPost,
			path:   "/api/v1/tasks/abcd1234/start",
			setup: func(mocks testMocks) {
				task := exampleTask()
				task.Enabled = true
				task.Status = tasks.StatusRunning
				mocks.scheduler.EXPECT().StartTask(gomock.Any(), "abcd1234").Return(task, nil)
			},
			status:   http.StatusOK,
			contains: []string{`"enabled":true`, `"status":"running"`},
		},
		"stop": {
			method: http.MethodPost,
			path:   "/api/v1/tasks/abcd1234/stop",
			setup: func(mocks testMocks) {
				mocks.scheduler.EXPECT().StopTask(gomock.Any(), "abcd1234").Return(exampleTask(), nil)
			},
			status:   http.StatusOK,
			contains: []string{`"enabled":false`},
		},
		"execute_success": {
			method: http.MethodPost,
			path:   "/api/v1/tasks/abcd1234/execute",
			setup: func(mocks testMocks) {
				task := exampleTask()
				task.LastIP = "203.0.113.7"
				task.LastUpdateTime = time.Date(2024, 2, 3, 4, 5, 6, 0, time.UTC)
				mocks.scheduler.EXPECT().ExecuteTask(gomock.Any(), "abcd1234").Return(task, nil)
			},
			status: http.StatusOK,
			contains: []string{
				`"lastIp":"203.0.113.7"`,
				`"lastUpdateTime":"2024-02-03T04:05:06Z"`,
			},
		},
		"execute_busy": {
			method: http.MethodPost,
			path:   "/api/v1/tasks/abcd1234/execute",
			setup: func(mocks testMocks) {
				mocks.scheduler.EXPECT().ExecuteTask(gomock.Any(), "abcd1234").
					Return(tasks.Task{}, fmt.Errorf("%w: task abcd1234", ddnserrors.ErrBusy))
			},
			status:       http.StatusConflict,
			responseBody: `{"error":"task cycle already in progress: task abcd1234"}` + "\n",
		},
		"execute_probe_failure": {
			method: http.MethodPost,
			path:   "/api/v1/tasks/abcd1234/execute",
			setup: func(mocks testMocks) {
				task := exampleTask()
				task.Status = tasks.StatusError
				task.LastError = "IP probe unavailable: ipinfo.io"
				mocks.scheduler.EXPECT().ExecuteTask(gomock.Any(), "abcd1234").
					Return(task, fmt.Errorf("%w: ipinfo.io", ddnserrors.ErrProbeUnavailable))
			},
			status: http.StatusServiceUnavailable,
			contains: []string{
				`"error":"IP probe unavailable: ipinfo.io"`,
				`"task":{"id":"abcd1234"`,
				`"status":"error"`,
			},
		},
		"method_not_allowed": {
			method: http.MethodPatch,
			path:   "/api/v1/tasks/abcd1234",
			status: http.StatusMethodNotAllowed,
		},
	}

	for name, testCase := range testCases {
		testCase := testCase
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			ctrl := gomock.NewController(t)
			handler, mocks := newTestHandler(ctrl, "/")
			if testCase.setup != nil {
				testCase.setup(mocks)
			}

			status, body := serve(t, handler, testCase.method, testCase.path, testCase.body)

			assert.Equal(t, testCase.status, status)
			assert.NotContains(t, body, "very-secret")
			assert.NotContains(t, body, "secretKey")
			if testCase.responseBody != "" {
				assert.Equal(t, testCase.responseBody, body)
			}
			for _, expected := range testCase.contains {
				assert.Contains(t, body, expected)
			}
		})
	}
}

func Test_handler_probes(t *testing.T) {
	t.Parallel()

	customURL := "https://ip.example.com/"
	result := probe.Result{
		Name:   "ipinfo.io",
		URL:    "https://ipinfo.io/ip",
		Type:   probe.TypeBuiltin,
		IPType: probe.IPv4,
		Status: probe.StatusSuccess,
		IP:     "203.0.113.7",
		Time:   time.Date(2024, 1, 2, 3, 4, 5, 0, time.UTC),
	}

	testCases := map[string]struct {
		method       string
		path         string
		body         string
		setup        func(mocks testMocks)
		status       int
		responseBody string
	}{
		"snapshot_empty": {
			method: http.MethodGet,
			path:   "/api/v1/probes",
			setup: func(mocks testMocks) {
				mocks.pool.EXPECT().Snapshot().Return(nil)
			},
			status:       http.StatusOK,
			responseBody: "[]\n",
		},
		"refresh": {
			method: http.MethodPost,
			path:   "/api/v1/probes/refresh",
			setup: func(mocks testMocks) {
				mocks.pool.EXPECT().RefreshAll(gomock.Any()).Return([]probe.Result{result})
			},
			status: http.StatusOK,
			responseBody: `[{"name":"ipinfo.io","url":"https://ipinfo.io/ip","type":"builtin",` +
				`"ipType":"ipv4","status":"success","ip":"203.0.113.7","time":"2024-01-02T03:04:05Z"}]` + "\n",
		},
		"add": {
			method: http.MethodPost,
			path:   "/api/v1/probes",
			body:   `{"url":"` + customURL + `"}`,
			setup: func(mocks testMocks) {
				mocks.pool.EXPECT().AddCustom(customURL).Return(probe.Probe{
					Name:   "custom",
					URL:    customURL,
					Type:   probe.TypeCustom,
					IPType: probe.IPv4,
				}, nil)
			},
			status: http.StatusCreated,
			responseBody: `{"name":"custom","url":"https://ip.example.com/",` +
				`"type":"custom","ipType":"ipv4"}` + "\n",
		},
		"add_duplicate": {
			method: http.MethodPost,
			path:   "/api/v1/probes",
			body:   `{"url":"https://ipinfo.io/ip"}`,
			setup: func(mocks testMocks) {
				mocks.pool.EXPECT().AddCustom("https://ipinfo.io/ip").
					Return(probe.Probe{}, fmt.Errorf("%w: %w: https://ipinfo.io/ip",
						ddnserrors.ErrValidation, probe.ErrDuplicate))
			},
			status:       http.StatusBadRequest,
			responseBody: `{"error":"invalid parameter: probe already exists: https://ipinfo.io/ip"}` + "\n",
		},
		"add_local": {
			method: http.MethodPost,
			path:   "/api/v1/probes/local",
			body:   `{"interface":"eth0","ipType":"ipv6"}`,
			setup: func(mocks testMocks) {
				mocks.pool.EXPECT().AddLocal("eth0", probe.IPv6).Return(probe.Probe{
					Name:   "eth0 (local)",
					URL:    "local:///eth0?ipType=ipv6",
					Type:   probe.TypeLocal,
					IPType: probe.IPv6,
				}, nil)
			},
			status: http.StatusCreated,
			responseBody: `{"name":"eth0 (local)","url":"local:///eth0?ipType=ipv6",` +
				`"type":"local","ipType":"ipv6"}` + "\n",
		},
		"add_local_bad_ip_type": {
			method: http.MethodPost,
			path:   "/api/v1/probes/local",
			body:   `{"interface":"eth0","ipType":"ipv5"}`,
			setup: func(mocks testMocks) {
				mocks.pool.EXPECT().AddLocal("eth0", probe.IPType("ipv5")).
					Return(probe.Probe{}, fmt.Errorf("%w: %w: \"ipv5\"",
						ddnserrors.ErrValidation, probe.ErrIPTypeUnknown))
			},
			status:       http.StatusBadRequest,
			responseBody: `{"error":"invalid parameter: IP type is unknown: \"ipv5\""}` + "\n",
		},
		"list_interfaces": {
			method: http.MethodGet,
			path:   "/api/v1/interfaces",
			setup: func(mocks testMocks) {
				mocks.pool.EXPECT().Interfaces().Return([]probe.Interface{{
					Name: "eth0",
					IPv4: []netip.Addr{netip.MustParseAddr("192.168.1.2")},
					IPv6: []netip.Addr{},
				}}, nil)
			},
			status:       http.StatusOK,
			responseBody: `{"interfaces":[{"name":"eth0","ipv4":["192.168.1.2"],"ipv6":[]}]}` + "\n",
		},
		"list_interfaces_none": {
			method: http.MethodGet,
			path:   "/api/v1/interfaces",
			setup: func(mocks testMocks) {
				mocks.pool.EXPECT().Interfaces().Return(nil, nil)
			},
			status:       http.StatusOK,
			responseBody: `{"interfaces":[]}` + "\n",
		},
		"remove": {
			method: http.MethodDelete,
			path:   "/api/v1/probes?url=" + url.QueryEscape(customURL),
			setup: func(mocks testMocks) {
				mocks.pool.EXPECT().RemoveCustom(customURL).Return(nil)
			},
			status: http.StatusNoContent,
		},
		"remove_missing_url": {
			method:       http.MethodDelete,
			path:         "/api/v1/probes",
			status:       http.StatusBadRequest,
			responseBody: `{"error":"invalid parameter: url query parameter is empty"}` + "\n",
		},
		"remove_unknown": {
			method: http.MethodDelete,
			path:   "/api/v1/probes?url=" + url.QueryEscape(customURL),
			setup: func(mocks testMocks) {
				mocks.pool.EXPECT().RemoveCustom(customURL).
					Return(fmt.Errorf("%w: probe %s", ddnserrors.ErrNotFound, customURL))
			},
			status:       http.StatusNotFound,
			responseBody: `{"error":"not found: probe https://ip.example.com/"}` + "\n",
		},
	}

	for name, testCase := range testCases {
		testCase := testCase
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			ctrl := gomock.NewController(t)
			handler, mocks := newTestHandler(ctrl, "/")
			if testCase.setup != nil {
				testCase.setup(mocks)
			}

			status, body := serve(t, handler, testCase.method, testCase.path, testCase.body)

			assert.Equal(t, testCase.status, status)
			assert.Equal(t, testCase.responseBody, body)
		})
	}
}

func Test_handler_records(t *testing.T) {
	t.Parallel()

	credentials := provider.Credentials{
		Provider:  "cloudflare",
		SecretID:  "",
		SecretKey: "token",
	}

	testCases := map[string]struct {
		path         string
		body         string
		setup        func(mocks testMocks)
		status       int
		responseBody string
	}{
		"list_domains": {
			path: "/api/v1/domains",
			body: `{"provider":"cloudflare","secretKey":"token"}`,
			setup: func(mocks testMocks) {
				mocks.scheduler.EXPECT().ListDomains(gomock.Any(), credentials).
					Return([]string{"example.com", "example.org"}, nil)
			},
			status:       http.StatusOK,
			responseBody: `{"domains":["example.com","example.org"]}` + "\n",
		},
		"list_domains_provider_error": {
			path: "/api/v1/domains",
			body: `{"provider":"cloudflare","secretKey":"token"}`,
			setup: func(mocks testMocks) {
				mocks.scheduler.EXPECT().ListDomains(gomock.Any(), credentials).
					Return(nil, fmt.Errorf("%w: listing zones: unauthorized", ddnserrors.ErrProvider))
			},
			status:       http.StatusBadGateway,
			responseBody: `{"error":"DNS provider error: listing zones: unauthorized"}` + "\n",
		},
		"update_record": {
			path: "/api/v1/records",
			body: `{"provider":"cloudflare","secretKey":"token",` +
				`"domain":"example.com","subdomain":"@","ip":"203.0.113.7"}`,
			setup: func(mocks testMocks) {
				mocks.scheduler.EXPECT().UpdateRecord(gomock.Any(), credentials,
					"example.com", "@", "203.0.113.7").Return(nil)
			},
			status: http.StatusNoContent,
		},
		"update_record_malformed_body": {
			path:         "/api/v1/records",
			body:         `{"provider":`,
			status:       http.StatusBadRequest,
			responseBody: `{"error":"invalid parameter: decoding JSON body: unexpected EOF"}` + "\n",
		},
	}

	for name, testCase := range testCases {
		testCase := testCase
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			ctrl := gomock.NewController(t)
			handler, mocks := newTestHandler(ctrl, "/")
			if testCase.setup != nil {
				testCase.setup(mocks)
			}

			status, body := serve(t, handler, http.MethodPost, testCase.path, testCase.body)

			assert.Equal(t, testCase.status, status)
			assert.Equal(t, testCase.responseBody, body)
		})
	}
}

func Test_handler_logs(t *testing.T) {
	t.Parallel()

	entry := eventlog.Entry{
		Index:   2,
		Time:    time.Date(2024, 1, 2, 3, 4, 5, 0, time.UTC),
		Type:    eventlog.TypeSuccess,
		TaskID:  "abcd1234",
		Message: "www.example.com updated to 203.0.113.7",
	}

	testCases := map[string]struct {
		path         string
		setup        func(mocks testMocks)
		status       int
		responseBody string
	}{
		"no_since": {
			path: "/api/v1/logs",
			setup: func(mocks testMocks) {
				mocks.eventLog.EXPECT().Since(0).Return(nil, 0)
			},
			status:       http.StatusOK,
			responseBody: `{"logs":[],"index":0}` + "\n",
		},
		"since": {
			path: "/api/v1/logs?since=2",
			setup: func(mocks testMocks) {
				mocks.eventLog.EXPECT().Since(2).Return([]eventlog.Entry{entry}, 3)
			},
			status: http.StatusOK,
			responseBody: `{"logs":[{"index":2,"time":"2024-01-02T03:04:05Z","type":"success",` +
				`"taskId":"abcd1234","message":"www.example.com updated to 203.0.113.7"}],"index":3}` + "\n",
		},
		"bad_since": {
			path:   "/api/v1/logs?since=abc",
			status: http.StatusBadRequest,
			responseBody: `{"error":"invalid parameter: since query parameter: ` +
				`strconv.Atoi: parsing \"abc\": invalid syntax"}` + "\n",
		},
	}

	for name, testCase := range testCases {
		testCase := testCase
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			ctrl := gomock.NewController(t)
			handler, mocks := newTestHandler(ctrl, "/")
			if testCase.setup != nil {
				testCase.setup(mocks)
			}

			status, body := serve(t, handler, http.MethodGet, testCase.path, "")

			assert.Equal(t, testCase.status, status)
			assert.Equal(t, testCase.responseBody, body)
		})
	}
}

func Test_handler_rootURL(t *testing.T) {
	t.Parallel()

	const expectedVersion = `{"version":"latest","commit":"1234567",` +
		`"buildDate":"2024-01-02","fullVersion":"latest-1234567"}` + "\n"

	testCases := map[string]struct {
		rootURL      string
		path         string
		status       int
		responseBody string
	}{
		"default_root": {
			rootURL:      "/",
			path:         "/api/v1/version",
			status:       http.StatusOK,
			responseBody: expectedVersion,
		},
		"prefixed_root": {
			rootURL:      "/ddns/",
			path:         "/ddns/api/v1/version",
			status:       http.StatusOK,
			responseBody: expectedVersion,
		},
		"prefixed_root_without_prefix": {
			rootURL:      "/ddns",
			path:         "/api/v1/version",
			status:       http.StatusNotFound,
			responseBody: `{"error":"Not Found"}` + "\n",
		},
	}

	for name, testCase := range testCases {
		testCase := testCase
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			ctrl := gomock.NewController(t)
			handler, _ := newTestHandler(ctrl, testCase.rootURL)

			status, body := serve(t, handler, http.MethodGet, testCase.path, "")

			assert.Equal(t, testCase.status, status)
			assert.Equal(t, testCase.responseBody, body)
		})
	}
}
