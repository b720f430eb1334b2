package probe

import (
	"context"
	"net/http"
	"net/http/httptest"
	"net/netip"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func Test_fetchHTTP(t *testing.T) {
	t.Parallel()

	testCases := map[string]struct {
		status     int
		body       string
		ip         netip.Addr
		errWrapped error
		errMessage string
	}{
		"success": {
			status: http.StatusOK,
			body:   "203.0.113.7\n",
			ip:     netip.MustParseAddr("203.0.113.7"),
		},
		"bad_status": {
			status:     http.StatusTooManyRequests,
			body:       "slow down",
			errWrapped: ErrBadHTTPStatus,
			errMessage: "bad HTTP status: 429 Too Many Requests",
		},
		"no_ip": {
			status:     http.StatusOK,
			body:       "rate limited",
			errWrapped: ErrNoIPFound,
			errMessage: "no IP address found: for ipv4",
		},
	}

	for name, testCase := range testCases {
		testCase := testCase
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				assert.Equal(t, "curl/7.64.1", r.Header.Get("User-Agent"))
				assert.Equal(t, "text/plain", r.Header.Get("Accept"))
				w.WriteHeader(testCase.status)
				_, _ = w.Write([]byte(testCase.body))
			}))
			t.Cleanup(server.Close)

			ip, err := fetchHTTP(context.Background(), server.Client(), server.URL, IPv4)

			assert.ErrorIs(t, err, testCase.errWrapped)
			if testCase.errWrapped != nil {
				require.EqualError(t, err, testCase.errMessage)
			}
			assert.Equal(t, testCase.ip, ip)
		})
	}
}
