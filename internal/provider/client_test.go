package provider

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func Test_ValidateName(t *testing.T) {
	t.Parallel()

	testCases := map[string]struct {
		name       string
		errWrapped error
		errMessage string
	}{
		"tencentcloud": {name: "tencentcloud"},
		"dnspod_alias": {name: "dnspod"},
		"aliyun_alias": {name: "Aliyun"},
		"cloudflare":   {name: " cloudflare "},
		"huaweicloud":  {name: "huaweicloud"},
		"unknown": {
			name:       "godaddy",
			errWrapped: ErrNameUnknown,
			errMessage: `DNS provider is unknown: "godaddy" must be one of ` +
				"tencentcloud, alidns, cloudflare, huaweicloud",
		},
		"empty": {
			errWrapped: ErrNameUnknown,
			errMessage: `DNS provider is unknown: "" must be one of ` +
				"tencentcloud, alidns, cloudflare, huaweicloud",
		},
	}

	for name, testCase := range testCases {
		testCase := testCase
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			err := ValidateName(testCase.name)

			assert.ErrorIs(t, err, testCase.errWrapped)
			if testCase.errWrapped != nil {
				assert.EqualError(t, err, testCase.errMessage)
			}
		})
	}
}

func Test_newLibdnsClient(t *testing.T) {
	t.Parallel()

	testCases := map[string]struct {
		credentials Credentials
		errWrapped  error
	}{
		"tencentcloud": {
			credentials: Credentials{Provider: "dnspod", SecretID: "id", SecretKey: "key"},
		},
		"alidns": {
			credentials: Credentials{Provider: "alidns", SecretID: "id", SecretKey: "key"},
		},
		"huaweicloud": {
			credentials: Credentials{Provider: "huaweicloud", SecretID: "id", SecretKey: "key"},
		},
		"cloudflare_without_secret_id": {
			credentials: Credentials{Provider: "cloudflare", SecretKey: "token"},
		},
		"secret_key_empty": {
			credentials: Credentials{Provider: "alidns", SecretID: "id"},
			errWrapped:  ErrSecretKeyEmpty,
		},
		"secret_id_empty": {
			credentials: Credentials{Provider: "tencentcloud", SecretKey: "key"},
			errWrapped:  ErrSecretIDEmpty,
		},
		"unknown_provider": {
			credentials: Credentials{Provider: "nope", SecretID: "id", SecretKey: "key"},
			errWrapped:  ErrNameUnknown,
		},
	}

	for name, testCase := range testCases {
		testCase := testCase
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			client, err := newLibdnsClient(testCase.credentials)

			assert.ErrorIs(t, err, testCase.errWrapped)
			if testCase.errWrapped == nil {
				assert.NotNil(t, client)
			}
		})
	}
}
