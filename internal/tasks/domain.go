package tasks

import (
	"errors"
	"fmt"
	"strings"
	"unicode/utf8"
)

// BuildDomainName returns the fully qualified domain name
// for the subdomain, where "@" designates the domain itself.
func BuildDomainName(subdomain, domain string) string {
	if subdomain == "@" {
		return domain
	}
	return subdomain + "." + domain
}

var (
	ErrDomainEmpty            = errors.New("domain is empty")
	ErrDomainTooLong          = errors.New("domain name is too long")
	ErrDomainLabelTooLong     = errors.New("domain label is too long")
	ErrDomainInvalidCharacter = errors.New("domain name has invalid character")
	ErrDomainTLDMissing       = errors.New("domain has missing top level domain")
	ErrSubdomainEmpty         = errors.New("subdomain is empty")
)

const (
	maxDomainLength = 255
	maxLabelLength  = 63
)

// CheckDomain returns an non-nil error if the domain name is not valid.
// https://tools.ietf.org/html/rfc1034#section-3.5
// https://tools.ietf.org/html/rfc1123#section-2.
func CheckDomain(domain string) (err error) {
	switch {
	case domain == "":
		return fmt.Errorf("%w", ErrDomainEmpty)
	case len(domain) > maxDomainLength:
		return fmt.Errorf("%w: %q has a length of %d characters exceeding the maximum of %d",
			ErrDomainTooLong, domain, len(domain), maxDomainLength)
	}

	labelStartIndex, err := checkLabels(domain)
	if err != nil {
		return err
	}

	// top level domain
	switch {
	case labelStartIndex == 0, labelStartIndex == len(domain):
		return fmt.Errorf("%w: %q", ErrDomainTLDMissing, domain)
	case len(domain)-labelStartIndex > maxLabelLength:
		return fmt.Errorf("%w: TLD label in domain %q", ErrDomainLabelTooLong, domain)
	case domain[labelStartIndex] == '-':
		return fmt.Errorf("%w: TLD label starts with '-' in domain %q",
			ErrDomainInvalidCharacter, domain)
	case domain[len(domain)-1] == '-':
		return fmt.Errorf("%w: TLD label ends with '-' in domain %q",
			ErrDomainInvalidCharacter, domain)
	case domain[labelStartIndex] >= '0' && domain[labelStartIndex] <= '9':
		return fmt.Errorf("%w: TLD label begins with a digit in domain %q",
			ErrDomainInvalidCharacter, domain)
	}
	return nil
}

// CheckSubdomain returns an non-nil error if the subdomain is not
// "@" or a sequence of valid labels. The first label can be "*".
func CheckSubdomain(subdomain string) (err error) {
	switch {
	case subdomain == "":
		return fmt.Errorf("%w", ErrSubdomainEmpty)
	case subdomain == "@", subdomain == "*":
		return nil
	case len(subdomain) > maxDomainLength:
		return fmt.Errorf("%w: %q has a length of %d characters exceeding the maximum of %d",
			ErrDomainTooLong, subdomain, len(subdomain), maxDomainLength)
	}

	rest := strings.TrimPrefix(subdomain, "*.")
	labelStartIndex, err := checkLabels(rest)
	if err != nil {
		return err
	}

	lastLabel := rest[labelStartIndex:]
	switch {
	case lastLabel == "":
		return fmt.Errorf("%w: subdomain %q ends with '.'", ErrDomainInvalidCharacter, subdomain)
	case len(lastLabel) > maxLabelLength:
		return fmt.Errorf("%w: for subdomain %q", ErrDomainLabelTooLong, subdomain)
	case lastLabel[0] == '-' || lastLabel[len(lastLabel)-1] == '-':
		return fmt.Errorf("%w: label starts or ends with '-' for subdomain %q",
			ErrDomainInvalidCharacter, subdomain)
	}
	return nil
}

// checkLabels checks every label except the last one and returns
// the index at which the last label starts.
func checkLabels(name string) (lastLabelStartIndex int, err error) {
	labelStartIndex := 0
	for i, character := range name {
		if character == '.' {
			switch {
			case i == labelStartIndex:
				return 0, fmt.Errorf("%w: label starts with '.' for domain %q",
					ErrDomainInvalidCharacter, name)
			case i-labelStartIndex > maxLabelLength:
				return 0, fmt.Errorf("%w: for domain %q", ErrDomainLabelTooLong, name)
			case name[labelStartIndex] == '-':
				return 0, fmt.Errorf("%w: label starts with '-' for domain %q",
					ErrDomainInvalidCharacter, name)
			case name[i-1] == '-':
				return 0, fmt.Errorf("%w: label ends with '-' for domain %q",
					ErrDomainInvalidCharacter, name)
			}
			labelStartIndex = i + 1
			continue
		}

		if (character < 'a' || character > 'z') &&
			(character < '0' || character > '9') &&
			character != '-' && character != '_' &&
			(character < 'A' || character > 'Z') {
			r, _ := utf8.DecodeRuneInString(name[i:])
			if r == utf8.RuneError {
				return 0, fmt.Errorf("%w: invalid rune at offset %d for domain %q",
					ErrDomainInvalidCharacter, i, name)
			}
			return 0, fmt.Errorf("%w: '%c' for domain %q",
				ErrDomainInvalidCharacter, r, name)
		}
	}
	return labelStartIndex, nil
}
