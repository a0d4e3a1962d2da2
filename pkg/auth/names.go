// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package auth

import (
	"fmt"
	"regexp"
	"strings"
	"time"
)

var whitespace = regexp.MustCompile(`\s+`)

// nextNameAndSlug derives a workspace name from a prefix, the clock and a nonce
func nextNameAndSlug(prefix string, now time.Time, nonce string) (string, string) {
	name := fmt.Sprintf("%s %d", prefix, now.UnixMilli())
	if nonce != "" {
		name += "-" + nonce
	}
	slug := strings.ToLower(whitespace.ReplaceAllString(name, "-"))

	return name, slug
}

// splitName treats the first word as the first name and the rest as the last name
func splitName(name string) (string, string) {
	if name == "" {
		return "", ""
	}

	first, rest, _ := strings.Cut(name, " ")
	return first, rest
}

// validDomain checks the email against a comma separated list of allowed domains
func validDomain(email, restricted string) bool {
	if email == "" {
		return false
	}

	domain := email[strings.LastIndex(email, "@")+1:]
	if restricted == "" {
		return true
	}
	if domain == "" {
		return false
	}

	for _, d := range strings.Split(restricted, ",") {
		if d = strings.TrimSpace(d); d != "" && d == domain {
			return true
		}
	}

	return false
}

func fullName(first, last string) string {
	if last == "" {
		return first
	}
	return first + " " + last
}
