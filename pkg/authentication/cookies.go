// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package authentication

import (
	"net/http"
	"time"
)

const (
	CookieName = "tj_auth_token"

	cookieMaxAge = 2 * 365 * 24 * time.Hour
)

// CookieManager writes the session cookie, embed mode relaxes SameSite for iframes
type CookieManager struct {
	embed bool
}

func (c *CookieManager) SetSessionCookie(w http.ResponseWriter, token string) {
	cookie := c.baseCookie()
	cookie.Value = token
	cookie.MaxAge = int(cookieMaxAge.Seconds())
	cookie.Expires = time.Now().Add(cookieMaxAge)

	http.SetCookie(w, cookie)
}

func (c *CookieManager) ClearSessionCookie(w http.ResponseWriter) {
	cookie := c.baseCookie()
	cookie.MaxAge = -1
	cookie.Expires = time.Unix(0, 0)

	http.SetCookie(w, cookie)
}

func (c *CookieManager) baseCookie() *http.Cookie {
	cookie := &http.Cookie{
		Name:     CookieName,
		Path:     "/",
		HttpOnly: true,
		SameSite: http.SameSiteStrictMode,
	}

	if c.embed {
		cookie.SameSite = http.SameSiteNoneMode
		cookie.Secure = true
	}

	return cookie
}

func NewCookieManager(embed bool) *CookieManager {
	c := new(CookieManager)
	c.embed = embed

	return c
}
