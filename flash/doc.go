// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package flash carries one-shot notices across a redirect.

A handler that redirects after a write calls Set; the next page that renders
calls Pop, which returns the message and expires the cookie:

	flash.Set(w, cfg.SessionSecret, models.FlashSuccess, "Event added successfully!")
	http.Redirect(w, r, "/", http.StatusFound)

# Cookie Format

	base64url(json{category,text}) "." base64url(HMAC-SHA256(payload, secret))

The signature is checked with hmac.Equal. Cookies with a bad signature or
payload are discarded silently.
*/
package flash
