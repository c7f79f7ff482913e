package utils

import "net/url"

// PageURL maps a logical page name to its route path, e.g.
// PageURL("Messages", nil) -> "/Messages". Query parameters are encoded in
// key order so generated URLs are deterministic. The router owns the
// interpretation; this is the only routing knowledge the client holds.
func PageURL(name string, params map[string]string) string {
	values := url.Values{}
	for key, value := range params {
		values.Set(key, value)
	}
	if encoded := values.Encode(); encoded != "" {
		return "/" + name + "?" + encoded
	}
	return "/" + name
}
