package utils

import (
	"net/url"
	"strconv"
)

// QueryInt reads an integer query parameter, falling back to def when
// the key is absent or not a number. Handlers treat bad filter values
// as "no filter" rather than a client error.
func QueryInt(q url.Values, key string, def int) int {
	n, err := strconv.Atoi(q.Get(key))
	if err != nil {
		return def
	}
	return n
}
