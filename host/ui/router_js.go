//go:build js

package ui

import (
	"encoding/binary"
	"net/url"
	"strconv"
	"syscall/js"

	"github.com/google/uuid"
)

var (
	window   = js.Global().Get("window")
	location = js.Global().Get("location")
	params   url.Values
)

func init() {
	u, _ := url.Parse(location.Get("href").String())
	params = u.Query()
}

// seedParam returns the seed from the query string. When it is missing a
// new one is generated and written back so the page can be shared.
func seedParam(fallback uint64) uint64 {
	if seed, err := strconv.ParseUint(GetParam("seed"), 10, 64); err == nil {
		return seed
	}
	uid := uuid.New()
	seed := binary.BigEndian.Uint64(uid[8:])
	SetParam("seed", strconv.FormatUint(seed, 10))
	return seed
}

func BaseURL() string {
	return location.Get("origin").String() + location.Get("pathname").String()
}

// devicePixelRatio is the number of device pixels per CSS pixel.
func devicePixelRatio() float64 {
	if ratio := window.Get("devicePixelRatio"); ratio.Truthy() {
		return ratio.Float()
	}
	return 1.0
}

func URLOpen(u string) {
	window.Call("open", u)
}

func GetParam(key string) string {
	return params.Get(key)
}

func SetParam(key, value string) {
	params.Set(key, value)
	window.Get("history").Call("replaceState", js.Null(), "", "?"+params.Encode())
}
