//go:build js

package main

import (
	"net/url"
	"syscall/js"
)

var (
	document = js.Global().Get("document")
	window   = js.Global().Get("window")
)

// query mirrors the page's query string. The seed is kept there so the
// address bar always reproduces the current sky.
var query = pageQuery()

func pageQuery() url.Values {
	u, err := url.Parse(js.Global().Get("location").Get("href").String())
	if err != nil {
		return url.Values{}
	}
	return u.Query()
}

func GetParam(key string) string {
	return query.Get(key)
}

// SetParam updates the query string in place without reloading the page.
func SetParam(key, value string) {
	query.Set(key, value)
	window.Get("history").Call("replaceState", js.Null(), "", "?"+query.Encode())
}

// importModule loads an ES module through the window.import shim of
// index.html, since dynamic import is syntax and cannot be called from Go.
// Exactly one of onLoad and onError runs.
func importModule(specifier string, onLoad func(module js.Value), onError func(err error)) {
	var resolved, rejected js.Func
	release := func() {
		resolved.Release()
		rejected.Release()
	}
	resolved = js.FuncOf(func(this js.Value, args []js.Value) any {
		defer release()
		onLoad(args[0])
		return nil
	})
	rejected = js.FuncOf(func(this js.Value, args []js.Value) any {
		defer release()
		onError(js.Error{Value: args[0]})
		return nil
	})
	js.Global().Call("import", specifier).Call("then", resolved, rejected)
}
