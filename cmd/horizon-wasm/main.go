//go:build js && wasm

// Command horizon-wasm installs the event-horizon effect on the page that
// loads it and exposes a global eventHorizon object:
//
//	eventHorizon.start()
//	eventHorizon.stop()
//	eventHorizon.setEnabled(false)
//	eventHorizon.isEnabled()
package main

import (
	"log/slog"
	"os"
	"syscall/js"

	"github.com/gogpu/horizon"
	"github.com/gogpu/horizon/dom"
	"github.com/gogpu/horizon/dom/jsdom"
)

func main() {
	horizon.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelWarn})))

	win := jsdom.NewWindow()
	if !horizon.SupportsFilters(win.UserAgent()) {
		horizon.Logger().Warn("horizon: SVG displacement filters are not supported by this browser")
		return
	}

	c := horizon.New(jsdom.NewDocument(), win)
	start := func() any {
		if err := c.Start(); err != nil {
			horizon.Logger().Error("horizon: start failed", "err", err)
			return err.Error()
		}
		return nil
	}

	js.Global().Set("eventHorizon", js.ValueOf(map[string]any{
		"start": js.FuncOf(func(js.Value, []js.Value) any { return start() }),
		"stop": js.FuncOf(func(js.Value, []js.Value) any {
			c.Stop()
			return nil
		}),
		"setEnabled": js.FuncOf(func(_ js.Value, args []js.Value) any {
			c.SetEnabled(len(args) > 0 && args[0].Truthy())
			return nil
		}),
		"isEnabled": js.FuncOf(func(js.Value, []js.Value) any {
			return c.IsEnabled()
		}),
	}))

	if js.Global().Get("document").Get("readyState").String() == "loading" {
		var remove func()
		remove = win.AddEventListener("DOMContentLoaded", func(dom.Event) {
			remove()
			start()
		})
	} else {
		start()
	}

	select {}
}
