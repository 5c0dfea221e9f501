//go:build js && wasm

package main

import (
	"log/slog"
	"syscall/js"

	"github.com/ShuoLyu0907/IDEA9103-Group-Somwrita-D/internal/asset"
	"github.com/ShuoLyu0907/IDEA9103-Group-Somwrita-D/internal/document"
	"github.com/ShuoLyu0907/IDEA9103-Group-Somwrita-D/internal/engine"
	"github.com/ShuoLyu0907/IDEA9103-Group-Somwrita-D/internal/logging"
	"github.com/ShuoLyu0907/IDEA9103-Group-Somwrita-D/internal/typeid"
)

var (
	eng     *engine.Engine
	surface *jsSurface
	canvas  js.Value

	// Kept alive for the lifetime of the page
	frameFunc  js.Func
	resizeFunc js.Func
)

func main() {
	logging.Init(logging.Options{Level: "info", Format: "text"})

	eng = engine.NewEngine(document.AppleTree())

	// Create the engine API object
	appleTree := js.Global().Get("Object").New()

	// --- Commands (frontend → engine) ---
	appleTree.Set("start", js.FuncOf(start))
	appleTree.Set("resize", js.FuncOf(resize))
	appleTree.Set("loadScene", js.FuncOf(loadScene))

	// --- Queries (frontend ← engine) ---
	appleTree.Set("render", js.FuncOf(render))
	appleTree.Set("getScene", js.FuncOf(getScene))
	appleTree.Set("viewport", js.FuncOf(viewport))

	// Register on global scope
	js.Global().Set("appleTree", appleTree)

	// Signal that WASM is ready
	js.Global().Set("appleTreeWasmReady", js.ValueOf(true))

	// Keep Go runtime alive
	select {}
}

// --- Command Handlers ---

// start(canvasId, imageURL) binds the canvas, begins loading the background
// and runs the draw loop. Frames use the fallback fill until the image loads.
func start(this js.Value, args []js.Value) interface{} {
	if len(args) < 1 {
		return js.ValueOf(map[string]interface{}{"error": "missing canvas id"})
	}

	doc := js.Global().Get("document")
	canvas = doc.Call("getElementById", args[0].String())
	if canvas.IsNull() || canvas.IsUndefined() {
		return js.ValueOf(map[string]interface{}{"error": "canvas not found"})
	}
	surface = newJSSurface(canvas.Call("getContext", "2d"))

	if len(args) > 1 && args[1].Type() == js.TypeString && args[1].String() != "" {
		loadBackground(args[1].String())
	}

	fitWindow()
	resizeFunc = js.FuncOf(func(this js.Value, args []js.Value) interface{} {
		fitWindow()
		return nil
	})
	js.Global().Call("addEventListener", "resize", resizeFunc)

	frameFunc = js.FuncOf(func(this js.Value, args []js.Value) interface{} {
		draw()
		js.Global().Call("requestAnimationFrame", frameFunc)
		return nil
	})
	js.Global().Call("requestAnimationFrame", frameFunc)

	return js.ValueOf(map[string]interface{}{"ok": true})
}

func loadBackground(url string) {
	el := js.Global().Get("Image").New()

	var onload, onerror js.Func
	release := func() {
		onload.Release()
		onerror.Release()
	}
	onload = js.FuncOf(func(this js.Value, args []js.Value) interface{} {
		defer release()
		img := &asset.Image{
			ID:     typeid.NewAssetID(),
			URL:    url,
			Width:  el.Get("naturalWidth").Int(),
			Height: el.Get("naturalHeight").Int(),
		}
		surface.images[url] = el
		eng.SetBackground(img)
		slog.Info("background loaded", "url", url, "asset_id", img.ID, "width", img.Width, "height", img.Height)
		return nil
	})
	onerror = js.FuncOf(func(this js.Value, args []js.Value) interface{} {
		defer release()
		slog.Debug("background unavailable, using fallback", "url", url)
		return nil
	})

	el.Set("onload", onload)
	el.Set("onerror", onerror)
	el.Set("src", url)
}

// fitWindow sizes the canvas to the window and refits the viewport.
func fitWindow() {
	w := js.Global().Get("innerWidth").Int()
	h := js.Global().Get("innerHeight").Int()
	canvas.Set("width", w)
	canvas.Set("height", h)
	eng.Resize(float64(w), float64(h))
}

func draw() {
	if surface == nil {
		return
	}
	if err := eng.RenderTo(surface); err != nil {
		slog.Debug("skip frame", "error", err)
	}
}

func resize(this js.Value, args []js.Value) interface{} {
	if len(args) < 2 {
		return nil
	}
	w, h := args[0].Int(), args[1].Int()
	if canvas.Truthy() {
		canvas.Set("width", w)
		canvas.Set("height", h)
	}
	eng.Resize(float64(w), float64(h))
	return nil
}

func loadScene(this js.Value, args []js.Value) interface{} {
	if len(args) < 1 {
		return js.ValueOf(map[string]interface{}{"error": "missing scene document"})
	}

	if err := eng.LoadScene([]byte(args[0].String())); err != nil {
		return js.ValueOf(map[string]interface{}{"error": err.Error()})
	}

	return js.ValueOf(map[string]interface{}{"ok": true})
}

// --- Query Handlers ---

func render(this js.Value, args []js.Value) interface{} {
	return js.ValueOf(eng.RenderJSON())
}

func getScene(this js.Value, args []js.Value) interface{} {
	return js.ValueOf(eng.GetScene())
}

func viewport(this js.Value, args []js.Value) interface{} {
	return js.ValueOf(eng.GetViewport())
}
