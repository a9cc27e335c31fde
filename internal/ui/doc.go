// Package ui is the Bubble Tea presentation backend for the HUD controller.
//
// Core pieces:
//   - View: a screen region with its own model, update, view (Elm-style)
//   - Screen: the hud.Host; terminal bounds plus the base view underneath
//   - OverlaySurface: the hud.Surface; composites the HUD box over the base
//   - Spinner / Label: HUD content objects (with and without animation)
//   - Notifier: fans foreground-reentry events out to controllers
//   - Dispatcher: posts timer callbacks into the running program
//   - App: the demo model wiring all of the above to a task dashboard
package ui
