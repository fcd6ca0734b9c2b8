// Package widget implements the small input-widget model the front-ends draw:
// horizontal sliders bound to a closed range and push buttons.
//
// Widgets hold state and dispatch callbacks; they know nothing about pixels or
// terminals. Both the raylib window and the terminal UI translate their own
// input events into [Slider.Set], [Slider.SetFraction] and [Button.Click].
//
// Callbacks run synchronously on the caller's goroutine, in registration
// order. Widgets are not safe for concurrent use.
package widget
