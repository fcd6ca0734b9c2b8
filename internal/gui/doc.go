// Package gui is the raylib window front-end. It hosts a figure.Figure, draws
// both plot panels every frame and maps mouse drags on the slider tracks onto
// the widgets.
package gui
