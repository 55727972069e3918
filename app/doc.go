// SPDX-License-Identifier: Unlicense OR MIT

/*
Package app drives a widget tree from the events of a window.

The platform layer owns the actual window. It reports the size with
Resize, asks for the operations of each frame with Frame and forwards
input with Pointer, Leave and Key. After every input event the window
is invalidated and the platform should draw a new frame:

	w := app.NewWindow(root, app.Size(800, 600))
	for {
		switch e := nextEvent().(type) {
		case resizeEvent:
			w.Resize(e.Size)
		case pointerEvent:
			w.Pointer(e.Event)
		}
		if w.Invalidated() {
			ops, err := w.Frame()
			if err != nil {
				log.Print(err)
				continue
			}
			present(ops)
		}
	}

# Frames

Each frame lays out the root widget with exactly the window size,
clears the window to black and draws every layer of the tree from the
bottom up with focus.

Input is delivered to the layer reported by hit-testing the root at the
pointer position, and keys are delivered to the root, which routes them
along the focus path. An event that follows another event without a
frame in between first lays the tree out again, so callbacks that
changed local state are reflected before the next hit test.

Events that arrive before the first frame are ignored.

A widget tree built with a different shape than it had during layout
aborts the current frame or event with an error wrapping a
*layout.ShapeError. The next frame or event lays the tree out again.

Package headless renders windows to images without a platform.
*/
package app
