// SPDX-License-Identifier: Unlicense OR MIT

/*
Package paint provides drawing operations for 2D graphics.

The PaintOp operation fills the current clip with the current brush,
taking the current transformation into account.

The current brush is set by either a ColorOp for a constant color, or
ImageOp for an image.

The current clip is set by the clip operations of package clip.
*/
package paint
