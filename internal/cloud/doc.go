// Package cloud renders frequency tables as word-cloud images.
//
// Layout and rasterization are delegated to psykhi/wordclouds, which owns
// the spiral placement and freetype glyph rendering. This package's job is
// configuration: canvas size, background, color palette, capping the table
// to the configured maximum word count, locating a usable TrueType font,
// and encoding the result as PNG.
//
// Design decision: Renderer is an interface so the pipeline receives
// rendering as an injected capability and tests can substitute a fake
// that records calls instead of drawing.
package cloud
