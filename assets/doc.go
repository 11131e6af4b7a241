// Package assets resolves the asset base path and loads the two bundled
// files the sample needs: a TrueType font rasterized to a text surface
// and a vector image decoded to a raster surface. Both loads are
// all-or-nothing; a missing or undecodable asset is a startup failure,
// not a degraded mode.
package assets
