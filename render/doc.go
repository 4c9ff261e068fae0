// Package render defines the render-layer records that travel between the
// UI context and the compile worker.
//
// The shapes are fixed by the renderer and the compiler. This package only
// declares them; producing and consuming them is someone else's job. See the
// serializer package for the plain-value encoding.
package render
