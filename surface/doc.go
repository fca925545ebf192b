// Copyright 2026 The osgl Authors
// SPDX-License-Identifier: MIT

// Package surface connects an osgl pixel buffer to a host display.
//
// A Surface owns one osgl.Pixmap and a Display, the external collaborator
// that actually shows pixels. Draw into the surface with the osgl
// rasterizers (a *Surface is an osgl.Drawable), then call Present to
// convert the buffer to the interleaved float layout displays expect and
// submit it.
//
// Display backends register themselves by name and priority; Open selects
// the best available one. The built-in "image" backend renders into an
// *image.RGBA and is always available.
package surface
