// Package core defines the contract between the motion library and its host
// UI framework.
//
// The library does not lay out or paint anything itself. It needs four
// things from a host, all single-threaded on the host's UI loop:
//
//   - [Widget]: an opaque handle to renderable content that the host can
//     position, size, transform, and composite in an overlay. Widgets carry a
//     [ContentCategory] so the performance analyzer can estimate render cost
//     without rendering.
//
//   - [ScreenContext]: the identity and liveness of a screen (page, route).
//     Element records hold only this handle, never the screen itself, so a
//     torn-down screen is detected rather than kept alive.
//
//   - [GeometryReader]: a callback answering "where is this element on screen
//     right now". Geometry is only valid after layout, so readers report
//     whether a box is available this frame.
//
//   - The post-frame queue ([Schedule], [FlushPostFrame]): registration
//     happens during build, before layout, so geometry capture is deferred to
//     the host's next post-layout callback.
package core
