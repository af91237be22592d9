// Package imaging converts between encoded images and editor frames.
//
// It is the glue on both sides of an edit session:
//   - Loader turns encoded bytes (a file, a base64 payload, or a data URL)
//     into an *editor.Frame ready for Session.Load.
//   - Export and SaveFile encode a frame snapshot as PNG, JPEG or BMP.
//   - SampleColor and DominantColors inspect a frame without changing it.
//
// None of these functions touch a session or its renderer. A decode failure
// is returned to the caller before anything is loaded, so a bad file can
// never end up displayed or recorded in history.
//
// # Pixel Layout
//
// Frames are non-premultiplied RGBA, the same layout as image.NRGBA. Decoded
// images of any color model are normalized to NRGBA and anchored at (0,0).
//
// # Coordinate System
//
// Pixel coordinates are 0-based with the origin at the top-left corner:
//   - X: horizontal position (0 = leftmost pixel)
//   - Y: vertical position (0 = topmost pixel)
//
// # Supported Formats
//
// Decoding: PNG, JPEG, GIF, BMP, TIFF and WebP. JPEG EXIF orientation is
// applied while decoding.
//
// Encoding: PNG, JPEG (quality 1-100) and BMP.
//
// # Thread Safety
//
// FrameCache is safe for concurrent use. The remaining functions are
// stateless and only read the frames they are given.
package imaging
