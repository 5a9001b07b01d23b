// SPDX-License-Identifier: EPL-2.0

// Package pcm interprets raw bytes as signed 16-bit little-endian PCM.
//
// A View is the single decode step shared by every consumer: the WAV
// encoder writes View.Bytes verbatim, the playback materializer reads
// View.At. Sharing it is what keeps the saved file and the live preview
// sample-identical.
//
//	v := pcm.NewView(raw)
//	if w := v.Truncation(); w != nil {
//	    log.Println(w) // odd byte dropped, still usable
//	}
//	fmt.Println(v.Len(), v.At(0))
//
// Alignment problems are never fatal here. An odd trailing byte is dropped
// (Truncation), and samples that do not fill a whole frame are reported by
// FrameTruncation so consumers can drop them consistently.
package pcm
