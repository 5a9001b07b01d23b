// SPDX-License-Identifier: EPL-2.0

// Package payload decodes the base64 text the speech service returns into
// raw PCM bytes.
//
//	raw, err := payload.Decode(resp)
//	if errors.Is(err, payload.ErrMalformedInput) {
//	    // ask the service again, or give up
//	}
//
// Decoding is a pure function with no size limit; bounding payload size is
// the responsibility of whoever talks to the service.
package payload
