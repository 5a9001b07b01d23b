// SPDX-License-Identifier: EPL-2.0

package pcmwav

import (
	"strings"
	"unicode"

	"github.com/ik5/pcmwav/formats/wav"
)

const (
	downloadPrefix = "locucao-"
	defaultVoice   = "audio"
)

// DownloadName is the file name offered when a rendition is saved:
// "locucao-<voice>.wav" with voice lowercased. Runs of spaces and path
// separators become a single '-'.
func DownloadName(voice string) string {
	var b strings.Builder
	b.WriteString(downloadPrefix)

	start := b.Len()
	dash := false
	for _, r := range strings.TrimSpace(voice) {
		if unicode.IsSpace(r) || r == '/' || r == '\\' {
			dash = true
			continue
		}
		if dash && b.Len() > start {
			b.WriteByte('-')
		}
		dash = false
		b.WriteRune(unicode.ToLower(r))
	}

	if b.Len() == start {
		b.WriteString(defaultVoice)
	}

	b.WriteString(wav.Extension)
	return b.String()
}
