package pcm

import "fmt"

// TruncationKind tells which alignment rule dropped data.
type TruncationKind int

const (
	// OddByteCount: the raw buffer ended in half a sample.
	OddByteCount TruncationKind = iota + 1
	// PartialFrame: the sample count was not a multiple of the channel count.
	PartialFrame
)

func (k TruncationKind) String() string {
	switch k {
	case OddByteCount:
		return "odd_byte_count"
	case PartialFrame:
		return "partial_frame"
	default:
		return fmt.Sprintf("TruncationKind(%d)", int(k))
	}
}

// TruncatedSampleWarning reports data that was dropped to keep the stream
// aligned. It is a diagnostic: processing continues on the aligned prefix.
// It implements error so it can be logged or joined, but no function in this
// module returns it as its error result.
type TruncatedSampleWarning struct {
	Kind TruncationKind
	// Total is the size of the input in the unit of Dropped
	// (bytes for OddByteCount, samples for PartialFrame).
	Total int
	// Dropped bytes (OddByteCount) or samples (PartialFrame).
	Dropped int
}

func (w *TruncatedSampleWarning) Error() string {
	switch w.Kind {
	case OddByteCount:
		return fmt.Sprintf("truncated PCM: %d byte payload has odd length, dropped %d trailing byte", w.Total, w.Dropped)
	case PartialFrame:
		return fmt.Sprintf("truncated PCM: %d samples do not fill whole frames, dropped %d trailing samples", w.Total, w.Dropped)
	default:
		return fmt.Sprintf("truncated PCM: dropped %d of %d", w.Dropped, w.Total)
	}
}
