// SPDX-License-Identifier: EPL-2.0

package payload

import (
	"encoding/base64"
	"errors"
	"strconv"
	"strings"
)

const padChar = '='

// Decode turns the speech service's base64 text into raw bytes.
//
// The standard alphabet is accepted with or without trailing padding. When
// padding is present it must bring the length to a multiple of four; a data
// length that leaves a remainder of one after padding is stripped can never
// be produced by an encoder and is rejected. CR and LF are skipped.
//
// On failure nothing is returned except an error matching ErrMalformedInput.
func Decode(s string) ([]byte, error) {
	s = strings.TrimRight(s, "\r\n")
	if s == "" {
		return []byte{}, nil
	}

	body := strings.TrimRight(s, string(padChar))
	pad := len(s) - len(body)

	// a bad character is reported ahead of any length problem
	if i := invalidAt(body); i >= 0 {
		return nil, &MalformedInputError{Offset: int64(i), Reason: describe(body, i)}
	}

	if pad > 0 {
		if pad > 2 {
			return nil, &MalformedInputError{Offset: int64(len(body)), Reason: "too much padding"}
		}

		if dataLen(s)%4 != 0 {
			return nil, &MalformedInputError{Offset: int64(len(body)), Reason: "padding does not complete a quantum"}
		}
	}

	if dataLen(body)%4 == 1 {
		return nil, &MalformedInputError{Offset: int64(len(body)), Reason: "impossible length"}
	}

	out, err := base64.RawStdEncoding.DecodeString(body)
	if err != nil {
		var corrupt base64.CorruptInputError
		if errors.As(err, &corrupt) {
			return nil, &MalformedInputError{Offset: int64(corrupt), Reason: describe(body, int(corrupt))}
		}

		return nil, &MalformedInputError{Reason: err.Error()}
	}

	return out, nil
}

// Encode is the padded standard encoding of b.
func Encode(b []byte) string {
	return base64.StdEncoding.EncodeToString(b)
}

// DecodedLen is an upper bound of the decoded size of s.
func DecodedLen(s string) int {
	return base64.RawStdEncoding.DecodedLen(dataLen(strings.TrimRight(s, string(padChar))))
}

// invalidAt returns the index of the first byte outside the standard
// alphabet, or -1. CR and LF are allowed.
func invalidAt(s string) int {
	for i := 0; i < len(s); i++ {
		switch c := s[i]; {
		case 'A' <= c && c <= 'Z', 'a' <= c && c <= 'z', '0' <= c && c <= '9':
		case c == '+', c == '/', c == '\r', c == '\n':
		default:
			return i
		}
	}

	return -1
}

// dataLen counts the characters the decoder does not skip.
func dataLen(s string) int {
	return len(s) - strings.Count(s, "\r") - strings.Count(s, "\n")
}

func describe(s string, offset int) string {
	if offset >= 0 && offset < len(s) {
		if s[offset] == padChar {
			return "padding inside data"
		}

		return "invalid character " + strconv.QuoteRuneToASCII(rune(s[offset]))
	}

	return "truncated input"
}
