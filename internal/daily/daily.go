// Package daily derives the shared daily code: every player gets the same
// secret for a given UTC date and salt.
package daily

import (
	"crypto/hmac"
	"crypto/sha256"
	"time"
)

// DateKey returns YYYY-MM-DD in UTC.
func DateKey(t time.Time) string {
	return t.UTC().Format("2006-01-02")
}

// Code returns a deterministic code of length digits in [0, radix-1] for the date,
// using HMAC(salt, YYYY-MM-DD|length) as the digit stream.
func Code(date time.Time, salt string, length, radix int) string {
	if length <= 0 || radix <= 0 {
		return ""
	}
	out := make([]byte, 0, length)
	// one HMAC block yields 32 digits; chain blocks for longer codes
	var counter byte
	for len(out) < length {
		h := hmac.New(sha256.New, []byte(salt))
		h.Write([]byte(DateKey(date)))
		h.Write([]byte{byte(length), counter})
		for _, b := range h.Sum(nil) {
			if len(out) == length {
				break
			}
			out = append(out, byte('0'+int(b)%radix))
		}
		counter++
	}
	return string(out)
}
