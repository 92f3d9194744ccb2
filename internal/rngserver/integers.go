// internal/rngserver/integers.go
//
// GET /integers/ with random.org's query contract:
//   num    number of integers, 1..maxNum
//   min    smallest value (inclusive), within ±maxValue
//   max    largest value (inclusive), within ±maxValue, max >= min, span < maxSpan
//   col    accepted and ignored (output is always one per line)
//   base   must be 10
//   format must be "plain"
//   rnd    must be "new" if present
//
// Output: num integers, newline-separated, text/plain.

package rngserver

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"
)

const (
	maxNum   = 10000
	maxSpan  = 1_000_000_000
	maxValue = 1_000_000_000 // |min| and |max| bound, as on random.org
)

// mountIntegers registers the integer generator.
func (s *Server) mountIntegers(r chi.Router) {
	r.Get("/integers/", s.handleIntegers)
	r.Get("/integers", s.handleIntegers)
}

// integersReq is a parsed /integers/ query.
type integersReq struct {
	num, min, max int
}

func parseIntegers(q map[string][]string) (integersReq, error) {
	get := func(k string) string {
		if v := q[k]; len(v) > 0 {
			return v[0]
		}
		return ""
	}
	var req integersReq
	var err error
	if req.num, err = strconv.Atoi(get("num")); err != nil || req.num < 1 || req.num > maxNum {
		return req, fmt.Errorf("The 'num' parameter must be between 1 and %d", maxNum)
	}
	if req.min, err = strconv.Atoi(get("min")); err != nil {
		return req, errors.New("The 'min' parameter must be an integer")
	}
	if req.max, err = strconv.Atoi(get("max")); err != nil {
		return req, errors.New("The 'max' parameter must be an integer")
	}
	if req.min < -maxValue || req.min > maxValue {
		return req, fmt.Errorf("The 'min' parameter must be between %d and %d", -maxValue, maxValue)
	}
	if req.max < -maxValue || req.max > maxValue {
		return req, fmt.Errorf("The 'max' parameter must be between %d and %d", -maxValue, maxValue)
	}
	if req.max < req.min || req.max-req.min >= maxSpan {
		return req, errors.New("The range from 'min' to 'max' is invalid")
	}
	if b := get("base"); b != "" && b != "10" {
		return req, errors.New("Only base 10 is supported")
	}
	if f := get("format"); f != "plain" {
		return req, errors.New("Only the 'plain' format is supported")
	}
	if rnd := get("rnd"); rnd != "" && rnd != "new" {
		return req, errors.New("Only rnd=new is supported")
	}
	return req, nil
}

func (s *Server) handleIntegers(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	req, err := parseIntegers(r.URL.Query())
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		_, _ = fmt.Fprintf(w, "Error: %s\n", err)
		return
	}

	var sb strings.Builder
	span := req.max - req.min + 1
	for i := 0; i < req.num; i++ {
		sb.WriteString(strconv.Itoa(req.min + s.intn(span)))
		sb.WriteByte('\n')
	}
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte(sb.String()))
}
