// Package catio converts between raw input and output bytes and machine values.
package catio

import (
	"fmt"
	"regexp"
	"strconv"
)

var numberPattern = regexp.MustCompile(`[-+]?[0-9]+`)

// Decode turns input into values. In byte mode every byte is one value.
// In numeric mode every signed decimal literal is one value and anything else is ignored.
func Decode(data []byte, numeric bool) ([]int64, error) {
	if !numeric {
		ret := make([]int64, len(data))
		for i, b := range data {
			ret[i] = int64(b)
		}
		return ret, nil
	}
	var ret []int64
	for _, literal := range numberPattern.FindAll(data, -1) {
		v, err := strconv.ParseInt(string(literal), 10, 64)
		if err != nil {
			return nil, fmt.Errorf("decode %q: %w", literal, err)
		}
		ret = append(ret, v)
	}
	return ret, nil
}
