package main

import (
	"reflect"
	"testing"
)

func TestParseUint64List(t *testing.T) {
	tests := []struct {
		list     string
		expected []uint64
		isValid  bool
	}{
		{"", []uint64{}, true},
		{"1", []uint64{1}, true},
		{"1, 2,3", []uint64{1, 2, 3}, true},
		{"18446744073709551615", []uint64{18446744073709551615}, true},
		{"18446744073709551616", nil, false},
		{"1,,2", nil, false},
		{"-1", nil, false},
	}

	for _, test := range tests {
		values, err := parseUint64List(test.list)
		if (err == nil) != test.isValid {
			t.Errorf("parseUint64List(%q): expected validity %t, got error %v", test.list, test.isValid, err)
			continue
		}
		if test.isValid && !reflect.DeepEqual(values, test.expected) {
			t.Errorf("parseUint64List(%q): expected %v, got %v", test.list, test.expected, values)
		}
	}
}
