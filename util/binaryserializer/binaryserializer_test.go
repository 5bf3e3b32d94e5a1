package binaryserializer

import (
	"bytes"
	"errors"
	"math"
	"testing"
)

func TestUvarint(t *testing.T) {
	tests := []struct {
		value   uint64
		encoded []byte
	}{
		{0, []byte{0x00}},
		{1, []byte{0x01}},
		{127, []byte{0x7f}},
		{128, []byte{0x80, 0x01}},
		{300, []byte{0xac, 0x02}},
		{16384, []byte{0x80, 0x80, 0x01}},
		{math.MaxUint64, []byte{0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0x01}},
	}

	for _, test := range tests {
		buf := &bytes.Buffer{}
		err := PutUvarint(buf, test.value)
		if err != nil {
			t.Fatalf("PutUvarint(%d): %s", test.value, err)
		}
		if !bytes.Equal(buf.Bytes(), test.encoded) {
			t.Errorf("PutUvarint(%d): expected %x, got %x", test.value, test.encoded, buf.Bytes())
		}
		if appended := AppendUvarint(nil, test.value); !bytes.Equal(appended, test.encoded) {
			t.Errorf("AppendUvarint(%d): expected %x, got %x", test.value, test.encoded, appended)
		}
		if size := UvarintSize(test.value); size != len(test.encoded) {
			t.Errorf("UvarintSize(%d): expected %d, got %d", test.value, len(test.encoded), size)
		}

		decoded, err := Uvarint(bytes.NewReader(test.encoded))
		if err != nil {
			t.Fatalf("Uvarint(%x): %s", test.encoded, err)
		}
		if decoded != test.value {
			t.Errorf("Uvarint(%x): expected %d, got %d", test.encoded, test.value, decoded)
		}
	}
}

func TestUvarintErrors(t *testing.T) {
	tests := []struct {
		name    string
		encoded []byte
		err     error
	}{
		{"non canonical", []byte{0x80, 0x00}, ErrNonCanonicalVarint},
		{"overflow in last group", []byte{0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0x02}, ErrVarintOverflow},
		{"too many groups", []byte{0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0x81, 0x01}, ErrVarintOverflow},
	}

	for _, test := range tests {
		_, err := Uvarint(bytes.NewReader(test.encoded))
		if !errors.Is(err, test.err) {
			t.Errorf("%s: expected %v, got %v", test.name, test.err, err)
		}
	}

	_, err := Uvarint(bytes.NewReader([]byte{0x80}))
	if err == nil {
		t.Errorf("Uvarint is expected to fail on a truncated varint")
	}
}

func TestUint32(t *testing.T) {
	buf := &bytes.Buffer{}
	err := PutUint32(buf, 0x01020304)
	if err != nil {
		t.Fatalf("PutUint32: %s", err)
	}
	if !bytes.Equal(buf.Bytes(), []byte{0x04, 0x03, 0x02, 0x01}) {
		t.Fatalf("PutUint32 is expected to write little endian bytes, got %x", buf.Bytes())
	}
	value, err := Uint32(buf)
	if err != nil {
		t.Fatalf("Uint32: %s", err)
	}
	if value != 0x01020304 {
		t.Fatalf("expected 0x01020304, got 0x%x", value)
	}
}
