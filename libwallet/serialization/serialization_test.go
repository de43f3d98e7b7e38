package serialization

import (
	"bytes"
	"testing"
)

func TestRoundTrip(t *testing.T) {
	buffer := &bytes.Buffer{}

	if err := WriteUint16(buffer, 0x0102); err != nil {
		t.Fatalf("WriteUint16: %+v", err)
	}
	if err := WriteUint32(buffer, 0x03040506); err != nil {
		t.Fatalf("WriteUint32: %+v", err)
	}
	if err := WriteUint64(buffer, 0x0708090a0b0c0d0e); err != nil {
		t.Fatalf("WriteUint64: %+v", err)
	}
	if err := WriteVarBytes(buffer, []byte("payload")); err != nil {
		t.Fatalf("WriteVarBytes: %+v", err)
	}

	if got, err := ReadUint16(buffer); err != nil || got != 0x0102 {
		t.Fatalf("ReadUint16 = %x, %v", got, err)
	}
	if got, err := ReadUint32(buffer); err != nil || got != 0x03040506 {
		t.Fatalf("ReadUint32 = %x, %v", got, err)
	}
	if got, err := ReadUint64(buffer); err != nil || got != 0x0708090a0b0c0d0e {
		t.Fatalf("ReadUint64 = %x, %v", got, err)
	}
	if got, err := ReadVarBytes(buffer, 1024); err != nil || !bytes.Equal(got, []byte("payload")) {
		t.Fatalf("ReadVarBytes = %q, %v", got, err)
	}
}

func TestReadVarBytesRespectsMaxAllowed(t *testing.T) {
	buffer := &bytes.Buffer{}
	if err := WriteVarBytes(buffer, make([]byte, 100)); err != nil {
		t.Fatalf("WriteVarBytes: %+v", err)
	}

	_, err := ReadVarBytes(buffer, 99)
	if err == nil {
		t.Fatalf("ReadVarBytes unexpectedly accepted a field over the maximum")
	}
}

func TestReadFromTruncatedInput(t *testing.T) {
	if _, err := ReadUint64(bytes.NewReader([]byte{1, 2, 3})); err == nil {
		t.Fatalf("ReadUint64 unexpectedly succeeded on truncated input")
	}
}
