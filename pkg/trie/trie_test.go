package trie

import (
	"bytes"
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
)

// flatTrie builds a root with one edge per name; every child is a regular
// terminal whose address is addrs[i]. Offsets must stay below 0x80.
func flatTrie(names []string, addrs []byte) []byte {
	rootSize := 2
	for _, name := range names {
		rootSize += len(name) + 2
	}
	var buf bytes.Buffer
	buf.WriteByte(0)
	buf.WriteByte(byte(len(names)))
	for i, name := range names {
		buf.WriteString(name)
		buf.WriteByte(0)
		buf.WriteByte(byte(rootSize + 4*i))
	}
	for _, addr := range addrs {
		buf.Write([]byte{2, 0, addr, 0})
	}
	return buf.Bytes()
}

func TestReadUleb128(t *testing.T) {
	cases := []struct {
		in   []byte
		want uint64
	}{
		{in: []byte{0x00}, want: 0},
		{in: []byte{0x7f}, want: 127},
		{in: []byte{0x80, 0x01}, want: 128},
		{in: []byte{0xe5, 0x8e, 0x26}, want: 624485},
		{in: []byte{0x80, 0x80, 0x80, 0x80, 0x80, 0x80, 0x80, 0x80, 0x80, 0x01}, want: 1 << 63},
		{in: []byte{0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0x01}, want: ^uint64(0)},
	}
	for _, tc := range cases {
		got, err := ReadUleb128(bytes.NewReader(tc.in))
		if err != nil {
			t.Fatalf("ReadUleb128(% x) failed: %v", tc.in, err)
		}
		if got != tc.want {
			t.Fatalf("ReadUleb128(% x) = %d, want %d", tc.in, got, tc.want)
		}
	}
	if _, err := ReadUleb128(bytes.NewReader([]byte{0x80})); err == nil {
		t.Fatalf("expected error for truncated value")
	}
}

func TestReadUleb128Overflow(t *testing.T) {
	for _, in := range [][]byte{
		{0x80, 0x80, 0x80, 0x80, 0x80, 0x80, 0x80, 0x80, 0x80, 0x7f},
		{0x80, 0x80, 0x80, 0x80, 0x80, 0x80, 0x80, 0x80, 0x80, 0x02},
		{0x80, 0x80, 0x80, 0x80, 0x80, 0x80, 0x80, 0x80, 0x80, 0x80, 0x00},
	} {
		if got, err := ReadUleb128(bytes.NewReader(in)); !errors.Is(err, ErrMalformed) {
			t.Fatalf("ReadUleb128(% x) = %#x, %v; want ErrMalformed", in, got, err)
		}
	}
}

func TestParseTrieFlat(t *testing.T) {
	data := flatTrie([]string{"_$S4Demo3runSfF", "_main"}, []byte{0x10, 0x20})
	got, err := ParseTrie(data, 0x1000)
	if err != nil {
		t.Fatalf("ParseTrie failed: %v", err)
	}
	want := []Entry{
		{Name: "_$S4Demo3runSfF", Address: 0x1010},
		{Name: "_main", Address: 0x1020},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("ParseTrie mismatch (-want +got):\n%s", diff)
	}
}

func TestParseTrieSharedPrefix(t *testing.T) {
	data := []byte{
		// root @0
		0x00, 0x01,
		'_', '$', 'S', '4', 'D', 'e', 'm', 'o', '3', 'r', 'u', 'n', 0x00, 16,
		// "_$S4Demo3run" @16
		0x00, 0x02,
		'S', 'f', 'F', 0x00, 28,
		'S', 'i', 'F', 0x00, 32,
		// "_$S4Demo3runSfF" @28
		0x02, 0x00, 0x10, 0x00,
		// "_$S4Demo3runSiF" @32, weak definition
		0x02, 0x04, 0x20, 0x00,
	}
	got, err := ParseTrie(data, 0)
	if err != nil {
		t.Fatalf("ParseTrie failed: %v", err)
	}
	want := []Entry{
		{Name: "_$S4Demo3runSfF", Address: 0x10},
		{Name: "_$S4Demo3runSiF", Flags: exportSymbolFlagsWeakDefinition, Address: 0x20},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("ParseTrie mismatch (-want +got):\n%s", diff)
	}
	if s := got[1].Flags.String(); s != "Regular (Weak Definition)" {
		t.Fatalf("unexpected flags string %q", s)
	}
}

func TestParseTrieReExport(t *testing.T) {
	data := []byte{
		0x00, 0x01, '_', 'a', 0x00, 6,
		// terminal: flags=reexport, ordinal=1, name "_b"
		0x05, 0x08, 0x01, '_', 'b', 0x00, 0x00,
	}
	got, err := ParseTrie(data, 0x4000)
	if err != nil {
		t.Fatalf("ParseTrie failed: %v", err)
	}
	want := []Entry{{Name: "_a", ReExport: "_b", Flags: exportSymbolFlagsReexport, Other: 1}}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("ParseTrie mismatch (-want +got):\n%s", diff)
	}
}

func TestParseTrieStubAndResolver(t *testing.T) {
	data := []byte{
		0x00, 0x01, '_', 's', 0x00, 6,
		// terminal: flags=stub and resolver, stub offset, resolver offset
		0x03, 0x10, 0x10, 0x20, 0x00,
	}
	got, err := ParseTrie(data, 0x1000)
	if err != nil {
		t.Fatalf("ParseTrie failed: %v", err)
	}
	want := []Entry{{Name: "_s", Flags: exportSymbolFlagsStubAndResolver, Address: 0x1010, Other: 0x1020}}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("ParseTrie mismatch (-want +got):\n%s", diff)
	}
	if !got[0].Flags.StubAndResolver() || got[0].Flags.ReExport() {
		t.Fatalf("unexpected flags %#x", uint64(got[0].Flags))
	}
}

func TestParseTrieMalformed(t *testing.T) {
	cases := map[string][]byte{
		"ChildPastEnd":     {0x00, 0x01, '_', 'a', 0x00, 0x40},
		"Cycle":            {0x00, 0x01, '_', 'a', 0x00, 0x00},
		"UnterminatedEdge": {0x00, 0x01, '_', 'a'},
		"HugeTerminal":     {0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0x01, 0x00, 0x00},
	}
	for name, data := range cases {
		if _, err := ParseTrie(data, 0); !errors.Is(err, ErrMalformed) {
			t.Fatalf("%s: ParseTrie error = %v, want ErrMalformed", name, err)
		}
	}
}

func TestParseTrieEmpty(t *testing.T) {
	entries, err := ParseTrie(nil, 0)
	if err != nil || len(entries) != 0 {
		t.Fatalf("ParseTrie(nil) = %v, %v", entries, err)
	}
}
