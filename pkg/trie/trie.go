// Package trie reads the export trie of a Mach-O image, the table a linker
// consults to resolve exported symbol names.
package trie

import (
	"bytes"
	"errors"
	"fmt"
	"io"
)

// ErrMalformed reports a trie whose offsets or strings run outside its data.
var ErrMalformed = errors.New("malformed export trie")

// Entry is an exported symbol.
type Entry struct {
	Name     string
	ReExport string
	Flags    ExportFlag
	Other    uint64
	Address  uint64
}

func (e Entry) String() string {
	switch {
	case e.Flags.ReExport():
		return fmt.Sprintf("%s (re-exported as %s)", e.Name, e.ReExport)
	case e.Flags.StubAndResolver():
		return fmt.Sprintf("%#016x: %s (resolver %#x)", e.Address, e.Name, e.Other)
	default:
		return fmt.Sprintf("%#016x: %s", e.Address, e.Name)
	}
}

// ReadUleb128 decodes one unsigned LEB128 value.
func ReadUleb128(r io.ByteReader) (uint64, error) {
	var result uint64
	var shift uint

	for {
		b, err := r.ReadByte()
		if err != nil {
			return 0, fmt.Errorf("could not parse ULEB128 value: %w", err)
		}
		// the tenth byte may only carry bit 63
		if shift >= 64 || (shift == 63 && b&0x7e != 0) {
			return 0, fmt.Errorf("ULEB128 value overflows 64 bits: %w", ErrMalformed)
		}

		result |= uint64(b&0x7f) << shift

		// high bit clear ends the value
		if b&0x80 == 0 {
			return result, nil
		}

		shift += 7
	}
}

type pendingNode struct {
	offset uint64
	prefix []byte
}

// ParseTrie returns every terminal entry of the trie. Addresses of regular
// and thread local symbols are rebased on loadAddress.
func ParseTrie(data []byte, loadAddress uint64) ([]Entry, error) {
	var entries []Entry

	if len(data) == 0 {
		return entries, nil
	}

	r := bytes.NewReader(data)
	visited := make(map[uint64]bool)
	nodes := []pendingNode{{offset: 0}}

	for len(nodes) > 0 {
		node := nodes[len(nodes)-1]
		nodes = nodes[:len(nodes)-1]

		if node.offset >= uint64(len(data)) {
			return nil, fmt.Errorf("node offset %#x past end of trie: %w", node.offset, ErrMalformed)
		}
		if visited[node.offset] {
			return nil, fmt.Errorf("node offset %#x visited twice: %w", node.offset, ErrMalformed)
		}
		visited[node.offset] = true

		if _, err := r.Seek(int64(node.offset), io.SeekStart); err != nil {
			return nil, err
		}

		terminalSize, err := ReadUleb128(r)
		if err != nil {
			return nil, err
		}
		if terminalSize > uint64(r.Len()) {
			return nil, fmt.Errorf("terminal of %q past end of trie: %w", node.prefix, ErrMalformed)
		}
		childrenAt := uint64(len(data)-r.Len()) + terminalSize

		if terminalSize != 0 {
			entry, err := readTerminal(r, string(node.prefix), loadAddress)
			if err != nil {
				return nil, fmt.Errorf("terminal %q: %w", node.prefix, err)
			}
			entries = append(entries, entry)
		}

		if childrenAt >= uint64(len(data)) {
			return nil, fmt.Errorf("children of %q past end of trie: %w", node.prefix, ErrMalformed)
		}
		if _, err := r.Seek(int64(childrenAt), io.SeekStart); err != nil {
			return nil, err
		}

		childCount, err := r.ReadByte()
		if err != nil {
			return nil, err
		}

		children := make([]pendingNode, 0, childCount)
		for i := 0; i < int(childCount); i++ {
			edge, err := readCString(r)
			if err != nil {
				return nil, fmt.Errorf("edge %d of %q: %w", i, node.prefix, err)
			}
			childOffset, err := ReadUleb128(r)
			if err != nil {
				return nil, err
			}

			prefix := make([]byte, 0, len(node.prefix)+len(edge))
			prefix = append(prefix, node.prefix...)
			prefix = append(prefix, edge...)
			children = append(children, pendingNode{offset: childOffset, prefix: prefix})
		}
		// stack order: first edge is walked first
		for i := len(children) - 1; i >= 0; i-- {
			nodes = append(nodes, children[i])
		}
	}

	return entries, nil
}

func readTerminal(r *bytes.Reader, name string, loadAddress uint64) (Entry, error) {
	flagsValue, err := ReadUleb128(r)
	if err != nil {
		return Entry{}, err
	}
	entry := Entry{Name: name, Flags: ExportFlag(flagsValue)}

	switch {
	case entry.Flags.ReExport():
		// dylib ordinal, then the imported name (empty means same name)
		if entry.Other, err = ReadUleb128(r); err != nil {
			return Entry{}, err
		}
		reexport, err := readCString(r)
		if err != nil {
			return Entry{}, err
		}
		entry.ReExport = string(reexport)
		if entry.ReExport == "" {
			entry.ReExport = name
		}
		return entry, nil
	case entry.Flags.StubAndResolver():
		if entry.Address, err = ReadUleb128(r); err != nil {
			return Entry{}, err
		}
		if entry.Other, err = ReadUleb128(r); err != nil {
			return Entry{}, err
		}
		entry.Address += loadAddress
		entry.Other += loadAddress
		return entry, nil
	}

	if entry.Address, err = ReadUleb128(r); err != nil {
		return Entry{}, err
	}
	if entry.Flags.Regular() || entry.Flags.ThreadLocal() {
		entry.Address += loadAddress
	}
	return entry, nil
}

func readCString(r *bytes.Reader) ([]byte, error) {
	var out []byte
	for {
		b, err := r.ReadByte()
		if err != nil {
			return nil, fmt.Errorf("unterminated string: %w", ErrMalformed)
		}
		if b == 0 {
			return out, nil
		}
		out = append(out, b)
	}
}
