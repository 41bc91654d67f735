package symtab

import (
	"fmt"

	"github.com/appsworld/go-swiftdemangle/pkg/trie"
)

// FromExportTrie demangles the symbols exported through a Mach-O export trie.
func (t *Table) FromExportTrie(data []byte, loadAddress uint64) ([]Symbol, error) {
	entries, err := trie.ParseTrie(data, loadAddress)
	if err != nil {
		return nil, fmt.Errorf("failed to parse export trie: %w", err)
	}

	symbols := make([]Symbol, 0, len(entries))
	for _, entry := range entries {
		symbols = append(symbols, Symbol{Name: entry.Name, Address: entry.Address})
	}
	return t.demangle(symbols)
}
