package symtab

import (
	"fmt"

	"github.com/blacktop/go-dwarf"
)

type entryReader interface {
	Next() (*dwarf.Entry, error)
}

// FromDWARF demangles the linkage names of every subprogram in d.
func (t *Table) FromDWARF(d *dwarf.Data) ([]Symbol, error) {
	return t.fromEntries(d.Reader())
}

func (t *Table) fromEntries(r entryReader) ([]Symbol, error) {
	var symbols []Symbol
	for {
		entry, err := r.Next()
		if err != nil {
			return nil, fmt.Errorf("failed to read DWARF entry: %w", err)
		}
		if entry == nil {
			break
		}
		if entry.Tag != dwarf.TagSubprogram {
			continue
		}

		name, _ := entry.Val(dwarf.AttrLinkageName).(string)
		if name == "" {
			name, _ = entry.Val(dwarf.AttrName).(string)
		}
		if name == "" {
			continue
		}
		lowpc, _ := entry.Val(dwarf.AttrLowpc).(uint64)
		symbols = append(symbols, Symbol{Name: name, Address: lowpc})
	}
	return t.demangle(symbols)
}
