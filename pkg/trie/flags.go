package trie

import "strings"

// ExportFlag is the flags value of a terminal export trie node.
type ExportFlag uint64

const (
	exportSymbolFlagsKindMask        ExportFlag = 0x03
	exportSymbolFlagsKindRegular     ExportFlag = 0x00
	exportSymbolFlagsKindThreadLocal ExportFlag = 0x01
	exportSymbolFlagsKindAbsolute    ExportFlag = 0x02
	exportSymbolFlagsWeakDefinition  ExportFlag = 0x04
	exportSymbolFlagsReexport        ExportFlag = 0x08
	exportSymbolFlagsStubAndResolver ExportFlag = 0x10
)

func (f ExportFlag) Regular() bool {
	return (f & exportSymbolFlagsKindMask) == exportSymbolFlagsKindRegular
}
func (f ExportFlag) ThreadLocal() bool {
	return (f & exportSymbolFlagsKindMask) == exportSymbolFlagsKindThreadLocal
}
func (f ExportFlag) Absolute() bool {
	return (f & exportSymbolFlagsKindMask) == exportSymbolFlagsKindAbsolute
}
func (f ExportFlag) WeakDefinition() bool {
	return f&exportSymbolFlagsWeakDefinition != 0
}
func (f ExportFlag) ReExport() bool {
	return f&exportSymbolFlagsReexport != 0
}
func (f ExportFlag) StubAndResolver() bool {
	return f&exportSymbolFlagsStubAndResolver != 0
}
func (f ExportFlag) String() string {
	var fStr string
	if f.Regular() {
		fStr += "Regular "
		if f.StubAndResolver() {
			fStr += "(Has Resolver Function)"
		} else if f.WeakDefinition() {
			fStr += "(Weak Definition)"
		} else if f.ReExport() {
			fStr += "(Re-export)"
		}
	} else if f.ThreadLocal() {
		fStr += "Thread Local"
	} else if f.Absolute() {
		fStr += "Absolute"
	}
	return strings.TrimSpace(fStr)
}
