package lsp

import (
	"unicode/utf8"

	protocol "github.com/tliron/glsp/protocol_3_16"
)

// applyChanges применяет изменения из didChange по порядку.
// Изменение без Range заменяет весь текст.
func applyChanges(text string, changes []any) string {
	for _, raw := range changes {
		switch change := raw.(type) {
		case protocol.TextDocumentContentChangeEventWhole:
			text = change.Text
		case protocol.TextDocumentContentChangeEvent:
			if change.Range == nil {
				text = change.Text
				continue
			}
			start := offsetInText(text, change.Range.Start)
			end := max(offsetInText(text, change.Range.End), start)
			text = text[:start] + change.Text + text[end:]
		}
	}
	return text
}

func offsetInText(text string, pos protocol.Position) int {
	i := 0
	for line := uint32(0); line < pos.Line; line++ {
		for i < len(text) && text[i] != '\n' {
			i++
		}
		if i == len(text) {
			return len(text)
		}
		i++
	}
	units := 0
	for i < len(text) && text[i] != '\n' {
		r, size := utf8.DecodeRuneInString(text[i:])
		need := utf16Len(r)
		if units+need > int(pos.Character) {
			break
		}
		units += need
		i += size
	}
	return i
}
