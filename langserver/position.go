package langserver

import protocol "github.com/tliron/glsp/protocol_3_16"

// Positions are byte-column based on both sides of the conversion. Clients
// using UTF-16 columns drift on lines holding non-ASCII text before the
// column; Javadoc edits are line-aligned so in practice columns are 0.

func positionToOffset(content string, pos protocol.Position) int {
	offset := 0
	line := uint32(0)
	for line < pos.Line && offset < len(content) {
		if content[offset] == '\n' {
			line++
		}
		offset++
	}
	offset += int(pos.Character)
	if offset > len(content) {
		offset = len(content)
	}
	return offset
}

func offsetToPosition(content string, offset int) protocol.Position {
	if offset > len(content) {
		offset = len(content)
	}
	var line, col uint32
	for i := 0; i < offset; i++ {
		if content[i] == '\n' {
			line++
			col = 0
		} else {
			col++
		}
	}
	return protocol.Position{Line: line, Character: col}
}
