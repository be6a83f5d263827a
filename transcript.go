package tabstate

import (
	"strconv"
	"strings"

	"pkt.systems/tabstate/schema"
)

// RenderTranscript folds edit chunks into a display string that approximates
// the typing and deletion sequence.
//
// Additions contiguous with the previous addition (position == last+1) are
// appended as plain text; other additions are prefixed with "[pos]:", and
// with "," unless they are the first tracked addition. Deletions render as
// "<DEL:pos>" and pull the tracked addition position back by one.
//
// A tracked position of 0 means "no addition seen yet", so an addition at
// offset 0 does not count as tracked for the next chunk. Output depends on
// this; keep it.
func RenderTranscript(chunks []schema.EditChunk) string {
	var b strings.Builder
	var lastAddition uint64
	for _, chunk := range chunks {
		if chunk.IsAddition() {
			switch {
			case lastAddition == 0:
				writeMarker(&b, "", chunk.Position)
			case chunk.Position == lastAddition+1:
			default:
				writeMarker(&b, ",", chunk.Position)
			}
			b.WriteString(chunk.Text())
			lastAddition = chunk.Position
			continue
		}
		if lastAddition > 0 {
			lastAddition--
		}
		b.WriteString("<DEL:")
		b.WriteString(strconv.FormatUint(chunk.Position, 10))
		b.WriteByte('>')
	}
	return b.String()
}

func writeMarker(b *strings.Builder, prefix string, position uint64) {
	b.WriteString(prefix)
	b.WriteByte('[')
	b.WriteString(strconv.FormatUint(position, 10))
	b.WriteString("]:")
}

// AttachTranscript sets rec.Transcript from its edit chunks. Records without
// chunks keep a nil transcript.
func AttachTranscript(rec *schema.TabState) {
	if rec == nil || rec.EditChunks == nil {
		return
	}
	transcript := RenderTranscript(rec.EditChunks)
	rec.Transcript = &transcript
}
