package export

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/golang/snappy"

	"playparse/play"
)

const (
	Separator = ";"
	Missing   = "NA"
)

// Header returns the column names of the segment table.
func Header() []string {
	cols := make([]string, 0, len(play.Attributes)+3)
	cols = append(cols, "play_num", "segment_num")
	cols = append(cols, play.Attributes...)
	return append(cols, "original_description")
}

// Row renders one segment. Attributes absent from the segment are NA.
func Row(playNum, segmentNum int, seg *play.Segment, original string) []string {
	cols := make([]string, 0, len(play.Attributes)+3)
	cols = append(cols, fmt.Sprint(playNum), fmt.Sprint(segmentNum))
	for _, key := range play.Attributes {
		v, ok := seg.Get(key)
		if !ok {
			cols = append(cols, Missing)
			continue
		}
		cols = append(cols, play.FormatValue(v))
	}
	return append(cols, original)
}

// Writer writes parsed plays as a ';' separated table, one line per segment.
type Writer struct {
	buf      *bufio.Writer
	snappy   *snappy.Writer
	plays    int
	wroteHdr bool
}

// NewWriter returns a table writer. With compress set the output is snappy
// framed.
func NewWriter(w io.Writer, compress bool) *Writer {
	out := &Writer{}
	if compress {
		out.snappy = snappy.NewBufferedWriter(w)
		w = out.snappy
	}
	out.buf = bufio.NewWriter(w)
	return out
}

func (w *Writer) writeLine(cols []string) error {
	_, err := w.buf.WriteString(strings.Join(cols, Separator) + "\n")
	return err
}

// Write appends one play and its description. Plays are numbered from 1 in
// the order they are written.
func (w *Writer) Write(original string, desc *play.Description) error {
	if !w.wroteHdr {
		if err := w.writeLine(Header()); err != nil {
			return err
		}
		w.wroteHdr = true
	}

	w.plays++
	for i, seg := range desc.Segments {
		if err := w.writeLine(Row(w.plays, i+1, seg, original)); err != nil {
			return fmt.Errorf("play %d: %w", w.plays, err)
		}
	}
	return nil
}

// Close flushes buffered output. It does not close the underlying writer.
func (w *Writer) Close() error {
	if !w.wroteHdr {
		if err := w.writeLine(Header()); err != nil {
			return err
		}
		w.wroteHdr = true
	}
	if err := w.buf.Flush(); err != nil {
		return err
	}
	if w.snappy != nil {
		return w.snappy.Close()
	}
	return nil
}

// WriteAll writes every play with its description and closes the writer.
func WriteAll(w io.Writer, plays []string, descs []*play.Description, compress bool) error {
	if len(plays) != len(descs) {
		return fmt.Errorf("got %d plays but %d descriptions", len(plays), len(descs))
	}
	out := NewWriter(w, compress)
	for i := range plays {
		if err := out.Write(plays[i], descs[i]); err != nil {
			return err
		}
	}
	return out.Close()
}
