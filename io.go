package neuronet

import (
	"bufio"
	"fmt"
	"io"
	"math"
	"os"
	"strconv"
	"strings"

	"github.com/pkg/errors"
)

// headerPrefix starts the first line of every export
const headerPrefix string = "# neuronet.FeedForward"

func formatFloat(f float64) string {
	return strconv.FormatFloat(f, 'g', -1, 64)
}

// Export writes every bias and weight of the network to w, in a line-oriented text format:
//
//		# neuronet.FeedForward <id>
//		<number of layers> <size of each layer...>
//		# neuron = FFN[i, j]
//		<bias> i j
//		<weight> i j k
//		...
//
// where i is the layer (starting at 1, after the input), j the Neuron within it, and k the
// Connection within the Neuron. Floats are written in the shortest form that reads back exactly.
// Lines starting with '#' are comments.
func (ff *FeedForward) Export(w io.Writer) error {
	bw := bufio.NewWriter(w)

	fmt.Fprintf(bw, "%s %s\n", headerPrefix, ff.id)

	sizes := ff.Sizes()
	strs := make([]string, 1+len(sizes))
	strs[0] = strconv.FormatFloat(float64(len(sizes)), 'f', 1, 64)
	for i, s := range sizes {
		strs[i+1] = strconv.Itoa(s)
	}
	fmt.Fprintln(bw, strings.Join(strs, " "))

	for i, l := range ff.layers {
		for j, n := range l.neurons {
			fmt.Fprintf(bw, "# neuron = FFN[%d, %d]\n", i+1, j)
			fmt.Fprintf(bw, "%s %d %d\n", formatFloat(n.bias), i+1, j)
			for k, c := range n.connections {
				fmt.Fprintf(bw, "%s %d %d %d\n", formatFloat(c.weight), i+1, j, k)
			}
		}
	}

	if err := bw.Flush(); err != nil {
		return errors.Wrapf(err, "Failed to export network")
	}

	return nil
}

// record is a single non-comment line of an export
type record struct {
	line   int
	value  float64
	fields []int
}

type recordReader struct {
	sc   *bufio.Scanner
	line int
}

// next returns the next record, or nil at the end of the input
func (rr *recordReader) next() (*record, error) {
	for rr.sc.Scan() {
		rr.line++
		text := strings.TrimSpace(rr.sc.Text())
		if text == "" || strings.HasPrefix(text, "#") {
			continue
		}

		fs := strings.Fields(text)
		r := &record{line: rr.line, fields: make([]int, len(fs)-1)}

		var err error
		if r.value, err = strconv.ParseFloat(fs[0], 64); err != nil {
			return nil, FormatError{rr.line, fmt.Sprintf("bad value %q", fs[0])}
		} else if math.IsNaN(r.value) || math.IsInf(r.value, 0) {
			return nil, FormatError{rr.line, fmt.Sprintf("value %q is not finite", fs[0])}
		}

		for i, f := range fs[1:] {
			if r.fields[i], err = strconv.Atoi(f); err != nil {
				return nil, FormatError{rr.line, fmt.Sprintf("bad index %q", f)}
			}
		}

		return r, nil
	}

	if err := rr.sc.Err(); err != nil {
		return nil, errors.Wrapf(err, "Failed to read line %d", rr.line+1)
	}

	return nil, nil
}

func sameIndices(a, b []int) bool {
	if len(a) != len(b) {
		return false
	}

	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}

	return true
}

// Import reads biases and weights written by Export into the network. The network must have the
// same sizes, and every Neuron the same number of Connections, as the one that was exported.
//
// Any mismatch, malformed or missing record, or extra record after the last expected one gives an
// error, usually of type FormatError. The network is only changed if the whole input is valid.
func (ff *FeedForward) Import(r io.Reader) error {
	rr := &recordReader{sc: bufio.NewScanner(r)}

	head, err := rr.next()
	if err != nil {
		return err
	} else if head == nil {
		return FormatError{0, "missing sizes"}
	}

	if head.value != float64(len(head.fields)) {
		return FormatError{head.line, fmt.Sprintf("header gives %v layers but lists %d sizes",
			head.value, len(head.fields))}
	} else if sizes := ff.Sizes(); !sameIndices(sizes, head.fields) {
		return FormatError{head.line, fmt.Sprintf("sizes %v do not match network sizes %v",
			head.fields, sizes)}
	}

	// staged values, in the same order as the records
	var staged []float64

	expect := func(indices ...int) error {
		rec, err := rr.next()
		if err != nil {
			return err
		} else if rec == nil {
			return FormatError{0, fmt.Sprintf("missing record %v", indices)}
		} else if !sameIndices(rec.fields, indices) {
			return FormatError{rec.line, fmt.Sprintf("expected indices %v, got %v", indices, rec.fields)}
		}

		staged = append(staged, rec.value)
		return nil
	}

	for i, l := range ff.layers {
		for j, n := range l.neurons {
			if err = expect(i+1, j); err != nil {
				return err
			}

			for k := range n.connections {
				if err = expect(i+1, j, k); err != nil {
					return err
				}
			}
		}
	}

	if rec, err := rr.next(); err != nil {
		return err
	} else if rec != nil {
		return FormatError{rec.line, "expected end of input"}
	}

	var s int
	for _, l := range ff.layers {
		for _, n := range l.neurons {
			n.bias = staged[s]
			s++
			for _, c := range n.connections {
				c.weight = staged[s]
				s++
			}
		}
	}

	return nil
}

// ExportFile creates (or truncates) the file at path and writes the network to it with Export.
func (ff *FeedForward) ExportFile(path string) error {
	f, err := os.Create(path)
	if err != nil {
		return errors.Wrapf(err, "Can't export network, couldn't create file %s", path)
	}

	if err = ff.Export(f); err != nil {
		f.Close()
		return err
	}

	if err = f.Close(); err != nil {
		return errors.Wrapf(err, "Failed to close file %s", path)
	}

	ff.cfg.logger().Info("exported network", "id", ff.id, "path", path)
	return nil
}

// ImportFile reads the file at path into the network with Import.
func (ff *FeedForward) ImportFile(path string) error {
	f, err := os.Open(path)
	if err != nil {
		return errors.Wrapf(err, "Can't import network, couldn't open file %s", path)
	}

	defer f.Close()

	if err = ff.Import(f); err != nil {
		return errors.Wrapf(err, "Failed to import network from %s", path)
	}

	ff.cfg.logger().Info("imported network", "id", ff.id, "path", path)
	return nil
}
