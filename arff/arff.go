/*
Package arff reads and writes nominal datasets in a subset of the ARFF text
format:

	% comment
	@relation weather
	@attribute outlook {sunny, overcast, rainy}
	@attribute play {yes, no}
	@data
	sunny,no
	overcast,yes

Keywords are case-insensitive, blank lines and lines starting with % are
ignored and names and values may be enclosed in single or double quotes.
A ? value leaves the attribute undefined for the instance. Only nominal
attributes are supported.
*/
package arff

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/pbanos/grove/dataset"
	"github.com/pbanos/grove/feature"
	"github.com/pkg/errors"
)

/*
ParseError is returned when the input is not a well formed document. Line
is the 1-based number of the offending line.
*/
type ParseError struct {
	Line int
	Msg  string
	Err  error
}

func (pe *ParseError) Error() string {
	if pe.Err != nil {
		return fmt.Sprintf("line %d: %s: %v", pe.Line, pe.Msg, pe.Err)
	}
	return fmt.Sprintf("line %d: %s", pe.Line, pe.Msg)
}

// Unwrap returns the error that caused the parse error, if any
func (pe *ParseError) Unwrap() error {
	return pe.Err
}

const missingValue = "?"

type section int

const (
	header section = iota
	data
)

/*
Read takes an io.Reader with an ARFF document and returns the dataset
declared in it, or an error. Malformed content is reported with a
*ParseError.
*/
func Read(reader io.Reader) (*dataset.Dataset, error) {
	d := dataset.New("")
	names := make(map[string]bool)
	s := bufio.NewScanner(reader)
	current := header
	for l := 1; s.Scan(); l++ {
		line := strings.TrimSpace(s.Text())
		if line == "" || strings.HasPrefix(line, "%") {
			continue
		}
		if current == data {
			err := parseRow(d, line)
			if err != nil {
				return nil, withLine(err, l)
			}
			continue
		}
		keyword, rest := splitKeyword(line)
		switch strings.ToLower(keyword) {
		case "@relation":
			name, _, err := nextToken(rest)
			if err != nil {
				return nil, withLine(err, l)
			}
			d.Name = name
		case "@attribute":
			a, err := parseAttribute(rest)
			if err != nil {
				return nil, withLine(err, l)
			}
			if names[a.Name()] {
				return nil, &ParseError{Line: l, Msg: fmt.Sprintf("attribute %s declared twice", a.Name())}
			}
			names[a.Name()] = true
			d.AddAttribute(a)
		case "@data":
			if d.AttributeCount() == 0 {
				return nil, &ParseError{Line: l, Msg: "@data section without attributes"}
			}
			current = data
		default:
			return nil, &ParseError{Line: l, Msg: fmt.Sprintf("unexpected %q in header", keyword)}
		}
	}
	if err := s.Err(); err != nil {
		return nil, errors.Wrap(err, "reading arff document")
	}
	if current != data {
		return nil, errors.New("arff document has no @data section")
	}
	return d, nil
}

/*
ReadFile takes a filepath string, opens the file it points to and uses Read
to parse it. If the filepath is "" the document is read from os.Stdin.
*/
func ReadFile(filepath string) (*dataset.Dataset, error) {
	var f *os.File
	var err error
	if filepath == "" {
		f = os.Stdin
	} else {
		f, err = os.Open(filepath)
		if err != nil {
			return nil, errors.Wrap(err, "opening arff file")
		}
		defer f.Close()
	}
	d, err := Read(f)
	if err != nil {
		return nil, errors.Wrapf(err, "parsing arff file %s", filepath)
	}
	return d, nil
}

/*
Write takes an io.Writer, a relation name and a view and dumps the
attributes and instances of the view to the writer as an ARFF document.
*/
func Write(writer io.Writer, name string, v dataset.View) error {
	w := bufio.NewWriter(writer)
	attributes := dataset.Attributes(v)
	fmt.Fprintf(w, "@relation %s\n\n", quote(name))
	for _, a := range attributes {
		vs := make([]string, a.Len())
		for i, value := range a.Values() {
			vs[i] = quote(string(value))
		}
		fmt.Fprintf(w, "@attribute %s {%s}\n", quote(a.Name()), strings.Join(vs, ", "))
	}
	fmt.Fprint(w, "\n@data\n")
	record := make([]string, len(attributes))
	for i := 0; i < v.InstanceCount(); i++ {
		instance := v.InstanceAt(i)
		for j, a := range attributes {
			value, ok := instance.ValueFor(a)
			if !ok {
				record[j] = missingValue
				continue
			}
			record[j] = quote(string(value))
		}
		_, err := fmt.Fprintln(w, strings.Join(record, ","))
		if err != nil {
			return errors.Wrapf(err, "writing instance %d", i+1)
		}
	}
	return errors.Wrap(w.Flush(), "writing arff document")
}

/*
WriteFile takes a filepath string, a relation name and a view, and writes
the view to the file as an ARFF document, creating or truncating it. If the
filepath is "" the document is written to os.Stdout.
*/
func WriteFile(filepath, name string, v dataset.View) error {
	if filepath == "" {
		return Write(os.Stdout, name, v)
	}
	f, err := os.Create(filepath)
	if err != nil {
		return errors.Wrap(err, "creating arff file")
	}
	err = Write(f, name, v)
	if err != nil {
		f.Close()
		return err
	}
	return errors.Wrapf(f.Close(), "closing arff file %s", filepath)
}

func splitKeyword(line string) (string, string) {
	i := strings.IndexAny(line, " \t")
	if i < 0 {
		return line, ""
	}
	return line[:i], strings.TrimSpace(line[i:])
}

func parseAttribute(declaration string) (*feature.EnumAttribute, error) {
	name, rest, err := nextToken(declaration)
	if err != nil {
		return nil, err
	}
	if name == "" {
		return nil, &ParseError{Msg: "attribute without name"}
	}
	rest = strings.TrimSpace(rest)
	if !strings.HasPrefix(rest, "{") || !strings.HasSuffix(rest, "}") {
		return nil, &ParseError{Msg: fmt.Sprintf("attribute %s: only nominal attributes are supported, got %q", name, rest)}
	}
	tokens, err := splitValues(rest[1 : len(rest)-1])
	if err != nil {
		return nil, err
	}
	values := make([]feature.Value, 0, len(tokens))
	for _, t := range tokens {
		if t == "" {
			return nil, &ParseError{Msg: fmt.Sprintf("attribute %s: empty value", name)}
		}
		if t == missingValue {
			return nil, &ParseError{Msg: fmt.Sprintf("attribute %s: %s is reserved for undefined values", name, missingValue)}
		}
		values = append(values, feature.Value(t))
	}
	return feature.NewEnumAttribute(name, values...), nil
}

func parseRow(d *dataset.Dataset, line string) error {
	tokens, err := splitValues(line)
	if err != nil {
		return err
	}
	if len(tokens) != d.AttributeCount() {
		return &ParseError{Msg: fmt.Sprintf("expected %d values, got %d", d.AttributeCount(), len(tokens))}
	}
	instance := dataset.NewInstance()
	for i, t := range tokens {
		if t == missingValue {
			continue
		}
		err = instance.Set(d.AttributeAt(i), feature.Value(t))
		if err != nil {
			return &ParseError{Msg: "invalid value", Err: err}
		}
	}
	d.AddInstances(instance)
	return nil
}

func withLine(err error, line int) error {
	pe, ok := err.(*ParseError)
	if !ok {
		return &ParseError{Line: line, Msg: "invalid line", Err: err}
	}
	pe.Line = line
	return pe
}

// splitValues splits a comma separated list of possibly quoted tokens
func splitValues(s string) ([]string, error) {
	var tokens []string
	rest := strings.TrimSpace(s)
	if rest == "" {
		return tokens, nil
	}
	for {
		t, r, err := nextToken(rest)
		if err != nil {
			return nil, err
		}
		tokens = append(tokens, t)
		r = strings.TrimSpace(r)
		if r == "" {
			return tokens, nil
		}
		if r[0] != ',' {
			return nil, &ParseError{Msg: fmt.Sprintf("expected comma before %q", r)}
		}
		rest = strings.TrimSpace(r[1:])
	}
}

/*
nextToken returns the first token of s and what follows it. A token is
either quoted, with backslash escapes, or runs until the next comma,
whitespace or brace.
*/
func nextToken(s string) (string, string, error) {
	s = strings.TrimLeft(s, " \t")
	if s == "" {
		return "", "", nil
	}
	q := s[0]
	if q != '\'' && q != '"' {
		i := strings.IndexAny(s, ", \t{}")
		if i < 0 {
			return s, "", nil
		}
		return s[:i], s[i:], nil
	}
	var b strings.Builder
	for i := 1; i < len(s); i++ {
		c := s[i]
		switch {
		case c == '\\' && i+1 < len(s):
			i++
			b.WriteByte(s[i])
		case c == q:
			return b.String(), s[i+1:], nil
		default:
			b.WriteByte(c)
		}
	}
	return "", "", &ParseError{Msg: fmt.Sprintf("unterminated quote in %q", s)}
}

func quote(s string) string {
	if s != "" && s != missingValue && !strings.ContainsAny(s, ",{}'\"\\% \t") {
		return s
	}
	r := strings.NewReplacer(`\`, `\\`, `'`, `\'`)
	return "'" + r.Replace(s) + "'"
}
