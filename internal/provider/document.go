package provider

import (
	"encoding/xml"
	"errors"
	"fmt"
	"io"
	"strings"

	"golang.org/x/text/encoding/charmap"
)

// Tag names of the two parallel sequences in a day's document.
const (
	tagCurrencyCode = "currency_code"
	tagRate         = "rate"
)

// RateDocument is the parsed form of one day's feed payload. It keeps the
// text content of every element, grouped by local tag name in document order.
// A document lives for a single lookup and is never modified after parsing.
type RateDocument struct {
	elements map[string][]string
}

// ParseDocument reads an XML payload and indexes its elements by tag name.
// The text of an element includes the text of all its descendants, with
// surrounding whitespace trimmed.
func ParseDocument(r io.Reader) (*RateDocument, error) {
	doc := &RateDocument{elements: make(map[string][]string)}
	dec := xml.NewDecoder(r)
	dec.CharsetReader = charsetReader

	type open struct {
		name  string
		index int
		text  strings.Builder
	}
	var stack []*open
	seenRoot := false

	for {
		tok, err := dec.Token()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrMalformedDocument, err)
		}

		switch t := tok.(type) {
		case xml.StartElement:
			seenRoot = true
			name := t.Name.Local
			doc.elements[name] = append(doc.elements[name], "")
			stack = append(stack, &open{name: name, index: len(doc.elements[name]) - 1})
		case xml.CharData:
			for _, o := range stack {
				o.text.Write(t)
			}
		case xml.EndElement:
			top := stack[len(stack)-1]
			stack = stack[:len(stack)-1]
			doc.elements[top.name][top.index] = strings.TrimSpace(top.text.String())
		}
	}

	if !seenRoot {
		return nil, fmt.Errorf("%w: no root element", ErrMalformedDocument)
	}
	return doc, nil
}

// charsets maps declared encoding labels to decoders. UTF-8 needs no entry.
var charsets = map[string]*charmap.Charmap{
	"iso-8859-1":   charmap.ISO8859_1,
	"latin1":       charmap.ISO8859_1,
	"iso-8859-15":  charmap.ISO8859_15,
	"windows-1251": charmap.Windows1251,
	"windows-1252": charmap.Windows1252,
	"cp1252":       charmap.Windows1252,
}

func charsetReader(label string, input io.Reader) (io.Reader, error) {
	cm, ok := charsets[strings.ToLower(strings.TrimSpace(label))]
	if !ok {
		return nil, fmt.Errorf("unsupported charset: %s", label)
	}
	return cm.NewDecoder().Reader(input), nil
}

// Elements returns the text of every element tagged name, in document order.
func (d *RateDocument) Elements(name string) []string {
	return d.elements[name]
}

// entries returns the parallel code and rate sequences, failing when their
// lengths differ since pairing is by shared index only.
func (d *RateDocument) entries() (codes, rates []string, err error) {
	codes = d.Elements(tagCurrencyCode)
	rates = d.Elements(tagRate)
	if len(codes) != len(rates) {
		return nil, nil, fmt.Errorf("%w: %d %s elements but %d %s elements",
			ErrMalformedDocument, len(codes), tagCurrencyCode, len(rates), tagRate)
	}
	return codes, rates, nil
}
