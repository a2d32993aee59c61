package extract

import (
	"io"
	"strings"

	"github.com/arthur-debert/pricat/pkg/errors"
	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/htmlindex"
	"golang.org/x/text/encoding/ianaindex"
	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"
)

// lookupEncoding resolves an encoding label such as "utf-8", "latin1" or
// "windows-1252". "utf-8-sig" decodes UTF-8 and drops a leading byte order
// mark.
func lookupEncoding(name string) (encoding.Encoding, error) {
	label := strings.ToLower(strings.TrimSpace(name))
	switch label {
	case "", "utf-8", "utf8":
		return unicode.UTF8, nil
	case "utf-8-sig", "utf8-sig":
		return unicode.UTF8BOM, nil
	}

	if enc, err := htmlindex.Get(label); err == nil {
		return enc, nil
	}
	if enc, err := ianaindex.IANA.Encoding(label); err == nil && enc != nil {
		return enc, nil
	}

	return nil, errors.Newf(errors.ErrCSVRead, "Unsupported encoding: %s", name).
		WithDetail("encoding", name)
}

func decode(r io.Reader, enc encoding.Encoding) io.Reader {
	return transform.NewReader(r, enc.NewDecoder())
}
