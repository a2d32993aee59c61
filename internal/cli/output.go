package cli

import (
	"os"

	"github.com/arthur-debert/pricat/pkg/errors"
)

// lazyFile creates its file on the first write, so a run that fails before
// producing output leaves no file behind
type lazyFile struct {
	path string
	file *os.File
}

func (l *lazyFile) Write(p []byte) (int, error) {
	if l.file == nil {
		f, err := os.Create(l.path)
		if err != nil {
			return 0, errors.Wrapf(err, errors.ErrEncode, MsgErrOpenOutput, l.path)
		}
		l.file = f
	}
	return l.file.Write(p)
}

func (l *lazyFile) Close() error {
	if l.file == nil {
		return nil
	}
	return l.file.Close()
}
