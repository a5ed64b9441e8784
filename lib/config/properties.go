package config

import (
	"github.com/go-i2p/logger"
	"github.com/magiconair/properties"
	"github.com/samber/oops"
)

// RawProperties is a flat property name to value mapping as read from a
// property file.
type RawProperties map[string]string

// PropertyReader loads the raw properties stored at path.
type PropertyReader interface {
	ReadProperties(path string) (RawProperties, error)
}

// PropertyReaderFunc adapts a function to PropertyReader.
type PropertyReaderFunc func(path string) (RawProperties, error)

// ReadProperties calls f(path).
func (f PropertyReaderFunc) ReadProperties(path string) (RawProperties, error) {
	return f(path)
}

// FileReader reads Java-style property files: key=value or key: value lines
// with '#' and '!' comments. ${...} references are kept verbatim.
type FileReader struct{}

// ReadProperties implements PropertyReader.
func (FileReader) ReadProperties(path string) (RawProperties, error) {
	loader := &properties.Loader{
		Encoding:         properties.UTF8,
		DisableExpansion: true,
	}
	p, err := loader.LoadFile(path)
	if err != nil {
		log.WithError(err).WithFields(logger.Fields{
			"at":     "FileReader.ReadProperties",
			"reason": "read_failed",
			"path":   path,
		}).Error("failed to read property file")
		return nil, oops.Wrapf(err, "reading property file %s", path)
	}
	values := RawProperties(p.Map())
	log.WithFields(logger.Fields{
		"at":    "FileReader.ReadProperties",
		"path":  path,
		"count": len(values),
	}).Debug("read property file")
	return values, nil
}
