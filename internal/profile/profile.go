// Package profile reads and patches the H.264 profile-level byte inside a
// raw elementary video stream.
//
// The stream carries a single signed byte at a fixed offset whose value is
// the decoder profile level multiplied by ten (level 4.1 is stored as 41).
// Nothing else in the bitstream is parsed or touched.
package profile

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"math"
	"os"
)

// levelOffset is the byte position of the encoded profile level, measured
// from the start of the raw stream.
const levelOffset = 7

// ReadLevel returns the decoder profile level encoded in the stream at
// path. Files shorter than levelOffset+1 bytes are an I/O error.
func ReadLevel(path string) (float64, error) {
	f, err := os.Open(path)
	if err != nil {
		return 0, fmt.Errorf("read profile level: %w", err)
	}
	defer f.Close()

	encoded, err := readByte(f)
	if err != nil {
		return 0, fmt.Errorf("read profile level %s: %w", path, err)
	}
	return float64(encoded) / 10.0, nil
}

// CorrectLevel lowers the encoded profile level at path to target when the
// existing level exceeds it. With force set the byte is always rewritten,
// even upwards. When no write is needed the call is a no-op, not an error.
func CorrectLevel(path string, target float64, force bool, logger *slog.Logger) error {
	f, err := os.OpenFile(path, os.O_RDWR, 0)
	if err != nil {
		return fmt.Errorf("correct profile level: %w", err)
	}
	defer f.Close()

	existing, err := readByte(f)
	if err != nil {
		return fmt.Errorf("correct profile level %s: %w", path, err)
	}

	encoded := int8(math.Round(target * 10))
	if !force && existing <= encoded {
		if logger != nil {
			logger.Info("leaving profile level unchanged",
				slog.Float64("level", float64(existing)/10.0),
				slog.Float64("target", target),
				slog.String("path", path),
			)
		}
		return nil
	}

	if _, err := f.WriteAt([]byte{byte(encoded)}, levelOffset); err != nil {
		return fmt.Errorf("correct profile level %s: %w", path, err)
	}
	if logger != nil {
		logger.Info("corrected profile level",
			slog.Float64("from", float64(existing)/10.0),
			slog.Float64("to", float64(encoded)/10.0),
			slog.String("path", path),
		)
	}
	return nil
}

func readByte(f *os.File) (int8, error) {
	var buf [1]byte
	if _, err := f.ReadAt(buf[:], levelOffset); err != nil {
		if errors.Is(err, io.EOF) {
			return 0, fmt.Errorf("stream too short for profile byte: %w", io.ErrUnexpectedEOF)
		}
		return 0, err
	}
	return int8(buf[0]), nil
}
