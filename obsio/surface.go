package obsio

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/katalvlaran/ddrelocator/relocator"
	"github.com/klauspost/pgzip"
)

// WriteSurface dumps a sweep's misfit surface as gzip-compressed JSON.
// Surfaces grow with the product of the axis lengths, so the stream is
// compressed with parallel gzip.
func WriteSurface(path string, s *relocator.Surface) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("obsio: create surface dump: %w", err)
	}

	gz := pgzip.NewWriter(f)
	if err = json.NewEncoder(gz).Encode(s); err != nil {
		gz.Close()
		f.Close()

		return fmt.Errorf("obsio: encode surface: %w", err)
	}
	if err = gz.Close(); err != nil {
		f.Close()

		return fmt.Errorf("obsio: compress surface: %w", err)
	}

	return f.Close()
}

// ReadSurface loads a surface dump written by WriteSurface.
func ReadSurface(path string) (*relocator.Surface, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("obsio: open surface dump: %w", err)
	}
	defer f.Close()

	gz, err := pgzip.NewReader(f)
	if err != nil {
		return nil, fmt.Errorf("obsio: decompress surface: %w", err)
	}
	defer gz.Close()

	var s relocator.Surface
	if err = json.NewDecoder(gz).Decode(&s); err != nil {
		return nil, fmt.Errorf("obsio: decode surface: %w", err)
	}

	return &s, nil
}
