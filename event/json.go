package event

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
)

// ReadBatch decodes a batch from JSON.
func ReadBatch(r io.Reader) (*Batch, error) {
	var batch Batch
	dec := json.NewDecoder(r)
	if err := dec.Decode(&batch); err != nil {
		return nil, fmt.Errorf("decoding event batch: %w", err)
	}
	return &batch, nil
}

// LoadBatch reads a batch from a JSON file.
func LoadBatch(path string) (*Batch, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening event batch: %w", err)
	}
	defer func() {
		_ = f.Close()
	}()

	return ReadBatch(f)
}

// Write encodes the batch as JSON.
func (b *Batch) Write(w io.Writer) error {
	enc := json.NewEncoder(w)
	if err := enc.Encode(b); err != nil {
		return fmt.Errorf("encoding event batch: %w", err)
	}
	return nil
}
