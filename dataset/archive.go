package dataset

import (
	"archive/zip"
	"encoding/json"
	"fmt"
	"io"
	"math"
	"os"
	"time"

	"github.com/gofrs/flock"
	"gopkg.in/yaml.v3"
)

const (
	metadataFile = "metadata.yaml"
	samplesFile  = "samples.json"
	targetsFile  = "targets.json"
)

// metadata is the archive manifest.
type metadata struct {
	ID        string    `yaml:"id"`
	Name      string    `yaml:"name"`
	Columns   []string  `yaml:"columns"`
	CreatedAt time.Time `yaml:"created_at"`
	Rows      int       `yaml:"rows"`
}

// samplesPayload carries the sample matrix. Cells are nullable because
// JSON has no NaN; null round-trips back to NaN on load.
type samplesPayload struct {
	Rows [][]*float64 `json:"rows"`
}

type targetsPayload struct {
	Targets []int `json:"targets"`
}

// Save writes the dataset as a zip archive, guarded by an advisory file
// lock so concurrent writers do not interleave.
func (t *Tabular) Save(path string) error {
	lock := flock.New(path + ".lock")
	if err := lock.Lock(); err != nil {
		return fmt.Errorf("locking dataset archive: %w", err)
	}
	defer func() {
		_ = lock.Unlock()
	}()

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating dataset archive: %w", err)
	}
	defer func() {
		_ = f.Close()
	}()

	w := zip.NewWriter(f)

	meta := metadata{
		ID:        t.ID,
		Name:      t.Name,
		Columns:   t.Columns,
		CreatedAt: t.CreatedAt,
		Rows:      len(t.Samples),
	}
	metaData, err := yaml.Marshal(meta)
	if err != nil {
		return fmt.Errorf("marshaling metadata: %w", err)
	}
	if err := writeArchiveFile(w, metadataFile, metaData); err != nil {
		return err
	}

	samples := samplesPayload{Rows: make([][]*float64, len(t.Samples))}
	for i, row := range t.Samples {
		cells := make([]*float64, len(row))
		for j, v := range row {
			if !math.IsNaN(v) {
				value := v
				cells[j] = &value
			}
		}
		samples.Rows[i] = cells
	}
	samplesData, err := json.Marshal(samples)
	if err != nil {
		return fmt.Errorf("marshaling samples: %w", err)
	}
	if err := writeArchiveFile(w, samplesFile, samplesData); err != nil {
		return err
	}

	targetsData, err := json.Marshal(targetsPayload{Targets: t.Targets})
	if err != nil {
		return fmt.Errorf("marshaling targets: %w", err)
	}
	if err := writeArchiveFile(w, targetsFile, targetsData); err != nil {
		return err
	}

	if err := w.Close(); err != nil {
		return fmt.Errorf("closing dataset archive: %w", err)
	}
	return nil
}

// Load reads a dataset archive written by Save. The loaded dataset
// carries data only; it cannot Read further batches.
func Load(path string) (*Tabular, error) {
	lock := flock.New(path + ".lock")
	if err := lock.RLock(); err != nil {
		return nil, fmt.Errorf("locking dataset archive: %w", err)
	}
	defer func() {
		_ = lock.Unlock()
	}()

	r, err := zip.OpenReader(path)
	if err != nil {
		return nil, fmt.Errorf("opening dataset archive: %w", err)
	}
	defer func() {
		_ = r.Close()
	}()

	var meta metadata
	metaData, err := readArchiveFile(&r.Reader, metadataFile)
	if err != nil {
		return nil, err
	}
	if err := yaml.Unmarshal(metaData, &meta); err != nil {
		return nil, fmt.Errorf("parsing metadata: %w", err)
	}

	var samples samplesPayload
	samplesData, err := readArchiveFile(&r.Reader, samplesFile)
	if err != nil {
		return nil, err
	}
	if err := json.Unmarshal(samplesData, &samples); err != nil {
		return nil, fmt.Errorf("parsing samples: %w", err)
	}

	var targets targetsPayload
	targetsData, err := readArchiveFile(&r.Reader, targetsFile)
	if err != nil {
		return nil, err
	}
	if err := json.Unmarshal(targetsData, &targets); err != nil {
		return nil, fmt.Errorf("parsing targets: %w", err)
	}

	rows := make([][]float64, len(samples.Rows))
	for i, cells := range samples.Rows {
		row := make([]float64, len(cells))
		for j, cell := range cells {
			if cell == nil {
				row[j] = math.NaN()
			} else {
				row[j] = *cell
			}
		}
		rows[i] = row
	}

	return &Tabular{
		ID:        meta.ID,
		Name:      meta.Name,
		Columns:   meta.Columns,
		Samples:   rows,
		Targets:   targets.Targets,
		CreatedAt: meta.CreatedAt,
	}, nil
}

func writeArchiveFile(w *zip.Writer, name string, data []byte) error {
	header := &zip.FileHeader{Name: name, Method: zip.Deflate}
	file, err := w.CreateHeader(header)
	if err != nil {
		return fmt.Errorf("creating %s in archive: %w", name, err)
	}
	if _, err := file.Write(data); err != nil {
		return fmt.Errorf("writing %s: %w", name, err)
	}
	return nil
}

func readArchiveFile(r *zip.Reader, name string) ([]byte, error) {
	f, err := r.Open(name)
	if err != nil {
		return nil, fmt.Errorf("archive is missing %s: %w", name, err)
	}
	defer func() {
		_ = f.Close()
	}()

	data, err := io.ReadAll(f)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", name, err)
	}
	return data, nil
}
