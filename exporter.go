package walknet

import (
	"encoding/json"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"
	"github.com/pkg/errors"
)

// Exporter writes artifacts as indented JSON files into one directory.
// Every payload is encoded and staged into a temporary file before any of the target files is replaced,
// so encoding or staging failures leave previous outputs untouched
type Exporter struct {
	dir    string
	logger *log.Logger
}

func NewExporter(dir string, logger *log.Logger) *Exporter {
	if logger == nil {
		logger = discardLogger()
	}
	return &Exporter{
		dir:    dir,
		logger: logger,
	}
}

type stagedArtifact struct {
	tmpPath string
	path    string
}

// Export writes artifacts and returns paths of written files
func (exporter *Exporter) Export(artifacts []Artifact) ([]string, error) {
	encoded := make([][]byte, len(artifacts))
	for i, artifact := range artifacts {
		data, err := marshalArtifact(artifact.Payload)
		if err != nil {
			return nil, errors.Wrapf(err, "Can't encode '%s'", artifact.Name)
		}
		encoded[i] = data
	}

	if err := os.MkdirAll(exporter.dir, 0755); err != nil {
		return nil, errors.Wrapf(ErrWriteFailure, "Can't create directory '%s': %v", exporter.dir, err)
	}

	staged := make([]stagedArtifact, 0, len(artifacts))
	cleanup := func() {
		for _, st := range staged {
			_ = os.Remove(st.tmpPath)
		}
	}
	for i, artifact := range artifacts {
		path := filepath.Join(exporter.dir, artifact.Name)
		tmpPath, err := stageFile(exporter.dir, artifact.Name, encoded[i])
		if err != nil {
			cleanup()
			return nil, errors.Wrapf(ErrWriteFailure, "Can't stage '%s': %v", path, err)
		}
		staged = append(staged, stagedArtifact{tmpPath: tmpPath, path: path})
	}

	written := make([]string, 0, len(staged))
	for i, st := range staged {
		if err := os.Rename(st.tmpPath, st.path); err != nil {
			cleanup()
			return written, errors.Wrapf(ErrWriteFailure, "Can't move '%s' into place: %v", st.path, err)
		}
		staged[i].tmpPath = ""
		written = append(written, st.path)
		exporter.logger.Debug("Artifact written", "path", st.path, "bytes", len(encoded[i]))
	}
	return written, nil
}

func marshalArtifact(payload interface{}) ([]byte, error) {
	data, err := json.MarshalIndent(payload, "", "  ")
	if err != nil {
		return nil, err
	}
	return append(data, '\n'), nil
}

func stageFile(dir, name string, data []byte) (string, error) {
	file, err := os.CreateTemp(dir, "."+name+".*.tmp")
	if err != nil {
		return "", err
	}
	tmpPath := file.Name()
	if _, err := file.Write(data); err != nil {
		file.Close()
		os.Remove(tmpPath)
		return "", err
	}
	if err := file.Close(); err != nil {
		os.Remove(tmpPath)
		return "", err
	}
	if err := os.Chmod(tmpPath, 0644); err != nil {
		os.Remove(tmpPath)
		return "", err
	}
	return tmpPath, nil
}
