package cli

import (
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/custodia-labs/docprep/internal/connectors/confluence"
)

// entityDescriptor is the part of a catalog entity file docprep reads.
type entityDescriptor struct {
	Kind     string `yaml:"kind"`
	Metadata struct {
		Name        string            `yaml:"name"`
		Annotations map[string]string `yaml:"annotations"`
	} `yaml:"metadata"`
}

// readEntityAnnotation returns the documentation annotation of the first
// entity in path that carries one. Files may hold several YAML documents.
func readEntityAnnotation(path string) (string, error) {
	f, err := os.Open(path)
	if err != nil {
		return "", fmt.Errorf("open entity file: %w", err)
	}
	defer f.Close()

	dec := yaml.NewDecoder(f)
	for {
		var entity entityDescriptor
		err := dec.Decode(&entity)
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return "", fmt.Errorf("parse entity file %s: %w", path, err)
		}
		if ref := entity.Metadata.Annotations[confluence.AnnotationKey]; ref != "" {
			return ref, nil
		}
	}

	return "", fmt.Errorf("no %s annotation in %s", confluence.AnnotationKey, path)
}
