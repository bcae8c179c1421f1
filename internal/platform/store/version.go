package store

import (
	"github.com/google/uuid"
)

// datasetNamespace scopes dataset version ids
var datasetNamespace = uuid.NewSHA1(uuid.NameSpaceURL, []byte("https://figurefriday.dev/dataset"))

// ContentVersion returns a deterministic id for a dataset's bytes
// the same content always yields the same id, so cache keys built on it survive restarts
func ContentVersion(kind string, content []byte) uuid.UUID {
	b := make([]byte, 0, len(kind)+1+len(content))
	b = append(b, kind...)
	b = append(b, 0)
	b = append(b, content...)
	return uuid.NewSHA1(datasetNamespace, b)
}
