package providers

import (
	"fmt"

	"github.com/gookit/validate"

	"parkpulse/internal/structures"
)

type CnfValidator struct {
	conf *structures.Config
}

func NewCnfValidator(conf *structures.Config) *CnfValidator {
	return &CnfValidator{conf: conf}
}

func (cv *CnfValidator) Validate() error {
	v := validate.Struct(cv.conf)
	if !v.Validate() {
		return v.Errors
	}

	switch cv.conf.Storage.Backend {
	case "file":
		if cv.conf.Storage.Dir == "" {
			return fmt.Errorf("storage.dir is required for the file backend")
		}
	case "gcs":
		if cv.conf.Storage.Bucket == "" {
			return fmt.Errorf("storage.bucket is required for the gcs backend")
		}
	}

	seen := make(map[string]struct{}, len(cv.conf.Destinations))
	for _, dest := range cv.conf.Destinations {
		if _, ok := seen[dest.Slug]; ok {
			return fmt.Errorf("duplicate destination slug %q", dest.Slug)
		}
		seen[dest.Slug] = struct{}{}
		if len(dest.Parks) == 0 {
			return fmt.Errorf("destination %q has no parks", dest.Slug)
		}
	}
	return nil
}
