package services

import (
	stderrors "errors"

	errs "github.com/Mohfazam/CIVICOS/errors"
	"gorm.io/gorm"
)

// storageErr translates a repository failure: record-not-found becomes a
// typed NotFound for the named entity, anything else is an opaque
// storage failure with the detail kept for debug mode.
func storageErr(err error, entity string) *errs.Error {
	if stderrors.Is(err, gorm.ErrRecordNotFound) {
		return errs.NotFound(entity)
	}
	return errs.StorageFailure(err)
}
