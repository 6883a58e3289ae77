package services

import (
	"fmt"
	"strings"

	"periodic-tutor/internal/errors"
	"periodic-tutor/internal/logger"
	"periodic-tutor/internal/models"
)

// NotFoundError reports a symbol with no matching element. It is an expected
// outcome of a lookup, shown to the user as a notice.
type NotFoundError struct {
	Symbol string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("No data found for element with symbol '%s'.", e.Symbol)
}

// Is lets errors.Is(err, errors.ErrNotFound) match
func (e *NotFoundError) Is(target error) bool {
	return target == errors.ErrNotFound
}

// LookupService answers element queries against the session catalog
type LookupService struct {
	catalog *models.Catalog
	logger  logger.Logger
}

// NewLookupService creates a lookup service over a loaded catalog
func NewLookupService(catalog *models.Catalog, log logger.Logger) *LookupService {
	return &LookupService{catalog: catalog, logger: log}
}

// FindBySymbol returns the first record whose symbol equals symbol exactly.
// The symbol is used as given: no trimming, no case folding.
func (s *LookupService) FindBySymbol(symbol string) (models.Record, error) {
	record, ok := s.catalog.FindBySymbol(symbol)
	if !ok {
		s.logger.Debug("lookup", "symbol not found", map[string]interface{}{"symbol": symbol})
		return models.Record{}, &NotFoundError{Symbol: symbol}
	}
	s.logger.Debug("lookup", "symbol found", map[string]interface{}{
		"symbol": symbol,
		"name":   record.DisplayName(),
	})
	return record, nil
}

// Search handles free-text input: surrounding whitespace is removed and an
// empty query is rejected before any lookup happens
func (s *LookupService) Search(query string) (models.Record, error) {
	symbol := strings.TrimSpace(query)
	if symbol == "" {
		return models.Record{}, errors.ErrMissingInput
	}
	return s.FindBySymbol(symbol)
}

// Catalog exposes the catalog for export and status reporting
func (s *LookupService) Catalog() *models.Catalog {
	return s.catalog
}
