package services

import (
	"fmt"

	"periodic-tutor/internal/errors"
	"periodic-tutor/internal/logger"
	"periodic-tutor/internal/models"
	"periodic-tutor/internal/ontology"
)

// Property local names read from each element individual
const (
	PropSymbol       = "symbol"
	PropName         = "name"
	PropAtomicNumber = "atomicNumber"
	PropGroup        = "group"
	PropReactivity   = "reactivity"
)

// BuildCatalog turns the instances of the element class into the session's
// catalog. A missing class is a startup fault.
func BuildCatalog(ont *ontology.Ontology, classIRI string, log logger.Logger) (*models.Catalog, error) {
	class, ok := ont.Class(classIRI)
	if !ok {
		return nil, errors.Fatal(
			fmt.Errorf("%w: %s", errors.ErrClassNotFound, classIRI),
			"catalog", "BuildCatalog",
			fmt.Sprintf("The '%s' class could not be found in the ontology (%s).", ontology.LocalName(classIRI), classIRI),
		)
	}

	instances := ont.Instances(class.IRI)
	records := make([]models.Record, 0, len(instances))
	for _, ind := range instances {
		record, ok := recordFrom(ind, log)
		if !ok {
			log.Debug("catalog", "individual has no symbol, skipped", map[string]interface{}{
				"individual": ind.IRI,
			})
			continue
		}
		records = append(records, record)
	}

	catalog := models.NewCatalog(records)
	for _, symbol := range catalog.DuplicateSymbols() {
		log.Warning("catalog", "symbol shared by several elements, first one wins", map[string]interface{}{
			"symbol": symbol,
		})
	}

	log.Info("catalog", "element catalog built", map[string]interface{}{
		"class":     class.IRI,
		"instances": len(instances),
		"records":   catalog.Len(),
	})
	return catalog, nil
}

func recordFrom(ind ontology.Individual, log logger.Logger) (models.Record, bool) {
	symbol, ok := ind.First(PropSymbol)
	if !ok || symbol == "" {
		return models.Record{}, false
	}

	record := models.Record{Symbol: symbol}
	if v, ok := ind.First(PropName); ok {
		record.Name = models.Text(v)
	}
	if v, ok := ind.First(PropReactivity); ok {
		record.Reactivity = models.Text(v)
	}
	record.AtomicNumber = intProperty(ind, PropAtomicNumber, log)
	record.Group = intProperty(ind, PropGroup, log)
	return record, true
}

func intProperty(ind ontology.Individual, prop string, log logger.Logger) *int {
	v, ok := ind.First(prop)
	if !ok {
		return nil
	}
	n, ok := models.ParseInt(v)
	if !ok {
		log.Warning("catalog", "non-integer value treated as absent", map[string]interface{}{
			"individual": ind.IRI,
			"property":   prop,
			"value":      v,
		})
	}
	return n
}
