package main

import (
	"io"
	"runtime"

	"periodic-tutor/assets"
	"periodic-tutor/internal/config"
	"periodic-tutor/internal/errors"
	"periodic-tutor/internal/logger"
	"periodic-tutor/internal/ontology"
	"periodic-tutor/internal/services"
	"periodic-tutor/internal/timing"
)

// options holds the persistent command line flags. Empty values leave the
// configured setting alone.
type options struct {
	configFiles  []string
	ontologyPath string
	elementClass string
	logLevel     string
	logFormat    string
}

// session is everything the commands need once startup has succeeded
type session struct {
	cfg    *config.Config
	log    logger.Logger
	lookup *services.LookupService
	source string
}

// bootstrap loads configuration, the ontology and the catalog. Any error it
// returns is a startup fault and no window must be created.
func bootstrap(opts *options, logOut io.Writer) (*session, error) {
	cfg, err := loadConfig(opts)
	if err != nil {
		return nil, err
	}

	log := logger.New(cfg.LogLevel(), cfg.Log.Format, logOut)
	log.Info("main", "application starting", map[string]interface{}{
		"version":       AppVersion,
		"go_version":    runtime.Version(),
		"log_level":     cfg.Log.Level,
		"element_class": cfg.Ontology.ElementClass,
	})

	if effective, err := cfg.ToYAML(); err == nil {
		log.Debug("main", "effective configuration", map[string]interface{}{"config": effective})
	}

	tracker := timing.NewTracker(log)

	stop := tracker.Start("ontology")
	ont, source, err := loadOntology(cfg.Ontology.Path)
	stop()
	if err != nil {
		log.Error("main", err, nil)
		return nil, err
	}
	stats := ont.Stats()
	log.Debug("main", "ontology loaded", map[string]interface{}{
		"source":      source,
		"triples":     stats.Triples,
		"classes":     stats.Classes,
		"individuals": stats.Individuals,
	})

	stop = tracker.Start("catalog")
	catalog, err := services.BuildCatalog(ont, cfg.Ontology.ElementClass, log)
	stop()
	if err != nil {
		log.Error("main", err, nil)
		return nil, err
	}
	log.Info("main", "startup complete", map[string]interface{}{
		"source":   source,
		"elements": catalog.Len(),
		"took_ms":  tracker.Total().Milliseconds(),
	})

	return &session{
		cfg:    cfg,
		log:    log,
		lookup: services.NewLookupService(catalog, log),
		source: source,
	}, nil
}

func loadConfig(opts *options) (*config.Config, error) {
	loader := config.NewLoader()
	for _, path := range opts.configFiles {
		loader.AddLayer(path)
	}

	cfg, err := loader.Load()
	if err != nil {
		return nil, err
	}

	if opts.ontologyPath != "" {
		cfg.Ontology.Path = opts.ontologyPath
	}
	if opts.elementClass != "" {
		cfg.Ontology.ElementClass = opts.elementClass
	}
	if opts.logLevel != "" {
		cfg.Log.Level = opts.logLevel
	}
	if opts.logFormat != "" {
		cfg.Log.Format = opts.logFormat
	}

	if err := cfg.Validate(); err != nil {
		return nil, errors.WrapFatal(err, "main", "loadConfig", "validate configuration")
	}
	return cfg, nil
}

func loadOntology(path string) (*ontology.Ontology, string, error) {
	if path == "" {
		ont, err := ontology.Load(assets.DefaultOntology(), ontology.RDFXML)
		if err != nil {
			return nil, "", errors.WrapFatal(err, "main", "loadOntology", "decode embedded ontology")
		}
		return ont, assets.DefaultOntologyName, nil
	}

	ont, err := ontology.LoadFile(path)
	if err != nil {
		return nil, "", err
	}
	return ont, path, nil
}
