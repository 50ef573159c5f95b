package template

import (
	"errors"
	"fmt"
	"io"

	"gopkg.in/yaml.v3"
)

// yamlCatalog is the on-disk shape of a template bundle.
type yamlCatalog struct {
	Templates map[string]Template `yaml:"templates"`
}

// LoadCatalog reads a YAML template bundle, for deploy-time catalogs that
// are shipped alongside the binary instead of compiled in. The result can
// be merged with the built-in catalogs via NewRegistry.
//
// Expected document shape:
//
//	templates:
//	  ORDER_PLACED:
//	    role: customer
//	    active: true
//	    variables: [order_id]
//	    channels:
//	      push:
//	        title: "Order Confirmed"
//	        body: "Order #{{order_id}} placed."
func LoadCatalog(r io.Reader) (map[string]Template, error) {
	raw, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidCatalog, err)
	}

	var doc yamlCatalog
	if err := yaml.Unmarshal(raw, &doc); err != nil {
		return nil, errors.Join(ErrInvalidCatalog, err)
	}
	if len(doc.Templates) == 0 {
		return nil, fmt.Errorf("%w: no templates defined", ErrInvalidCatalog)
	}

	for event, tmpl := range doc.Templates {
		if tmpl.ID == "" {
			tmpl.ID = event
			doc.Templates[event] = tmpl
		}
	}
	return doc.Templates, nil
}
