package main

import (
	"fmt"
	"io"
	"os"
	"slices"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/samandr77/microservices/onboarding/internal/entity"
	"github.com/samandr77/microservices/onboarding/internal/form"
)

// readDraft decodes a YAML or JSON draft into field values. "-" reads stdin.
func readDraft(path string, stdin io.Reader) (map[string]string, error) {
	var (
		data []byte
		err  error
	)

	if path == "-" {
		data, err = io.ReadAll(stdin)
	} else {
		data, err = os.ReadFile(path)
	}

	if err != nil {
		return nil, fmt.Errorf("read draft: %w", err)
	}

	values := map[string]string{}

	err = yaml.Unmarshal(data, &values)
	if err != nil {
		return nil, fmt.Errorf("decode draft %s: %w", path, err)
	}

	return values, nil
}

// fillForm applies values to a form started from template, field by field.
func fillForm(template entity.Application, values map[string]string) (form.State, error) {
	s := form.New(template)

	var rejected []string

	for field, value := range values {
		var check entity.Application
		if !check.Set(field, value) {
			rejected = append(rejected, field)
			continue
		}

		s = form.Change(s, field, value)
	}

	if len(rejected) > 0 {
		slices.Sort(rejected)
		return form.State{}, fmt.Errorf("%w: %s", entity.ErrUnknownField, strings.Join(rejected, ", "))
	}

	return s, nil
}

func loadForm(a *app, path string, stdin io.Reader) (form.State, error) {
	values, err := readDraft(path, stdin)
	if err != nil {
		return form.State{}, err
	}

	return fillForm(a.template(), values)
}

func (a *app) template() entity.Application {
	return entity.NewDraft(a.cfg.Application.AgentID, a.cfg.Application.DocPathPrefix)
}

func writeTemplate(w io.Writer, template entity.Application) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)

	err := enc.Encode(template)
	if err != nil {
		return fmt.Errorf("encode template: %w", err)
	}

	return enc.Close()
}
