package hcldriver

import (
	"context"
	"fmt"
	"path/filepath"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"

	"github.com/simwire/simwire/internal/ctxlog"
	"github.com/simwire/simwire/internal/factory"
	"github.com/simwire/simwire/internal/fsutil"
	"github.com/simwire/simwire/internal/register"
	"github.com/simwire/simwire/internal/regkey"
)

// WireError annotates a construction failure with the file and instance the
// failing section came from.
type WireError struct {
	File     string
	Instance string
	Err      error
}

func (e *WireError) Error() string {
	return fmt.Sprintf("failed creating object %q defined in %s: %v", e.Instance, e.File, e.Err)
}

func (e *WireError) Unwrap() error {
	return e.Err
}

// objectBlock is one `object "Class" "Instance" { ... }` section.
type objectBlock struct {
	Class string   `hcl:"class,label"`
	Name  string   `hcl:"name,label"`
	Body  hcl.Body `hcl:",remain"`
}

// fileRoot decodes the top level of a configuration file.
type fileRoot struct {
	Objects []*objectBlock `hcl:"object,block"`
	Remain  hcl.Body       `hcl:",remain"`
}

// Loader discovers and parses HCL configuration files.
type Loader struct{}

// NewLoader creates a new HCL configuration loader.
func NewLoader() *Loader {
	return &Loader{}
}

// Load walks the given paths for .hcl files, extracts every object section
// and calls Factory.Make for each. Sections are processed in file order; any
// failure aborts the load. Each loaded file is recorded in the register under
// the reserved file namespace, keyed by its base name.
func (l *Loader) Load(ctx context.Context, f *factory.Factory, paths ...string) error {
	logger := ctxlog.FromContext(ctx)

	files, err := fsutil.FindFilesByExtension(".hcl", paths...)
	if err != nil {
		return err
	}
	if len(files) == 0 {
		logger.Warn("No .hcl configuration files found.", "paths", paths)
		return nil
	}
	logger.Debug("Discovered configuration files.", "count", len(files))

	parser := hclparse.NewParser()
	made := 0

	for _, file := range files {
		hclFile, diags := parser.ParseHCLFile(file)
		if diags.HasErrors() {
			return fmt.Errorf("failed to parse HCL file %s: %w", file, diags)
		}

		var root fileRoot
		if diags := gohcl.DecodeBody(hclFile.Body, nil, &root); diags.HasErrors() {
			return fmt.Errorf("failed to decode HCL file %s: %w", file, diags)
		}

		for _, block := range root.Objects {
			fields, err := fieldMap(block.Body)
			if err != nil {
				return &WireError{File: file, Instance: block.Name, Err: err}
			}

			logger.Debug("Loaded object section.", "file", file, "class", block.Class, "instance", block.Name)
			if err := f.Make(block.Class, block.Name, fields); err != nil {
				return &WireError{File: file, Instance: block.Name, Err: err}
			}
			made++
		}

		register.Set(f.Register(), regkey.File(filepath.Base(file)), file)
	}

	logger.Info("Configuration loaded.", "files", len(files), "objects", made)
	return nil
}

// fieldMap flattens a section body into field name -> literal string.
func fieldMap(body hcl.Body) (map[string]string, error) {
	attrs, diags := body.JustAttributes()
	if diags.HasErrors() {
		return nil, fmt.Errorf("invalid object body: %w", diags)
	}

	fields := make(map[string]string, len(attrs))
	for name, attr := range attrs {
		val, diags := attr.Expr.Value(nil)
		if diags.HasErrors() {
			return nil, fmt.Errorf("invalid value for field %q: %w", name, diags)
		}
		raw, err := stringify(val)
		if err != nil {
			return nil, fmt.Errorf("field %q: %w", name, err)
		}
		fields[name] = raw
	}
	return fields, nil
}
