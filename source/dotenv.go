package source

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/joho/godotenv"

	"github.com/strataconf/strata"
)

// Dotenv reads key=value pairs from a dotenv-style file, the third-ranked
// source. A missing file yields an empty snapshot; dotenv files are optional.
type Dotenv struct {
	path   string
	prefix string
}

func NewDotenv(path, prefix string) *Dotenv {
	return &Dotenv{path: path, prefix: strings.TrimSuffix(strings.ToUpper(prefix), "_")}
}

func (d *Dotenv) Name() string { return strata.SourceDotenv }

// Paths implements strata.FileBacked.
func (d *Dotenv) Paths() []string { return []string{d.path} }

func (d *Dotenv) Load(ctx context.Context, schema strata.Schema) (strata.Snapshot, error) {
	vars, err := godotenv.Read(d.path)
	if err != nil {
		if os.IsNotExist(err) {
			return strata.Snapshot{}, nil
		}
		return nil, &strata.ConfigurationError{
			Source: strata.SourceDotenv,
			Path:   d.path,
			Reason: "parse dotenv file",
			Err:    err,
		}
	}
	return mapVars(vars, schema, d.prefix, strata.SourceDotenv, strata.PriorityDotenv,
		func(name string) string { return fmt.Sprintf("%s:%s", d.path, name) }), nil
}

var _ strata.Source = (*Dotenv)(nil)
var _ strata.FileBacked = (*Dotenv)(nil)
