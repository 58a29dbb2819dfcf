// Package manifest parses the home.toml declaration document into
// typed entries. Each manifest table declares either a single entry or
// an array of entries; parse failures are entry-scoped so one bad
// declaration does not abort the whole run.
package manifest

import (
	"fmt"
	"os"
	"sort"

	gotoml "github.com/pelletier/go-toml/v2"

	"github.com/arthur-debert/homelink/pkg/errors"
	"github.com/arthur-debert/homelink/pkg/logging"
	"github.com/arthur-debert/homelink/pkg/types"
)

// DefaultSourceDir is the conventional subdirectory that holds a
// group's files when the declaration omits source.
const DefaultSourceDir = "config"

// Load reads and parses the manifest at path. The returned issues are
// entry-scoped problems (missing target, bad requirement shape); the
// error is fatal (document missing or undecodable).
func Load(path string) ([]types.Entry, []error, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil, errors.Newf(errors.ErrManifestMissing, "manifest not found at %s", path)
		}
		return nil, nil, errors.Wrapf(err, errors.ErrManifestMissing, "failed to read manifest at %s", path)
	}

	var doc map[string]interface{}
	if err := gotoml.Unmarshal(data, &doc); err != nil {
		return nil, nil, errors.Wrapf(err, errors.ErrManifestParse, "failed to parse manifest at %s", path)
	}

	entries, issues := Parse(doc)
	return entries, issues, nil
}

// Parse normalizes a decoded manifest document into entries. Groups
// are processed in sorted name order so output is reproducible; TOML
// maps carry no declaration order.
func Parse(doc map[string]interface{}) ([]types.Entry, []error) {
	logger := logging.GetLogger("manifest")

	groups := make([]string, 0, len(doc))
	for group := range doc {
		groups = append(groups, group)
	}
	sort.Strings(groups)

	var entries []types.Entry
	var issues []error

	for _, group := range groups {
		switch value := doc[group].(type) {
		case map[string]interface{}:
			entry, err := parseEntry(group, value)
			if err != nil {
				issues = append(issues, err)
				continue
			}
			entries = append(entries, entry)

		case []interface{}:
			for i, raw := range value {
				table, ok := raw.(map[string]interface{})
				if !ok {
					issues = append(issues, errors.Newf(errors.ErrInvalidEntry,
						"group %q entry %d is not a table", group, i))
					continue
				}
				entry, err := parseEntry(group, table)
				if err != nil {
					issues = append(issues, err)
					continue
				}
				entries = append(entries, entry)
			}

		case []map[string]interface{}:
			for _, table := range value {
				entry, err := parseEntry(group, table)
				if err != nil {
					issues = append(issues, err)
					continue
				}
				entries = append(entries, entry)
			}

		default:
			issues = append(issues, errors.Newf(errors.ErrInvalidEntry,
				"group %q must be a table or an array of tables, got %T", group, value))
		}
	}

	logger.Debug().Int("entries", len(entries)).Int("issues", len(issues)).Msg("Manifest parsed")
	return entries, issues
}

// parseEntry extracts one entry from its raw table.
func parseEntry(group string, table map[string]interface{}) (types.Entry, error) {
	target, ok := table["target"].(string)
	if !ok || target == "" {
		return types.Entry{}, errors.Newf(errors.ErrMissingTarget,
			"group %q declares no target", group)
	}

	source := fmt.Sprintf("%s/%s", DefaultSourceDir, group)
	if s, ok := table["source"].(string); ok && s != "" {
		source = s
	}

	requirements, err := parseRequirements(group, table["labels"])
	if err != nil {
		return types.Entry{}, err
	}

	return types.Entry{
		Group:        group,
		Source:       source,
		Target:       target,
		Requirements: requirements,
	}, nil
}

// parseRequirements normalizes the labels field: each element is
// either a single label string or a list of strings forming one OR
// requirement.
func parseRequirements(group string, raw interface{}) ([]types.LabelRequirement, error) {
	if raw == nil {
		return nil, nil
	}

	list, ok := raw.([]interface{})
	if !ok {
		return nil, errors.Newf(errors.ErrInvalidRequirement,
			"group %q: labels must be a list, got %T", group, raw)
	}

	var requirements []types.LabelRequirement
	for _, item := range list {
		switch v := item.(type) {
		case string:
			requirements = append(requirements, types.LabelRequirement{Labels: []string{v}})

		case []interface{}:
			alternatives := make([]string, 0, len(v))
			for _, alt := range v {
				label, ok := alt.(string)
				if !ok {
					return nil, errors.Newf(errors.ErrInvalidRequirement,
						"group %q: label alternative must be a string, got %T", group, alt)
				}
				alternatives = append(alternatives, label)
			}
			requirements = append(requirements, types.LabelRequirement{Labels: alternatives})

		default:
			return nil, errors.Newf(errors.ErrInvalidRequirement,
				"group %q: label requirement must be a string or list of strings, got %T", group, item)
		}
	}

	return requirements, nil
}
