// Copyright 2025 Naren Yellavula
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/cybrota/shelf/library"
	"github.com/schollz/progressbar/v3"
	"gopkg.in/yaml.v3"
)

var ErrCatalogNotFound = errors.New("catalog file not found")

// catalogFile is the on-disk YAML layout:
//
//	books:
//	  - isbn: "0743273567"
//	    title: The Great Gatsby
//	    author: F. Scott Fitzgerald
//	    year: 2004
type catalogFile struct {
	Books []library.Record `yaml:"books"`
}

type ImportStats struct {
	Added    int
	Updated  int
	Rejected int
}

func readCatalogFile(path string) ([]library.Record, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", ErrCatalogNotFound, path)
		}
		return nil, err
	}

	var file catalogFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("failed to parse catalog %s: %w", path, err)
	}
	return file.Books, nil
}

// ImportFile loads every book in a catalog file into the session. Books that
// fail validation are skipped and counted. Progress is drawn on progress
// when it is non-nil.
func (c *Catalog) ImportFile(path string, progress io.Writer) (ImportStats, error) {
	var stats ImportStats

	records, err := readCatalogFile(path)
	if err != nil {
		return stats, err
	}
	c.logger.Info("importing catalog", "path", path, "books", len(records))

	var bar *progressbar.ProgressBar
	if progress != nil && len(records) > 0 {
		bar = progressbar.NewOptions(len(records),
			progressbar.OptionSetWriter(progress),
			progressbar.OptionSetDescription("📚 Shelving books..."),
			progressbar.OptionSetWidth(50),
			progressbar.OptionShowCount(),
			progressbar.OptionSetTheme(progressbar.Theme{
				Saucer:        "█",
				SaucerHead:    "█",
				SaucerPadding: " ",
				BarStart:      "[",
				BarEnd:        "]",
			}),
			progressbar.OptionOnCompletion(func() {
				fmt.Fprintf(progress, "\n✅ Catalog loaded!\n")
			}),
		)
	}

	for _, rec := range records {
		replaced, err := c.Add(rec)
		switch {
		case err != nil:
			stats.Rejected++
		case replaced:
			stats.Updated++
		default:
			stats.Added++
		}

		if bar != nil {
			bar.Add(1)
		}
	}

	if bar != nil {
		bar.Finish()
	}

	c.logger.Info("catalog imported", "path", path,
		"added", stats.Added, "updated", stats.Updated, "rejected", stats.Rejected)
	return stats, nil
}

// Export writes the shelf in the same YAML layout ImportFile reads.
func (c *Catalog) Export(w io.Writer) error {
	encoder := yaml.NewEncoder(w)
	encoder.SetIndent(2)
	if err := encoder.Encode(catalogFile{Books: c.Records()}); err != nil {
		return fmt.Errorf("failed to encode catalog: %w", err)
	}
	return encoder.Close()
}
