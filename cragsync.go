// Package cragsync reconciles a theCrag ascent export with a manually
// maintained climbing journal.
//
// Both records are reduced to a logbook (date -> set of crag names), crag
// names are normalized to ASCII, and the two logbooks are compared per day:
//
//	client, err := cragsync.New()
//	if err != nil {
//	    return err
//	}
//	changes, err := client.Diff("ticks.csv", "journal.md")
//	if err != nil {
//	    return err
//	}
//	fmt.Print(changes)
package cragsync

import (
	"github.com/rs/zerolog"
	"github.com/spf13/afero"

	"github.com/agentstation/cragsync/pkg/differ"
	"github.com/agentstation/cragsync/pkg/errors"
	"github.com/agentstation/cragsync/pkg/logbook"
	"github.com/agentstation/cragsync/pkg/sources"
	"github.com/agentstation/cragsync/pkg/sources/journal"
	"github.com/agentstation/cragsync/pkg/sources/thecrag"
)

// Client loads both activity records and compares them.
type Client struct {
	config  *config
	export  sources.Source
	journal sources.Source
	differ  differ.Differ
}

// New creates a Client with the given options.
func New(opts ...Option) (*Client, error) {
	cfg := defaultConfig()
	for _, opt := range opts {
		if err := opt(cfg); err != nil {
			return nil, err
		}
	}

	return &Client{
		config: cfg,
		export: thecrag.NewParser(
			thecrag.WithResolver(cfg.resolver),
			thecrag.WithLogger(cfg.logger),
		),
		journal: journal.NewParser(cfg.logger),
		differ: differ.New(
			differ.WithNormalizer(cfg.normalize),
			differ.WithLogger(cfg.logger),
		),
	}, nil
}

// Export reads the theCrag CSV export at path and returns its logbook with
// normalized crag names.
func (c *Client) Export(path string) (*logbook.Logbook, error) {
	l, err := c.load(c.export, path)
	if err != nil {
		return nil, err
	}
	return l.Normalize(c.config.normalize), nil
}

// Journal reads the manual journal at path and returns its logbook as written.
func (c *Client) Journal(path string) (*logbook.Logbook, error) {
	return c.load(c.journal, path)
}

// Diff compares the export at exportPath with the journal at journalPath.
// Both files are read and parsed before any comparison happens.
func (c *Client) Diff(exportPath, journalPath string) (*differ.Changeset, error) {
	external, err := c.load(c.export, exportPath)
	if err != nil {
		return nil, err
	}
	manual, err := c.load(c.journal, journalPath)
	if err != nil {
		return nil, err
	}
	return c.differ.Logbooks(external, manual), nil
}

// load reads path fully and hands the content to src.
func (c *Client) load(src sources.Source, path string) (*logbook.Logbook, error) {
	data, err := afero.ReadFile(c.config.fs, path)
	if err != nil {
		return nil, errors.NewIOError("read", path, err)
	}

	c.config.logger.Debug().
		Str("source", src.ID().String()).
		Str("path", path).
		Int("bytes", len(data)).
		Msg("Read source file")

	l, err := src.Load(data)
	if err != nil {
		c.config.logger.Debug().Err(err).Str("source", src.ID().String()).Msg("Failed to parse source")
		return nil, err
	}
	return l, nil
}

// Logger returns the client logger.
func (c *Client) Logger() *zerolog.Logger {
	return c.config.logger
}
