// Package app implements the application layer for strata.
package app

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"go.trai.ch/strata/internal/core/domain"
	"go.trai.ch/strata/internal/core/ports"
	"go.trai.ch/strata/internal/editor"
	"go.trai.ch/zerr"
	"golang.org/x/sync/errgroup"
)

// App represents the main application logic.
type App struct {
	parser    ports.QueryParser
	store     ports.SnapshotStore
	identity  ports.IdentityExtractor
	warnings  ports.WarningSink
	logger    ports.Logger
	telemetry ports.Telemetry
}

// New creates a new App instance.
func New(
	parser ports.QueryParser,
	store ports.SnapshotStore,
	identity ports.IdentityExtractor,
	warnings ports.WarningSink,
	logger ports.Logger,
	telemetry ports.Telemetry,
) *App {
	return &App{
		parser:    parser,
		store:     store,
		identity:  identity,
		warnings:  warnings,
		logger:    logger,
		telemetry: telemetry,
	}
}

// mergeDoc is the on-disk format of a merge document: a query, its
// variables, and the result payload to fold into the cache.
type mergeDoc struct {
	Query     json.RawMessage `json:"query"`
	Variables map[string]any  `json:"variables"`
	Payload   map[string]any  `json:"payload"`
}

// mergeInput is a decoded merge document ready for the editor.
type mergeInput struct {
	path    string
	query   *domain.ParsedQuery
	payload map[string]any
}

// Merge folds the payloads in the given merge documents into the persisted
// snapshot, in argument order, and saves the result. It returns the ids of
// every node the transaction edited.
func (a *App) Merge(ctx context.Context, paths []string) ([]domain.NodeID, error) {
	if len(paths) == 0 {
		return nil, zerr.New("no merge documents specified")
	}

	snapshot, err := a.store.Load()
	if err != nil {
		return nil, zerr.Wrap(err, "failed to load snapshot")
	}

	// Decode documents concurrently; merges below stay in argument order.
	inputs := make([]*mergeInput, len(paths))
	eg, _ := errgroup.WithContext(ctx)
	for i, path := range paths {
		eg.Go(func() error {
			input, err := a.decodeMergeDoc(path)
			if err != nil {
				return err
			}
			inputs[i] = input
			return nil
		})
	}
	if err := eg.Wait(); err != nil {
		return nil, err
	}

	ed := editor.New(snapshot, editor.Config{
		Identity: a.identity,
		Warnings: a.warnings,
	})

	for _, input := range inputs {
		_, vtx := a.telemetry.Record(ctx, input.path)
		err := ed.MergePayload(input.query, input.payload)
		vtx.Done(err)
		if err != nil {
			return nil, zerr.With(zerr.Wrap(err, "failed to merge payload"), "path", input.path)
		}
	}

	result, err := ed.Commit()
	if err != nil {
		return nil, zerr.Wrap(err, "failed to commit transaction")
	}

	if err := a.store.Save(result.Snapshot); err != nil {
		return nil, zerr.Wrap(err, "failed to save snapshot")
	}

	a.logger.Info(fmt.Sprintf("merged %d document(s), %d node(s) edited", len(inputs), len(result.EditedNodeIDs)))
	return result.EditedNodeIDs, nil
}

func (a *App) decodeMergeDoc(path string) (*mergeInput, error) {
	//nolint:gosec // Path is provided by the user on the command line
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, zerr.Wrap(err, "failed to read merge document")
	}

	var doc mergeDoc
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, zerr.With(zerr.Wrap(err, "failed to parse merge document"), "path", path)
	}
	if len(doc.Query) == 0 {
		return nil, zerr.With(zerr.New("merge document has no query"), "path", path)
	}

	q, err := a.parser.Parse(doc.Query, doc.Variables)
	if err != nil {
		return nil, zerr.With(zerr.Wrap(err, "failed to parse query"), "path", path)
	}

	return &mergeInput{
		path:    path,
		query:   q,
		payload: doc.Payload,
	}, nil
}

// Show renders the persisted snapshot as indented JSON. With a non-empty id
// only that node is rendered; an unknown id is an error.
func (a *App) Show(_ context.Context, id string) ([]byte, error) {
	snapshot, err := a.store.Load()
	if err != nil {
		return nil, zerr.Wrap(err, "failed to load snapshot")
	}

	if id != "" {
		node, ok := snapshot.GetNodeSnapshot(domain.NodeID(id))
		if !ok {
			return nil, zerr.With(zerr.New("node not found"), "id", id)
		}
		out, err := json.MarshalIndent(node, "", "  ")
		if err != nil {
			return nil, zerr.Wrap(err, "failed to render node")
		}
		return out, nil
	}

	nodes := make(map[domain.NodeID]*domain.NodeSnapshot, snapshot.Len())
	for nodeID, node := range snapshot.Nodes() {
		nodes[nodeID] = node
	}
	out, err := json.MarshalIndent(nodes, "", "  ")
	if err != nil {
		return nil, zerr.Wrap(err, "failed to render snapshot")
	}
	return out, nil
}
