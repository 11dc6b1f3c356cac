package commands_test

import (
	"bytes"
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/strata/cmd/strata/commands"
	"go.trai.ch/strata/internal/app"
	"go.trai.ch/strata/internal/core/domain"
	"go.trai.ch/strata/internal/core/ports/mocks"
	"go.uber.org/mock/gomock"
)

func newCLI(t *testing.T) (*commands.CLI, *mocks.MockSnapshotStore) {
	ctrl := gomock.NewController(t)

	parser := mocks.NewMockQueryParser(ctrl)
	store := mocks.NewMockSnapshotStore(ctrl)
	extractor := mocks.NewMockIdentityExtractor(ctrl)
	warnings := mocks.NewMockWarningSink(ctrl)
	logger := mocks.NewMockLogger(ctrl)
	telemetry := mocks.NewMockTelemetry(ctrl)

	a := app.New(parser, store, extractor, warnings, logger, telemetry)
	return commands.New(a), store
}

func TestShowCommand(t *testing.T) {
	cli, store := newCLI(t)
	store.EXPECT().Load().Return(domain.NewGraphSnapshot(map[domain.NodeID]*domain.NodeSnapshot{
		"1": domain.NewEntitySnapshot(map[string]any{"id": "1", "name": "Alice"}),
	}), nil)

	var out bytes.Buffer
	cli.SetOut(&out)
	cli.SetArgs([]string{"show"})

	require.NoError(t, cli.Execute(context.Background()))
	assert.Contains(t, out.String(), "Alice")
}

func TestShowCommand_UnknownNode(t *testing.T) {
	cli, store := newCLI(t)
	store.EXPECT().Load().Return(domain.NewGraphSnapshot(nil), nil)

	cli.SetArgs([]string{"show", "missing"})
	assert.Error(t, cli.Execute(context.Background()))
}

func TestMergeCommand_NoDocumentsShowsHelp(t *testing.T) {
	cli, _ := newCLI(t)

	var out bytes.Buffer
	cli.SetOut(&out)
	cli.SetArgs([]string{"merge"})

	assert.NoError(t, cli.Execute(context.Background()))
}

func TestVersionCommand(t *testing.T) {
	cli, _ := newCLI(t)

	var out bytes.Buffer
	cli.SetOut(&out)
	cli.SetArgs([]string{"version"})

	require.NoError(t, cli.Execute(context.Background()))
	assert.Contains(t, out.String(), "dev")
}

func TestRootHelp(t *testing.T) {
	cli, _ := newCLI(t)

	var out bytes.Buffer
	cli.SetOut(&out)
	cli.SetArgs([]string{"--help"})

	require.NoError(t, cli.Execute(context.Background()))
	assert.Contains(t, out.String(), "strata")
}
