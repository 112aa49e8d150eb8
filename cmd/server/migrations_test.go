package main

import (
	"context"
	"testing"

	"github.com/keshavkumar4699/cloro-questions/internal/platform/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSlogGooseLogger(t *testing.T) {
	log, buf := logger.NewTestLogger()
	gl := &slogGooseLogger{logger: log}

	gl.Printf("OK   %s\n", "00001_create_questions.sql")
	gl.Fatalf("failed to run migration %d", 2)

	entries, err := buf.Entries()
	require.NoError(t, err)
	require.Len(t, entries, 2)

	assert.Equal(t, "INFO", entries[0]["level"])
	assert.Equal(t, "OK   00001_create_questions.sql", entries[0]["msg"])
	assert.Equal(t, "ERROR", entries[1]["level"])
	assert.Equal(t, "failed to run migration 2", entries[1]["msg"])
}

func TestRunMigration_UnknownCommand(t *testing.T) {
	log, _ := logger.NewTestLogger()

	err := runMigration(context.Background(), nil, "sideways", log)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown migration command: sideways")
}

func TestMigrateCommand_Subcommands(t *testing.T) {
	cmd := newMigrateCommand(&rootOptions{})

	var names []string
	for _, sub := range cmd.Commands() {
		names = append(names, sub.Name())
		assert.Contains(t, migrationCommands, sub.Name())
	}
	assert.ElementsMatch(t, []string{"up", "down", "reset", "status", "version"}, names)
}
