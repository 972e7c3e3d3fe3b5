package database

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/x/mongo/driver/topology"
)

func TestIsMongoUnavailable(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		expected bool
	}{
		{name: "nil", err: nil, expected: false},
		{name: "network labelled", err: mongo.CommandError{Code: 6, Labels: []string{"NetworkError"}}, expected: true},
		{name: "client disconnected", err: mongo.ErrClientDisconnected, expected: true},
		{name: "wrapped disconnect", err: fmt.Errorf("insert: %w", mongo.ErrClientDisconnected), expected: true},
		{name: "server selection", err: topology.ServerSelectionError{Wrapped: errors.New("no reachable servers")}, expected: true},
		{name: "deadline", err: context.DeadlineExceeded, expected: true},
		{name: "duplicate key", err: mongo.CommandError{Code: 11000, Message: "duplicate key"}, expected: false},
		{name: "plain error", err: errors.New("boom"), expected: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, IsMongoUnavailable(tt.err))
		})
	}
}
