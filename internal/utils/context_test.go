// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package utils

import (
	"context"
	"testing"
)

func TestIdentifierCtxKey(t *testing.T) {
	if IdentifierCtxKey.String() != "identifier" {
		t.Errorf("expected 'identifier', got '%s'", IdentifierCtxKey.String())
	}
}

func TestGetIdentifierFromContext(t *testing.T) {
	tests := []struct {
		name   string
		ctx    context.Context
		want   string
		wantOK bool
	}{
		{
			name:   "present",
			ctx:    WithIdentifier(context.Background(), "alice"),
			want:   "alice",
			wantOK: true,
		},
		{
			name: "missing",
			ctx:  context.Background(),
		},
		{
			name: "empty",
			ctx:  WithIdentifier(context.Background(), ""),
		},
		{
			name: "wrong type",
			ctx:  context.WithValue(context.Background(), IdentifierCtxKey, 42),
		},
		{
			name: "different key",
			ctx:  context.WithValue(context.Background(), contextKey("other"), "alice"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := GetIdentifierFromContext(tt.ctx)
			if ok != tt.wantOK {
				t.Fatalf("ok = %v, want %v", ok, tt.wantOK)
			}
			if got != tt.want {
				t.Errorf("identifier = %q, want %q", got, tt.want)
			}
		})
	}
}
