package utils

import (
	"testing"
	"time"
)

func TestNewHTTPClient(t *testing.T) {
	client := NewHTTPClient(3 * time.Second)
	if client == nil || client.Client == nil {
		t.Fatal("expected a usable client")
	}
	if got := client.GetClient().Timeout; got != 3*time.Second {
		t.Errorf("timeout = %v, want 3s", got)
	}
	if got := client.Header.Get("Content-Type"); got != "application/json" {
		t.Errorf("Content-Type = %q", got)
	}

	other := NewHTTPClient(0)
	if other.Client == client.Client {
		t.Fatal("expected independent resty clients")
	}
}
