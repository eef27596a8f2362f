package cache

import (
	"context"
	"testing"

	"github.com/alicebob/miniredis/v2"
)

func TestNewClientEmptyAddrIsNil(t *testing.T) {
	if c := NewClient(context.Background(), ""); c != nil {
		t.Fatal("expected nil client for empty addr")
	}
}

func TestNewClientUnreachableIsNil(t *testing.T) {
	if c := NewClient(context.Background(), "127.0.0.1:1"); c != nil {
		t.Fatal("expected nil client when ping fails")
	}
}

func TestNewClientConnects(t *testing.T) {
	mr := miniredis.RunT(t)

	c := NewClient(context.Background(), mr.Addr())
	if c == nil {
		t.Fatal("expected live client")
	}
	defer c.Close()

	if err := c.Set(context.Background(), "k", "v", 0).Err(); err != nil {
		t.Fatalf("set: %v", err)
	}
	got, err := c.Get(context.Background(), "k").Result()
	if err != nil || got != "v" {
		t.Fatalf("get: %q, %v", got, err)
	}
}
