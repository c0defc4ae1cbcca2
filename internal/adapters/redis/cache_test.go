package redisad_test

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"

	redisad "kathmandu_guide/internal/adapters/redis"
)

func TestCache_RoundTripAndDelete(t *testing.T) {
	srv := miniredis.RunT(t)
	c := redisad.New(srv.Addr(), "", 0)
	ctx := context.Background()

	type payload struct {
		Slug string `json:"slug"`
		N    int    `json:"n"`
	}

	ok, err := c.Get(ctx, "hotel:dwarikas-hotel", &payload{})
	if err != nil {
		t.Fatalf("Get on empty cache: %v", err)
	}
	if ok {
		t.Fatalf("expected miss on empty cache")
	}

	in := payload{Slug: "dwarikas-hotel", N: 3}
	if err := c.Set(ctx, "hotel:dwarikas-hotel", in, 60); err != nil {
		t.Fatalf("Set: %v", err)
	}

	var out payload
	ok, err = c.Get(ctx, "hotel:dwarikas-hotel", &out)
	if err != nil || !ok {
		t.Fatalf("Get after Set: ok=%v err=%v", ok, err)
	}
	if out != in {
		t.Fatalf("round trip mismatch: %+v != %+v", out, in)
	}

	if err := c.Del(ctx, "hotel:dwarikas-hotel"); err != nil {
		t.Fatalf("Del: %v", err)
	}
	ok, _ = c.Get(ctx, "hotel:dwarikas-hotel", &out)
	if ok {
		t.Fatalf("expected miss after Del")
	}
}

func TestCache_Ping(t *testing.T) {
	srv := miniredis.RunT(t)
	c := redisad.New(srv.Addr(), "", 0)
	if err := c.Ping(context.Background()); err != nil {
		t.Fatalf("Ping: %v", err)
	}

	down := redisad.New("127.0.0.1:1", "", 0)
	if err := down.Ping(context.Background()); err == nil {
		t.Fatalf("Ping against a closed port must fail")
	}
}

func TestCache_TTLExpires(t *testing.T) {
	srv := miniredis.RunT(t)
	c := redisad.New(srv.Addr(), "", 0)
	ctx := context.Background()

	if err := c.Set(ctx, "map:pins", []string{"a"}, 60); err != nil {
		t.Fatalf("Set: %v", err)
	}
	srv.FastForward(61 * time.Second)

	var out []string
	ok, _ := c.Get(ctx, "map:pins", &out)
	if ok {
		t.Fatalf("expected miss after TTL expiry")
	}
}
